package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/webdevsha/permitakaun-6608e2f-sub002/config"
	"github.com/webdevsha/permitakaun-6608e2f-sub002/database"
	"github.com/webdevsha/permitakaun-6608e2f-sub002/internal/domain/access"
	"github.com/webdevsha/permitakaun-6608e2f-sub002/internal/domain/organizers"
	"github.com/webdevsha/permitakaun-6608e2f-sub002/internal/domain/profiles"
	"github.com/webdevsha/permitakaun-6608e2f-sub002/internal/domain/tenants"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

func isPasswordStrong(password string) bool {
	if len(password) < 8 {
		return false
	}
	hasLetter := false
	hasDigit := false
	for _, c := range password {
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
			hasLetter = true
		case '0' <= c && c <= '9':
			hasDigit = true
		}
	}
	return hasLetter && hasDigit
}

func isEmailValid(email string) bool {
	pattern := `^[a-zA-Z0-9._%%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`
	matched, _ := regexp.MatchString(pattern, email)
	return matched
}

func generateVerificationToken() string {
	bytes := make([]byte, 16)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}

func Register(c *gin.Context) {
	var input struct {
		FullName      string `json:"full_name" binding:"required"`
		Phone         string `json:"phone" binding:"required"`
		Email         string `json:"email" binding:"required,email"`
		Password      string `json:"password" binding:"required"`
		Role          string `json:"role"`
		BusinessName  string `json:"business_name"`
		BusinessType  string `json:"business_type"`
		OrganizerCode string `json:"organizer_code"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !isPasswordStrong(input.Password) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Kata laluan mesti sekurang-kurangnya 8 aksara dengan huruf dan nombor."})
		return
	}
	if !isEmailValid(input.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Format e-mel tidak sah."})
		return
	}

	// sign-up only creates tenant or organizer accounts; staff roles are
	// assigned administratively
	role := strings.ToLower(strings.TrimSpace(input.Role))
	if role != access.RoleOrganizer {
		role = access.RoleTenant
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal memproses kata laluan."})
		return
	}
	hashed := string(hashedPassword)

	profile := profiles.Profile{
		Email:        input.Email,
		FullName:     input.FullName,
		Phone:        input.Phone,
		Password:     &hashed,
		AuthProvider: "local",
		Role:         role,
		IsVerified:   false,
	}

	if err := database.DB.Create(&profile).Error; err != nil {
		log.Println("profile insert failed:", err)
		c.JSON(http.StatusConflict, gin.H{"error": "E-mel mungkin sudah didaftarkan."})
		return
	}

	// create the owning record the subscription will later be keyed on
	switch role {
	case access.RoleOrganizer:
		org := organizers.Organizer{
			ProfileID: &profile.ID,
			Name:      input.BusinessName,
			Phone:     input.Phone,
			Email:     input.Email,
			Code:      generateOrganizerCode(),
			Status:    organizers.StatusPending,
		}
		if err := database.DB.Create(&org).Error; err != nil {
			log.Println("organizer insert failed:", err)
		}
	default:
		tenant := tenants.Tenant{
			ProfileID:        &profile.ID,
			BusinessName:     input.BusinessName,
			BusinessType:     input.BusinessType,
			Phone:            input.Phone,
			Status:           "pending",
			AccountingStatus: tenants.AccountingInactive,
		}
		if input.OrganizerCode != "" {
			code := strings.ToUpper(strings.TrimSpace(input.OrganizerCode))
			tenant.OrganizerCode = &code
		}
		if err := database.DB.Create(&tenant).Error; err != nil {
			log.Println("tenant insert failed:", err)
		}
	}

	token := generateVerificationToken()
	verif := profiles.VerificationToken{
		ProfileID: profile.ID,
		Token:     token,
	}
	if err := database.DB.Create(&verif).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mencipta token pengesahan."})
		return
	}

	if err := SendVerificationEmail(profile.Email, token); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menghantar e-mel pengesahan."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Pendaftaran berjaya. Sila semak e-mel anda untuk pengesahan."})
}

func generateOrganizerCode() string {
	const letters = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	b := make([]byte, 6)
	rand.Read(b)
	for i := range b {
		b[i] = letters[int(b[i])%len(letters)]
	}
	return "PA-" + string(b)
}

func Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var profile profiles.Profile
	err := database.DB.Where("email = ?", input.Email).First(&profile).Error
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "E-mel atau kata laluan salah."})
		return
	}

	if !profile.IsVerified {
		c.JSON(http.StatusForbidden, gin.H{"error": "Sila sahkan e-mel anda sebelum log masuk."})
		return
	}

	if profile.Password == nil || *profile.Password == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Akaun ini menggunakan log masuk Google."})
		return
	}
	err = bcrypt.CompareHashAndPassword([]byte(*profile.Password), []byte(input.Password))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "E-mel atau kata laluan salah."})
		return
	}

	tokenString, err := issueAppJWT(profile)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mencipta token."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": tokenString})
}

// issueAppJWT bakes the resolved role into the token so the role guards never
// re-query the profile.
func issueAppJWT(profile profiles.Profile) (string, error) {
	role := access.ResolveRole(&profile, profile.Email, config.OPERATOR_EMAILS)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"profile_id": profile.ID,
		"email":      profile.Email,
		"role":       role,
		"exp":        time.Now().Add(time.Hour * 24).Unix(),
	})

	return token.SignedString([]byte(config.JWT_SECRET))
}

func VerifyEmail(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Token tidak sah."})
		return
	}

	var verif profiles.VerificationToken
	if err := database.DB.Where("token = ? AND type = ?", token, "").First(&verif).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Token tidak sah atau telah digunakan."})
		return
	}

	if err := database.DB.Model(&profiles.Profile{}).
		Where("id = ?", verif.ProfileID).
		Update("is_verified", true).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengesahkan akaun."})
		return
	}

	database.DB.Delete(&verif)

	c.JSON(http.StatusOK, gin.H{"message": "Akaun disahkan. Sila log masuk."})
}

func ResendVerification(c *gin.Context) {
	var body struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "E-mel tidak sah."})
		return
	}

	var profile profiles.Profile
	err := database.DB.Where("email = ?", body.Email).First(&profile).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Akaun tidak ditemui."})
		return
	}

	if profile.IsVerified {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Akaun sudah disahkan."})
		return
	}

	database.DB.Where("profile_id = ?", profile.ID).Delete(&profiles.VerificationToken{})

	token := generateVerificationToken()
	newToken := profiles.VerificationToken{
		ProfileID: profile.ID,
		Token:     token,
	}
	if err := database.DB.Create(&newToken).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menyimpan token pengesahan."})
		return
	}

	if err := SendVerificationEmail(profile.Email, token); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menghantar e-mel pengesahan."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "E-mel pengesahan dihantar semula."})
}

func RequestPasswordReset(c *gin.Context) {
	var body struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "E-mel tidak sah."})
		return
	}

	// Don't expose whether the email exists
	okMsg := gin.H{"message": "Jika e-mel anda wujud, pautan set semula akan dihantar."}

	var profile profiles.Profile
	if err := database.DB.Where("email = ?", body.Email).First(&profile).Error; err != nil {
		c.JSON(http.StatusOK, okMsg)
		return
	}

	database.DB.Where("profile_id = ? AND type = ?", profile.ID, "password_reset").Delete(&profiles.VerificationToken{})

	token := generateVerificationToken()
	reset := profiles.VerificationToken{
		ProfileID: profile.ID,
		Token:     token,
		Type:      "password_reset",
		ExpiresAt: time.Now().Add(1 * time.Hour),
	}
	database.DB.Create(&reset)

	resetLink := fmt.Sprintf("%s/reset-password?token=%s", config.APP_URL, token)
	if err := SendPasswordResetEmail(profile.Email, resetLink); err != nil {
		log.Println("reset email failed:", err)
	}

	c.JSON(http.StatusOK, okMsg)
}

func ResetPassword(c *gin.Context) {
	var body struct {
		Token       string `json:"token"`
		NewPassword string `json:"new_password"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Permintaan tidak sah."})
		return
	}

	if !isPasswordStrong(body.NewPassword) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Kata laluan mesti sekurang-kurangnya 8 aksara dengan huruf dan nombor."})
		return
	}

	var reset profiles.VerificationToken
	err := database.DB.Where("token = ? AND type = ?", body.Token, "password_reset").First(&reset).Error
	if err != nil || reset.ExpiresAt.Before(time.Now()) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Token tidak sah atau telah tamat tempoh."})
		return
	}

	hashed, _ := bcrypt.GenerateFromPassword([]byte(body.NewPassword), bcrypt.DefaultCost)
	database.DB.Model(&profiles.Profile{}).Where("id = ?", reset.ProfileID).Update("password", string(hashed))

	database.DB.Delete(&reset)

	c.JSON(http.StatusOK, gin.H{"message": "Kata laluan berjaya ditetapkan semula."})
}

func ChangePassword(c *gin.Context) {
	profileID := c.GetUint("profile_id")
	if profileID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Sila log masuk semula."})
		return
	}

	var body struct {
		OldPassword string `json:"old_password"`
		NewPassword string `json:"new_password"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Permintaan tidak sah."})
		return
	}

	if !isPasswordStrong(body.NewPassword) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Kata laluan baharu mesti sekurang-kurangnya 8 aksara dengan huruf dan nombor."})
		return
	}

	var profile profiles.Profile
	if err := database.DB.First(&profile, profileID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Akaun tidak ditemui."})
		return
	}

	if profile.Password == nil || *profile.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Akaun ini tiada kata laluan. Log masuk dengan Google atau tetapkan kata laluan dahulu."})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*profile.Password), []byte(body.OldPassword)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Kata laluan lama salah."})
		return
	}

	hashedNew, _ := bcrypt.GenerateFromPassword([]byte(body.NewPassword), bcrypt.DefaultCost)
	database.DB.Model(&profile).Update("password", string(hashedNew))

	c.JSON(http.StatusOK, gin.H{"message": "Kata laluan berjaya ditukar."})
}
