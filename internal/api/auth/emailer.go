package auth

import (
	"fmt"
	"log"
	"net/smtp"
	"os"

	"github.com/webdevsha/permitakaun-6608e2f-sub002/config"
)

func sendMail(to, subject, body string) error {
	from := os.Getenv("SMTP_FROM")
	password := os.Getenv("SMTP_PASSWORD")
	host := os.Getenv("SMTP_HOST")
	port := os.Getenv("SMTP_PORT")

	auth := smtp.PlainAuth("", from, password, host)

	message := []byte("Subject: " + subject + "\r\n" +
		"From: " + from + "\r\n" +
		"To: " + to + "\r\n" +
		"Content-Type: text/plain; charset=UTF-8\r\n" +
		"\r\n" +
		body + "\r\n")

	err := smtp.SendMail(host+":"+port, auth, from, []string{to}, message)
	if err != nil {
		log.Println("SMTP error:", err)
	}
	return err
}

func SendVerificationEmail(to string, token string) error {
	link := fmt.Sprintf("%s/verify?token=%s", config.APP_URL, token)
	body := fmt.Sprintf("Sila klik pautan berikut untuk mengesahkan akaun Permit Akaun anda:\n\n%s", link)
	return sendMail(to, "Sahkan Akaun Permit Akaun", body)
}

func SendPasswordResetEmail(to string, link string) error {
	body := fmt.Sprintf("Sila klik pautan berikut untuk menetapkan semula kata laluan anda:\n\n%s\n\nPautan ini sah selama 1 jam.", link)
	return sendMail(to, "Set Semula Kata Laluan", body)
}
