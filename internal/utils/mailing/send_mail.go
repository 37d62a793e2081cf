package mailing

import (
	"MediTrack-Backend/internal/utils"
	"fmt"
	"strconv"

	"gopkg.in/gomail.v2"
)

type MailConfig struct {
	AppURL       string
	SMTPHost     string
	SMTPPort     string
	SMTPSender   string
	SMTPEmail    string
	SMTPPassword string
}

func LoadMailConfig() MailConfig {
	return MailConfig{
		AppURL:       utils.GetConfig("APP_URL"),
		SMTPHost:     utils.GetConfig("SMTP_HOST"),
		SMTPPort:     utils.GetConfig("SMTP_PORT"),
		SMTPSender:   utils.GetConfig("SMTP_SENDER_NAME"),
		SMTPEmail:    utils.GetConfig("SMTP_AUTH_EMAIL"),
		SMTPPassword: utils.GetConfig("SMTP_AUTH_PASSWORD"),
	}
}

func SendMail(toEmail string, subject string, body string) error {
	emailConfig := LoadMailConfig()

	mailer := gomail.NewMessage()
	mailer.SetHeader("From", emailConfig.SMTPEmail)
	mailer.SetHeader("To", toEmail)
	mailer.SetHeader("Subject", subject)
	mailer.SetBody("text/html", body)
	port, err := strconv.Atoi(emailConfig.SMTPPort)
	if err != nil {
		return err
	}
	dialer := gomail.NewDialer(
		emailConfig.SMTPHost,
		port,
		emailConfig.SMTPEmail,
		emailConfig.SMTPPassword,
	)

	return dialer.DialAndSend(mailer)
}

func SendOTPMail(toEmail string, name string, code string) error {
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your MediTrack verification code is <b>%s</b>. It expires in 10 minutes.</p>",
		name, code,
	)
	return SendMail(toEmail, "Verify your MediTrack account", body)
}

func SendResetPasswordMail(toEmail string, name string, resetLink string) error {
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Reset your MediTrack password using <a href=\"%s\">this link</a>. The link expires in 30 minutes.</p>",
		name, resetLink,
	)
	return SendMail(toEmail, "Reset your MediTrack password", body)
}
