package mailer

import (
	"doctorsportal-service/internal/app/contracts"
	"doctorsportal-service/internal/app/drivers/mailer"
	"doctorsportal-service/internal/pkg/constvars"
	"doctorsportal-service/internal/pkg/exceptions"
	"fmt"
	"net/smtp"
	"regexp"
)

type mailerService struct {
	Client *mailer.SMTPClient
}

func NewMailerService(client *mailer.SMTPClient) contracts.MailerService {
	return &mailerService{
		Client: client,
	}
}

func (svc *mailerService) SendHTMLEmail(to, subject, htmlBody string) error {
	from := svc.Client.EmailSender
	msg := []byte(fmt.Sprintf(constvars.EmailSendHTMLSubjectFormat, to, subject, htmlBody))
	addr := fmt.Sprintf("%s:%d", svc.Client.Host, svc.Client.Port)
	err := smtp.SendMail(addr, svc.Client.Auth, from, []string{to}, msg)
	if err != nil {
		return exceptions.ErrSMTPSendEmail(err, svc.Client.Host)
	}
	return nil
}

func ValidateEmail(email string) bool {
	re := regexp.MustCompile(constvars.RegexEmail)
	return re.MatchString(email)
}
