package services

import (
	"fmt"

	"supply-chain-app/config"
	"supply-chain-app/models"
	"supply-chain-app/utils"

	"gopkg.in/gomail.v2"
)

// NotificationService mails the supplier contact when a reorder is placed.
// It stays disabled until SMTP_HOST is configured.
type NotificationService struct {
	host     string
	port     int
	user     string
	password string
}

func NewNotificationService() *NotificationService {
	return &NotificationService{
		host:     config.SMTPHost,
		port:     config.SMTPPort,
		user:     config.SMTPUser,
		password: config.SMTPPassword,
	}
}

func (n *NotificationService) Enabled() bool {
	return n.host != ""
}

func (n *NotificationService) SendReorderPlaced(supplier *models.Supplier, product *models.Product, quantity int, reference string) error {
	if !n.Enabled() {
		return nil
	}

	subject := "Reorder " + reference + " placed"
	body := fmt.Sprintf(`
		<html>
			<body>
				<h3>A replenishment order has been placed</h3>
				<p>Reference: <strong>%s</strong></p>
				<p>Product: %s (%s)</p>
				<p>Quantity: %d</p>
				<p>Expected delivery: %s</p>
				<p>This is an auto-generated email. Please do not reply.</p>
			</body>
		</html>
	`, reference, product.Name, product.SKU, quantity, utils.FormatHumanDate(*product.NextDelivery))

	msg := gomail.NewMessage()
	msg.SetHeader("From", n.user)
	msg.SetHeader("To", supplier.ContactEmail)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	dialer := gomail.NewDialer(n.host, n.port, n.user, n.password)
	return dialer.DialAndSend(msg)
}
