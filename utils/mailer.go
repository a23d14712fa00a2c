package utils

import (
	"fmt"

	"school-inventory/config"
	"school-inventory/models"

	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"
)

// SendLowStockMail emails the configured alert address about an asset that
// fell below its reorder threshold. A missing SMTP or recipient
// configuration turns this into a no-op; a send failure is logged but never
// fails the workflow that raised the alert.
func SendLowStockMail(asset models.Asset) {
	if config.SMTPHost == "" || config.AlertEmail == "" {
		return
	}

	m := gomail.NewMessage()
	m.SetHeader("From", config.SMTPUser)
	m.SetHeader("To", config.AlertEmail)
	m.SetHeader("Subject", fmt.Sprintf("Low stock: %s (%s)", asset.Name, asset.SKU))
	m.SetBody("text/plain", fmt.Sprintf(
		"Asset %s (%s) is low on stock.\n\nQuantity on hand: %d\nReorder threshold: %d\n",
		asset.Name, asset.SKU, asset.QuantityOnHand, asset.ReorderThreshold))

	d := gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPUser, config.SMTPPass)
	if err := d.DialAndSend(m); err != nil {
		log.Error().Err(err).Str("sku", asset.SKU).Msg("failed to send low stock mail")
	}
}
