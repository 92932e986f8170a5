// Package share builds shareable payment links and WhatsApp deep links.
package share

import (
	"fmt"
	"net/url"
	"strings"
)

// PaymentLink builds the public payment URL for an order.
func PaymentLink(origin, orderID string) string {
	return fmt.Sprintf("%s/pay/%s", strings.TrimSuffix(origin, "/"), orderID)
}

// WhatsAppText builds the templated message body for a row.
func WhatsAppText(customer, formattedAmount, link string) string {
	return fmt.Sprintf("Payment for %s: %s — %s", customer, formattedAmount, link)
}

// WhatsAppURL builds a wa.me deep link pre-filled with the given text.
func WhatsAppURL(text string) string {
	return "https://wa.me/?text=" + url.QueryEscape(text)
}
