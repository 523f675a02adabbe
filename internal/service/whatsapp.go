package service

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/tikprofil/tikprofil-api/internal/models"
)

// BuildWhatsAppLink builds a wa.me deep link carrying the order summary.
// Returns an empty string when the business has no WhatsApp number.
func BuildWhatsAppLink(business *models.Business, order *models.Order) string {
	digits := normalizePhoneDigits(business.WhatsappPhone)
	if digits == "" {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Merhaba, %s siparişim:\n", order.OrderNo)
	for _, item := range order.Items {
		fmt.Fprintf(&b, "%dx %s", item.Quantity, item.ProductName)
		if item.SizeName != "" {
			fmt.Fprintf(&b, " (%s)", item.SizeName)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "Toplam: %s %s", order.TotalAmount.String(), order.Currency)

	return fmt.Sprintf("https://wa.me/%s?text=%s", digits, url.QueryEscape(b.String()))
}

// normalizePhoneDigits strips everything but digits from a phone number.
func normalizePhoneDigits(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
