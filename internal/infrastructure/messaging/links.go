package messaging

import (
	"fmt"
	"net/url"
	"strings"

	"assistencia_os/internal/domain/entities"
	"assistencia_os/internal/infrastructure/config"
)

// Brazilian numbers without the country prefix have 10 (landline) or 11
// (mobile) digits including the area code.
const maxLocalDigits = 11

// LinkBuilder composes public receipt URLs and messaging-app deep links.
type LinkBuilder struct {
	origin      string
	scheme      string
	countryCode string
}

func NewLinkBuilder(origin string, cfg config.MessagingConfig) *LinkBuilder {
	return &LinkBuilder{
		origin:      strings.TrimRight(origin, "/"),
		scheme:      cfg.Scheme,
		countryCode: cfg.CountryCode,
	}
}

// ShareURL returns <origin>/s/<id> for orders and <origin>/vs/<id> for resales.
func (b *LinkBuilder) ShareURL(kind entities.ShareKind, id string) string {
	prefix := "s"
	if kind == entities.ShareKindResale {
		prefix = "vs"
	}
	return fmt.Sprintf("%s/%s/%s", b.origin, prefix, url.PathEscape(id))
}

// OrderMessage is the text sent to the customer along with an order receipt.
func OrderMessage(customer, link string) string {
	greeting := "Olá!"
	if name := strings.TrimSpace(customer); name != "" {
		greeting = "Olá " + name + "!"
	}
	return greeting + " Segue sua OS:\n\n" + link
}

// ResaleMessage is the text sent to the buyer along with a sale receipt.
func ResaleMessage(link string) string {
	return "Olá! Segue o comprovante de venda:\n\n" + link
}

// DeepLink builds <scheme>://send?text=<text>&to=<phone>. The recipient is
// omitted when phone has no digits, leaving the contact choice to the app.
func (b *LinkBuilder) DeepLink(text, phone string) string {
	var sb strings.Builder
	sb.WriteString(b.scheme)
	sb.WriteString("://send?text=")
	sb.WriteString(escape(text))
	if to := NormalizePhone(phone, b.countryCode); to != "" {
		sb.WriteString("&to=")
		sb.WriteString(to)
	}
	return sb.String()
}

// NormalizePhone reduces raw to digits and prepends countryCode to local numbers.
func NormalizePhone(raw, countryCode string) string {
	digits := entities.DigitsOnly(raw)
	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		return ""
	}
	if countryCode != "" && len(digits) <= maxLocalDigits {
		return countryCode + digits
	}
	return digits
}

func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
