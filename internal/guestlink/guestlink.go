// Package guestlink builds the shareable artifacts for a guest's personal
// invitation: the absolute URL, the prefilled WhatsApp message and a QR
// code image.
package guestlink

import (
	"fmt"
	"net/url"
	"strings"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/Sumatoha/shaq-web/internal/model"
)

// Builder resolves relative personal links against the public site origin.
type Builder struct {
	publicURL string
}

func NewBuilder(publicURL string) *Builder {
	return &Builder{publicURL: strings.TrimRight(publicURL, "/")}
}

// PersonalURL returns the absolute invitation URL for the guest. Links the
// persistence API already made absolute pass through unchanged.
func (b *Builder) PersonalURL(guest model.Guest) string {
	link := guest.PersonalLink
	if link == "" {
		link = "/i/" + guest.Slug
	}
	if strings.HasPrefix(link, "http://") || strings.HasPrefix(link, "https://") {
		return link
	}
	if !strings.HasPrefix(link, "/") {
		link = "/" + link
	}
	return b.publicURL + link
}

// WhatsAppURL returns a wa.me link with the invitation message prefilled in
// Kazakh, addressed to the guest by name.
func (b *Builder) WhatsAppURL(guest model.Guest) string {
	message := fmt.Sprintf("Құрметті %s!\n\nСізді біздің тойға шақырамыз!\n\n%s", guest.Name, b.PersonalURL(guest))
	return "https://wa.me/?text=" + url.QueryEscape(message)
}

// QRPNG renders the personal URL as a PNG, size pixels per side.
func (b *Builder) QRPNG(guest model.Guest, size int) ([]byte, error) {
	if size <= 0 {
		size = 256
	}
	png, err := qrcode.Encode(b.PersonalURL(guest), qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("encode qr for %s: %w", guest.Slug, err)
	}
	return png, nil
}
