package auth

import (
	"fmt"
	"net/url"
)

// Avatar background colors, keyed by how the account was created.
const (
	registerAvatarColor = "10b981"
	googleAvatarColor   = "4285F4"
	facebookAvatarColor = "333"
)

// avatarURL derives a deterministic avatar image URL from the display name
// and a background color.
func avatarURL(name, background string) string {
	return fmt.Sprintf("https://ui-avatars.com/api/?name=%s&background=%s&color=fff",
		url.QueryEscape(name), background)
}

// providerAvatarColor maps a social provider to its avatar background.
func providerAvatarColor(p Provider) string {
	switch p {
	case ProviderGoogle:
		return googleAvatarColor
	case ProviderFacebook:
		return facebookAvatarColor
	default:
		return registerAvatarColor
	}
}
