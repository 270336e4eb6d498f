package session

import (
	"fmt"
	"strings"
)

// OAuth providers the API exposes redirect endpoints for.
const (
	ProviderGoogle = "google"
	ProviderGithub = "github"
)

// SocialRedirectURL builds the URL a browser must visit to start the OAuth
// flow with the given provider. The token lands via the provider callback,
// so the client only hands out the address.
func SocialRedirectURL(siteBaseURL, provider string) (string, error) {
	switch provider {
	case ProviderGoogle, ProviderGithub:
	default:
		return "", fmt.Errorf("unknown oauth provider %q", provider)
	}
	return fmt.Sprintf("%s/auth/%s/redirect", strings.TrimRight(siteBaseURL, "/"), provider), nil
}
