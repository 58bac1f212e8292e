package scope

import (
	"freelanceros/config"

	"github.com/google/uuid"
)

// NewShareToken returns an unguessable token for public read access to one
// scope snapshot.
func NewShareToken() string {
	return uuid.NewString()
}

// BuildShareURL builds the public link for a share token.
// Example: "https://app.example.com/scope/share/<token>"
func BuildShareURL(token string) string {
	return config.APP_URL + "/scope/share/" + token
}
