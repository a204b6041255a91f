package directory

import (
	"encoding/json"
	"fmt"
)

// ParseSeed decodes a JSON array of identities, as supplied through
// SEED_USERS_JSON. Entries must at least carry an email.
func ParseSeed(data []byte) ([]Identity, error) {
	var seed []Identity
	if err := json.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("directory: parse seed: %w", err)
	}
	for i, identity := range seed {
		if identity.Email == "" {
			return nil, fmt.Errorf("directory: parse seed: entry %d has no email", i)
		}
	}
	return seed, nil
}

// DefaultSeed returns the development fixture used when no seed is configured.
func DefaultSeed() []Identity {
	return []Identity{
		{Email: "ana@example.com", Username: "ana", Password: "sunshine1"},
		{Email: "marcus@example.com", Username: "marcusb", Password: "letmein22"},
		{Email: "sofia.reyes@example.com", Username: "sreyes", Password: "glow2024"},
	}
}
