package uid

import "github.com/google/uuid"

// Generate returns a random identifier for tagging requests.
func Generate() string {
	return uuid.NewString()
}
