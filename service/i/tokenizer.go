package i

import "time"

// Tokenizer issues and verifies the bearer tokens that guard protected routes.
type Tokenizer interface {
	// Generate signs claims into a token that expires after expTime.
	Generate(claims map[string]interface{}, expTime time.Duration) (string, error)

	// Decode verifies a token's signature, expiry and issuer and returns its claims.
	Decode(token string) (map[string]interface{}, error)
}
