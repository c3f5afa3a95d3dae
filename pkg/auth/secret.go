package auth

import "crypto/subtle"

// SecretsEqual compares two shared secrets in constant time. An empty
// expected secret never matches.
func SecretsEqual(expected, got string) bool {
	if expected == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(expected), []byte(got)) == 1
}
