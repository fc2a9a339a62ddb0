// Package token mints opaque download tokens. A token is generated
// exactly once, when a transaction is created, and becomes redeemable
// only after the admin flips the transaction to success.
package token

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

const randomBytes = 12

// NewDownloadToken returns "token_" followed by hex from crypto/rand.
// Collision odds across a store's lifetime are negligible at 96 bits.
func NewDownloadToken() string {
	buf := make([]byte, randomBytes)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the platform RNG is broken.
		panic(fmt.Sprintf("token: rand.Read: %v", err))
	}
	return "token_" + hex.EncodeToString(buf)
}
