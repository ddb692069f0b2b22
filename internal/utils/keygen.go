package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
	"time"
)

// GenerateOrderNumber produces a client-side fallback order number for the
// case where the upstream accepts an order but omits an identifier.
// Format: NFC<year><6 digits>, e.g. NFC2025483920. The prefix marks the
// number as locally generated.
func GenerateOrderNumber() string {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		// crypto/rand failing is effectively unreachable; fall back to a
		// clock-derived suffix rather than returning an error for a cosmetic
		// identifier.
		return fmt.Sprintf("NFC%d%06d", time.Now().Year(), time.Now().UnixNano()%1_000_000)
	}
	return fmt.Sprintf("NFC%d%06d", time.Now().Year(), n.Int64())
}

// GenerateToken returns a random hex token with the given prefix.
// Format: prefix_randomhex
func GenerateToken(prefix string) (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s_%s", prefix, hex.EncodeToString(b)), nil
}
