package services

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// generatePlayerID produces a human-readable id like "P483920". Collisions
// are possible and handled by retrying the insert.
func generatePlayerID() string {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "P000000"
	}
	return fmt.Sprintf("P%06d", n.Int64())
}
