package services

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"yamdb-backend/internal/models"
)

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewConfirmationCode draws a fresh code from src. Pass crypto/rand.Reader in
// production and a fixed reader in tests.
func NewConfirmationCode(src io.Reader) (string, error) {
	if src == nil {
		src = rand.Reader
	}

	max := big.NewInt(int64(len(codeAlphabet)))
	code := make([]byte, models.ConfirmationCodeLength)
	for i := range code {
		n, err := rand.Int(src, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate confirmation code: %w", err)
		}
		code[i] = codeAlphabet[n.Int64()]
	}
	return string(code), nil
}
