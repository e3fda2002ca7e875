package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

const tempPasswordCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// HashPassword hash un mot de passe avec bcrypt
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("impossible de hasher le mot de passe: %w", err)
	}

	return string(hash), nil
}

// VerifyPassword vérifie un mot de passe contre son hash bcrypt
func VerifyPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// GenerateTempPassword génère un mot de passe temporaire alphanumérique
func GenerateTempPassword(length int) (string, error) {
	if length <= 0 {
		length = 12
	}

	password := make([]byte, length)
	max := big.NewInt(int64(len(tempPasswordCharset)))

	for i := range password {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("impossible de générer le mot de passe: %w", err)
		}
		password[i] = tempPasswordCharset[n.Int64()]
	}

	return string(password), nil
}
