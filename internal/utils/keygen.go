// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/rand"
	"fmt"
	"io"
)

const (
	// KeyLength is the number of characters in a generated sync key or link id.
	KeyLength = 64

	// KeyAlphabet holds the 62 characters keys are drawn from.
	KeyAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	// rejectThreshold is the largest multiple of len(KeyAlphabet) that fits
	// in a byte. Random bytes at or above it are discarded so that every
	// character is equally likely.
	rejectThreshold = 256 - 256%len(KeyAlphabet)
)

//go:generate mockgen -source=keygen.go -destination=../mock/key_generator_mock.go -package=mock

// KeyGenerator produces candidate keys. Implementations need not guarantee
// uniqueness; callers check for collisions and draw again.
type KeyGenerator interface {
	Generate() (string, error)
}

// RandomKeyGenerator draws KeyLength characters independently and uniformly
// from KeyAlphabet using a cryptographically secure source.
type RandomKeyGenerator struct {
	source io.Reader
}

// NewRandomKeyGenerator returns a generator reading from crypto/rand.
func NewRandomKeyGenerator() *RandomKeyGenerator {
	return &RandomKeyGenerator{source: rand.Reader}
}

func (g *RandomKeyGenerator) Generate() (string, error) {
	key := make([]byte, 0, KeyLength)
	buf := make([]byte, KeyLength)

	for len(key) < KeyLength {
		if _, err := io.ReadFull(g.source, buf); err != nil {
			return "", fmt.Errorf("error reading random bytes: %w", err)
		}

		for _, b := range buf {
			if int(b) >= rejectThreshold {
				continue
			}
			key = append(key, KeyAlphabet[int(b)%len(KeyAlphabet)])
			if len(key) == KeyLength {
				break
			}
		}
	}

	return string(key), nil
}
