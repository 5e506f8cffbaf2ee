package jwtx

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Signer is our interface for anything that can sign session tokens.
type Signer interface {
	Alg() string
	Sign(Claims) (string, error)
}

// ErrEmptySecret reports a signer or verifier constructed without key material.
var ErrEmptySecret = errors.New("jwtx: empty signing secret")

// NewSignerHS256 creates a symmetric HS256 signer from a shared secret.
// Every token minted by a process is verifiable only against the same secret.
func NewSignerHS256(secret string) (Signer, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	return &hs256Signer{secret: []byte(secret)}, nil
}

type hs256Signer struct {
	secret []byte
}

func (s *hs256Signer) Alg() string { return "HS256" }

func (s *hs256Signer) Sign(c Claims) (string, error) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	signed, err := tok.SignedString(s.secret)
	if err != nil {
		return "", err
	}
	return signed, nil
}
