package lobby

import (
	"context"
	crand "crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"leleon/internal/ports"
)

const (
	JoinCodeChars  = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	JoinCodeLength = 6

	DefaultCodeAttempts = 20
)

// GenerateJoinCode returns a random code over JoinCodeChars.
func GenerateJoinCode() (string, error) {
	code := make([]byte, JoinCodeLength)
	limit := big.NewInt(int64(len(JoinCodeChars)))
	for i := range code {
		n, err := crand.Int(crand.Reader, limit)
		if err != nil {
			return "", fmt.Errorf("failed to generate join code: %w", err)
		}
		code[i] = JoinCodeChars[n.Int64()]
	}
	return string(code), nil
}

// NormalizeCode uppercases and trims a user-typed code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// LooksLikeCode reports whether ref has the shape of a join code.
func LooksLikeCode(ref string) bool {
	ref = NormalizeCode(ref)
	if len(ref) != JoinCodeLength {
		return false
	}
	for _, c := range ref {
		if !strings.ContainsRune(JoinCodeChars, c) {
			return false
		}
	}
	return true
}

func (s *Service) uniqueCode(ctx context.Context) (string, error) {
	for i := 0; i < s.codeAttempts; i++ {
		code, err := s.newCode()
		if err != nil {
			return "", err
		}
		_, _, err = s.store.LoadByCode(ctx, code)
		if errors.Is(err, ports.ErrGameNotFound) {
			return code, nil
		}
		if err != nil {
			return "", fmt.Errorf("failed to check join code: %w", err)
		}
	}
	return "", ErrNoFreeCode
}
