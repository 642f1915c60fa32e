package identity

import (
	"context"
	"fmt"
	"strings"

	"dropcircle/internal/shared/config"
)

// StaticVerifier resolves tokens from a fixed table in config. It stands in
// for the hosted identity provider in development and tests.
type StaticVerifier struct {
	tokens map[string]string
}

func NewStaticVerifier(tokens map[string]string) *StaticVerifier {
	table := make(map[string]string, len(tokens))
	for token, accountID := range tokens {
		table[strings.TrimSpace(token)] = strings.TrimSpace(accountID)
	}
	return &StaticVerifier{tokens: table}
}

func (v *StaticVerifier) Verify(_ context.Context, token string) (string, bool, error) {
	accountID, ok := v.tokens[token]
	if !ok || accountID == "" {
		return "", false, nil
	}
	return accountID, true, nil
}

// NewVerifierFromConfig builds the verifier for the configured mode.
func NewVerifierFromConfig(cfg *config.IdentityConfig) (Verifier, error) {
	switch strings.ToLower(cfg.Mode) {
	case "", "static":
		return NewStaticVerifier(cfg.Tokens), nil
	default:
		return nil, fmt.Errorf("unknown identity mode: %s", cfg.Mode)
	}
}
