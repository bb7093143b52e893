package model

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"backoffice/shared/model"
)

const (
	TableName  = "email_verifications"
	EntityName = "email_verification"

	FieldID        = "id"
	FieldEmail     = "email"
	FieldCode      = "code"
	FieldExpiresAt = "expires_at"
)

const codeDigits = 6

type EmailVerification struct {
	ID        string    `db:"id"`
	Email     string    `db:"email"`
	Code      string    `db:"code"`
	ExpiresAt time.Time `db:"expires_at"`
	model.Metadata
}

func (v *EmailVerification) Expired(now time.Time) bool {
	return now.After(v.ExpiresAt)
}

// NewCode returns a zero-padded numeric code drawn from crypto/rand.
func NewCode() (string, error) {
	limit := big.NewInt(1)
	for i := 0; i < codeDigits; i++ {
		limit.Mul(limit, big.NewInt(10))
	}

	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", fmt.Errorf("failed to generate verification code: %w", err)
	}

	return fmt.Sprintf("%06d", n.Int64()), nil
}
