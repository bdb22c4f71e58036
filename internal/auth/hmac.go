package auth

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/lumendao/treasury-backend/internal/clock"
	"github.com/lumendao/treasury-backend/internal/model"
)

// HMAC issues and verifies credentials of the form
// "<account>.<expiry unix seconds>.<hex hmac-sha256>". The signature
// covers the account and expiry, keyed by a shared secret.
type HMAC struct {
	secret []byte
	clock  clock.Clock
}

// NewHMAC creates an HMAC authorizer from a shared secret.
func NewHMAC(secret []byte, clock clock.Clock) *HMAC {
	return &HMAC{
		secret: secret,
		clock:  clock,
	}
}

// Issue creates a credential for an account valid for ttl seconds.
func (h *HMAC) Issue(account model.Account, ttl uint64) string {
	expiry := h.clock.Now() + ttl
	payload := payload(account, expiry)
	return payload + "." + h.sign(payload)
}

// Verify checks a credential's signature and expiry and returns the
// account it was issued for.
func (h *HMAC) Verify(credential string) (model.Account, error) {
	last := strings.LastIndex(credential, ".")
	if last < 0 {
		return "", ErrInvalidCredential
	}
	signed, signature := credential[:last], credential[last+1:]

	account, expiry, err := parsePayload(signed)
	if err != nil {
		return "", err
	}
	if !hmac.Equal([]byte(signature), []byte(h.sign(signed))) {
		return "", ErrInvalidCredential
	}
	if h.clock.Now() >= expiry {
		return "", ErrExpiredCredential
	}
	return account, nil
}

// Require verifies the credential carried by the context and checks it
// was issued for the given account.
func (h *HMAC) Require(ctx context.Context, account model.Account) error {
	credential, ok := CredentialFromContext(ctx)
	if !ok {
		return ErrMissingCredential
	}

	issued, err := h.Verify(credential)
	if err != nil {
		return err
	}
	if issued != account {
		return fmt.Errorf("%w: have %q", ErrWrongAccount, issued)
	}
	return nil
}

func (h *HMAC) sign(payload string) string {
	mac := hmac.New(sha256.New, h.secret)
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}

func payload(account model.Account, expiry uint64) string {
	return string(account) + "." + strconv.FormatUint(expiry, 10)
}

func parsePayload(signed string) (model.Account, uint64, error) {
	last := strings.LastIndex(signed, ".")
	if last < 0 {
		return "", 0, ErrInvalidCredential
	}
	expiry, err := strconv.ParseUint(signed[last+1:], 10, 64)
	if err != nil {
		return "", 0, ErrInvalidCredential
	}
	return model.Account(signed[:last]), expiry, nil
}
