// Package token moves value through the escrow ledger. Balances are
// never stored: they are folded from the append-only transfer log.
package token

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/google/uuid"

	"github.com/lumendao/treasury-backend/internal/clock"
	"github.com/lumendao/treasury-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// Failure kinds.
var (
	ErrInvalidTransfer = errors.New("invalid transfer")
	ErrEscrowOverdraft = errors.New("escrow overdraft")
)

// Store is the ledger persistence the mover needs.
type Store interface {
	InsertTransfers(ctx context.Context, transfers []model.Transfer) error
	TokenBalance(ctx context.Context, token model.Token, account model.Account) (*big.Int, error)
}

// Ledger is a TokenMover backed by the transfer log. Escrow outflows are
// checked against the folded balance so the contract-held account can
// never go negative; external accounts are outside the ledger's view and
// are not checked.
type Ledger struct {
	store Store
	clock clock.Clock
}

// NewLedger creates a ledger-backed token mover.
func NewLedger(store Store, clock clock.Clock) *Ledger {
	return &Ledger{
		store: store,
		clock: clock,
	}
}

// Move appends one transfer row. The ID and timestamp are filled in when
// the caller leaves them zero.
func (l *Ledger) Move(ctx context.Context, transfer model.Transfer) error {
	if transfer.Amount == nil || transfer.Amount.Sign() <= 0 {
		return ErrInvalidTransfer
	}
	if transfer.From == transfer.To {
		return ErrInvalidTransfer
	}

	if transfer.From == model.EscrowAccount {
		balance, err := l.store.TokenBalance(ctx, transfer.Token, model.EscrowAccount)
		if err != nil {
			return fmt.Errorf("load escrow balance: %w", err)
		}
		if balance.Cmp(transfer.Amount) < 0 {
			return fmt.Errorf("%w: have %s, need %s", ErrEscrowOverdraft, balance, transfer.Amount)
		}
	}

	if transfer.ID == "" {
		transfer.ID = uuid.NewString()
	}
	if transfer.At == 0 {
		transfer.At = l.clock.Now()
	}

	if err := l.store.InsertTransfers(ctx, []model.Transfer{transfer}); err != nil {
		return fmt.Errorf("append transfer: %w", err)
	}
	return nil
}

// Balance folds the ledger into the current balance of one account.
func (l *Ledger) Balance(ctx context.Context, token model.Token, account model.Account) (*big.Int, error) {
	balance, err := l.store.TokenBalance(ctx, token, account)
	if err != nil {
		return nil, fmt.Errorf("load balance: %w", err)
	}
	return balance, nil
}
