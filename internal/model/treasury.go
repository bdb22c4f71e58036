package model

import (
	"math/big"
	"time"
)

// WithdrawalStatus describes the lifecycle of a multisig withdrawal request.
type WithdrawalStatus string

var (
	WithdrawalPending  WithdrawalStatus = "pending"
	WithdrawalApproved WithdrawalStatus = "approved"
	WithdrawalExecuted WithdrawalStatus = "executed"
)

// WithdrawalRequest asks the treasury to pay Amount of Token to Recipient.
// It starts Pending with the proposer counted as the first approval and
// becomes Approved once the signer threshold is met.
type WithdrawalRequest struct {
	ID        uint32
	Proposer  Account
	Token     Token
	Recipient Account
	Amount    *big.Int
	Memo      string
	Approvals []Account
	Status    WithdrawalStatus
	CreatedAt uint64
	UpdatedAt time.Time
}

// TreasuryState is the persisted signer-set configuration. It is stored
// as a single full-record row and replaced wholesale on every change.
type TreasuryState struct {
	Admin     Account
	Signers   []Account
	Threshold uint32
	UpdatedAt time.Time
}

// TreasuryConfig is the signer-set snapshot returned by config queries.
type TreasuryConfig struct {
	Admin     Account
	Signers   []Account
	Threshold uint32
	Proposals uint32
}
