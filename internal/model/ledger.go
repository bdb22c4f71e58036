// Package model defines domain models for the treasury backend.
package model

import (
	"math/big"
	"time"
)

// Account identifies a ledger account (sender, recipient, signer, member).
type Account string

// Token identifies the fungible asset a schedule releases.
type Token string

// ScheduleKind distinguishes the two schedule variants sharing one index.
type ScheduleKind string

var (
	KindStream  ScheduleKind = "stream"
	KindVesting ScheduleKind = "vesting"
)

// Role describes which side of a schedule an account is on.
type Role string

var (
	RoleSender    Role = "sender"
	RoleRecipient Role = "recipient"
)

// IndexEntry associates an account with a schedule it sent or receives.
// Entries are append-only and keep creation order.
type IndexEntry struct {
	Account    Account
	Role       Role
	Kind       ScheduleKind
	ScheduleID uint32
	CreatedAt  time.Time
}

// Claim is one row of the append-only claim history for a schedule.
type Claim struct {
	Kind       ScheduleKind
	ScheduleID uint32
	Recipient  Account
	Amount     *big.Int
	ClaimedAt  uint64
}

// TransferKind describes why value moved through the escrow ledger.
type TransferKind string

var (
	TransferEscrow  TransferKind = "escrow"
	TransferPayout  TransferKind = "payout"
	TransferRefund  TransferKind = "refund"
	TransferDeposit TransferKind = "deposit"
	TransferOutflow TransferKind = "outflow"
)

// Transfer is one double-entry row in the escrow ledger. From or To may be
// EscrowAccount when the contract-held balance is a party.
type Transfer struct {
	ID         string
	Kind       TransferKind
	Token      Token
	From       Account
	To         Account
	Amount     *big.Int
	Reference  ScheduleKind
	ScheduleID uint32
	At         uint64
}

// EscrowAccount is the internal account backing all schedule payouts.
const EscrowAccount Account = "escrow"

// Event is a domain event appended to the event log.
type Event struct {
	ID      string
	Topic   string
	Subject Account
	Payload string
	At      time.Time
}
