package model

import (
	"math/big"
	"time"
)

// StreamStatus describes the lifecycle state of a payroll stream.
// The only allowed transitions are Active -> Completed and Active -> Cancelled.
type StreamStatus string

var (
	StreamActive    StreamStatus = "active"
	StreamCancelled StreamStatus = "cancelled"
	StreamCompleted StreamStatus = "completed"
)

// Terminal reports whether no further mutation of the stream is allowed.
func (s StreamStatus) Terminal() bool {
	return s == StreamCancelled || s == StreamCompleted
}

// Stream is a continuous payment stream releasing TotalAmount linearly
// from StartTime to EndTime. Amounts are 128-bit ledger integers.
type Stream struct {
	ID            uint32
	Sender        Account
	Recipient     Account
	Token         Token
	TotalAmount   *big.Int
	ClaimedAmount *big.Int
	StartTime     uint64
	EndTime       uint64
	LastClaimTime uint64
	Status        StreamStatus
	UpdatedAt     time.Time
}

// CreateStreamParams carries one entry of a batch stream creation.
type CreateStreamParams struct {
	Recipient   Account
	Token       Token
	TotalAmount *big.Int
	StartTime   uint64
	EndTime     uint64
}

// Progress is a point-in-time projection of a schedule. Accrued is the
// amount released by the formula, Claimable is Accrued minus Claimed,
// clamped to zero.
type Progress struct {
	Total     *big.Int
	Accrued   *big.Int
	Claimed   *big.Int
	Claimable *big.Int
	Status    string
}
