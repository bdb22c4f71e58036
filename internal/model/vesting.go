package model

import (
	"math/big"
	"time"
)

// VestingStatus describes the lifecycle state of a vesting schedule.
// The only allowed transitions are Active -> FullyClaimed and Active -> Revoked.
type VestingStatus string

var (
	VestingActive       VestingStatus = "active"
	VestingRevoked      VestingStatus = "revoked"
	VestingFullyClaimed VestingStatus = "fully_claimed"
)

// Terminal reports whether no further mutation of the schedule is allowed.
func (s VestingStatus) Terminal() bool {
	return s == VestingRevoked || s == VestingFullyClaimed
}

// VestingSchedule releases nothing before StartTime+CliffDuration, unlocks
// CliffAmount at the cliff instant, and releases the remainder linearly
// until StartTime+TotalDuration.
//
// Example: 48-month vesting with a 12-month cliff. Nothing vests for the
// first 12 months, 25% unlocks at month 12, the remaining 75% vests
// linearly over the next 36 months.
type VestingSchedule struct {
	ID            uint32
	Grantor       Account
	Beneficiary   Account
	Token         Token
	TotalAmount   *big.Int
	ClaimedAmount *big.Int
	StartTime     uint64
	CliffDuration uint64
	CliffAmount   *big.Int
	TotalDuration uint64
	Label         string
	Revocable     bool
	Status        VestingStatus
	UpdatedAt     time.Time
}
