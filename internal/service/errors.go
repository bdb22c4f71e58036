package service

import "errors"

// Failure kinds returned to callers. A failed call never commits partial
// state: validation happens before any mutation or transfer instruction.
var (
	ErrNotInitialized     = errors.New("module not initialized")
	ErrAlreadyInitialized = errors.New("module already initialized")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrInvalidDuration    = errors.New("invalid duration")
	ErrInvalidSchedule    = errors.New("invalid schedule")
	ErrInvalidStartTime   = errors.New("start time in the past")
	ErrInvalidRecipient   = errors.New("invalid recipient")
	ErrScheduleNotFound   = errors.New("schedule not found")
	ErrAlreadyTerminal    = errors.New("schedule already terminal")
	ErrNothingToClaim     = errors.New("nothing to claim")
	ErrNotRevocable       = errors.New("schedule not revocable")
)

// Treasury failure kinds.
var (
	ErrInvalidThreshold      = errors.New("invalid threshold")
	ErrNotASigner            = errors.New("caller is not a signer")
	ErrAlreadyASigner        = errors.New("already a signer")
	ErrWithdrawalNotFound    = errors.New("withdrawal not found")
	ErrWithdrawalNotPending  = errors.New("withdrawal not pending")
	ErrWithdrawalNotApproved = errors.New("withdrawal not approved")
	ErrAlreadyApproved       = errors.New("already approved")
	ErrInsufficientBalance   = errors.New("insufficient escrow balance")
)

// Governance failure kinds.
var (
	ErrNotAMember          = errors.New("caller is not a member")
	ErrAlreadyAMember      = errors.New("already a member")
	ErrProposalNotFound    = errors.New("proposal not found")
	ErrAlreadyVoted        = errors.New("already voted")
	ErrInvalidVote         = errors.New("invalid vote choice")
	ErrVotingNotActive     = errors.New("voting not active")
	ErrVotingPeriodExpired = errors.New("voting period expired")
	ErrProposalStillActive = errors.New("voting period still open")
	ErrProposalNotApproved = errors.New("proposal not approved")
	ErrProposalNotExpired  = errors.New("grace period not elapsed")
)
