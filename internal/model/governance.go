package model

import (
	"math/big"
	"time"
)

// ProposalStatus describes the lifecycle of a budget proposal.
type ProposalStatus string

var (
	ProposalActive    ProposalStatus = "active"
	ProposalApproved  ProposalStatus = "approved"
	ProposalRejected  ProposalStatus = "rejected"
	ProposalExecuted  ProposalStatus = "executed"
	ProposalCancelled ProposalStatus = "cancelled"
	// ProposalExpired marks a proposal nobody finalized within the grace
	// period after its voting window closed.
	ProposalExpired ProposalStatus = "expired"
)

// VoteChoice is a single member's position on a proposal.
type VoteChoice string

var (
	VoteYes     VoteChoice = "yes"
	VoteNo      VoteChoice = "no"
	VoteAbstain VoteChoice = "abstain"
)

// VoteRecord is one member's vote on one proposal.
type VoteRecord struct {
	Voter     Account
	Choice    VoteChoice
	Timestamp uint64
}

// Proposal is a budget proposal requesting Amount of Token for Recipient.
type Proposal struct {
	ID           uint32
	Proposer     Account
	Title        string
	Token        Token
	Amount       *big.Int
	Recipient    Account
	YesVotes     uint32
	NoVotes      uint32
	AbstainVotes uint32
	Votes        []VoteRecord
	Status       ProposalStatus
	StartTime    uint64
	EndTime      uint64
	UpdatedAt    time.Time
}

// GovernanceState is the persisted DAO configuration. It is stored as a
// single full-record row and replaced wholesale on every change.
type GovernanceState struct {
	Admin            Account
	Members          []Account
	QuorumPercentage uint32
	VotingDuration   uint64
	GracePeriod      uint64
	UpdatedAt        time.Time
}

// GovernanceConfig is the voting-rule snapshot returned by config queries.
type GovernanceConfig struct {
	Admin            Account
	QuorumPercentage uint32
	VotingDuration   uint64
	GracePeriod      uint64
	MemberCount      uint32
}
