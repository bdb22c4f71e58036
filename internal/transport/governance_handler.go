package transport

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lumendao/treasury-backend/internal/model"
)

// GovernanceHandler serves the DAO governance routes.
type GovernanceHandler struct {
	governance GovernanceService
}

// NewGovernanceHandler returns a GovernanceHandler instance.
func NewGovernanceHandler(governance GovernanceService) *GovernanceHandler {
	return &GovernanceHandler{governance: governance}
}

// Register mounts the governance routes on the group.
func (h *GovernanceHandler) Register(g *gin.RouterGroup) {
	g.POST("/governance/initialize", h.initialize)
	g.POST("/governance/proposals", h.createProposal)
	g.POST("/governance/proposals/:id/votes", h.vote)
	g.POST("/governance/proposals/:id/finalize", h.finalize)
	g.POST("/governance/proposals/:id/execute", h.execute)
	g.POST("/governance/proposals/:id/cancel", h.cancel)
	g.POST("/governance/proposals/:id/expire", h.expire)
	g.GET("/governance/proposals/:id", h.proposal)
	g.GET("/governance/config", h.config)
	g.POST("/governance/members", h.addMember)
	g.POST("/governance/members/remove", h.removeMember)
}

type initializeGovernanceRequest struct {
	Admin            string   `json:"admin" binding:"required"`
	Members          []string `json:"members" binding:"required,min=1"`
	QuorumPercentage uint32   `json:"quorum_percentage" binding:"required"`
	VotingDuration   uint64   `json:"voting_duration" binding:"required"`
	GracePeriod      uint64   `json:"grace_period" binding:"required"`
}

func (h *GovernanceHandler) initialize(c *gin.Context) {
	var req initializeGovernanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "invalid request body")
		return
	}

	err := h.governance.Initialize(
		c.Request.Context(),
		model.Account(req.Admin),
		toAccounts(req.Members),
		req.QuorumPercentage,
		req.VotingDuration,
		req.GracePeriod,
	)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type createProposalRequest struct {
	Proposer  string `json:"proposer" binding:"required"`
	Title     string `json:"title" binding:"required"`
	Token     string `json:"token" binding:"required"`
	Amount    string `json:"amount" binding:"required"`
	Recipient string `json:"recipient" binding:"required"`
}

func (h *GovernanceHandler) createProposal(c *gin.Context) {
	var req createProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "invalid request body")
		return
	}
	amount, ok := parseAmount(req.Amount)
	if !ok {
		writeBadRequest(c, "invalid amount")
		return
	}

	id, err := h.governance.CreateProposal(
		c.Request.Context(),
		model.Account(req.Proposer),
		req.Title,
		model.Token(req.Token),
		amount,
		model.Account(req.Recipient),
	)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

type voteRequest struct {
	Voter  string `json:"voter" binding:"required"`
	Choice string `json:"choice" binding:"required"`
}

func (h *GovernanceHandler) vote(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req voteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "invalid request body")
		return
	}

	err := h.governance.Vote(c.Request.Context(), model.Account(req.Voter), id, model.VoteChoice(req.Choice))
	if err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *GovernanceHandler) finalize(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req claimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "invalid request body")
		return
	}

	status, err := h.governance.Finalize(c.Request.Context(), model.Account(req.Account), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": string(status)})
}

func (h *GovernanceHandler) execute(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req claimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "invalid request body")
		return
	}

	if err := h.governance.Execute(c.Request.Context(), model.Account(req.Account), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *GovernanceHandler) cancel(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req claimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "invalid request body")
		return
	}

	if err := h.governance.Cancel(c.Request.Context(), model.Account(req.Account), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *GovernanceHandler) expire(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req claimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "invalid request body")
		return
	}

	if err := h.governance.Expire(c.Request.Context(), model.Account(req.Account), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type voteResponse struct {
	Voter     string `json:"voter"`
	Choice    string `json:"choice"`
	Timestamp uint64 `json:"timestamp"`
}

type proposalResponse struct {
	ID           uint32         `json:"id"`
	Proposer     string         `json:"proposer"`
	Title        string         `json:"title"`
	Token        string         `json:"token"`
	Amount       string         `json:"amount"`
	Recipient    string         `json:"recipient"`
	YesVotes     uint32         `json:"yes_votes"`
	NoVotes      uint32         `json:"no_votes"`
	AbstainVotes uint32         `json:"abstain_votes"`
	Votes        []voteResponse `json:"votes"`
	Status       string         `json:"status"`
	StartTime    uint64         `json:"start_time"`
	EndTime      uint64         `json:"end_time"`
}

func (h *GovernanceHandler) proposal(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	proposal, err := h.governance.Proposal(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	votes := make([]voteResponse, 0, len(proposal.Votes))
	for _, vote := range proposal.Votes {
		votes = append(votes, voteResponse{
			Voter:     string(vote.Voter),
			Choice:    string(vote.Choice),
			Timestamp: vote.Timestamp,
		})
	}

	c.JSON(http.StatusOK, proposalResponse{
		ID:           proposal.ID,
		Proposer:     string(proposal.Proposer),
		Title:        proposal.Title,
		Token:        string(proposal.Token),
		Amount:       amountString(proposal.Amount),
		Recipient:    string(proposal.Recipient),
		YesVotes:     proposal.YesVotes,
		NoVotes:      proposal.NoVotes,
		AbstainVotes: proposal.AbstainVotes,
		Votes:        votes,
		Status:       string(proposal.Status),
		StartTime:    proposal.StartTime,
		EndTime:      proposal.EndTime,
	})
}

func (h *GovernanceHandler) config(c *gin.Context) {
	config, err := h.governance.Config(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"admin":             string(config.Admin),
		"quorum_percentage": config.QuorumPercentage,
		"voting_duration":   config.VotingDuration,
		"grace_period":      config.GracePeriod,
		"member_count":      config.MemberCount,
	})
}

type memberRequest struct {
	Admin  string `json:"admin" binding:"required"`
	Member string `json:"member" binding:"required"`
}

func (h *GovernanceHandler) addMember(c *gin.Context) {
	var req memberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "invalid request body")
		return
	}

	if err := h.governance.AddMember(c.Request.Context(), model.Account(req.Admin), model.Account(req.Member)); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *GovernanceHandler) removeMember(c *gin.Context) {
	var req memberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "invalid request body")
		return
	}

	if err := h.governance.RemoveMember(c.Request.Context(), model.Account(req.Admin), model.Account(req.Member)); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
