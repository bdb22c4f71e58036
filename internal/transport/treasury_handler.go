package transport

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lumendao/treasury-backend/internal/model"
)

// TreasuryHandler serves the multisig treasury routes.
type TreasuryHandler struct {
	treasury TreasuryService
}

// NewTreasuryHandler returns a TreasuryHandler instance.
func NewTreasuryHandler(treasury TreasuryService) *TreasuryHandler {
	return &TreasuryHandler{treasury: treasury}
}

// Register mounts the treasury routes on the group.
func (h *TreasuryHandler) Register(g *gin.RouterGroup) {
	g.POST("/treasury/initialize", h.initialize)
	g.POST("/treasury/deposits", h.deposit)
	g.POST("/treasury/withdrawals", h.createWithdrawal)
	g.POST("/treasury/withdrawals/:id/approve", h.approve)
	g.POST("/treasury/withdrawals/:id/execute", h.execute)
	g.GET("/treasury/withdrawals/:id", h.withdrawal)
	g.GET("/treasury/config", h.config)
	g.POST("/treasury/signers", h.addSigner)
	g.POST("/treasury/signers/remove", h.removeSigner)
	g.POST("/treasury/threshold", h.updateThreshold)
}

type initializeTreasuryRequest struct {
	Admin     string   `json:"admin" binding:"required"`
	Signers   []string `json:"signers" binding:"required,min=1"`
	Threshold uint32   `json:"threshold" binding:"required"`
}

func (h *TreasuryHandler) initialize(c *gin.Context) {
	var req initializeTreasuryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "invalid request body")
		return
	}

	err := h.treasury.Initialize(c.Request.Context(), model.Account(req.Admin), toAccounts(req.Signers), req.Threshold)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type depositRequest struct {
	From   string `json:"from" binding:"required"`
	Token  string `json:"token" binding:"required"`
	Amount string `json:"amount" binding:"required"`
}

func (h *TreasuryHandler) deposit(c *gin.Context) {
	var req depositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "invalid request body")
		return
	}
	amount, ok := parseAmount(req.Amount)
	if !ok {
		writeBadRequest(c, "invalid amount")
		return
	}

	err := h.treasury.Deposit(c.Request.Context(), model.Account(req.From), model.Token(req.Token), amount)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type createWithdrawalRequest struct {
	Proposer  string `json:"proposer" binding:"required"`
	Token     string `json:"token" binding:"required"`
	Recipient string `json:"recipient" binding:"required"`
	Amount    string `json:"amount" binding:"required"`
	Memo      string `json:"memo"`
}

func (h *TreasuryHandler) createWithdrawal(c *gin.Context) {
	var req createWithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "invalid request body")
		return
	}
	amount, ok := parseAmount(req.Amount)
	if !ok {
		writeBadRequest(c, "invalid amount")
		return
	}

	id, err := h.treasury.CreateWithdrawal(
		c.Request.Context(),
		model.Account(req.Proposer),
		model.Token(req.Token),
		model.Account(req.Recipient),
		amount,
		req.Memo,
	)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *TreasuryHandler) approve(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req claimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "invalid request body")
		return
	}

	if err := h.treasury.Approve(c.Request.Context(), model.Account(req.Account), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TreasuryHandler) execute(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req claimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "invalid request body")
		return
	}

	if err := h.treasury.Execute(c.Request.Context(), model.Account(req.Account), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type withdrawalResponse struct {
	ID        uint32   `json:"id"`
	Proposer  string   `json:"proposer"`
	Token     string   `json:"token"`
	Recipient string   `json:"recipient"`
	Amount    string   `json:"amount"`
	Memo      string   `json:"memo"`
	Approvals []string `json:"approvals"`
	Status    string   `json:"status"`
	CreatedAt uint64   `json:"created_at"`
}

func (h *TreasuryHandler) withdrawal(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	request, err := h.treasury.Withdrawal(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, withdrawalResponse{
		ID:        request.ID,
		Proposer:  string(request.Proposer),
		Token:     string(request.Token),
		Recipient: string(request.Recipient),
		Amount:    amountString(request.Amount),
		Memo:      request.Memo,
		Approvals: accountStrings(request.Approvals),
		Status:    string(request.Status),
		CreatedAt: request.CreatedAt,
	})
}

func (h *TreasuryHandler) config(c *gin.Context) {
	config, err := h.treasury.Config(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"admin":     string(config.Admin),
		"signers":   accountStrings(config.Signers),
		"threshold": config.Threshold,
		"proposals": config.Proposals,
	})
}

type signerRequest struct {
	Admin  string `json:"admin" binding:"required"`
	Signer string `json:"signer" binding:"required"`
}

func (h *TreasuryHandler) addSigner(c *gin.Context) {
	var req signerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "invalid request body")
		return
	}

	if err := h.treasury.AddSigner(c.Request.Context(), model.Account(req.Admin), model.Account(req.Signer)); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TreasuryHandler) removeSigner(c *gin.Context) {
	var req signerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "invalid request body")
		return
	}

	if err := h.treasury.RemoveSigner(c.Request.Context(), model.Account(req.Admin), model.Account(req.Signer)); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type thresholdRequest struct {
	Admin     string `json:"admin" binding:"required"`
	Threshold uint32 `json:"threshold" binding:"required"`
}

func (h *TreasuryHandler) updateThreshold(c *gin.Context) {
	var req thresholdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "invalid request body")
		return
	}

	if err := h.treasury.UpdateThreshold(c.Request.Context(), model.Account(req.Admin), req.Threshold); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
