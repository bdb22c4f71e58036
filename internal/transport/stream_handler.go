package transport

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lumendao/treasury-backend/internal/model"
)

// StreamHandler serves the payment stream routes.
type StreamHandler struct {
	streams StreamService
}

// NewStreamHandler returns a StreamHandler instance.
func NewStreamHandler(streams StreamService) *StreamHandler {
	return &StreamHandler{streams: streams}
}

// Register mounts the stream routes on the group.
func (h *StreamHandler) Register(g *gin.RouterGroup) {
	g.POST("/streams/initialize", h.initialize)
	g.POST("/streams", h.create)
	g.POST("/streams/batch", h.createBatch)
	g.POST("/streams/:id/claim", h.claim)
	g.POST("/streams/:id/cancel", h.cancel)
	g.GET("/streams", h.list)
	g.GET("/streams/admin", h.admin)
	g.GET("/streams/:id", h.get)
	g.GET("/streams/:id/progress", h.progress)
	g.GET("/streams/:id/claimable", h.claimable)
	g.GET("/streams/:id/claims", h.claims)
}

type initializeRequest struct {
	Admin string `json:"admin" binding:"required"`
}

func (h *StreamHandler) initialize(c *gin.Context) {
	var req initializeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "invalid request body")
		return
	}

	if err := h.streams.Initialize(c.Request.Context(), model.Account(req.Admin)); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type createStreamRequest struct {
	Sender    string `json:"sender" binding:"required"`
	Recipient string `json:"recipient" binding:"required"`
	Token     string `json:"token" binding:"required"`
	Amount    string `json:"amount" binding:"required"`
	StartTime uint64 `json:"start_time"`
	EndTime   uint64 `json:"end_time"`
}

func (h *StreamHandler) create(c *gin.Context) {
	var req createStreamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "invalid request body")
		return
	}
	amount, ok := parseAmount(req.Amount)
	if !ok {
		writeBadRequest(c, "invalid amount")
		return
	}

	id, err := h.streams.CreateStream(
		c.Request.Context(),
		model.Account(req.Sender),
		model.Account(req.Recipient),
		model.Token(req.Token),
		amount,
		req.StartTime,
		req.EndTime,
	)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

type createStreamBatchRequest struct {
	Sender  string `json:"sender" binding:"required"`
	Entries []struct {
		Recipient string `json:"recipient" binding:"required"`
		Token     string `json:"token" binding:"required"`
		Amount    string `json:"amount" binding:"required"`
		StartTime uint64 `json:"start_time"`
		EndTime   uint64 `json:"end_time"`
	} `json:"entries" binding:"required,min=1"`
}

func (h *StreamHandler) createBatch(c *gin.Context) {
	var req createStreamBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "invalid request body")
		return
	}

	entries := make([]model.CreateStreamParams, 0, len(req.Entries))
	for _, entry := range req.Entries {
		amount, ok := parseAmount(entry.Amount)
		if !ok {
			writeBadRequest(c, "invalid amount")
			return
		}
		entries = append(entries, model.CreateStreamParams{
			Recipient:   model.Account(entry.Recipient),
			Token:       model.Token(entry.Token),
			TotalAmount: amount,
			StartTime:   entry.StartTime,
			EndTime:     entry.EndTime,
		})
	}

	ids, err := h.streams.CreateStreamBatch(c.Request.Context(), model.Account(req.Sender), entries)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ids": ids})
}

type claimRequest struct {
	Account string `json:"account" binding:"required"`
}

func (h *StreamHandler) claim(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req claimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "invalid request body")
		return
	}

	amount, err := h.streams.Claim(c.Request.Context(), model.Account(req.Account), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"amount": amountString(amount)})
}

func (h *StreamHandler) cancel(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req claimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "invalid request body")
		return
	}

	refund, err := h.streams.Cancel(c.Request.Context(), model.Account(req.Account), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"refund": amountString(refund)})
}

type streamResponse struct {
	ID            uint32 `json:"id"`
	Sender        string `json:"sender"`
	Recipient     string `json:"recipient"`
	Token         string `json:"token"`
	TotalAmount   string `json:"total_amount"`
	ClaimedAmount string `json:"claimed_amount"`
	StartTime     uint64 `json:"start_time"`
	EndTime       uint64 `json:"end_time"`
	LastClaimTime uint64 `json:"last_claim_time"`
	Status        string `json:"status"`
}

func (h *StreamHandler) get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	stream, err := h.streams.Stream(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, streamResponse{
		ID:            stream.ID,
		Sender:        string(stream.Sender),
		Recipient:     string(stream.Recipient),
		Token:         string(stream.Token),
		TotalAmount:   amountString(stream.TotalAmount),
		ClaimedAmount: amountString(stream.ClaimedAmount),
		StartTime:     stream.StartTime,
		EndTime:       stream.EndTime,
		LastClaimTime: stream.LastClaimTime,
		Status:        string(stream.Status),
	})
}

func (h *StreamHandler) progress(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	progress, err := h.streams.Progress(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, progressResponse(progress))
}

func (h *StreamHandler) claimable(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	amount, err := h.streams.Claimable(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"amount": amountString(amount)})
}

func (h *StreamHandler) list(c *gin.Context) {
	sender := c.Query("sender")
	recipient := c.Query("recipient")

	switch {
	case sender != "" && recipient == "":
		ids, err := h.streams.StreamsBySender(c.Request.Context(), model.Account(sender))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ids": idsOrEmpty(ids)})
	case recipient != "" && sender == "":
		ids, err := h.streams.StreamsByRecipient(c.Request.Context(), model.Account(recipient))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ids": idsOrEmpty(ids)})
	default:
		writeBadRequest(c, "exactly one of sender or recipient is required")
	}
}

func (h *StreamHandler) claims(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	claims, err := h.streams.ClaimHistory(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"claims": claimResponses(claims)})
}

func (h *StreamHandler) admin(c *gin.Context) {
	admin, err := h.streams.Admin(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": string(admin)})
}
