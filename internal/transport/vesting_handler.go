package transport

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lumendao/treasury-backend/internal/model"
)

// VestingHandler serves the vesting schedule routes.
type VestingHandler struct {
	vesting VestingService
}

// NewVestingHandler returns a VestingHandler instance.
func NewVestingHandler(vesting VestingService) *VestingHandler {
	return &VestingHandler{vesting: vesting}
}

// Register mounts the vesting routes on the group.
func (h *VestingHandler) Register(g *gin.RouterGroup) {
	g.POST("/vesting/initialize", h.initialize)
	g.POST("/vesting", h.create)
	g.POST("/vesting/:id/claim", h.claim)
	g.POST("/vesting/:id/revoke", h.revoke)
	g.GET("/vesting", h.list)
	g.GET("/vesting/admin", h.admin)
	g.GET("/vesting/:id", h.get)
	g.GET("/vesting/:id/progress", h.progress)
	g.GET("/vesting/:id/claims", h.claims)
}

func (h *VestingHandler) initialize(c *gin.Context) {
	var req initializeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "invalid request body")
		return
	}

	if err := h.vesting.Initialize(c.Request.Context(), model.Account(req.Admin)); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type createScheduleRequest struct {
	Grantor       string `json:"grantor" binding:"required"`
	Beneficiary   string `json:"beneficiary" binding:"required"`
	Token         string `json:"token" binding:"required"`
	Amount        string `json:"amount" binding:"required"`
	StartTime     uint64 `json:"start_time"`
	CliffDuration uint64 `json:"cliff_duration"`
	CliffAmount   string `json:"cliff_amount"`
	TotalDuration uint64 `json:"total_duration"`
	Label         string `json:"label"`
	Revocable     bool   `json:"revocable"`
}

func (h *VestingHandler) create(c *gin.Context) {
	var req createScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "invalid request body")
		return
	}
	amount, ok := parseAmount(req.Amount)
	if !ok {
		writeBadRequest(c, "invalid amount")
		return
	}
	cliffAmount := zeroIfEmpty(req.CliffAmount)
	if cliffAmount == nil {
		writeBadRequest(c, "invalid cliff amount")
		return
	}

	id, err := h.vesting.CreateSchedule(
		c.Request.Context(),
		model.Account(req.Grantor),
		model.Account(req.Beneficiary),
		model.Token(req.Token),
		amount,
		req.StartTime,
		req.CliffDuration,
		cliffAmount,
		req.TotalDuration,
		req.Label,
		req.Revocable,
	)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *VestingHandler) claim(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req claimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "invalid request body")
		return
	}

	amount, err := h.vesting.Claim(c.Request.Context(), model.Account(req.Account), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"amount": amountString(amount)})
}

func (h *VestingHandler) revoke(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req claimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "invalid request body")
		return
	}

	returned, err := h.vesting.Revoke(c.Request.Context(), model.Account(req.Account), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"returned": amountString(returned)})
}

type scheduleResponse struct {
	ID            uint32 `json:"id"`
	Grantor       string `json:"grantor"`
	Beneficiary   string `json:"beneficiary"`
	Token         string `json:"token"`
	TotalAmount   string `json:"total_amount"`
	ClaimedAmount string `json:"claimed_amount"`
	StartTime     uint64 `json:"start_time"`
	CliffDuration uint64 `json:"cliff_duration"`
	CliffAmount   string `json:"cliff_amount"`
	TotalDuration uint64 `json:"total_duration"`
	Label         string `json:"label"`
	Revocable     bool   `json:"revocable"`
	Status        string `json:"status"`
}

func (h *VestingHandler) get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	schedule, err := h.vesting.Schedule(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, scheduleResponse{
		ID:            schedule.ID,
		Grantor:       string(schedule.Grantor),
		Beneficiary:   string(schedule.Beneficiary),
		Token:         string(schedule.Token),
		TotalAmount:   amountString(schedule.TotalAmount),
		ClaimedAmount: amountString(schedule.ClaimedAmount),
		StartTime:     schedule.StartTime,
		CliffDuration: schedule.CliffDuration,
		CliffAmount:   amountString(schedule.CliffAmount),
		TotalDuration: schedule.TotalDuration,
		Label:         schedule.Label,
		Revocable:     schedule.Revocable,
		Status:        string(schedule.Status),
	})
}

func (h *VestingHandler) progress(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	progress, err := h.vesting.Progress(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, progressResponse(progress))
}

func (h *VestingHandler) list(c *gin.Context) {
	grantor := c.Query("grantor")
	beneficiary := c.Query("beneficiary")

	switch {
	case grantor != "" && beneficiary == "":
		ids, err := h.vesting.SchedulesByGrantor(c.Request.Context(), model.Account(grantor))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ids": idsOrEmpty(ids)})
	case beneficiary != "" && grantor == "":
		ids, err := h.vesting.SchedulesByBeneficiary(c.Request.Context(), model.Account(beneficiary))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ids": idsOrEmpty(ids)})
	default:
		writeBadRequest(c, "exactly one of grantor or beneficiary is required")
	}
}

func (h *VestingHandler) claims(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	claims, err := h.vesting.ClaimHistory(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"claims": claimResponses(claims)})
}

func (h *VestingHandler) admin(c *gin.Context) {
	admin, err := h.vesting.Admin(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": string(admin)})
}
