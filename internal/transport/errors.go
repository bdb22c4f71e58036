package transport

import (
	"errors"
	"math/big"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lumendao/treasury-backend/internal/auth"
	"github.com/lumendao/treasury-backend/internal/service"
	"github.com/lumendao/treasury-backend/internal/token"
	"github.com/lumendao/treasury-backend/pkg/safe"
)

var statusByError = map[error]int{
	service.ErrInvalidAmount:    http.StatusBadRequest,
	service.ErrInvalidDuration:  http.StatusBadRequest,
	service.ErrInvalidSchedule:  http.StatusBadRequest,
	service.ErrInvalidStartTime: http.StatusBadRequest,
	service.ErrInvalidRecipient: http.StatusBadRequest,
	service.ErrInvalidThreshold: http.StatusBadRequest,
	service.ErrInvalidVote:      http.StatusBadRequest,

	auth.ErrMissingCredential: http.StatusUnauthorized,
	auth.ErrInvalidCredential: http.StatusUnauthorized,
	auth.ErrExpiredCredential: http.StatusUnauthorized,

	auth.ErrWrongAccount:    http.StatusForbidden,
	service.ErrUnauthorized: http.StatusForbidden,
	service.ErrNotASigner:   http.StatusForbidden,
	service.ErrNotAMember:   http.StatusForbidden,

	service.ErrScheduleNotFound:   http.StatusNotFound,
	service.ErrWithdrawalNotFound: http.StatusNotFound,
	service.ErrProposalNotFound:   http.StatusNotFound,

	service.ErrNotInitialized:        http.StatusConflict,
	service.ErrAlreadyInitialized:    http.StatusConflict,
	service.ErrAlreadyTerminal:       http.StatusConflict,
	service.ErrNothingToClaim:        http.StatusConflict,
	service.ErrNotRevocable:          http.StatusConflict,
	service.ErrAlreadyApproved:       http.StatusConflict,
	service.ErrAlreadyASigner:        http.StatusConflict,
	service.ErrAlreadyAMember:        http.StatusConflict,
	service.ErrAlreadyVoted:          http.StatusConflict,
	service.ErrWithdrawalNotPending:  http.StatusConflict,
	service.ErrWithdrawalNotApproved: http.StatusConflict,
	service.ErrInsufficientBalance:   http.StatusConflict,
	service.ErrVotingNotActive:       http.StatusConflict,
	service.ErrVotingPeriodExpired:   http.StatusConflict,
	service.ErrProposalStillActive:   http.StatusConflict,
	service.ErrProposalNotApproved:   http.StatusConflict,
	service.ErrProposalNotExpired:    http.StatusConflict,
	token.ErrEscrowOverdraft:         http.StatusConflict,
}

// writeError maps a service failure to an HTTP status. Unrecognized
// errors become 500 with a generic message so internals never leak.
func writeError(c *gin.Context, err error) {
	for known, status := range statusByError {
		if errors.Is(err, known) {
			c.JSON(status, gin.H{"error": known.Error()})
			return
		}
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

func writeBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}

// pathID parses the :id route parameter.
func pathID(c *gin.Context) (uint32, bool) {
	raw, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		writeBadRequest(c, "invalid id")
		return 0, false
	}
	id, err := safe.Uint32(raw)
	if err != nil {
		writeBadRequest(c, "invalid id")
		return 0, false
	}
	return id, true
}

// parseAmount parses a base-10 ledger amount.
func parseAmount(s string) (*big.Int, bool) {
	amount, ok := new(big.Int).SetString(s, 10)
	return amount, ok
}

// zeroIfEmpty parses an optional amount, defaulting to zero. It returns
// nil when the value is present but malformed.
func zeroIfEmpty(s string) *big.Int {
	if s == "" {
		return big.NewInt(0)
	}
	amount, ok := parseAmount(s)
	if !ok {
		return nil
	}
	return amount
}

func amountString(amount *big.Int) string {
	if amount == nil {
		return "0"
	}
	return amount.String()
}
