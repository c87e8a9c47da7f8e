package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"studybid/internal/biddingerrors"
	"studybid/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, biddingerrors.ErrGroupNotFound):
		return http.StatusNotFound, "group not found"
	case errors.Is(err, biddingerrors.ErrOfferNotFound):
		return http.StatusNotFound, "no pending second-chance offer"
	case errors.Is(err, biddingerrors.ErrNoBids):
		return http.StatusNotFound, "no bids found for auction"
	case errors.Is(err, biddingerrors.ErrDetailsNotFound):
		return http.StatusNotFound, "group details not found"
	case errors.Is(err, biddingerrors.ErrInvalidBid):
		return http.StatusBadRequest, "invalid bid details"
	case errors.Is(err, biddingerrors.ErrWrongCapacity):
		return http.StatusBadRequest, "wrong room capacity for this operation"
	case errors.Is(err, biddingerrors.ErrBidTooLow):
		return http.StatusConflict, "bid amount too low"
	case errors.Is(err, biddingerrors.ErrAuctionEnded):
		return http.StatusConflict, "bidding has ended"
	case errors.Is(err, biddingerrors.ErrGroupExists):
		return http.StatusConflict, "group already started"
	case errors.Is(err, biddingerrors.ErrGroupFull):
		return http.StatusConflict, "group is full"
	case errors.Is(err, biddingerrors.ErrAlreadyMember):
		return http.StatusConflict, "already a member of this group"
	case errors.Is(err, biddingerrors.ErrNotMember):
		return http.StatusConflict, "not a member of this group"
	case errors.Is(err, biddingerrors.ErrSecondChanceFrozen):
		return http.StatusConflict, "second-chance group bids cannot be changed"
	case errors.Is(err, biddingerrors.ErrCancelTooLate):
		return http.StatusConflict, "cancellation window has closed"
	case errors.Is(err, biddingerrors.ErrInsufficientTokens):
		return http.StatusConflict, "not enough tokens"
	case errors.Is(err, biddingerrors.ErrNotOwner):
		return http.StatusForbidden, "only the group owner may do this"
	case errors.Is(err, biddingerrors.ErrNotWinner):
		return http.StatusForbidden, "not the current winner"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
