package handler

import (
	"fmt"
	"net/http"
	"time"

	"studybid/services/bidding/helpers"
	"studybid/utils"

	"github.com/gin-gonic/gin"
)

// CancelReservationHandler handles POST /reservations/cancel
func (h *BiddingHandler) CancelReservationHandler(c *gin.Context) {
	var req helpers.CancelReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CancelReservationHandler", err)
		return
	}
	key, err := req.Auction.Key()
	if err != nil {
		helpers.HandleBindError(c, "CancelReservationHandler", err)
		return
	}

	if err := h.service.CancelReservation(key, req.UserID, req.Amount, time.Now().UTC()); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CancelReservationHandler: failed to cancel reservation", map[string]any{
			"room":    req.Auction.RoomNumber,
			"user_id": req.UserID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "reservation cancelled successfully")
	helpers.LogSuccess("CancelReservationHandler", "reservation cancelled successfully", map[string]any{
		"room":    req.Auction.RoomNumber,
		"user_id": req.UserID,
		"amount":  req.Amount,
	})
}

// CancelGroupReservationHandler handles POST /reservations/group/cancel
func (h *BiddingHandler) CancelGroupReservationHandler(c *gin.Context) {
	var req helpers.CancelGroupReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CancelGroupReservationHandler", err)
		return
	}
	key, err := req.Auction.Key()
	if err != nil {
		helpers.HandleBindError(c, "CancelGroupReservationHandler", err)
		return
	}

	if err := h.service.CancelGroupReservation(key, req.OwnerID, time.Now().UTC()); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CancelGroupReservationHandler: failed to cancel group reservation", map[string]any{
			"room":     req.Auction.RoomNumber,
			"owner_id": req.OwnerID,
			"error":    err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "group reservation cancelled successfully")
	helpers.LogSuccess("CancelGroupReservationHandler", "group reservation cancelled successfully", map[string]any{
		"room":     req.Auction.RoomNumber,
		"owner_id": req.OwnerID,
	})
}

// GetSecondChancesHandler handles GET /users/:user_id/second-chances
func (h *BiddingHandler) GetSecondChancesHandler(c *gin.Context) {
	userID := c.Param("user_id")

	offers := h.service.SecondChanceOffersForUser(userID)
	resp := make([]helpers.SecondChanceResponse, 0, len(offers))
	for _, sc := range offers {
		resp = append(resp, helpers.SecondChanceResponse{
			Auction:  helpers.KeyPayload(sc.Key),
			BidderID: sc.BidderID,
			Amount:   sc.Amount,
		})
	}

	utils.JSONResponse(c, http.StatusOK, resp, "second-chance offers retrieved successfully")
	helpers.LogSuccess("GetSecondChancesHandler", "second-chance offers retrieved successfully", map[string]any{
		"user_id": userID,
		"count":   len(resp),
	})
}

// AcceptSecondChanceHandler handles POST /second-chances/accept
func (h *BiddingHandler) AcceptSecondChanceHandler(c *gin.Context) {
	var req helpers.SecondChanceActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AcceptSecondChanceHandler", err)
		return
	}
	key, err := req.Auction.Key()
	if err != nil {
		helpers.HandleBindError(c, "AcceptSecondChanceHandler", err)
		return
	}

	if err := h.service.AcceptSecondChance(key, req.UserID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("AcceptSecondChanceHandler: failed to accept offer", map[string]any{
			"room":    req.Auction.RoomNumber,
			"user_id": req.UserID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "second-chance offer accepted")
	helpers.LogSuccess("AcceptSecondChanceHandler", "second-chance offer accepted", map[string]any{
		"room":    req.Auction.RoomNumber,
		"user_id": req.UserID,
	})
}

// DeclineSecondChanceHandler handles POST /second-chances/decline
func (h *BiddingHandler) DeclineSecondChanceHandler(c *gin.Context) {
	var req helpers.SecondChanceActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "DeclineSecondChanceHandler", err)
		return
	}
	key, err := req.Auction.Key()
	if err != nil {
		helpers.HandleBindError(c, "DeclineSecondChanceHandler", err)
		return
	}

	if err := h.service.DeclineSecondChance(key, req.UserID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("DeclineSecondChanceHandler: failed to decline offer", map[string]any{
			"room":    req.Auction.RoomNumber,
			"user_id": req.UserID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "second-chance offer declined")
	helpers.LogSuccess("DeclineSecondChanceHandler", "second-chance offer declined", map[string]any{
		"room":    req.Auction.RoomNumber,
		"user_id": req.UserID,
	})
}
