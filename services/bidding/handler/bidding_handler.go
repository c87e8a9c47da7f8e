package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	model "studybid/internal/models"
	"studybid/services/bidding/helpers"
	"studybid/utils"

	"github.com/gin-gonic/gin"
)

type BiddingServiceInterface interface {
	CurrentBid(key model.AuctionKey) int
	LastBids(key model.AuctionKey, limit int) []model.BidEntry
	IsEnded(key model.AuctionKey, now time.Time) bool
	ForceClose(key model.AuctionKey)
	PlaceSingleBid(key model.AuctionKey, bidderID string, amount int, now time.Time) (int, error)
	StartGroupBid(key model.AuctionKey, ownerID string, amount int, now time.Time) error
	JoinGroupBid(key model.AuctionKey, joinCode, userID string, amount int) error
	UpdateGroupMemberBid(key model.AuctionKey, joinCode, userID string, newAmount int) error
	CancelGroupBid(key model.AuctionKey, joinCode, requesterID string) error
	SubmitGroupBid(key model.AuctionKey, joinCode, requesterID string, now time.Time) (int, error)
	PendingGroup(key model.AuctionKey, joinCode string) (model.PendingGroupBid, bool)
	PendingGroupsForUser(userID string) []model.PendingGroupBid
	CancelReservation(key model.AuctionKey, userID string, amount int, now time.Time) error
	CancelGroupReservation(key model.AuctionKey, ownerID string, now time.Time) error
	SecondChanceOffersForUser(userID string) []model.SecondChanceBid
	AcceptSecondChance(key model.AuctionKey, userID string) error
	DeclineSecondChance(key model.AuctionKey, userID string) error
	UserBidHistory(userID string, limit int, now time.Time) []model.UserBidSummary
	UserReservationHistory(userID string, limit int, now time.Time) []model.ReservationSummary
	Balance(userID string) int
	AddTokens(userID string, amount int) (int, error)
}

type BiddingHandler struct {
	service BiddingServiceInterface
}

func NewBiddingHandler(service BiddingServiceInterface) *BiddingHandler {
	return &BiddingHandler{service: service}
}

// PlaceSingleBidHandler handles POST /bids/single
func (h *BiddingHandler) PlaceSingleBidHandler(c *gin.Context) {
	var req helpers.PlaceSingleBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceSingleBidHandler", err)
		return
	}
	key, err := req.Auction.Key()
	if err != nil {
		helpers.HandleBindError(c, "PlaceSingleBidHandler", err)
		return
	}

	newCurrent, err := h.service.PlaceSingleBid(key, req.BidderID, req.Amount, time.Now().UTC())
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("PlaceSingleBidHandler: failed to place bid", map[string]any{
			"handler":   "PlaceSingleBidHandler",
			"room":      req.Auction.RoomNumber,
			"bidder_id": req.BidderID,
			"error":     err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.BidResultResponse{NewCurrentBid: newCurrent}, "bid placed successfully")
	helpers.LogSuccess("PlaceSingleBidHandler", "bid placed successfully", map[string]any{
		"room":      req.Auction.RoomNumber,
		"bidder_id": req.BidderID,
		"amount":    req.Amount,
	})
}

// GetCurrentBidHandler handles GET /auctions/current-bid
func (h *BiddingHandler) GetCurrentBidHandler(c *gin.Context) {
	var q helpers.AuctionKeyPayload
	if err := c.ShouldBindQuery(&q); err != nil {
		helpers.HandleBindError(c, "GetCurrentBidHandler", err)
		return
	}
	key, err := q.Key()
	if err != nil {
		helpers.HandleBindError(c, "GetCurrentBidHandler", err)
		return
	}

	resp := helpers.CurrentBidResponse{
		Auction:    helpers.KeyPayload(key),
		CurrentBid: h.service.CurrentBid(key),
	}
	utils.JSONResponse(c, http.StatusOK, resp, "current bid retrieved successfully")
}

// GetLastBidsHandler handles GET /auctions/bids
func (h *BiddingHandler) GetLastBidsHandler(c *gin.Context) {
	var q helpers.AuctionKeyPayload
	if err := c.ShouldBindQuery(&q); err != nil {
		helpers.HandleBindError(c, "GetLastBidsHandler", err)
		return
	}
	key, err := q.Key()
	if err != nil {
		helpers.HandleBindError(c, "GetLastBidsHandler", err)
		return
	}
	limit := parseLimit(c, 5)

	entries := h.service.LastBids(key, limit)
	utils.JSONResponse(c, http.StatusOK, helpers.BidEntryResponses(entries), "bids retrieved successfully")
	helpers.LogSuccess("GetLastBidsHandler", "bids retrieved successfully", map[string]any{
		"room":  q.RoomNumber,
		"count": len(entries),
	})
}

// GetAuctionEndedHandler handles GET /auctions/ended
func (h *BiddingHandler) GetAuctionEndedHandler(c *gin.Context) {
	var q helpers.AuctionKeyPayload
	if err := c.ShouldBindQuery(&q); err != nil {
		helpers.HandleBindError(c, "GetAuctionEndedHandler", err)
		return
	}
	key, err := q.Key()
	if err != nil {
		helpers.HandleBindError(c, "GetAuctionEndedHandler", err)
		return
	}

	resp := helpers.AuctionEndedResponse{
		Auction: helpers.KeyPayload(key),
		Ended:   h.service.IsEnded(key, time.Now().UTC()),
	}
	utils.JSONResponse(c, http.StatusOK, resp, "auction status retrieved successfully")
}

// ForceCloseAuctionHandler handles POST /auctions/close. Administrative use.
func (h *BiddingHandler) ForceCloseAuctionHandler(c *gin.Context) {
	var req helpers.CloseAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ForceCloseAuctionHandler", err)
		return
	}
	key, err := req.Auction.Key()
	if err != nil {
		helpers.HandleBindError(c, "ForceCloseAuctionHandler", err)
		return
	}

	h.service.ForceClose(key)
	utils.JSONResponse(c, http.StatusOK, helpers.KeyPayload(key), "auction closed")
	helpers.LogSuccess("ForceCloseAuctionHandler", "auction closed", map[string]any{
		"room": req.Auction.RoomNumber,
		"date": req.Auction.ReservationDate,
	})
}

// GetBalanceHandler handles GET /users/:user_id/balance
func (h *BiddingHandler) GetBalanceHandler(c *gin.Context) {
	userID := c.Param("user_id")
	resp := helpers.BalanceResponse{
		UserID:  userID,
		Balance: h.service.Balance(userID),
	}
	utils.JSONResponse(c, http.StatusOK, resp, "balance retrieved successfully")
}

// AddTokensHandler handles POST /users/:user_id/tokens
func (h *BiddingHandler) AddTokensHandler(c *gin.Context) {
	userID := c.Param("user_id")
	var req helpers.AddTokensRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AddTokensHandler", err)
		return
	}

	balance, err := h.service.AddTokens(userID, req.Amount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("AddTokensHandler: failed to add tokens", map[string]any{"user_id": userID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.BalanceResponse{UserID: userID, Balance: balance}, "tokens added successfully")
	helpers.LogSuccess("AddTokensHandler", "tokens added successfully", map[string]any{
		"user_id": userID,
		"amount":  req.Amount,
		"balance": balance,
	})
}

// GetUserBidHistoryHandler handles GET /users/:user_id/bids
func (h *BiddingHandler) GetUserBidHistoryHandler(c *gin.Context) {
	userID := c.Param("user_id")
	limit := parseLimit(c, 10)

	summaries := h.service.UserBidHistory(userID, limit, time.Now().UTC())
	resp := make([]helpers.BidSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		resp = append(resp, helpers.BidSummaryResponse{
			Auction:          helpers.KeyPayload(s.Key),
			Amount:           s.Amount,
			GroupTotal:       s.GroupTotal,
			IsCurrentHighest: s.IsCurrentHighest,
			IsActive:         s.IsActive,
			IsGroup:          s.IsGroup,
		})
	}

	utils.JSONResponse(c, http.StatusOK, resp, "bid history retrieved successfully")
	helpers.LogSuccess("GetUserBidHistoryHandler", "bid history retrieved successfully", map[string]any{
		"user_id": userID,
		"count":   len(resp),
	})
}

// GetUserReservationsHandler handles GET /users/:user_id/reservations
func (h *BiddingHandler) GetUserReservationsHandler(c *gin.Context) {
	userID := c.Param("user_id")
	limit := parseLimit(c, 10)

	reservations := h.service.UserReservationHistory(userID, limit, time.Now().UTC())
	resp := make([]helpers.ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		resp = append(resp, helpers.ReservationResponse{
			Auction: helpers.KeyPayload(r.Key),
			Amount:  r.Amount,
		})
	}

	utils.JSONResponse(c, http.StatusOK, resp, "reservations retrieved successfully")
	helpers.LogSuccess("GetUserReservationsHandler", "reservations retrieved successfully", map[string]any{
		"user_id": userID,
		"count":   len(resp),
	})
}

// parseLimit reads the optional limit query parameter, falling back to def
// for missing or malformed values.
func parseLimit(c *gin.Context, def int) int {
	raw := c.Query("limit")
	if raw == "" {
		return def
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return def
	}
	return limit
}
