package handler

import (
	"fmt"
	"net/http"
	"time"

	"studybid/services/bidding/helpers"
	"studybid/utils"

	"github.com/gin-gonic/gin"
)

// StartGroupBidHandler handles POST /groups
func (h *BiddingHandler) StartGroupBidHandler(c *gin.Context) {
	var req helpers.StartGroupBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "StartGroupBidHandler", err)
		return
	}
	key, err := req.Auction.Key()
	if err != nil {
		helpers.HandleBindError(c, "StartGroupBidHandler", err)
		return
	}

	if err := h.service.StartGroupBid(key, req.OwnerID, req.Amount, time.Now().UTC()); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("StartGroupBidHandler: failed to start group", map[string]any{
			"room":     req.Auction.RoomNumber,
			"owner_id": req.OwnerID,
			"error":    err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, gin.H{"join_code": req.OwnerID}, "group started successfully")
	helpers.LogSuccess("StartGroupBidHandler", "group started successfully", map[string]any{
		"room":     req.Auction.RoomNumber,
		"owner_id": req.OwnerID,
		"amount":   req.Amount,
	})
}

// JoinGroupBidHandler handles POST /groups/join
func (h *BiddingHandler) JoinGroupBidHandler(c *gin.Context) {
	var req helpers.JoinGroupBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "JoinGroupBidHandler", err)
		return
	}
	key, err := req.Auction.Key()
	if err != nil {
		helpers.HandleBindError(c, "JoinGroupBidHandler", err)
		return
	}

	if err := h.service.JoinGroupBid(key, req.JoinCode, req.UserID, req.Amount); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("JoinGroupBidHandler: failed to join group", map[string]any{
			"room":      req.Auction.RoomNumber,
			"join_code": req.JoinCode,
			"user_id":   req.UserID,
			"error":     err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "joined group successfully")
	helpers.LogSuccess("JoinGroupBidHandler", "joined group successfully", map[string]any{
		"room":      req.Auction.RoomNumber,
		"join_code": req.JoinCode,
		"user_id":   req.UserID,
		"amount":    req.Amount,
	})
}

// UpdateGroupMemberBidHandler handles PUT /groups/member
func (h *BiddingHandler) UpdateGroupMemberBidHandler(c *gin.Context) {
	var req helpers.UpdateGroupMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateGroupMemberBidHandler", err)
		return
	}
	key, err := req.Auction.Key()
	if err != nil {
		helpers.HandleBindError(c, "UpdateGroupMemberBidHandler", err)
		return
	}

	if err := h.service.UpdateGroupMemberBid(key, req.JoinCode, req.UserID, req.Amount); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("UpdateGroupMemberBidHandler: failed to update member bid", map[string]any{
			"room":      req.Auction.RoomNumber,
			"join_code": req.JoinCode,
			"user_id":   req.UserID,
			"error":     err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "member bid updated successfully")
	helpers.LogSuccess("UpdateGroupMemberBidHandler", "member bid updated successfully", map[string]any{
		"room":      req.Auction.RoomNumber,
		"join_code": req.JoinCode,
		"user_id":   req.UserID,
		"amount":    req.Amount,
	})
}

// SubmitGroupBidHandler handles POST /groups/submit
func (h *BiddingHandler) SubmitGroupBidHandler(c *gin.Context) {
	var req helpers.GroupActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SubmitGroupBidHandler", err)
		return
	}
	key, err := req.Auction.Key()
	if err != nil {
		helpers.HandleBindError(c, "SubmitGroupBidHandler", err)
		return
	}

	newCurrent, err := h.service.SubmitGroupBid(key, req.JoinCode, req.RequesterID, time.Now().UTC())
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("SubmitGroupBidHandler: failed to submit group bid", map[string]any{
			"room":         req.Auction.RoomNumber,
			"join_code":    req.JoinCode,
			"requester_id": req.RequesterID,
			"error":        err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.BidResultResponse{NewCurrentBid: newCurrent}, "group bid submitted successfully")
	helpers.LogSuccess("SubmitGroupBidHandler", "group bid submitted successfully", map[string]any{
		"room":      req.Auction.RoomNumber,
		"join_code": req.JoinCode,
		"total":     newCurrent,
	})
}

// CancelGroupBidHandler handles POST /groups/cancel
func (h *BiddingHandler) CancelGroupBidHandler(c *gin.Context) {
	var req helpers.GroupActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CancelGroupBidHandler", err)
		return
	}
	key, err := req.Auction.Key()
	if err != nil {
		helpers.HandleBindError(c, "CancelGroupBidHandler", err)
		return
	}

	if err := h.service.CancelGroupBid(key, req.JoinCode, req.RequesterID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("CancelGroupBidHandler: failed to cancel group", map[string]any{
			"room":         req.Auction.RoomNumber,
			"join_code":    req.JoinCode,
			"requester_id": req.RequesterID,
			"error":        err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "group cancelled successfully")
	helpers.LogSuccess("CancelGroupBidHandler", "group cancelled successfully", map[string]any{
		"room":      req.Auction.RoomNumber,
		"join_code": req.JoinCode,
	})
}

// GetPendingGroupHandler handles GET /groups
func (h *BiddingHandler) GetPendingGroupHandler(c *gin.Context) {
	var q helpers.AuctionKeyPayload
	if err := c.ShouldBindQuery(&q); err != nil {
		helpers.HandleBindError(c, "GetPendingGroupHandler", err)
		return
	}
	key, err := q.Key()
	if err != nil {
		helpers.HandleBindError(c, "GetPendingGroupHandler", err)
		return
	}
	joinCode := c.Query("join_code")

	group, ok := h.service.PendingGroup(key, joinCode)
	if !ok {
		utils.JSONError(c, http.StatusNotFound, fmt.Errorf("group not found for join code %s", joinCode), "group not found")
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.PendingGroupResponseFrom(group), "group retrieved successfully")
}

// GetUserPendingGroupsHandler handles GET /users/:user_id/groups
func (h *BiddingHandler) GetUserPendingGroupsHandler(c *gin.Context) {
	userID := c.Param("user_id")

	groups := h.service.PendingGroupsForUser(userID)
	resp := make([]helpers.PendingGroupResponse, 0, len(groups))
	for _, g := range groups {
		resp = append(resp, helpers.PendingGroupResponseFrom(g))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "pending groups retrieved successfully")
	helpers.LogSuccess("GetUserPendingGroupsHandler", "pending groups retrieved successfully", map[string]any{
		"user_id": userID,
		"count":   len(resp),
	})
}
