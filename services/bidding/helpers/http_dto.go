package helpers

import (
	"fmt"
	"time"

	model "studybid/internal/models"
)

// AuctionKeyPayload identifies an auction in request payloads. The same shape
// binds from JSON bodies and from query strings.
type AuctionKeyPayload struct {
	RoomNumber      string `json:"room_number" form:"room_number" binding:"required"`
	Capacity        int    `json:"capacity" form:"capacity" binding:"required,gt=0"`
	TimeRange       string `json:"time_range" form:"time_range" binding:"required"`
	ReservationDate string `json:"reservation_date" form:"reservation_date" binding:"required"`
}

// Key parses the payload into a domain AuctionKey. The reservation date uses
// the 2006-01-02 layout.
func (p AuctionKeyPayload) Key() (model.AuctionKey, error) {
	date, err := time.Parse("2006-01-02", p.ReservationDate)
	if err != nil {
		return model.AuctionKey{}, fmt.Errorf("invalid reservation_date %q: %w", p.ReservationDate, err)
	}
	return model.NewAuctionKey(p.RoomNumber, p.Capacity, p.TimeRange, date), nil
}

// KeyPayload renders a domain AuctionKey back into its payload shape.
func KeyPayload(key model.AuctionKey) AuctionKeyPayload {
	return AuctionKeyPayload{
		RoomNumber:      key.RoomNumber,
		Capacity:        key.Capacity,
		TimeRange:       key.TimeRange,
		ReservationDate: key.ReservationDate.Format("2006-01-02"),
	}
}

// Request DTOs
type PlaceSingleBidRequest struct {
	Auction  AuctionKeyPayload `json:"auction" binding:"required"`
	BidderID string            `json:"bidder_id" binding:"required"`
	Amount   int               `json:"amount" binding:"required,gt=0"`
}

type StartGroupBidRequest struct {
	Auction AuctionKeyPayload `json:"auction" binding:"required"`
	OwnerID string            `json:"owner_id" binding:"required"`
	Amount  int               `json:"amount" binding:"required,gt=0"`
}

type JoinGroupBidRequest struct {
	Auction  AuctionKeyPayload `json:"auction" binding:"required"`
	JoinCode string            `json:"join_code" binding:"required"`
	UserID   string            `json:"user_id" binding:"required"`
	Amount   int               `json:"amount" binding:"required,gt=0"`
}

type UpdateGroupMemberRequest struct {
	Auction  AuctionKeyPayload `json:"auction" binding:"required"`
	JoinCode string            `json:"join_code" binding:"required"`
	UserID   string            `json:"user_id" binding:"required"`
	Amount   int               `json:"amount" binding:"required,gt=0"`
}

// GroupActionRequest covers owner-only submit and cancel actions.
type GroupActionRequest struct {
	Auction     AuctionKeyPayload `json:"auction" binding:"required"`
	JoinCode    string            `json:"join_code" binding:"required"`
	RequesterID string            `json:"requester_id" binding:"required"`
}

type CancelReservationRequest struct {
	Auction AuctionKeyPayload `json:"auction" binding:"required"`
	UserID  string            `json:"user_id" binding:"required"`
	Amount  int               `json:"amount" binding:"required,gt=0"`
}

type CancelGroupReservationRequest struct {
	Auction AuctionKeyPayload `json:"auction" binding:"required"`
	OwnerID string            `json:"owner_id" binding:"required"`
}

type SecondChanceActionRequest struct {
	Auction AuctionKeyPayload `json:"auction" binding:"required"`
	UserID  string            `json:"user_id" binding:"required"`
}

type CloseAuctionRequest struct {
	Auction AuctionKeyPayload `json:"auction" binding:"required"`
}

type AddTokensRequest struct {
	Amount int `json:"amount" binding:"required,gt=0"`
}

// Response DTOs
type BidResultResponse struct {
	NewCurrentBid int `json:"new_current_bid"`
}

type BidEntryResponse struct {
	BidID     string `json:"bid_id"`
	Bidder    string `json:"bidder"`
	Amount    int    `json:"amount"`
	CreatedAt string `json:"created_at"`
}

// BidEntryResponses converts ledger entries into their response shape.
func BidEntryResponses(entries []model.BidEntry) []BidEntryResponse {
	resp := make([]BidEntryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, BidEntryResponse{
			BidID:     e.BidID,
			Bidder:    e.Bidder.String(),
			Amount:    e.Amount,
			CreatedAt: e.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return resp
}

type CurrentBidResponse struct {
	Auction    AuctionKeyPayload `json:"auction"`
	CurrentBid int               `json:"current_bid"`
}

type AuctionEndedResponse struct {
	Auction AuctionKeyPayload `json:"auction"`
	Ended   bool              `json:"ended"`
}

type GroupMemberResponse struct {
	UserID string `json:"user_id"`
	Amount int    `json:"amount"`
}

type PendingGroupResponse struct {
	Auction      AuctionKeyPayload     `json:"auction"`
	OwnerID      string                `json:"owner_id"`
	JoinCode     string                `json:"join_code"`
	Capacity     int                   `json:"capacity"`
	Members      []GroupMemberResponse `json:"members"`
	Total        int                   `json:"total"`
	SecondChance bool                  `json:"second_chance"`
}

// PendingGroupResponseFrom converts a pending group into its response shape.
func PendingGroupResponseFrom(g model.PendingGroupBid) PendingGroupResponse {
	members := make([]GroupMemberResponse, 0, len(g.Members))
	for _, m := range g.Members {
		members = append(members, GroupMemberResponse{UserID: m.UserID, Amount: m.Amount})
	}
	return PendingGroupResponse{
		Auction:      KeyPayload(g.Key),
		OwnerID:      g.OwnerID,
		JoinCode:     g.JoinCode,
		Capacity:     g.Capacity,
		Members:      members,
		Total:        g.Total(),
		SecondChance: g.SecondChance,
	}
}

type SecondChanceResponse struct {
	Auction  AuctionKeyPayload `json:"auction"`
	BidderID string            `json:"bidder_id"`
	Amount   int               `json:"amount"`
}

type BidSummaryResponse struct {
	Auction          AuctionKeyPayload `json:"auction"`
	Amount           int               `json:"amount"`
	GroupTotal       *int              `json:"group_total,omitempty"`
	IsCurrentHighest bool              `json:"is_current_highest"`
	IsActive         bool              `json:"is_active"`
	IsGroup          bool              `json:"is_group"`
}

type ReservationResponse struct {
	Auction AuctionKeyPayload `json:"auction"`
	Amount  int               `json:"amount"`
}

type BalanceResponse struct {
	UserID  string `json:"user_id"`
	Balance int    `json:"balance"`
}
