package models

import "time"

// AuctionKey identifies one auction: a room slot on a concrete date.
// It is a value type and is used directly as a map key, so ReservationDate
// must always be normalized to UTC midnight (use NewAuctionKey).
type AuctionKey struct {
	RoomNumber      string    `json:"room_number"`
	Capacity        int       `json:"capacity"`
	TimeRange       string    `json:"time_range"`
	ReservationDate time.Time `json:"reservation_date"`
}

// NewAuctionKey builds an AuctionKey with the reservation date normalized to
// UTC midnight so that two keys for the same slot always compare equal.
func NewAuctionKey(roomNumber string, capacity int, timeRange string, reservationDate time.Time) AuctionKey {
	y, m, d := reservationDate.UTC().Date()
	return AuctionKey{
		RoomNumber:      roomNumber,
		Capacity:        capacity,
		TimeRange:       timeRange,
		ReservationDate: time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
	}
}

// EndTime is the moment bidding closes: one week before the reservation date,
// at the start of that day.
func (k AuctionKey) EndTime() time.Time {
	return k.ReservationDate.AddDate(0, 0, -7)
}

// CancelDeadline is the last moment a confirmed reservation may still be
// cancelled: the start of the day before the reservation date.
func (k AuctionKey) CancelDeadline() time.Time {
	return k.ReservationDate.AddDate(0, 0, -1)
}

// BidderKind discriminates the two bidder identities an entry can carry.
type BidderKind string

const (
	BidderUser  BidderKind = "user"
	BidderGroup BidderKind = "group"
)

// Bidder is the identity behind a bid entry: either an individual user or a
// group, identified by its owner. Comparable, so it can live inside map keys.
type Bidder struct {
	Kind BidderKind `json:"kind"`
	ID   string     `json:"id"`
}

// UserBidder returns the identity of an individual bidder.
func UserBidder(userID string) Bidder {
	return Bidder{Kind: BidderUser, ID: userID}
}

// GroupBidder returns the synthetic identity of a group, derived from its owner.
func GroupBidder(ownerID string) Bidder {
	return Bidder{Kind: BidderGroup, ID: ownerID}
}

// IsGroup reports whether the bidder is a group identity.
func (b Bidder) IsGroup() bool {
	return b.Kind == BidderGroup
}

// String renders the display form used in responses and logs.
func (b Bidder) String() string {
	if b.Kind == BidderGroup {
		return "group:" + b.ID
	}
	return b.ID
}

// BidEntry is one recorded bid against an auction. Entries are append-only;
// the current highest is always derived, never stored.
type BidEntry struct {
	BidID     string    `json:"bid_id"`
	Bidder    Bidder    `json:"bidder"`
	Amount    int       `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

// GroupMemberBid is one member's pledge inside a pending or finalized group.
type GroupMemberBid struct {
	UserID string `json:"user_id"`
	Amount int    `json:"amount"`
}

// PendingGroupBid is a coalition in formation. The join code equals the owner
// id: the owner shares it with prospective members. SecondChance groups have
// frozen membership and amounts.
type PendingGroupBid struct {
	Key          AuctionKey       `json:"key"`
	OwnerID      string           `json:"owner_id"`
	JoinCode     string           `json:"join_code"`
	Capacity     int              `json:"capacity"`
	Members      []GroupMemberBid `json:"members"`
	SecondChance bool             `json:"second_chance"`
}

// Total is the sum of all member pledges.
func (g PendingGroupBid) Total() int {
	total := 0
	for _, m := range g.Members {
		total += m.Amount
	}
	return total
}

// Member returns the member with the given user id, if present.
func (g PendingGroupBid) Member(userID string) (GroupMemberBid, bool) {
	for _, m := range g.Members {
		if m.UserID == userID {
			return m, true
		}
	}
	return GroupMemberBid{}, false
}

// FinalGroupBid is the immutable snapshot taken when a group bid is
// submitted. The same group id may appear in several snapshots (the owner can
// be out-bid and re-submit), so lookups must match on id and total amount.
type FinalGroupBid struct {
	Key         AuctionKey       `json:"key"`
	GroupID     Bidder           `json:"group_id"`
	Members     []GroupMemberBid `json:"members"`
	TotalAmount int              `json:"total_amount"`
}

// Member returns the snapshot member with the given user id, if present.
func (g FinalGroupBid) Member(userID string) (GroupMemberBid, bool) {
	for _, m := range g.Members {
		if m.UserID == userID {
			return m, true
		}
	}
	return GroupMemberBid{}, false
}

// SecondChanceBid is a re-offer of a single-person slot to the next eligible
// bidder after the winner cancelled. Amount is what they owe if they accept.
type SecondChanceBid struct {
	Key      AuctionKey `json:"key"`
	BidderID string     `json:"bidder_id"`
	Amount   int        `json:"amount"`
}

// UserGroupBidRecord is one entry in a user's personal group-bid history,
// kept because group entries in the ledger only carry the synthetic identity.
type UserGroupBidRecord struct {
	Key        AuctionKey `json:"key"`
	UserAmount int        `json:"user_amount"`
	GroupTotal int        `json:"group_total"`
	CreatedAt  time.Time  `json:"created_at"`
}

// UserBidSummary is one row of a user's bid history across all auctions.
type UserBidSummary struct {
	Key              AuctionKey `json:"key"`
	Amount           int        `json:"amount"`
	GroupTotal       *int       `json:"group_total,omitempty"`
	IsCurrentHighest bool       `json:"is_current_highest"`
	IsActive         bool       `json:"is_active"`
	IsGroup          bool       `json:"is_group"`
}

// ReservationSummary is one slot a user has won: an ended auction whose
// highest bid belongs to them or to a group they were part of.
type ReservationSummary struct {
	Key    AuctionKey `json:"key"`
	Amount int        `json:"amount"`
}
