package bidding

import (
	"fmt"
	"sync"
	"time"

	"studybid/internal/biddingerrors"
	model "studybid/internal/models"
	"studybid/internal/repository"
	"studybid/internal/tokens"
	"studybid/utils"
)

// BiddingService implements the auction business logic: the bid ledger
// queries, the single-bid and group-bid engines, the second-chance engine and
// the history queries, all against one shared store and token ledger.
//
// Every public mutating operation is one atomic transaction: a single mutex
// serializes them, so validation, refund, debit and append can never
// interleave between two requests touching the same auction or balance.
type BiddingService struct {
	mu     sync.Mutex
	store  repository.AuctionStore
	ledger tokens.Ledger
}

// NewBiddingService creates a new BiddingService instance.
func NewBiddingService(store repository.AuctionStore, ledger tokens.Ledger) *BiddingService {
	return &BiddingService{
		store:  store,
		ledger: ledger,
	}
}

// CurrentBid returns the highest in-force amount for an auction, 0 if none.
func (s *BiddingService) CurrentBid(key model.AuctionKey) int {
	return s.store.CurrentBid(key)
}

// LastBids returns up to limit entries for an auction, newest first.
func (s *BiddingService) LastBids(key model.AuctionKey, limit int) []model.BidEntry {
	return s.store.LastBids(key, limit)
}

// IsEnded reports whether bidding has closed for an auction: one week before
// the reservation date at 00:00, or earlier if force-closed by an operator.
func (s *BiddingService) IsEnded(key model.AuctionKey, now time.Time) bool {
	return !now.Before(key.EndTime()) || s.store.IsForceClosed(key)
}

// ForceClose permanently ends an auction. Administrative use only.
func (s *BiddingService) ForceClose(key model.AuctionKey) {
	s.store.ForceClose(key)
}

// Balance returns a user's current token balance.
func (s *BiddingService) Balance(userID string) int {
	return s.ledger.Balance(userID)
}

// AddTokens credits a user with tokens and returns the new balance.
func (s *BiddingService) AddTokens(userID string, amount int) (int, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("service: %w - token grant must be positive", biddingerrors.ErrInvalidBid)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.ledger.Adjust(userID, amount)
	return s.ledger.Balance(userID), nil
}

// PlaceSingleBid validates and records an individual's bid on a
// single-person room. On success the previous highest bidder (single or
// group) is refunded in full, the new bidder is debited, and the new current
// bid is returned. Validation failures leave all state untouched.
func (s *BiddingService) PlaceSingleBid(key model.AuctionKey, bidderID string, amount int, now time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if key.Capacity != 1 {
		return 0, fmt.Errorf("service: %w - not a single-person room", biddingerrors.ErrWrongCapacity)
	}
	if s.IsEnded(key, now) {
		return 0, fmt.Errorf("service: %w for this reservation", biddingerrors.ErrAuctionEnded)
	}
	if amount <= 0 {
		return 0, fmt.Errorf("service: %w - bid amount must be positive", biddingerrors.ErrInvalidBid)
	}

	currentBid := s.store.CurrentBid(key)
	if amount <= currentBid {
		return 0, fmt.Errorf("service: %w - current bid is %d tokens", biddingerrors.ErrBidTooLow, currentBid)
	}

	if s.ledger.Balance(bidderID) < amount {
		return 0, fmt.Errorf("service: %w for user %s", biddingerrors.ErrInsufficientTokens, bidderID)
	}

	// Refund previous highest (single or group) before the new debit.
	if previous, ok := s.store.HighestEntry(key); ok {
		s.refundEntry(key, previous)
	}

	s.ledger.Adjust(bidderID, -amount)
	s.store.AppendBid(key, model.BidEntry{
		BidID:     utils.GenerateID(),
		Bidder:    model.UserBidder(bidderID),
		Amount:    amount,
		CreatedAt: now,
	})

	return amount, nil
}

// refundEntry returns the displaced bid's tokens: the full amount to a single
// bidder, or each member's own pledge for a group entry. Caller holds s.mu.
func (s *BiddingService) refundEntry(key model.AuctionKey, entry model.BidEntry) {
	if !entry.Bidder.IsGroup() {
		s.ledger.Adjust(entry.Bidder.ID, entry.Amount)
		return
	}

	fg, ok := s.store.LatestFinalGroup(key, entry.Bidder, entry.Amount)
	if !ok {
		// Snapshot should always exist for a recorded group entry; nothing
		// safe to refund without it.
		return
	}
	for _, m := range fg.Members {
		s.ledger.Adjust(m.UserID, m.Amount)
	}
}
