package bidding

import (
	"fmt"
	"time"

	"studybid/internal/biddingerrors"
	model "studybid/internal/models"
)

// CancelReservation cancels a confirmed single-room reservation. Only the
// current winner, matched on id and amount, may cancel, and only strictly
// before the day preceding the reservation date. Half the tokens (floor) are
// returned, all of the canceller's entries for the auction are removed, and
// the slot is offered to the next-highest non-refused single bidder.
func (s *BiddingService) CancelReservation(key model.AuctionKey, userID string, amount int, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if key.Capacity != 1 {
		return fmt.Errorf("service: %w - second-chance cancellation is only for single-person rooms", biddingerrors.ErrWrongCapacity)
	}
	if !now.Before(key.CancelDeadline()) {
		return fmt.Errorf("service: %w - cancel at least one day before the reservation date", biddingerrors.ErrCancelTooLate)
	}

	top, ok := s.store.HighestEntry(key)
	if !ok {
		return fmt.Errorf("service: %w", biddingerrors.ErrNoBids)
	}
	if top.Bidder != model.UserBidder(userID) || top.Amount != amount {
		return fmt.Errorf("service: %w", biddingerrors.ErrNotWinner)
	}

	// 50% refund, floored.
	if refund := amount / 2; refund > 0 {
		s.ledger.Adjust(userID, refund)
	}

	canceller := model.UserBidder(userID)
	s.store.RemoveBids(key, func(e model.BidEntry) bool {
		return e.Bidder == canceller
	})

	s.store.MarkSecondChanceMode(key)

	if candidate, ok := s.nextSingleCandidate(key, userID); ok {
		s.store.PutSecondChance(model.SecondChanceBid{
			Key:      key,
			BidderID: candidate.Bidder.ID,
			Amount:   candidate.Amount,
		})
	}
	return nil
}

// CancelGroupReservation cancels a confirmed group reservation. Only the
// owner of the currently winning group may cancel, under the same deadline as
// the single-room flow. Each member gets half their own pledge back (floor),
// the winning entry leaves the ledger, and the next-highest non-refused group
// is reconstructed as a frozen second-chance pending group.
func (s *BiddingService) CancelGroupReservation(key model.AuctionKey, ownerID string, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if key.Capacity <= 1 {
		return fmt.Errorf("service: %w - group cancellation is only for multi-person rooms", biddingerrors.ErrWrongCapacity)
	}
	if !now.Before(key.CancelDeadline()) {
		return fmt.Errorf("service: %w - cancel at least one day before the reservation date", biddingerrors.ErrCancelTooLate)
	}

	top, ok := s.store.HighestEntry(key)
	if !ok {
		return fmt.Errorf("service: %w", biddingerrors.ErrNoBids)
	}
	groupID := model.GroupBidder(ownerID)
	if top.Bidder != groupID {
		return fmt.Errorf("service: %w - not the winning group owner", biddingerrors.ErrNotWinner)
	}

	fg, ok := s.store.LatestFinalGroup(key, groupID, top.Amount)
	if !ok {
		return fmt.Errorf("service: %w for this reservation", biddingerrors.ErrDetailsNotFound)
	}

	for _, m := range fg.Members {
		if refund := m.Amount / 2; refund > 0 {
			s.ledger.Adjust(m.UserID, refund)
		}
	}

	s.store.RemoveBids(key, func(e model.BidEntry) bool {
		return e.BidID == top.BidID
	})

	s.store.MarkSecondChanceMode(key)

	if !s.offerNextGroupSecondChance(key) {
		s.store.ClearSecondChanceMode(key)
	}
	return nil
}

// AcceptSecondChance accepts a pending single-bidder offer: the user is
// debited the offered amount and the second-chance cycle for the auction
// ends.
func (s *BiddingService) AcceptSecondChance(key model.AuctionKey, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sc, ok := s.store.SecondChance(key, userID)
	if !ok {
		return fmt.Errorf("service: %w", biddingerrors.ErrOfferNotFound)
	}
	if s.ledger.Balance(userID) < sc.Amount {
		return fmt.Errorf("service: %w to accept this offer", biddingerrors.ErrInsufficientTokens)
	}

	s.ledger.Adjust(userID, -sc.Amount)
	s.store.RemoveSecondChance(key, userID)
	s.store.ClearSecondChanceMode(key)
	return nil
}

// DeclineSecondChance refuses a pending offer. The refusal is permanent for
// this auction; the offer chains to the next-highest single bidder who has
// not refused, or second-chance mode ends if nobody remains.
func (s *BiddingService) DeclineSecondChance(key model.AuctionKey, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.store.SecondChance(key, userID); !ok {
		return fmt.Errorf("service: %w", biddingerrors.ErrOfferNotFound)
	}

	s.store.RemoveSecondChance(key, userID)
	s.store.RecordRefusal(key, userID)

	// No explicit exclusion: the refusal just recorded already screens the
	// decliner out of the candidate scan.
	if candidate, ok := s.nextSingleCandidate(key, ""); ok {
		s.store.PutSecondChance(model.SecondChanceBid{
			Key:      key,
			BidderID: candidate.Bidder.ID,
			Amount:   candidate.Amount,
		})
	} else {
		s.store.ClearSecondChanceMode(key)
	}
	return nil
}

// SecondChanceOffersForUser returns all pending offers addressed to a user.
func (s *BiddingService) SecondChanceOffersForUser(userID string) []model.SecondChanceBid {
	return s.store.SecondChancesForUser(userID)
}

// nextSingleCandidate picks the strictly-highest remaining single bid whose
// bidder has not refused a second chance for this auction, excluding
// excludeID when non-empty. Ties resolve to the earliest entry. Caller holds
// s.mu.
func (s *BiddingService) nextSingleCandidate(key model.AuctionKey, excludeID string) (model.BidEntry, bool) {
	var best model.BidEntry
	found := false
	for _, e := range s.store.BidsFor(key) {
		if e.Bidder.IsGroup() {
			continue
		}
		if excludeID != "" && e.Bidder.ID == excludeID {
			continue
		}
		if s.store.HasRefused(key, e.Bidder.ID) {
			continue
		}
		if !found || e.Amount > best.Amount || (e.Amount == best.Amount && e.CreatedAt.Before(best.CreatedAt)) {
			best = e
			found = true
		}
	}
	return best, found
}

// offerNextGroupSecondChance reconstructs the next-highest non-refused
// group's pending bid in frozen second-chance form and registers it. Returns
// false when no eligible group with an intact snapshot exists. Caller holds
// s.mu.
func (s *BiddingService) offerNextGroupSecondChance(key model.AuctionKey) bool {
	var best model.BidEntry
	found := false
	for _, e := range s.store.BidsFor(key) {
		if !e.Bidder.IsGroup() {
			continue
		}
		if s.store.HasRefused(key, e.Bidder.ID) {
			continue
		}
		if !found || e.Amount > best.Amount || (e.Amount == best.Amount && e.CreatedAt.Before(best.CreatedAt)) {
			best = e
			found = true
		}
	}
	if !found {
		return false
	}

	fg, ok := s.store.LatestFinalGroup(key, best.Bidder, best.Amount)
	if !ok {
		return false
	}

	ownerID := best.Bidder.ID
	s.store.PutPendingGroup(model.PendingGroupBid{
		Key:          key,
		OwnerID:      ownerID,
		JoinCode:     ownerID,
		Capacity:     key.Capacity,
		Members:      fg.Members,
		SecondChance: true,
	})
	s.store.MarkSecondChanceMode(key)
	return true
}
