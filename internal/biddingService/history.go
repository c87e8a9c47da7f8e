package bidding

import (
	"sort"
	"time"

	model "studybid/internal/models"
)

// UserBidHistory returns up to limit of the user's bids across all auctions:
// their own single entries plus their personal group-bid records. Group
// records come first, newest first; flags are computed against now.
func (s *BiddingService) UserBidHistory(userID string, limit int, now time.Time) []model.UserBidSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	type row struct {
		summary model.UserBidSummary
		at      time.Time
	}
	var rows []row

	bidder := model.UserBidder(userID)
	for _, key := range s.store.AuctionKeys() {
		active := !s.IsEnded(key, now)
		current := s.store.CurrentBid(key)
		for _, e := range s.store.BidsFor(key) {
			if e.Bidder != bidder {
				continue
			}
			rows = append(rows, row{summary: model.UserBidSummary{
				Key:              key,
				Amount:           e.Amount,
				IsCurrentHighest: e.Amount == current && active,
				IsActive:         active,
			}})
		}
	}

	for _, rec := range s.store.GroupHistory(userID) {
		active := !s.IsEnded(rec.Key, now)
		current := s.store.CurrentBid(rec.Key)
		total := rec.GroupTotal
		rows = append(rows, row{
			summary: model.UserBidSummary{
				Key:              rec.Key,
				Amount:           rec.UserAmount,
				GroupTotal:       &total,
				IsCurrentHighest: rec.GroupTotal == current && active,
				IsActive:         active,
				IsGroup:          true,
			},
			at: rec.CreatedAt,
		})
	}

	// Group records carry a timestamp, single entries do not; groups sort
	// first, newest first, singles keep their encounter order.
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].at.After(rows[j].at)
	})

	if limit >= 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	summaries := make([]model.UserBidSummary, 0, len(rows))
	for _, r := range rows {
		summaries = append(summaries, r.summary)
	}
	return summaries
}

// UserReservationHistory returns up to limit slots the user has won: ended
// auctions not in second-chance limbo whose highest entry is the user's own
// bid or a group they were part of. Sorted by reservation date, most recent
// first.
func (s *BiddingService) UserReservationHistory(userID string, limit int, now time.Time) []model.ReservationSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	var results []model.ReservationSummary
	for _, key := range s.store.AuctionKeys() {
		if !s.IsEnded(key, now) || s.store.InSecondChanceMode(key) {
			continue
		}

		top, ok := s.store.HighestEntry(key)
		if !ok {
			continue
		}

		if !top.Bidder.IsGroup() {
			if top.Bidder.ID != userID {
				continue
			}
		} else {
			fg, ok := s.store.LatestFinalGroup(key, top.Bidder, top.Amount)
			if !ok {
				continue
			}
			if _, member := fg.Member(userID); !member {
				continue
			}
		}

		results = append(results, model.ReservationSummary{Key: key, Amount: top.Amount})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Key.ReservationDate.After(results[j].Key.ReservationDate)
	})
	if limit >= 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}
