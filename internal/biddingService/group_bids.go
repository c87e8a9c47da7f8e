package bidding

import (
	"fmt"
	"time"

	"studybid/internal/biddingerrors"
	model "studybid/internal/models"
	"studybid/utils"
)

// StartGroupBid opens a new pending group for a multi-person room, with the
// owner as its first member. The join code the owner shares with prospective
// members is the owner id.
func (s *BiddingService) StartGroupBid(key model.AuctionKey, ownerID string, amount int, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if key.Capacity <= 1 {
		return fmt.Errorf("service: %w - group bidding is only for multi-person rooms", biddingerrors.ErrWrongCapacity)
	}
	if amount <= 0 {
		return fmt.Errorf("service: %w - bid amount must be positive", biddingerrors.ErrInvalidBid)
	}
	if s.IsEnded(key, now) {
		return fmt.Errorf("service: %w for this reservation", biddingerrors.ErrAuctionEnded)
	}
	if _, exists := s.store.PendingGroup(key, ownerID); exists {
		return fmt.Errorf("service: %w - owner %s", biddingerrors.ErrGroupExists, ownerID)
	}

	s.store.PutPendingGroup(model.PendingGroupBid{
		Key:      key,
		OwnerID:  ownerID,
		JoinCode: ownerID,
		Capacity: key.Capacity,
		Members:  []model.GroupMemberBid{{UserID: ownerID, Amount: amount}},
	})
	return nil
}

// JoinGroupBid adds a new member to a forming group. Members already in the
// group must use UpdateGroupMemberBid instead; second-chance groups have
// frozen membership.
func (s *BiddingService) JoinGroupBid(key model.AuctionKey, joinCode, userID string, amount int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if amount <= 0 {
		return fmt.Errorf("service: %w - bid amount must be positive", biddingerrors.ErrInvalidBid)
	}

	group, ok := s.store.PendingGroup(key, joinCode)
	if !ok {
		return fmt.Errorf("service: %w - join code %s", biddingerrors.ErrGroupNotFound, joinCode)
	}
	if group.SecondChance {
		return fmt.Errorf("service: %w - membership is frozen", biddingerrors.ErrSecondChanceFrozen)
	}
	if _, member := group.Member(userID); member {
		return fmt.Errorf("service: %w - use change bid instead", biddingerrors.ErrAlreadyMember)
	}
	if len(group.Members) >= group.Capacity {
		return fmt.Errorf("service: %w - capacity %d reached", biddingerrors.ErrGroupFull, group.Capacity)
	}

	s.store.AddPendingGroupMember(key, joinCode, model.GroupMemberBid{UserID: userID, Amount: amount})
	return nil
}

// UpdateGroupMemberBid changes an existing member's pledged amount.
func (s *BiddingService) UpdateGroupMemberBid(key model.AuctionKey, joinCode, userID string, newAmount int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if newAmount <= 0 {
		return fmt.Errorf("service: %w - bid amount must be positive", biddingerrors.ErrInvalidBid)
	}

	group, ok := s.store.PendingGroup(key, joinCode)
	if !ok {
		return fmt.Errorf("service: %w - join code %s", biddingerrors.ErrGroupNotFound, joinCode)
	}
	if group.SecondChance {
		return fmt.Errorf("service: %w - submit or cancel instead", biddingerrors.ErrSecondChanceFrozen)
	}
	if _, member := group.Member(userID); !member {
		return fmt.Errorf("service: %w - user %s", biddingerrors.ErrNotMember, userID)
	}

	s.store.SetPendingGroupMemberAmount(key, joinCode, userID, newAmount)
	return nil
}

// CancelGroupBid deletes a pending group. Owner only. Cancelling a
// second-chance group counts as refusing the offer: the refusal is recorded
// permanently and the offer chains to the next-highest eligible group, or
// second-chance mode ends if none remains.
func (s *BiddingService) CancelGroupBid(key model.AuctionKey, joinCode, requesterID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	group, ok := s.store.PendingGroup(key, joinCode)
	if !ok {
		return fmt.Errorf("service: %w - join code %s", biddingerrors.ErrGroupNotFound, joinCode)
	}
	if group.OwnerID != requesterID {
		return fmt.Errorf("service: %w - cancel", biddingerrors.ErrNotOwner)
	}

	s.store.DeletePendingGroup(key, joinCode)

	if !group.SecondChance {
		return nil
	}

	s.store.RecordRefusal(key, group.OwnerID)
	if !s.offerNextGroupSecondChance(key) {
		s.store.ClearSecondChanceMode(key)
	}
	return nil
}

// SubmitGroupBid finalizes a pending group as one atomic bid. Owner only.
// The total must strictly exceed the current bid unless the group is
// re-affirming a second-chance offer, and every member must hold their
// pledge. On success all members are debited, the previous highest bid is
// refunded unless this is a second-chance resubmission, and an immutable
// snapshot of the membership is recorded.
func (s *BiddingService) SubmitGroupBid(key model.AuctionKey, joinCode, requesterID string, now time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	group, ok := s.store.PendingGroup(key, joinCode)
	if !ok {
		return 0, fmt.Errorf("service: %w - join code %s", biddingerrors.ErrGroupNotFound, joinCode)
	}
	if group.OwnerID != requesterID {
		return 0, fmt.Errorf("service: %w - submit", biddingerrors.ErrNotOwner)
	}
	if s.IsEnded(key, now) {
		return 0, fmt.Errorf("service: %w for this reservation", biddingerrors.ErrAuctionEnded)
	}

	total := group.Total()
	if total <= 0 {
		return 0, fmt.Errorf("service: %w - total bid must be positive", biddingerrors.ErrInvalidBid)
	}

	currentBid := s.store.CurrentBid(key)
	if !group.SecondChance && total <= currentBid {
		return 0, fmt.Errorf("service: %w - group total %d must exceed current bid %d", biddingerrors.ErrBidTooLow, total, currentBid)
	}

	for _, m := range group.Members {
		if s.ledger.Balance(m.UserID) < m.Amount {
			return 0, fmt.Errorf("service: %w for user %s", biddingerrors.ErrInsufficientTokens, m.UserID)
		}
	}

	groupID := model.GroupBidder(group.OwnerID)

	// On a second-chance resubmission nothing is left in escrow: the
	// cancelled winner's entry is gone and every remaining entry was already
	// refunded when it was outbid, so refunding the highest of them would
	// create tokens out of nothing.
	if !group.SecondChance {
		if previous, ok := s.store.HighestEntry(key); ok {
			s.refundEntry(key, previous)
		}
	}

	for _, m := range group.Members {
		s.ledger.Adjust(m.UserID, -m.Amount)
	}

	s.store.AppendBid(key, model.BidEntry{
		BidID:     utils.GenerateID(),
		Bidder:    groupID,
		Amount:    total,
		CreatedAt: now,
	})
	s.store.AppendFinalGroup(model.FinalGroupBid{
		Key:         key,
		GroupID:     groupID,
		Members:     group.Members,
		TotalAmount: total,
	})

	for _, m := range group.Members {
		s.store.PushGroupHistory(m.UserID, model.UserGroupBidRecord{
			Key:        key,
			UserAmount: m.Amount,
			GroupTotal: total,
			CreatedAt:  now,
		})
	}

	s.store.DeletePendingGroup(key, joinCode)

	if group.SecondChance {
		s.store.ClearSecondChanceMode(key)
	}

	return total, nil
}

// PendingGroup returns the pending group for an auction and join code.
func (s *BiddingService) PendingGroup(key model.AuctionKey, joinCode string) (model.PendingGroupBid, bool) {
	return s.store.PendingGroup(key, joinCode)
}

// PendingGroupsForUser returns every forming group the user belongs to.
func (s *BiddingService) PendingGroupsForUser(userID string) []model.PendingGroupBid {
	return s.store.PendingGroupsForUser(userID)
}
