package repository

import (
	"sort"
	"sync"

	model "studybid/internal/models"
)

const groupHistoryCap = 10

// AuctionStore defines the shared auction state for the bidding engines:
// the append-only bid ledger plus the pending-group, snapshot, second-chance
// and history stores that must stay consistent with it.
type AuctionStore interface {
	AppendBid(key model.AuctionKey, entry model.BidEntry)
	BidsFor(key model.AuctionKey) []model.BidEntry
	RemoveBids(key model.AuctionKey, match func(model.BidEntry) bool) int
	CurrentBid(key model.AuctionKey) int
	HighestEntry(key model.AuctionKey) (model.BidEntry, bool)
	LastBids(key model.AuctionKey, limit int) []model.BidEntry
	AuctionKeys() []model.AuctionKey

	ForceClose(key model.AuctionKey)
	IsForceClosed(key model.AuctionKey) bool

	PutPendingGroup(group model.PendingGroupBid)
	PendingGroup(key model.AuctionKey, joinCode string) (model.PendingGroupBid, bool)
	DeletePendingGroup(key model.AuctionKey, joinCode string)
	AddPendingGroupMember(key model.AuctionKey, joinCode string, member model.GroupMemberBid)
	SetPendingGroupMemberAmount(key model.AuctionKey, joinCode, userID string, amount int)
	PendingGroupsForUser(userID string) []model.PendingGroupBid

	AppendFinalGroup(fg model.FinalGroupBid)
	LatestFinalGroup(key model.AuctionKey, groupID model.Bidder, total int) (model.FinalGroupBid, bool)

	PutSecondChance(sc model.SecondChanceBid)
	SecondChance(key model.AuctionKey, bidderID string) (model.SecondChanceBid, bool)
	RemoveSecondChance(key model.AuctionKey, bidderID string)
	SecondChancesForUser(bidderID string) []model.SecondChanceBid
	MarkSecondChanceMode(key model.AuctionKey)
	ClearSecondChanceMode(key model.AuctionKey)
	InSecondChanceMode(key model.AuctionKey) bool
	RecordRefusal(key model.AuctionKey, id string)
	HasRefused(key model.AuctionKey, id string) bool

	PushGroupHistory(userID string, rec model.UserGroupBidRecord)
	GroupHistory(userID string) []model.UserGroupBidRecord
}

type pendingKey struct {
	auction  model.AuctionKey
	joinCode string
}

type refusalKey struct {
	auction model.AuctionKey
	id      string
}

// MemoryStore is a concurrency-safe in-memory implementation of AuctionStore.
// Individual methods are safe on their own; multi-step engine transactions
// are serialized one level up, in the bidding service.
type MemoryStore struct {
	mu             sync.RWMutex
	bids           map[model.AuctionKey][]model.BidEntry
	pendingGroups  map[pendingKey]model.PendingGroupBid
	finalGroups    []model.FinalGroupBid
	secondChances  []model.SecondChanceBid
	secondChanceOn map[model.AuctionKey]struct{}
	refusals       map[refusalKey]struct{}
	forceClosed    map[model.AuctionKey]struct{}
	groupHistory   map[string][]model.UserGroupBidRecord
}

// NewMemoryStore creates a new in-memory store instance.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		bids:           make(map[model.AuctionKey][]model.BidEntry),
		pendingGroups:  make(map[pendingKey]model.PendingGroupBid),
		secondChanceOn: make(map[model.AuctionKey]struct{}),
		refusals:       make(map[refusalKey]struct{}),
		forceClosed:    make(map[model.AuctionKey]struct{}),
		groupHistory:   make(map[string][]model.UserGroupBidRecord),
	}
}

// AppendBid records a bid entry for an auction. The auction springs into
// existence on its first entry.
func (s *MemoryStore) AppendBid(key model.AuctionKey, entry model.BidEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bids[key] = append(s.bids[key], entry)
}

// BidsFor returns a copy of all entries recorded for an auction.
func (s *MemoryStore) BidsFor(key model.AuctionKey) []model.BidEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.BidEntry(nil), s.bids[key]...)
}

// RemoveBids deletes every entry matching the predicate and reports how many
// were removed.
func (s *MemoryStore) RemoveBids(key model.AuctionKey, match func(model.BidEntry) bool) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.bids[key]
	kept := entries[:0]
	removed := 0
	for _, e := range entries {
		if match(e) {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	s.bids[key] = kept
	return removed
}

// CurrentBid returns the highest in-force amount for an auction, 0 if none.
func (s *MemoryStore) CurrentBid(key model.AuctionKey) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	max := 0
	for _, e := range s.bids[key] {
		if e.Amount > max {
			max = e.Amount
		}
	}
	return max
}

// HighestEntry returns the entry holding the current bid. Ties are broken by
// earliest CreatedAt so the result is deterministic.
func (s *MemoryStore) HighestEntry(key model.AuctionKey) (model.BidEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := s.bids[key]
	if len(entries) == 0 {
		return model.BidEntry{}, false
	}

	top := entries[0]
	for _, e := range entries[1:] {
		if e.Amount > top.Amount || (e.Amount == top.Amount && e.CreatedAt.Before(top.CreatedAt)) {
			top = e
		}
	}
	return top, true
}

// LastBids returns up to limit entries sorted by timestamp descending.
func (s *MemoryStore) LastBids(key model.AuctionKey, limit int) []model.BidEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := append([]model.BidEntry(nil), s.bids[key]...)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
	if limit >= 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// AuctionKeys returns every auction that has at least one recorded entry.
func (s *MemoryStore) AuctionKeys() []model.AuctionKey {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]model.AuctionKey, 0, len(s.bids))
	for k := range s.bids {
		keys = append(keys, k)
	}
	return keys
}

// ForceClose permanently marks an auction as ended regardless of its end time.
func (s *MemoryStore) ForceClose(key model.AuctionKey) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.forceClosed[key] = struct{}{}
}

// IsForceClosed reports whether an auction has been force-closed.
func (s *MemoryStore) IsForceClosed(key model.AuctionKey) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.forceClosed[key]
	return ok
}

// PutPendingGroup stores a pending group, replacing any existing one for the
// same auction and join code.
func (s *MemoryStore) PutPendingGroup(group model.PendingGroupBid) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g := group
	g.Members = append([]model.GroupMemberBid(nil), group.Members...)
	s.pendingGroups[pendingKey{group.Key, group.JoinCode}] = g
}

// PendingGroup returns a copy of the pending group for (key, joinCode).
func (s *MemoryStore) PendingGroup(key model.AuctionKey, joinCode string) (model.PendingGroupBid, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.pendingGroups[pendingKey{key, joinCode}]
	if !ok {
		return model.PendingGroupBid{}, false
	}
	g.Members = append([]model.GroupMemberBid(nil), g.Members...)
	return g, true
}

// DeletePendingGroup removes the pending group for (key, joinCode).
func (s *MemoryStore) DeletePendingGroup(key model.AuctionKey, joinCode string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pendingGroups, pendingKey{key, joinCode})
}

// AddPendingGroupMember appends a member to an existing pending group.
// Validation (capacity, duplicates) happens in the service.
func (s *MemoryStore) AddPendingGroupMember(key model.AuctionKey, joinCode string, member model.GroupMemberBid) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pk := pendingKey{key, joinCode}
	g, ok := s.pendingGroups[pk]
	if !ok {
		return
	}
	g.Members = append(g.Members, member)
	s.pendingGroups[pk] = g
}

// SetPendingGroupMemberAmount updates the pledge of an existing member.
func (s *MemoryStore) SetPendingGroupMemberAmount(key model.AuctionKey, joinCode, userID string, amount int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pk := pendingKey{key, joinCode}
	g, ok := s.pendingGroups[pk]
	if !ok {
		return
	}
	for i := range g.Members {
		if g.Members[i].UserID == userID {
			g.Members[i].Amount = amount
			break
		}
	}
	s.pendingGroups[pk] = g
}

// PendingGroupsForUser returns every pending group the user is a member of.
func (s *MemoryStore) PendingGroupsForUser(userID string) []model.PendingGroupBid {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var groups []model.PendingGroupBid
	for _, g := range s.pendingGroups {
		if _, ok := g.Member(userID); ok {
			copied := g
			copied.Members = append([]model.GroupMemberBid(nil), g.Members...)
			groups = append(groups, copied)
		}
	}
	return groups
}

// AppendFinalGroup records an immutable finalized-group snapshot.
func (s *MemoryStore) AppendFinalGroup(fg model.FinalGroupBid) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := fg
	copied.Members = append([]model.GroupMemberBid(nil), fg.Members...)
	s.finalGroups = append(s.finalGroups, copied)
}

// LatestFinalGroup returns the most recent snapshot matching auction, group
// id and total amount. A group can be out-bid and re-submit, so the total is
// part of the match.
func (s *MemoryStore) LatestFinalGroup(key model.AuctionKey, groupID model.Bidder, total int) (model.FinalGroupBid, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := len(s.finalGroups) - 1; i >= 0; i-- {
		fg := s.finalGroups[i]
		if fg.Key == key && fg.GroupID == groupID && fg.TotalAmount == total {
			fg.Members = append([]model.GroupMemberBid(nil), fg.Members...)
			return fg, true
		}
	}
	return model.FinalGroupBid{}, false
}

// PutSecondChance stores an offer, replacing any pending offer to the same
// bidder for the same auction.
func (s *MemoryStore) PutSecondChance(sc model.SecondChanceBid) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.secondChances {
		if existing.Key == sc.Key && existing.BidderID == sc.BidderID {
			s.secondChances[i] = sc
			return
		}
	}
	s.secondChances = append(s.secondChances, sc)
}

// SecondChance returns the pending offer for (key, bidder), if any.
func (s *MemoryStore) SecondChance(key model.AuctionKey, bidderID string) (model.SecondChanceBid, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, sc := range s.secondChances {
		if sc.Key == key && sc.BidderID == bidderID {
			return sc, true
		}
	}
	return model.SecondChanceBid{}, false
}

// RemoveSecondChance deletes the pending offer for (key, bidder).
func (s *MemoryStore) RemoveSecondChance(key model.AuctionKey, bidderID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, sc := range s.secondChances {
		if sc.Key == key && sc.BidderID == bidderID {
			s.secondChances = append(s.secondChances[:i], s.secondChances[i+1:]...)
			return
		}
	}
}

// SecondChancesForUser returns all pending offers addressed to a bidder.
func (s *MemoryStore) SecondChancesForUser(bidderID string) []model.SecondChanceBid {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var offers []model.SecondChanceBid
	for _, sc := range s.secondChances {
		if sc.BidderID == bidderID {
			offers = append(offers, sc)
		}
	}
	return offers
}

// MarkSecondChanceMode flags an auction as being in second-chance mode.
func (s *MemoryStore) MarkSecondChanceMode(key model.AuctionKey) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.secondChanceOn[key] = struct{}{}
}

// ClearSecondChanceMode removes the second-chance flag for an auction.
func (s *MemoryStore) ClearSecondChanceMode(key model.AuctionKey) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.secondChanceOn, key)
}

// InSecondChanceMode reports whether an auction is in second-chance mode.
func (s *MemoryStore) InSecondChanceMode(key model.AuctionKey) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.secondChanceOn[key]
	return ok
}

// RecordRefusal permanently records that an identity declined a second-chance
// offer for an auction. Refusals are never cleared.
func (s *MemoryStore) RecordRefusal(key model.AuctionKey, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refusals[refusalKey{key, id}] = struct{}{}
}

// HasRefused reports whether an identity already declined for this auction.
func (s *MemoryStore) HasRefused(key model.AuctionKey, id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.refusals[refusalKey{key, id}]
	return ok
}

// PushGroupHistory prepends a record to the user's group-bid history,
// dropping the oldest entry beyond the cap.
func (s *MemoryStore) PushGroupHistory(userID string, rec model.UserGroupBidRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	h := append([]model.UserGroupBidRecord{rec}, s.groupHistory[userID]...)
	if len(h) > groupHistoryCap {
		h = h[:groupHistoryCap]
	}
	s.groupHistory[userID] = h
}

// GroupHistory returns a copy of the user's group-bid history, newest first.
func (s *MemoryStore) GroupHistory(userID string) []model.UserGroupBidRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.UserGroupBidRecord(nil), s.groupHistory[userID]...)
}
