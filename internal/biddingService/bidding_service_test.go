package bidding

import (
	"errors"
	"testing"
	"time"

	"studybid/internal/biddingerrors"
	model "studybid/internal/models"
	"studybid/internal/repository"
	"studybid/internal/tokens"
	"studybid/utils"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

// Shared fixtures: reservation on 2026-03-10, so bidding ends 2026-03-03
// 00:00 and the cancellation deadline is 2026-03-09 00:00.
var (
	resDate   = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	bidTime   = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	afterEnd  = time.Date(2026, 3, 5, 12, 0, 0, 0, time.UTC)
	afterLast = time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)
)

func singleKey(room string) model.AuctionKey {
	return model.NewAuctionKey(room, 1, "10:00-12:00", resDate)
}

func groupKey(room string, capacity int) model.AuctionKey {
	return model.NewAuctionKey(room, capacity, "10:00-12:00", resDate)
}

func newTestService() (*BiddingService, *repository.MemoryStore, *tokens.MemoryLedger) {
	store := repository.NewMemoryStore()
	ledger := tokens.NewMemoryLedger()
	return NewBiddingService(store, ledger), store, ledger
}

// Tests PlaceSingleBid validation and the first-bid / outbid flows
func TestBiddingService_PlaceSingleBid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		key           model.AuctionKey
		bidderID      string
		amount        int
		now           time.Time
		setup         func(s *BiddingService, ledger *tokens.MemoryLedger)
		expectedError error
		wantBid       int
	}{
		{
			name:     "valid_first_bid",
			key:      singleKey("101"),
			bidderID: "user1",
			amount:   50,
			now:      bidTime,
			setup: func(s *BiddingService, ledger *tokens.MemoryLedger) {
				ledger.Adjust("user1", 100)
			},
			wantBid: 50,
		},
		{
			name:          "wrong_capacity",
			key:           groupKey("201", 3),
			bidderID:      "user1",
			amount:        50,
			now:           bidTime,
			setup:         func(s *BiddingService, ledger *tokens.MemoryLedger) { ledger.Adjust("user1", 100) },
			expectedError: biddingerrors.ErrWrongCapacity,
		},
		{
			name:          "auction_ended",
			key:           singleKey("101"),
			bidderID:      "user1",
			amount:        50,
			now:           afterEnd,
			setup:         func(s *BiddingService, ledger *tokens.MemoryLedger) { ledger.Adjust("user1", 100) },
			expectedError: biddingerrors.ErrAuctionEnded,
		},
		{
			name:     "auction_force_closed",
			key:      singleKey("101"),
			bidderID: "user1",
			amount:   50,
			now:      bidTime,
			setup: func(s *BiddingService, ledger *tokens.MemoryLedger) {
				ledger.Adjust("user1", 100)
				s.ForceClose(singleKey("101"))
			},
			expectedError: biddingerrors.ErrAuctionEnded,
		},
		{
			name:          "zero_amount",
			key:           singleKey("101"),
			bidderID:      "user1",
			amount:        0,
			now:           bidTime,
			setup:         func(s *BiddingService, ledger *tokens.MemoryLedger) {},
			expectedError: biddingerrors.ErrInvalidBid,
		},
		{
			name:          "negative_amount",
			key:           singleKey("101"),
			bidderID:      "user1",
			amount:        -50,
			now:           bidTime,
			setup:         func(s *BiddingService, ledger *tokens.MemoryLedger) {},
			expectedError: biddingerrors.ErrInvalidBid,
		},
		{
			name:     "bid_equal_to_current_rejected",
			key:      singleKey("101"),
			bidderID: "user2",
			amount:   50,
			now:      bidTime.Add(time.Minute),
			setup: func(s *BiddingService, ledger *tokens.MemoryLedger) {
				ledger.Adjust("user1", 100)
				ledger.Adjust("user2", 100)
				_, err := s.PlaceSingleBid(singleKey("101"), "user1", 50, bidTime)
				require.NoError(t, err)
			},
			expectedError: biddingerrors.ErrBidTooLow,
		},
		{
			name:          "insufficient_tokens",
			key:           singleKey("101"),
			bidderID:      "user1",
			amount:        50,
			now:           bidTime,
			setup:         func(s *BiddingService, ledger *tokens.MemoryLedger) { ledger.Adjust("user1", 49) },
			expectedError: biddingerrors.ErrInsufficientTokens,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			service, _, ledger := newTestService()
			tc.setup(service, ledger)

			newBid, err := service.PlaceSingleBid(tc.key, tc.bidderID, tc.amount, tc.now)

			if tc.expectedError != nil {
				require.Error(t, err)
				require.True(t, errors.Is(err, tc.expectedError), "expected error: %v, got: %v", tc.expectedError, err)
			} else {
				require.NoError(t, err)
				require.Equal(t, tc.wantBid, newBid)
				require.Equal(t, tc.wantBid, service.CurrentBid(tc.key))
			}
		})
	}
}

// Scenario: first bid debits the bidder, outbidding refunds the displaced
// bidder in full and total tokens in the system are conserved.
func TestBiddingService_PlaceSingleBid_OutbidRefunds(t *testing.T) {
	t.Parallel()

	service, _, ledger := newTestService()
	key := singleKey("101")
	ledger.Adjust("user1", 100)
	ledger.Adjust("user2", 100)

	newBid, err := service.PlaceSingleBid(key, "user1", 50, bidTime)
	require.NoError(t, err)
	require.Equal(t, 50, newBid)
	require.Equal(t, 50, ledger.Balance("user1"))

	newBid, err = service.PlaceSingleBid(key, "user2", 70, bidTime.Add(time.Minute))
	require.NoError(t, err)
	require.Equal(t, 70, newBid)

	// user1 made whole, user2 debited
	require.Equal(t, 100, ledger.Balance("user1"))
	require.Equal(t, 30, ledger.Balance("user2"))
	require.Equal(t, 70, service.CurrentBid(key))

	entries := service.LastBids(key, 5)
	require.Len(t, entries, 2)
	require.Equal(t, model.UserBidder("user2"), entries[0].Bidder)
}

// A failed bid must leave ledger and balances untouched.
func TestBiddingService_PlaceSingleBid_NoSideEffectsOnFailure(t *testing.T) {
	t.Parallel()

	service, store, ledger := newTestService()
	key := singleKey("101")
	ledger.Adjust("user1", 100)
	ledger.Adjust("user2", 100)

	_, err := service.PlaceSingleBid(key, "user1", 60, bidTime)
	require.NoError(t, err)

	_, err = service.PlaceSingleBid(key, "user2", 60, bidTime.Add(time.Minute))
	require.True(t, errors.Is(err, biddingerrors.ErrBidTooLow))

	require.Equal(t, 40, ledger.Balance("user1"))
	require.Equal(t, 100, ledger.Balance("user2"))
	require.Len(t, store.BidsFor(key), 1)
	require.Equal(t, 60, service.CurrentBid(key))
}

// Outbidding a group entry refunds every member their own pledge.
func TestBiddingService_PlaceSingleBid_RefundsGroupMembers(t *testing.T) {
	t.Parallel()

	service, store, ledger := newTestService()
	key := singleKey("101")
	groupID := model.GroupBidder("owner")

	// seed a group entry with its snapshot, as left behind by an earlier
	// submission
	store.AppendBid(key, model.BidEntry{
		BidID:     utils.GenerateID(),
		Bidder:    groupID,
		Amount:    45,
		CreatedAt: bidTime,
	})
	store.AppendFinalGroup(model.FinalGroupBid{
		Key:     key,
		GroupID: groupID,
		Members: []model.GroupMemberBid{
			{UserID: "owner", Amount: 20},
			{UserID: "m1", Amount: 25},
		},
		TotalAmount: 45,
	})
	ledger.Adjust("user1", 100)

	_, err := service.PlaceSingleBid(key, "user1", 50, bidTime.Add(time.Minute))
	require.NoError(t, err)

	require.Equal(t, 20, ledger.Balance("owner"))
	require.Equal(t, 25, ledger.Balance("m1"))
	require.Equal(t, 50, ledger.Balance("user1"))
}

// Verifies the exact debit/refund calls against the token ledger.
func TestBiddingService_PlaceSingleBid_LedgerCalls(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedger := tokens.NewMockLedger(ctrl)
	store := repository.NewMemoryStore()
	service := NewBiddingService(store, mockLedger)
	key := singleKey("101")

	// first bid: one balance check, one debit
	gomock.InOrder(
		mockLedger.EXPECT().Balance("user1").Return(100),
		mockLedger.EXPECT().Adjust("user1", -50),
	)
	_, err := service.PlaceSingleBid(key, "user1", 50, bidTime)
	require.NoError(t, err)

	// outbid: balance check, refund of the displaced bidder, then the debit
	gomock.InOrder(
		mockLedger.EXPECT().Balance("user2").Return(100),
		mockLedger.EXPECT().Adjust("user1", 50),
		mockLedger.EXPECT().Adjust("user2", -70),
	)
	_, err = service.PlaceSingleBid(key, "user2", 70, bidTime.Add(time.Minute))
	require.NoError(t, err)
}

// Tests IsEnded boundaries
func TestBiddingService_IsEnded(t *testing.T) {
	t.Parallel()

	service, _, _ := newTestService()
	key := singleKey("101")
	end := key.EndTime()

	require.False(t, service.IsEnded(key, end.Add(-time.Second)))
	require.True(t, service.IsEnded(key, end))
	require.True(t, service.IsEnded(key, end.Add(time.Second)))

	other := singleKey("102")
	require.False(t, service.IsEnded(other, bidTime))
	service.ForceClose(other)
	require.True(t, service.IsEnded(other, bidTime))
}

// Tests AddTokens and Balance
func TestBiddingService_AddTokens(t *testing.T) {
	t.Parallel()

	service, _, _ := newTestService()

	balance, err := service.AddTokens("user1", 100)
	require.NoError(t, err)
	require.Equal(t, 100, balance)
	require.Equal(t, 100, service.Balance("user1"))

	_, err = service.AddTokens("user1", 0)
	require.True(t, errors.Is(err, biddingerrors.ErrInvalidBid))
	_, err = service.AddTokens("user1", -5)
	require.True(t, errors.Is(err, biddingerrors.ErrInvalidBid))
	require.Equal(t, 100, service.Balance("user1"))
}
