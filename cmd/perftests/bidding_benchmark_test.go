package perftests

import (
	"fmt"
	"math/rand"
	"sync/atomic"
	"testing"
	"time"

	bidding "studybid/internal/biddingService"
	model "studybid/internal/models"
	repository "studybid/internal/repository"
	"studybid/internal/tokens"
)

var (
	benchDate = time.Date(2027, 1, 20, 0, 0, 0, 0, time.UTC)
	benchNow  = time.Date(2027, 1, 1, 12, 0, 0, 0, time.UTC)
)

func benchKey(room string, capacity int) model.AuctionKey {
	return model.NewAuctionKey(room, capacity, "10:00-12:00", benchDate)
}

func setupService() (*bidding.BiddingService, *tokens.MemoryLedger) {
	store := repository.NewMemoryStore()
	ledger := tokens.NewMemoryLedger()
	return bidding.NewBiddingService(store, ledger), ledger
}

// Benchmark 1: PlaceSingleBid - Isolated Auctions (Low Contention - Micro Benchmark)
func Benchmark_PlaceSingleBid_Isolated(b *testing.B) {
	svc, ledger := setupService()

	for i := 0; i < b.N; i++ {
		ledger.Adjust(fmt.Sprintf("user_%d", i), 1000)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		userID := fmt.Sprintf("user_%d", i)
		key := benchKey(fmt.Sprintf("room_%d", i), 1)
		amount := 50 + rand.Intn(100)
		if _, err := svc.PlaceSingleBid(key, userID, amount, benchNow); err != nil {
			b.Fatalf("failed to place bid: %v", err)
		}
	}
}

// Benchmark 2: PlaceSingleBid - Shared Auction (High Contention - Concurrency Benchmark)
func Benchmark_PlaceSingleBid_ConcurrentSharedAuction(b *testing.B) {
	svc, ledger := setupService()
	key := benchKey("shared_room", 1)

	b.ReportAllocs()
	b.ResetTimer()

	var lastBid int64 = 50

	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		for pb.Next() {
			userID := fmt.Sprintf("user_parallel_%d", rnd.Int())
			nextBid := atomic.AddInt64(&lastBid, int64(rnd.Intn(5)+1))

			ledger.Adjust(userID, int(nextBid))
			_, _ = svc.PlaceSingleBid(key, userID, int(nextBid), benchNow)
		}
	})
}

// Benchmark 3: CurrentBid - Concurrent reads against a deep ledger
func Benchmark_CurrentBid_ConcurrentSharedAuction(b *testing.B) {
	svc, ledger := setupService()
	key := benchKey("shared_room", 1)

	for j := 0; j < 100; j++ {
		userID := fmt.Sprintf("user_%d", j)
		ledger.Adjust(userID, 1000)
		if _, err := svc.PlaceSingleBid(key, userID, 50+j, benchNow); err != nil {
			b.Fatalf("failed to seed bid: %v", err)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = svc.CurrentBid(key)
		}
	})
}

// Benchmark 4: SubmitGroupBid - Isolated Groups
func Benchmark_SubmitGroupBid_Isolated(b *testing.B) {
	svc, ledger := setupService()

	for i := 0; i < b.N; i++ {
		owner := fmt.Sprintf("owner_%d", i)
		member := fmt.Sprintf("member_%d", i)
		ledger.Adjust(owner, 1000)
		ledger.Adjust(member, 1000)

		key := benchKey(fmt.Sprintf("room_%d", i), 2)
		if err := svc.StartGroupBid(key, owner, 20, benchNow); err != nil {
			b.Fatalf("failed to start group: %v", err)
		}
		if err := svc.JoinGroupBid(key, owner, member, 15); err != nil {
			b.Fatalf("failed to join group: %v", err)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		owner := fmt.Sprintf("owner_%d", i)
		key := benchKey(fmt.Sprintf("room_%d", i), 2)
		if _, err := svc.SubmitGroupBid(key, owner, owner, benchNow); err != nil {
			b.Fatalf("failed to submit group bid: %v", err)
		}
	}
}

// Benchmark 5: UserBidHistory - Single-Threaded over many auctions
func Benchmark_UserBidHistory_SingleThreaded(b *testing.B) {
	svc, ledger := setupService()
	ledger.Adjust("user_history", 1_000_000)

	for i := 0; i < 50; i++ {
		key := benchKey(fmt.Sprintf("room_%d", i), 1)
		if _, err := svc.PlaceSingleBid(key, "user_history", 50+i, benchNow); err != nil {
			b.Fatalf("failed to seed bid: %v", err)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if got := svc.UserBidHistory("user_history", 20, benchNow); len(got) != 20 {
			b.Fatalf("unexpected history length: %d", len(got))
		}
	}
}
