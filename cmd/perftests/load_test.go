package perftests

import (
	"fmt"
	"math/rand"
	"runtime"
	"sort"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	bidding "studybid/internal/biddingService"
	model "studybid/internal/models"
	"studybid/internal/tokens"
)

// LoadScenario defines configurable benchmark parameters
type LoadScenario struct {
	Name            string
	NumUsers        int
	NumAuctions     int
	ReadRatio       int // reads per 10 ops
	MaxBidIncrement int
	Burst           bool // if true, no delay between ops
}

// OperationMetrics collects latencies safely
type OperationMetrics struct {
	mu        sync.Mutex
	latencies []time.Duration
}

func (om *OperationMetrics) Record(d time.Duration) {
	om.mu.Lock()
	om.latencies = append(om.latencies, d)
	om.mu.Unlock()
}

func (om *OperationMetrics) Stats() (min, max, avg, p95, p99 time.Duration) {
	om.mu.Lock()
	defer om.mu.Unlock()
	if len(om.latencies) == 0 {
		return
	}
	sort.Slice(om.latencies, func(i, j int) bool { return om.latencies[i] < om.latencies[j] })

	min = om.latencies[0]
	max = om.latencies[len(om.latencies)-1]

	var total time.Duration
	for _, d := range om.latencies {
		total += d
	}
	avg = total / time.Duration(len(om.latencies))
	p95 = om.latencies[int(0.95*float64(len(om.latencies)))]
	p99 = om.latencies[int(0.99*float64(len(om.latencies)))]
	return
}

// setupLoadService creates the service plus the auction keys the scenario
// bids across.
func setupLoadService(numAuctions int) (*bidding.BiddingService, *tokens.MemoryLedger, []model.AuctionKey) {
	svc, ledger := setupService()
	keys := make([]model.AuctionKey, 0, numAuctions)
	for i := 0; i < numAuctions; i++ {
		keys = append(keys, benchKey(fmt.Sprintf("room_%d", i), 1))
	}
	return svc, ledger, keys
}

// Benchmark_Load_AuctionSystem runs multiple scenarios
func Benchmark_Load_AuctionSystem(b *testing.B) {
	scenarios := []LoadScenario{
		{"Low-Contention-WriteHeavy", 200, 200, 0, 50, false},
		{"High-Contention-WriteHeavy", 500, 10, 0, 20, false},
		{"Mixed-Workload", 300, 50, 7, 30, false},
		{"ReadHeavy", 200, 50, 9, 20, false},
		{"Edge-Case-SingleAuction", 100, 1, 5, 10, false},
		{"Peak-Burst", 500, 50, 0, 20, true},
	}

	for _, s := range scenarios {
		b.Run(s.Name, func(b *testing.B) {
			runParallelScenario(b, s)
		})
	}
}

func runParallelScenario(b *testing.B, s LoadScenario) {
	b.ReportAllocs()

	svc, ledger, keys := setupLoadService(s.NumAuctions)

	var totalOps, successfulBids, failedBids, totalReads int64
	metrics := &OperationMetrics{}

	start := time.Now()

	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano() + int64(time.Now().Nanosecond())))

		for pb.Next() {
			key := keys[rnd.Intn(s.NumAuctions)]
			opType := rnd.Intn(10)

			opStart := time.Now()
			if opType < s.ReadRatio {
				_ = svc.CurrentBid(key)
				atomic.AddInt64(&totalReads, 1)
			} else {
				amount := svc.CurrentBid(key) + 1 + rnd.Intn(s.MaxBidIncrement)
				userID := fmt.Sprintf("user_%d", rnd.Intn(s.NumUsers))
				ledger.Adjust(userID, amount)
				if _, err := svc.PlaceSingleBid(key, userID, amount, benchNow); err != nil {
					atomic.AddInt64(&failedBids, 1)
				} else {
					atomic.AddInt64(&successfulBids, 1)
				}
			}

			metrics.Record(time.Since(opStart))
			atomic.AddInt64(&totalOps, 1)

			if !s.Burst {
				time.Sleep(time.Millisecond)
			}
		}
	})

	elapsed := time.Since(start)
	throughput := float64(totalOps) / elapsed.Seconds()
	min, max, avg, p95, p99 := metrics.Stats()

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	b.Logf(
		"Scenario: %s | Auctions: %d | Total Ops: %d | Success Bids: %d | Failed Bids: %d | Reads: %d | Elapsed: %s | Throughput: %.2f ops/sec | Latency(us) min: %.2f avg: %.2f max: %.2f p95: %.2f p99: %.2f | Memory Alloc: %.2f MB",
		s.Name, s.NumAuctions, totalOps, successfulBids, failedBids, totalReads, elapsed,
		throughput,
		float64(min.Microseconds()), float64(avg.Microseconds()), float64(max.Microseconds()),
		float64(p95.Microseconds()), float64(p99.Microseconds()),
		float64(mem.Alloc)/1024/1024,
	)
}
