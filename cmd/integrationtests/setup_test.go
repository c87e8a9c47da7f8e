package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	bidding "studybid/internal/biddingService"
	"studybid/internal/repository"
	"studybid/internal/server"
	"studybid/internal/tokens"
	"studybid/services/bidding/helpers"

	"github.com/gin-gonic/gin"
)

// SetupTestRouter initializes the router with an in-memory store and ledger
// for integration testing, crediting the given token grants.
func SetupTestRouter(grants map[string]int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	store := repository.NewMemoryStore()
	ledger := tokens.NewMemoryLedger()
	for userID, amount := range grants {
		ledger.Adjust(userID, amount)
	}
	service := bidding.NewBiddingService(store, ledger)
	return server.SetupRouter(service)
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}

	return resp, w
}

// openAuction builds a payload for an auction still accepting bids: the
// reservation sits two weeks out, so the bidding window is open.
func openAuction(room string, capacity int) helpers.AuctionKeyPayload {
	date := time.Now().UTC().AddDate(0, 0, 14)
	return helpers.AuctionKeyPayload{
		RoomNumber:      room,
		Capacity:        capacity,
		TimeRange:       "10:00-12:00",
		ReservationDate: date.Format("2006-01-02"),
	}
}
