package main

import (
	"fmt"
	"os"

	bidding "studybid/internal/biddingService"
	"studybid/internal/repository"
	"studybid/internal/server"
	"studybid/internal/tokens"
	"studybid/utils"
)

func main() {
	args := ParseArgs()
	if !args.Validate() {
		fmt.Fprintln(os.Stderr, "invalid configuration: listen address is required")
		os.Exit(1)
	}
	utils.SetLogLevel(args.LogLevel)

	store := repository.NewMemoryStore()
	ledger := tokens.NewMemoryLedger()
	seedBalances(ledger, args.SeedBalances)

	biddingSvc := bidding.NewBiddingService(store, ledger)

	router := server.SetupRouter(biddingSvc)

	fmt.Printf("Starting auction server on %s...\n", args.ListenAddr)
	if err := router.Run(args.ListenAddr); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// seedBalances credits configured demo users so the engine has funded
// bidders without a real identity service in front of it.
func seedBalances(ledger *tokens.MemoryLedger, grants map[string]int) {
	for userID, amount := range grants {
		ledger.Adjust(userID, amount)
	}
}
