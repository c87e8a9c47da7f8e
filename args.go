package main

import (
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ParseArgs reads process configuration from flags and STUDYBID_* environment
// variables, flags winning.
func ParseArgs() Args {
	// server config
	pflag.String("listen-addr", ":8080", "address the HTTP server listens on")
	pflag.String("log-level", "info", "logrus level: debug, info, warn, error")

	// demo token grants: user1:100,user2:150
	pflag.String("seed-balances", "", "comma-separated user:tokens pairs credited at startup")

	// bind pflag to viper
	pflag.Parse()
	viper.BindPFlags(pflag.CommandLine)
	viper.AutomaticEnv()
	viper.SetEnvPrefix("STUDYBID")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	return Args{
		ListenAddr:   viper.GetString("listen-addr"),
		LogLevel:     viper.GetString("log-level"),
		SeedBalances: parseSeedBalances(viper.GetString("seed-balances")),
	}
}

type Args struct {
	ListenAddr   string
	LogLevel     string
	SeedBalances map[string]int
}

func (args Args) Validate() bool {
	return args.ListenAddr != ""
}

// parseSeedBalances parses "user:tokens" pairs, skipping malformed entries.
func parseSeedBalances(raw string) map[string]int {
	grants := make(map[string]int)
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		name, amount, ok := strings.Cut(pair, ":")
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(amount))
		if err != nil || name == "" || n <= 0 {
			continue
		}
		grants[name] = n
	}
	return grants
}
