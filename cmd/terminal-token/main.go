// Command terminal-token issues bearer tokens for POS terminals.
//
//	terminal-token --id till-01 --name "Front counter"
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sangkips/investify-receipts/internal/config"
	"github.com/sangkips/investify-receipts/pkg/utils"
	"github.com/spf13/pflag"
)

func main() {
	id := pflag.String("id", "", "terminal ID (required)")
	name := pflag.String("name", "", "human readable terminal name")
	expiry := pflag.Duration("expiry", 0, "token lifetime; defaults to JWT_EXPIRY_HOURS")
	pflag.Parse()

	if *id == "" {
		fmt.Fprintln(os.Stderr, "terminal-token: --id is required")
		pflag.Usage()
		os.Exit(2)
	}

	cfg := config.Load()
	lifetime := cfg.JWT.ExpiryHours
	if *expiry > 0 {
		lifetime = *expiry
	}

	token, err := utils.NewJWTManager(cfg.JWT.Secret, lifetime).GenerateTerminalToken(*id, *name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "terminal-token: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(token)
	fmt.Fprintf(os.Stderr, "expires %s\n", time.Now().Add(lifetime).Format(time.RFC3339))
}
