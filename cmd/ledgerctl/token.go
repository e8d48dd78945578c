package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/SscSPs/household_ledger/internal/core/services"
	"github.com/SscSPs/household_ledger/internal/platform/config"
	"github.com/google/subcommands"
)

type tokenCmd struct {
	userID   int64
	tenantID int64
	ttl      time.Duration
}

func (*tokenCmd) Name() string     { return "token" }
func (*tokenCmd) Synopsis() string { return "issue a bearer token for a user" }
func (*tokenCmd) Usage() string {
	return `ledgerctl token -user <id> [-tenant <id>] [-ttl <duration>]

  Prints a token signed with JWT_SECRET. The tenant defaults to the user.
`
}

func (t *tokenCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&t.userID, "user", 0, "User id (required).")
	f.Int64Var(&t.tenantID, "tenant", 0, "Tenant id. Defaults to the user id.")
	f.DurationVar(&t.ttl, "ttl", 0, "Token lifetime. Defaults to JWT_EXPIRY_DURATION.")
}

func (t *tokenCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if t.userID <= 0 {
		fmt.Fprintln(os.Stderr, "-user must be a positive id")
		return subcommands.ExitUsageError
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	identity := domain.Identity{UserID: t.userID, TenantID: t.tenantID}
	if identity.TenantID == 0 {
		identity.TenantID = identity.UserID
	}
	ttl := t.ttl
	if ttl <= 0 {
		ttl = cfg.JWTExpiryDuration
	}

	token, err := services.NewJWTIdentityService(cfg.JWTSecret, cfg.JWTIssuer).IssueToken(identity, ttl)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Println(token)
	return subcommands.ExitSuccess
}
