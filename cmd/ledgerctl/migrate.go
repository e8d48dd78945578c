package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/SscSPs/household_ledger/internal/platform/config"
	"github.com/SscSPs/household_ledger/pkg/database"
	"github.com/google/subcommands"
)

type migrateCmd struct {
	source string
}

func (*migrateCmd) Name() string     { return "migrate" }
func (*migrateCmd) Synopsis() string { return "apply or revert the database schema migrations" }
func (*migrateCmd) Usage() string {
	return `ledgerctl migrate [-source <url>] up|down

  Applies every pending migration (up) or reverts all of them (down) on the
  database named by PGSQL_URL.
`
}

func (m *migrateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&m.source, "source", "", "Migration source URL. Defaults to MIGRATIONS_PATH.")
}

func (m *migrateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "expected exactly one argument: up or down")
		return subcommands.ExitUsageError
	}
	direction := database.MigrationDirection(f.Arg(0))
	if direction != database.MigrateUp && direction != database.MigrateDown {
		fmt.Fprintf(os.Stderr, "unknown direction %q\n", f.Arg(0))
		return subcommands.ExitUsageError
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	source := m.source
	if source == "" {
		source = cfg.MigrationsPath
	}

	changed, err := database.RunMigrations(cfg.DatabaseURL, source, direction)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if changed {
		fmt.Printf("migrations %s applied\n", direction)
	} else {
		fmt.Println("no change")
	}
	return subcommands.ExitSuccess
}
