package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/SscSPs/household_ledger/internal/adapters/database/pgsql"
	"github.com/SscSPs/household_ledger/internal/core/taxonomy"
	"github.com/SscSPs/household_ledger/internal/platform/config"
	"github.com/SscSPs/household_ledger/pkg/database"
	"github.com/google/subcommands"
)

type treeCmd struct {
	tenantID int64
}

func (*treeCmd) Name() string     { return "tree" }
func (*treeCmd) Synopsis() string { return "print the category tree of a tenant" }
func (*treeCmd) Usage() string {
	return `ledgerctl tree -tenant <id>
`
}

func (t *treeCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&t.tenantID, "tenant", 0, "Tenant id (required).")
}

func (t *treeCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if t.tenantID <= 0 {
		fmt.Fprintln(os.Stderr, "-tenant must be a positive id")
		return subcommands.ExitUsageError
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, true)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer database.ClosePgxPool(pool)

	cats, err := pgsql.NewStore(pool).Repositories().CategoryRepo.ListCategories(ctx, t.tenantID)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printTree(os.Stdout, taxonomy.BuildTree(cats))
	return subcommands.ExitSuccess
}

// printTree writes one line per category, indented by depth.
func printTree(w io.Writer, roots []*taxonomy.TreeNode) {
	type frame struct {
		node  *taxonomy.TreeNode
		depth int
	}
	stack := make([]frame, 0, len(roots))
	for i := len(roots) - 1; i >= 0; i-- {
		stack = append(stack, frame{roots[i], 0})
	}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		fmt.Fprintf(w, "%s%s (%d)\n", strings.Repeat("  ", f.depth), f.node.Name, f.node.ID)
		for i := len(f.node.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{f.node.Children[i], f.depth + 1})
		}
	}
}
