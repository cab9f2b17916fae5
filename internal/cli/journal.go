package cli

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/SscSPs/aba_ledger/internal/core/services"
	"github.com/google/subcommands"
)

type ulidCmd struct {
	open Opener
	out  io.Writer
}

func (*ulidCmd) Name() string     { return "ulid" }
func (*ulidCmd) Synopsis() string { return "print an id that sorts after every journal entry" }
func (*ulidCmd) Usage() string {
	return `aba_cli ulid

  Prints a new journal entry id. The id sorts after every entry already in
  the configured store.
`
}

func (*ulidCmd) SetFlags(*flag.FlagSet) {}

func (c *ulidCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withService(ctx, c.open, func(svc *services.LedgerService) error {
		id, err := svc.NextEntryID(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(c.out, id)
		return nil
	})
}

type seedCmd struct {
	open Opener
	out  io.Writer
}

func (*seedCmd) Name() string     { return "seed" }
func (*seedCmd) Synopsis() string { return "append the sample journal for a new organization" }
func (*seedCmd) Usage() string {
	return `aba_cli seed

  Creates a sample organization with currencies, contacts, a chart of
  accounts and two transactions. Prints the new organization id.
`
}

func (*seedCmd) SetFlags(*flag.FlagSet) {}

func (c *seedCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withService(ctx, c.open, func(svc *services.LedgerService) error {
		data, err := svc.SeedSample(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.out, "organization %s: %d entries\n", data.OrganizationID, len(data.Entries))
		return nil
	})
}

type replayCmd struct {
	open Opener
	out  io.Writer
}

func (*replayCmd) Name() string     { return "replay" }
func (*replayCmd) Synopsis() string { return "rebuild every ledger from the journal and summarize it" }
func (*replayCmd) Usage() string {
	return `aba_cli replay

  Replays the journal into fresh ledgers and prints one line per
  organization. Fails on the first entry the ledgers reject.
`
}

func (*replayCmd) SetFlags(*flag.FlagSet) {}

func (c *replayCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withService(ctx, c.open, func(svc *services.LedgerService) error {
		count, err := countEntries(ctx, svc)
		if err != nil {
			return err
		}
		orgs, err := svc.ListOrganizations(ctx)
		if err != nil {
			return err
		}
		for _, org := range orgs {
			accounts, err := svc.ListAccounts(ctx, org.ID)
			if err != nil {
				return err
			}
			transactions, err := svc.ListTransactions(ctx, org.ID)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "organization %s: %d accounts, %d transactions\n", org.ID, len(accounts), len(transactions))
		}
		fmt.Fprintf(c.out, "replayed %d entries for %d organizations\n", count, len(orgs))
		return nil
	})
}

func countEntries(ctx context.Context, svc *services.LedgerService) (int, error) {
	count := 0
	token := ""
	for {
		page, err := svc.ListEntries(ctx, services.MaxPageSize, token)
		if err != nil {
			return 0, err
		}
		count += len(page.Entries)
		if page.NextToken == "" {
			return count, nil
		}
		token = page.NextToken
	}
}
