// Package cli implements the aba_cli subcommands.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/SscSPs/aba_ledger/internal/adapters/database"
	"github.com/SscSPs/aba_ledger/internal/core/services"
	"github.com/SscSPs/aba_ledger/internal/middleware"
	"github.com/SscSPs/aba_ledger/internal/platform/config"
	"github.com/google/subcommands"
)

// Opener returns a loaded ledger service and a function releasing it.
type Opener func(ctx context.Context) (*services.LedgerService, func(), error)

// ConfigOpener opens the event store selected by the environment and replays
// its journal.
func ConfigOpener(logger *slog.Logger) Opener {
	return func(ctx context.Context) (*services.LedgerService, func(), error) {
		cfg, err := config.LoadConfig()
		if err != nil {
			return nil, nil, err
		}
		store, closeStore, err := database.OpenEventStore(ctx, cfg, logger)
		if err != nil {
			return nil, nil, err
		}
		svc := services.NewLedgerService(store)
		if err := svc.Load(middleware.WithLogger(ctx, logger)); err != nil {
			closeStore()
			return nil, nil, err
		}
		return svc, closeStore, nil
	}
}

// Commands lists every subcommand writing to out.
func Commands(open Opener, out io.Writer) []subcommands.Command {
	return []subcommands.Command{
		&ulidCmd{open: open, out: out},
		&seedCmd{open: open, out: out},
		&replayCmd{open: open, out: out},
		&reportCmd{open: open, out: out},
	}
}

// withService opens the service, runs fn and maps its error to an exit status.
func withService(ctx context.Context, open Opener, fn func(*services.LedgerService) error) subcommands.ExitStatus {
	svc, closeFn, err := open(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeFn()

	if err := fn(svc); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// stringList is a repeatable string flag.
type stringList []string

func (l *stringList) String() string { return strings.Join(*l, ",") }

func (l *stringList) Set(v string) error {
	*l = append(*l, v)
	return nil
}
