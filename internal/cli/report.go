package cli

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/SscSPs/aba_ledger/internal/core/domain"
	"github.com/SscSPs/aba_ledger/internal/core/services"
	"github.com/SscSPs/aba_ledger/internal/dto"
	"github.com/google/subcommands"
	"gopkg.in/yaml.v3"
)

type reportCmd struct {
	open Opener
	out  io.Writer

	org       string
	statement string
	roots     stringList
	asOf      string
	format    string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "print debit and credit totals for account trees" }
func (*reportCmd) Usage() string {
	return `aba_cli report -org <id> [-statement balance-sheet|income-statement] [-root <id>]... [-asof <date>] [-format json|yaml|text]

  Totals debits and credits per currency for each root account and its
  descendants. Without -root the statement's category roots are used.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.org, "org", "", "Organization id (required).")
	f.StringVar(&c.statement, "statement", string(domain.BalanceSheet), "Financial statement: balance-sheet or income-statement.")
	f.Var(&c.roots, "root", "Root account id. May be repeated.")
	f.StringVar(&c.asOf, "asof", "", "Report timestamp, RFC 3339 or YYYY-MM-DD (defaults to now).")
	f.StringVar(&c.format, "format", "text", "Output format: json, yaml or text.")
}

func (c *reportCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withService(ctx, c.open, func(svc *services.LedgerService) error {
		if c.org == "" {
			return errors.New("-org is required")
		}
		orgID, err := domain.ParseID(c.org)
		if err != nil {
			return fmt.Errorf("invalid -org: %w", err)
		}
		statement, err := domain.ParseFinancialStatement(c.statement)
		if err != nil {
			return err
		}
		params := dto.ReportParams{RootAccountIDs: c.roots, AsOf: c.asOf}
		rootIDs, err := params.ParseRootAccountIDs()
		if err != nil {
			return err
		}
		asOf, err := params.ParseAsOf()
		if err != nil {
			return err
		}

		r, err := svc.GenerateReport(ctx, orgID, statement, asOf, rootIDs...)
		if err != nil {
			return err
		}
		currencies, err := svc.ListCurrencies(ctx, orgID)
		if err != nil {
			return err
		}
		return writeReport(c.out, c.format, dto.ToReportResponse(r, dto.NewCurrencies(currencies)))
	})
}

func writeReport(out io.Writer, format string, resp dto.ReportResponse) error {
	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(resp); err != nil {
			return err
		}
		return enc.Close()
	case "text":
		writeText(out, resp)
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func writeText(out io.Writer, resp dto.ReportResponse) {
	title := string(resp.Statement)
	if title == "" {
		title = "report"
	}
	fmt.Fprintf(out, "%s as of %s\n", title, resp.Timestamp.Format("2006-01-02"))
	for _, account := range resp.Accounts {
		writeAccount(out, account, 0)
	}
}

func writeAccount(out io.Writer, a dto.AccountTotalsResponse, depth int) {
	fmt.Fprintf(out, "%s%d %s\n", strings.Repeat("  ", depth), a.Number, a.Description)
	pad := strings.Repeat("  ", depth+1)
	for _, amount := range a.Debits {
		fmt.Fprintf(out, "%sDr %s\n", pad, amount.Formatted)
	}
	for _, amount := range a.Credits {
		fmt.Fprintf(out, "%sCr %s\n", pad, amount.Formatted)
	}
	for _, child := range a.Children {
		writeAccount(out, child, depth+1)
	}
}
