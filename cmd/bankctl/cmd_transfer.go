package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/SscSPs/bank_portal/internal/apperrors"
	"github.com/SscSPs/bank_portal/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func (c *cli) newTransferCmd() *cobra.Command {
	var (
		from, to, amount, currency, description string
		groupID                                 int64
		yes                                     bool
	)

	cmd := &cobra.Command{
		Use:   "transfer <internal-transfer|group-transfer|payment|deposit|withdrawal>",
		Short: "Move money between accounts",
		Long: `Stage a transfer, show it for confirmation and submit it.

The draft is checked locally first: the amount must be positive and the
source and destination accounts must differ. Pass --yes to submit without
the confirmation prompt.`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"internal-transfer", "group-transfer", "payment", "deposit", "withdrawal"},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, ok := domain.ParseFormKind(args[0])
			if !ok {
				return fmt.Errorf("unknown transfer kind %q", args[0])
			}
			value, err := decimal.NewFromString(amount)
			if err != nil {
				return fmt.Errorf("invalid amount %q", amount)
			}

			ctx, cancel := c.context(cmd)
			defer cancel()

			a := c.app
			sess, err := a.session(ctx)
			if err != nil {
				return err
			}

			draft := domain.TransferDraft{
				Kind:        kind,
				Source:      from,
				Destination: to,
				Amount:      value,
				Currency:    currency,
				Description: description,
				GroupID:     groupID,
			}
			snap, err := a.svc.Transfer.Stage(ctx, sess, draft)
			if err != nil {
				return a.explain(formError(err, snap))
			}

			out := cmd.OutOrStdout()
			staged := snap.Draft
			printDraft(out, staged)
			if !yes && !confirm(cmd.InOrStdin(), out) {
				if _, err := a.svc.Transfer.Cancel(ctx, sess, kind); err != nil {
					return a.explain(err)
				}
				fmt.Fprintln(out, "Cancelled")
				return nil
			}

			snap, err = a.svc.Transfer.Confirm(ctx, sess, kind)
			if err != nil {
				return a.explain(formError(err, snap))
			}
			if r := snap.Receipt; r != nil {
				fmt.Fprintf(out, "Done: %s", money(r.Amount, staged.Currency))
				if r.Reference != "" {
					fmt.Fprintf(out, " (ref %s)", r.Reference)
				}
				if r.Status != "" {
					fmt.Fprintf(out, " %s", r.Status)
				}
				fmt.Fprintln(out)
				if r.Message != "" {
					fmt.Fprintln(out, r.Message)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "Source account number")
	cmd.Flags().StringVar(&to, "to", "", "Destination account number")
	cmd.Flags().StringVar(&amount, "amount", "", "Amount to move")
	cmd.Flags().StringVar(&currency, "currency", "", "Payment currency (default USD)")
	cmd.Flags().StringVar(&description, "description", "", "Description shown on the transaction")
	cmd.Flags().Int64Var(&groupID, "group", 0, "Account group for group transfers")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Submit without asking for confirmation")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

// formError prefers the message the form recorded over the raw error.
func formError(err error, snap *domain.FormSnapshot) error {
	if snap != nil && snap.Error != "" && !errors.Is(err, apperrors.ErrSessionExpired) {
		return errors.New(snap.Error)
	}
	return err
}

func printDraft(w io.Writer, d domain.TransferDraft) {
	fmt.Fprintf(w, "%s of %s\n", d.Kind, money(d.Amount, d.Currency))
	if d.Source != "" {
		fmt.Fprintf(w, "  from %s\n", d.Source)
	}
	if d.Destination != "" {
		fmt.Fprintf(w, "  to   %s\n", d.Destination)
	}
	if d.GroupID != 0 {
		fmt.Fprintf(w, "  group %d\n", d.GroupID)
	}
	if d.Description != "" {
		fmt.Fprintf(w, "  %q\n", d.Description)
	}
}

func confirm(in io.Reader, out io.Writer) bool {
	fmt.Fprint(out, "Submit? [y/N] ")
	line, _ := bufio.NewReader(in).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
