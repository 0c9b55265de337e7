package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/SscSPs/bank_portal/internal/core/domain"
	"github.com/spf13/cobra"
)

func (c *cli) newAccountsCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "List your accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()

			a := c.app
			sess, err := a.session(ctx)
			if err != nil {
				return err
			}

			var accounts []domain.Account
			if all {
				accounts, err = a.svc.Account.ListAll(ctx, sess)
			} else {
				accounts, err = a.svc.Account.ListMine(ctx, sess)
			}
			if err != nil {
				return a.explain(err)
			}
			if len(accounts) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No accounts")
				return nil
			}
			printAccounts(cmd.OutOrStdout(), accounts)
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "List every account (staff only)")
	return cmd
}

func printAccounts(w io.Writer, accounts []domain.Account) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNUMBER\tTYPE\tSTATUS\tBALANCE\tAVAILABLE")
	for _, acc := range accounts {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			acc.ID, acc.AccountNumber, acc.AccountType, acc.Status, money(acc.Balance, ""), money(acc.AvailableBalance, ""))
	}
	_ = tw.Flush()
}

func printTransactions(w io.Writer, txns []domain.Transaction) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTYPE\tSTATUS\tAMOUNT\tFROM\tTO\tDESCRIPTION")
	for _, t := range txns {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			t.ID, t.TransactionType, t.Status, money(t.Amount, ""), dash(t.FromAccount), dash(t.ToAccount), t.Description)
	}
	_ = tw.Flush()
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
