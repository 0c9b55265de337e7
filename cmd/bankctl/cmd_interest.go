package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/SscSPs/bank_portal/internal/core/domain"
	"github.com/spf13/cobra"
)

func (c *cli) newInterestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interest",
		Short: "Inspect and change interest strategies",
		Long: `Interest figures are computed by the core banking API.

Available subcommands:
  report     - Show the interest report of an account
  strategies - List the available strategies
  change     - Switch an account to another strategy
  compare    - Compare two strategies for an account`,
	}
	cmd.AddCommand(
		c.newInterestReportCmd(),
		c.newInterestStrategiesCmd(),
		c.newInterestChangeCmd(),
		c.newInterestCompareCmd(),
	)
	return cmd
}

func (c *cli) newInterestReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report <account-id>",
		Short: "Show the interest report of an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "account")
			if err != nil {
				return err
			}
			ctx, cancel := c.context(cmd)
			defer cancel()

			a := c.app
			sess, err := a.session(ctx)
			if err != nil {
				return err
			}
			report, err := a.svc.Interest.GetReport(ctx, sess, id)
			if err != nil {
				return a.explain(err)
			}
			printReport(cmd, report)
			return nil
		},
	}
}

func (c *cli) newInterestStrategiesCmd() *cobra.Command {
	var accountType string

	cmd := &cobra.Command{
		Use:   "strategies",
		Short: "List the available interest strategies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()

			a := c.app
			sess, err := a.session(ctx)
			if err != nil {
				return err
			}
			var strategies []domain.InterestStrategy
			if accountType != "" {
				strategies, err = a.svc.Interest.SupportedStrategies(ctx, sess, domain.AccountType(strings.ToUpper(accountType)))
			} else {
				strategies, err = a.svc.Interest.Strategies(ctx, sess)
			}
			if err != nil {
				return a.explain(err)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "KEY\tNAME\tANNUAL RATE\tDESCRIPTION")
			for _, s := range strategies {
				fmt.Fprintf(tw, "%s\t%s\t%s%%\t%s\n", s.Key, s.Name, s.AnnualInterestRate.StringFixed(2), s.Description)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&accountType, "account-type", "", "Only strategies supported by this account type")
	return cmd
}

func (c *cli) newInterestChangeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "change <account-id> <strategy>",
		Short: "Switch an account to another interest strategy",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "account")
			if err != nil {
				return err
			}
			ctx, cancel := c.context(cmd)
			defer cancel()

			a := c.app
			sess, err := a.session(ctx)
			if err != nil {
				return err
			}
			report, err := a.svc.Interest.ChangeStrategy(ctx, sess, id, args[1])
			if err != nil {
				return a.explain(err)
			}
			printReport(cmd, report)
			return nil
		},
	}
}

func (c *cli) newInterestCompareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <account-id> <strategy1> <strategy2>",
		Short: "Compare two interest strategies for an account",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "account")
			if err != nil {
				return err
			}
			ctx, cancel := c.context(cmd)
			defer cancel()

			a := c.app
			sess, err := a.session(ctx)
			if err != nil {
				return err
			}
			cmp, err := a.svc.Interest.Compare(ctx, sess, id, args[1], args[2])
			if err != nil {
				return a.explain(err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-24s %s\n", cmp.Strategy1Name, money(cmp.Interest1, ""))
			fmt.Fprintf(out, "%-24s %s\n", cmp.Strategy2Name, money(cmp.Interest2, ""))
			fmt.Fprintf(out, "Difference: %s, better: %s\n", money(cmp.Difference, ""), cmp.BetterStrategy)
			return nil
		},
	}
}

func printReport(cmd *cobra.Command, r *domain.InterestReport) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Account %s (%s)\n", r.AccountNumber, r.AccountType)
	fmt.Fprintf(out, "  Strategy:          %s\n", r.CurrentStrategy)
	fmt.Fprintf(out, "  Balance:           %s\n", money(r.CurrentBalance, ""))
	fmt.Fprintf(out, "  Effective rate:    %s%%\n", r.EffectiveAnnualRate.StringFixed(2))
	fmt.Fprintf(out, "  Monthly interest:  %s\n", money(r.MonthlyInterest, ""))
	fmt.Fprintf(out, "  Yearly interest:   %s\n", money(r.YearlyInterest, ""))
	fmt.Fprintf(out, "  5-year projection: %s\n", money(r.Projected5YearInterest, ""))
}
