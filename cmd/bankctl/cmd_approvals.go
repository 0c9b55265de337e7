package main

import (
	"fmt"
	"strconv"

	"github.com/SscSPs/bank_portal/internal/core/domain"
	"github.com/spf13/cobra"
)

func (c *cli) newPendingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pending",
		Short: "List transactions waiting for approval",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()

			a := c.app
			sess, err := a.session(ctx)
			if err != nil {
				return err
			}
			pending, err := a.svc.Approval.ListPending(ctx, sess)
			if err != nil {
				return a.explain(err)
			}
			printPending(cmd, pending)
			return nil
		},
	}
}

func (c *cli) newApproveCmd() *cobra.Command {
	var comments string

	cmd := &cobra.Command{
		Use:   "approve <transaction-id>",
		Short: "Approve a pending transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "transaction")
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
			pending, err := a.svc.Approval.Approve(ctx, sess, id, comments)
			if err != nil {
				return a.explain(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Approved transaction %d\n", id)
			printPending(cmd, pending)
			return nil
		},
	}
	cmd.Flags().StringVar(&comments, "comments", "", "Optional approval comments")
	return cmd
}

func (c *cli) newRejectCmd() *cobra.Command {
	var reason, comments string

	cmd := &cobra.Command{
		Use:   "reject <transaction-id>",
		Short: "Reject a pending transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "transaction")
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
			pending, err := a.svc.Approval.Reject(ctx, sess, id, reason, comments)
			if err != nil {
				return a.explain(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Rejected transaction %d\n", id)
			printPending(cmd, pending)
			return nil
		},
	}
	cmd.Flags().StringVar(&reason, "reason", "", "Reason for the rejection")
	cmd.Flags().StringVar(&comments, "comments", "", "Optional comments")
	_ = cmd.MarkFlagRequired("reason")
	return cmd
}

func printPending(cmd *cobra.Command, pending []domain.Transaction) {
	if len(pending) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No pending transactions")
		return
	}
	printTransactions(cmd.OutOrStdout(), pending)
}

func parseID(raw, what string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s id %q", what, raw)
	}
	return id, nil
}
