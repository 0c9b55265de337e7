package main

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/SscSPs/bank_portal/internal/core/services"
	"github.com/spf13/cobra"
)

func (c *cli) newNotificationsCmd() *cobra.Command {
	var (
		watch    bool
		interval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "List notifications, or watch the unread count",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if watch {
				return c.watchNotifications(cmd, interval)
			}

			ctx, cancel := c.context(cmd)
			defer cancel()

			a := c.app
			sess, err := a.session(ctx)
			if err != nil {
				return err
			}
			list, err := a.svc.Notification.List(ctx, sess)
			if err != nil {
				return a.explain(err)
			}
			if len(list) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No notifications")
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\t\tTITLE\tMESSAGE")
			for _, n := range list {
				marker := "*"
				if n.IsRead {
					marker = ""
				}
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", n.ID, marker, n.Title, n.Message)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Keep printing the unread count until interrupted")
	cmd.Flags().DurationVar(&interval, "interval", time.Minute, "Polling interval for --watch")
	return cmd
}

// watchNotifications polls the unread count until the command context ends.
func (c *cli) watchNotifications(cmd *cobra.Command, interval time.Duration) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	a := c.app
	sess, err := a.session(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	last := -1
	fetch := func(ctx context.Context) (int, error) {
		list, err := a.svc.Notification.Unread(ctx, sess)
		if err != nil {
			return 0, err
		}
		return len(list), nil
	}
	opts := []services.PollerOption{
		services.WithOnUpdate(func(count int) {
			if count != last {
				last = count
				fmt.Fprintf(out, "%s  %d unread\n", time.Now().Format("15:04:05"), count)
			}
		}),
	}
	if c.timeout > 0 {
		opts = append(opts, services.WithPollTimeout(c.timeout))
	}
	poller, err := services.NewNotificationPoller(interval, fetch, a.logger, opts...)
	if err != nil {
		return err
	}
	defer poller.Stop()

	if _, err := poller.Poll(ctx); err != nil {
		return a.explain(err)
	}
	poller.Start()

	<-ctx.Done()
	return nil
}
