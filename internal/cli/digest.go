package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func digestCmd(opts *rootOptions) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "digest",
		Short: "Publish congresses with deadlines in the next 15 days",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := contextOf(cmd)
			application := opts.application()
			day := application.Now()

			if dryRun {
				message, count, err := application.Digest(nil).Prepare(ctx, day)
				if err != nil {
					return err
				}
				if count == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "no urgent deadlines")
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), message)
				return nil
			}

			notifier := application.Notifier()
			if notifier == nil {
				return errors.New("telegram credentials are not configured")
			}
			return application.Digest(notifier).ProcessDay(ctx, day)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the digest instead of sending it")
	return cmd
}
