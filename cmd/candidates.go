package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var candidatesCmd = &cobra.Command{
	Use:   "candidates",
	Short: "Print the configured candidate pool in match order",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()

		d := bootstrap(ctx)
		defer d.Close()

		pool, err := d.matcher.Candidates(ctx)
		if err != nil {
			d.logger.Fatal("listing candidates", zap.Error(err))
		}

		for _, status := range d.matcher.Filters() {
			d.logger.Debug("filter",
				zap.String("name", status.Name),
				zap.Bool("enabled", status.Enabled),
				zap.String("reason", status.Reason),
				zap.Any("details", status.Details),
			)
		}

		d.logger.Info("candidate pool", zap.Int("count", pool.Len()))

		pretty, _ := json.MarshalIndent(pool.Items, "", "  ")
		fmt.Fprintln(cmd.OutOrStdout(), string(pretty))
	},
}

func init() {
	rootCmd.AddCommand(candidatesCmd)
}
