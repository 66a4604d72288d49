package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/peer-interview/internal/interview"
	"github.com/spigell/peer-interview/internal/logger"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Find a peer for the given preferences once and print it",
	Example: `  peer-interview match --job-target "Meta L4" --timezone UTC-8 --day mon --day wed --day fri
  peer-interview match --job-target "Apple SDE III" --timezone UTC+8 --day Saturday,Sunday --delay 0`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		runMatch(cmd)
	},
}

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().String("job-target", "", "desired job target, e.g. \"Meta L4\"")
	matchCmd.Flags().String("timezone", "", "timezone, e.g. UTC-8")
	matchCmd.Flags().StringSlice("day", nil, "available weekday, repeat or comma-separate (mon, Tuesday, ...)")
}

type matchOutput struct {
	Found bool             `json:"found"`
	Match *interview.Match `json:"match"`
}

func runMatch(cmd *cobra.Command) {
	ctx := cmd.Context()

	d := bootstrap(ctx)
	defer d.Close()

	prefs, err := preferencesFromFlags(cmd)
	if err != nil {
		d.logger.Fatal("reading preferences", zap.Error(err))
	}

	log := d.logger.With(logger.PreferenceFields(prefs)...)
	log.Info("searching for a match")

	match, err := d.matcher.Find(ctx, prefs)
	if err != nil {
		log.Fatal("finding a match", zap.Error(err))
	}

	if match == nil {
		log.Info("no match found", zap.String("hint", "we'll keep looking"))
	} else {
		log.Info("match found", zap.String(logger.FieldCandidateID, match.Candidate.ID))
	}

	pretty, _ := json.MarshalIndent(matchOutput{Found: match != nil, Match: match}, "", "  ")
	fmt.Fprintln(cmd.OutOrStdout(), string(pretty))
}

func preferencesFromFlags(cmd *cobra.Command) (interview.Preferences, error) {
	jobTarget, err := cmd.Flags().GetString("job-target")
	if err != nil {
		return interview.Preferences{}, err
	}
	timezone, err := cmd.Flags().GetString("timezone")
	if err != nil {
		return interview.Preferences{}, err
	}
	rawDays, err := cmd.Flags().GetStringSlice("day")
	if err != nil {
		return interview.Preferences{}, err
	}

	days, err := interview.ParseDays(rawDays)
	if err != nil {
		return interview.Preferences{}, err
	}

	return interview.Preferences{
		JobTarget:    jobTarget,
		Timezone:     timezone,
		Availability: days,
	}, nil
}
