package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/peer-interview/internal/interview"
	"github.com/spigell/peer-interview/internal/session"
)

const (
	PromptSave            = "Save Preferences"
	PromptChange          = "Change preferences"
	PromptExit            = "Exit"
	PromptSchedule        = "Schedule Interview"
	searchingMessage      = "Searching for a match..."
	noMatchTitle          = "No Match Found"
	noMatchDescription    = "We'll keep looking for a suitable match based on your preferences."
	matchFoundTitle       = "Match Found!"
	matchFoundDescription = "Here are the details of your matched peer:"
)

var errExit = errors.New("exit requested")

var bookCmd = &cobra.Command{
	Use:   "book",
	Short: "Interactively enter preferences and look for a mock interview peer",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		runBook(cmd)
	},
}

func init() {
	rootCmd.AddCommand(bookCmd)
}

func runBook(cmd *cobra.Command) {
	ctx := cmd.Context()

	d := bootstrap(ctx)
	defer d.Close()

	sess := session.New(d.matcher, d.logger)
	defer sess.Close()

	out := cmd.OutOrStdout()
	prefs := interview.Preferences{}

	for {
		next, err := askPreferences(prefs)
		if err != nil {
			if isInterrupt(err) {
				return
			}
			d.logger.Fatal("reading preferences", zap.Error(err))
		}
		prefs = next

		req := sess.Submit(prefs)
		fmt.Fprintln(out, searchingMessage)

		state, err := sess.Wait(ctx, req)
		if err != nil {
			d.logger.Fatal("waiting for a match", zap.Error(err))
		}
		renderState(out, state)

		if err := askNext(out, state); err != nil {
			if errors.Is(err, errExit) || isInterrupt(err) {
				return
			}
			d.logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func isInterrupt(err error) bool {
	return errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF)
}

// askPreferences collects preferences starting from the current ones.
func askPreferences(current interview.Preferences) (interview.Preferences, error) {
	prefs := current.Clone()

	jobPrompt := promptui.Prompt{
		Label:   "Job Target (e.g., Meta L4)",
		Default: prefs.JobTarget,
	}
	jobTarget, err := jobPrompt.Run()
	if err != nil {
		return prefs, err
	}
	prefs.JobTarget = strings.TrimSpace(jobTarget)

	timezone, err := selectTimezone(prefs.Timezone)
	if err != nil {
		return prefs, err
	}
	prefs.Timezone = timezone

	days, err := toggleDays(prefs.Availability)
	if err != nil {
		return prefs, err
	}
	prefs.Availability = days

	return prefs, nil
}

func selectTimezone(current string) (string, error) {
	cursor := 0
	for i, tz := range interview.Timezones {
		if tz.Value == current {
			cursor = i
		}
	}

	tzPrompt := promptui.Select{
		Label:     "Timezone",
		Items:     interview.Timezones,
		CursorPos: cursor,
		Templates: &promptui.SelectTemplates{
			Active:   "▸ {{ .Label | cyan }}",
			Inactive: "  {{ .Label }}",
			Selected: "Timezone: {{ .Label }}",
		},
	}

	idx, _, err := tzPrompt.Run()
	if err != nil {
		return "", err
	}
	return interview.Timezones[idx].Value, nil
}

// toggleDays lets the user switch days on and off until preferences are saved.
func toggleDays(days []string) ([]string, error) {
	cursor := 0
	for {
		items := make([]string, 0, len(interview.Weekdays)+1)
		for _, day := range interview.Weekdays {
			mark := "[ ]"
			if (interview.Preferences{Availability: days}).Available(day) {
				mark = "[x]"
			}
			items = append(items, fmt.Sprintf("%s %s", mark, day))
		}
		items = append(items, PromptSave)

		dayPrompt := promptui.Select{
			Label:     "Availability",
			Items:     items,
			CursorPos: cursor,
			Size:      len(items),
		}

		idx, selected, err := dayPrompt.Run()
		if err != nil {
			return nil, err
		}
		if selected == PromptSave {
			return orderDays(days), nil
		}

		days = interview.ToggleDay(days, interview.Weekdays[idx])
		cursor = idx
	}
}

// orderDays returns days in week order.
func orderDays(days []string) []string {
	ordered := make([]string, 0, len(days))
	prefs := interview.Preferences{Availability: days}
	for _, day := range interview.Weekdays {
		if prefs.Available(day) {
			ordered = append(ordered, day)
		}
	}
	return ordered
}

func renderState(w io.Writer, state session.State) {
	switch state.Status {
	case session.StatusFound:
		peer := state.Match.Candidate
		fmt.Fprintln(w, matchFoundTitle)
		fmt.Fprintln(w, matchFoundDescription)
		fmt.Fprintf(w, "  Job Target: %s\n", peer.JobTarget)
		fmt.Fprintf(w, "  Timezone: %s\n", interview.TimezoneLabel(peer.Timezone))
		fmt.Fprintf(w, "  Availability: %s\n", strings.Join(peer.Availability, ", "))
	case session.StatusNotFound:
		fmt.Fprintln(w, noMatchTitle)
		fmt.Fprintln(w, noMatchDescription)
	case session.StatusFailed:
		fmt.Fprintf(w, "Lookup failed: %s\n", state.Error)
	default:
		fmt.Fprintln(w, searchingMessage)
	}
}

func askNext(w io.Writer, state session.State) error {
	items := []string{PromptChange, PromptExit}
	if state.Status == session.StatusFound {
		items = append([]string{PromptSchedule}, items...)
	}

	nextPrompt := promptui.Select{
		Label: "Next?",
		Items: items,
	}

	_, action, err := nextPrompt.Run()
	if err != nil {
		return err
	}

	switch action {
	case PromptSchedule:
		fmt.Fprintf(w, "Reach out to peer %s to agree on a slot.\n", state.Match.Candidate.ID)
		return errExit
	case PromptChange:
		return nil
	case PromptExit:
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}
