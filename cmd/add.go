package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ramanasai/chime/internal/alarm"
	"github.com/ramanasai/chime/internal/clock"
	"github.com/ramanasai/chime/internal/utils"
)

var addDisabled bool

var addCmd = &cobra.Command{
	Use:   "add TIME [LABEL...]",
	Short: "Add a daily alarm",
	Long: `Examples:
	chime add 07:00 wake up
	chime add 6:45 pm tea
	chime add "in 25m" pasta
	chime add noon lunch --disabled`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		added, err := addAlarm(a.state(), args, !addDisabled, time.Now())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added [%s] %s at %s\n",
			utils.ShortID(added.ID), added.Title(), clock.FormatAlarmDisplay(added.Time, a.state().Use24h()))
		return nil
	},
}

func init() {
	addCmd.Flags().BoolVar(&addDisabled, "disabled", false, "add the alarm switched off")
}

// addAlarm parses args as TIME [LABEL...]. An am/pm word after the time
// belongs to the time, so `add 7 pm tea` works unquoted.
func addAlarm(st *alarm.State, args []string, enabled bool, now time.Time) (alarm.Alarm, error) {
	timeArg, rest := args[0], args[1:]
	if len(rest) > 0 {
		switch strings.ToLower(rest[0]) {
		case "am", "pm", "a.m.", "p.m.":
			timeArg += " " + rest[0]
			rest = rest[1:]
		}
	}
	t24, err := clock.ParseAlarmTime(timeArg, now)
	if err != nil {
		return alarm.Alarm{}, err
	}
	added, ok := st.Add(t24, strings.Join(rest, " "), enabled)
	if !ok {
		return alarm.Alarm{}, fmt.Errorf("invalid time %q", timeArg)
	}
	return added, nil
}
