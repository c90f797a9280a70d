package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ramanasai/chime/internal/clock"
	"github.com/ramanasai/chime/internal/utils"
)

var rmCmd = &cobra.Command{
	Use:     "rm ID",
	Aliases: []string{"delete"},
	Short:   "Delete an alarm by id or id prefix",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		st := a.state()
		id, err := utils.ResolveID(st.Alarms(), args[0])
		if err != nil {
			return err
		}
		gone, _ := st.Get(id)
		st.Delete(id)
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted [%s] %s\n", utils.ShortID(id), gone.Title())
		return nil
	},
}

var toggleCmd = &cobra.Command{
	Use:   "toggle ID",
	Short: "Enable or disable an alarm by id or id prefix",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		st := a.state()
		id, err := utils.ResolveID(st.Alarms(), args[0])
		if err != nil {
			return err
		}
		st.Toggle(id)
		upd, _ := st.Get(id)
		state := "off"
		if upd.Enabled {
			state = "on"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s at %s is %s\n",
			utils.ShortID(id), upd.Title(), clock.FormatAlarmDisplay(upd.Time, st.Use24h()), state)
		return nil
	},
}

var formatCmd = &cobra.Command{
	Use:       "format [12|24]",
	Short:     "Show or set the 12/24-hour display preference",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"12", "24"},
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		st := a.state()
		if len(args) == 1 {
			switch strings.TrimSuffix(strings.ToLower(args[0]), "h") {
			case "12":
				st.SetUse24h(false)
			case "24":
				st.SetUse24h(true)
			default:
				return fmt.Errorf("format must be 12 or 24, got %q", args[0])
			}
		}
		if st.Use24h() {
			fmt.Fprintln(cmd.OutOrStdout(), "24-hour")
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "12-hour")
		}
		return nil
	},
}
