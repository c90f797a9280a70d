package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ramanasai/chime/internal/ui"
)

// tuiCmd launches the Bubble Tea clock. It is also what the bare root runs.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the clock",
	RunE:  runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	return ui.Run(ui.New(a.sched, a.notifier, a.cfg, a.logger))
}
