package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ramanasai/chime/internal/utils"
)

var (
	listFormat string
	noColor    bool
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List alarms",
	Long: `Examples:
	chime list                   # styled listing with next ring times
	chime list --format table    # table format
	chime list --format json     # machine readable
	chime list -f quiet          # ids only, one per line`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		rc := utils.DefaultRenderConfig()
		if noColor {
			rc.Color = false
		}
		if listFormat != "" {
			rc.Format = utils.OutputFormat(listFormat)
		}

		out, err := utils.NewRenderer(rc).RenderAlarmList(utils.NewAlarmList(a.sched.Project(time.Now())))
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	listCmd.Flags().StringVarP(&listFormat, "format", "f", "", "output format: default|table|json|csv|compact|quiet")
	listCmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
}
