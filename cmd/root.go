package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile     string
	dataDirFlag string
)

var rootCmd = &cobra.Command{
	Use:   "chime",
	Short: "A terminal clock with alarms",
	Long: `chime shows an analog and digital clock with a list of daily alarms.

Run without a subcommand to open the clock. The other commands edit the
same alarm list from scripts, or watch it without the full-screen UI.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runTUI,
}

func Execute() error { return rootCmd.Execute() }

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.config/chime/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dataDirFlag, "data-dir", "", "directory holding chime.db and chime.log")

	// Add commands; other files define these vars
	rootCmd.AddCommand(tuiCmd, addCmd, listCmd, rmCmd, toggleCmd, formatCmd, watchCmd, versionCmd)
}
