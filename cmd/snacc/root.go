package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	defaultTargetCalories       = 2000.0
	defaultTargetMinutes        = 30
	defaultTargetActiveCalories = 300.0
)

func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("SNACC")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:   "snacc",
		Short: "Compute Snacc Scores from nutrition and exercise logs",
		Long: `snacc scores logged days offline, with the same rules as the Snacc Score API.

Files may be YAML or JSON. Targets missing from a day file are taken from
the --target-* flags or the SNACC_TARGET_* environment variables.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().Bool("json", false, "Print results as JSON")
	_ = v.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))

	rootCmd.AddCommand(newDayCmd(v), newWeeklyCmd(v))
	return rootCmd
}
