package main

import (
	"fmt"
	"os"

	"snaccscore/internal/models"
	"snaccscore/internal/scoring"

	"github.com/gin-gonic/gin/binding"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

func newWeeklyCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "weekly <file>",
		Short: "Average a list of daily scores",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading scores file: %w", err)
			}

			var days []models.DailySnaccScore
			if err := yaml.Unmarshal(data, &days); err != nil {
				return fmt.Errorf("parsing scores file %s: %w", args[0], err)
			}
			if err := binding.Validator.ValidateStruct(days); err != nil {
				return fmt.Errorf("%w: %s: %v", scoring.ErrInvalidInput, args[0], err)
			}

			weekly, err := scoring.WeeklyScore(days)
			if err != nil {
				return err
			}

			if v.GetBool("json") {
				return printJSON(cmd.OutOrStdout(), map[string]interface{}{
					"score":        weekly,
					"days_counted": len(days),
				})
			}
			printWeekly(cmd.OutOrStdout(), days, weekly)
			return nil
		},
	}
}
