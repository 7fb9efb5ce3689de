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

// dayFile mirrors scoring.DayInput with optional targets.
type dayFile struct {
	User      models.User        `yaml:"user"`
	Meals     []models.MealLog   `yaml:"meals"`
	Nutrition *models.Nutrition  `yaml:"nutrition"`
	Exercise  models.ExerciseLog `yaml:"exercise"`
	Targets   struct {
		Calories        *float64 `yaml:"calories"`
		ExerciseMinutes *int     `yaml:"exercise_minutes"`
		ActiveCalories  *float64 `yaml:"active_calories"`
	} `yaml:"targets"`
}

func newDayCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "day <file>",
		Short: "Score one logged day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readDayFile(args[0], v)
			if err != nil {
				return err
			}

			breakdown, err := scoring.ScoreDay(in)
			if err != nil {
				return err
			}

			if v.GetBool("json") {
				return printJSON(cmd.OutOrStdout(), breakdown)
			}
			printBreakdown(cmd.OutOrStdout(), breakdown)
			return nil
		},
	}

	cmd.Flags().Float64("target-calories", defaultTargetCalories, "Daily calorie target")
	cmd.Flags().Int("target-minutes", defaultTargetMinutes, "Daily exercise minutes target")
	cmd.Flags().Float64("target-active-calories", defaultTargetActiveCalories, "Daily active calories target")
	_ = v.BindPFlags(cmd.Flags())
	return cmd
}

func readDayFile(path string, v *viper.Viper) (scoring.DayInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return scoring.DayInput{}, fmt.Errorf("reading day file: %w", err)
	}

	var f dayFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return scoring.DayInput{}, fmt.Errorf("parsing day file %s: %w", path, err)
	}

	in := scoring.DayInput{
		User:      f.User,
		Meals:     f.Meals,
		Nutrition: f.Nutrition,
		Exercise:  f.Exercise,
		Targets: scoring.Targets{
			Calories:        v.GetFloat64("target-calories"),
			ExerciseMinutes: v.GetInt("target-minutes"),
			ActiveCalories:  v.GetFloat64("target-active-calories"),
		},
	}
	if f.Targets.Calories != nil {
		in.Targets.Calories = *f.Targets.Calories
	}
	if f.Targets.ExerciseMinutes != nil {
		in.Targets.ExerciseMinutes = *f.Targets.ExerciseMinutes
	}
	if f.Targets.ActiveCalories != nil {
		in.Targets.ActiveCalories = *f.Targets.ActiveCalories
	}

	if err := binding.Validator.ValidateStruct(in); err != nil {
		return scoring.DayInput{}, fmt.Errorf("%w: %s: %v", scoring.ErrInvalidInput, path, err)
	}
	return in, nil
}
