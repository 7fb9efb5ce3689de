package main

import (
	"encoding/json"
	"fmt"
	"io"

	"snaccscore/internal/models"
	"snaccscore/internal/scoring"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle  = lipgloss.NewStyle().Width(22)
	earnedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	missedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	totalStyle  = lipgloss.NewStyle().Bold(true)
)

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func pointsLine(w io.Writer, label string, points, max float64) {
	style := earnedStyle
	if points == 0 {
		style = missedStyle
	}
	fmt.Fprintf(w, "%s%s\n", labelStyle.Render(label), style.Render(fmt.Sprintf("%.2f / %.1f", points, max)))
}

func printBreakdown(w io.Writer, b scoring.Breakdown) {
	fmt.Fprintln(w, headerStyle.Render("Daily Snacc Score"))
	fmt.Fprintf(w, "%s%.2f%%\n", labelStyle.Render("Protein goal"), b.ProteinPercentage)
	pointsLine(w, "Calorie balance", b.CalorieBalance, scoring.CalorieBalancePoints)
	pointsLine(w, "Nutrition diversity", b.NutritionDiversity, scoring.MaxDiversityPoints)
	pointsLine(w, "Exercise goal", b.ExerciseGoals, scoring.ExerciseGoalPoints)
	pointsLine(w, "Active calorie goal", b.ActiveCalorieGoals, scoring.ActiveCaloriePoints)
	fmt.Fprintf(w, "%s%s\n", labelStyle.Render("Total"), totalStyle.Render(fmt.Sprintf("%.2f", b.Daily)))
}

func printWeekly(w io.Writer, days []models.DailySnaccScore, weekly float64) {
	fmt.Fprintln(w, headerStyle.Render("Weekly Snacc Score"))
	for _, d := range days {
		fmt.Fprintf(w, "%s%.2f\n", labelStyle.Render(d.Date), d.Score)
	}
	if len(days) != 7 {
		fmt.Fprintln(w, missedStyle.Render(fmt.Sprintf("averaged over %d days", len(days))))
	}
	fmt.Fprintf(w, "%s%s\n", labelStyle.Render("Average"), totalStyle.Render(fmt.Sprintf("%.2f", weekly)))
}
