package models

// User carries the physical attributes used to derive personal targets.
type User struct {
	Height float64 `json:"height" yaml:"height" binding:"required,gt=0" example:"175"`
	Weight float64 `json:"weight" yaml:"weight" binding:"required,gt=0" example:"80"`
	Gender string  `json:"gender" yaml:"gender" binding:"required" example:"female"`
	Age    int     `json:"age" yaml:"age" binding:"required,gt=0" example:"30"`
}

// Nutrition holds nutrient totals for a meal or a whole day.
type Nutrition struct {
	Calories       float64 `json:"calories" yaml:"calories" binding:"gte=0" example:"1800"`
	ProteinG       float64 `json:"protein_g" yaml:"protein_g" binding:"gte=0" example:"64"`
	CarbohydratesG float64 `json:"carbohydrates_g" yaml:"carbohydrates_g" binding:"gte=0" example:"220"`
	FatsG          float64 `json:"fats_g" yaml:"fats_g" binding:"gte=0" example:"60"`
	FibersG        float64 `json:"fibers_g" yaml:"fibers_g" binding:"gte=0" example:"30"`
	AddedSugarsG   float64 `json:"added_sugars_g" yaml:"added_sugars_g" binding:"gte=0" example:"20"`
	SaturatedFatG  float64 `json:"saturated_fat_g" yaml:"saturated_fat_g" binding:"gte=0" example:"15"`
}

// Add returns the field-wise sum of n and o.
func (n Nutrition) Add(o Nutrition) Nutrition {
	return Nutrition{
		Calories:       n.Calories + o.Calories,
		ProteinG:       n.ProteinG + o.ProteinG,
		CarbohydratesG: n.CarbohydratesG + o.CarbohydratesG,
		FatsG:          n.FatsG + o.FatsG,
		FibersG:        n.FibersG + o.FibersG,
		AddedSugarsG:   n.AddedSugarsG + o.AddedSugarsG,
		SaturatedFatG:  n.SaturatedFatG + o.SaturatedFatG,
	}
}

type MealLog struct {
	FoodItem    string    `json:"food_item" yaml:"food_item" binding:"required" example:"omelette"`
	Ingredients []string  `json:"ingredients" yaml:"ingredients" binding:"required" example:"egg,spinach"`
	PortionSize string    `json:"portion_size" yaml:"portion_size" example:"1 plate"`
	Nutrition   Nutrition `json:"nutrition" yaml:"nutrition"`
}

type ExerciseLog struct {
	ExerciseMinutes int     `json:"exercise_minutes" yaml:"exercise_minutes" binding:"gte=0" example:"30"`
	ActiveCalories  float64 `json:"active_calories" yaml:"active_calories" binding:"gte=0" example:"300"`
}

// DailySnaccScore is one day's aggregated score. Date uses the 2006-01-02 layout.
type DailySnaccScore struct {
	Date  string  `json:"date" yaml:"date" binding:"required" example:"2023-01-01"`
	Score float64 `json:"score" yaml:"score" example:"105.3"`
}
