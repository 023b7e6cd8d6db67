// CLI tool to publish the built-in food table and workout templates to the
// reference catalog database (food_catalog, workout_templates). Safe to re-run:
// foods are upserted and templates replaced in one transaction.
// Usage: go run ./cmd/seed-foods (from the module root, after ./cmd/migrate)
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
	"lg/wellness-go-api/nutrition"
)

// foodRow is one food_catalog row.
type foodRow struct {
	Position int
	Name     string
	Profile  nutrition.FoodProfile
}

// templateRow is one workout_templates row.
type templateRow struct {
	Level    nutrition.ExperienceLevel
	Split    string
	DayIndex int
	DayLabel string
	Position int
	Exercise string
}

// catalogRows lists every food in table order.
func catalogRows() []foodRow {
	names := nutrition.Foods()
	rows := make([]foodRow, 0, len(names))
	for i, name := range names {
		p, err := nutrition.LookupFood(name)
		if err != nil {
			continue
		}
		rows = append(rows, foodRow{Position: i + 1, Name: name, Profile: p})
	}
	return rows
}

// templateRows flattens every workout template into one row per exercise.
func templateRows() ([]templateRow, error) {
	var rows []templateRow
	for _, level := range nutrition.ExperienceLevels() {
		plan, err := nutrition.BuildWorkoutPlan(level, "")
		if err != nil {
			return nil, err
		}
		for d, day := range plan.Days {
			for i, ex := range day.Exercises {
				rows = append(rows, templateRow{
					Level:    level,
					Split:    plan.Split,
					DayIndex: d + 1,
					DayLabel: day.Label,
					Position: i + 1,
					Exercise: ex,
				})
			}
		}
	}
	return rows, nil
}

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading .env file: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, os.Getenv("DB_URL"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close(ctx)

	templates, err := templateRows()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building workout templates: %v\n", err)
		os.Exit(1)
	}
	foods := catalogRows()

	if err := publish(ctx, conn, foods, templates); err != nil {
		fmt.Fprintf(os.Stderr, "Error publishing catalog: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nCatalog published!\n")
	fmt.Printf("  Foods:              %d\n", len(foods))
	fmt.Printf("  Workout exercises:  %d\n", len(templates))
}

// publish writes foods and templates in a single transaction.
func publish(ctx context.Context, conn *pgx.Conn, foods []foodRow, templates []templateRow) error {
	tx, err := conn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	for _, f := range foods {
		batch.Queue(
			`INSERT INTO food_catalog (name, position, calories, protein_g, carbs_g, fat_g, fiber_g)
			 VALUES (@name, @position, @calories, @proteinG, @carbsG, @fatG, @fiberG)
			 ON CONFLICT (name) DO UPDATE SET
				position = EXCLUDED.position,
				calories = EXCLUDED.calories,
				protein_g = EXCLUDED.protein_g,
				carbs_g = EXCLUDED.carbs_g,
				fat_g = EXCLUDED.fat_g,
				fiber_g = EXCLUDED.fiber_g,
				updated_at = now()`,
			pgx.NamedArgs{
				"name": f.Name, "position": f.Position,
				"calories": f.Profile.Calories, "proteinG": f.Profile.ProteinG,
				"carbsG": f.Profile.CarbsG, "fatG": f.Profile.FatG, "fiberG": f.Profile.FiberG,
			})
	}

	// Templates are replaced wholesale; a removed exercise must not linger.
	batch.Queue("DELETE FROM workout_templates")
	for _, r := range templates {
		batch.Queue(
			`INSERT INTO workout_templates (level, split, day_index, day_label, position, exercise)
			 VALUES (@level, @split, @dayIndex, @dayLabel, @position, @exercise)`,
			pgx.NamedArgs{
				"level": string(r.Level), "split": r.Split, "dayIndex": r.DayIndex,
				"dayLabel": r.DayLabel, "position": r.Position, "exercise": r.Exercise,
			})
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("send batch: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
