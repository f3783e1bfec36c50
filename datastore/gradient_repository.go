package datastore

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/color-studio/api/models"
)

type GradientDatabase struct {
	database *sql.DB
}

func NewGradientDatabase(db *sql.DB) (GradientDatabase, error) {
	var gradientDB GradientDatabase
	gradientDB.database = db
	return gradientDB, nil
}

const gradientColumns = `id, name, description, colors, direction, type, usage_count, is_trending`

func scanGradient(row rowScanner) (models.Gradient, error) {
	var g models.Gradient
	var stops []byte
	var kind string
	if err := row.Scan(
		&g.ID,
		&g.Name,
		&g.Description,
		&stops,
		&g.Direction,
		&kind,
		&g.UsageCount,
		&g.IsTrending,
	); err != nil {
		return models.Gradient{}, err
	}
	g.Type = models.GradientType(kind)

	if err := json.Unmarshal(stops, &g.Colors); err != nil {
		return models.Gradient{}, fmt.Errorf("error parsing color stops for gradient %d: %v", g.ID, err)
	}
	return g, nil
}

// Create inserts a new gradient and returns it with its id
func (gdb GradientDatabase) Create(gradient models.Gradient) (models.Gradient, error) {
	stops, err := json.Marshal(gradient.Colors)
	if err != nil {
		return models.Gradient{}, fmt.Errorf("error encoding color stops: %v", err)
	}

	sqlStatement := `
		INSERT INTO gradients (name, description, colors, direction, type, usage_count, is_trending)
		VALUES ($1, $2, $3, $4, $5, 0, FALSE)
		RETURNING ` + gradientColumns

	created, err := scanGradient(gdb.database.QueryRow(
		sqlStatement,
		gradient.Name,
		gradient.Description,
		string(stops),
		gradient.Direction,
		string(gradient.Type),
	))
	if err != nil {
		return models.Gradient{}, fmt.Errorf("failed to create gradient: %v", err)
	}

	return created, nil
}

// Get retrieves a gradient by id
func (gdb GradientDatabase) Get(id int) (models.Gradient, error) {
	sqlStatement := `SELECT ` + gradientColumns + ` FROM gradients WHERE id = $1`

	gradient, err := scanGradient(gdb.database.QueryRow(sqlStatement, id))
	switch err {
	case sql.ErrNoRows:
		return models.Gradient{}, NoRowsError{true, err}
	case nil:
		return gradient, nil
	default:
		return models.Gradient{}, err
	}
}

// GetAll retrieves every gradient ordered by id
func (gdb GradientDatabase) GetAll() ([]models.Gradient, error) {
	return gdb.query(`SELECT ` + gradientColumns + ` FROM gradients ORDER BY id`)
}

// GetTrending retrieves the most used gradients
func (gdb GradientDatabase) GetTrending(limit int) ([]models.Gradient, error) {
	return gdb.query(`SELECT `+gradientColumns+` FROM gradients ORDER BY usage_count DESC, id ASC LIMIT $1`, limit)
}

func (gdb GradientDatabase) query(sqlStatement string, args ...any) ([]models.Gradient, error) {
	rows, err := gdb.database.Query(sqlStatement, args...)
	if err != nil {
		return []models.Gradient{}, err
	}
	defer rows.Close()

	gradients := []models.Gradient{}
	for rows.Next() {
		g, err := scanGradient(rows)
		if err != nil {
			return []models.Gradient{}, err
		}
		gradients = append(gradients, g)
	}

	if err = rows.Err(); err != nil {
		return []models.Gradient{}, err
	}

	return gradients, nil
}

// IncrementUsage bumps the usage counter of a gradient
func (gdb GradientDatabase) IncrementUsage(id int) error {
	result, err := gdb.database.Exec(`UPDATE gradients SET usage_count = usage_count + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to update gradient usage: %v", err)
	}
	return requireRow(result, "gradient", id)
}

// RefreshTrending flags exactly the current top gradients as trending
func (gdb GradientDatabase) RefreshTrending(limit int) error {
	sqlStatement := `
		UPDATE gradients SET is_trending = id IN (
			SELECT id FROM gradients ORDER BY usage_count DESC, id ASC LIMIT $1
		)`

	if _, err := gdb.database.Exec(sqlStatement, limit); err != nil {
		return fmt.Errorf("failed to refresh trending gradients: %v", err)
	}
	return nil
}

func (gdb GradientDatabase) Count() (int, error) {
	var count int
	err := gdb.database.QueryRow(`SELECT COUNT(*) FROM gradients`).Scan(&count)
	return count, err
}
