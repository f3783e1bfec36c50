package datastore

import (
	"database/sql"
	"fmt"

	"github.com/color-studio/api/models"
	"github.com/lib/pq"
)

type PaletteDatabase struct {
	database *sql.DB
}

func NewPaletteDatabase(db *sql.DB) (PaletteDatabase, error) {
	var paletteDB PaletteDatabase
	paletteDB.database = db
	return paletteDB, nil
}

const paletteColumns = `id, name, description, colors, tags, usage_count, is_trending`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPalette(row rowScanner) (models.Palette, error) {
	var p models.Palette
	var colors, tags pq.StringArray
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&colors,
		&tags,
		&p.UsageCount,
		&p.IsTrending,
	)
	p.Colors = []string(colors)
	p.Tags = append([]string{}, tags...)
	return p, err
}

// Create inserts a new palette and returns it with its id
func (pdb PaletteDatabase) Create(palette models.Palette) (models.Palette, error) {
	sqlStatement := `
		INSERT INTO palettes (name, description, colors, tags, usage_count, is_trending)
		VALUES ($1, $2, $3, $4, 0, FALSE)
		RETURNING ` + paletteColumns

	created, err := scanPalette(pdb.database.QueryRow(
		sqlStatement,
		palette.Name,
		palette.Description,
		pq.Array(palette.Colors),
		pq.Array(palette.Tags),
	))
	if err != nil {
		return models.Palette{}, fmt.Errorf("failed to create palette: %v", err)
	}

	return created, nil
}

// Get retrieves a palette by id
func (pdb PaletteDatabase) Get(id int) (models.Palette, error) {
	sqlStatement := `SELECT ` + paletteColumns + ` FROM palettes WHERE id = $1`

	palette, err := scanPalette(pdb.database.QueryRow(sqlStatement, id))
	switch err {
	case sql.ErrNoRows:
		return models.Palette{}, NoRowsError{true, err}
	case nil:
		return palette, nil
	default:
		return models.Palette{}, err
	}
}

// GetAll retrieves every palette ordered by id
func (pdb PaletteDatabase) GetAll() ([]models.Palette, error) {
	return pdb.query(`SELECT ` + paletteColumns + ` FROM palettes ORDER BY id`)
}

// GetTrending retrieves the most used palettes
func (pdb PaletteDatabase) GetTrending(limit int) ([]models.Palette, error) {
	return pdb.query(`SELECT `+paletteColumns+` FROM palettes ORDER BY usage_count DESC, id ASC LIMIT $1`, limit)
}

func (pdb PaletteDatabase) query(sqlStatement string, args ...any) ([]models.Palette, error) {
	rows, err := pdb.database.Query(sqlStatement, args...)
	if err != nil {
		return []models.Palette{}, err
	}
	defer rows.Close()

	palettes := []models.Palette{}
	for rows.Next() {
		p, err := scanPalette(rows)
		if err != nil {
			return []models.Palette{}, err
		}
		palettes = append(palettes, p)
	}

	if err = rows.Err(); err != nil {
		return []models.Palette{}, err
	}

	return palettes, nil
}

// IncrementUsage bumps the usage counter of a palette
func (pdb PaletteDatabase) IncrementUsage(id int) error {
	result, err := pdb.database.Exec(`UPDATE palettes SET usage_count = usage_count + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to update palette usage: %v", err)
	}
	return requireRow(result, "palette", id)
}

// RefreshTrending flags exactly the current top palettes as trending
func (pdb PaletteDatabase) RefreshTrending(limit int) error {
	sqlStatement := `
		UPDATE palettes SET is_trending = id IN (
			SELECT id FROM palettes ORDER BY usage_count DESC, id ASC LIMIT $1
		)`

	if _, err := pdb.database.Exec(sqlStatement, limit); err != nil {
		return fmt.Errorf("failed to refresh trending palettes: %v", err)
	}
	return nil
}

func (pdb PaletteDatabase) Count() (int, error) {
	var count int
	err := pdb.database.QueryRow(`SELECT COUNT(*) FROM palettes`).Scan(&count)
	return count, err
}

func requireRow(result sql.Result, kind string, id int) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return notFound(kind, id)
	}
	return nil
}
