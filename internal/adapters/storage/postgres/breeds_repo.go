package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"yield-ai/internal/domain/breeds"
)

type BreedsRepo struct {
	db *sql.DB
}

func NewBreedsRepo(db *sql.DB) *BreedsRepo {
	return &BreedsRepo{db: db}
}

const breedColumns = `id, name, animal, origin, characteristics, milk_yield, climate, care, image`

func (r *BreedsRepo) List(ctx context.Context) ([]breeds.Breed, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+breedColumns+`
		FROM breeds
		ORDER BY position ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]breeds.Breed, 0)
	for rows.Next() {
		b, err := scanBreed(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *BreedsRepo) GetByID(ctx context.Context, id string) (breeds.Breed, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return breeds.Breed{}, breeds.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+breedColumns+`
		FROM breeds
		WHERE id = $1
	`, id)

	b, err := scanBreed(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return breeds.Breed{}, breeds.ErrNotFound
		}
		return breeds.Breed{}, err
	}
	return b, nil
}

// Upsert carga el catálogo respetando el orden recibido. Se usa desde el comando seed.
func (r *BreedsRepo) Upsert(ctx context.Context, items []breeds.Breed) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for i, b := range items {
		chars, err := toJSONList(b.Characteristics)
		if err != nil {
			return err
		}
		care, err := toJSONList(b.Care)
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO breeds (
				id, position, name, animal, origin,
				characteristics, milk_yield, climate, care, image
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
			ON CONFLICT (id) DO UPDATE SET
				position = EXCLUDED.position,
				name = EXCLUDED.name,
				animal = EXCLUDED.animal,
				origin = EXCLUDED.origin,
				characteristics = EXCLUDED.characteristics,
				milk_yield = EXCLUDED.milk_yield,
				climate = EXCLUDED.climate,
				care = EXCLUDED.care,
				image = EXCLUDED.image
		`,
			b.ID,
			i,
			b.Name,
			string(b.Animal),
			b.Origin,
			chars,
			b.MilkYield,
			b.Climate,
			care,
			b.Image,
		); err != nil {
			return fmt.Errorf("upsert breed %s: %w", b.ID, err)
		}
	}

	return tx.Commit()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBreed(s rowScanner) (breeds.Breed, error) {
	var (
		b           breeds.Breed
		animal      string
		chars, care []byte
	)
	if err := s.Scan(
		&b.ID,
		&b.Name,
		&animal,
		&b.Origin,
		&chars,
		&b.MilkYield,
		&b.Climate,
		&care,
		&b.Image,
	); err != nil {
		return breeds.Breed{}, err
	}

	var err error
	b.Animal = breeds.Animal(animal)
	if b.Characteristics, err = fromJSONList(chars); err != nil {
		return breeds.Breed{}, err
	}
	if b.Care, err = fromJSONList(care); err != nil {
		return breeds.Breed{}, err
	}
	return b, nil
}
