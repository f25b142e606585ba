package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"yield-ai/internal/domain/breeders"
)

type BreedersRepo struct {
	db *sql.DB
}

func NewBreedersRepo(db *sql.DB) *BreedersRepo {
	return &BreedersRepo{db: db}
}

const breederColumns = `id, name, location, distance, specialties, rating, phone, verified`

func (r *BreedersRepo) List(ctx context.Context) ([]breeders.Breeder, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+breederColumns+`
		FROM breeders
		ORDER BY position ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]breeders.Breeder, 0)
	for rows.Next() {
		b, err := scanBreeder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *BreedersRepo) GetByID(ctx context.Context, id string) (breeders.Breeder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return breeders.Breeder{}, breeders.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+breederColumns+`
		FROM breeders
		WHERE id = $1
	`, id)

	b, err := scanBreeder(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return breeders.Breeder{}, breeders.ErrNotFound
		}
		return breeders.Breeder{}, err
	}
	return b, nil
}

func (r *BreedersRepo) Upsert(ctx context.Context, items []breeders.Breeder) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for i, b := range items {
		specs, err := toJSONList(b.Specialties)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO breeders (
				id, position, name, location, distance,
				specialties, rating, phone, verified
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
			ON CONFLICT (id) DO UPDATE SET
				position = EXCLUDED.position,
				name = EXCLUDED.name,
				location = EXCLUDED.location,
				distance = EXCLUDED.distance,
				specialties = EXCLUDED.specialties,
				rating = EXCLUDED.rating,
				phone = EXCLUDED.phone,
				verified = EXCLUDED.verified
		`,
			b.ID,
			i,
			b.Name,
			b.Location,
			b.Distance,
			specs,
			b.Rating,
			b.Phone,
			b.Verified,
		); err != nil {
			return fmt.Errorf("upsert breeder %s: %w", b.ID, err)
		}
	}

	return tx.Commit()
}

func scanBreeder(s rowScanner) (breeders.Breeder, error) {
	var (
		b     breeders.Breeder
		specs []byte
	)
	if err := s.Scan(
		&b.ID,
		&b.Name,
		&b.Location,
		&b.Distance,
		&specs,
		&b.Rating,
		&b.Phone,
		&b.Verified,
	); err != nil {
		return breeders.Breeder{}, err
	}

	var err error
	if b.Specialties, err = fromJSONList(specs); err != nil {
		return breeders.Breeder{}, err
	}
	return b, nil
}
