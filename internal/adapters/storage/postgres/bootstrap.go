package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"yield-ai/internal/domain/breeders"
	"yield-ai/internal/domain/breeds"
)

// BootstrapResult indica qué tablas se sembraron en este arranque.
type BootstrapResult struct {
	BreedsSeeded   int
	BreedersSeeded int
}

// Bootstrap migra el schema y siembra catálogo y directorio si están vacíos.
// Tablas con datos no se tocan (el comando seed es el que pisa).
func Bootstrap(ctx context.Context, db *sql.DB, catalog []breeds.Breed, directory []breeders.Breeder) (BootstrapResult, error) {
	var res BootstrapResult

	if err := Migrate(ctx, db); err != nil {
		return res, err
	}

	n, err := countRows(ctx, db, "breeds")
	if err != nil {
		return res, err
	}
	if n == 0 && len(catalog) > 0 {
		if err := NewBreedsRepo(db).Upsert(ctx, catalog); err != nil {
			return res, fmt.Errorf("seed breeds: %w", err)
		}
		res.BreedsSeeded = len(catalog)
	}

	n, err = countRows(ctx, db, "breeders")
	if err != nil {
		return res, err
	}
	if n == 0 && len(directory) > 0 {
		if err := NewBreedersRepo(db).Upsert(ctx, directory); err != nil {
			return res, fmt.Errorf("seed breeders: %w", err)
		}
		res.BreedersSeeded = len(directory)
	}

	return res, nil
}

// table viene siempre de este paquete, nunca del usuario.
func countRows(ctx context.Context, db *sql.DB, table string) (int, error) {
	var n int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM `+table).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}
