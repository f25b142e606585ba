package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"yield-ai/internal/domain/breeders"
	"yield-ai/internal/domain/breeds"
	"yield-ai/internal/domain/contact"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

var breedCols = []string{"id", "name", "animal", "origin", "characteristics", "milk_yield", "climate", "care", "image"}

func TestBreedsRepo_ListDecodesJSONLists(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectQuery(`SELECT .* FROM breeds\s+ORDER BY position ASC`).
		WillReturnRows(sqlmock.NewRows(breedCols).
			AddRow("1", "Gir", "cattle", "Gujarat, India", []byte(`["Drooping ears"]`), "1,200-1,800", "Hot", []byte(`["Regular vaccination"]`), "/placeholder.svg").
			AddRow("7", "Murrah", "buffalo", "Haryana, India", []byte(`[]`), "1,800-2,500", "Subtropical", nil, "/placeholder.svg"))

	got, err := NewBreedsRepo(db).List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, breeds.AnimalCattle, got[0].Animal)
	assert.Equal(t, []string{"Drooping ears"}, got[0].Characteristics)
	assert.Equal(t, []string{"Regular vaccination"}, got[0].Care)
	assert.Equal(t, "Murrah", got[1].Name)
	assert.Equal(t, []string{}, got[1].Care)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBreedsRepo_GetByIDNotFound(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectQuery(`SELECT .* FROM breeds\s+WHERE id = \$1`).
		WithArgs("99").
		WillReturnRows(sqlmock.NewRows(breedCols))

	_, err := NewBreedsRepo(db).GetByID(context.Background(), "99")
	assert.ErrorIs(t, err, breeds.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBreedsRepo_UpsertKeepsOrder(t *testing.T) {
	db, mock := newMock(t)
	seed := breeds.Seed()[:2]

	mock.ExpectBegin()
	for i, b := range seed {
		mock.ExpectExec(`INSERT INTO breeds`).
			WithArgs(b.ID, i, b.Name, string(b.Animal), b.Origin, sqlmock.AnyArg(), b.MilkYield, b.Climate, sqlmock.AnyArg(), b.Image).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()

	require.NoError(t, NewBreedsRepo(db).Upsert(context.Background(), seed))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBreedersRepo_List(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectQuery(`SELECT .* FROM breeders\s+ORDER BY position ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "location", "distance", "specialties", "rating", "phone", "verified"}).
			AddRow("1", "Ramesh Dairy Farm", "Anand, Gujarat", "2.5 km", []byte(`["Gir Cattle","Murrah Buffalo"]`), 4.8, "+91 98765 43210", true))

	got, err := NewBreedersRepo(db).List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, []string{"Gir Cattle", "Murrah Buffalo"}, got[0].Specialties)
	assert.True(t, got[0].Verified)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBreedersRepo_GetByIDNotFound(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectQuery(`SELECT .* FROM breeders\s+WHERE id = \$1`).
		WithArgs("x").
		WillReturnError(sql.ErrNoRows)

	_, err := NewBreedersRepo(db).GetByID(context.Background(), "x")
	assert.ErrorIs(t, err, breeders.ErrNotFound)
}

func TestContactRepo_SaveAndList(t *testing.T) {
	db, mock := newMock(t)
	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	s := contact.Submission{
		ID: "0b6c1f7e-5d1a-4a4e-9d35-7a0c0f9b2f10", Name: "Asha", Email: "asha@example.com",
		Subject: "Hola", Message: "Mensaje", ReceivedAt: now,
	}

	mock.ExpectExec(`INSERT INTO contact_submissions`).
		WithArgs(s.ID, s.Name, s.Email, "", s.Subject, s.Message, now).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT .* FROM contact_submissions\s+ORDER BY received_at DESC\s+LIMIT \$1`).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "phone", "subject", "message", "received_at"}).
			AddRow(s.ID, s.Name, s.Email, "", s.Subject, s.Message, now))

	repo := NewContactRepo(db)
	require.NoError(t, repo.Save(context.Background(), s))

	got, err := repo.List(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, s, got[0])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrate_RunsAllStatements(t *testing.T) {
	db, mock := newMock(t)
	expectMigrations(mock)

	require.NoError(t, Migrate(context.Background(), db))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func expectMigrations(mock sqlmock.Sqlmock) {
	for range migrations {
		mock.ExpectExec(`CREATE`).WillReturnResult(sqlmock.NewResult(0, 0))
	}
}

func TestBootstrap_SeedsEmptyTables(t *testing.T) {
	db, mock := newMock(t)
	catalog := breeds.Seed()
	directory := breeders.Seed()

	expectMigrations(mock)
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM breeds`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectBegin()
	for range catalog {
		mock.ExpectExec(`INSERT INTO breeds`).WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM breeders`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectBegin()
	for range directory {
		mock.ExpectExec(`INSERT INTO breeders`).WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()

	res, err := Bootstrap(context.Background(), db, catalog, directory)
	require.NoError(t, err)
	assert.Equal(t, len(catalog), res.BreedsSeeded)
	assert.Equal(t, len(directory), res.BreedersSeeded)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBootstrap_LeavesExistingRowsAlone(t *testing.T) {
	db, mock := newMock(t)

	expectMigrations(mock)
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM breeds`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM breeders`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	res, err := Bootstrap(context.Background(), db, breeds.Seed(), breeders.Seed())
	require.NoError(t, err)
	assert.Zero(t, res.BreedsSeeded)
	assert.Zero(t, res.BreedersSeeded)
	assert.NoError(t, mock.ExpectationsWereMet())
}
