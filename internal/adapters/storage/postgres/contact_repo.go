package postgres

import (
	"context"
	"database/sql"

	"yield-ai/internal/domain/contact"
)

type ContactRepo struct {
	db *sql.DB
}

func NewContactRepo(db *sql.DB) *ContactRepo {
	return &ContactRepo{db: db}
}

func (r *ContactRepo) Save(ctx context.Context, s contact.Submission) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO contact_submissions (
			id, name, email, phone,
			subject, message, received_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		s.ID,
		s.Name,
		s.Email,
		s.Phone,
		s.Subject,
		s.Message,
		s.ReceivedAt,
	)
	return err
}

func (r *ContactRepo) List(ctx context.Context, limit int) ([]contact.Submission, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, email, phone, subject, message, received_at
		FROM contact_submissions
		ORDER BY received_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]contact.Submission, 0)
	for rows.Next() {
		var s contact.Submission
		if err := rows.Scan(
			&s.ID,
			&s.Name,
			&s.Email,
			&s.Phone,
			&s.Subject,
			&s.Message,
			&s.ReceivedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
