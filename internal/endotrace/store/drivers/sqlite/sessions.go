package sqlite

import (
	"context"
	"time"

	"github.com/clinsuite/endotrace/internal/endotrace/domain"
)

type sessionsRepo struct {
	db querier
}

func (r *sessionsRepo) Create(ctx context.Context, s domain.Session) error {
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO sessions (id, token_fingerprint, user_id, username, role, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		s.ID, s.TokenFingerprint, s.UserID, s.Username, string(s.Role), s.CreatedAt)
	return mapUnique(err)
}

func (r *sessionsRepo) GetByFingerprint(ctx context.Context, fingerprint string) (domain.Session, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, token_fingerprint, user_id, username, role, created_at
		 FROM sessions WHERE token_fingerprint = ?`, fingerprint)

	var s domain.Session
	var role string
	err := row.Scan(&s.ID, &s.TokenFingerprint, &s.UserID, &s.Username, &role, &s.CreatedAt)
	if err != nil {
		return domain.Session{}, mapNotFound(err)
	}
	s.Role = domain.Role(role)
	return s, nil
}

func (r *sessionsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}
