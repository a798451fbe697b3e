package readstore

import (
	"context"
	"time"

	"hotelres/internal/domain/user"
	"hotelres/internal/infra"
	"hotelres/internal/infra/db"
	"hotelres/internal/pkg/pgconv"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

const findUserByLoginIDQuery = `
SELECT id, login_id, email, password_hash, role, created_at
  FROM users
 WHERE login_id = $1`

func (r *UserReadStore) FindByLoginID(ctx context.Context, loginID string) (*user.User, error) {
	var (
		id           int64
		login        string
		email        string
		passwordHash string
		roleStr      string
		createdAt    time.Time
	)

	err := r.db.QueryRow(ctx, findUserByLoginIDQuery, loginID).
		Scan(&id, &login, &email, &passwordHash, &roleStr, &createdAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by login ID", err)
	}

	role, err := user.NewRole(roleStr)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt role value", err)
	}

	return user.ReconstructUser(id, login, email, passwordHash, role, createdAt), nil
}
