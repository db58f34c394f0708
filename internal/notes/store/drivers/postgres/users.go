package postgres

import (
	"context"

	"github.com/aussiebroadwan/notes/internal/notes/domain"
)

type usersRepo struct {
	q querier
}

const userColumns = `id, username, email, password_hash, bio, created_at, updated_at`

func (r *usersRepo) getBy(ctx context.Context, column, value string) (domain.User, error) {
	var u domain.User
	err := r.q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE `+column+` = $1`, value).
		Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Bio, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	return r.getBy(ctx, "id", id)
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.getBy(ctx, "email", email)
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	return r.getBy(ctx, "username", username)
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO users (`+userColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		u.ID, u.Username, u.Email, u.PasswordHash, u.Bio, u.CreatedAt.UTC(), u.UpdatedAt.UTC(),
	)
	return mapWriteErr(err)
}

func (r *usersRepo) UpdateProfile(ctx context.Context, u domain.User) error {
	return requireRow(r.q.Exec(ctx,
		`UPDATE users SET username = $1, email = $2, bio = $3, updated_at = $4 WHERE id = $5`,
		u.Username, u.Email, u.Bio, now(), u.ID,
	))
}
