package sqlc

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const userColumns = `id, name, email, password_hash, role, is_active, last_login_at, created_at`

const createUser = `
INSERT INTO users (id, name, email, password_hash, role, is_active, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`

type CreateUserParams struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Role         string
	IsActive     bool
	CreatedAt    time.Time
}

func (q *Queries) CreateUser(ctx context.Context, db DBTX, arg CreateUserParams) error {
	_, err := db.Exec(ctx, createUser,
		arg.ID,
		arg.Name,
		arg.Email,
		arg.PasswordHash,
		arg.Role,
		arg.IsActive,
		arg.CreatedAt,
	)
	return err
}

const findUserByID = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

func (q *Queries) FindUserByID(ctx context.Context, db DBTX, id uuid.UUID) (Users, error) {
	return scanUser(db.QueryRow(ctx, findUserByID, id))
}

const findUserByEmail = `SELECT ` + userColumns + ` FROM users WHERE email = $1`

func (q *Queries) FindUserByEmail(ctx context.Context, db DBTX, email string) (Users, error) {
	return scanUser(db.QueryRow(ctx, findUserByEmail, email))
}

const updateUserLastLogin = `UPDATE users SET last_login_at = $2 WHERE id = $1`

func (q *Queries) UpdateUserLastLogin(ctx context.Context, db DBTX, id uuid.UUID, at time.Time) (int64, error) {
	result, err := db.Exec(ctx, updateUserLastLogin, id, at)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

func scanUser(row interface{ Scan(...any) error }) (Users, error) {
	var i Users
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Email,
		&i.PasswordHash,
		&i.Role,
		&i.IsActive,
		&i.LastLoginAt,
		&i.CreatedAt,
	)
	return i, err
}
