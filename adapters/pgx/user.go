package pgx

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Mayinja6/mission-games-bh-server/core"
)

const userColumns = `id, email, first_name, last_name, password, is_admin, created_at, updated_at`

func (a *Adapter) CreateUser(user *core.User) error {
	ctx := context.Background()

	query := `INSERT INTO public.users (id, email, first_name, last_name, password, is_admin) VALUES ($1, $2, $3, $4, $5, $6) RETURNING created_at, updated_at`
	var createdAt, updatedAt time.Time

	err := a.pool.QueryRow(ctx, query, user.ID, user.Email, user.FirstName, user.LastName, user.Password, user.IsAdmin).Scan(&createdAt, &updatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return core.ErrUserExists
		}
		return err
	}

	user.CreatedAt = createdAt
	user.UpdatedAt = updatedAt
	return nil
}

func (a *Adapter) GetUserByID(id string) (*core.User, error) {
	ctx := context.Background()
	q := `SELECT ` + userColumns + ` FROM public.users WHERE id = $1`

	return a.scanUser(a.pool.QueryRow(ctx, q, id))
}

func (a *Adapter) GetUserByEmail(email string) (*core.User, error) {
	ctx := context.Background()
	q := `SELECT ` + userColumns + ` FROM public.users WHERE email = $1`

	return a.scanUser(a.pool.QueryRow(ctx, q, email))
}

func (a *Adapter) UpdateUser(user *core.User) error {
	ctx := context.Background()
	q := `UPDATE public.users SET email = $1, first_name = $2, last_name = $3, password = $4, is_admin = $5, updated_at = now() WHERE id = $6 RETURNING updated_at`
	var updatedAt time.Time
	err := a.pool.QueryRow(ctx, q, user.Email, user.FirstName, user.LastName, user.Password, user.IsAdmin, user.ID).Scan(&updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return core.ErrUserNotFound
		}
		return err
	}
	user.UpdatedAt = updatedAt
	return nil
}

func (a *Adapter) DeleteUser(id string) error {
	ctx := context.Background()
	tag, err := a.pool.Exec(ctx, `DELETE FROM public.users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return core.ErrUserNotFound
	}
	return nil
}

func (a *Adapter) CountUsers() (int, error) {
	ctx := context.Background()
	var count int
	err := a.pool.QueryRow(ctx, `SELECT count(*) FROM public.users`).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (a *Adapter) ListUsers(offset, limit int) ([]*core.User, error) {
	ctx := context.Background()
	q := `SELECT ` + userColumns + ` FROM public.users ORDER BY created_at, id LIMIT $1 OFFSET $2`

	rows, err := a.pool.Query(ctx, q, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*core.User
	for rows.Next() {
		user, err := a.scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (a *Adapter) scanUser(row pgx.Row) (*core.User, error) {
	user := &core.User{}
	err := row.Scan(&user.ID, &user.Email, &user.FirstName, &user.LastName, &user.Password, &user.IsAdmin, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, core.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
