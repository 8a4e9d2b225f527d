package user

import (
	"context"
	"database/sql"
	"strings"
)

type Repository interface {
	Create(ctx context.Context, u User) (User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	FindByUsername(ctx context.Context, username string) (User, error)
	UpdateByUsername(ctx context.Context, username string, params UpdateProfileParams) (User, error)
	UpdatePasswordByEmail(ctx context.Context, email, passwordHash string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const userColumns = "id, username, email, password, phone, address, profile_pic, role, created_at"

func scanUser(row *sql.Row) (User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.Password, &u.Phone, &u.Address, &u.ProfilePic, &u.Role, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return User{}, ErrUserNotFound
	}
	return u, err
}

func (r *repository) Create(ctx context.Context, u User) (User, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO users (username, email, password, phone, address, profile_pic, role)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+userColumns,
		u.Username, u.Email, u.Password, u.Phone, u.Address, u.ProfilePic, u.Role,
	)

	created, err := scanUser(row)
	if err != nil {
		if strings.Contains(err.Error(), "users_email_key") {
			return User{}, ErrEmailExists
		}
		if strings.Contains(err.Error(), "users_username_key") {
			return User{}, ErrUsernameTaken
		}
		return User{}, err
	}
	return created, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

func (r *repository) FindByUsername(ctx context.Context, username string) (User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = $1`, username)
	return scanUser(row)
}

func (r *repository) UpdateByUsername(ctx context.Context, username string, params UpdateProfileParams) (User, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE users SET
			username    = COALESCE($2, username),
			phone       = COALESCE($3, phone),
			address     = COALESCE($4, address),
			profile_pic = COALESCE($5, profile_pic)
		WHERE username = $1
		RETURNING `+userColumns,
		username, params.Username, params.Phone, params.Address, params.ProfilePic,
	)

	updated, err := scanUser(row)
	if err != nil {
		if strings.Contains(err.Error(), "users_username_key") {
			return User{}, ErrUsernameTaken
		}
		return User{}, err
	}
	return updated, nil
}

func (r *repository) UpdatePasswordByEmail(ctx context.Context, email, passwordHash string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET password = $2 WHERE email = $1`, email, passwordHash)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrUserNotFound
	}
	return nil
}
