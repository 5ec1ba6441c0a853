package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// Repository persists users.
type Repository interface {
	Insert(ctx context.Context, user User) InsertOutcome
	ListAll(ctx context.Context) ([]User, error)
	FindByID(ctx context.Context, id string) (User, error)
}

const (
	insertUserQuery = `INSERT INTO users (id, first_name, last_name, email, phone, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)`
	listUsersQuery = `SELECT id, first_name, last_name, email, phone, created_at
        FROM users ORDER BY created_at, id`
	getUserByIDQuery = `SELECT id, first_name, last_name, email, phone, created_at
        FROM users WHERE id = $1`
)

type rowScanner interface {
	Scan(dest ...any) error
}

// PostgresRepository implements Repository on top of database/sql with the pgx driver.
type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository builds a Postgres-backed user repository.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Insert stores a new user. Unique violations come back as DuplicateKey with
// the offending column; nothing is written in that case.
func (r *PostgresRepository) Insert(ctx context.Context, user User) InsertOutcome {
	_, err := r.db.ExecContext(ctx, insertUserQuery,
		user.ID, user.FirstName, user.LastName, user.Email, user.Phone, user.CreatedAt.UTC())
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return DuplicateKey(constraintField(pgErr.ConstraintName))
		}
		return Failure(fmt.Errorf("insert user: %w", err))
	}
	user.CreatedAt = user.CreatedAt.UTC()
	return Created(user)
}

// ListAll returns every user ordered by creation time.
func (r *PostgresRepository) ListAll(ctx context.Context) ([]User, error) {
	rows, err := r.db.QueryContext(ctx, listUsersQuery)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := make([]User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// FindByID fetches a single user.
func (r *PostgresRepository) FindByID(ctx context.Context, id string) (User, error) {
	user, err := scanUser(r.db.QueryRowContext(ctx, getUserByIDQuery, id))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.Is(err, sql.ErrNoRows) ||
			(errors.As(err, &pgErr) && pgErr.Code == pgerrcode.InvalidTextRepresentation) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

func scanUser(scanner rowScanner) (User, error) {
	var user User
	if err := scanner.Scan(&user.ID, &user.FirstName, &user.LastName, &user.Email, &user.Phone, &user.CreatedAt); err != nil {
		return User{}, err
	}
	user.CreatedAt = user.CreatedAt.UTC()
	return user, nil
}

// constraintField maps a constraint name such as users_email_key to its column.
func constraintField(constraint string) string {
	switch {
	case constraint == "users_pkey":
		return "id"
	case strings.HasPrefix(constraint, "users_") && strings.HasSuffix(constraint, "_key"):
		return strings.TrimSuffix(strings.TrimPrefix(constraint, "users_"), "_key")
	case constraint == "":
		return "unknown"
	default:
		return constraint
	}
}
