package birthday

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

// PostgresRepository stores one row per birthday. Save replaces the whole
// collection in a transaction to keep snapshot semantics.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Load(ctx context.Context) ([]Birthday, error) {
	query := `SELECT name, month, day, category, birth_year FROM birthday ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not query birthdays: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	birthdays := make([]Birthday, 0, 10)
	for rows.Next() {
		var b Birthday
		var category string
		var birthYear sql.NullInt64
		if err := rows.Scan(&b.Name, &b.Month, &b.Day, &category, &birthYear); err != nil {
			err := fmt.Errorf("could not scan row: %w", err)
			log.Error(err)
			return nil, err
		}
		b.Category = Category(category)
		if birthYear.Valid {
			b.Year = int(birthYear.Int64)
		}
		birthdays = append(birthdays, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not read birthdays: %w", err)
	}
	return birthdays, nil
}

func (r *PostgresRepository) Save(ctx context.Context, birthdays []Birthday) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			log.Errorf("rollback error: %v", rbErr)
		}
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM birthday`); err != nil {
		return fmt.Errorf("could not clear birthdays: %w", err)
	}

	query := `INSERT INTO birthday (name, month, day, category, birth_year) VALUES ($1, $2, $3, $4, $5)`
	for _, b := range birthdays {
		var birthYear sql.NullInt64
		if b.Year != 0 {
			birthYear = sql.NullInt64{Int64: int64(b.Year), Valid: true}
		}
		if _, err := tx.ExecContext(ctx, query, b.Name, b.Month, b.Day, string(b.Category), birthYear); err != nil {
			return fmt.Errorf("could not insert birthday %q: %w", b.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
