package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"strengthbot/internal/training"
)

// MaximaRepository работает с таблицей users: по одной строке максимумов на пользователя
type MaximaRepository struct {
	db *sql.DB
}

// NewMaximaRepository создаёт репозиторий максимумов
func NewMaximaRepository(db *sql.DB) *MaximaRepository {
	return &MaximaRepository{db: db}
}

// Init создаёт таблицу users, если она не существует.
// Запрос совместим с PostgreSQL и SQLite.
func (r *MaximaRepository) Init(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			user_id     BIGINT PRIMARY KEY,
			bench_press DOUBLE PRECISION NOT NULL DEFAULT 0,
			squat       DOUBLE PRECISION NOT NULL DEFAULT 0,
			deadlift    DOUBLE PRECISION NOT NULL DEFAULT 0
		)`)
	if err != nil {
		return fmt.Errorf("ошибка создания таблицы users: %w", err)
	}
	return nil
}

// Get возвращает максимумы пользователя. Если записи нет, возвращаются нули.
func (r *MaximaRepository) Get(ctx context.Context, userID int64) (training.Maxima, error) {
	var m training.Maxima
	err := r.db.QueryRowContext(ctx, `
		SELECT bench_press, squat, deadlift
		FROM users
		WHERE user_id = $1`, userID).Scan(&m.BenchPress, &m.Squat, &m.Deadlift)
	if errors.Is(err, sql.ErrNoRows) {
		return training.Maxima{}, nil
	}
	if err != nil {
		return training.Maxima{}, fmt.Errorf("ошибка загрузки максимумов пользователя %d: %w", userID, err)
	}
	return m, nil
}

// Save сохраняет или заменяет максимумы пользователя
func (r *MaximaRepository) Save(ctx context.Context, userID int64, m training.Maxima) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (user_id, bench_press, squat, deadlift)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE SET
			bench_press = excluded.bench_press,
			squat       = excluded.squat,
			deadlift    = excluded.deadlift`,
		userID, m.BenchPress, m.Squat, m.Deadlift)
	if err != nil {
		return fmt.Errorf("ошибка сохранения максимумов пользователя %d: %w", userID, err)
	}
	return nil
}

// Delete удаляет максимумы пользователя
func (r *MaximaRepository) Delete(ctx context.Context, userID int64) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM users WHERE user_id = $1", userID); err != nil {
		return fmt.Errorf("ошибка очистки максимумов пользователя %d: %w", userID, err)
	}
	return nil
}
