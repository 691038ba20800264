package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// Repository содержит все репозитории
type Repository struct {
	Maxima *MaximaRepository
}

// New создаёт новый экземпляр Repository
func New(db *sql.DB) *Repository {
	return &Repository{
		Maxima: NewMaximaRepository(db),
	}
}

// Open открывает соединение с базой и проверяет его.
// driver: "postgres" или "sqlite3".
func Open(ctx context.Context, driver, dsn string) (*sql.DB, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия базы данных: %w", err)
	}
	if driver == "sqlite3" {
		// SQLite не поддерживает параллельную запись из нескольких соединений
		db.SetMaxOpenConns(1)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("база данных недоступна: %w", err)
	}
	return db, nil
}
