package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Repository persists subscribers in SQLite
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new repository with SQLite
func NewRepository(dbPath string) (*Repository, error) {
	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	repo := &Repository{db: db}

	// Run migrations
	if err := repo.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return repo, nil
}

// Close closes the database connection
func (r *Repository) Close() error {
	return r.db.Close()
}

// migrate creates the database schema
func (r *Repository) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS subscribers (
			user_id VARCHAR(20) PRIMARY KEY,
			subscribed INTEGER NOT NULL DEFAULT 1,
			streak INTEGER NOT NULL DEFAULT 0,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
	}

	for _, migration := range migrations {
		if _, err := r.db.Exec(migration); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}

// Load returns every stored subscriber
func (r *Repository) Load() (map[string]Subscriber, error) {
	rows, err := r.db.Query(`SELECT user_id, subscribed, streak FROM subscribers`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	data := make(map[string]Subscriber)
	for rows.Next() {
		var (
			id  string
			sub Subscriber
		)
		if err := rows.Scan(&id, &sub.Subscribed, &sub.Streak); err != nil {
			return nil, err
		}
		data[id] = sub
	}

	return data, rows.Err()
}

// Save replaces the table contents with data in a single transaction
func (r *Repository) Save(data map[string]Subscriber) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if _, err := tx.Exec(`DELETE FROM subscribers`); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to clear subscribers: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO subscribers (user_id, subscribed, streak) VALUES (?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for id, sub := range data {
		if _, err := stmt.Exec(id, sub.Subscribed, sub.Streak); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert subscriber %s: %w", id, err)
		}
	}

	return tx.Commit()
}
