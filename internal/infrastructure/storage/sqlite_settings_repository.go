package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"cube-scanner/internal/domain/entity"
	"cube-scanner/internal/domain/port"
)

const (
	keyCube    = "cube"
	keyPalette = "palette"
	keyLocale  = "locale"
)

const schema = `
	CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	CREATE TABLE IF NOT EXISTS solves (
		solve_id TEXT PRIMARY KEY,
		facelets TEXT NOT NULL,
		solution TEXT NOT NULL,
		moves INTEGER NOT NULL,
		created_at TIMESTAMP NOT NULL
	);
`

// SQLiteSettingsRepository хранит настройки и историю решений в SQLite.
type SQLiteSettingsRepository struct {
	db *sql.DB
}

// OpenSQLiteSettingsRepository открывает (или создаёт) базу по пути
func OpenSQLiteSettingsRepository(path string) (*SQLiteSettingsRepository, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	_, _ = db.Exec("PRAGMA busy_timeout = 5000;")

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &SQLiteSettingsRepository{db: db}, nil
}

func (r *SQLiteSettingsRepository) Close() error {
	return r.db.Close()
}

// LoadCube возвращает последнее сохранённое состояние кубика
func (r *SQLiteSettingsRepository) LoadCube(ctx context.Context) (entity.CubeState, bool, error) {
	var cube entity.CubeState
	ok, err := r.load(ctx, keyCube, &cube)
	if err != nil || !ok {
		return nil, false, err
	}
	if cube == nil {
		cube = entity.NewCubeState()
	}
	return cube, true, nil
}

// SaveCube сохраняет состояние кубика
func (r *SQLiteSettingsRepository) SaveCube(ctx context.Context, cube entity.CubeState) error {
	return r.store(ctx, keyCube, cube)
}

// LoadPalette возвращает палитру, только если в ней все шесть цветов
func (r *SQLiteSettingsRepository) LoadPalette(ctx context.Context) (map[entity.ColorName]entity.Color, bool, error) {
	var colors map[entity.ColorName]entity.Color
	ok, err := r.load(ctx, keyPalette, &colors)
	if err != nil || !ok {
		return nil, false, err
	}
	for _, name := range entity.PaletteOrder {
		if _, found := colors[name]; !found {
			return nil, false, nil
		}
	}
	return colors, true, nil
}

// SavePalette сохраняет палитру
func (r *SQLiteSettingsRepository) SavePalette(ctx context.Context, palette entity.Palette) error {
	return r.store(ctx, keyPalette, palette.Colors())
}

// Locale возвращает сохранённую локаль
func (r *SQLiteSettingsRepository) Locale(ctx context.Context) (string, bool, error) {
	var locale string
	ok, err := r.load(ctx, keyLocale, &locale)
	if err != nil || !ok || locale == "" {
		return "", false, err
	}
	return locale, true, nil
}

// SetLocale сохраняет локаль
func (r *SQLiteSettingsRepository) SetLocale(ctx context.Context, locale string) error {
	return r.store(ctx, keyLocale, locale)
}

// SaveSolve добавляет запись в историю решений
func (r *SQLiteSettingsRepository) SaveSolve(ctx context.Context, record *entity.SolveRecord) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO solves (solve_id, facelets, solution, moves, created_at) VALUES (?, ?, ?, ?, ?)",
		record.ID, record.Facelets, record.Solution, len(record.Moves()), record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert solve: %w", err)
	}
	return nil
}

// RecentSolves возвращает последние решения, новые первыми
func (r *SQLiteSettingsRepository) RecentSolves(ctx context.Context, limit int) ([]*entity.SolveRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT solve_id, facelets, solution, created_at FROM solves ORDER BY created_at DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("query solves: %w", err)
	}
	defer rows.Close()

	var out []*entity.SolveRecord
	for rows.Next() {
		var rec entity.SolveRecord
		if err := rows.Scan(&rec.ID, &rec.Facelets, &rec.Solution, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan solve: %w", err)
		}
		rec.Solution = strings.TrimSpace(rec.Solution)
		out = append(out, &rec)
	}
	return out, rows.Err()
}

func (r *SQLiteSettingsRepository) load(ctx context.Context, key string, dst any) (bool, error) {
	var raw string
	err := r.db.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = ?", key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func (r *SQLiteSettingsRepository) store(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO settings (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, string(raw),
	)
	if err != nil {
		return fmt.Errorf("store %s: %w", key, err)
	}
	return nil
}

// Проверка реализации интерфейса
var _ port.SettingsRepository = (*SQLiteSettingsRepository)(nil)
