package port

import (
	"context"

	"cube-scanner/internal/domain/entity"
)

// SettingsRepository интерфейс хранилища настроек
type SettingsRepository interface {
	// LoadCube возвращает последнее сохранённое состояние кубика
	LoadCube(ctx context.Context) (entity.CubeState, bool, error)

	// SaveCube сохраняет состояние кубика
	SaveCube(ctx context.Context, cube entity.CubeState) error

	// LoadPalette возвращает сохранённые цвета палитры (только полный набор)
	LoadPalette(ctx context.Context) (map[entity.ColorName]entity.Color, bool, error)

	// SavePalette сохраняет палитру целиком
	SavePalette(ctx context.Context, palette entity.Palette) error

	// Locale возвращает сохранённую локаль
	Locale(ctx context.Context) (string, bool, error)

	// SetLocale сохраняет локаль
	SetLocale(ctx context.Context, locale string) error

	// SaveSolve сохраняет запись об успешном решении
	SaveSolve(ctx context.Context, record *entity.SolveRecord) error
}
