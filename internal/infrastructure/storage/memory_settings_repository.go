package storage

import (
	"context"
	"sync"

	"cube-scanner/internal/domain/entity"
	"cube-scanner/internal/domain/port"
)

// MemorySettingsRepository in-memory хранилище настроек
type MemorySettingsRepository struct {
	mu      sync.RWMutex
	cube    entity.CubeState
	palette map[entity.ColorName]entity.Color
	locale  string
	solves  []*entity.SolveRecord
}

// NewMemorySettingsRepository создаёт новое in-memory хранилище
func NewMemorySettingsRepository() *MemorySettingsRepository {
	return &MemorySettingsRepository{}
}

// LoadCube возвращает копию сохранённого состояния
func (r *MemorySettingsRepository) LoadCube(ctx context.Context) (entity.CubeState, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.cube == nil {
		return nil, false, nil
	}
	return r.cube.Clone(), true, nil
}

// SaveCube сохраняет копию состояния
func (r *MemorySettingsRepository) SaveCube(ctx context.Context, cube entity.CubeState) error {
	r.mu.Lock()
	r.cube = cube.Clone()
	r.mu.Unlock()

	return nil
}

// LoadPalette возвращает палитру, только если сохранены все шесть цветов
func (r *MemorySettingsRepository) LoadPalette(ctx context.Context) (map[entity.ColorName]entity.Color, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.palette) != entity.FacesPerCube {
		return nil, false, nil
	}

	out := make(map[entity.ColorName]entity.Color, len(r.palette))
	for name, c := range r.palette {
		out[name] = c
	}
	return out, true, nil
}

// SavePalette сохраняет палитру
func (r *MemorySettingsRepository) SavePalette(ctx context.Context, palette entity.Palette) error {
	r.mu.Lock()
	r.palette = palette.Colors()
	r.mu.Unlock()

	return nil
}

// Locale возвращает сохранённую локаль
func (r *MemorySettingsRepository) Locale(ctx context.Context) (string, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.locale, r.locale != "", nil
}

// SetLocale сохраняет локаль
func (r *MemorySettingsRepository) SetLocale(ctx context.Context, locale string) error {
	r.mu.Lock()
	r.locale = locale
	r.mu.Unlock()

	return nil
}

// SaveSolve добавляет запись в историю
func (r *MemorySettingsRepository) SaveSolve(ctx context.Context, record *entity.SolveRecord) error {
	r.mu.Lock()
	copied := *record
	r.solves = append(r.solves, &copied)
	r.mu.Unlock()

	return nil
}

// Solves возвращает историю решений
func (r *MemorySettingsRepository) Solves() []*entity.SolveRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.SolveRecord, len(r.solves))
	copy(out, r.solves)
	return out
}

// Проверка реализации интерфейса
var _ port.SettingsRepository = (*MemorySettingsRepository)(nil)
