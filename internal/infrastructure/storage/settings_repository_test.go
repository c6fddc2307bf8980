package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"cube-scanner/internal/domain/entity"
	"cube-scanner/internal/domain/port"
)

func openSQLite(t *testing.T) *SQLiteSettingsRepository {
	t.Helper()
	repo, err := OpenSQLiteSettingsRepository(filepath.Join(t.TempDir(), "cube.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func repositories(t *testing.T) map[string]port.SettingsRepository {
	return map[string]port.SettingsRepository{
		"memory": NewMemorySettingsRepository(),
		"sqlite": openSQLite(t),
	}
}

func TestSettingsRepository_CubeRoundTrip(t *testing.T) {
	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, ok, err := repo.LoadCube(ctx)
			require.NoError(t, err)
			require.False(t, ok)

			cube := entity.NewCubeState()
			cube[entity.White] = entity.UniformFace(entity.Color{R: 250, G: 250, B: 250})
			cube[entity.Red] = entity.UniformFace(entity.Color{R: 200, G: 10, B: 10})
			require.NoError(t, repo.SaveCube(ctx, cube))

			got, ok, err := repo.LoadCube(ctx)
			require.NoError(t, err)
			require.True(t, ok)
			if diff := cmp.Diff(cube, got); diff != "" {
				t.Fatalf("cube mismatch (-want +got):\n%s", diff)
			}

			// пустое состояние тоже сохраняется
			require.NoError(t, repo.SaveCube(ctx, entity.NewCubeState()))
			got, ok, err = repo.LoadCube(ctx)
			require.NoError(t, err)
			require.True(t, ok)
			require.Empty(t, got)
		})
	}
}

func TestSettingsRepository_Palette(t *testing.T) {
	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, ok, err := repo.LoadPalette(ctx)
			require.NoError(t, err)
			require.False(t, ok)

			palette := entity.DefaultPalette()
			require.NoError(t, repo.SavePalette(ctx, palette))

			colors, ok, err := repo.LoadPalette(ctx)
			require.NoError(t, err)
			require.True(t, ok)
			require.Equal(t, palette.Colors(), colors)
		})
	}
}

func TestSettingsRepository_Locale(t *testing.T) {
	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, ok, err := repo.Locale(ctx)
			require.NoError(t, err)
			require.False(t, ok)

			require.NoError(t, repo.SetLocale(ctx, "ru"))
			require.NoError(t, repo.SetLocale(ctx, "en"))

			locale, ok, err := repo.Locale(ctx)
			require.NoError(t, err)
			require.True(t, ok)
			require.Equal(t, "en", locale)
		})
	}
}

func TestSQLiteSettingsRepository_SolveHistory(t *testing.T) {
	repo := openSQLite(t)
	ctx := context.Background()

	first := entity.NewSolveRecord("UUUUUUUUURRRRRRRRRFFFFFFFFFDDDDDDDDDLLLLLLLLLBBBBBBBBB", "R U R'")
	require.NoError(t, repo.SaveSolve(ctx, first))
	second := entity.NewSolveRecord(first.Facelets, "F2 ")
	second.CreatedAt = first.CreatedAt.Add(time.Second)
	require.NoError(t, repo.SaveSolve(ctx, second))

	got, err := repo.RecentSolves(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, second.ID, got[0].ID)
	require.Equal(t, "F2", got[0].Solution)
	require.Equal(t, []string{"R", "U", "R'"}, got[1].Moves())
}

func TestSQLiteSettingsRepository_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cube.db")
	ctx := context.Background()

	repo, err := OpenSQLiteSettingsRepository(path)
	require.NoError(t, err)
	require.NoError(t, repo.SetLocale(ctx, "ru"))
	require.NoError(t, repo.Close())

	repo, err = OpenSQLiteSettingsRepository(path)
	require.NoError(t, err)
	defer repo.Close()

	locale, ok, err := repo.Locale(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "ru", locale)
}

func TestMemorySettingsRepository_Solves(t *testing.T) {
	repo := NewMemorySettingsRepository()
	rec := entity.NewSolveRecord("x", "U")
	require.NoError(t, repo.SaveSolve(context.Background(), rec))

	rec.Solution = "changed"
	solves := repo.Solves()
	require.Len(t, solves, 1)
	require.Equal(t, "U", solves[0].Solution)
}
