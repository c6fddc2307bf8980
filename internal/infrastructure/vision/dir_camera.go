package vision

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"cube-scanner/internal/domain/port"
)

// DirCamera воспроизводит сохранённые кадры из каталога в порядке имён.
// После последнего кадра Read возвращает io.EOF.
type DirCamera struct {
	paths []string
	next  int
}

// OpenDirCamera собирает PNG и JPEG файлы каталога.
func OpenDirCamera(dir string) (*DirCamera, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read frames dir: %w", err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".png", ".jpg", ".jpeg":
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no frames found in %s", dir)
	}
	sort.Strings(paths)

	return &DirCamera{paths: paths}, nil
}

// Read декодирует следующий кадр
func (c *DirCamera) Read(ctx context.Context) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if c.next >= len(c.paths) {
		return nil, io.EOF
	}

	path := c.paths[c.next]
	c.next++

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open frame: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode frame %s: %w", path, err)
	}
	return img, nil
}

func (c *DirCamera) Close() error {
	return nil
}

// Проверка реализации интерфейса
var _ port.Camera = (*DirCamera)(nil)
