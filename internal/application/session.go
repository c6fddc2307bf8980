package app

import (
	"errors"
	"fmt"

	"cube-scanner/internal/domain/entity"
)

// previewPlaceholder — цвет плиток превью до первого кадра
var previewPlaceholder = entity.Color{R: 255, G: 255, B: 255}

// Session хранит всё изменяемое состояние сканирования: превью, снимок,
// отсканированные грани, палитру и калибровку.
// Не предназначена для конкурентного использования: все вызовы идут из
// одного цикла обработки кадров.
type Session struct {
	palette     entity.Palette
	preview     entity.Face
	snapshot    entity.Face
	cube        entity.CubeState
	smoother    *Smoother
	mode        entity.ScanMode
	calibration *entity.CalibrationSet
}

// NewSession создаёт пустую сессию с заданной палитрой
func NewSession(palette entity.Palette) *Session {
	return &Session{
		palette:     palette,
		preview:     entity.UniformFace(previewPlaceholder),
		snapshot:    entity.UniformFace(previewPlaceholder),
		cube:        entity.NewCubeState(),
		smoother:    NewSmoother(SmoothingRounds),
		mode:        entity.ModeScanning,
		calibration: entity.NewCalibrationSet(),
	}
}

// Observe принимает девять сырых образцов текущего кадра построчно.
// Каждый образец сразу классифицируется и пишется в превью; по заполнении
// буфера плитки превью перезаписывается преобладающим цветом.
// В режиме калибровки превью не меняется.
func (s *Session) Observe(samples []entity.Color) error {
	if len(samples) != entity.StickersPerFace {
		return fmt.Errorf("expected %d samples, got %d", entity.StickersPerFace, len(samples))
	}
	if s.mode == entity.ModeCalibrating {
		return nil
	}

	for i, raw := range samples {
		closest := s.palette.Classify(raw).Color
		s.preview[i] = closest
		if winner, ok := s.smoother.Add(i, closest); ok {
			s.preview[i] = winner
		}
	}
	return nil
}

// Capture фиксирует превью как снимок и записывает грань по цвету центра,
// перезаписывая уже сохранённую.
func (s *Session) Capture() (entity.ColorName, entity.Face) {
	s.snapshot = s.preview
	name := s.palette.Classify(s.snapshot.Center()).Name
	s.cube[name] = s.snapshot
	return name, s.snapshot
}

// AutoCapture делает то же, что Capture, но не трогает уже записанную грань.
func (s *Session) AutoCapture() (entity.ColorName, bool) {
	name := s.palette.Classify(s.preview.Center()).Name
	if _, exists := s.cube[name]; exists {
		return name, false
	}
	s.snapshot = s.preview
	s.cube[name] = s.snapshot
	return name, true
}

// Reset очищает грани, превью, снимок и буферы сглаживания.
func (s *Session) Reset() {
	s.cube = entity.NewCubeState()
	s.preview = entity.UniformFace(previewPlaceholder)
	s.snapshot = entity.UniformFace(previewPlaceholder)
	s.smoother.Reset()
}

// Restore подставляет ранее сохранённые грани. Неизвестные имена граней
// отбрасываются.
func (s *Session) Restore(cube entity.CubeState) {
	restored := entity.NewCubeState()
	for name, face := range cube {
		if name.Valid() {
			restored[name] = face
		}
	}
	s.cube = restored
}

// ToggleCalibration переключает режим. Любой вход в калибровку начинает
// сбор образцов заново.
func (s *Session) ToggleCalibration() entity.ScanMode {
	s.calibration = entity.NewCalibrationSet()
	if s.mode == entity.ModeCalibrating {
		s.mode = entity.ModeScanning
	} else {
		s.mode = entity.ModeCalibrating
	}
	return s.mode
}

// Calibrate добавляет образец центральной наклейки. После шестого образца
// палитра заменяется целиком и возвращается done=true.
func (s *Session) Calibrate(sample entity.Color) (name entity.ColorName, done bool, err error) {
	if s.mode != entity.ModeCalibrating {
		return "", false, errors.New("session is not in calibration mode")
	}

	name, err = s.calibration.Add(sample)
	if err != nil {
		return "", false, err
	}

	palette, ok := s.calibration.Palette(s.palette.Distance())
	if !ok {
		return name, false, nil
	}
	s.palette = palette
	return name, true, nil
}

// Validate проверяет, что кубик можно отдавать солверу.
func (s *Session) Validate() error {
	if !s.cube.Complete() {
		return fmt.Errorf("%w: %d of %d faces scanned", entity.ErrScanIncomplete, len(s.cube), entity.FacesPerCube)
	}
	if !s.cube.ScannedSuccessfully(s.palette) {
		return fmt.Errorf("%w: color census does not match", entity.ErrScanIncomplete)
	}
	if s.cube.AlreadySolved(s.palette) {
		return entity.ErrAlreadySolved
	}
	return nil
}

// Notation возвращает строку нотации для солвера
func (s *Session) Notation() (string, error) {
	return s.cube.Notation(s.palette)
}

// Palette возвращает текущую палитру
func (s *Session) Palette() entity.Palette {
	return s.palette
}

// SetPalette заменяет палитру целиком
func (s *Session) SetPalette(p entity.Palette) {
	s.palette = p
}

// Cube возвращает копию отсканированных граней
func (s *Session) Cube() entity.CubeState {
	return s.cube.Clone()
}

// Preview возвращает текущее превью
func (s *Session) Preview() entity.Face {
	return s.preview
}

// Snapshot возвращает последний снимок
func (s *Session) Snapshot() entity.Face {
	return s.snapshot
}

// Mode возвращает текущий режим
func (s *Session) Mode() entity.ScanMode {
	return s.mode
}

// NextCalibrationColor возвращает цвет, который нужно показать следующим.
func (s *Session) NextCalibrationColor() (entity.ColorName, bool) {
	return s.calibration.Next()
}

// CalibrationSamples возвращает собранные образцы калибровки
func (s *Session) CalibrationSamples() []entity.CalibrationSample {
	return s.calibration.Samples()
}
