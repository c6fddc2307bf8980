package app

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"log"

	"cube-scanner/internal/domain/entity"
	"cube-scanner/internal/domain/port"
	"cube-scanner/internal/i18n"
)

// MaxReadFailures — сколько кадров подряд камера может не отдать,
// прежде чем цикл сочтёт её отключённой
const MaxReadFailures = 100

// FrameResult — что удалось найти на одном кадре
type FrameResult struct {
	Regions []entity.Region // 9 наклеек построчно или nil
	Samples []entity.Color  // сырые средние цвета наклеек
}

// Detected сообщает, найдена ли на кадре сетка
func (r FrameResult) Detected() bool {
	return len(r.Regions) == entity.StickersPerFace && len(r.Samples) == entity.StickersPerFace
}

// EventResult — итог обработки нажатия
type EventResult struct {
	Quit     bool
	Captured entity.ColorName
	Solve    *SolveOutput
	Err      error
}

// Scanner связывает детектор, сессию и сервис решения в один цикл
// обработки кадров.
type Scanner struct {
	detector port.GridDetector
	sampler  port.ColorSampler
	session  *Session
	solves   *SolveService
	settings port.SettingsRepository
	printer  *i18n.Printer
	autoscan bool
	messages []string
}

// NewScanner создаёт сканер. settings может быть nil.
func NewScanner(detector port.GridDetector, sampler port.ColorSampler, session *Session, solves *SolveService, settings port.SettingsRepository, autoscan bool) *Scanner {
	return &Scanner{
		detector: detector,
		sampler:  sampler,
		session:  session,
		solves:   solves,
		settings: settings,
		printer:  solves.Printer(),
		autoscan: autoscan,
	}
}

// Session возвращает сессию сканера
func (s *Scanner) Session() *Session {
	return s.session
}

// Restore поднимает сохранённые грани и палитру. Ошибки хранилища не
// мешают запуску.
func (s *Scanner) Restore(ctx context.Context) {
	if s.settings == nil {
		return
	}

	if colors, ok, err := s.settings.LoadPalette(ctx); err != nil {
		log.Printf("Failed to load palette: %v", err)
	} else if ok {
		palette, err := entity.NewPalette(colors, s.session.Palette().Distance())
		if err != nil {
			log.Printf("Stored palette is ignored: %v", err)
		} else {
			s.session.SetPalette(palette)
		}
	}

	if cube, ok, err := s.settings.LoadCube(ctx); err != nil {
		log.Printf("Failed to load cube state: %v", err)
	} else if ok {
		s.session.Restore(cube)
	}
}

// ProcessFrame ищет сетку, снимает цвета и обновляет превью. В режиме
// автосканирования грань записывается, как только сетка найдена.
func (s *Scanner) ProcessFrame(ctx context.Context, frame image.Image) (FrameResult, error) {
	regions, err := s.detector.Detect(ctx, frame)
	if err != nil {
		return FrameResult{}, fmt.Errorf("detect grid: %w", err)
	}
	if len(regions) != entity.StickersPerFace {
		return FrameResult{}, nil
	}

	result := FrameResult{Regions: regions, Samples: make([]entity.Color, len(regions))}
	for i, r := range regions {
		result.Samples[i] = s.sampler.Sample(frame, r)
	}

	if err := s.session.Observe(result.Samples); err != nil {
		return result, err
	}

	if s.autoscan && s.session.Mode() == entity.ModeScanning {
		if name, ok := s.session.AutoCapture(); ok {
			s.captured(ctx, name)
		}
	}
	return result, nil
}

// HandleEvent применяет нажатие к сессии. frame — результат последнего
// обработанного кадра.
func (s *Scanner) HandleEvent(ctx context.Context, ev entity.Event, frame FrameResult) EventResult {
	switch ev {
	case entity.EventQuit:
		return EventResult{Quit: true}

	case entity.EventCapture:
		if s.session.Mode() == entity.ModeCalibrating {
			return s.calibrate(ctx, frame)
		}
		name, _ := s.session.Capture()
		s.captured(ctx, name)
		return EventResult{Captured: name}

	case entity.EventSolve:
		if s.session.Mode() == entity.ModeCalibrating {
			return EventResult{}
		}
		out, err := s.solves.Solve(ctx, s.session)
		if err != nil {
			s.messages = s.solves.ErrorLines(err)
			s.logMessages()
			return EventResult{Err: err}
		}
		s.messages = out.Lines
		s.logMessages()
		return EventResult{Solve: out}

	case entity.EventReset:
		s.session.Reset()
		s.messages = nil
		s.saveCube(ctx)

	case entity.EventToggleCalibration:
		s.session.ToggleCalibration()
		s.messages = nil
	}
	return EventResult{}
}

// Overlay собирает то, что нужно нарисовать поверх кадра
func (s *Scanner) Overlay(frame FrameResult) entity.Overlay {
	overlay := entity.Overlay{
		Regions:    frame.Regions,
		Preview:    s.session.Preview(),
		Snapshot:   s.session.Snapshot(),
		Cube:       s.session.Cube(),
		Mode:       s.session.Mode(),
		Calibrated: s.session.CalibrationSamples(),
	}

	if s.session.Mode() == entity.ModeCalibrating {
		if next, ok := s.session.NextCalibrationColor(); ok {
			overlay.Status = append(overlay.Status, s.printer.T(i18n.KeyCalibrateSide, s.printer.Color(next)))
		} else {
			overlay.Status = append(overlay.Status, s.printer.T(i18n.KeyCalibrated), s.printer.T(i18n.KeyQuitCalibrate))
		}
		return overlay
	}

	overlay.Status = append(overlay.Status,
		s.printer.T(i18n.KeyScannedSides, len(overlay.Cube)),
		s.printer.T(i18n.KeyKeys),
	)
	overlay.Status = append(overlay.Status, s.messages...)
	return overlay
}

// Run крутит цикл: кадр, поиск сетки, отрисовка, нажатие. Камера и окно
// закрываются при любом выходе. Конец записи (io.EOF) и отмена контекста
// завершают цикл без ошибки. Непрочитанный кадр или ошибка детектора
// пропускаются; цикл останавливается только после MaxReadFailures
// неудачных чтений подряд.
func (s *Scanner) Run(ctx context.Context, camera port.Camera, display port.Display) error {
	defer func() {
		if err := display.Close(); err != nil {
			log.Printf("Failed to close display: %v", err)
		}
	}()
	defer func() {
		if err := camera.Close(); err != nil {
			log.Printf("Failed to close camera: %v", err)
		}
	}()

	failures := 0
	for {
		if ctx.Err() != nil {
			return nil
		}

		frame, err := camera.Read(ctx)
		if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
			return nil
		}
		if err != nil {
			failures++
			if failures >= MaxReadFailures {
				return fmt.Errorf("read frame: %d failures in a row: %w", failures, err)
			}
			log.Printf("Failed to read frame: %v", err)
			continue
		}
		failures = 0

		result, err := s.ProcessFrame(ctx, frame)
		if err != nil {
			// кадр всё равно показываем, чтобы окно отвечало на клавиши
			log.Printf("Failed to process frame: %v", err)
			result = FrameResult{}
		}

		if err := display.Show(frame, s.Overlay(result)); err != nil {
			return fmt.Errorf("show frame: %w", err)
		}

		if s.HandleEvent(ctx, display.PollEvent(), result).Quit {
			return nil
		}
	}
}

// calibrate снимает образец с центральной наклейки текущего кадра.
func (s *Scanner) calibrate(ctx context.Context, frame FrameResult) EventResult {
	if !frame.Detected() {
		return EventResult{}
	}

	name, done, err := s.session.Calibrate(frame.Samples[entity.CenterIndex])
	if err != nil {
		return EventResult{Err: err}
	}
	if done && s.settings != nil {
		if err := s.settings.SavePalette(ctx, s.session.Palette()); err != nil {
			log.Printf("Failed to save palette: %v", err)
		}
	}
	return EventResult{Captured: name}
}

func (s *Scanner) captured(ctx context.Context, name entity.ColorName) {
	s.messages = []string{s.printer.T(i18n.KeyCaptured, s.printer.Color(name))}
	s.saveCube(ctx)
}

func (s *Scanner) saveCube(ctx context.Context) {
	if s.settings == nil {
		return
	}
	if err := s.settings.SaveCube(ctx, s.session.Cube()); err != nil {
		log.Printf("Failed to save cube state: %v", err)
	}
}

func (s *Scanner) logMessages() {
	for _, line := range s.messages {
		log.Println(line)
	}
}
