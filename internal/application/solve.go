package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"cube-scanner/internal/domain/entity"
	"cube-scanner/internal/domain/port"
	"cube-scanner/internal/i18n"
)

// SolveService проверяет отсканированный кубик, вызывает солвер и
// раздаёт результат: история, внешнее устройство, уведомления.
type SolveService struct {
	solver    port.Solver
	transport port.Transport
	notifiers []port.Notifier
	settings  port.SettingsRepository
	printer   *i18n.Printer
	normalize bool
}

// SolveOutput содержит запись о решении и строки для пользователя.
type SolveOutput struct {
	Record *entity.SolveRecord
	Lines  []string
}

// SolveOption настраивает SolveService
type SolveOption func(*SolveService)

// WithTransport включает отправку решения на внешнее устройство.
func WithTransport(t port.Transport) SolveOption {
	return func(s *SolveService) { s.transport = t }
}

// WithNotifier добавляет получателя уведомлений
func WithNotifier(n port.Notifier) SolveOption {
	return func(s *SolveService) {
		if n != nil {
			s.notifiers = append(s.notifiers, n)
		}
	}
}

// WithNormalize включает вывод ходов человеческими фразами
func WithNormalize(enabled bool) SolveOption {
	return func(s *SolveService) { s.normalize = enabled }
}

// NewSolveService создаёт сервис решения. settings может быть nil.
func NewSolveService(solver port.Solver, settings port.SettingsRepository, printer *i18n.Printer, opts ...SolveOption) *SolveService {
	if printer == nil {
		printer = i18n.New(i18n.DefaultLocale)
	}
	s := &SolveService{
		solver:   solver,
		settings: settings,
		printer:  printer,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Printer возвращает переводчик сервиса
func (s *SolveService) Printer() *i18n.Printer {
	return s.printer
}

// Solve решает отсканированный кубик сессии. При любой ошибке грани и
// палитра сессии не меняются; после успеха сессия сбрасывается.
func (s *SolveService) Solve(ctx context.Context, session *Session) (*SolveOutput, error) {
	if err := session.Validate(); err != nil {
		return nil, err
	}

	// сохраняем состояние до вызова солвера, чтобы пережить падение
	s.saveCube(ctx, session.Cube())

	facelets, err := session.Notation()
	if err != nil {
		return nil, err
	}

	if s.solver == nil {
		return nil, errors.New("solver is not configured")
	}

	solution, err := s.solver.Solve(ctx, facelets)
	if err != nil {
		if errors.Is(err, entity.ErrUnsolvable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", entity.ErrUnsolvable, err)
	}

	record := entity.NewSolveRecord(facelets, solution)
	if s.settings != nil {
		if err := s.settings.SaveSolve(ctx, record); err != nil {
			log.Printf("Failed to save solve %s: %v", record.ID, err)
		}
	}

	if s.transport != nil {
		if err := s.transport.Send(ctx, []byte(record.Solution)); err != nil {
			log.Printf("Failed to send solution to remote: %v", err)
		}
	}

	lines := s.Describe(record)
	s.notify(ctx, strings.Join(lines, "\n"))

	session.Reset()
	s.saveCube(ctx, session.Cube())

	return &SolveOutput{Record: record, Lines: lines}, nil
}

// Describe возвращает текст решения: исходное положение, число ходов,
// решение и, в нормализованном режиме, пошаговые фразы.
func (s *SolveService) Describe(record *entity.SolveRecord) []string {
	moves := record.Moves()
	lines := []string{
		s.printer.T(i18n.KeyStartingPosition),
		s.printer.T(i18n.KeyMoves, len(moves)),
		s.printer.T(i18n.KeySolution, record.Solution),
	}
	if !s.normalize {
		return lines
	}

	for i, move := range moves {
		text, err := s.printer.DescribeMove(move)
		if err != nil {
			text = move
		}
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, text))
	}
	return lines
}

// ErrorLines возвращает сообщение об ошибке для пользователя
func (s *SolveService) ErrorLines(err error) []string {
	lines := []string{s.printer.Error(err)}
	if errors.Is(err, entity.ErrScanIncomplete) || errors.Is(err, entity.ErrUnsolvable) {
		lines = append(lines, s.printer.T(i18n.KeyTryAgain))
	}
	return lines
}

func (s *SolveService) notify(ctx context.Context, text string) {
	for _, n := range s.notifiers {
		if err := n.Notify(ctx, text); err != nil {
			log.Printf("Failed to notify: %v", err)
		}
	}
}

func (s *SolveService) saveCube(ctx context.Context, cube entity.CubeState) {
	if s.settings == nil {
		return
	}
	if err := s.settings.SaveCube(ctx, cube); err != nil {
		log.Printf("Failed to save cube state: %v", err)
	}
}
