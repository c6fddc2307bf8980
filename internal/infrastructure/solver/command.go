package solver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"cube-scanner/internal/domain/entity"
	"cube-scanner/internal/domain/port"
)

var faceletPattern = regexp.MustCompile(`^[URFDLB]{54}$`)

var movePattern = regexp.MustCompile(`^[URFDLB]['2]?$`)

// CommandSolver вызывает внешний солвер (совместимый с kociemba CLI):
// строка нотации передаётся последним аргументом, ходы читаются из stdout.
type CommandSolver struct {
	Command string
	Args    []string
}

// NewCommandSolver разбирает командную строку вида "kociemba" или
// "python3 -m kociemba".
func NewCommandSolver(cmdline string) (*CommandSolver, error) {
	fields := strings.Fields(cmdline)
	if len(fields) == 0 {
		return nil, errors.New("solver command is empty")
	}
	return &CommandSolver{Command: fields[0], Args: fields[1:]}, nil
}

// Solve возвращает последовательность ходов через пробел
func (s *CommandSolver) Solve(ctx context.Context, facelets string) (string, error) {
	if !faceletPattern.MatchString(facelets) {
		return "", fmt.Errorf("%w: malformed facelets %q", entity.ErrUnsolvable, facelets)
	}

	args := append(append([]string(nil), s.Args...), facelets)
	cmd := exec.CommandContext(ctx, s.Command, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", fmt.Errorf("%w: %s", entity.ErrUnsolvable, firstLine(stderr.String(), stdout.String()))
		}
		return "", fmt.Errorf("run solver: %w", err)
	}

	solution := strings.TrimSpace(stdout.String())
	for _, move := range strings.Fields(solution) {
		if !movePattern.MatchString(move) {
			return "", fmt.Errorf("%w: %s", entity.ErrUnsolvable, firstLine(solution))
		}
	}
	return solution, nil
}

func firstLine(candidates ...string) string {
	for _, c := range candidates {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if i := strings.IndexByte(c, '\n'); i >= 0 {
			return c[:i]
		}
		return c
	}
	return "solver failed"
}

// Проверка реализации интерфейса
var _ port.Solver = (*CommandSolver)(nil)
