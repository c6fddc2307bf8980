package port

import "context"

// Solver внешний солвер: строка нотации на входе, ходы на выходе
type Solver interface {
	Solve(ctx context.Context, facelets string) (string, error)
}
