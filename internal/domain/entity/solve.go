package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// SolveRecord — результат успешного решения
type SolveRecord struct {
	ID        string    // идентификатор попытки
	Facelets  string    // строка нотации, отправленная солверу
	Solution  string    // последовательность ходов
	CreatedAt time.Time // время решения
}

// NewSolveRecord создаёт запись с новым идентификатором
func NewSolveRecord(facelets, solution string) *SolveRecord {
	return &SolveRecord{
		ID:        uuid.NewString(),
		Facelets:  facelets,
		Solution:  strings.TrimSpace(solution),
		CreatedAt: time.Now().UTC(),
	}
}

// Moves разбивает решение на отдельные ходы
func (r *SolveRecord) Moves() []string {
	return strings.Fields(r.Solution)
}
