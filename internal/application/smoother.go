package app

import "cube-scanner/internal/domain/entity"

// SmoothingRounds — сколько кадров копится до голосования
const SmoothingRounds = 8

// Smoother гасит покадровые ошибки классификации (блики, смаз):
// по каждой плитке копит классифицированные цвета и, набрав буфер,
// выбирает самый частый.
type Smoother struct {
	capacity int
	buffers  [entity.StickersPerFace][]entity.Color
}

// NewSmoother создаёт сглаживатель с буфером заданной ёмкости
func NewSmoother(capacity int) *Smoother {
	if capacity <= 0 {
		capacity = SmoothingRounds
	}
	return &Smoother{capacity: capacity}
}

// Add добавляет цвет плитки. Если буфер заполнен, возвращает
// преобладающий цвет и очищает буфер.
func (s *Smoother) Add(index int, c entity.Color) (entity.Color, bool) {
	s.buffers[index] = append(s.buffers[index], c)
	if len(s.buffers[index]) < s.capacity {
		return entity.Color{}, false
	}

	winner := majority(s.buffers[index])
	s.buffers[index] = s.buffers[index][:0]
	return winner, true
}

// Reset очищает все буферы
func (s *Smoother) Reset() {
	for i := range s.buffers {
		s.buffers[i] = s.buffers[i][:0]
	}
}

// Pending возвращает число накопленных цветов плитки
func (s *Smoother) Pending(index int) int {
	return len(s.buffers[index])
}

// majority возвращает самый частый цвет; при равенстве — тот,
// что встретился раньше.
func majority(colors []entity.Color) entity.Color {
	counts := make(map[entity.Color]int, len(colors))
	var winner entity.Color
	best := 0
	for _, c := range colors {
		counts[c]++
	}
	for _, c := range colors {
		if counts[c] > best {
			winner, best = c, counts[c]
		}
	}
	return winner
}
