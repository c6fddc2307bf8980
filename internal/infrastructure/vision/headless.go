package vision

import (
	"image"
	"log"
	"strings"

	"cube-scanner/internal/domain/entity"
	"cube-scanner/internal/domain/port"
)

// HeadlessDisplay — вывод без окна: пишет изменения статуса в лог и отдаёт
// заранее заданные события (для воспроизведения сохранённых кадров).
type HeadlessDisplay struct {
	events     []entity.Event
	lastStatus string
	frames     int
}

// NewHeadlessDisplay создаёт вывод с очередью событий
func NewHeadlessDisplay(events ...entity.Event) *HeadlessDisplay {
	return &HeadlessDisplay{events: events}
}

// Show пишет статус в лог, если он изменился
func (d *HeadlessDisplay) Show(frame image.Image, overlay entity.Overlay) error {
	_ = frame
	d.frames++
	status := strings.Join(overlay.Status, "; ")
	if status != d.lastStatus {
		log.Printf("frame %d: %s", d.frames, status)
		d.lastStatus = status
	}
	return nil
}

// PollEvent отдаёт следующее событие из очереди
func (d *HeadlessDisplay) PollEvent() entity.Event {
	if len(d.events) == 0 {
		return entity.EventNone
	}
	ev := d.events[0]
	d.events = d.events[1:]
	return ev
}

// Frames возвращает число показанных кадров
func (d *HeadlessDisplay) Frames() int {
	return d.frames
}

func (d *HeadlessDisplay) Close() error {
	return nil
}

// Проверка реализации интерфейса
var _ port.Display = (*HeadlessDisplay)(nil)
