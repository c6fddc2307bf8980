package entity

// Event — действие пользователя, полученное из окна
type Event int

const (
	EventNone              Event = iota // Нет нажатия
	EventCapture                        // Зафиксировать грань (или образец калибровки)
	EventSolve                          // Запустить решение
	EventReset                          // Сбросить состояние
	EventToggleCalibration              // Войти в калибровку или выйти из неё
	EventQuit                           // Выход
)

// Overlay — что нарисовать поверх кадра
type Overlay struct {
	Regions    []Region            // найденные наклейки
	Preview    Face                // текущее превью
	Snapshot   Face                // последний снимок
	Cube       CubeState           // отсканированные грани
	Mode       ScanMode            // режим сессии
	Calibrated []CalibrationSample // собранные образцы калибровки
	Status     []string            // строки статуса
}
