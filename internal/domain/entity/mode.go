package entity

// ScanMode режим работы сессии сканирования
type ScanMode string

const (
	ModeScanning    ScanMode = "scanning"    // Сканирование граней
	ModeCalibrating ScanMode = "calibrating" // Калибровка палитры
)
