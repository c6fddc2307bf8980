package entity

import "errors"

var (
	// ErrScanIncomplete — отсканированы не все грани или подсчёт цветов не сходится.
	ErrScanIncomplete = errors.New("cube scan is incomplete")
	// ErrAlreadySolved — все грани однотонны и совпадают с центром.
	ErrAlreadySolved = errors.New("cube is already solved")
	// ErrUnsolvable — солвер отверг строку нотации.
	ErrUnsolvable = errors.New("cube state is unsolvable or invalid")
	// ErrCameraUnavailable — камеру не удалось открыть.
	ErrCameraUnavailable = errors.New("camera is unavailable")
	// ErrCalibrationDone — все шесть цветов уже откалиброваны.
	ErrCalibrationDone = errors.New("calibration is already complete")
)
