// Package i18n переводит сообщения для пользователя (en, ru).
package i18n

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"cube-scanner/internal/domain/entity"
)

// DefaultLocale — локаль по умолчанию
const DefaultLocale = "en"

// Ключи сообщений
const (
	KeyScannedSides     = "scannedSides"
	KeyKeys             = "keys"
	KeyCalibrateSide    = "calibrate.side"
	KeyCalibrated       = "calibrate.done"
	KeyQuitCalibrate    = "calibrate.quit"
	KeyScanIncomplete   = "error.scanIncomplete"
	KeyAlreadySolved    = "error.alreadySolved"
	KeyUnsolvable       = "error.unsolvable"
	KeyTryAgain         = "pleaseTryAgain"
	KeyStartingPosition = "startingPosition"
	KeyMoves            = "moves"
	KeySolution         = "solution"
	KeyCaptured         = "captured"
	KeyErrorPrefix      = "error"
)

var supported = []language.Tag{language.English, language.Russian}

var matcher = language.NewMatcher(supported)

var catalogs = map[language.Tag]map[string]string{
	language.English: {
		KeyScannedSides:     "Scanned sides: %d/6",
		KeyKeys:             "capture: <SPACE>  (s)olve  (r)eset  (c)alibrate",
		KeyCalibrateSide:    "Please show the %s side",
		KeyCalibrated:       "Calibrated successfully",
		KeyQuitCalibrate:    "Press (c) to quit calibrate mode",
		KeyScanIncomplete:   "You haven't scanned all sides correctly",
		KeyAlreadySolved:    "Cube is already solved",
		KeyUnsolvable:       "The scanned cube cannot be solved",
		KeyTryAgain:         "Please try again",
		KeyStartingPosition: "Starting position: front side = green, top side = white",
		KeyMoves:            "Moves: %d",
		KeySolution:         "Solution: %s",
		KeyCaptured:         "Captured %s side",
		KeyErrorPrefix:      "Error",

		"color.red":    "red",
		"color.orange": "orange",
		"color.blue":   "blue",
		"color.green":  "green",
		"color.white":  "white",
		"color.yellow": "yellow",

		"side.U": "top",
		"side.D": "bottom",
		"side.F": "front",
		"side.B": "back",
		"side.L": "left",
		"side.R": "right",

		"move.cw":   "Turn the %s side a quarter turn clockwise",
		"move.ccw":  "Turn the %s side a quarter turn counterclockwise",
		"move.half": "Turn the %s side 180 degrees",
	},
	language.Russian: {
		KeyScannedSides:     "Отсканировано граней: %d/6",
		KeyKeys:             "снимок: <ПРОБЕЛ>  (s) решить  (r) сброс  (c) калибровка",
		KeyCalibrateSide:    "Покажите грань с центром цвета «%s»",
		KeyCalibrated:       "Калибровка завершена",
		KeyQuitCalibrate:    "Нажмите (c), чтобы выйти из калибровки",
		KeyScanIncomplete:   "Не все грани отсканированы правильно",
		KeyAlreadySolved:    "Кубик уже собран",
		KeyUnsolvable:       "Отсканированный кубик невозможно собрать",
		KeyTryAgain:         "Попробуйте ещё раз",
		KeyStartingPosition: "Исходное положение: спереди зелёный центр, сверху белый",
		KeyMoves:            "Ходов: %d",
		KeySolution:         "Решение: %s",
		KeyCaptured:         "Грань «%s» сохранена",
		KeyErrorPrefix:      "Ошибка",

		"color.red":    "красный",
		"color.orange": "оранжевый",
		"color.blue":   "синий",
		"color.green":  "зелёный",
		"color.white":  "белый",
		"color.yellow": "жёлтый",

		"side.U": "верхнюю",
		"side.D": "нижнюю",
		"side.F": "переднюю",
		"side.B": "заднюю",
		"side.L": "левую",
		"side.R": "правую",

		"move.cw":   "Поверните %s грань на четверть оборота по часовой стрелке",
		"move.ccw":  "Поверните %s грань на четверть оборота против часовой стрелки",
		"move.half": "Поверните %s грань на 180 градусов",
	},
}

func init() {
	for tag, msgs := range catalogs {
		for key, msg := range msgs {
			if err := message.SetString(tag, key, msg); err != nil {
				panic(fmt.Sprintf("i18n: register %s/%s: %v", tag, key, err))
			}
		}
	}
}

// Printer форматирует сообщения для одной локали
type Printer struct {
	tag     language.Tag
	printer *message.Printer
}

// New подбирает ближайшую поддерживаемую локаль; пустая строка даёт en.
func New(locale string) *Printer {
	tag := language.English
	if locale != "" {
		_, idx, _ := matcher.Match(language.Make(locale))
		tag = supported[idx]
	}
	return &Printer{tag: tag, printer: message.NewPrinter(tag)}
}

// Locale возвращает выбранную локаль (en, ru)
func (p *Printer) Locale() string {
	base, _ := p.tag.Base()
	return base.String()
}

// T возвращает переведённое сообщение
func (p *Printer) T(key string, args ...any) string {
	return p.printer.Sprintf(key, args...)
}

// Color возвращает название цвета
func (p *Printer) Color(name entity.ColorName) string {
	return p.T("color." + string(name))
}

// Error возвращает сообщение для ошибки решения
func (p *Printer) Error(err error) string {
	var key string
	switch {
	case err == nil:
		return ""
	case errors.Is(err, entity.ErrScanIncomplete):
		key = KeyScanIncomplete
	case errors.Is(err, entity.ErrAlreadySolved):
		key = KeyAlreadySolved
	case errors.Is(err, entity.ErrUnsolvable):
		key = KeyUnsolvable
	default:
		return fmt.Sprintf("[%s] %v", p.T(KeyErrorPrefix), err)
	}
	return fmt.Sprintf("[%s] %s", p.T(KeyErrorPrefix), p.T(key))
}

// DescribeMove переводит ход вида R, R' или R2 в человеческую фразу.
func (p *Printer) DescribeMove(move string) (string, error) {
	move = strings.TrimSpace(move)
	if move == "" || !strings.Contains("UDFBLR", move[:1]) {
		return "", fmt.Errorf("unknown move %q", move)
	}

	side := p.T("side." + move[:1])
	switch move[1:] {
	case "":
		return p.T("move.cw", side), nil
	case "'":
		return p.T("move.ccw", side), nil
	case "2":
		return p.T("move.half", side), nil
	}
	return "", fmt.Errorf("unknown move %q", move)
}
