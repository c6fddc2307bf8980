package entity

import (
	"fmt"
	"strings"
)

// FacesPerCube — число граней кубика
const FacesPerCube = 6

// NotationLength — длина строки нотации для солвера
const NotationLength = FacesPerCube * StickersPerFace

// NotationOrder — порядок граней в нотации (URFDLB). Солвер ожидает
// именно эту раскладку, менять нельзя.
var NotationOrder = [FacesPerCube]ColorName{White, Red, Green, Yellow, Orange, Blue}

// CubeState — отсканированные грани по имени цвета центральной наклейки.
type CubeState map[ColorName]Face

// NewCubeState создаёт пустое состояние
func NewCubeState() CubeState {
	return make(CubeState, FacesPerCube)
}

// Clone возвращает независимую копию состояния
func (s CubeState) Clone() CubeState {
	out := make(CubeState, len(s))
	for name, face := range s {
		out[name] = face
	}
	return out
}

// Complete сообщает, что отсканированы все шесть граней
func (s CubeState) Complete() bool {
	return len(s) == FacesPerCube
}

// Census считает, сколько раз каждый цвет палитры встречается среди наклеек.
func (s CubeState) Census(p Palette) map[ColorName]int {
	counts := make(map[ColorName]int, FacesPerCube)
	for _, face := range s {
		for _, c := range face {
			counts[p.Classify(c).Name]++
		}
	}
	return counts
}

// ScannedSuccessfully проверяет, что каждый из шести цветов встречается
// ровно девять раз.
func (s CubeState) ScannedSuccessfully(p Palette) bool {
	counts := s.Census(p)
	for _, e := range p.Entries() {
		if counts[e.Name] != StickersPerFace {
			return false
		}
	}
	return true
}

// AlreadySolved проверяет, что на каждой из шести граней все наклейки
// совпадают по цвету с центральной.
func (s CubeState) AlreadySolved(p Palette) bool {
	if !s.Complete() {
		return false
	}

	for _, face := range s {
		center := p.Classify(face.Center()).Name
		for _, c := range face {
			if p.Classify(c).Name != center {
				return false
			}
		}
	}
	return true
}

// Notation собирает 54-символьную строку для солвера.
func (s CubeState) Notation(p Palette) (string, error) {
	var b strings.Builder
	b.Grow(NotationLength)

	for _, side := range NotationOrder {
		face, ok := s[side]
		if !ok {
			return "", fmt.Errorf("%w: face %s is not scanned", ErrScanIncomplete, side)
		}
		for _, c := range face {
			letter, _ := p.Classify(c).Name.Notation()
			b.WriteByte(letter)
		}
	}
	return b.String(), nil
}
