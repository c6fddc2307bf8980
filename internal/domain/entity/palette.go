package entity

import "fmt"

// ColorName имя одного из шести цветов кубика
type ColorName string

const (
	Red    ColorName = "red"
	Orange ColorName = "orange"
	Blue   ColorName = "blue"
	Green  ColorName = "green"
	White  ColorName = "white"
	Yellow ColorName = "yellow"
)

// PaletteOrder — порядок обхода палитры. При равных расстояниях побеждает
// цвет, стоящий раньше.
var PaletteOrder = [6]ColorName{Red, Orange, Blue, Green, White, Yellow}

// Notation возвращает букву грани в нотации солвера (URFDLB).
func (n ColorName) Notation() (byte, bool) {
	switch n {
	case White:
		return 'U', true
	case Red:
		return 'R', true
	case Green:
		return 'F', true
	case Yellow:
		return 'D', true
	case Orange:
		return 'L', true
	case Blue:
		return 'B', true
	}
	return 0, false
}

// Valid сообщает, входит ли имя в палитру
func (n ColorName) Valid() bool {
	_, ok := n.Notation()
	return ok
}

// PaletteEntry — именованный эталонный цвет
type PaletteEntry struct {
	Name  ColorName
	Color Color
}

// Palette хранит ровно шесть эталонных цветов. Значимый тип: замена палитры
// происходит присваиванием целиком.
type Palette struct {
	entries  [6]PaletteEntry
	distance DistanceFunc
}

var defaultColors = map[ColorName]Color{
	Red:    {R: 255, G: 0, B: 0},
	Orange: {R: 255, G: 165, B: 0},
	Blue:   {R: 0, G: 0, B: 255},
	Green:  {R: 0, G: 255, B: 0},
	White:  {R: 255, G: 255, B: 255},
	Yellow: {R: 255, G: 255, B: 0},
}

// DefaultPalette возвращает палитру по умолчанию с евклидовой метрикой.
func DefaultPalette() Palette {
	p, _ := NewPalette(defaultColors, EuclideanDistance)
	return p
}

// NewPalette собирает палитру. Требуются все шесть цветов.
func NewPalette(colors map[ColorName]Color, distance DistanceFunc) (Palette, error) {
	if distance == nil {
		distance = EuclideanDistance
	}

	var p Palette
	for i, name := range PaletteOrder {
		c, ok := colors[name]
		if !ok {
			return Palette{}, fmt.Errorf("palette: missing color %q", name)
		}
		p.entries[i] = PaletteEntry{Name: name, Color: c}
	}
	p.distance = distance
	return p, nil
}

// WithDistance возвращает копию палитры с другой метрикой
func (p Palette) WithDistance(distance DistanceFunc) Palette {
	if distance != nil {
		p.distance = distance
	}
	return p
}

// Distance возвращает метрику палитры
func (p Palette) Distance() DistanceFunc {
	if p.distance == nil {
		return EuclideanDistance
	}
	return p.distance
}

// Entries возвращает записи палитры в порядке PaletteOrder.
func (p Palette) Entries() [6]PaletteEntry {
	return p.entries
}

// Colors возвращает палитру в виде map (для сохранения).
func (p Palette) Colors() map[ColorName]Color {
	out := make(map[ColorName]Color, len(p.entries))
	for _, e := range p.entries {
		out[e.Name] = e.Color
	}
	return out
}

// Lookup возвращает эталонный цвет по имени
func (p Palette) Lookup(name ColorName) (Color, bool) {
	for _, e := range p.entries {
		if e.Name == name {
			return e.Color, true
		}
	}
	return Color{}, false
}

// Classify находит ближайший к образцу цвет палитры.
func (p Palette) Classify(sample Color) PaletteEntry {
	distance := p.Distance()
	best := p.entries[0]
	bestDist := distance(sample, best.Color)
	for _, e := range p.entries[1:] {
		// строгое сравнение: при равенстве остаётся более ранняя запись
		if d := distance(sample, e.Color); d < bestDist {
			best, bestDist = e, d
		}
	}
	return best
}
