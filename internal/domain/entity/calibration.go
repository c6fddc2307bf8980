package entity

// CalibrationOrder — порядок, в котором пользователь показывает цвета при калибровке
var CalibrationOrder = [FacesPerCube]ColorName{Green, Red, Blue, Orange, White, Yellow}

// CalibrationSample — образец цвета, снятый с центральной наклейки
type CalibrationSample struct {
	Name  ColorName
	Color Color
}

// CalibrationSet накапливает образцы в порядке CalibrationOrder.
// Палитру можно получить только после сбора всех шести.
type CalibrationSet struct {
	samples []CalibrationSample
}

// NewCalibrationSet создаёт пустой набор
func NewCalibrationSet() *CalibrationSet {
	return &CalibrationSet{samples: make([]CalibrationSample, 0, FacesPerCube)}
}

// Next возвращает имя цвета, который нужно показать следующим.
func (c *CalibrationSet) Next() (ColorName, bool) {
	if c.Complete() {
		return "", false
	}
	return CalibrationOrder[len(c.samples)], true
}

// Add добавляет образец для текущего цвета и возвращает его имя.
func (c *CalibrationSet) Add(sample Color) (ColorName, error) {
	name, ok := c.Next()
	if !ok {
		return "", ErrCalibrationDone
	}
	c.samples = append(c.samples, CalibrationSample{Name: name, Color: sample})
	return name, nil
}

// Complete сообщает, что собраны все шесть цветов
func (c *CalibrationSet) Complete() bool {
	return len(c.samples) == len(CalibrationOrder)
}

// Samples возвращает копию собранных образцов
func (c *CalibrationSet) Samples() []CalibrationSample {
	out := make([]CalibrationSample, len(c.samples))
	copy(out, c.samples)
	return out
}

// Palette строит новую палитру из полного набора.
func (c *CalibrationSet) Palette(distance DistanceFunc) (Palette, bool) {
	if !c.Complete() {
		return Palette{}, false
	}

	colors := make(map[ColorName]Color, len(c.samples))
	for _, s := range c.samples {
		colors[s.Name] = s.Color
	}
	p, err := NewPalette(colors, distance)
	if err != nil {
		return Palette{}, false
	}
	return p, true
}
