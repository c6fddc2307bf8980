package app

import (
	"context"
	"errors"
	"image"
	"io"

	"cube-scanner/internal/domain/entity"
)

// solvedCube возвращает собранный кубик в цветах палитры по умолчанию
func solvedCube() entity.CubeState {
	p := entity.DefaultPalette()
	cube := entity.NewCubeState()
	for _, e := range p.Entries() {
		cube[e.Name] = entity.UniformFace(e.Color)
	}
	return cube
}

// scrambledCube — собранный кубик с двумя переставленными наклейками:
// счёт цветов верный, но кубик не собран.
func scrambledCube() entity.CubeState {
	cube := solvedCube()
	white, red := cube[entity.White], cube[entity.Red]
	white[0], red[0] = red[0], white[0]
	cube[entity.White], cube[entity.Red] = white, red
	return cube
}

func paletteColor(name entity.ColorName) entity.Color {
	c, _ := entity.DefaultPalette().Lookup(name)
	return c
}

type fakeSolver struct {
	solution string
	err      error
	calls    []string
}

func (f *fakeSolver) Solve(ctx context.Context, facelets string) (string, error) {
	f.calls = append(f.calls, facelets)
	return f.solution, f.err
}

type fakeTransport struct {
	sent [][]byte
	err  error
}

func (f *fakeTransport) Send(ctx context.Context, payload []byte) error {
	f.sent = append(f.sent, payload)
	return f.err
}

type fakeNotifier struct {
	texts []string
}

func (f *fakeNotifier) Notify(ctx context.Context, text string) error {
	f.texts = append(f.texts, text)
	return nil
}

// fakeDetector всегда находит одну и ту же сетку (или не находит ничего).
// failures первых вызовов возвращают ошибку.
type fakeDetector struct {
	regions  []entity.Region
	failures int
}

func (d *fakeDetector) Detect(ctx context.Context, frame image.Image) ([]entity.Region, error) {
	if d.failures > 0 {
		d.failures--
		return nil, errBoom
	}
	return d.regions, nil
}

func gridRegions() []entity.Region {
	out := make([]entity.Region, entity.StickersPerFace)
	for i := range out {
		out[i] = entity.Region{X: i, Width: 40, Height: 40}
	}
	return out
}

// fakeSampler отдаёт цвет по индексу области (Region.X)
type fakeSampler struct {
	colors entity.Face
}

func (s *fakeSampler) Sample(frame image.Image, region entity.Region) entity.Color {
	return s.colors[region.X]
}

// fakeCamera отдаёт frames кадров (-1 — бесконечно), перед этим failures
// раз не может прочитать кадр.
type fakeCamera struct {
	frames   int
	failures int
	read     int
	closed   bool
}

func (c *fakeCamera) Read(ctx context.Context) (image.Image, error) {
	if c.failures > 0 {
		c.failures--
		return nil, errBoom
	}
	if c.frames >= 0 && c.read >= c.frames {
		return nil, io.EOF
	}
	c.read++
	return image.NewRGBA(image.Rect(0, 0, 8, 8)), nil
}

func (c *fakeCamera) Close() error {
	c.closed = true
	return nil
}

type fakeDisplay struct {
	events   []entity.Event
	overlays []entity.Overlay
	showErr  error
	closed   bool
}

func (d *fakeDisplay) Show(frame image.Image, overlay entity.Overlay) error {
	d.overlays = append(d.overlays, overlay)
	return d.showErr
}

func (d *fakeDisplay) PollEvent() entity.Event {
	if len(d.events) == 0 {
		return entity.EventNone
	}
	ev := d.events[0]
	d.events = d.events[1:]
	return ev
}

func (d *fakeDisplay) Close() error {
	d.closed = true
	return nil
}

var errBoom = errors.New("boom")
