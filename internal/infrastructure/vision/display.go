//go:build gocv
// +build gocv

package vision

import (
	"errors"
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"cube-scanner/internal/domain/entity"
	"cube-scanner/internal/domain/port"
)

const (
	keyEscape = 27
	keySpace  = 32
	pollDelay = 10 // мс, задаёт темп цикла
)

var (
	contourColor     = color.RGBA{R: 36, G: 255, B: 12, A: 255}
	shadowColor      = color.RGBA{A: 255}
	placeholderColor = color.RGBA{R: 64, G: 64, B: 64, A: 255}
	textColor        = color.RGBA{A: 255}
)

// WindowDisplay — окно OpenCV с наложением состояния сканирования
type WindowDisplay struct {
	window *gocv.Window
}

// NewWindowDisplay открывает окно с заданным заголовком.
func NewWindowDisplay(title string) (*WindowDisplay, error) {
	return &WindowDisplay{window: gocv.NewWindow(title)}, nil
}

// Show рисует кадр с наложением
func (d *WindowDisplay) Show(frame image.Image, overlay entity.Overlay) error {
	mat, err := gocv.ImageToMatRGB(frame)
	if err != nil {
		return err
	}
	defer mat.Close()
	if mat.Empty() {
		return errors.New("empty frame")
	}

	drawRegions(&mat, overlay)
	if overlay.Mode == entity.ModeCalibrating {
		drawCalibrated(&mat, overlay.Calibrated)
	} else {
		drawFace(&mat, overlay.Preview, previewOrigin(), stickerTileSize, stickerTileGap)
		drawFace(&mat, overlay.Snapshot, snapshotOrigin(), stickerTileSize, stickerTileGap)
		drawNet(&mat, overlay.Cube)
	}
	drawStatus(&mat, overlay.Status)

	d.window.IMShow(mat)
	return nil
}

// PollEvent ждёт нажатие и переводит его в событие
func (d *WindowDisplay) PollEvent() entity.Event {
	key := d.window.WaitKey(pollDelay)
	if !d.window.IsOpen() {
		return entity.EventQuit
	}
	return eventForKey(key & 0xff)
}

func (d *WindowDisplay) Close() error {
	return d.window.Close()
}

func eventForKey(key int) entity.Event {
	switch key {
	case keySpace:
		return entity.EventCapture
	case 's':
		return entity.EventSolve
	case 'r':
		return entity.EventReset
	case 'c':
		return entity.EventToggleCalibration
	case keyEscape, 'q':
		return entity.EventQuit
	}
	return entity.EventNone
}

func drawRegions(mat *gocv.Mat, overlay entity.Overlay) {
	regions := overlay.Regions
	if overlay.Mode == entity.ModeCalibrating && len(regions) > entity.CenterIndex {
		// при калибровке показываем только центральную наклейку
		regions = regions[entity.CenterIndex : entity.CenterIndex+1]
	}
	for _, r := range regions {
		rect := image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
		gocv.Rectangle(mat, rect, contourColor, 2)
	}
}

func drawTile(mat *gocv.Mat, rect image.Rectangle, fill color.RGBA) {
	gocv.Rectangle(mat, rect, shadowColor, -1)
	gocv.Rectangle(mat, rect.Inset(1), fill, -1)
}

func drawFace(mat *gocv.Mat, face entity.Face, origin image.Point, size, gap int) {
	tiles := faceTiles(origin, size, gap)
	for i, rect := range tiles {
		drawTile(mat, rect, rgba(face[i]))
	}
}

func drawNet(mat *gocv.Mat, cube entity.CubeState) {
	for name, origin := range netOrigins(image.Rect(0, 0, mat.Cols(), mat.Rows())) {
		face, ok := cube[name]
		for i, rect := range faceTiles(origin, miniTileSize, miniTileGap) {
			fill := placeholderColor
			if ok {
				fill = rgba(face[i])
			}
			drawTile(mat, rect, fill)
		}
	}
}

func drawCalibrated(mat *gocv.Mat, samples []entity.CalibrationSample) {
	for i, s := range samples {
		y := stickerOffset + stickerTileSize*i
		rect := image.Rect(90, y, 90+stickerTileSize, y+stickerTileSize)
		drawTile(mat, rect, rgba(s.Color))
		gocv.PutText(mat, string(s.Name), image.Pt(10, y+stickerTileSize/2), gocv.FontHersheyComplexSmall, 0.8, textColor, 1)
	}
}

func drawStatus(mat *gocv.Mat, lines []string) {
	for i, line := range lines {
		pt := image.Pt(stickerOffset, mat.Rows()-stickerOffset-18*(len(lines)-1-i))
		gocv.PutText(mat, line, pt, gocv.FontHersheyComplexSmall, 0.8, textColor, 1)
	}
}

func rgba(c entity.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// Проверка реализации интерфейса
var _ port.Display = (*WindowDisplay)(nil)
