package vision

import (
	"image"

	"cube-scanner/internal/domain/entity"
)

const (
	stickerTileSize = 32
	stickerTileGap  = 4
	stickerOffset   = 20

	miniTileSize = 14
	miniTileGap  = 2
	miniOffset   = 10
)

// netPositions — раскладка граней на развёртке 4x3:
//
//	  W
//	O G R B
//	  Y
var netPositions = map[entity.ColorName]image.Point{
	entity.White:  {X: 1, Y: 0},
	entity.Orange: {X: 0, Y: 1},
	entity.Green:  {X: 1, Y: 1},
	entity.Red:    {X: 2, Y: 1},
	entity.Blue:   {X: 3, Y: 1},
	entity.Yellow: {X: 1, Y: 2},
}

// faceTiles возвращает прямоугольники девяти плиток грани построчно.
func faceTiles(origin image.Point, size, gap int) [entity.StickersPerFace]image.Rectangle {
	var tiles [entity.StickersPerFace]image.Rectangle
	for i := range tiles {
		row, col := i/3, i%3
		x := origin.X + (size+gap)*col
		y := origin.Y + (size+gap)*row
		tiles[i] = image.Rect(x, y, x+size, y+size)
	}
	return tiles
}

// previewOrigin и snapshotOrigin — левые верхние углы превью и снимка.
func previewOrigin() image.Point {
	return image.Pt(stickerOffset, stickerOffset)
}

func snapshotOrigin() image.Point {
	return image.Pt(stickerOffset, stickerTileSize*3+stickerTileGap*2+stickerOffset*2)
}

// netOrigins возвращает углы граней развёртки в правом нижнем углу кадра.
func netOrigins(frame image.Rectangle) map[entity.ColorName]image.Point {
	sideGap := miniTileGap * 3
	sideSize := miniTileSize*3 + miniTileGap*2

	offsetX := frame.Dx() - sideSize*4 - sideGap*3 - miniOffset
	offsetY := frame.Dy() - sideSize*3 - sideGap*2 - miniOffset

	out := make(map[entity.ColorName]image.Point, len(netPositions))
	for name, pos := range netPositions {
		out[name] = image.Pt(
			offsetX+(sideSize+sideGap)*pos.X,
			offsetY+(sideSize+sideGap)*pos.Y,
		)
	}
	return out
}
