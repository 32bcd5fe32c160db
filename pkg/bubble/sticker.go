package bubble

import "github.com/shouni/go-comic-kit/pkg/geometry"

// StickerShape はステッカーの固定輪郭の種類です。
type StickerShape string

const (
	StickerStar  StickerShape = "star"
	StickerSharp StickerShape = "sharp"
	StickerCloud StickerShape = "cloud"
	StickerNone  StickerShape = "none"
)

// StickerViewBox はステッカーの輪郭が置かれる座標系です。
var StickerViewBox = geometry.Rect{Width: 200, Height: 150}

var (
	stickerStarPoints = []geometry.Point{
		{X: 100, Y: 10}, {X: 125, Y: 40}, {X: 160, Y: 20}, {X: 150, Y: 60},
		{X: 190, Y: 75}, {X: 150, Y: 90}, {X: 160, Y: 130}, {X: 125, Y: 110},
		{X: 100, Y: 140}, {X: 75, Y: 110}, {X: 40, Y: 130}, {X: 50, Y: 90},
		{X: 10, Y: 75}, {X: 50, Y: 60}, {X: 40, Y: 20}, {X: 75, Y: 40},
	}
	stickerSharpPoints = []geometry.Point{
		{X: 20, Y: 20}, {X: 80, Y: 10}, {X: 180, Y: 20}, {X: 160, Y: 75},
		{X: 190, Y: 130}, {X: 100, Y: 110}, {X: 20, Y: 130}, {X: 40, Y: 75},
	}
	// 雲の山は (制御点, 終点) の組なのだ
	stickerCloudCurves = [][4]float64{
		{20, 75, 20, 45},
		{20, 15, 50, 15},
		{60, 5, 80, 15},
		{100, 5, 120, 15},
		{150, 15, 150, 45},
		{150, 75, 120, 75},
		{100, 85, 80, 75},
		{60, 85, 50, 75},
	}
)

// StickerPath は StickerViewBox 上の固定輪郭を返します。none や未知の形状は空のパスです。
func StickerPath(shape StickerShape) geometry.Path {
	var p geometry.Path
	switch shape {
	case StickerStar:
		p.Polyline(stickerStarPoints)
	case StickerSharp:
		p.Polyline(stickerSharpPoints)
	case StickerCloud:
		p.MoveTo(50, 75)
		for _, q := range stickerCloudCurves {
			p.QuadTo(q[0], q[1], q[2], q[3])
		}
		p.Close()
	}
	return p
}
