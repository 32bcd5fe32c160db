package bubble

import "github.com/shouni/go-comic-kit/pkg/geometry"

const (
	cloudTailBulge = 20.0
)

// 考え事のしっぽの泡。付け根から先端へのベクトル上の位置と半径なのだ。
var thoughtDots = []struct {
	fraction float64
	radius   float64
}{
	{0.15, 8},
	{0.5, 5},
	{1.0, 3},
}

// cloudPath は各辺に1つずつ外側へ膨らむ2次曲線の山を持つ雲形を描きます。
// tail が nil でなければ該当辺の曲線を先端を通る2本の曲線に分割します。
func cloudPath(width, height float64, tail *tailGeometry) geometry.Path {
	startX, startY := width*0.1, height*0.2

	var p geometry.Path
	p.MoveTo(startX, startY)

	onSide := func(placement Placement) bool {
		return tail != nil && tail.placement == placement
	}

	// 上辺
	if onSide(PlacementTop) {
		p.QuadTo(tail.base.X-cloudTailBulge, -cloudTailBulge, tail.tip.X, tail.tip.Y)
		p.QuadTo(tail.base.X+cloudTailBulge, -cloudTailBulge, width*0.9, height*0.2)
	} else {
		p.QuadTo(width*0.5, -height*0.2, width*0.9, height*0.2)
	}

	// 右辺
	if onSide(PlacementRight) {
		p.QuadTo(width+cloudTailBulge, tail.base.Y-cloudTailBulge, tail.tip.X, tail.tip.Y)
		p.QuadTo(width+cloudTailBulge, tail.base.Y+cloudTailBulge, width*0.8, height*0.9)
	} else {
		p.QuadTo(width*1.15, height*0.5, width*0.8, height*0.9)
	}

	// 下辺
	if onSide(PlacementBottom) {
		p.QuadTo(tail.base.X+cloudTailBulge, height+cloudTailBulge, tail.tip.X, tail.tip.Y)
		p.QuadTo(tail.base.X-cloudTailBulge, height+cloudTailBulge, width*0.1, height*0.8)
	} else {
		p.QuadTo(width*0.5, height*1.2, width*0.1, height*0.8)
	}

	// 左辺
	if onSide(PlacementLeft) {
		p.QuadTo(-cloudTailBulge, tail.base.Y+cloudTailBulge, tail.tip.X, tail.tip.Y)
		p.QuadTo(-cloudTailBulge, tail.base.Y-cloudTailBulge, startX, startY)
	} else {
		p.QuadTo(-width*0.15, height*0.5, startX, startY)
	}

	p.Close()
	return p
}

// thoughtDecorations は付け根から先端に向かって小さくなる3つの泡を返します。
func thoughtDecorations(tail tailGeometry, paint Paint) []Decoration {
	out := make([]Decoration, 0, len(thoughtDots))
	for _, d := range thoughtDots {
		c := tail.base.Lerp(tail.tip, d.fraction)
		out = append(out, Decoration{
			CX:          c.X,
			CY:          c.Y,
			Radius:      d.radius,
			Fill:        paint.Fill,
			Stroke:      paint.Stroke,
			StrokeWidth: paint.StrokeWidth,
		})
	}
	return out
}
