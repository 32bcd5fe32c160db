package bubble

import (
	"math"

	"github.com/shouni/go-comic-kit/pkg/geometry"
)

const cornerRadius = 8.0

// roundedRectPath は角丸矩形を時計回りに描きます。
// しっぽの辺では直線の途中に切り欠きを入れ、その両端を先端に結ぶのだ。
func roundedRectPath(width, height float64, tail *tailGeometry) geometry.Path {
	r := math.Min(cornerRadius, math.Min(width, height)/2)

	var p geometry.Path
	side := func(placement Placement, endX, endY float64) {
		if tail != nil && tail.placement == placement {
			from, to := rectNotch(width, height, r, tail)
			p.LineTo(from.X, from.Y)
			p.LineTo(tail.tip.X, tail.tip.Y)
			p.LineTo(to.X, to.Y)
		}
		p.LineTo(endX, endY)
	}

	p.MoveTo(r, 0)
	side(PlacementTop, width-r, 0)
	p.ArcTo(r, r, 0, false, true, width, r)
	side(PlacementRight, width, height-r)
	p.ArcTo(r, r, 0, false, true, width-r, height)
	side(PlacementBottom, r, height)
	p.ArcTo(r, r, 0, false, true, 0, height-r)
	side(PlacementLeft, 0, r)
	p.ArcTo(r, r, 0, false, true, r, 0)
	p.Close()
	return p
}

// rectNotch は切り欠きの両端を描画順に返します。中心は角丸にかからない範囲に収めます。
func rectNotch(width, height, r float64, tail *tailGeometry) (geometry.Point, geometry.Point) {
	half := tail.halfWidth()
	switch tail.placement {
	case PlacementTop:
		c := geometry.Clamp(tail.base.X, r+half, width-r-half)
		return geometry.Point{X: c - half, Y: 0}, geometry.Point{X: c + half, Y: 0}
	case PlacementRight:
		c := geometry.Clamp(tail.base.Y, r+half, height-r-half)
		return geometry.Point{X: width, Y: c - half}, geometry.Point{X: width, Y: c + half}
	case PlacementLeft:
		c := geometry.Clamp(tail.base.Y, r+half, height-r-half)
		return geometry.Point{X: 0, Y: c + half}, geometry.Point{X: 0, Y: c - half}
	default:
		c := geometry.Clamp(tail.base.X, r+half, width-r-half)
		return geometry.Point{X: c + half, Y: height}, geometry.Point{X: c - half, Y: height}
	}
}
