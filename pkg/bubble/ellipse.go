package bubble

import (
	"math"

	"github.com/shouni/go-comic-kit/pkg/geometry"
)

const (
	wedgeBaseSpread = 0.2
	wedgeSizeFactor = 20.0
)

// ellipsePath は外接矩形に内接する楕円を描きます。
// しっぽがある場合は付け根方向の小さな扇形を切り取り、先端への2本の直線で置き換えるのだ。
func ellipsePath(width, height float64, tail *tailGeometry) geometry.Path {
	rx, ry := width/2, height/2
	cx, cy := width/2, height/2

	var p geometry.Path
	if tail == nil {
		p.MoveTo(width, cy)
		p.ArcTo(rx, ry, 0, true, true, 0, cy)
		p.ArcTo(rx, ry, 0, true, true, width, cy)
		p.Close()
		return p
	}

	// 楕円のパラメータ角で付け根を表す
	baseT := math.Atan2((tail.base.Y-cy)/ry, (tail.base.X-cx)/rx)
	spread := wedgeBaseSpread + wedgeSizeFactor/math.Max(width, height)
	t1, t2 := baseT-spread, baseT+spread

	p1 := geometry.Point{X: cx + rx*math.Cos(t1), Y: cy + ry*math.Sin(t1)}
	p2 := geometry.Point{X: cx + rx*math.Cos(t2), Y: cy + ry*math.Sin(t2)}

	p.MoveTo(p2.X, p2.Y)
	p.ArcTo(rx, ry, 0, true, true, p1.X, p1.Y)
	p.LineTo(tail.tip.X, tail.tip.Y)
	p.Close()
	return p
}
