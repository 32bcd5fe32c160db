package bubble

import (
	"math"

	"github.com/shouni/go-comic-kit/pkg/geometry"
)

const (
	maxTailBaseWidth = 40.0
	tailBaseRatio    = 0.4
	tailSkew         = 10.0
)

// tailGeometry はしっぽの付け根と先端を表す共通の前処理結果です。
type tailGeometry struct {
	placement Placement
	offset    float64 // 丸め済みの offset（%）
	base      geometry.Point
	tip       geometry.Point
	baseWidth float64
}

// halfWidth は付け根の半幅です。
func (t tailGeometry) halfWidth() float64 {
	return t.baseWidth / 2
}

// along は付け根の中心を辺に沿った座標で返すのだ（上下辺なら x、左右辺なら y）。
func (t tailGeometry) along() float64 {
	if t.placement.horizontal() {
		return t.base.X
	}
	return t.base.Y
}

// clampOffset は offset を角から離れた [10, 90] に収めます。
func clampOffset(offset float64) float64 {
	if math.IsNaN(offset) {
		return DefaultTailOffset
	}
	return geometry.Clamp(offset, minTailOffset, maxTailOffset)
}

// clampLength は長さを 0 以上の有限値にします。NaN や無限大は 0 として扱うのだ。
func clampLength(length float64) float64 {
	if math.IsNaN(length) || math.IsInf(length, 0) || length < 0 {
		return 0
	}
	return length
}

// computeTail は辺・offset・長さから付け根と先端を求めます。
// 先端は辺の法線から ±10px ずらし、offset が 50 未満なら負方向、以上なら正方向に倒すのだ。
func computeTail(width, height float64, tail Tail) tailGeometry {
	placement := ParsePlacement(string(tail.Placement))
	offset := clampOffset(tail.Offset)
	length := clampLength(tail.Length)

	side := height
	if placement.horizontal() {
		side = width
	}
	t := tailGeometry{
		placement: placement,
		offset:    offset,
		baseWidth: math.Min(maxTailBaseWidth, side*tailBaseRatio),
	}

	skew := tailSkew
	if offset < 50 {
		skew = -tailSkew
	}

	switch placement {
	case PlacementTop:
		t.base = geometry.Point{X: width * offset / 100, Y: 0}
		t.tip = geometry.Point{X: t.base.X + skew, Y: -length}
	case PlacementLeft:
		t.base = geometry.Point{X: 0, Y: height * offset / 100}
		t.tip = geometry.Point{X: -length, Y: t.base.Y + skew}
	case PlacementRight:
		t.base = geometry.Point{X: width, Y: height * offset / 100}
		t.tip = geometry.Point{X: width + length, Y: t.base.Y + skew}
	default:
		t.base = geometry.Point{X: width * offset / 100, Y: height}
		t.tip = geometry.Point{X: t.base.X + skew, Y: height + length}
	}
	return t
}
