package geometry

import "math"

// Point は2次元座標なのだ。
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Lerp は p から q へ t の割合で補間した座標を返します。
func (p Point) Lerp(q Point, t float64) Point {
	return Point{X: p.X + (q.X-p.X)*t, Y: p.Y + (q.Y-p.Y)*t}
}

// Rect はページピクセル単位の軸平行な矩形です。
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Contains は other が r の内側（境界含む）にあるかを返します。
func (r Rect) Contains(other Rect) bool {
	return other.X >= r.X && other.Y >= r.Y && other.Right() <= r.Right() && other.Bottom() <= r.Bottom()
}

// Corners は左上から時計回りに四隅を返します。
func (r Rect) Corners() Polygon {
	return Polygon{
		{X: r.X, Y: r.Y},
		{X: r.Right(), Y: r.Y},
		{X: r.Right(), Y: r.Bottom()},
		{X: r.X, Y: r.Bottom()},
	}
}

// Clamp は v を [lo, hi] に収めます。lo > hi の場合は lo を優先します。
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Bounds は点を順に取り込みながら外接矩形を求める集計器なのだ。
type Bounds struct {
	minX, maxX, minY, maxY float64
	isSet                  bool
}

// Add は点を取り込み、外接矩形を更新します。
func (b *Bounds) Add(p Point) {
	if !b.isSet {
		b.minX, b.maxX = p.X, p.X
		b.minY, b.maxY = p.Y, p.Y
		b.isSet = true
		return
	}
	b.minX = math.Min(b.minX, p.X)
	b.maxX = math.Max(b.maxX, p.X)
	b.minY = math.Min(b.minY, p.Y)
	b.maxY = math.Max(b.maxY, p.Y)
}

func (b *Bounds) IsSet() bool { return b.isSet }

// Rect は集計結果を返します。点が1つも無い場合はゼロ値です。
func (b *Bounds) Rect() Rect {
	if !b.isSet {
		return Rect{}
	}
	return Rect{X: b.minX, Y: b.minY, Width: b.maxX - b.minX, Height: b.maxY - b.minY}
}
