package geometry

import "math"

// Polygon は頂点を順に並べた閉じた輪郭です。重なり判定は凸多角形を前提とします。
type Polygon []Point

// Bounds は外接矩形を返します。
func (pg Polygon) Bounds() Rect {
	var b Bounds
	for _, p := range pg {
		b.Add(p)
	}
	return b.Rect()
}

// Path は多角形を閉じたパスに変換します。
func (pg Polygon) Path() Path {
	var p Path
	p.Polyline(pg)
	return p
}

// Penetration は分離軸定理で2つの凸多角形の食い込み量を求めます。
// 戻り値が 0 以下なら接しているか離れており、正の値はいずれの軸でも重なっている最小幅なのだ。
func (pg Polygon) Penetration(other Polygon) float64 {
	if len(pg) < 2 || len(other) < 2 {
		return 0
	}
	depth := math.Inf(1)
	for _, poly := range []Polygon{pg, other} {
		for i := range poly {
			a := poly[i]
			b := poly[(i+1)%len(poly)]
			// 辺の法線を分離軸にする
			nx, ny := -(b.Y - a.Y), b.X-a.X
			length := math.Hypot(nx, ny)
			if length == 0 {
				continue
			}
			nx, ny = nx/length, ny/length
			minA, maxA := pg.project(nx, ny)
			minB, maxB := other.project(nx, ny)
			overlap := math.Min(maxA, maxB) - math.Max(minA, minB)
			if overlap < depth {
				depth = overlap
			}
			if depth <= 0 {
				return depth
			}
		}
	}
	if math.IsInf(depth, 1) {
		return 0
	}
	return depth
}

// Overlaps は食い込み量が tolerance を超える場合に true を返すのだ。
func (pg Polygon) Overlaps(other Polygon, tolerance float64) bool {
	return pg.Penetration(other) > tolerance
}

// Within は全頂点が rect の内側（境界含む、誤差 eps）にあるかを判定します。
func (pg Polygon) Within(rect Rect, eps float64) bool {
	for _, p := range pg {
		if p.X < rect.X-eps || p.X > rect.Right()+eps || p.Y < rect.Y-eps || p.Y > rect.Bottom()+eps {
			return false
		}
	}
	return true
}

func (pg Polygon) project(nx, ny float64) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, p := range pg {
		d := p.X*nx + p.Y*ny
		lo = math.Min(lo, d)
		hi = math.Max(hi, d)
	}
	return lo, hi
}
