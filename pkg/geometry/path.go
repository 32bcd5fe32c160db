package geometry

import (
	"math"
	"strconv"
	"strings"
)

// Op はパスコマンドの種類です。
type Op uint8

const (
	MoveTo  Op = iota
	LineTo     // (x, y)
	QuadTo     // (cx, cy, x, y)
	CubicTo    // (cx1, cy1, cx2, cy2, x, y)
	ArcTo      // (rx, ry, rotation, largeArc, sweep, x, y)
	Close
)

// svgLetters は Op に対応する SVG パスデータの命令文字なのだ。
var svgLetters = [...]string{
	MoveTo:  "M",
	LineTo:  "L",
	QuadTo:  "Q",
	CubicTo: "C",
	ArcTo:   "A",
	Close:   "Z",
}

// argCounts は Op ごとの引数の数です。
var argCounts = [...]int{
	MoveTo:  2,
	LineTo:  2,
	QuadTo:  4,
	CubicTo: 6,
	ArcTo:   7,
	Close:   0,
}

// Command は1つの描画命令です。未使用の Data はゼロのままにします。
type Command struct {
	Op   Op
	Data [7]float64
}

// Args は Op が実際に使う引数だけを返します。
func (c Command) Args() []float64 {
	return c.Data[:argCounts[c.Op]]
}

// EndPoint は命令の終点を返します。Close は終点を持たないため false を返すのだ。
func (c Command) EndPoint() (Point, bool) {
	n := argCounts[c.Op]
	if n == 0 {
		return Point{}, false
	}
	return Point{X: c.Data[n-2], Y: c.Data[n-1]}, true
}

// Path は閉じた輪郭を表す描画命令の列です。
type Path struct {
	Cmds []Command
}

func (p *Path) MoveTo(x, y float64) {
	p.Cmds = append(p.Cmds, Command{Op: MoveTo, Data: [7]float64{x, y}})
}

func (p *Path) LineTo(x, y float64) {
	p.Cmds = append(p.Cmds, Command{Op: LineTo, Data: [7]float64{x, y}})
}

func (p *Path) QuadTo(cx, cy, x, y float64) {
	p.Cmds = append(p.Cmds, Command{Op: QuadTo, Data: [7]float64{cx, cy, x, y}})
}

func (p *Path) CubicTo(cx1, cy1, cx2, cy2, x, y float64) {
	p.Cmds = append(p.Cmds, Command{Op: CubicTo, Data: [7]float64{cx1, cy1, cx2, cy2, x, y}})
}

// ArcTo は SVG の楕円弧命令を追加します。largeArc と sweep は SVG のフラグと同じ意味です。
func (p *Path) ArcTo(rx, ry, rotation float64, largeArc, sweep bool, x, y float64) {
	p.Cmds = append(p.Cmds, Command{Op: ArcTo, Data: [7]float64{rx, ry, rotation, flag(largeArc), flag(sweep), x, y}})
}

func (p *Path) Close() { p.Cmds = append(p.Cmds, Command{Op: Close}) }

// Polyline は pts をつないだ閉じたパスを追加するのだ。
func (p *Path) Polyline(pts []Point) {
	if len(pts) == 0 {
		return
	}
	p.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		p.LineTo(pt.X, pt.Y)
	}
	p.Close()
}

func (p Path) IsEmpty() bool { return len(p.Cmds) == 0 }

// Start は最初の MoveTo の座標を返します。
func (p Path) Start() (Point, bool) {
	if len(p.Cmds) == 0 || p.Cmds[0].Op != MoveTo {
		return Point{}, false
	}
	return Point{X: p.Cmds[0].Data[0], Y: p.Cmds[0].Data[1]}, true
}

// End は最後に到達した座標を返します。末尾の Close は開始点へ戻ったものとして扱います。
func (p Path) End() (Point, bool) {
	for i := len(p.Cmds) - 1; i >= 0; i-- {
		c := p.Cmds[i]
		if c.Op == Close {
			return p.Start()
		}
		if pt, ok := c.EndPoint(); ok {
			return pt, true
		}
	}
	return Point{}, false
}

// IsClosed はパスが明示的に閉じているか、始点と終点が一致しているかを判定するのだ。
func (p Path) IsClosed() bool {
	if len(p.Cmds) == 0 {
		return false
	}
	if p.Cmds[len(p.Cmds)-1].Op == Close {
		return true
	}
	start, ok := p.Start()
	if !ok {
		return false
	}
	end, _ := p.End()
	return math.Abs(start.X-end.X) < 1e-9 && math.Abs(start.Y-end.Y) < 1e-9
}

// SubpathCount は MoveTo の数を返します。
func (p Path) SubpathCount() int {
	n := 0
	for _, c := range p.Cmds {
		if c.Op == MoveTo {
			n++
		}
	}
	return n
}

// Vertices は各命令の終点を順に返します（制御点は含みません）。
func (p Path) Vertices() []Point {
	pts := make([]Point, 0, len(p.Cmds))
	for _, c := range p.Cmds {
		if pt, ok := c.EndPoint(); ok {
			pts = append(pts, pt)
		}
	}
	return pts
}

// Bounds は外接矩形を返します。曲線は制御点を含めた範囲、
// 楕円弧は中心を求めて弧が通る上下左右の端点を含めた範囲なのだ（回転は 0 を前提とします）。
func (p Path) Bounds() Rect {
	var b Bounds
	var cur Point
	for _, c := range p.Cmds {
		switch c.Op {
		case QuadTo, CubicTo:
			n := argCounts[c.Op]
			for i := 0; i < n; i += 2 {
				b.Add(Point{X: c.Data[i], Y: c.Data[i+1]})
			}
		case ArcTo:
			for _, pt := range arcExtremes(cur, c) {
				b.Add(pt)
			}
		case MoveTo, LineTo:
			b.Add(Point{X: c.Data[0], Y: c.Data[1]})
		}
		if pt, ok := c.EndPoint(); ok {
			cur = pt
		}
	}
	return b.Rect()
}

// Translate は全ての座標を平行移動したパスを返します。弧の半径やフラグは変えません。
func (p Path) Translate(dx, dy float64) Path {
	out := Path{Cmds: make([]Command, len(p.Cmds))}
	for i, c := range p.Cmds {
		switch c.Op {
		case ArcTo:
			c.Data[5] += dx
			c.Data[6] += dy
		case Close:
		default:
			n := argCounts[c.Op]
			for j := 0; j < n; j += 2 {
				c.Data[j] += dx
				c.Data[j+1] += dy
			}
		}
		out.Cmds[i] = c
	}
	return out
}

// Clone はパスのディープコピーを返すのだ。
func (p Path) Clone() Path {
	if p.Cmds == nil {
		return Path{}
	}
	out := Path{Cmds: make([]Command, len(p.Cmds))}
	copy(out.Cmds, p.Cmds)
	return out
}

// String は SVG の d 属性として使えるパスデータを返します。数値は小数点以下3桁に丸めます。
func (p Path) String() string {
	var sb strings.Builder
	for i, c := range p.Cmds {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(svgLetters[c.Op])
		for _, v := range c.Args() {
			sb.WriteByte(' ')
			sb.WriteString(FormatNumber(v))
		}
	}
	return sb.String()
}

// FormatNumber は座標値を小数点以下3桁に丸めた最短表記にします。
func FormatNumber(v float64) string {
	r := math.Round(v*1000) / 1000
	if r == 0 {
		r = 0 // -0 を避ける
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

func flag(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// arcExtremes は楕円弧の終点と、弧が通過する 0・90・180・270 度の点を返します。
func arcExtremes(from Point, c Command) []Point {
	rx, ry := math.Abs(c.Data[0]), math.Abs(c.Data[1])
	largeArc, sweep := c.Data[3] != 0, c.Data[4] != 0
	to := Point{X: c.Data[5], Y: c.Data[6]}
	out := []Point{to}
	if rx == 0 || ry == 0 || from == to {
		return out
	}

	hx, hy := (from.X-to.X)/2, (from.Y-to.Y)/2
	if lambda := hx*hx/(rx*rx) + hy*hy/(ry*ry); lambda > 1 {
		s := math.Sqrt(lambda)
		rx, ry = rx*s, ry*s
	}
	num := rx*rx*ry*ry - rx*rx*hy*hy - ry*ry*hx*hx
	den := rx*rx*hy*hy + ry*ry*hx*hx
	coef := math.Sqrt(math.Max(0, num/den))
	if largeArc == sweep {
		coef = -coef
	}
	cx := coef*rx*hy/ry + (from.X+to.X)/2
	cy := -coef*ry*hx/rx + (from.Y+to.Y)/2

	ux, uy := (hx-(cx-(from.X+to.X)/2))/rx, (hy-(cy-(from.Y+to.Y)/2))/ry
	vx, vy := (-hx-(cx-(from.X+to.X)/2))/rx, (-hy-(cy-(from.Y+to.Y)/2))/ry
	start := math.Atan2(uy, ux)
	delta := math.Atan2(ux*vy-uy*vx, ux*vx+uy*vy)
	if sweep && delta < 0 {
		delta += 2 * math.Pi
	} else if !sweep && delta > 0 {
		delta -= 2 * math.Pi
	}

	lo, hi := start, start+delta
	if lo > hi {
		lo, hi = hi, lo
	}
	const quarter = math.Pi / 2
	for k := math.Ceil(lo / quarter); k*quarter <= hi; k++ {
		a := k * quarter
		out = append(out, Point{X: cx + rx*math.Cos(a), Y: cy + ry*math.Sin(a)})
	}
	return out
}
