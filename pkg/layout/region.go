package layout

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shouni/go-comic-kit/pkg/geometry"
)

// Kind はコマの形状です。
type Kind string

const (
	KindRectangle Kind = "rectangle"
	KindCircle    Kind = "circle"
	KindTriangle  Kind = "triangle"
	KindPolygon   Kind = "polygon"
)

// triangleVertices は三角形のコマの頂点（%）なのだ。
var triangleVertices = []geometry.Point{{X: 50, Y: 0}, {X: 100, Y: 100}, {X: 0, Y: 100}}

// Region はレイアウト生成器が配置する1つのコマです。
// Vertices は polygon の場合だけ使い、コマ自身の外接矩形に対する百分率（0〜100）で表します。
type Region struct {
	geometry.Rect
	Kind     Kind             `json:"kind"`
	Vertices []geometry.Point `json:"vertices,omitempty"`
}

// newRect は矩形のコマを作ります。
func newRect(x, y, w, h float64) Region {
	return Region{Rect: geometry.Rect{X: x, Y: y, Width: w, Height: h}, Kind: KindRectangle}
}

// newPolygon は頂点付きの多角形のコマを作ります。
func newPolygon(x, y, w, h float64, vertices []geometry.Point) Region {
	return Region{Rect: geometry.Rect{X: x, Y: y, Width: w, Height: h}, Kind: KindPolygon, Vertices: vertices}
}

// Contour はページ座標での輪郭を返すのだ。円は外接矩形で近似します。
func (r Region) Contour() geometry.Polygon {
	var pct []geometry.Point
	switch r.Kind {
	case KindPolygon:
		pct = r.Vertices
	case KindTriangle:
		pct = triangleVertices
	default:
		return r.Rect.Corners()
	}
	if len(pct) == 0 {
		return r.Rect.Corners()
	}

	out := make(geometry.Polygon, len(pct))
	for i, p := range pct {
		out[i] = geometry.Point{
			X: r.X + r.Width*p.X/100,
			Y: r.Y + r.Height*p.Y/100,
		}
	}
	return out
}

// VertexString は頂点を "x,y x,y" 形式（小数点以下1桁）で返します。
func (r Region) VertexString() string {
	return FormatVertices(r.Vertices)
}

// Clone は頂点スライスも複製したコピーを返します。
func (r Region) Clone() Region {
	if r.Vertices != nil {
		v := make([]geometry.Point, len(r.Vertices))
		copy(v, r.Vertices)
		r.Vertices = v
	}
	return r
}

// FormatVertices は頂点を "x,y x,y" 形式にします。
func FormatVertices(vertices []geometry.Point) string {
	parts := make([]string, len(vertices))
	for i, v := range vertices {
		parts[i] = strconv.FormatFloat(v.X, 'f', 1, 64) + "," + strconv.FormatFloat(v.Y, 'f', 1, 64)
	}
	return strings.Join(parts, " ")
}

// ParseVertices は "x,y x,y" 形式の頂点列を読み込みます。
func ParseVertices(s string) ([]geometry.Point, error) {
	fields := strings.Fields(s)
	out := make([]geometry.Point, 0, len(fields))
	for _, f := range fields {
		xs, ys, ok := strings.Cut(f, ",")
		if !ok {
			return nil, fmt.Errorf("頂点の形式が不正です (%q)", f)
		}
		x, err := strconv.ParseFloat(xs, 64)
		if err != nil {
			return nil, fmt.Errorf("頂点の x 座標を解析できません (%q): %w", f, err)
		}
		y, err := strconv.ParseFloat(ys, 64)
		if err != nil {
			return nil, fmt.Errorf("頂点の y 座標を解析できません (%q): %w", f, err)
		}
		out = append(out, geometry.Point{X: x, Y: y})
	}
	return out, nil
}

// mustVertices はテンプレート表の固定頂点用です。
func mustVertices(s string) []geometry.Point {
	v, err := ParseVertices(s)
	if err != nil {
		panic(err)
	}
	return v
}
