package bubble

import (
	"fmt"
	"strings"
)

// Shape は吹き出しの輪郭の種類です。
type Shape string

const (
	ShapeRectangle Shape = "rectangle"
	ShapeCircle    Shape = "circle"
	ShapeCloud     Shape = "cloud"
	ShapeThought   Shape = "thought"
	ShapeShout     Shape = "shout"
	ShapeStar      Shape = "star"
	ShapeElectric  Shape = "electric"
	ShapeWobbly    Shape = "wobbly"
)

// Shapes は対応している全ての形状を定義順に返します。
func Shapes() []Shape {
	return []Shape{
		ShapeRectangle, ShapeCircle, ShapeCloud, ShapeThought,
		ShapeShout, ShapeStar, ShapeElectric, ShapeWobbly,
	}
}

// IsKnown は対応済みの形状かどうかを返すのだ。
func (s Shape) IsKnown() bool {
	for _, known := range Shapes() {
		if s == known {
			return true
		}
	}
	return false
}

// ParseShape は文字列を Shape に変換します。未知の値もそのまま返し、描画側で空パスになります。
func ParseShape(s string) Shape {
	return Shape(strings.ToLower(strings.TrimSpace(s)))
}

// Placement はしっぽを出す辺です。
type Placement string

const (
	PlacementTop    Placement = "top"
	PlacementBottom Placement = "bottom"
	PlacementLeft   Placement = "left"
	PlacementRight  Placement = "right"
)

// ParsePlacement は文字列を Placement に変換します。不明な値は bottom になるのだ。
func ParsePlacement(s string) Placement {
	switch p := Placement(strings.ToLower(strings.TrimSpace(s))); p {
	case PlacementTop, PlacementBottom, PlacementLeft, PlacementRight:
		return p
	default:
		return PlacementBottom
	}
}

func (p Placement) horizontal() bool {
	return p == PlacementTop || p == PlacementBottom
}

const (
	DefaultTailOffset = 50.0
	DefaultTailLength = 50.0
	minTailOffset     = 10.0
	maxTailOffset     = 90.0
)

// Tail はしっぽの位置と長さを指定します。
type Tail struct {
	Placement Placement `json:"placement"`
	Offset    float64   `json:"offset"` // 辺に沿った位置（%）。使用前に [10, 90] に丸めます
	Length    float64   `json:"length"` // 辺から先端までのピクセル数
	Hidden    bool      `json:"hidden"`
}

// DefaultTail は下辺中央から 50px 伸びるしっぽを返します。
func DefaultTail() Tail {
	return Tail{
		Placement: PlacementBottom,
		Offset:    DefaultTailOffset,
		Length:    DefaultTailLength,
	}
}

// Paint は塗りと線の指定です。装飾の円にも同じ値を使うのだ。
type Paint struct {
	Fill        string  `json:"fill"`
	Stroke      string  `json:"stroke"`
	StrokeWidth float64 `json:"stroke_width"`
}

// DefaultPaint は白地に黒の 2px 線です。
func DefaultPaint() Paint {
	return Paint{Fill: "#ffffff", Stroke: "#000000", StrokeWidth: 2}
}

// orDefault は未指定の項目を既定値で埋めます。
func (p Paint) orDefault() Paint {
	def := DefaultPaint()
	if p.Fill == "" {
		p.Fill = def.Fill
	}
	if p.Stroke == "" {
		p.Stroke = def.Stroke
	}
	if p.StrokeWidth <= 0 {
		p.StrokeWidth = def.StrokeWidth
	}
	return p
}

// Style は吹き出しの形状・しっぽ・塗りをまとめたものです。
type Style struct {
	Shape Shape `json:"shape"`
	Tail  Tail  `json:"tail"`
	Paint Paint `json:"paint"`
}

// NewStyle は既定のしっぽと塗りを持つスタイルを返します。
func NewStyle(shape Shape) Style {
	return Style{Shape: shape, Tail: DefaultTail(), Paint: DefaultPaint()}
}

// cacheKey はサイズとスタイルの組をキャッシュ用の文字列にするのだ。
func (s Style) cacheKey(width, height float64) string {
	return fmt.Sprintf("%s|%g|%g|%s|%g|%g|%t|%s|%s|%g",
		s.Shape, width, height,
		s.Tail.Placement, s.Tail.Offset, s.Tail.Length, s.Tail.Hidden,
		s.Paint.Fill, s.Paint.Stroke, s.Paint.StrokeWidth)
}
