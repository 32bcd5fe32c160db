package bubble

import (
	"math"

	"github.com/shouni/go-comic-kit/pkg/geometry"
)

// PathGenerator は吹き出しの輪郭を計算するものです。
// Generator とキャッシュ付きの CachedGenerator がこれを満たします。
type PathGenerator interface {
	Generate(width, height float64, style Style) Result
}

// Generator は吹き出しの輪郭を計算する純粋な生成器です。
// 叫び・電撃の揺らぎは注入された乱数源から取り出すのだ。
type Generator struct {
	rnd geometry.RandomSource
}

// NewGenerator は Generator を返します。rnd が nil の場合は時刻で初期化した乱数源を使います。
func NewGenerator(rnd geometry.RandomSource) *Generator {
	if rnd == nil {
		rnd = geometry.NewRandomSource(0)
	}
	return &Generator{rnd: rnd}
}

// GenerateBubblePath は1回限りの Generator で輪郭を計算するヘルパーです。
func GenerateBubblePath(width, height float64, style Style, rnd geometry.RandomSource) Result {
	return NewGenerator(rnd).Generate(width, height, style)
}

// Generate は width×height の箱に収まる吹き出しの輪郭と装飾を返します。
// 未知の形状は空のパスを返し、決して panic しません。
func (g *Generator) Generate(width, height float64, style Style) Result {
	width, height = minSize(width), minSize(height)

	tail := computeTail(width, height, style.Tail)
	showTail := !style.Tail.Hidden

	// 輪郭に組み込むしっぽ。考え事は輪郭を変えない
	var inline *tailGeometry
	if showTail && style.Shape != ShapeThought {
		inline = &tail
	}

	var res Result
	switch style.Shape {
	case ShapeCircle:
		res.Path = ellipsePath(width, height, inline)
	case ShapeRectangle:
		res.Path = roundedRectPath(width, height, inline)
	case ShapeElectric:
		res.Path = jaggedPath(width, height, electricStep, electricJitter(height, g.rnd), inline)
	case ShapeWobbly:
		res.Path = jaggedPath(width, height, wobblyStep, wobblyJitter(height), inline)
	case ShapeStar:
		res.Path = spikyPath(width, height, starSpikes, nil, inline)
	case ShapeShout:
		res.Path = spikyPath(width, height, shoutSpikes, g.rnd, inline)
	case ShapeCloud:
		res.Path = cloudPath(width, height, inline)
	case ShapeThought:
		res.Path = cloudPath(width, height, nil)
		if showTail {
			res.Decorations = thoughtDecorations(tail, style.Paint.orDefault())
		}
	}
	return res
}

// minSize は幅・高さを 1px 以上に丸め、ゼロ除算を防ぐのだ。
func minSize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 1 {
		return 1
	}
	return v
}
