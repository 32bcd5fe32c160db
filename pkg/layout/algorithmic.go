package layout

import (
	"math"

	"github.com/shouni/go-comic-kit/pkg/geometry"
)

// Strategy はアルゴリズム生成の分割方式です。
type Strategy string

const (
	StrategyStack   Strategy = "stack"
	StrategyMasonry Strategy = "masonry"
	StrategySlanted Strategy = "slanted"
	StrategyGrid    Strategy = "grid"
)

const (
	// tallPageRatio 未満の縦長ページ（Webtoon）は帯を積むだけにするのだ。
	tallPageRatio = 0.6

	stackGap            = 40.0
	stackMaxVaried      = 6
	stackWeightMin      = 0.8
	stackWeightSpan     = 0.4
	masonryGap          = 15.0
	masonryAspect       = 1.2
	masonryRatioMin     = 0.3
	masonryRatioSpan    = 0.4
	slantedGap          = 15.0
	slantedTiltFraction = 0.3
	gridGap             = 15.0
)

// pageStrategies は縦長でないページで選べる方式です。
var pageStrategies = []Strategy{StrategyGrid, StrategyMasonry, StrategySlanted}

// ParseStrategy は文字列を Strategy に変換します。未知の値は false を返すのだ。
func ParseStrategy(s string) (Strategy, bool) {
	switch st := Strategy(s); st {
	case StrategyStack, StrategyMasonry, StrategySlanted, StrategyGrid:
		return st, true
	default:
		return "", false
	}
}

// PickStrategy はページの縦横比から方式を選びます。
// 幅/高さが 0.6 未満なら stack、それ以外は grid・masonry・slanted から一様に選ぶのだ。
func PickStrategy(pageWidth, pageHeight float64, rnd geometry.RandomSource) Strategy {
	a := newArea(pageWidth, pageHeight, 0)
	if a.pageW/a.pageH < tallPageRatio {
		return StrategyStack
	}
	idx := int(rnd.Float64() * float64(len(pageStrategies)))
	if idx >= len(pageStrategies) {
		idx = len(pageStrategies) - 1
	}
	return pageStrategies[idx]
}

// GenerateAlgorithmicLayout は count 枚のコマでページを分割します。
// 方式は PickStrategy で選び、乱数は全て rnd から取り出します。
func GenerateAlgorithmicLayout(count int, pageWidth, pageHeight, margin float64, rnd geometry.RandomSource) []Region {
	if rnd == nil {
		rnd = geometry.NewRandomSource(0)
	}
	strategy := PickStrategy(pageWidth, pageHeight, rnd)
	return GenerateWithStrategy(strategy, count, pageWidth, pageHeight, margin, rnd)
}

// GenerateWithStrategy は方式を指定して分割します。count が 1 未満なら 1 枚にするのだ。
func GenerateWithStrategy(strategy Strategy, count int, pageWidth, pageHeight, margin float64, rnd geometry.RandomSource) []Region {
	if count < 1 {
		count = 1
	}
	if rnd == nil {
		rnd = geometry.NewRandomSource(0)
	}
	a := newArea(pageWidth, pageHeight, margin)

	switch strategy {
	case StrategyStack:
		return stackLayout(count, a, rnd)
	case StrategyMasonry:
		return masonryLayout(count, a, rnd)
	case StrategySlanted:
		return slantedLayout(count, a, rnd)
	default:
		return gridLayout(count, a)
	}
}

// stackLayout は全幅の帯を縦に積みます。6枚以下なら帯の高さを 0.8〜1.2 の重みで揺らすのだ。
func stackLayout(count int, a area, rnd geometry.RandomSource) []Region {
	gap := fitGap(stackGap, a.h, count)

	weights := make([]float64, count)
	total := 0.0
	for i := range weights {
		weights[i] = 1
		if count <= stackMaxVaried {
			weights[i] = stackWeightMin + rnd.Float64()*stackWeightSpan
		}
		total += weights[i]
	}

	available := a.h - gap*float64(count-1)
	regions := make([]Region, 0, count)
	y := a.margin
	for _, w := range weights {
		h := w / total * available
		regions = append(regions, newRect(a.margin, y, a.w, h))
		y += h + gap
	}
	return regions
}

// masonryLayout は最大面積のブロックを繰り返し2分割します。分割はちょうど count-1 回なのだ。
func masonryLayout(count int, a area, rnd geometry.RandomSource) []Region {
	blocks := []geometry.Rect{a.Bounds()}

	for len(blocks) < count {
		biggest := 0
		for i, b := range blocks {
			if b.Width*b.Height > blocks[biggest].Width*blocks[biggest].Height {
				biggest = i
			}
		}
		block := blocks[biggest]
		blocks = append(blocks[:biggest], blocks[biggest+1:]...)

		var splitVert bool
		switch {
		case block.Height > block.Width*masonryAspect:
			splitVert = true
		case block.Width > block.Height*masonryAspect:
			splitVert = false
		default:
			splitVert = rnd.Float64() > 0.5
		}
		ratio := masonryRatioMin + rnd.Float64()*masonryRatioSpan

		if splitVert {
			gap := fitGap(masonryGap, block.Height, 2)
			h1 := (block.Height - gap) * ratio
			h2 := block.Height - gap - h1
			blocks = append(blocks,
				geometry.Rect{X: block.X, Y: block.Y, Width: block.Width, Height: h1},
				geometry.Rect{X: block.X, Y: block.Y + h1 + gap, Width: block.Width, Height: h2},
			)
		} else {
			gap := fitGap(masonryGap, block.Width, 2)
			w1 := (block.Width - gap) * ratio
			w2 := block.Width - gap - w1
			blocks = append(blocks,
				geometry.Rect{X: block.X, Y: block.Y, Width: w1, Height: block.Height},
				geometry.Rect{X: block.X + w1 + gap, Y: block.Y, Width: w2, Height: block.Height},
			)
		}
	}

	regions := make([]Region, len(blocks))
	for i, b := range blocks {
		regions[i] = Region{Rect: b, Kind: KindRectangle}
	}
	return regions
}

// divider は斜めの仕切り線の上端・下端の x 座標（配置可能領域の左端基準）です。
type divider struct {
	topX, botX float64
}

// slantedLayout は round(√count) 行に分け、各行を斜めの仕切りで台形に区切ります。
// 仕切りは名目上の境界から最大 ±30% セル幅だけ傾け、上下で鏡像になるのだ。
func slantedLayout(count int, a area, rnd geometry.RandomSource) []Region {
	rows := int(math.Round(math.Sqrt(float64(count))))
	if rows < 1 {
		rows = 1
	}
	rowCounts := make([]int, rows)
	remainder := count
	for r := 0; r < rows; r++ {
		take := remainder
		if r < rows-1 {
			take = int(math.Round(float64(remainder) / float64(rows-r)))
		}
		rowCounts[r] = take
		remainder -= take
	}

	vGap := fitGap(slantedGap, a.h, rows)
	rowHeight := (a.h - vGap*float64(rows-1)) / float64(rows)

	regions := make([]Region, 0, count)
	y := a.margin
	for _, cols := range rowCounts {
		step := a.w / float64(cols)
		// 内側のコマは両側で半分ずつ隙間を取るので、隙間はセル幅より狭くする
		hGap := math.Min(slantedGap, math.Max(0, step-1))
		half := hGap / 2
		// 隣り合う仕切りどうしが交差しないように傾きを抑える
		maxTilt := math.Max(0, math.Min(step*slantedTiltFraction, (step-hGap)/2))

		boundaries := make([]divider, 0, cols+1)
		boundaries = append(boundaries, divider{0, 0})
		for c := 1; c < cols; c++ {
			base := float64(c) * step
			tilt := (rnd.Float64() - 0.5) * 2 * maxTilt
			boundaries = append(boundaries, divider{topX: base + tilt, botX: base - tilt})
		}
		boundaries = append(boundaries, divider{a.w, a.w})

		for i := 0; i < cols; i++ {
			start, end := boundaries[i], boundaries[i+1]
			leftInset, rightInset := half, half
			if i == 0 {
				leftInset = 0
			}
			if i == cols-1 {
				rightInset = 0
			}
			topLeft := start.topX + leftInset
			botLeft := start.botX + leftInset
			topRight := end.topX - rightInset
			botRight := end.botX - rightInset

			minX := math.Min(topLeft, botLeft)
			maxX := math.Max(topRight, botRight)
			width := maxX - minX
			pct := func(x float64) float64 {
				if width <= 0 {
					return 0
				}
				return (x - minX) / width * 100
			}

			regions = append(regions, newPolygon(a.margin+minX, y, width, rowHeight, []geometry.Point{
				{X: pct(topLeft), Y: 0},
				{X: pct(topRight), Y: 0},
				{X: pct(botRight), Y: 100},
				{X: pct(botLeft), Y: 100},
			}))
		}
		y += rowHeight + vGap
	}
	return regions
}

// gridLayout は均等な格子に行優先で count 枚だけ並べます。
func gridLayout(count int, a area) []Region {
	ideal := math.Sqrt(float64(count) * a.pageH / a.pageW)
	rows := int(math.Max(1, math.Min(float64(count), math.Round(ideal))))
	cols := int(math.Ceil(float64(count) / float64(rows)))

	hGap := fitGap(gridGap, a.w, cols)
	vGap := fitGap(gridGap, a.h, rows)
	cellW := (a.w - hGap*float64(cols-1)) / float64(cols)
	cellH := (a.h - vGap*float64(rows-1)) / float64(rows)

	regions := make([]Region, 0, count)
	for r := 0; r < rows && len(regions) < count; r++ {
		y := a.margin + float64(r)*(cellH+vGap)
		for c := 0; c < cols && len(regions) < count; c++ {
			x := a.margin + float64(c)*(cellW+hGap)
			regions = append(regions, newRect(x, y, cellW, cellH))
		}
	}
	return regions
}
