package layout

import (
	"sort"
)

// templateGap はテンプレート内のコマ間の隙間（px）です。
const templateGap = 10.0

// Webtoon 系テンプレートはページサイズを固定で上書きするのだ。
const (
	webtoonWidth = 800.0

	webtoonShortHeight     = 2000.0
	webtoonMediumHeight    = 3000.0
	webtoonLongHeight      = 4000.0
	webtoonCinematicHeight = 3000.0
	webtoonCinematicPanelH = 800.0
	webtoonShortGap        = 60.0
	webtoonMediumGap       = 80.0
	webtoonLongGap         = 100.0
	webtoonCinematicGap    = 150.0
	webtoonShortPanels     = 3
	webtoonMediumPanels    = 5
	webtoonLongPanels      = 6
	webtoonCinematicPanels = 3
)

// templateFunc は余白を除いた領域 a にコマを配置します。
type templateFunc func(a area) []Region

// pageSize は固定ページサイズを持つテンプレート用です。
type pageSize struct {
	width, height float64
}

type template struct {
	build    templateFunc
	override *pageSize
}

var templates = map[string]template{
	"1-full":            {build: fullTemplate},
	"2-vert":            {build: gridTemplate(1, 2)},
	"2-horiz":           {build: gridTemplate(2, 1)},
	"3-horiz":           {build: gridTemplate(3, 1)},
	"3-top-hero":        {build: topHeroTemplate},
	"4-grid":            {build: gridTemplate(2, 2)},
	"6-grid":            {build: gridTemplate(3, 2)},
	"9-grid":            {build: gridTemplate(3, 3)},
	"masonry-hero":      {build: masonryHeroTemplate},
	"slanted-split":     {build: slantedSplitTemplate},
	"slanted-action":    {build: slantedActionTemplate},
	"shattered":         {build: shatteredTemplate},
	"webtoon-short":     webtoonTemplate(webtoonShortHeight, webtoonShortPanels, webtoonShortGap, 0),
	"webtoon-medium":    webtoonTemplate(webtoonMediumHeight, webtoonMediumPanels, webtoonMediumGap, 0),
	"webtoon-long":      webtoonTemplate(webtoonLongHeight, webtoonLongPanels, webtoonLongGap, 0),
	"webtoon-cinematic": webtoonTemplate(webtoonCinematicHeight, webtoonCinematicPanels, webtoonCinematicGap, webtoonCinematicPanelH),
}

// TemplateIDs は登録済みテンプレート ID を昇順で返します。
func TemplateIDs() []string {
	ids := make([]string, 0, len(templates))
	for id := range templates {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// HasTemplate は id が登録済みかどうかを返します。
func HasTemplate(id string) bool {
	_, ok := templates[id]
	return ok
}

// GenerateTemplateLayout は固定テンプレートでページを分割します。
// 乱数は使わないので同じ引数なら常に同じ結果になるのだ。
// 未知の id はコマなし、ページサイズはそのままで返します。
func GenerateTemplateLayout(id string, pageWidth, pageHeight, margin float64) Result {
	t, ok := templates[id]
	if !ok {
		return Result{Regions: []Region{}, Width: pageWidth, Height: pageHeight}
	}
	if t.override != nil {
		pageWidth, pageHeight = t.override.width, t.override.height
	}
	a := newArea(pageWidth, pageHeight, margin)
	return Result{Regions: t.build(a), Width: a.pageW, Height: a.pageH}
}

func fullTemplate(a area) []Region {
	return []Region{newRect(a.margin, a.margin, a.w, a.h)}
}

// gridTemplate は rows 行 cols 列の均等分割です。
func gridTemplate(rows, cols int) templateFunc {
	return func(a area) []Region {
		hGap := fitGap(templateGap, a.w, cols)
		vGap := fitGap(templateGap, a.h, rows)
		cellW := (a.w - hGap*float64(cols-1)) / float64(cols)
		cellH := (a.h - vGap*float64(rows-1)) / float64(rows)

		regions := make([]Region, 0, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				regions = append(regions, newRect(
					a.margin+float64(c)*(cellW+hGap),
					a.margin+float64(r)*(cellH+vGap),
					cellW, cellH,
				))
			}
		}
		return regions
	}
}

// topHeroTemplate は上半分に大ゴマ、下半分に2コマです。
func topHeroTemplate(a area) []Region {
	gap := fitGap(templateGap, shorterSide(a.w, a.h), 2)
	topH := a.h/2 - gap/2
	bottomY := a.margin + a.h/2 + gap/2
	halfW := a.w/2 - gap/2
	return []Region{
		newRect(a.margin, a.margin, a.w, topH),
		newRect(a.margin, bottomY, halfW, topH),
		newRect(a.margin+a.w/2+gap/2, bottomY, halfW, topH),
	}
}

// masonryHeroTemplate は左 60% に大ゴマ、右に2コマを積みます。
func masonryHeroTemplate(a area) []Region {
	gap := fitGap(templateGap, shorterSide(a.w, a.h), 2)
	heroW := 0.6 * a.w
	sideX := a.margin + heroW + gap
	sideW := 0.4*a.w - gap
	sideH := 0.5*a.h - gap/2
	return []Region{
		newRect(a.margin, a.margin, heroW, a.h),
		newRect(sideX, a.margin, sideW, sideH),
		newRect(sideX, a.margin+0.5*a.h+gap/2, sideW, sideH),
	}
}

// slantedSplitTemplate は上下2コマを斜めの境界で分けます。
// 上のコマの底辺と下のコマの上辺は同じ向きに傾け、重ならないようにするのだ。
func slantedSplitTemplate(a area) []Region {
	gap := fitGap(templateGap, a.h, 2)
	return []Region{
		newPolygon(a.margin, a.margin, a.w, 0.6*a.h-gap/2, mustVertices("0,0 100,0 100,80 0,100")),
		newPolygon(a.margin, a.margin+0.6*a.h+gap/2, a.w, 0.4*a.h-gap/2, mustVertices("0,20 100,0 100,100 0,100")),
	}
}

// slantedActionTemplate は3段の台形を縦に積みます。
func slantedActionTemplate(a area) []Region {
	gap := fitGap(templateGap, a.h, 3)
	h1 := 0.35 * a.h
	h3 := a.h - 2*h1 - 2*gap
	y2 := a.margin + h1 + gap
	y3 := y2 + h1 + gap
	return []Region{
		newPolygon(a.margin, a.margin, a.w, h1, mustVertices("0,0 100,0 100,85 0,100")),
		newPolygon(a.margin, y2, a.w, h1, mustVertices("0,15 100,0 100,85 0,100")),
		newPolygon(a.margin, y3, a.w, h3, mustVertices("0,15 100,0 100,100 0,100")),
	}
}

// shatteredTemplate は上に三角形、下に2コマを並べます。
func shatteredTemplate(a area) []Region {
	gap := fitGap(templateGap, shorterSide(a.w, a.h), 2)
	topH := 0.6*a.h - gap/2
	bottomY := a.margin + 0.6*a.h + gap/2
	bottomH := 0.4*a.h - gap/2
	halfW := a.w/2 - gap/2
	return []Region{
		{Rect: newRect(a.margin, a.margin, a.w, topH).Rect, Kind: KindTriangle},
		newRect(a.margin, bottomY, halfW, bottomH),
		newRect(a.margin+a.w/2+gap/2, bottomY, halfW, bottomH),
	}
}

// webtoonTemplate は縦長ページに全幅のコマを等間隔で積みます。
// panelH が 0 なら残りの高さを均等に割り振るのだ。
func webtoonTemplate(height float64, panels int, gap, panelH float64) template {
	return template{
		override: &pageSize{width: webtoonWidth, height: height},
		build: func(a area) []Region {
			g := fitGap(gap, a.h, panels)
			h := panelH
			if h <= 0 || h*float64(panels)+g*float64(panels-1) > a.h {
				h = (a.h - g*float64(panels-1)) / float64(panels)
			}
			regions := make([]Region, 0, panels)
			for i := 0; i < panels; i++ {
				regions = append(regions, newRect(a.margin, a.margin+float64(i)*(h+g), a.w, h))
			}
			return regions
		},
	}
}

// shorterSide は2分割する辺のうち短い方です。隙間はどちらの辺にも入るのだ。
func shorterSide(w, h float64) float64 {
	if w < h {
		return w
	}
	return h
}
