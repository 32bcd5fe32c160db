package layout

import (
	"math"

	"github.com/shouni/go-comic-kit/pkg/geometry"
)

// DefaultMargin はページ端の余白（px）です。
const DefaultMargin = 20.0

// Request はレイアウト生成の依頼です。TemplateID が空でなければテンプレートを使うのだ。
type Request struct {
	Count      int     `json:"count,omitempty"`
	TemplateID string  `json:"template_id,omitempty"`
	PageWidth  float64 `json:"page_width"`
	PageHeight float64 `json:"page_height"`
	Margin     float64 `json:"margin"`
}

// NewRequest は既定の余白でアルゴリズム生成の依頼を作ります。
func NewRequest(count int, pageWidth, pageHeight float64) Request {
	return Request{Count: count, PageWidth: pageWidth, PageHeight: pageHeight, Margin: DefaultMargin}
}

// Result は生成されたコマと、テンプレートが上書きした場合のページサイズです。
type Result struct {
	Regions  []Region `json:"regions"`
	Width    float64  `json:"width"`
	Height   float64  `json:"height"`
	Strategy Strategy `json:"strategy,omitempty"`
}

// Generate は依頼内容に応じてテンプレートかアルゴリズム生成に振り分けます。
func Generate(req Request, rnd geometry.RandomSource) Result {
	if req.TemplateID != "" {
		return GenerateTemplateLayout(req.TemplateID, req.PageWidth, req.PageHeight, req.Margin)
	}
	if rnd == nil {
		rnd = geometry.NewRandomSource(0)
	}
	strategy := PickStrategy(req.PageWidth, req.PageHeight, rnd)
	return Result{
		Regions:  GenerateWithStrategy(strategy, req.Count, req.PageWidth, req.PageHeight, req.Margin, rnd),
		Width:    req.PageWidth,
		Height:   req.PageHeight,
		Strategy: strategy,
	}
}

// area はページから余白を除いた配置可能領域なのだ。
type area struct {
	pageW, pageH float64
	margin       float64
	w, h         float64
}

// newArea はページサイズと余白を最低限使える値に丸めます。
// 余白がページに収まらない場合は、各辺に 1px 以上残るまで縮めます。
func newArea(pageW, pageH, margin float64) area {
	pageW, pageH = minSide(pageW), minSide(pageH)
	if math.IsNaN(margin) || margin < 0 {
		margin = 0
	}
	margin = math.Min(margin, math.Min((pageW-1)/2, (pageH-1)/2))
	return area{
		pageW:  pageW,
		pageH:  pageH,
		margin: margin,
		w:      pageW - 2*margin,
		h:      pageH - 2*margin,
	}
}

// Bounds は配置可能領域の矩形です。
func (a area) Bounds() geometry.Rect {
	return geometry.Rect{X: a.margin, Y: a.margin, Width: a.w, Height: a.h}
}

func minSide(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 1 {
		return 1
	}
	return v
}

// fitGap は span を n 分割するときの隙間を返します。
// 隙間を取ると1区画が 1px 未満になる場合は、収まるところまで隙間を縮めるのだ。
func fitGap(gap, span float64, n int) float64 {
	if n <= 1 {
		return gap
	}
	slots := float64(n - 1)
	if span-gap*slots >= float64(n) {
		return gap
	}
	return math.Max(0, (span-float64(n))/slots)
}
