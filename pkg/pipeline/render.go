package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/shouni/go-comic-kit/pkg/bubble"
	"github.com/shouni/go-comic-kit/pkg/domain"
	"github.com/shouni/go-comic-kit/pkg/geometry"
	"github.com/shouni/go-comic-kit/pkg/layout"
)

// DefaultWorkers は吹き出しパスを並列に計算するときの既定の同時実行数です。
const DefaultWorkers = 4

// Rendered は1要素分の描画指示です。Path はページ座標の SVG パスデータなのだ。
type Rendered struct {
	ID          string              `json:"id"`
	Kind        domain.ElementKind  `json:"kind"`
	ZIndex      int                 `json:"z_index"`
	Bounds      geometry.Rect       `json:"bounds"`
	Rotation    float64             `json:"rotation,omitempty"`
	Path        string              `json:"path,omitempty"`
	Extent      *geometry.Rect      `json:"extent,omitempty"`   // しっぽを含む輪郭の外接矩形（ページ座標）
	ViewBox     *geometry.Rect      `json:"view_box,omitempty"` // Path が Bounds に合わせて拡縮される座標系
	Decorations []bubble.Decoration `json:"decorations,omitempty"`
	Text        string              `json:"text,omitempty"`
}

// PageRenderer はページを奥から手前への描画指示の列に変換します。
type PageRenderer struct {
	gen     bubble.PathGenerator
	workers int
}

// NewPageRenderer は PageRenderer を作ります。workers が 1 未満なら DefaultWorkers を使うのだ。
func NewPageRenderer(gen bubble.PathGenerator, workers int) *PageRenderer {
	if gen == nil {
		gen = bubble.NewGenerator(nil)
	}
	if workers < 1 {
		workers = DefaultWorkers
	}
	return &PageRenderer{gen: gen, workers: workers}
}

// Render は全要素の描画指示を ZIndex 順に返します。
// 吹き出しのパス計算は errgroup で並列に行い、結果の順序は保つのだ。
func (r *PageRenderer) Render(ctx context.Context, page *domain.Page) ([]Rendered, error) {
	elements := page.SortedElements()
	out := make([]Rendered, len(elements))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(r.workers)

	for i, e := range elements {
		i, e := i, e
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			rendered, err := r.renderElement(e)
			if err != nil {
				return fmt.Errorf("要素 %s の描画準備に失敗しました: %w", e.Base().ID, err)
			}
			out[i] = rendered
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	slog.Debug("ページの描画指示を生成しました", "page", page.ID, "elements", len(out))
	return out, nil
}

func (r *PageRenderer) renderElement(e domain.Element) (Rendered, error) {
	base := e.Base()
	out := Rendered{
		ID:       base.ID,
		Kind:     e.Kind(),
		ZIndex:   base.ZIndex,
		Bounds:   base.Rect(),
		Rotation: base.Rotation,
	}

	switch el := e.(type) {
	case *domain.Frame:
		path := framePath(el.Region())
		out.Path = path.String()
		out.Extent = extentOf(path)
	case *domain.Bubble:
		res := r.gen.Generate(el.Width, el.Height, el.Style)
		path := res.Path.Translate(el.X, el.Y)
		out.Path = path.String()
		out.Extent = extentOf(path)
		for _, d := range res.Decorations {
			d.CX += el.X
			d.CY += el.Y
			out.Decorations = append(out.Decorations, d)
		}
		out.Text = el.Text
	case *domain.Sticker:
		vb := bubble.StickerViewBox
		out.Path = bubble.StickerPath(el.Shape).String()
		out.ViewBox = &vb
		out.Text = el.Text
	case *domain.Text:
		out.Text = el.Content
	case *domain.Image:
	default:
		return Rendered{}, fmt.Errorf("未対応の要素です: %s", e.Kind())
	}
	return out, nil
}

// framePath はコマの輪郭パスです。円は外接矩形に内接する楕円にします。
func framePath(region layout.Region) geometry.Path {
	if region.Kind != layout.KindCircle {
		return region.Contour().Path()
	}
	rx, ry := region.Width/2, region.Height/2
	var p geometry.Path
	p.MoveTo(region.X, region.Y+ry)
	p.ArcTo(rx, ry, 0, true, true, region.Right(), region.Y+ry)
	p.ArcTo(rx, ry, 0, true, true, region.X, region.Y+ry)
	p.Close()
	return p
}

func extentOf(p geometry.Path) *geometry.Rect {
	if p.IsEmpty() {
		return nil
	}
	b := p.Bounds()
	return &b
}
