package runner

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shouni/go-comic-kit/pkg/director"
	"github.com/shouni/go-comic-kit/pkg/domain"
	"github.com/shouni/go-comic-kit/pkg/pipeline"
)

// PageResult はページ1枚分の生成結果です。
type PageResult struct {
	Page    *domain.Page        `json:"page"`
	Frames  []*domain.Frame     `json:"frames"`
	Bubbles []*domain.Bubble    `json:"bubbles"`
	Plan    []pipeline.Rendered `json:"plan"`
}

// PageRunner はコマ割り、セリフの割り付け、描画指示の生成を順に行うのだ。
type PageRunner struct {
	layout   *LayoutRunner
	director *director.Director
	renderer *pipeline.PageRenderer
}

func NewPageRunner(layout *LayoutRunner, d *director.Director, renderer *pipeline.PageRenderer) *PageRunner {
	return &PageRunner{layout: layout, director: d, renderer: renderer}
}

// Run はページを組み立てて描画指示まで返します。
func (r *PageRunner) Run(ctx context.Context, opts LayoutOptions, lines []director.Line) (*PageResult, error) {
	res, err := r.layout.Run(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("コマ割りに失敗しました: %w", err)
	}

	page := domain.NewPage("page-1", res.Width, res.Height)
	frames := page.ApplyLayout(res)

	var bubbles []*domain.Bubble
	if len(lines) > 0 {
		bubbles, err = r.director.Dialogue(page, lines)
		if err != nil {
			return nil, fmt.Errorf("セリフの配置に失敗しました: %w", err)
		}
	}

	plan, err := r.renderer.Render(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("描画指示の生成に失敗しました: %w", err)
	}

	slog.InfoContext(ctx, "ページを組み立てました",
		"page", page.ID,
		"frames", len(frames),
		"bubbles", len(bubbles),
		"elements", len(plan))
	return &PageResult{Page: page, Frames: frames, Bubbles: bubbles, Plan: plan}, nil
}

// ParseLines は "話者:セリフ" 形式の文字列を Line に変換します。区切りが無ければナレーション扱いなのだ。
func ParseLines(raw []string) []director.Line {
	lines := make([]director.Line, 0, len(raw))
	for _, s := range raw {
		speaker, text, ok := strings.Cut(s, ":")
		if !ok {
			speaker, text = "", s
		}
		lines = append(lines, director.Line{Speaker: strings.TrimSpace(speaker), Text: strings.TrimSpace(text)})
	}
	return lines
}
