package runner

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shouni/go-comic-kit/pkg/geometry"
	"github.com/shouni/go-comic-kit/pkg/layout"
)

// LayoutOptions はコマ割り1回分の指定なのだ。
type LayoutOptions struct {
	Count      int
	TemplateID string
	Strategy   string
	Width      float64
	Height     float64
}

// LayoutRunner はレイアウト生成と検証をまとめて行うのだ。
type LayoutRunner struct {
	rnd       geometry.RandomSource
	margin    float64
	tolerance float64
}

func NewLayoutRunner(rnd geometry.RandomSource, margin, tolerance float64) *LayoutRunner {
	return &LayoutRunner{rnd: rnd, margin: margin, tolerance: tolerance}
}

// Run はテンプレートまたはアルゴリズムでコマ割りを行い、結果を検証して返します。
func (r *LayoutRunner) Run(ctx context.Context, opts LayoutOptions) (layout.Result, error) {
	if err := ctx.Err(); err != nil {
		return layout.Result{}, err
	}

	var res layout.Result
	switch {
	case opts.TemplateID != "":
		if !layout.HasTemplate(opts.TemplateID) {
			return layout.Result{}, fmt.Errorf("未知のテンプレートです: %s", opts.TemplateID)
		}
		res = layout.GenerateTemplateLayout(opts.TemplateID, opts.Width, opts.Height, r.margin)
	case opts.Strategy != "":
		strategy, ok := layout.ParseStrategy(opts.Strategy)
		if !ok {
			return layout.Result{}, fmt.Errorf("未知の分割方式です: %s", opts.Strategy)
		}
		res = layout.Result{
			Regions:  layout.GenerateWithStrategy(strategy, opts.Count, opts.Width, opts.Height, r.margin, r.rnd),
			Width:    opts.Width,
			Height:   opts.Height,
			Strategy: strategy,
		}
	default:
		req := layout.NewRequest(opts.Count, opts.Width, opts.Height)
		req.Margin = r.margin
		res = layout.Generate(req, r.rnd)
	}

	if err := layout.Validate(res.Regions, res.Width, res.Height, r.margin, r.tolerance); err != nil {
		return layout.Result{}, fmt.Errorf("生成したレイアウトが不正です: %w", err)
	}

	slog.InfoContext(ctx, "コマ割りを生成しました",
		"regions", len(res.Regions),
		"template", opts.TemplateID,
		"strategy", res.Strategy,
		"width", res.Width,
		"height", res.Height)
	return res, nil
}
