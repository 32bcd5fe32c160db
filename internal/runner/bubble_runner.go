package runner

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shouni/go-comic-kit/pkg/bubble"
)

// BubbleOptions は吹き出し1つ分の指定なのだ。
type BubbleOptions struct {
	Shape      string
	Width      float64
	Height     float64
	Tail       string
	TailOffset float64
	TailLength float64
	HideTail   bool
}

// BubbleRunner は吹き出しの輪郭を生成するのだ。
type BubbleRunner struct {
	gen bubble.PathGenerator
}

func NewBubbleRunner(gen bubble.PathGenerator) *BubbleRunner {
	return &BubbleRunner{gen: gen}
}

// Run は指定された形状の輪郭を返します。未対応の形状はエラーにするのだ。
func (r *BubbleRunner) Run(ctx context.Context, opts BubbleOptions) (bubble.Result, error) {
	shape := bubble.ParseShape(opts.Shape)
	if !shape.IsKnown() {
		return bubble.Result{}, fmt.Errorf("未対応の吹き出しの形状です: %s", opts.Shape)
	}

	style := bubble.NewStyle(shape)
	style.Tail = bubble.Tail{
		Placement: bubble.ParsePlacement(opts.Tail),
		Offset:    opts.TailOffset,
		Length:    opts.TailLength,
		Hidden:    opts.HideTail,
	}

	res := r.gen.Generate(opts.Width, opts.Height, style)
	slog.DebugContext(ctx, "吹き出しの輪郭を生成しました",
		"shape", shape,
		"tail", style.Tail.Placement,
		"commands", len(res.Path.Cmds),
		"decorations", len(res.Decorations))
	return res, nil
}
