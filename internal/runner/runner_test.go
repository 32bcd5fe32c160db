package runner

import (
	"context"
	"strings"
	"testing"

	"github.com/shouni/go-comic-kit/pkg/bubble"
	"github.com/shouni/go-comic-kit/pkg/director"
	"github.com/shouni/go-comic-kit/pkg/domain"
	"github.com/shouni/go-comic-kit/pkg/geometry"
	"github.com/shouni/go-comic-kit/pkg/layout"
	"github.com/shouni/go-comic-kit/pkg/pipeline"
)

func newLayoutRunner() *LayoutRunner {
	return NewLayoutRunner(geometry.NewRandomSource(7), layout.DefaultMargin, 1e-6)
}

func TestLayoutRunner_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("テンプレート指定", func(t *testing.T) {
		res, err := newLayoutRunner().Run(ctx, LayoutOptions{TemplateID: "webtoon-short", Width: 800, Height: 1200})
		if err != nil {
			t.Fatalf("予期しないエラーなのだ: %v", err)
		}
		if len(res.Regions) != 3 || res.Height != 2000 {
			t.Errorf("結果が違うのだ: regions=%d height=%v", len(res.Regions), res.Height)
		}
	})

	t.Run("分割方式の指定", func(t *testing.T) {
		res, err := newLayoutRunner().Run(ctx, LayoutOptions{Count: 6, Strategy: "slanted", Width: 1000, Height: 1000})
		if err != nil {
			t.Fatalf("予期しないエラーなのだ: %v", err)
		}
		if res.Strategy != layout.StrategySlanted || len(res.Regions) != 6 {
			t.Errorf("結果が違うのだ: %s %d", res.Strategy, len(res.Regions))
		}
	})

	t.Run("自動選択", func(t *testing.T) {
		res, err := newLayoutRunner().Run(ctx, LayoutOptions{Count: 5, Width: 800, Height: 1200})
		if err != nil {
			t.Fatalf("予期しないエラーなのだ: %v", err)
		}
		if len(res.Regions) != 5 {
			t.Errorf("コマ数が違うのだ: %d", len(res.Regions))
		}
	})

	t.Run("不正な指定はエラー", func(t *testing.T) {
		if _, err := newLayoutRunner().Run(ctx, LayoutOptions{TemplateID: "nope", Width: 800, Height: 1200}); err == nil {
			t.Error("未知のテンプレートでエラーにならないのだ")
		}
		if _, err := newLayoutRunner().Run(ctx, LayoutOptions{Count: 3, Strategy: "spiral", Width: 800, Height: 1200}); err == nil {
			t.Error("未知の分割方式でエラーにならないのだ")
		}
	})
}

func TestBubbleRunner_Run(t *testing.T) {
	r := NewBubbleRunner(bubble.NewGenerator(geometry.NewRandomSource(1)))

	res, err := r.Run(context.Background(), BubbleOptions{Shape: "Rectangle", Width: 200, Height: 100, Tail: "bottom", TailOffset: 50, TailLength: 50})
	if err != nil {
		t.Fatalf("予期しないエラーなのだ: %v", err)
	}
	if !strings.HasPrefix(res.PathData(), "M 8 0") {
		t.Errorf("パスが違うのだ: %s", res.PathData())
	}

	if _, err := r.Run(context.Background(), BubbleOptions{Shape: "heart", Width: 200, Height: 100}); err == nil {
		t.Error("未対応の形状でエラーにならないのだ")
	}
}

func TestPageRunner_Run(t *testing.T) {
	r := NewPageRunner(newLayoutRunner(), director.NewDirector(), pipeline.NewPageRenderer(bubble.NewGenerator(geometry.NewRandomSource(1)), 2))

	res, err := r.Run(context.Background(),
		LayoutOptions{TemplateID: "3-top-hero", Width: 800, Height: 1200},
		ParseLines([]string{"ずんだもん: [shout]大変なのだ！", "ナレーション"}),
	)
	if err != nil {
		t.Fatalf("予期しないエラーなのだ: %v", err)
	}
	if len(res.Frames) != 3 || len(res.Bubbles) != 2 || len(res.Plan) != 5 {
		t.Errorf("結果が違うのだ: frames=%d bubbles=%d plan=%d", len(res.Frames), len(res.Bubbles), len(res.Plan))
	}
	if res.Plan[len(res.Plan)-1].Kind != domain.KindBubble {
		t.Error("吹き出しは最前面に描かれるはずなのだ")
	}
}

func TestParseLines(t *testing.T) {
	got := ParseLines([]string{"めたん: こんにちは", "ただの地の文"})
	want := []director.Line{{Speaker: "めたん", Text: "こんにちは"}, {Speaker: "", Text: "ただの地の文"}}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("期待値 %+v, 実際の値 %+v", want[i], got[i])
		}
	}
}
