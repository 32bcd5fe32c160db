package builder

import (
	"github.com/shouni/go-comic-kit/internal/runner"
	"github.com/shouni/go-comic-kit/pkg/director"
	"github.com/shouni/go-comic-kit/pkg/pipeline"
)

// BuildLayoutRunner はコマ割りを担当する Runner を構築します。
func BuildLayoutRunner(appCtx *AppContext) *runner.LayoutRunner {
	return runner.NewLayoutRunner(appCtx.Random, appCtx.Config.Margin, appCtx.Config.OverlapTolerance)
}

// BuildBubbleRunner は吹き出し輪郭の生成を担当する Runner を構築します。
func BuildBubbleRunner(appCtx *AppContext) *runner.BubbleRunner {
	return runner.NewBubbleRunner(appCtx.Bubbles)
}

// BuildPageRunner はコマ割り・セリフ配置・描画指示までを一括で行う Runner を構築します。
func BuildPageRunner(appCtx *AppContext) *runner.PageRunner {
	return runner.NewPageRunner(
		BuildLayoutRunner(appCtx),
		director.NewDirector(),
		pipeline.NewPageRenderer(appCtx.Bubbles, appCtx.Config.RenderWorkers),
	)
}
