package builder

import (
	"github.com/shouni/go-comic-kit/internal/config"
	"github.com/shouni/go-comic-kit/pkg/bubble"
	"github.com/shouni/go-comic-kit/pkg/geometry"
)

// AppContext は、アプリケーション実行に必要な共通コンテキストを保持する
// これを各Build関数に渡すことで、依存関係の注入を簡素化します。
type AppContext struct {
	Config  *config.Config         // Configは、環境変数とフラグから組み立てた設定です。
	Options config.GenerateOptions // Optionsは、コマンドラインから渡された実行時の設定です。
	Random  geometry.RandomSource  // Randomは、レイアウトと吹き出しの揺らぎに使う共通の乱数源です。
	Bubbles bubble.PathGenerator   // Bubblesは、キャッシュ付きの吹き出し輪郭生成器です。
}

// NewAppContext は AppContext の新しいインスタンスを生成する
func NewAppContext(cfg *config.Config) *AppContext {
	rnd := geometry.NewRandomSource(cfg.Seed)
	return &AppContext{
		Config:  cfg,
		Options: cfg.Options,
		Random:  rnd,
		Bubbles: bubble.NewCachedGenerator(bubble.NewGenerator(rnd), cfg.CacheExpiration, cfg.CleanupInterval),
	}
}
