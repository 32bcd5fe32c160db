package config

import (
	"time"
)

// デフォルト値の定義
const (
	DefaultMargin          = 20.0
	DefaultPageWidth       = 800.0
	DefaultPageHeight      = 1200.0
	DefaultCacheExpiration = 30 * time.Minute
	DefaultCleanupInterval = 1 * time.Hour
	DefaultRenderWorkers   = 4
	DefaultValidateTol     = 1e-6
)

// Config は Go Comic Kit の各 Runner を動作させるための基本設定です。
type Config struct {
	// --- Page Settings ---
	PageWidth  float64
	PageHeight float64
	Margin     float64

	// --- Randomness ---
	Seed uint64 // 0 の場合は実行ごとに変わる

	// --- Bubble Cache ---
	CacheExpiration time.Duration
	CleanupInterval time.Duration

	// --- Rendering ---
	RenderWorkers int

	// --- Validation ---
	OverlapTolerance float64
}

// DefaultConfig は推奨されるデフォルト設定を返すヘルパー関数です。
func DefaultConfig() Config {
	return Config{
		PageWidth:        DefaultPageWidth,
		PageHeight:       DefaultPageHeight,
		Margin:           DefaultMargin,
		CacheExpiration:  DefaultCacheExpiration,
		CleanupInterval:  DefaultCleanupInterval,
		RenderWorkers:    DefaultRenderWorkers,
		OverlapTolerance: DefaultValidateTol,
	}
}
