package config

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/shouni/go-utils/envutil"

	"github.com/shouni/go-comic-kit/pkg/config"
)

// 環境変数名の定義なのだ
const (
	EnvMargin        = "COMIC_MARGIN"
	EnvSeed          = "COMIC_SEED"
	EnvRenderWorkers = "COMIC_RENDER_WORKERS"
	EnvCacheTTL      = "COMIC_CACHE_TTL"
)

// Config はアプリケーション全体の設定を保持する構造体なのだ。
type Config struct {
	config.Config

	Options GenerateOptions
}

// LoadConfig は環境変数から設定を読み込み、構造体を返すのだ！
// 解析できない値はデフォルト値のままにします。envutil に型付きの取得関数が無い
// 小数・符号なし整数・時間は、ここで解析して警告を出すのだ。
func LoadConfig() *Config {
	cfg := &Config{Config: config.DefaultConfig()}

	cfg.Margin = parseFloat(EnvMargin, cfg.Margin)
	cfg.Seed = parseUint(EnvSeed, cfg.Seed)
	cfg.RenderWorkers = envutil.GetEnvAsInt(EnvRenderWorkers, cfg.RenderWorkers)
	cfg.CacheExpiration = parseDuration(EnvCacheTTL, cfg.CacheExpiration)

	return cfg
}

// GenerateOptions は CLI フラグから渡される実行時のパラメータなのだ。
type GenerateOptions struct {
	// ページ関連
	Count      int     // --count
	TemplateID string  // --template
	Strategy   string  // --strategy
	Width      float64 // --width
	Height     float64 // --height

	// 吹き出し関連
	Shape      string  // --shape
	Tail       string  // --tail
	TailOffset float64 // --offset
	TailLength float64 // --length
	HideTail   bool    // --hide-tail

	// セリフ（"話者:テキスト" 形式）
	Lines []string // --line

	// 出力
	JSON bool // --json
}

func parseFloat(key string, def float64) float64 {
	raw := envutil.GetEnv(key, "")
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		slog.Warn("環境変数の値を解析できないため、デフォルト値を使います", "key", key, "value", raw, "error", err)
		return def
	}
	return v
}

func parseUint(key string, def uint64) uint64 {
	raw := envutil.GetEnv(key, "")
	if raw == "" {
		return def
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		slog.Warn("環境変数の値を解析できないため、デフォルト値を使います", "key", key, "value", raw, "error", err)
		return def
	}
	return v
}

func parseDuration(key string, def time.Duration) time.Duration {
	raw := envutil.GetEnv(key, "")
	if raw == "" {
		return def
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		slog.Warn("環境変数の値を解析できないため、デフォルト値を使います", "key", key, "value", raw, "error", err)
		return def
	}
	return v
}
