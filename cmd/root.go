package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/shouni/go-comic-kit/internal/builder"
	"github.com/shouni/go-comic-kit/internal/config"
)

var (
	opts    config.GenerateOptions
	appCtx  *builder.AppContext
	seed    uint64
	margin  float64
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "comic-kit",
	Short: "コマ割りと吹き出しの輪郭を生成するのだ。",
	Long: `漫画ページのコマ割り（アルゴリズム / テンプレート）と、
吹き出しの SVG パスを決定論的に生成するツールなのだ。`,
	PersistentPreRunE: preRunAppE,
	SilenceUsage:      true,
}

// addAppFlags は、アプリケーション全般に適用されるグローバルフラグを定義するのだ。
func addAppFlags(rootCmd *cobra.Command) {
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0, "乱数のシード値なのだ（0 なら環境変数 COMIC_SEED か現在時刻）。")
	rootCmd.PersistentFlags().Float64Var(&margin, "margin", -1, "ページ端の余白（px）なのだ。負の値なら環境変数 COMIC_MARGIN か既定値を使うのだ。")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "デバッグログを出力するのだ。")
	rootCmd.PersistentFlags().BoolVar(&opts.JSON, "json", false, "結果を JSON で出力するのだ。")

	// --- ページ関連 ---
	rootCmd.PersistentFlags().Float64Var(&opts.Width, "width", 0, "幅（px）なのだ。0 ならコマンドごとの既定値なのだ。")
	rootCmd.PersistentFlags().Float64Var(&opts.Height, "height", 0, "高さ（px）なのだ。0 ならコマンドごとの既定値なのだ。")
}

// preRunAppE は、コマンド実行前にログ設定と設定の読み込みを行うのだ。
func preRunAppE(cmd *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg := config.LoadConfig()
	if seed != 0 {
		cfg.Seed = seed
	}
	if margin >= 0 {
		cfg.Margin = margin
	}
	if opts.Width < 0 || opts.Height < 0 {
		return fmt.Errorf("幅と高さには 0 以上を指定してほしいのだ (width=%v, height=%v)", opts.Width, opts.Height)
	}
	cfg.Options = opts

	appCtx = builder.NewAppContext(cfg)
	slog.Debug("設定を読み込みました", "seed", cfg.Seed, "margin", cfg.Margin, "workers", cfg.RenderWorkers)
	return nil
}

// Execute は、アプリケーションのメインエントリポイントなのだ。
// main.go から呼び出されて、cobra のコマンドライン解析を開始するのだよ。
func Execute() {
	addAppFlags(rootCmd)
	rootCmd.AddCommand(
		layoutCmd,
		templatesCmd,
		bubbleCmd,
		pageCmd,
	)

	if err := rootCmd.Execute(); err != nil {
		slog.Error("コマンドの実行に失敗したのだ", "error", err)
		os.Exit(1)
	}
}

// pageSize はフラグ未指定時に設定値の既定サイズを補うのだ。
func pageSize() (float64, float64) {
	w, h := appCtx.Options.Width, appCtx.Options.Height
	if w == 0 {
		w = appCtx.Config.PageWidth
	}
	if h == 0 {
		h = appCtx.Config.PageHeight
	}
	return w, h
}
