package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shouni/go-comic-kit/internal/builder"
	"github.com/shouni/go-comic-kit/internal/runner"
)

// layoutCmd は、コマ割りを生成して表示するのだ。
var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "コマ割りを生成するのだ。",
	Long: `--template を指定すると固定テンプレート、--count を指定するとアルゴリズムでページを分割するのだ。
--strategy で stack / masonry / slanted / grid を強制できるのだよ。`,
	RunE: layoutCommand,
}

func init() {
	layoutCmd.Flags().IntVarP(&opts.Count, "count", "n", 4, "コマの数なのだ。")
	layoutCmd.Flags().StringVarP(&opts.TemplateID, "template", "t", "", "テンプレート ID なのだ（templates コマンドで一覧を表示）。")
	layoutCmd.Flags().StringVarP(&opts.Strategy, "strategy", "s", "", "分割方式（stack, masonry, slanted, grid）なのだ。")
}

func layoutCommand(cmd *cobra.Command, args []string) error {
	w, h := pageSize()
	res, err := builder.BuildLayoutRunner(appCtx).Run(cmd.Context(), runner.LayoutOptions{
		Count:      opts.Count,
		TemplateID: opts.TemplateID,
		Strategy:   opts.Strategy,
		Width:      w,
		Height:     h,
	})
	if err != nil {
		return fmt.Errorf("コマ割りの生成に失敗したのだ: %w", err)
	}

	if opts.JSON {
		return printJSON(res)
	}
	printRegions(res)
	return nil
}
