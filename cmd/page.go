package cmd

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/shouni/go-comic-kit/internal/builder"
	"github.com/shouni/go-comic-kit/internal/runner"
)

// pageCmd は、コマ割りとセリフ配置を行ってページの描画指示を出力するのだ。
var pageCmd = &cobra.Command{
	Use:   "page",
	Short: "コマ割りと吹き出しを組み合わせたページを生成するのだ。",
	Long: `layout と同じ指定でコマ割りを行い、--line で渡したセリフを読み順に吹き出しとして配置するのだ。
セリフは "話者:テキスト" 形式で、[shout] や [thought] などのタグで形状を選べるのだよ。`,
	RunE: pageCommand,
}

func init() {
	pageCmd.Flags().IntVarP(&opts.Count, "count", "n", 4, "コマの数なのだ。")
	pageCmd.Flags().StringVarP(&opts.TemplateID, "template", "t", "", "テンプレート ID なのだ。")
	pageCmd.Flags().StringVarP(&opts.Strategy, "strategy", "s", "", "分割方式（stack, masonry, slanted, grid）なのだ。")
	pageCmd.Flags().StringArrayVarP(&opts.Lines, "line", "l", nil, "セリフ（\"話者:テキスト\"）なのだ。複数指定できるのだ。")
}

func pageCommand(cmd *cobra.Command, args []string) error {
	w, h := pageSize()
	res, err := builder.BuildPageRunner(appCtx).Run(cmd.Context(), runner.LayoutOptions{
		Count:      opts.Count,
		TemplateID: opts.TemplateID,
		Strategy:   opts.Strategy,
		Width:      w,
		Height:     h,
	}, runner.ParseLines(opts.Lines))
	if err != nil {
		return fmt.Errorf("ページの生成に失敗したのだ: %w", err)
	}

	if opts.JSON {
		return printJSON(res)
	}

	pterm.Info.Printf("page %sx%s frames=%d bubbles=%d\n", num(res.Page.Width), num(res.Page.Height), len(res.Frames), len(res.Bubbles))
	data := [][]string{{"z", "id", "kind", "x", "y", "width", "height", "text"}}
	for _, r := range res.Plan {
		data = append(data, []string{
			strconv.Itoa(r.ZIndex),
			r.ID,
			string(r.Kind),
			num(r.Bounds.X),
			num(r.Bounds.Y),
			num(r.Bounds.Width),
			num(r.Bounds.Height),
			r.Text,
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil
}
