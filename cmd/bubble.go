package cmd

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/shouni/go-comic-kit/internal/builder"
	"github.com/shouni/go-comic-kit/internal/runner"
	"github.com/shouni/go-comic-kit/pkg/bubble"
)

const (
	defaultBubbleWidth  = 200.0
	defaultBubbleHeight = 100.0
)

// bubbleCmd は、吹き出しの SVG パスを生成するのだ。
var bubbleCmd = &cobra.Command{
	Use:   "bubble",
	Short: "吹き出しの SVG パスを生成するのだ。",
	Long: `形状（rectangle, circle, cloud, thought, shout, star, electric, wobbly）としっぽを指定して、
SVG の d 属性に使えるパスデータを出力するのだ。`,
	RunE: bubbleCommand,
}

func init() {
	bubbleCmd.Flags().StringVar(&opts.Shape, "shape", string(bubble.ShapeCircle), "吹き出しの形状なのだ。")
	bubbleCmd.Flags().StringVar(&opts.Tail, "tail", string(bubble.PlacementBottom), "しっぽを出す辺（top, bottom, left, right）なのだ。")
	bubbleCmd.Flags().Float64Var(&opts.TailOffset, "offset", bubble.DefaultTailOffset, "辺に沿ったしっぽの位置（%）なのだ。")
	bubbleCmd.Flags().Float64Var(&opts.TailLength, "length", bubble.DefaultTailLength, "しっぽの長さ（px）なのだ。")
	bubbleCmd.Flags().BoolVar(&opts.HideTail, "hide-tail", false, "しっぽを描かないのだ。")
}

func bubbleCommand(cmd *cobra.Command, args []string) error {
	w, h := appCtx.Options.Width, appCtx.Options.Height
	if w == 0 {
		w = defaultBubbleWidth
	}
	if h == 0 {
		h = defaultBubbleHeight
	}

	res, err := builder.BuildBubbleRunner(appCtx).Run(cmd.Context(), runner.BubbleOptions{
		Shape:      opts.Shape,
		Width:      w,
		Height:     h,
		Tail:       opts.Tail,
		TailOffset: opts.TailOffset,
		TailLength: opts.TailLength,
		HideTail:   opts.HideTail,
	})
	if err != nil {
		return fmt.Errorf("吹き出しの生成に失敗したのだ: %w", err)
	}

	if opts.JSON {
		return printJSON(struct {
			Path        string              `json:"path"`
			Decorations []bubble.Decoration `json:"decorations"`
		}{res.PathData(), res.Decorations})
	}

	pterm.Println(res.PathData())
	if len(res.Decorations) > 0 {
		data := [][]string{{"cx", "cy", "r"}}
		for _, d := range res.Decorations {
			data = append(data, []string{num(d.CX), num(d.CY), num(d.Radius)})
		}
		pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	}
	return nil
}
