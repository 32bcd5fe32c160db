package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/pterm/pterm"

	"github.com/shouni/go-comic-kit/pkg/geometry"
	"github.com/shouni/go-comic-kit/pkg/layout"
)

// printJSON は v を整形した JSON として標準出力に書くのだ。
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("JSON の出力に失敗しました: %w", err)
	}
	return nil
}

func num(v float64) string {
	return geometry.FormatNumber(v)
}

// printRegions はコマの一覧を表で出力するのだ。
func printRegions(res layout.Result) {
	pterm.Info.Printf("page %sx%s strategy=%s regions=%d\n", num(res.Width), num(res.Height), res.Strategy, len(res.Regions))

	data := [][]string{{"#", "kind", "x", "y", "width", "height", "vertices"}}
	for i, r := range res.Regions {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			string(r.Kind),
			num(r.X),
			num(r.Y),
			num(r.Width),
			num(r.Height),
			r.VertexString(),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
