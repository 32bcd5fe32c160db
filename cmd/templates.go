package cmd

import (
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/shouni/go-comic-kit/pkg/layout"
)

// templatesCmd は、登録済みテンプレートを一覧表示するのだ。
var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "コマ割りテンプレートの一覧を表示するのだ。",
	RunE:  templatesCommand,
}

func templatesCommand(cmd *cobra.Command, args []string) error {
	w, h := pageSize()
	ids := layout.TemplateIDs()

	if opts.JSON {
		return printJSON(ids)
	}

	data := [][]string{{"id", "panels", "page"}}
	for _, id := range ids {
		res := layout.GenerateTemplateLayout(id, w, h, appCtx.Config.Margin)
		data = append(data, []string{id, strconv.Itoa(len(res.Regions)), num(res.Width) + "x" + num(res.Height)})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil
}
