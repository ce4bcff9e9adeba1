package display

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/backmassage/splitscreen/internal/config"
	"github.com/backmassage/splitscreen/internal/planner"
	"github.com/backmassage/splitscreen/internal/splitfile"
	"github.com/backmassage/splitscreen/internal/timecode"
)

// PlanTable renders the per-tile layout shown in verbose mode: where each
// source starts decoding, how long it runs, and where its tile sits on
// the canvas. The footer sums up the composed output.
func PlanTable(cfg *config.Config, plan *planner.Plan, sources []splitfile.Source) string {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false

	tbl.AppendHeader(table.Row{"#", "Source", "Seek", "Length", "Tile", "At", "Splits"})
	for i, t := range plan.Tiles {
		tbl.AppendRow(table.Row{
			i,
			sources[t.Input].Path,
			timecode.Format(float64(t.Offset) / float64(cfg.FPS)),
			timecode.Format(float64(t.Length) / float64(cfg.FPS)),
			fmt.Sprintf("%dx%d", t.Width, t.Height),
			fmt.Sprintf("(%d,%d)", t.X, t.Y),
			len(t.Splits),
		})
	}
	tbl.AppendFooter(table.Row{
		"",
		"output",
		timecode.Format(0),
		timecode.Format(float64(plan.Length) / float64(cfg.FPS)),
		fmt.Sprintf("%dx%d", cfg.Width, cfg.Height),
		"(0,0)",
		len(plan.Pauses),
	})
	return tbl.Render()
}
