package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/jedib0t/go-pretty/v6/table"
)

// LevelTrace sits just above Info so per-tick events stay out of
// default log output.
const LevelTrace slog.Level = slog.LevelInfo + 1

// Trace logs a per-tick event through the default slog logger.
func Trace(msg string, args ...any) {
	slog.Log(context.Background(), LevelTrace, msg, args...)
}

// DumpState renders the registered datapath state as a table: the
// history buffer, the product stage, and every tree level down to the
// single output element.
func DumpState(w io.Writer, dp *Datapath) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(fmt.Sprintf("Datapath @ tick %d", dp.Ticks()))
	t.AppendHeader(table.Row{"Stage", "Width", "Values"})

	cfg := dp.Config()
	t.AppendRow(table.Row{"History", cfg.DataWidth, fmt.Sprint(dp.History())})
	t.AppendRow(table.Row{
		"Products", cfg.ProductWidth(), fmt.Sprint(dp.Level(0))})
	for l := 1; l <= cfg.TreeDepth(); l++ {
		t.AppendRow(table.Row{
			fmt.Sprintf("Tree L%d", l), cfg.LevelWidth(l),
			fmt.Sprint(dp.Level(l))})
	}
	t.AppendFooter(table.Row{"Output", cfg.OutputWidth(), dp.Output()})

	t.Render()
}
