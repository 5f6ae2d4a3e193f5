package cmd

import (
	"strconv"

	"cheevo-checker/core/reconcile"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// renderConsoles renders the console id table printed by the consoles command.
func renderConsoles(consoles []reconcile.Console) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"ID", "Name"})
	for _, c := range consoles {
		tw.AppendRow(table.Row{strconv.Itoa(c.ID), c.Name})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}
