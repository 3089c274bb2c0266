package main

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/mishimalab/frametrap/internal/frames"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

// renderMoveTable renders moves in the standard frame-data column layout.
func renderMoveTable(moves []frames.Move) string {
	rows := make([][]string, 0, len(moves))
	for _, m := range moves {
		rows = append(rows, []string{
			strconv.Itoa(m.MoveNumber),
			m.Command,
			m.HitLevel,
			m.Damage,
			m.Startup,
			m.Block,
			m.Hit,
			m.CounterHit,
			strconv.Itoa(m.StrategicImportance),
			m.Name,
		})
	}
	return renderTable(
		[]string{"#", "Command", "Level", "Damage", "Startup", "Block", "Hit", "CH", "Score", "Name"},
		rows,
		[]columnAlignment{
			alignRight, alignLeft, alignLeft, alignRight, alignRight,
			alignRight, alignRight, alignRight, alignRight, alignLeft,
		},
	)
}
