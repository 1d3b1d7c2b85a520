package utils

import (
	"os"

	"github.com/olekukonko/tablewriter"
)

// WriteTable renders the data to stdout as a table. The first row is the
// header.
func WriteTable(data [][]string) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(data[0])
	for i := 1; i <= len(data)-1; i++ {
		table.Append(data[i])
	}
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetRowLine(true)
	table.Render()
}
