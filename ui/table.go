package ui

import (
	"fmt"
	"io"

	"crate/model"

	"github.com/mattn/go-runewidth"
	"github.com/olekukonko/tablewriter"
)

// NoRecords is printed instead of an empty grid.
const NoRecords = "No records found."

const ellipsis = "..."

type column struct {
	header string
	width  int // content width, excluding cell padding
}

var trackColumns = []column{
	{"ID", 3},
	{"Track", 20},
	{"Album", 18},
	{"Artist", 18},
	{"Year", 4},
	{"Genre", 10},
	{"Comment", 22},
}

// Truncate shortens s to at most width display cells, marking the cut
// with an ellipsis.
func Truncate(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, ellipsis)
}

// RenderTracks writes tracks as a fixed-width bordered table.
func RenderTracks(w io.Writer, tracks []*model.Track) {
	if len(tracks) == 0 {
		fmt.Fprintln(w, NoRecords)
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	headers := make([]string, 0, len(trackColumns))
	for i, col := range trackColumns {
		headers = append(headers, col.header)
		table.SetColMinWidth(i, col.width)
	}
	table.SetHeader(headers)

	for _, track := range tracks {
		cells := track.Cells()
		for i, col := range trackColumns {
			cells[i] = Truncate(cells[i], col.width)
		}
		table.Append(cells)
	}
	table.Render()
}
