package main

import "strings"

// formatTable renders rows under headers with two spaces between
// columns. Column widths are computed on display width, so ANSI-styled
// cells do not skew alignment.
func formatTable(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, header := range headers {
		widths[i] = displayWidth(header)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			widths[i] = max(widths[i], displayWidth(cell))
		}
	}

	var builder strings.Builder
	writeRow := func(row []string) {
		for i, cell := range row {
			builder.WriteString(cell)
			if i == len(row)-1 {
				break
			}
			builder.WriteString(strings.Repeat(" ", widths[i]-displayWidth(cell)+2))
		}
		builder.WriteByte('\n')
	}

	writeRow(headers)
	for _, row := range rows {
		writeRow(row)
	}
	return builder.String()
}

// displayWidth is the cell's width with SGR escape sequences removed.
func displayWidth(cell string) int {
	return len(stripANSICodes(cell))
}

func stripANSICodes(input string) string {
	var builder strings.Builder
	inEscape := false
	for i := 0; i < len(input); i++ {
		switch {
		case inEscape:
			if input[i] == 'm' {
				inEscape = false
			}
		case input[i] == '\x1b':
			inEscape = true
		default:
			builder.WriteByte(input[i])
		}
	}
	return builder.String()
}
