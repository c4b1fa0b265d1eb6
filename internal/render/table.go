// Package render builds plain-text tables for terminal output.
package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"foliot/internal/domain"
	"foliot/internal/services"
)

const (
	dateLayout = "02.01.2006"
	timeLayout = "15:04"
)

// Entries renders one line per entry with column-width padding. The
// comment column is wrapped at wrap characters (0 disables wrapping).
func Entries(entries []domain.Entry, wrap int) []string {
	headers := []string{"date", "from", "to", "duration", "comment"}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		comment := e.Comment
		rows = appendWrapped(rows, []string{
			e.StartTime.Format(dateLayout),
			e.StartTime.Format(timeLayout),
			e.EndTime.Format(timeLayout),
			e.Duration().String(),
			comment,
		}, wrap)
	}
	return formatTable(headers, rows, map[int]bool{3: true})
}

// Summaries renders one line per monthly rollup.
func Summaries(summaries []services.MonthlySummary) []string {
	headers := []string{"month", "total", "days", "hours/week", "entries"}
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{
			s.Month,
			s.TotalDuration.String(),
			fmt.Sprintf("%d", s.Days),
			fmt.Sprintf("%.2f", s.HoursPerWeek),
			fmt.Sprintf("%d", s.Entries),
		})
	}
	return formatTable(headers, rows, map[int]bool{1: true, 2: true, 3: true, 4: true})
}

// appendWrapped splits the last cell across continuation rows when it
// exceeds the wrap width; the other columns stay empty on those rows.
func appendWrapped(rows [][]string, row []string, wrap int) [][]string {
	last := len(row) - 1
	pieces := wrapText(row[last], wrap)
	row[last] = pieces[0]
	rows = append(rows, row)
	for _, piece := range pieces[1:] {
		cont := make([]string, len(row))
		cont[last] = piece
		rows = append(rows, cont)
	}
	return rows
}

// wrapText breaks text into chunks of at most width runes, preferring
// space boundaries. width <= 0 returns the text unchanged.
func wrapText(text string, width int) []string {
	if width <= 0 || utf8.RuneCountInString(text) <= width {
		return []string{text}
	}

	var pieces []string
	words := strings.Fields(text)
	var line strings.Builder
	for _, word := range words {
		if line.Len() > 0 && utf8.RuneCountInString(line.String())+1+utf8.RuneCountInString(word) > width {
			pieces = append(pieces, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		pieces = append(pieces, line.String())
	}
	if len(pieces) == 0 {
		pieces = []string{""}
	}
	return pieces
}

func formatTable(headers []string, rows [][]string, rightAlignCols map[int]bool) []string {
	colCount := len(headers)
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	if colCount == 0 {
		return nil
	}

	widths := make([]int, colCount)
	for i, header := range headers {
		widths[i] = displayWidth(header)
	}
	for _, row := range rows {
		for i := 0; i < colCount; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			if w := displayWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	lines := make([]string, 0, len(rows)+1)
	if len(headers) > 0 {
		lines = append(lines, formatRow(headers, widths, rightAlignCols))
	}
	for _, row := range rows {
		lines = append(lines, formatRow(row, widths, rightAlignCols))
	}
	return lines
}

func formatRow(row []string, widths []int, rightAlignCols map[int]bool) string {
	var b strings.Builder
	for i := 0; i < len(widths); i++ {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(padCell(cell, widths[i], rightAlignCols[i]))
	}
	return strings.TrimRight(b.String(), " ")
}

func padCell(value string, width int, rightAlign bool) string {
	valueWidth := displayWidth(value)
	if valueWidth >= width {
		return value
	}
	padding := width - valueWidth
	if rightAlign {
		return strings.Repeat(" ", padding) + value
	}
	return value + strings.Repeat(" ", padding)
}

func displayWidth(value string) int {
	return utf8.RuneCountInString(value)
}
