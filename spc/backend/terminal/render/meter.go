package render

import "strings"

// Meter draws a horizontal bar of width cells for value out of limit, using
// eighth blocks for the partial cell.
func Meter(value, limit, width int) string {
	if width <= 0 {
		return ""
	}
	if value < 0 {
		value = -value
	}
	if limit <= 0 || value == 0 {
		return strings.Repeat(" ", width)
	}
	value = min(value, limit)

	eighths := value * width * 8 / limit
	full := eighths / 8
	part := eighths % 8

	var sb strings.Builder
	sb.WriteString(strings.Repeat("█", full))
	if full < width {
		if part > 0 {
			sb.WriteRune([]rune(" ▏▎▍▌▋▊▉")[part])
		} else {
			sb.WriteByte(' ')
		}
		sb.WriteString(strings.Repeat(" ", width-full-1))
	}
	return sb.String()
}
