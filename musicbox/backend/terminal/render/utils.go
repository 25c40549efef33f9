package render

import "strings"

// Brightness ramp for the LED cell, darkest first.
var ledRamp = []rune{' ', '░', '▒', '▓', '█'}

// LEDRune picks a block character for level out of max.
func LEDRune(level, max uint8) rune {
	if max == 0 || level == 0 {
		return ledRamp[0]
	}
	if level >= max {
		return ledRamp[len(ledRamp)-1]
	}
	idx := 1 + int(level)*(len(ledRamp)-2)/int(max)
	return ledRamp[idx]
}

// LEDGray maps level out of max to an 8-bit gray value.
func LEDGray(level, max uint8) uint8 {
	if max == 0 || level >= max {
		if max == 0 {
			return 0
		}
		return 255
	}
	return uint8(uint16(level) * 255 / uint16(max))
}

// LevelBar renders level out of max as a bar of width cells.
func LevelBar(level, max uint8, width int) string {
	if width <= 0 {
		return ""
	}
	filled := 0
	if max > 0 {
		filled = int(level) * width / int(max)
		if filled > width {
			filled = width
		}
	}
	return strings.Repeat("█", filled) + strings.Repeat("·", width-filled)
}

// ScopeRows maps each column of a width-wide plot to a row in [0, height),
// row 0 at the top. The most recent samples are shown; missing columns sit
// on the center line.
func ScopeRows(samples []int16, width, height int) []int {
	if width <= 0 || height <= 0 {
		return nil
	}
	rows := make([]int, width)
	mid := (height - 1) / 2
	offset := len(samples) - width
	for x := range rows {
		i := offset + x
		if i < 0 {
			rows[x] = mid
			continue
		}
		// int16 range onto [height-1, 0]
		v := int(samples[i]) + 32768
		rows[x] = height - 1 - v*height/65536
	}
	return rows
}
