package ui

import (
	"math"
	"strconv"
	"strings"

	"github.com/ramanasai/chime/internal/clock"
)

// Terminal cells are roughly twice as tall as wide, so x is stretched.
const cellAspect = 2.0

// renderFace draws an analog dial of the given radius (in rows).
func renderFace(h clock.HandAngles, radius int) string {
	rows, cols := 2*radius+1, int(2*cellAspect*float64(radius))+1
	grid := make([][]rune, rows)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", cols))
	}
	cx, cy := cols/2, radius

	plot := func(p clock.Point, r rune) {
		x := cx + int(math.Round(p.X*cellAspect))
		y := cy + int(math.Round(p.Y))
		if y >= 0 && y < rows && x >= 0 && x < cols {
			grid[y][x] = r
		}
	}
	hand := func(deg, length float64, r rune) {
		for d := 0.5; d <= length; d += 0.25 {
			plot(clock.Polar(deg, d), r)
		}
	}

	R := float64(radius)
	for deg := 0; deg < 360; deg += 4 {
		plot(clock.Polar(float64(deg), R), '·')
	}
	for i, p := range clock.DialPositions(R - 1.3) {
		label := []rune(strconv.Itoa(i + 1))
		x := cx + int(math.Round(p.X*cellAspect)) - len(label)/2
		y := cy + int(math.Round(p.Y))
		for j, r := range label {
			if y >= 0 && y < rows && x+j >= 0 && x+j < cols {
				grid[y][x+j] = r
			}
		}
	}
	hand(h.Hour, R*0.45, '█')
	hand(h.Minute, R*0.7, '▓')
	hand(h.Second, R*0.8, '•')
	plot(clock.Point{}, '◉')

	lines := make([]string, rows)
	for i, row := range grid {
		lines[i] = string(row)
	}
	return strings.Join(lines, "\n")
}
