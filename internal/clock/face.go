package clock

import (
	"math"
	"time"
)

// HandAngles are clockwise rotations in degrees from 12 o'clock.
type HandAngles struct {
	Hour   float64
	Minute float64
	Second float64
}

// Hands computes the analog hand angles for now. The second and minute hands
// sweep continuously; the hour hand advances with the minutes.
func Hands(now time.Time) HandAngles {
	h := float64(now.Hour() % 12)
	m := float64(now.Minute())
	sec := float64(now.Second()) + float64(now.Nanosecond()/int(time.Millisecond))/1000

	return HandAngles{
		Hour:   (h + m/60) * 30,
		Minute: (m + sec/60) * 6,
		Second: sec * 6,
	}
}

// Point is an offset from the dial centre; Y grows downwards.
type Point struct {
	X, Y float64
}

// DialPositions places the numerals 1..12 on a circle of the given radius.
// Index 0 holds numeral 1.
func DialPositions(radius float64) [12]Point {
	var out [12]Point
	for n := 1; n <= 12; n++ {
		out[n-1] = Polar(float64(n)*30, radius)
	}
	return out
}

// Polar converts a clockwise angle from 12 o'clock into a dial offset.
func Polar(deg, radius float64) Point {
	rad := (deg - 90) * math.Pi / 180
	return Point{X: math.Cos(rad) * radius, Y: math.Sin(rad) * radius}
}
