// Package plot lays out the decode table as a scatter plot:
// encodings on the X axis, decoded values on the Y axis.
// Infinities are pinned to the edge of the finite range and NaNs to zero,
// each with its own marker. Drawing the layout is up to the caller.
package plot

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/avdva/fp8/table"
)

const (
	// padding is applied to the Y limits.
	padding = 1.1

	fallbackMin = -1.0
	fallbackMax = 1.0
)

// Marker tells how a point is drawn.
type Marker uint8

const (
	// MarkerDot is a finite value.
	MarkerDot Marker = iota
	// MarkerCross is an infinity.
	MarkerCross
	// MarkerStar is a NaN.
	MarkerStar
)

var markerNames = [...]string{"dot", "cross", "star"}

func (m Marker) String() string {
	if int(m) < len(markerNames) {
		return markerNames[m]
	}
	return "Marker(" + strconv.Itoa(int(m)) + ")"
}

// Point is a single marker on the plot.
type Point struct {
	X      int
	Y      float64
	Marker Marker
}

// Layout is the plot of a table.
type Layout struct {
	Points     []Point
	Infinities []Point
	NaNs       []Point

	XMin, XMax int
	// YMin and YMax are the axis limits.
	YMin, YMax float64
}

// New builds the layout for t.
// If t has no finite values, the Y range falls back to [-1, 1].
func New(t *table.Table) Layout {
	lo, hi, ok := t.FiniteRange()
	if !ok {
		lo, hi = fallbackMin, fallbackMax
	}
	l := Layout{
		XMin: 0,
		XMax: table.Size - 1,
		YMin: lo * padding,
		YMax: hi * padding,
	}
	buckets := t.Partition()
	for _, r := range buckets.Finite {
		l.Points = append(l.Points, Point{X: int(r.Bits), Y: r.Value.Float64(), Marker: MarkerDot})
	}
	for _, r := range buckets.Infinite {
		y := hi
		if r.Value.Signbit() {
			y = -hi
		}
		l.Infinities = append(l.Infinities, Point{X: int(r.Bits), Y: y, Marker: MarkerCross})
	}
	for _, r := range buckets.NaN {
		l.NaNs = append(l.NaNs, Point{X: int(r.Bits), Y: 0, Marker: MarkerStar})
	}
	return l
}

// All returns all the points, finite ones first.
func (l Layout) All() []Point {
	result := make([]Point, 0, len(l.Points)+len(l.Infinities)+len(l.NaNs))
	result = append(result, l.Points...)
	result = append(result, l.Infinities...)
	return append(result, l.NaNs...)
}

// WriteCSV writes points as "x,y,marker" lines with a header.
func (l Layout) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"x", "y", "marker"}); err != nil {
		return err
	}
	for _, p := range l.All() {
		if err := cw.Write([]string{strconv.Itoa(p.X), strconv.FormatFloat(p.Y, 'g', -1, 64), p.Marker.String()}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
