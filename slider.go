package tuikit

import (
	"strconv"
	"strings"
)

// Slider holds an integer in the inclusive range [min, max]. Increment and
// Decrement saturate at the bounds.
type Slider struct {
	label string
	min   int
	max   int
	value int
}

// NewSlider creates a slider. Inverted bounds are swapped and value is
// clamped into range, so the bounds invariant holds from construction on.
func NewSlider(label string, min, max, value int) *Slider {
	if min > max {
		min, max = max, min
	}
	return &Slider{
		label: label,
		min:   min,
		max:   max,
		value: clamp(value, min, max),
	}
}

func (s *Slider) Label() string {
	return s.label
}

func (s *Slider) Min() int {
	return s.min
}

func (s *Slider) Max() int {
	return s.max
}

func (s *Slider) Value() int {
	return s.value
}

// Increment moves the value up by one unless it is already at max.
func (s *Slider) Increment() {
	if s.value < s.max {
		s.value++
	}
}

// Decrement moves the value down by one unless it is already at min.
func (s *Slider) Decrement() {
	if s.value > s.min {
		s.value--
	}
}

// rulerWidth picks the ruler length from coarse bands of the range size.
func rulerWidth(span uint) int {
	switch {
	case span <= 10:
		return 8
	case span <= 50:
		return 12
	case span <= 200:
		return 16
	default:
		return 10
	}
}

// Render draws "label [min ───┼──── max]: value". The knob position is an
// approximation within the banded ruler width.
func (s *Slider) Render() string {
	// Differences are taken as uint so extreme bounds cannot overflow.
	span := uint(s.max - s.min)
	width := rulerWidth(span)
	knob := 0
	if span > 0 {
		knob = int(float64(uint(s.value-s.min)) / float64(span) * float64(width-1))
	}

	var b strings.Builder
	b.WriteString(s.label)
	b.WriteString(" [")
	b.WriteString(strconv.Itoa(s.min))
	b.WriteByte(' ')
	for i := 0; i < width; i++ {
		if i == knob {
			b.WriteString("┼")
		} else {
			b.WriteString("─")
		}
	}
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(s.max))
	b.WriteString("]: ")
	b.WriteString(strconv.Itoa(s.value))
	return b.String()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
