package locator

import (
	"fmt"
	"sort"
)

// Curve maps throw progress in [0, 1] to interpolation weight along the
// start-target line.
type Curve func(t float64) float64

// Linear is the identity curve.
func Linear(t float64) float64 { return t }

// EaseInOut is a cubic Hermite ease with zero tangents at both ends.
func EaseInOut(t float64) float64 {
	return t * t * (3 - 2*t)
}

// EaseOut decelerates towards the target.
func EaseOut(t float64) float64 {
	u := 1 - t
	return 1 - u*u
}

var curves = map[string]Curve{
	"linear":      Linear,
	"ease_in_out": EaseInOut,
	"ease_out":    EaseOut,
}

// CurveByName looks up a curve by its config name.
func CurveByName(name string) (Curve, error) {
	c, ok := curves[name]
	if !ok {
		return nil, fmt.Errorf("unknown throw curve %q (known: %v)", name, CurveNames())
	}
	return c, nil
}

// CurveNames lists the known curve names, sorted.
func CurveNames() []string {
	names := make([]string, 0, len(curves))
	for name := range curves {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
