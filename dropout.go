package edgeart

import (
	"fmt"
	"math"
)

// Rand is a source of uniformly distributed numbers in [0, 1).
type Rand interface {
	Float64() float64
}

// DropOutStrategy selects how the edge points get thinned.
type DropOutStrategy int

const (
	// Random keeps every point independently with the drop-out probability.
	Random DropOutStrategy = iota
	// Sequential keeps an evenly spaced share of the points.
	Sequential
)

var dropOutNames = []string{"random", "sequential"}

func (s DropOutStrategy) String() string {
	if s < 0 || int(s) >= len(dropOutNames) {
		return fmt.Sprintf("DropOutStrategy(%d)", int(s))
	}
	return dropOutNames[s]
}

// ParseDropOut returns the strategy with the given name.
func ParseDropOut(name string) (DropOutStrategy, error) {
	for i, n := range dropOutNames {
		if n == name {
			return DropOutStrategy(i), nil
		}
	}
	return 0, fmt.Errorf("unknown drop out strategy %q", name)
}

// DropOut keeps the elements at which floor(i*fraction) steps to the next integer.
// The result is deterministic and holds floor(len(l)*fraction) elements.
func DropOut[T any](l []T, fraction float64) []T {
	res := make([]T, 0, int(float64(len(l))*fraction)+1)
	for i := range l {
		if math.Floor(float64(i)*fraction) != math.Floor(float64(i+1)*fraction) {
			res = append(res, l[i])
		}
	}
	return res
}

// DropOutRandom keeps each element with probability fraction.
func DropOutRandom[T any](l []T, fraction float64, rnd Rand) []T {
	res := make([]T, 0, int(float64(len(l))*fraction)+1)
	for _, v := range l {
		if rnd.Float64() < fraction {
			res = append(res, v)
		}
	}
	return res
}
