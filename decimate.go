package keyframe

import (
	"github.com/akmonengine/keyframe/animation"
)

// errorMetric measures how far a reconstructed value is from the original one.
// within must be monotonic in distance: if a key is out of tolerance, every key
// with a larger distance is too.
type errorMetric[V any] interface {
	distance(original, reconstructed V) float64
	within(original, reconstructed V) bool
}

type interval struct {
	lo, hi int
}

// decimate removes the keys that can be rebuilt from their surviving
// neighbours within tolerance. For each interval, the interior key with the
// largest reconstruction error is located: if every interior key is within
// tolerance the interval collapses to its endpoints, otherwise it is split at
// that key. An explicit stack replaces recursion. First and last keys are
// always kept and surviving keys are never altered.
func decimate[V any](keys []animation.Keyframe[V], lerp func(a, b V, alpha float64) V, metric errorMetric[V]) []animation.Keyframe[V] {
	n := len(keys)
	if n <= 2 {
		return append([]animation.Keyframe[V](nil), keys...)
	}

	kept := make([]bool, n)
	kept[0], kept[n-1] = true, true

	stack := []interval{{0, n - 1}}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if current.hi-current.lo < 2 {
			continue
		}

		left, right := keys[current.lo], keys[current.hi]
		worst, worstDistance := -1, -1.0
		for i := current.lo + 1; i < current.hi; i++ {
			alpha := (keys[i].Time - left.Time) / (right.Time - left.Time)
			rebuilt := lerp(left.Value, right.Value, alpha)
			if metric.within(keys[i].Value, rebuilt) {
				continue
			}

			if d := metric.distance(keys[i].Value, rebuilt); worst == -1 || d > worstDistance {
				worst, worstDistance = i, d
			}
		}

		if worst == -1 {
			continue
		}

		kept[worst] = true
		stack = append(stack, interval{worst, current.hi}, interval{current.lo, worst})
	}

	result := make([]animation.Keyframe[V], 0, n)
	for i, key := range keys {
		if kept[i] {
			result = append(result, key)
		}
	}
	return result
}
