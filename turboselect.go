// Package turboselect implements in-place selection of the n-th smallest
// element of a slice. It is a hybrid of Floyd-Rivest SELECT for large ranges,
// a rank-biased median-of-medians quickselect for small ranges, and a
// three-way equal partition for duplicate-rich inputs, composed around a
// Hoare-style single-pivot partition.
//
// After a call with rank k, the element that would occupy position k in
// sorted order is at data[k], every element of data[:k] is <= data[k], and
// every element of data[k+1:] is >= data[k]. The order within the two outer
// regions is unspecified and the relative order of equal elements is not
// preserved.
//
// Selection runs in expected O(n) time and allocates nothing, except for
// SelectNthByCachedKey which holds one scratch buffer of n keys for the
// duration of the call.
package turboselect

import (
	"cmp"
	"fmt"
)

// Tuning constants of the selection engine.
//
//   - insertionThreshold: ranges at most this long are finished with an
//     insertion sort instead of further partitioning.
//   - sampleThreshold: ranges at least this long choose their pivot with the
//     Floyd-Rivest sampling selector; shorter ranges use rank-biased medians
//     of groups.
//   - groupSize: group width of the small-range pivot selector.
//   - alpha: Floyd-Rivest sample-size factor, s = alpha * L^(2/3) * ln(L)^(1/3).
//   - beta: factor of the inward rank bias applied to the sample target.
const (
	insertionThreshold = 16
	sampleThreshold    = 10000
	groupSize          = 5
	alpha              = 0.5
	beta               = 0.5
)

// SelectNth rearranges data so that data[k] holds its k-th smallest element
// and returns the three regions around it: less = data[:k], the value now at
// data[k], and greater = data[k+1:]. The returned slices are views of data,
// not copies.
//
// SelectNth panics if k is not a valid rank, i.e. unless 0 <= k < len(data).
func SelectNth[T cmp.Ordered](data []T, k int) (less []T, nth T, greater []T) {
	checkRank(k, len(data))
	selectOrdered(data, 0, len(data), k)
	return data[:k], data[k], data[k+1:]
}

// SelectNthFunc is like SelectNth but orders elements with the comparison
// function cmp, which must define a deterministic total order: cmp(a, b)
// returns a negative number when a < b, zero when a == b, and a positive
// number when a > b.
func SelectNthFunc[E any](data []E, k int, cmp func(a, b E) int) (less []E, nth E, greater []E) {
	checkRank(k, len(data))
	selectFunc(data, 0, len(data), k, cmp)
	return data[:k], data[k], data[k+1:]
}

// SelectNthByKey is like SelectNth but orders elements by the key returned
// from key. The key function is invoked on demand during selection, possibly
// many times per element; when keys are expensive to compute, use
// SelectNthByCachedKey instead.
func SelectNthByKey[E any, K cmp.Ordered](data []E, k int, key func(E) K) (less []E, nth E, greater []E) {
	checkRank(k, len(data))
	selectFunc(data, 0, len(data), k, func(a, b E) int {
		return cmp.Compare(key(a), key(b))
	})
	return data[:k], data[k], data[k+1:]
}

// SelectNthByCachedKey is like SelectNthByKey but invokes key exactly once
// per element. The keys are held in a scratch buffer of len(data) keys that
// is permuted in lockstep with data and becomes collectable when the call
// returns, on every path including a panic from key.
func SelectNthByCachedKey[E any, K cmp.Ordered](data []E, k int, key func(E) K) (less []E, nth E, greater []E) {
	checkRank(k, len(data))
	keys := make([]K, len(data))
	for i := range data {
		keys[i] = key(data[i])
	}
	selectKeyed(keys, data, 0, len(data), k)
	return data[:k], data[k], data[k+1:]
}

func checkRank(k, n int) {
	if k < 0 || k >= n {
		panic(fmt.Sprintf("turboselect: rank %d out of bounds [0, %d)", k, n))
	}
}
