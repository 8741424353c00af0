package turboselect

import (
	"cmp"
	"math"
)

// selectOrdered places the k-th smallest element of data[a:b] at data[k],
// with data[a:k] <= data[k] <= data[k+1:b]. It requires a <= k < b.
//
// The loop maintains the invariant that data[:a] <= data[a:b] <= data[b:],
// so narrowing [a, b) never invalidates work done outside it. Recursion
// happens only through the pivot selectors, on ranges much smaller than
// b - a, which bounds the stack depth.
func selectOrdered[T cmp.Ordered](data []T, a, b, k int) {
	// A range that is already partitioned at k needs no work; on anything
	// else the scan aborts at the first witness. This makes repeated calls
	// with the same rank no-ops and resolves pre-sorted input in one pass.
	if alreadyPartitionedOrdered(data, a, b, k) {
		return
	}

	for {
		length := b - a

		if length <= insertionThreshold {
			insertionSortOrdered(data, a, b)
			return
		}

		// The extreme ranks are resolved by a single sweep.
		if k == a {
			selectMinOrdered(data, a, b)
			return
		}
		if k == b-1 {
			selectMaxOrdered(data, a, b)
			return
		}

		var piv int
		if length < sampleThreshold {
			piv = kthOfNthsOrdered(data, a, b, k)
		} else {
			var repeated bool
			piv, repeated = floydRivestPivotOrdered(data, a, b, k)
			if repeated {
				u, v := partitionEqualOrdered(data, a, b, piv)
				switch {
				case k < u:
					b = u
				case k > v:
					a = v + 1
				default:
					return
				}
				continue
			}
		}

		q := hoarePartitionOrdered(data, a, b, piv)
		switch {
		case k < q:
			b = q
		case k > q:
			a = q + 1
		default:
			return
		}
	}
}

// alreadyPartitionedOrdered reports whether data[k] splits data[a:b] into
// the three regions the selection contract requires.
func alreadyPartitionedOrdered[T cmp.Ordered](data []T, a, b, k int) bool {
	for i := a; i < k; i++ {
		if data[k] < data[i] {
			return false
		}
	}
	for i := k + 1; i < b; i++ {
		if data[i] < data[k] {
			return false
		}
	}
	return true
}

// kthOfNthsOrdered chooses a pivot for a small range by collecting the
// medians of groups of groupSize elements into the prefix and selecting,
// among them, the median whose rank is proportional to the target rank k.
// A plain median of medians lands pivots near the centre and wastes work
// when k is near either end; the proportional rank recovers that locality.
// Returns the index of the chosen pivot.
func kthOfNthsOrdered[T cmp.Ordered](data []T, a, b, k int) int {
	length := b - a
	g := length / groupSize
	for i := 0; i < g; i++ {
		m := a + i*groupSize
		med := medianIndex5Ordered(data, m, m+1, m+2, m+3, m+4)
		data[a+i], data[med] = data[med], data[a+i]
	}
	r := int(uint64(k-a) * uint64(g) / uint64(length))
	selectOrdered(data, a, a+g, a+r)
	return a + r
}

// floydRivestPivotOrdered chooses a pivot for a large range by moving a
// randomized sample into the prefix and selecting within it the element
// whose sample rank estimates the target rank k. The estimate is biased
// inward by beta standard deviations so the pivot lands between k and the
// middle of the range rather than short of k, which would leave the larger
// side to be scanned again.
//
// The second return value reports whether the pivot value appears to repeat
// many times, judged by probing a second sample position; callers should
// then prefer an equal partition over a two-way one.
func floydRivestPivotOrdered[T cmp.Ordered](data []T, a, b, k int) (int, bool) {
	length := b - a

	z := math.Log(float64(length))
	s := int(alpha * math.Exp(2*z/3) * math.Cbrt(z))
	if s < 2*groupSize {
		s = 2 * groupSize
	}
	if s > length/4 {
		s = length / 4
	}

	rng := sampleRNG(length, k-a)
	layoutSampleOrdered(data, a, b, s, &rng)

	ks := int(uint64(k-a) * uint64(s) / uint64(length))
	gap := beta * math.Sqrt(float64(s)*float64(k-a)*float64(b-1-k)) / float64(length)
	if k-a < length/2 {
		ks += int(gap)
	} else {
		ks -= int(gap)
	}
	if ks < 0 {
		ks = 0
	} else if ks >= s {
		ks = s - 1
	}

	selectOrdered(data, a, a+s, a+ks)

	probe := ks + 1 + s/16
	if probe >= s {
		probe = ks - 1 - s/16
	}
	repeated := probe >= 0 && data[a+probe] == data[a+ks]
	return a + ks, repeated
}

// layoutSampleOrdered swaps s elements from stride-spaced positions of
// data[a:b] into data[a:a+s]. Only the prefix is constrained afterwards;
// the rest of the range is permuted but keeps its multiset. The random
// offset within each stride defeats adversarial input layouts.
func layoutSampleOrdered[T cmp.Ordered](data []T, a, b, s int, rng *xorshift) {
	step := uint64((b - a) / s)
	for i := 0; i < s; i++ {
		j := a + i*int(step) + int(rng.Next()%step)
		data[a+i], data[j] = data[j], data[a+i]
	}
}

// hoarePartitionOrdered partitions data[a:b] around the value at index piv
// and returns the index q where it came to rest, with data[a:q] <= data[q]
// and data[q+1:b] >= data[q]. Elements equal to the pivot stop both cursors
// and are swapped across, which keeps the split balanced on all-equal input.
func hoarePartitionOrdered[T cmp.Ordered](data []T, a, b, piv int) int {
	data[a], data[piv] = data[piv], data[a]
	p := data[a]
	i, j := a+1, b-1
	for {
		for i <= j && data[i] < p {
			i++
		}
		for i <= j && p < data[j] {
			j--
		}
		if i >= j {
			break
		}
		data[i], data[j] = data[j], data[i]
		i++
		j--
	}
	data[a], data[j] = data[j], data[a]
	return j
}

// partitionEqualOrdered three-way partitions data[a:b] around the value at
// index piv and returns the inclusive bounds [u, v] of the run equal to it:
// data[a:u] < data[u], data[u:v+1] == data[u], data[v+1:b] > data[u].
// The run contains at least the pivot itself.
func partitionEqualOrdered[T cmp.Ordered](data []T, a, b, piv int) (u, v int) {
	data[a], data[piv] = data[piv], data[a]
	p := data[a]
	lt, i, gt := a, a, b
	for i < gt {
		switch {
		case data[i] < p:
			data[i], data[lt] = data[lt], data[i]
			lt++
			i++
		case p < data[i]:
			gt--
			data[i], data[gt] = data[gt], data[i]
		default:
			i++
		}
	}
	return lt, gt - 1
}

// selectMinOrdered swaps the smallest element of data[a:b] to data[a].
func selectMinOrdered[T cmp.Ordered](data []T, a, b int) {
	m := a
	for i := a + 1; i < b; i++ {
		if data[i] < data[m] {
			m = i
		}
	}
	data[a], data[m] = data[m], data[a]
}

// selectMaxOrdered swaps the largest element of data[a:b] to data[b-1].
func selectMaxOrdered[T cmp.Ordered](data []T, a, b int) {
	m := b - 1
	for i := b - 2; i >= a; i-- {
		if data[m] < data[i] {
			m = i
		}
	}
	data[b-1], data[m] = data[m], data[b-1]
}

// insertionSortOrdered sorts data[a:b] by repeated shift-insert.
func insertionSortOrdered[T cmp.Ordered](data []T, a, b int) {
	for i := a + 1; i < b; i++ {
		for j := i; j > a && data[j] < data[j-1]; j-- {
			data[j], data[j-1] = data[j-1], data[j]
		}
	}
}

// medianIndex5Ordered returns the index of the median of the five elements
// at indices a..e without moving any of them. The comparison tree performs
// at most seven comparisons.
func medianIndex5Ordered[T cmp.Ordered](data []T, a, b, c, d, e int) int {
	if data[b] < data[a] {
		a, b = b, a
	}
	if data[d] < data[c] {
		c, d = d, c
	}
	if data[c] < data[a] {
		a, c = c, a
		b, d = d, b
	}
	// Here data[a] <= data[b], data[a] <= data[c] <= data[d].
	if data[c] < data[e] {
		if data[d] < data[e] {
			if data[b] < data[d] {
				if data[c] < data[b] {
					return b
				}
				return c
			}
			return d
		}
		if data[b] < data[e] {
			if data[c] < data[b] {
				return b
			}
			return c
		}
		return e
	}
	if data[b] < data[c] {
		if data[e] < data[a] {
			return b
		}
		if data[e] < data[b] {
			return b
		}
		return e
	}
	return c
}
