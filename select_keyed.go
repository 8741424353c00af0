package turboselect

import (
	"cmp"
	"math"
)

// selectKeyed is the engine of selectOrdered instantiated for a payload
// slice ordered by a parallel buffer of precomputed keys. Every comparison
// reads only keys and every swap moves the key and its element in lockstep,
// so keys[i] stays the key of items[i] throughout. See selectOrdered for
// the maintained invariants.
func selectKeyed[K cmp.Ordered, E any](keys []K, items []E, a, b, k int) {
	// A range that is already partitioned at k needs no work; on anything
	// else the scan aborts at the first witness.
	if alreadyPartitionedOrdered(keys, a, b, k) {
		return
	}

	for {
		length := b - a

		if length <= insertionThreshold {
			insertionSortKeyed(keys, items, a, b)
			return
		}

		// The extreme ranks are resolved by a single sweep.
		if k == a {
			selectMinKeyed(keys, items, a, b)
			return
		}
		if k == b-1 {
			selectMaxKeyed(keys, items, a, b)
			return
		}

		var piv int
		if length < sampleThreshold {
			piv = kthOfNthsKeyed(keys, items, a, b, k)
		} else {
			var repeated bool
			piv, repeated = floydRivestPivotKeyed(keys, items, a, b, k)
			if repeated {
				u, v := partitionEqualKeyed(keys, items, a, b, piv)
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

		q := hoarePartitionKeyed(keys, items, a, b, piv)
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

func swapKeyed[K, E any](keys []K, items []E, i, j int) {
	keys[i], keys[j] = keys[j], keys[i]
	items[i], items[j] = items[j], items[i]
}

// kthOfNthsKeyed chooses a rank-biased median-of-medians pivot for a small
// range; see kthOfNthsOrdered.
func kthOfNthsKeyed[K cmp.Ordered, E any](keys []K, items []E, a, b, k int) int {
	length := b - a
	g := length / groupSize
	for i := 0; i < g; i++ {
		m := a + i*groupSize
		med := medianIndex5Ordered(keys, m, m+1, m+2, m+3, m+4)
		swapKeyed(keys, items, a+i, med)
	}
	r := int(uint64(k-a) * uint64(g) / uint64(length))
	selectKeyed(keys, items, a, a+g, a+r)
	return a + r
}

// floydRivestPivotKeyed chooses a sampling pivot for a large range; see
// floydRivestPivotOrdered.
func floydRivestPivotKeyed[K cmp.Ordered, E any](keys []K, items []E, a, b, k int) (int, bool) {
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
	step := uint64(length / s)
	for i := 0; i < s; i++ {
		j := a + i*int(step) + int(rng.Next()%step)
		swapKeyed(keys, items, a+i, j)
	}

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

	selectKeyed(keys, items, a, a+s, a+ks)

	probe := ks + 1 + s/16
	if probe >= s {
		probe = ks - 1 - s/16
	}
	repeated := probe >= 0 && keys[a+probe] == keys[a+ks]
	return a + ks, repeated
}

// hoarePartitionKeyed partitions keys[a:b] and items[a:b] around the key at
// index piv; see hoarePartitionOrdered.
func hoarePartitionKeyed[K cmp.Ordered, E any](keys []K, items []E, a, b, piv int) int {
	swapKeyed(keys, items, a, piv)
	p := keys[a]
	i, j := a+1, b-1
	for {
		for i <= j && keys[i] < p {
			i++
		}
		for i <= j && p < keys[j] {
			j--
		}
		if i >= j {
			break
		}
		swapKeyed(keys, items, i, j)
		i++
		j--
	}
	swapKeyed(keys, items, a, j)
	return j
}

// partitionEqualKeyed three-way partitions keys[a:b] and items[a:b] around
// the key at index piv; see partitionEqualOrdered.
func partitionEqualKeyed[K cmp.Ordered, E any](keys []K, items []E, a, b, piv int) (u, v int) {
	swapKeyed(keys, items, a, piv)
	p := keys[a]
	lt, i, gt := a, a, b
	for i < gt {
		switch {
		case keys[i] < p:
			swapKeyed(keys, items, i, lt)
			lt++
			i++
		case p < keys[i]:
			gt--
			swapKeyed(keys, items, i, gt)
		default:
			i++
		}
	}
	return lt, gt - 1
}

// selectMinKeyed swaps the element with the smallest key to position a.
func selectMinKeyed[K cmp.Ordered, E any](keys []K, items []E, a, b int) {
	m := a
	for i := a + 1; i < b; i++ {
		if keys[i] < keys[m] {
			m = i
		}
	}
	swapKeyed(keys, items, a, m)
}

// selectMaxKeyed swaps the element with the largest key to position b-1.
func selectMaxKeyed[K cmp.Ordered, E any](keys []K, items []E, a, b int) {
	m := b - 1
	for i := b - 2; i >= a; i-- {
		if keys[m] < keys[i] {
			m = i
		}
	}
	swapKeyed(keys, items, b-1, m)
}

// insertionSortKeyed sorts keys[a:b] and items[a:b] in lockstep.
func insertionSortKeyed[K cmp.Ordered, E any](keys []K, items []E, a, b int) {
	for i := a + 1; i < b; i++ {
		for j := i; j > a && keys[j] < keys[j-1]; j-- {
			swapKeyed(keys, items, j, j-1)
		}
	}
}
