package turboselect

import "math"

// selectFunc is the engine of selectOrdered instantiated for an arbitrary
// element type with a three-way comparison function. See selectOrdered for
// the maintained invariants.
func selectFunc[E any](data []E, a, b, k int, cmp func(a, b E) int) {
	// A range that is already partitioned at k needs no work; on anything
	// else the scan aborts at the first witness.
	if alreadyPartitionedFunc(data, a, b, k, cmp) {
		return
	}

	for {
		length := b - a

		if length <= insertionThreshold {
			insertionSortFunc(data, a, b, cmp)
			return
		}

		// The extreme ranks are resolved by a single sweep.
		if k == a {
			selectMinFunc(data, a, b, cmp)
			return
		}
		if k == b-1 {
			selectMaxFunc(data, a, b, cmp)
			return
		}

		var piv int
		if length < sampleThreshold {
			piv = kthOfNthsFunc(data, a, b, k, cmp)
		} else {
			var repeated bool
			piv, repeated = floydRivestPivotFunc(data, a, b, k, cmp)
			if repeated {
				u, v := partitionEqualFunc(data, a, b, piv, cmp)
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

		q := hoarePartitionFunc(data, a, b, piv, cmp)
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

// alreadyPartitionedFunc reports whether data[k] splits data[a:b] into the
// three regions the selection contract requires.
func alreadyPartitionedFunc[E any](data []E, a, b, k int, cmp func(a, b E) int) bool {
	for i := a; i < k; i++ {
		if cmp(data[k], data[i]) < 0 {
			return false
		}
	}
	for i := k + 1; i < b; i++ {
		if cmp(data[i], data[k]) < 0 {
			return false
		}
	}
	return true
}

// kthOfNthsFunc chooses a rank-biased median-of-medians pivot for a small
// range; see kthOfNthsOrdered.
func kthOfNthsFunc[E any](data []E, a, b, k int, cmp func(a, b E) int) int {
	length := b - a
	g := length / groupSize
	for i := 0; i < g; i++ {
		m := a + i*groupSize
		med := medianIndex5Func(data, m, m+1, m+2, m+3, m+4, cmp)
		data[a+i], data[med] = data[med], data[a+i]
	}
	r := int(uint64(k-a) * uint64(g) / uint64(length))
	selectFunc(data, a, a+g, a+r, cmp)
	return a + r
}

// floydRivestPivotFunc chooses a sampling pivot for a large range; see
// floydRivestPivotOrdered.
func floydRivestPivotFunc[E any](data []E, a, b, k int, cmp func(a, b E) int) (int, bool) {
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
	layoutSampleFunc(data, a, b, s, &rng)

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

	selectFunc(data, a, a+s, a+ks, cmp)

	probe := ks + 1 + s/16
	if probe >= s {
		probe = ks - 1 - s/16
	}
	repeated := probe >= 0 && cmp(data[a+probe], data[a+ks]) == 0
	return a + ks, repeated
}

// layoutSampleFunc swaps s stride-spaced elements of data[a:b] into the
// prefix data[a:a+s]; see layoutSampleOrdered.
func layoutSampleFunc[E any](data []E, a, b, s int, rng *xorshift) {
	step := uint64((b - a) / s)
	for i := 0; i < s; i++ {
		j := a + i*int(step) + int(rng.Next()%step)
		data[a+i], data[j] = data[j], data[a+i]
	}
}

// hoarePartitionFunc partitions data[a:b] around the value at index piv;
// see hoarePartitionOrdered.
func hoarePartitionFunc[E any](data []E, a, b, piv int, cmp func(a, b E) int) int {
	data[a], data[piv] = data[piv], data[a]
	p := data[a]
	i, j := a+1, b-1
	for {
		for i <= j && cmp(data[i], p) < 0 {
			i++
		}
		for i <= j && cmp(p, data[j]) < 0 {
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

// partitionEqualFunc three-way partitions data[a:b] around the value at
// index piv; see partitionEqualOrdered.
func partitionEqualFunc[E any](data []E, a, b, piv int, cmp func(a, b E) int) (u, v int) {
	data[a], data[piv] = data[piv], data[a]
	p := data[a]
	lt, i, gt := a, a, b
	for i < gt {
		switch c := cmp(data[i], p); {
		case c < 0:
			data[i], data[lt] = data[lt], data[i]
			lt++
			i++
		case c > 0:
			gt--
			data[i], data[gt] = data[gt], data[i]
		default:
			i++
		}
	}
	return lt, gt - 1
}

// selectMinFunc swaps the smallest element of data[a:b] to data[a].
func selectMinFunc[E any](data []E, a, b int, cmp func(a, b E) int) {
	m := a
	for i := a + 1; i < b; i++ {
		if cmp(data[i], data[m]) < 0 {
			m = i
		}
	}
	data[a], data[m] = data[m], data[a]
}

// selectMaxFunc swaps the largest element of data[a:b] to data[b-1].
func selectMaxFunc[E any](data []E, a, b int, cmp func(a, b E) int) {
	m := b - 1
	for i := b - 2; i >= a; i-- {
		if cmp(data[m], data[i]) < 0 {
			m = i
		}
	}
	data[b-1], data[m] = data[m], data[b-1]
}

// insertionSortFunc sorts data[a:b] by repeated shift-insert.
func insertionSortFunc[E any](data []E, a, b int, cmp func(a, b E) int) {
	for i := a + 1; i < b; i++ {
		for j := i; j > a && cmp(data[j], data[j-1]) < 0; j-- {
			data[j], data[j-1] = data[j-1], data[j]
		}
	}
}

// medianIndex5Func returns the index of the median of the five elements at
// indices a..e without moving any of them; see medianIndex5Ordered.
func medianIndex5Func[E any](data []E, a, b, c, d, e int, cmp func(a, b E) int) int {
	if cmp(data[b], data[a]) < 0 {
		a, b = b, a
	}
	if cmp(data[d], data[c]) < 0 {
		c, d = d, c
	}
	if cmp(data[c], data[a]) < 0 {
		a, c = c, a
		b, d = d, b
	}
	// Here data[a] <= data[b], data[a] <= data[c] <= data[d].
	if cmp(data[c], data[e]) < 0 {
		if cmp(data[d], data[e]) < 0 {
			if cmp(data[b], data[d]) < 0 {
				if cmp(data[c], data[b]) < 0 {
					return b
				}
				return c
			}
			return d
		}
		if cmp(data[b], data[e]) < 0 {
			if cmp(data[c], data[b]) < 0 {
				return b
			}
			return c
		}
		return e
	}
	if cmp(data[b], data[c]) < 0 {
		if cmp(data[e], data[a]) < 0 {
			return b
		}
		if cmp(data[e], data[b]) < 0 {
			return b
		}
		return e
	}
	return c
}
