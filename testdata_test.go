package turboselect

import (
	"math"
	"slices"

	"golang.org/x/exp/rand"
)

type (
	distribution string
	ordering     string
)

const (
	uniformDist  distribution = "uniform"
	normalDist   distribution = "normal"
	zipfDist     distribution = "zipf"
	constantDist distribution = "constant"
	bimodalDist  distribution = "bimodal"
	twoValueDist distribution = "twovalue"
)

const (
	randomOrder     ordering = "random"
	sortedOrder     ordering = "sorted"
	reversedOrder   ordering = "reversed"
	mostlySorted    ordering = "mostly_sorted"
	pushFrontOrder  ordering = "push_front"
	pushMiddleOrder ordering = "push_middle"
)

var (
	distributions = []distribution{uniformDist, normalDist, zipfDist, constantDist, bimodalDist, twoValueDist}
	orderings     = []ordering{randomOrder, sortedOrder, reversedOrder, mostlySorted, pushFrontOrder, pushMiddleOrder}
)

func genDistribution(rng *rand.Rand, size int, dist distribution) []int {
	slice := make([]int, size)

	switch dist {
	case uniformDist:
		for i := range slice {
			slice[i] = rng.Intn(size)
		}

	case normalDist:
		mean := size / 2
		stdDev := float64(size) / 6.0
		for i := range slice {
			slice[i] = int(math.Round(rng.NormFloat64()*stdDev + float64(mean)))
		}

	case zipfDist:
		zipf := rand.NewZipf(rng, 1.5, 1.0, uint64(size-1))
		for i := range slice {
			slice[i] = int(zipf.Uint64())
		}

	case constantDist:
		val := rng.Int()
		for i := range slice {
			slice[i] = val
		}

	case twoValueDist:
		for i := range slice {
			slice[i] = i % 2
		}

	case bimodalDist:
		peak1 := size / 4
		peak2 := 3 * size / 4
		stdDev := float64(size) / 16.0
		for i := range slice {
			peak := peak1
			if rng.Float64() >= 0.5 {
				peak = peak2
			}
			slice[i] = int(math.Round(rng.NormFloat64()*stdDev + float64(peak)))
		}

	default:
		panic("unknown distribution")
	}

	return slice
}

func applyOrdering(rng *rand.Rand, slice []int, order ordering) {
	switch order {
	case randomOrder:
		rng.Shuffle(len(slice), func(i, j int) {
			slice[i], slice[j] = slice[j], slice[i]
		})

	case sortedOrder:
		slices.Sort(slice)

	case reversedOrder:
		slices.Sort(slice)
		for i, j := 0, len(slice)-1; i < j; i, j = i+1, j-1 {
			slice[i], slice[j] = slice[j], slice[i]
		}

	case mostlySorted:
		slices.Sort(slice)
		// Swap len/10 random pairs, displacing up to 20% of the elements.
		swaps := len(slice) / 10
		for i := 0; i < swaps; i++ {
			j := rng.Intn(len(slice))
			k := rng.Intn(len(slice))
			slice[j], slice[k] = slice[k], slice[j]
		}

	case pushFrontOrder:
		if len(slice) < 2 {
			return
		}
		slices.Sort(slice)
		// Move the smallest element to the end, shifting the rest left.
		smallest := slice[0]
		copy(slice, slice[1:])
		slice[len(slice)-1] = smallest

	case pushMiddleOrder:
		if len(slice) < 2 {
			return
		}
		slices.Sort(slice)
		// Move the middle element to the end, preserving the order of the rest.
		mid := len(slice) / 2
		midVal := slice[mid]
		copy(slice[mid:], slice[mid+1:])
		slice[len(slice)-1] = midVal

	default:
		panic("unknown ordering")
	}
}
