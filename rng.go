package turboselect

// xorshift is the sample-index generator of the Floyd-Rivest selector. It
// does not need to be cryptographic, but it must be decorrelated from the
// input layout: a fixed stride against an adversarially ordered input can
// repeatedly choose bad pivots.
//
// From the xorshift paper: https://www.jstatsoft.org/article/view/v008i14/xorshift.pdf
type xorshift uint64

func (r *xorshift) Next() uint64 {
	*r ^= *r << 13
	*r ^= *r >> 7
	*r ^= *r << 17
	return uint64(*r)
}

// seedMix decorrelates the generator streams of nearby (length, rank) pairs.
const seedMix = 0x9e3779b97f4a7c15

// sampleRNG seeds a generator from the call's range length and target rank,
// run through a splitmix64-style finalizer. The same call sites therefore
// draw the same sample positions, which keeps selection reproducible, while
// different ranges and ranks get unrelated streams.
func sampleRNG(length, rank int) xorshift {
	z := uint64(length) + uint64(rank)<<21 + seedMix
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	z ^= z >> 31
	if z == 0 {
		z = seedMix
	}
	return xorshift(z)
}
