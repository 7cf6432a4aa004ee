package grid

// SynthesisePole prepends or appends a row of ni copies of poleDatum to
// already-normalised data, per poleExtra. It must run after Normalise so
// the added row lands in the geographically correct position: -1
// prepends (the row becomes the southernmost, i.e. it is meant for grids
// whose canonical row 0 is the pole), +1 appends.
//
// poleExtra = 0 returns data unchanged (same backing array, not copied).
func SynthesisePole(data []float64, ni, nj int, poleExtra int8, poleDatum float64) (out []float64, newNj int) {
	if poleExtra == 0 {
		return data, nj
	}

	newNj = nj + 1
	out = make([]float64, ni*newNj)

	offset := 0
	if poleExtra < 0 {
		for ii := 0; ii < ni; ii++ {
			out[ii] = poleDatum
		}
		offset = ni
	}
	copy(out[offset:offset+len(data)], data)
	if poleExtra > 0 {
		for ii := 0; ii < ni; ii++ {
			out[offset+len(data)+ii] = poleDatum
		}
	}
	return out, newNj
}
