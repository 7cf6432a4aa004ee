package grid

// ScanDirection derives, from the scan-mode bits and the signed grid
// deltas, which edge of the grid the wire's leading index starts from:
// left holds when the wire's leading i-index is the westmost column,
// bottom when the wire's leading j-index is the southernmost row. Used
// both to reorder packed samples (Normalise) and to anchor a
// MapProjection's origin to the correct corner.
func ScanDirection(scan ScanMode, di, dj int32) (left, bottom bool) {
	left = scan.West == (di < 0)
	bottom = scan.North == (dj > 0)
	return left, bottom
}

// Normalise permutes raw, a Ni*Nj sample sequence in the wire's scan
// order, into canonical row-major order: rows south-to-north, each row
// west-to-east. It does not mutate raw; it always allocates the result.
func Normalise(raw []float64, ni, nj int, di, dj int32, scan ScanMode) []float64 {
	left, bottom := ScanDirection(scan, di, dj)

	out := make([]float64, ni*nj)
	for jj := 0; jj < nj; jj++ {
		for ii := 0; ii < ni; ii++ {
			var idx int
			if !scan.JSweepsFirst {
				switch {
				case left && bottom:
					idx = jj*ni + ii
				case left && !bottom:
					idx = (nj-jj-1)*ni + ii
				case !left && bottom:
					idx = jj*ni + (ni - ii - 1)
				default:
					idx = (nj-jj-1)*ni + (ni - ii - 1)
				}
			} else {
				switch {
				case left && bottom:
					idx = jj + ii*nj
				case left && !bottom:
					idx = (nj - jj - 1) + ii*nj
				case !left && bottom:
					idx = jj + (ni-ii-1)*nj
				default:
					idx = (nj - jj - 1) + (ni-ii-1)*nj
				}
			}
			out[jj*ni+ii] = raw[idx]
		}
	}
	return out
}
