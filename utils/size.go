package utils

func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// SectorOffset returns the byte range of the i-th sector in a buffer of
// consecutive sectors.
func SectorOffset(i, sectorSize int) (start, end int) {
	start = i * sectorSize
	return start, start + sectorSize
}
