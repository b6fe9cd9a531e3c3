package utils

import "hash/crc32"

// GenerateCrc checksums a record: the encoded header without its crc
// field, followed by the sector payload.
func GenerateCrc(header, data []byte) uint32 {
	crc := crc32.ChecksumIEEE(header)
	return crc32.Update(crc, crc32.IEEETable, data)
}

func CheckCrc(crc uint32, header, data []byte) bool {
	return GenerateCrc(header, data) == crc
}
