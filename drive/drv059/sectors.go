package drv059

// Sector images of the DRV059 volume: a 1 GB FAT32 partition created by
// syslinux, its root directory holding long file names.

var (
	// LBA 0: partition table with one FAT32 (LBA) partition at LBA 64
	mbr = [SectorSize]byte{
		0x33, 0xc0, 0xfa, 0x8e, 0xd8, 0x8e, 0xd0, 0xbc, 0x00, 0x7c, 0x89, 0xe6, 0x06, 0x57, 0x8e, 0xc0,
		0xfb, 0xfc, 0xbf, 0x00, 0x06, 0xb9, 0x00, 0x01, 0xf3, 0xa5, 0xea, 0x1f, 0x06, 0x00, 0x00, 0x52,
		0x52, 0xb4, 0x41, 0xbb, 0xaa, 0x55, 0x31, 0xc9, 0x30, 0xf6, 0xf9, 0xcd, 0x13, 0x72, 0x13, 0x81,
		0xfb, 0x55, 0xaa, 0x75, 0x0d, 0xd1, 0xe9, 0x73, 0x09, 0x66, 0xc7, 0x06, 0x8d, 0x06, 0xb4, 0x42,
		0xeb, 0x15, 0x5a, 0xb4, 0x08, 0xcd, 0x13, 0x83, 0xe1, 0x3f, 0x51, 0x0f, 0xb6, 0xc6, 0x40, 0xf7,
		0xe1, 0x52, 0x50, 0x66, 0x31, 0xc0, 0x66, 0x99, 0xe8, 0x66, 0x00, 0xe8, 0x21, 0x01, 0x4d, 0x69,
		0x73, 0x73, 0x69, 0x6e, 0x67, 0x20, 0x6f, 0x70, 0x65, 0x72, 0x61, 0x74, 0x69, 0x6e, 0x67, 0x20,
		0x73, 0x79, 0x73, 0x74, 0x65, 0x6d, 0x2e, 0x0d, 0x0a, 0x66, 0x60, 0x66, 0x31, 0xd2, 0xbb, 0x00,
		0x7c, 0x66, 0x52, 0x66, 0x50, 0x06, 0x53, 0x6a, 0x01, 0x6a, 0x10, 0x89, 0xe6, 0x66, 0xf7, 0x36,
		0xf4, 0x7b, 0xc0, 0xe4, 0x06, 0x88, 0xe1, 0x88, 0xc5, 0x92, 0xf6, 0x36, 0xf8, 0x7b, 0x88, 0xc6,
		0x08, 0xe1, 0x41, 0xb8, 0x01, 0x02, 0x8a, 0x16, 0xfa, 0x7b, 0xcd, 0x13, 0x8d, 0x64, 0x10, 0x66,
		0x61, 0xc3, 0xe8, 0xc4, 0xff, 0xbe, 0xbe, 0x7d, 0xbf, 0xbe, 0x07, 0xb9, 0x20, 0x00, 0xf3, 0xa5,
		0xc3, 0x66, 0x60, 0x89, 0xe5, 0xbb, 0xbe, 0x07, 0xb9, 0x04, 0x00, 0x31, 0xc0, 0x53, 0x51, 0xf6,
		0x07, 0x80, 0x74, 0x03, 0x40, 0x89, 0xde, 0x83, 0xc3, 0x10, 0xe2, 0xf3, 0x48, 0x74, 0x5b, 0x79,
		0x39, 0x59, 0x5b, 0x8a, 0x47, 0x04, 0x3c, 0x0f, 0x74, 0x06, 0x24, 0x7f, 0x3c, 0x05, 0x75, 0x22,
		0x66, 0x8b, 0x47, 0x08, 0x66, 0x8b, 0x56, 0x14, 0x66, 0x01, 0xd0, 0x66, 0x21, 0xd2, 0x75, 0x03,
		0x66, 0x89, 0xc2, 0xe8, 0xac, 0xff, 0x72, 0x03, 0xe8, 0xb6, 0xff, 0x66, 0x8b, 0x46, 0x1c, 0xe8,
		0xa0, 0xff, 0x83, 0xc3, 0x10, 0xe2, 0xcc, 0x66, 0x61, 0xc3, 0xe8, 0x62, 0x00, 0x4d, 0x75, 0x6c,
		0x74, 0x69, 0x70, 0x6c, 0x65, 0x20, 0x61, 0x63, 0x74, 0x69, 0x76, 0x65, 0x20, 0x70, 0x61, 0x72,
		0x74, 0x69, 0x74, 0x69, 0x6f, 0x6e, 0x73, 0x2e, 0x0d, 0x0a, 0x66, 0x8b, 0x44, 0x08, 0x66, 0x03,
		0x46, 0x1c, 0x66, 0x89, 0x44, 0x08, 0xe8, 0x30, 0xff, 0x72, 0x13, 0x81, 0x3e, 0xfe, 0x7d, 0x55,
		0xaa, 0x0f, 0x85, 0x06, 0xff, 0xbc, 0xfa, 0x7b, 0x5a, 0x5f, 0x07, 0xfa, 0xff, 0xe4, 0xe8, 0x1e,
		0x00, 0x4f, 0x70, 0x65, 0x72, 0x61, 0x74, 0x69, 0x6e, 0x67, 0x20, 0x73, 0x79, 0x73, 0x74, 0x65,
		0x6d, 0x20, 0x6c, 0x6f, 0x61, 0x64, 0x20, 0x65, 0x72, 0x72, 0x6f, 0x72, 0x2e, 0x0d, 0x0a, 0x5e,
		0xac, 0xb4, 0x0e, 0x8a, 0x3e, 0x62, 0x04, 0xb3, 0x07, 0xcd, 0x10, 0x3c, 0x0a, 0x75, 0xf1, 0xcd,
		0x18, 0xf4, 0xeb, 0xfd, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x80, 0x01,
		0x02, 0x00, 0x0c, 0x1c, 0xdc, 0xf8, 0x40, 0x00, 0x00, 0x00, 0xc0, 0x47, 0x1f, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x55, 0xaa,
	}

	// LBA 64: FAT32 boot sector
	bootSector = [SectorSize]byte{
		0xeb, 0x58, 0x90, 0x53, 0x59, 0x53, 0x4c, 0x49, 0x4e, 0x55, 0x58, 0x00, 0x02, 0x04, 0x20, 0x00,
		0x02, 0x00, 0x00, 0x00, 0x00, 0xf8, 0x00, 0x00, 0x3f, 0x00, 0xff, 0x00, 0x40, 0x00, 0x00, 0x00,
		0xc0, 0x47, 0x1f, 0x00, 0x95, 0x0f, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x02, 0x00, 0x00, 0x00,
		0x01, 0x00, 0x06, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x80, 0x00, 0x29, 0x51, 0x1d, 0xeb, 0x16, 0x4e, 0x4f, 0x20, 0x4e, 0x41, 0x4d, 0x45, 0x20, 0x20,
		0x20, 0x20, 0x46, 0x41, 0x54, 0x33, 0x32, 0x20, 0x20, 0x20, 0xfa, 0xfc, 0x31, 0xc9, 0x8e, 0xd1,
		0xbc, 0x76, 0x7b, 0x52, 0x06, 0x57, 0x1e, 0x56, 0x8e, 0xc1, 0xb1, 0x26, 0xbf, 0x78, 0x7b, 0xf3,
		0xa5, 0x8e, 0xd9, 0xbb, 0x78, 0x00, 0x0f, 0xb4, 0x37, 0x0f, 0xa0, 0x56, 0x20, 0xd2, 0x78, 0x1b,
		0x31, 0xc0, 0xb1, 0x06, 0x89, 0x3f, 0x89, 0x47, 0x02, 0xf3, 0x64, 0xa5, 0x8a, 0x0e, 0x18, 0x7c,
		0x88, 0x4d, 0xf8, 0x50, 0x50, 0x50, 0x50, 0xcd, 0x13, 0xeb, 0x62, 0x8b, 0x55, 0xaa, 0x8b, 0x75,
		0xa8, 0xc1, 0xee, 0x04, 0x01, 0xf2, 0x83, 0xfa, 0x4f, 0x76, 0x31, 0x81, 0xfa, 0xb2, 0x07, 0x73,
		0x2b, 0xf6, 0x45, 0xb4, 0x7f, 0x75, 0x25, 0x38, 0x4d, 0xb8, 0x74, 0x20, 0x66, 0x3d, 0x21, 0x47,
		0x50, 0x54, 0x75, 0x10, 0x80, 0x7d, 0xb8, 0xed, 0x75, 0x0a, 0x66, 0xff, 0x75, 0xec, 0x66, 0xff,
		0x75, 0xe8, 0xeb, 0x0f, 0x51, 0x51, 0x66, 0xff, 0x75, 0xbc, 0xeb, 0x07, 0x51, 0x51, 0x66, 0xff,
		0x36, 0x1c, 0x7c, 0xb4, 0x08, 0xe8, 0xe9, 0x00, 0x72, 0x13, 0x20, 0xe4, 0x75, 0x0f, 0xc1, 0xea,
		0x08, 0x42, 0x89, 0x16, 0x1a, 0x7c, 0x83, 0xe1, 0x3f, 0x89, 0x0e, 0x18, 0x7c, 0xfb, 0xbb, 0xaa,
		0x55, 0xb4, 0x41, 0xe8, 0xcb, 0x00, 0x72, 0x10, 0x81, 0xfb, 0x55, 0xaa, 0x75, 0x0a, 0xf6, 0xc1,
		0x01, 0x74, 0x05, 0xc6, 0x06, 0x46, 0x7d, 0x00, 0x66, 0xb8, 0x4e, 0x1f, 0x00, 0x00, 0x66, 0xba,
		0x00, 0x00, 0x00, 0x00, 0xbb, 0x00, 0x80, 0xe8, 0x0e, 0x00, 0x66, 0x81, 0x3e, 0x1c, 0x80, 0xc5,
		0xed, 0x5a, 0x70, 0x75, 0x74, 0xe9, 0xf8, 0x02, 0x66, 0x03, 0x06, 0x60, 0x7b, 0x66, 0x13, 0x16,
		0x64, 0x7b, 0xb9, 0x10, 0x00, 0xeb, 0x2b, 0x66, 0x52, 0x66, 0x50, 0x06, 0x53, 0x6a, 0x01, 0x6a,
		0x10, 0x89, 0xe6, 0x66, 0x60, 0xb4, 0x42, 0xe8, 0x77, 0x00, 0x66, 0x61, 0x8d, 0x64, 0x10, 0x72,
		0x01, 0xc3, 0x66, 0x60, 0x31, 0xc0, 0xe8, 0x68, 0x00, 0x66, 0x61, 0xe2, 0xda, 0xc6, 0x06, 0x46,
		0x7d, 0x2b, 0x66, 0x60, 0x66, 0x0f, 0xb7, 0x36, 0x18, 0x7c, 0x66, 0x0f, 0xb7, 0x3e, 0x1a, 0x7c,
		0x66, 0xf7, 0xf6, 0x31, 0xc9, 0x87, 0xca, 0x66, 0xf7, 0xf7, 0x66, 0x3d, 0xff, 0x03, 0x00, 0x00,
		0x77, 0x17, 0xc0, 0xe4, 0x06, 0x41, 0x08, 0xe1, 0x88, 0xc5, 0x88, 0xd6, 0xb8, 0x01, 0x02, 0xe8,
		0x2f, 0x00, 0x66, 0x61, 0x72, 0x01, 0xc3, 0xe2, 0xc9, 0x31, 0xf6, 0x8e, 0xd6, 0xbc, 0x68, 0x7b,
		0x8e, 0xde, 0x66, 0x8f, 0x06, 0x78, 0x00, 0xbe, 0xda, 0x7d, 0xac, 0x20, 0xc0, 0x74, 0x09, 0xb4,
		0x0e, 0xbb, 0x07, 0x00, 0xcd, 0x10, 0xeb, 0xf2, 0x31, 0xc0, 0xcd, 0x16, 0xcd, 0x19, 0xf4, 0xeb,
		0xfd, 0x8a, 0x16, 0x74, 0x7b, 0x06, 0xcd, 0x13, 0x07, 0xc3, 0x42, 0x6f, 0x6f, 0x74, 0x20, 0x65,
		0x72, 0x72, 0x6f, 0x72, 0x0d, 0x0a, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xfe, 0x02, 0xb2, 0x3e, 0x18, 0x37, 0x55, 0xaa,
	}

	// LBA 65: FSInfo sector
	fsInfo = [SectorSize]byte{
		0x52, 0x52, 0x61, 0x41, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x72, 0x72, 0x41, 0x61, 0x09, 0xca, 0x07, 0x00, 0x16, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x55, 0xaa,
	}

	// LBA 70: backup boot sector
	backupBootSector = [SectorSize]byte{
		0xeb, 0x5a, 0x90, 0x4d, 0x53, 0x57, 0x49, 0x4e, 0x34, 0x2e, 0x31, 0x00, 0x02, 0x04, 0x20, 0x00,
		0x02, 0x00, 0x00, 0x00, 0x00, 0xf8, 0x00, 0x00, 0x3f, 0x00, 0xff, 0x00, 0x40, 0x00, 0x00, 0x00,
		0xc0, 0x47, 0x1f, 0x00, 0x95, 0x0f, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x02, 0x00, 0x00, 0x00,
		0x01, 0x00, 0x06, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x80, 0x00, 0x29, 0x51, 0x1d, 0xeb, 0x16, 0x4e, 0x4f, 0x20, 0x4e, 0x41, 0x4d, 0x45, 0x20, 0x20,
		0x20, 0x20, 0x46, 0x41, 0x54, 0x33, 0x32, 0x20, 0x20, 0x20, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x55, 0xaa,
	}

	// LBA 71: backup FSInfo sector
	backupFSInfo = [SectorSize]byte{
		0x52, 0x52, 0x61, 0x41, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x72, 0x72, 0x41, 0x61, 0x1c, 0xca, 0x07, 0x00, 0x03, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x55, 0xaa,
	}

	// LBA 96: first sector of FAT #1
	fat1 = [SectorSize]byte{
		0xf8, 0xff, 0xff, 0x0f, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x0f, 0x04, 0x00, 0x00, 0x00,
		0x05, 0x00, 0x00, 0x00, 0x06, 0x00, 0x00, 0x00, 0x07, 0x00, 0x00, 0x00, 0x08, 0x00, 0x00, 0x00,
		0x09, 0x00, 0x00, 0x00, 0x0a, 0x00, 0x00, 0x00, 0x0b, 0x00, 0x00, 0x00, 0x0c, 0x00, 0x00, 0x00,
		0x0d, 0x00, 0x00, 0x00, 0x0e, 0x00, 0x00, 0x00, 0x0f, 0x00, 0x00, 0x00, 0x10, 0x00, 0x00, 0x00,
		0x11, 0x00, 0x00, 0x00, 0x12, 0x00, 0x00, 0x00, 0x13, 0x00, 0x00, 0x00, 0x14, 0x00, 0x00, 0x00,
		0xff, 0xff, 0xff, 0x0f, 0xff, 0xff, 0xff, 0x0f, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	}

	// LBA 4085: first sector of FAT #2
	fat2 = [SectorSize]byte{
		0xf8, 0xff, 0xff, 0x0f, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x0f, 0x04, 0x00, 0x00, 0x00,
		0x05, 0x00, 0x00, 0x00, 0x06, 0x00, 0x00, 0x00, 0x07, 0x00, 0x00, 0x00, 0x08, 0x00, 0x00, 0x00,
		0x09, 0x00, 0x00, 0x00, 0x0a, 0x00, 0x00, 0x00, 0x0b, 0x00, 0x00, 0x00, 0x0c, 0x00, 0x00, 0x00,
		0x0d, 0x00, 0x00, 0x00, 0x0e, 0x00, 0x00, 0x00, 0x0f, 0x00, 0x00, 0x00, 0x10, 0x00, 0x00, 0x00,
		0x11, 0x00, 0x00, 0x00, 0x12, 0x00, 0x00, 0x00, 0x13, 0x00, 0x00, 0x00, 0x14, 0x00, 0x00, 0x00,
		0xff, 0xff, 0xff, 0x0f, 0xff, 0xff, 0xff, 0x0f, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	}

	// LBA 8074: root directory, first cluster
	rootDir0 = [SectorSize]byte{
		0x4c, 0x44, 0x4c, 0x49, 0x4e, 0x55, 0x58, 0x20, 0x53, 0x59, 0x53, 0x27, 0x18, 0xb2, 0xeb, 0x79,
		0x2c, 0x41, 0x2c, 0x41, 0x00, 0x00, 0xec, 0x79, 0x2c, 0x41, 0x03, 0x00, 0x00, 0x90, 0x00, 0x00,
		0x44, 0x52, 0x56, 0x30, 0x35, 0x39, 0x20, 0x20, 0x20, 0x20, 0x20, 0x08, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x54, 0x88, 0x4b, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0xe5, 0x52, 0x49, 0x54, 0x45, 0x20, 0x20, 0x20, 0x54, 0x58, 0x54, 0x20, 0x00, 0x00, 0x00, 0x00,
		0xae, 0x4a, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xae, 0x4a, 0x17, 0x00, 0x09, 0x00, 0x00, 0x00,
		0xe5, 0x45, 0x4b, 0x30, 0x30, 0x30, 0x31, 0x20, 0x42, 0x4d, 0x50, 0x20, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x3a, 0x45, 0x00, 0x00, 0x94, 0x74, 0x38, 0x45, 0x3c, 0x00, 0x36, 0x30, 0x01, 0x00,
		0xe5, 0x45, 0x4b, 0x30, 0x30, 0x30, 0x32, 0x20, 0x42, 0x4d, 0x50, 0x20, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x3a, 0x45, 0x00, 0x00, 0xa8, 0x74, 0x38, 0x45, 0x63, 0x00, 0x36, 0x30, 0x01, 0x00,
		0xe5, 0x52, 0x00, 0x45, 0x00, 0x41, 0x00, 0x44, 0x00, 0x4d, 0x00, 0x0f, 0x00, 0xde, 0x45, 0x00,
		0x2e, 0x00, 0x64, 0x00, 0x69, 0x00, 0x73, 0x00, 0x6b, 0x00, 0x00, 0x00, 0x64, 0x00, 0x65, 0x00,
		0xe5, 0x45, 0x41, 0x44, 0x4d, 0x45, 0x7e, 0x31, 0x44, 0x49, 0x53, 0x20, 0x00, 0x93, 0xec, 0x79,
		0x2c, 0x41, 0x2c, 0x41, 0x00, 0x00, 0x42, 0x92, 0x11, 0x41, 0x1a, 0x00, 0xe9, 0x00, 0x00, 0x00,
		0xe5, 0x55, 0x54, 0x4f, 0x52, 0x55, 0x4e, 0x20, 0x49, 0x4e, 0x46, 0x20, 0x18, 0x95, 0xec, 0x79,
		0x2c, 0x41, 0x2c, 0x45, 0x00, 0x00, 0x42, 0x92, 0x11, 0x41, 0x1b, 0x00, 0x86, 0x00, 0x00, 0x00,
		0xe5, 0x4f, 0x4f, 0x54, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x10, 0x08, 0x97, 0xec, 0x79,
		0x2c, 0x41, 0x2c, 0x41, 0x00, 0x00, 0x42, 0x92, 0x11, 0x41, 0x1c, 0x00, 0x00, 0x08, 0x00, 0x00,
		0xe5, 0x41, 0x53, 0x50, 0x45, 0x52, 0x20, 0x20, 0x20, 0x20, 0x20, 0x10, 0x08, 0x9d, 0xec, 0x79,
		0x2c, 0x41, 0x2c, 0x41, 0x00, 0x00, 0x42, 0x92, 0x11, 0x41, 0x1f, 0x00, 0x00, 0x08, 0x00, 0x00,
		0xe5, 0x49, 0x53, 0x54, 0x53, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x10, 0x08, 0x0d, 0xb7, 0x7a,
		0x2c, 0x41, 0x2c, 0x41, 0x00, 0x00, 0x42, 0x92, 0x11, 0x41, 0x91, 0x5a, 0x00, 0x08, 0x00, 0x00,
		0xe5, 0x4e, 0x53, 0x54, 0x41, 0x4c, 0x4c, 0x20, 0x20, 0x20, 0x20, 0x10, 0x08, 0x74, 0xb7, 0x7a,
		0x2c, 0x41, 0x2c, 0x41, 0x00, 0x00, 0x42, 0x92, 0x11, 0x41, 0xa2, 0x5a, 0x00, 0x08, 0x00, 0x00,
		0xe5, 0x59, 0x53, 0x4c, 0x49, 0x4e, 0x55, 0x58, 0x20, 0x20, 0x20, 0x10, 0x08, 0x36, 0xb8, 0x7a,
		0x2c, 0x41, 0x2c, 0x41, 0x00, 0x00, 0x42, 0x92, 0x11, 0x41, 0xcb, 0x5d, 0x00, 0x18, 0x00, 0x00,
		0xe5, 0x44, 0x35, 0x53, 0x55, 0x4d, 0x20, 0x20, 0x54, 0x58, 0x54, 0x20, 0x18, 0xa7, 0xbd, 0x7a,
		0x2c, 0x41, 0x2c, 0x41, 0x00, 0x00, 0x42, 0x92, 0x11, 0x41, 0x25, 0x60, 0x46, 0x10, 0x00, 0x00,
		0xe5, 0x49, 0x43, 0x53, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x10, 0x08, 0xb0, 0xbd, 0x7a,
		0x2c, 0x41, 0x2c, 0x41, 0x00, 0x00, 0x42, 0x92, 0x11, 0x41, 0x28, 0x60, 0x00, 0x08, 0x00, 0x00,
		0xe5, 0x4f, 0x4f, 0x4c, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x10, 0x08, 0x21, 0xc0, 0x7a,
		0x2c, 0x41, 0x2c, 0x41, 0x00, 0x00, 0x42, 0x92, 0x11, 0x41, 0x38, 0x60, 0x00, 0x08, 0x00, 0x00,
	}

	// LBA 8075: root directory, continued
	rootDir1 = [SectorSize]byte{
		0xe5, 0x52, 0x45, 0x53, 0x45, 0x45, 0x44, 0x20, 0x20, 0x20, 0x20, 0x10, 0x08, 0x5a, 0xc3, 0x7a,
		0x2c, 0x41, 0x2c, 0x41, 0x00, 0x00, 0x42, 0x92, 0x11, 0x41, 0xd2, 0x67, 0x00, 0x08, 0x00, 0x00,
		0xe5, 0x55, 0x42, 0x49, 0x20, 0x20, 0x20, 0x20, 0x45, 0x58, 0x45, 0x20, 0x18, 0x71, 0xc3, 0x7a,
		0x2c, 0x41, 0x2c, 0x45, 0x00, 0x00, 0x42, 0x92, 0x11, 0x41, 0xd6, 0x67, 0x78, 0x3c, 0x26, 0x00,
		0xe5, 0x74, 0x00, 0x78, 0x00, 0x74, 0x00, 0x00, 0x00, 0xff, 0xff, 0x0f, 0x00, 0xa1, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x00, 0x00, 0xff, 0xff, 0xff, 0xff,
		0xe5, 0x6c, 0x00, 0x6c, 0x00, 0x65, 0x00, 0x72, 0x00, 0x2d, 0x00, 0x0f, 0x00, 0xa1, 0x43, 0x00,
		0x6f, 0x00, 0x70, 0x00, 0x79, 0x00, 0x69, 0x00, 0x6e, 0x00, 0x00, 0x00, 0x67, 0x00, 0x2e, 0x00,
		0xe5, 0x55, 0x00, 0x6e, 0x00, 0x69, 0x00, 0x2d, 0x00, 0x55, 0x00, 0x0f, 0x00, 0xa1, 0x53, 0x00,
		0x42, 0x00, 0x2d, 0x00, 0x49, 0x00, 0x6e, 0x00, 0x73, 0x00, 0x00, 0x00, 0x74, 0x00, 0x61, 0x00,
		0xe5, 0x4e, 0x49, 0x2d, 0x55, 0x53, 0x7e, 0x31, 0x54, 0x58, 0x54, 0x20, 0x00, 0x07, 0xc5, 0x7a,
		0x2c, 0x41, 0x2c, 0x41, 0x00, 0x00, 0xcc, 0x88, 0x36, 0x40, 0x9f, 0x6c, 0xc0, 0xbf, 0x00, 0x00,
		0xe5, 0x78, 0x00, 0x74, 0x00, 0x00, 0x00, 0xff, 0xff, 0xff, 0xff, 0x0f, 0x00, 0x81, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x00, 0x00, 0xff, 0xff, 0xff, 0xff,
		0xe5, 0x6c, 0x00, 0x6c, 0x00, 0x65, 0x00, 0x72, 0x00, 0x2d, 0x00, 0x0f, 0x00, 0x81, 0x52, 0x00,
		0x65, 0x00, 0x61, 0x00, 0x64, 0x00, 0x6d, 0x00, 0x65, 0x00, 0x00, 0x00, 0x2e, 0x00, 0x74, 0x00,
		0xe5, 0x55, 0x00, 0x6e, 0x00, 0x69, 0x00, 0x2d, 0x00, 0x55, 0x00, 0x0f, 0x00, 0x81, 0x53, 0x00,
		0x42, 0x00, 0x2d, 0x00, 0x49, 0x00, 0x6e, 0x00, 0x73, 0x00, 0x00, 0x00, 0x74, 0x00, 0x61, 0x00,
		0xe5, 0x4e, 0x49, 0x2d, 0x55, 0x53, 0x7e, 0x32, 0x54, 0x58, 0x54, 0x20, 0x00, 0xac, 0xc5, 0x7a,
		0x2c, 0x41, 0x2c, 0x41, 0x00, 0x00, 0x3d, 0x82, 0x27, 0x41, 0xb7, 0x6c, 0x51, 0x34, 0x00, 0x00,
		0xe5, 0x49, 0x43, 0x45, 0x4e, 0x53, 0x45, 0x20, 0x54, 0x58, 0x54, 0x20, 0x18, 0xc3, 0xc5, 0x7a,
		0x2c, 0x41, 0x2c, 0x41, 0x00, 0x00, 0x53, 0x7d, 0x84, 0x40, 0xbe, 0x6c, 0xac, 0x46, 0x00, 0x00,
		0xe5, 0x63, 0x00, 0x74, 0x00, 0x69, 0x00, 0x6f, 0x00, 0x6e, 0x00, 0x0f, 0x00, 0x0e, 0x2e, 0x00,
		0x68, 0x00, 0x65, 0x00, 0x78, 0x00, 0x00, 0x00, 0xff, 0xff, 0x00, 0x00, 0xff, 0xff, 0xff, 0xff,
		0xe5, 0x4d, 0x00, 0x50, 0x00, 0x4c, 0x00, 0x41, 0x00, 0x42, 0x00, 0x0f, 0x00, 0x0e, 0x2e, 0x00,
		0x58, 0x00, 0x2e, 0x00, 0x70, 0x00, 0x72, 0x00, 0x6f, 0x00, 0x00, 0x00, 0x64, 0x00, 0x75, 0x00,
		0xe5, 0x50, 0x4c, 0x41, 0x42, 0x58, 0x7e, 0x31, 0x48, 0x45, 0x58, 0x20, 0x00, 0x10, 0x91, 0x61,
		0x2c, 0x45, 0x2c, 0x45, 0x05, 0x00, 0x5d, 0x61, 0x2c, 0x45, 0x02, 0x00, 0xa4, 0xb6, 0x00, 0x00,
		0xe5, 0x4d, 0x41, 0x47, 0x45, 0x20, 0x20, 0x20, 0x48, 0x45, 0x58, 0x20, 0x00, 0x10, 0x91, 0x61,
		0x2c, 0x45, 0x2c, 0x45, 0x00, 0x00, 0x5d, 0x61, 0x2c, 0x45, 0x02, 0x00, 0xa4, 0xb6, 0x00, 0x00,
		0x52, 0x45, 0x41, 0x44, 0x20, 0x20, 0x20, 0x20, 0x54, 0x58, 0x54, 0x20, 0x00, 0xac, 0x00, 0x54,
		0x88, 0x4b, 0x88, 0x4b, 0x00, 0x00, 0xd0, 0x80, 0x87, 0x4b, 0x15, 0x00, 0x08, 0x00, 0x00, 0x00,
	}
)

var fixture = []struct {
	lba  uint32
	data *[SectorSize]byte
}{
	{0, &mbr},
	{64, &bootSector},
	{65, &fsInfo},
	{70, &backupBootSector},
	{71, &backupFSInfo},
	{96, &fat1},
	{4085, &fat2},
	{8074, &rootDir0},
	{8075, &rootDir1},
}
