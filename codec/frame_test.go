package codec

import (
	"encoding/binary"
	"hash/crc32"
)

// appendChecksum appends the frame CRC for data, which starts with the magic.
func appendChecksum(data []byte) []byte {
	return binary.LittleEndian.AppendUint32(data, crc32.ChecksumIEEE(data[len(magic):]))
}
