// Package blob implements a compact container for many named temporal
// values, suited to persisting or transmitting them as one unit.
//
// A blob holds codec-encoded values keyed by the xxHash64 of their name,
// with O(1) lookup through a fixed-size index and an optionally compressed
// payload. The layout is:
//
//	offset  size  field
//	0       1     magic byte 0x7E
//	1       1     0x10 | flags (bit 0: container integers are big-endian)
//	2       1     compression type
//	3       1     reserved, zero
//	4       2     value count
//	6       16×N  index: hash uint64, payload offset uint32, length uint32
//	...           payload, compressed as a whole; offsets address the
//	              uncompressed bytes
//	last    8     xxHash64 checksum of the stored (compressed) payload
//
// Container integers follow the endianness flag; the value encodings inside
// the payload are always the codec's fixed big-endian layout.
//
// Usage:
//
//	w, _ := blob.NewWriter(blob.WithCompression(compress.CompressionZstd))
//	_ = w.Add("departure", ts)
//	_ = w.Add("window", dur)
//	data, _ := w.Finish()
//
//	b, _ := blob.Parse(data)
//	v, _ := b.Get("departure")
package blob
