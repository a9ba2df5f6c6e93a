package blob

import (
	"fmt"
	"iter"

	"github.com/cespare/xxhash/v2"

	"github.com/arloliu/tempo/codec"
	"github.com/arloliu/tempo/compress"
	"github.com/arloliu/tempo/endian"
	"github.com/arloliu/tempo/errs"
	"github.com/arloliu/tempo/internal/hash"
)

func checksum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Blob is a parsed read-only container of named temporal values. It is safe
// for concurrent use.
type Blob struct {
	engine  endian.EndianEngine
	index   map[uint64]indexEntry
	order   []indexEntry
	payload []byte
}

// Parse validates a blob's framing, verifies the payload checksum and
// decompresses the payload. Value decoding happens lazily on access.
func Parse(data []byte) (*Blob, error) {
	if len(data) < headerSize+checksumSize {
		return nil, fmt.Errorf("%w: %d bytes", errs.ErrInvalidHeaderSize, len(data))
	}
	if data[0] != magicByte || data[1]&0xF0 != versionNibble {
		return nil, fmt.Errorf("%w: 0x%02x%02x", errs.ErrInvalidMagicNumber, data[0], data[1])
	}

	engine := endian.GetLittleEndianEngine()
	if data[1]&flagBigEndian != 0 {
		engine = endian.GetBigEndianEngine()
	}

	compression := compress.CompressionType(data[2])
	cdc, err := compress.GetCodec(compression)
	if err != nil {
		return nil, err
	}

	count := int(engine.Uint16(data[4:6]))
	indexEnd := headerSize + count*indexEntrySize
	if len(data) < indexEnd+checksumSize {
		return nil, fmt.Errorf("%w: %d values need %d index bytes", errs.ErrInvalidIndexEntrySize, count, count*indexEntrySize)
	}

	stored := data[indexEnd : len(data)-checksumSize]
	if checksum(stored) != engine.Uint64(data[len(data)-checksumSize:]) {
		return nil, fmt.Errorf("%w: payload checksum does not match", errs.ErrChecksumMismatch)
	}

	payload, err := cdc.Decompress(stored)
	if err != nil {
		return nil, fmt.Errorf("decompress payload: %w", err)
	}

	b := &Blob{
		engine:  engine,
		index:   make(map[uint64]indexEntry, count),
		order:   make([]indexEntry, 0, count),
		payload: payload,
	}
	for i := range count {
		at := headerSize + i*indexEntrySize
		e := indexEntry{
			hash:   engine.Uint64(data[at : at+8]),
			offset: engine.Uint32(data[at+8 : at+12]),
			length: engine.Uint32(data[at+12 : at+16]),
		}
		if int(e.offset)+int(e.length) > len(payload) {
			return nil, fmt.Errorf("%w: index entry %d addresses [%d,%d) of a %d byte payload",
				errs.ErrTruncatedPayload, i, e.offset, e.offset+e.length, len(payload))
		}
		b.index[e.hash] = e
		b.order = append(b.order, e)
	}

	return b, nil
}

// Len returns the number of values in the blob.
func (b *Blob) Len() int {
	return len(b.order)
}

// Has reports whether the blob holds a value under the given name.
func (b *Blob) Has(name string) bool {
	_, ok := b.index[hash.ID(name)]
	return ok
}

// GetBytes returns the raw encoding of the named value.
func (b *Blob) GetBytes(name string) ([]byte, error) {
	e, ok := b.index[hash.ID(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", errs.ErrValueNotFound, name)
	}

	return b.payload[e.offset : e.offset+e.length], nil
}

// Get decodes the named value. The concrete type is one of the temporal
// package's value types, recoverable with a type switch.
func (b *Blob) Get(name string) (any, error) {
	data, err := b.GetBytes(name)
	if err != nil {
		return nil, err
	}

	v, _, err := codec.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("value %q: %w", name, err)
	}

	return v, nil
}

// All iterates the blob's values in insertion order, yielding each name hash
// with its decoded value. An entry whose bytes fail to decode yields the
// decode error as its value and iteration continues, so the same type switch
// that recovers the concrete value types also surfaces per-entry corruption.
func (b *Blob) All() iter.Seq2[uint64, any] {
	return func(yield func(uint64, any) bool) {
		for _, e := range b.order {
			v, _, err := codec.Decode(b.payload[e.offset : e.offset+e.length])
			if err != nil {
				if !yield(e.hash, fmt.Errorf("value 0x%016x: %w", e.hash, err)) {
					return
				}
				continue
			}
			if !yield(e.hash, v) {
				return
			}
		}
	}
}
