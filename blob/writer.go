package blob

import (
	"fmt"
	"math"

	"github.com/arloliu/tempo/codec"
	"github.com/arloliu/tempo/compress"
	"github.com/arloliu/tempo/endian"
	"github.com/arloliu/tempo/errs"
	"github.com/arloliu/tempo/internal/collision"
	"github.com/arloliu/tempo/internal/hash"
	"github.com/arloliu/tempo/internal/options"
	"github.com/arloliu/tempo/internal/pool"
	"github.com/arloliu/tempo/temporal"
)

const (
	magicByte      = 0x7E
	versionNibble  = 0x10
	flagBigEndian  = 0x01
	headerSize     = 6
	indexEntrySize = 16
	checksumSize   = 8
)

type indexEntry struct {
	hash   uint64
	offset uint32
	length uint32
}

// Writer accumulates named temporal values and assembles them into a blob.
// A Writer is not safe for concurrent use.
type Writer struct {
	engine      endian.EndianEngine
	compression compress.CompressionType
	tracker     *collision.Tracker
	entries     []indexEntry
	payload     *pool.ByteBuffer
}

// WriterOption configures a Writer.
type WriterOption = options.Option[*Writer]

// WithCompression selects the payload compression algorithm.
func WithCompression(compression compress.CompressionType) WriterOption {
	return options.New(func(w *Writer) error {
		if !compression.IsValid() {
			return fmt.Errorf("invalid compression type: %s", compression)
		}
		w.compression = compression

		return nil
	})
}

// WithLittleEndian stores container integers little-endian. This is the
// default.
func WithLittleEndian() WriterOption {
	return options.NoError(func(w *Writer) {
		w.engine = endian.GetLittleEndianEngine()
	})
}

// WithBigEndian stores container integers big-endian.
func WithBigEndian() WriterOption {
	return options.NoError(func(w *Writer) {
		w.engine = endian.GetBigEndianEngine()
	})
}

// NewWriter creates a Writer with little-endian container integers and no
// compression unless options say otherwise.
func NewWriter(opts ...WriterOption) (*Writer, error) {
	w := &Writer{
		engine:      endian.GetLittleEndianEngine(),
		compression: compress.CompressionNone,
		tracker:     collision.NewTracker(),
		payload:     pool.GetBlobBuffer(),
	}
	if err := options.Apply(w, opts...); err != nil {
		pool.PutBlobBuffer(w.payload)
		return nil, err
	}

	return w, nil
}

// Add encodes a temporal value under the given name. Names must be non-empty
// and unique within the blob; a different name hashing to the same xxHash64
// key is also rejected, since the blob stores only hashes.
func (w *Writer) Add(name string, value any) error {
	id := hash.ID(name)
	if err := w.tracker.Track(name, id); err != nil {
		return fmt.Errorf("%w: %q", err, name)
	}
	if len(w.entries) >= math.MaxUint16 {
		return fmt.Errorf("%w: blob holds at most %d values", errs.ErrInvalidValueCount, math.MaxUint16)
	}

	start := w.payload.Len()

	var err error
	switch v := value.(type) {
	case temporal.Date:
		w.payload.B, err = codec.EncodeDate(w.payload.B, v)
	case temporal.TimeOfDay:
		w.payload.B, err = codec.EncodeTime(w.payload.B, v)
	case temporal.Timestamp:
		w.payload.B, err = codec.EncodeTimestamp(w.payload.B, v)
	case temporal.Instant:
		w.payload.B, err = codec.EncodeInstant(w.payload.B, v)
	case temporal.MachineDuration:
		w.payload.B, err = codec.EncodeMachineDuration(w.payload.B, v)
	case temporal.CalendarDuration:
		w.payload.B, err = codec.EncodeCalendarDuration(w.payload.B, v)
	case temporal.WeekModel:
		w.payload.B, err = codec.EncodeWeekModel(w.payload.B, v)
	case temporal.DayPeriod:
		w.payload.B, err = codec.EncodeDayPeriod(w.payload.B, v)
	default:
		return fmt.Errorf("%w: cannot encode %T", errs.ErrUnsupportedOperation, value)
	}
	if err != nil {
		w.payload.B = w.payload.B[:start]
		return err
	}

	end := w.payload.Len()
	if end > math.MaxUint32 {
		w.payload.B = w.payload.B[:start]
		return fmt.Errorf("%w: payload exceeds 4GiB", errs.ErrValueTooLarge)
	}

	w.entries = append(w.entries, indexEntry{
		hash:   id,
		offset: uint32(start),
		length: uint32(end - start),
	})

	return nil
}

// Len returns the number of values added so far.
func (w *Writer) Len() int {
	return len(w.entries)
}

// Finish assembles and returns the blob bytes. The Writer is reset and may
// be reused for another blob.
func (w *Writer) Finish() ([]byte, error) {
	cdc, err := compress.GetCodec(w.compression)
	if err != nil {
		return nil, err
	}
	compressed, err := cdc.Compress(w.payload.Bytes())
	if err != nil {
		return nil, fmt.Errorf("compress payload: %w", err)
	}

	var flags byte = versionNibble
	if w.engine == endian.GetBigEndianEngine() {
		flags |= flagBigEndian
	}

	out := make([]byte, 0, headerSize+len(w.entries)*indexEntrySize+len(compressed)+checksumSize)
	out = append(out, magicByte, flags, byte(w.compression), 0)
	out = w.engine.AppendUint16(out, uint16(len(w.entries)))
	for _, e := range w.entries {
		out = w.engine.AppendUint64(out, e.hash)
		out = w.engine.AppendUint32(out, e.offset)
		out = w.engine.AppendUint32(out, e.length)
	}
	out = append(out, compressed...)
	out = w.engine.AppendUint64(out, checksum(compressed))

	w.reset()

	return out, nil
}

func (w *Writer) reset() {
	w.tracker.Reset()
	w.entries = w.entries[:0]
	if w.payload != nil {
		pool.PutBlobBuffer(w.payload)
	}
	w.payload = pool.GetBlobBuffer()
}
