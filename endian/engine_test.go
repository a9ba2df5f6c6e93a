package endian

import (
	"encoding/binary"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestCheckEndianness(t *testing.T) {
	result := CheckEndianness()

	var probe uint16 = 0x0102
	bytes := (*[2]byte)(unsafe.Pointer(&probe))

	switch bytes[0] {
	case 0x01:
		require.Equal(t, binary.BigEndian, result)
	case 0x02:
		require.Equal(t, binary.LittleEndian, result)
	default:
		require.Failf(t, "unexpected probe byte", "got: %v", bytes[0])
	}

	// stateless, so repeated calls must agree
	for range 10 {
		require.Equal(t, result, CheckEndianness())
	}
}

func TestIsNativeEndiannessInverse(t *testing.T) {
	little := IsNativeLittleEndian()
	big := IsNativeBigEndian()

	require.NotEqual(t, little, big)
	require.Equal(t, little, CheckEndianness() == binary.LittleEndian)
	require.Equal(t, big, CheckEndianness() == binary.BigEndian)
}

func TestGetLittleEndianEngine(t *testing.T) {
	engine := GetLittleEndianEngine()
	require.Implements(t, (*EndianEngine)(nil), engine)
	require.Equal(t, binary.LittleEndian, engine)

	buf := engine.AppendUint16(nil, 0x0102)
	require.Equal(t, []byte{0x02, 0x01}, buf)
	require.Equal(t, uint16(0x0102), engine.Uint16(buf))
}

func TestGetBigEndianEngine(t *testing.T) {
	engine := GetBigEndianEngine()
	require.Implements(t, (*EndianEngine)(nil), engine)
	require.Equal(t, binary.BigEndian, engine)

	buf := engine.AppendUint16(nil, 0x0102)
	require.Equal(t, []byte{0x01, 0x02}, buf)
	require.Equal(t, uint16(0x0102), engine.Uint16(buf))
}

func TestEndianEnginesRoundTrip(t *testing.T) {
	little := GetLittleEndianEngine()
	big := GetBigEndianEngine()

	var v32 uint32 = 0x01020304
	require.NotEqual(t, little.AppendUint32(nil, v32), big.AppendUint32(nil, v32))
	require.Equal(t, v32, little.Uint32(little.AppendUint32(nil, v32)))
	require.Equal(t, v32, big.Uint32(big.AppendUint32(nil, v32)))

	var v64 uint64 = 0x0102030405060708
	require.NotEqual(t, little.AppendUint64(nil, v64), big.AppendUint64(nil, v64))
	require.Equal(t, v64, little.Uint64(little.AppendUint64(nil, v64)))
	require.Equal(t, v64, big.Uint64(big.AppendUint64(nil, v64)))
}
