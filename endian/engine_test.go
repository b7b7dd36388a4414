package endian

import (
	"encoding/binary"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestCheckEndianness(t *testing.T) {
	require := require.New(t)

	result := CheckEndianness()

	// Verify the result matches the actual system endianness
	var testValue uint16 = 0x0102
	testBytes := (*[2]byte)(unsafe.Pointer(&testValue))

	switch testBytes[0] {
	case 0x01:
		require.Equal(binary.BigEndian, result, "CheckEndianness() should return BigEndian")
	case 0x02:
		require.Equal(binary.LittleEndian, result, "CheckEndianness() should return LittleEndian")
	default:
		require.Failf("Unexpected byte value", "got: %v", testBytes[0])
	}
}

func TestCheckEndiannessConsistency(t *testing.T) {
	first := CheckEndianness()
	for i := range 100 {
		result := CheckEndianness()
		if result != first {
			t.Errorf("CheckEndianness() returned inconsistent results: first=%v, iteration %d=%v", first, i, result)
		}
	}
}

func TestIsNativeEndiannessInverse(t *testing.T) {
	littleEndian := IsNativeLittleEndian()
	bigEndian := IsNativeBigEndian()

	require.NotEqual(t, littleEndian, bigEndian, "IsNativeLittleEndian and IsNativeBigEndian should return opposite values")
	require.True(t, littleEndian || bigEndian, "At least one endianness check should be true")
}

func TestCompareNativeEndian(t *testing.T) {
	if IsNativeLittleEndian() {
		require.True(t, CompareNativeEndian(GetLittleEndianEngine()))
		require.False(t, CompareNativeEndian(GetBigEndianEngine()))
	} else {
		require.False(t, CompareNativeEndian(GetLittleEndianEngine()))
		require.True(t, CompareNativeEndian(GetBigEndianEngine()))
	}
}

func TestNative(t *testing.T) {
	order := Native()
	require.True(t, order.IsValid())

	if IsNativeLittleEndian() {
		require.Equal(t, Little, order)
	} else {
		require.Equal(t, Big, order)
	}
	require.Equal(t, CheckEndianness(), order.Engine())
}

func TestGetEngines(t *testing.T) {
	little := GetLittleEndianEngine()
	big := GetBigEndianEngine()

	require.Implements(t, (*EndianEngine)(nil), little)
	require.Implements(t, (*EndianEngine)(nil), big)
	require.Equal(t, binary.LittleEndian, little)
	require.Equal(t, binary.BigEndian, big)

	var testValue uint16 = 0x0102
	littleBytes := make([]byte, 2)
	bigBytes := make([]byte, 2)
	little.PutUint16(littleBytes, testValue)
	big.PutUint16(bigBytes, testValue)

	require.Equal(t, []byte{0x02, 0x01}, littleBytes, "Little endian should put LSB first")
	require.Equal(t, []byte{0x01, 0x02}, bigBytes, "Big endian should put MSB first")

	require.Equal(t, testValue, little.Uint16(littleBytes))
	require.Equal(t, testValue, big.Uint16(bigBytes))
}

func TestEndianString(t *testing.T) {
	require.Equal(t, "Big", Big.String())
	require.Equal(t, "Little", Little.String())
	require.Equal(t, "Unknown", Endian(0).String())
	require.Equal(t, "Unknown", Endian(0xFF).String())
}

func TestEndianIsValid(t *testing.T) {
	require.True(t, Big.IsValid())
	require.True(t, Little.IsValid())
	require.False(t, Endian(0).IsValid())
	require.False(t, Endian(0x3).IsValid())
}

func TestEndianEngine(t *testing.T) {
	require.Equal(t, binary.BigEndian, Big.Engine())
	require.Equal(t, binary.LittleEndian, Little.Engine())

	require.Panics(t, func() {
		Endian(0).Engine()
	})
	require.Panics(t, func() {
		Endian(0x7).Engine()
	})
}

func TestEndianEngineDispatch(t *testing.T) {
	// Engine() must bind each enum value to the matching byte order.
	var testValue uint32 = 0x01020304

	bigBytes := make([]byte, 4)
	littleBytes := make([]byte, 4)
	Big.Engine().PutUint32(bigBytes, testValue)
	Little.Engine().PutUint32(littleBytes, testValue)

	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, bigBytes)
	require.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, littleBytes)

	require.Equal(t, testValue, Big.Engine().Uint32(bigBytes))
	require.Equal(t, testValue, Little.Engine().Uint32(littleBytes))
}
