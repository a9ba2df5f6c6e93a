package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestID(t *testing.T) {
	// fixed xxHash64 vectors; the values are part of the blob format
	require.Equal(t, uint64(0xef46db3751d8e999), ID(""))
	require.Equal(t, uint64(0x4fdcca5ddb678139), ID("test"))

	require.Equal(t, ID("sunrise"), ID("sunrise"), "ID must be deterministic")
	require.NotEqual(t, ID("sunrise"), ID("sunset"))
}
