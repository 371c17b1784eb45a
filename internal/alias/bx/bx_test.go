package bx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestU32BE_RoundTrip(t *testing.T) {
	buf := make([]byte, 4)
	PutU32BE(buf, 0xDEADBEEF)
	require.Equal(t, []byte{0xDE, 0xAD, 0xBE, 0xEF}, buf)
	require.Equal(t, uint32(0xDEADBEEF), U32BE(buf))
}
