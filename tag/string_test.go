package tag

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStringValidatesUTF8(t *testing.T) {
	_, err := NewString(string([]byte{0xff, 0xfe}))
	require.Error(t, err)

	s, err := NewString("HELLO WORLD THIS IS A TEST STRING ÅÄÖ!")
	require.NoError(t, err)
	require.Equal(t, "HELLO WORLD THIS IS A TEST STRING ÅÄÖ!", s.Value)
}

func TestStringRejectsOversizedPayload(t *testing.T) {
	_, err := NewString(strings.Repeat("a", MaxStringBytes+1))
	require.Error(t, err)

	_, err = NewString(strings.Repeat("a", MaxStringBytes))
	require.NoError(t, err)
}
