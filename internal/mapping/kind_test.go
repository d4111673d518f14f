package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind_RoundTrip(t *testing.T) {
	for _, k := range []Kind{KindAction, KindPagination, KindTab, KindModalClose} {
		parsed, err := ParseKind(k.Name())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}
}

func TestParseKind_Unknown(t *testing.T) {
	_, err := ParseKind("bogus")
	require.Error(t, err)
}

func TestKind_IsValid(t *testing.T) {
	assert.False(t, Kind(0).IsValid())
	assert.True(t, KindAction.IsValid())
	assert.True(t, KindModalClose.IsValid())
	assert.False(t, Kind(99).IsValid())
}
