package txid_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wix-messenger/backend/internal/lib/txid"
)

func TestNew_Format(t *testing.T) {
	id, err := txid.New()
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^WIX-[0-9A-F]{16}$`), id)
}

func TestNew_Unique(t *testing.T) {
	seen := make(map[string]struct{})
	for range 100 {
		id, err := txid.New()
		require.NoError(t, err)

		_, dup := seen[id]
		assert.False(t, dup, "duplicate transaction id: %s", id)
		seen[id] = struct{}{}
	}
}
