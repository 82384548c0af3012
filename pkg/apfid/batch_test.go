package apfid

import (
	"errors"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAll(t *testing.T) {
	t.Run("all valid", func(t *testing.T) {
		ids, err := ParseAll([]string{"1abc_A", "1ABC:2_A5_B20"})
		require.NoError(t, err)
		require.Len(t, ids, 2)
		assert.Equal(t, "1ABC_A", ids[0].String())
		assert.Equal(t, "1ABC:2_A5_B20", ids[1].String())
	})

	t.Run("collects failures", func(t *testing.T) {
		ids, err := ParseAll([]string{"1abc_A", "bad", "2xyz_B", ""})
		require.Error(t, err)
		require.Len(t, ids, 2)
		assert.Equal(t, "2XYZ_B", ids[1].String())

		var merr *multierror.Error
		require.True(t, errors.As(err, &merr))
		require.Len(t, merr.Errors, 2)
		assert.Contains(t, merr.Errors[0].Error(), "item 1")
		assert.Contains(t, merr.Errors[1].Error(), "item 3")
		for _, e := range merr.Errors {
			assert.True(t, errors.Is(e, ErrInvalidIdentifier))
		}
	})

	t.Run("empty input", func(t *testing.T) {
		ids, err := ParseAll(nil)
		require.NoError(t, err)
		assert.Empty(t, ids)
	})
}
