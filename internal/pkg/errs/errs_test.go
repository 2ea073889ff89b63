//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"manga-cafe-billing/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

var errSentinel = errs.New("sentinel")

func TestWrap(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, errs.Wrap(nil, "context"))
		assert.NoError(t, errs.Wrapf(nil, "context %d", 1))
	})

	t.Run("wrapped sentinel is still matched", func(t *testing.T) {
		err := errs.Wrapf(errSentinel, "plan %q", "x")
		assert.True(t, errors.Is(err, errSentinel))
		assert.True(t, errs.Is(err, errSentinel))
		assert.Equal(t, `plan "x": sentinel`, err.Error())
	})
}

func TestMark(t *testing.T) {
	t.Run("nil error returns the mark", func(t *testing.T) {
		assert.Equal(t, errSentinel, errs.Mark(nil, errSentinel))
	})

	t.Run("marked error keeps its message", func(t *testing.T) {
		err := errs.Mark(errs.New("boom"), errSentinel)
		assert.True(t, errs.Is(err, errSentinel))
		assert.Equal(t, "boom", err.Error())
	})
}

func TestExtractStackLines(t *testing.T) {
	assert.Nil(t, errs.ExtractStackLines(nil, 3))

	lines := errs.ExtractStackLines(errs.New("boom"), 2)
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "boom")
}
