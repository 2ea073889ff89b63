//go:build unit

package clock_test

import (
	"testing"
	"time"

	"manga-cafe-billing/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
)

func TestFixed(t *testing.T) {
	at := time.Date(2025, 6, 4, 14, 0, 0, 0, time.UTC)
	c := clock.Fixed(at)

	assert.Equal(t, at, c.Now())
	assert.Equal(t, at, c.Now())
}

func TestReal(t *testing.T) {
	before := time.Now()
	got := clock.Real().Now()
	assert.False(t, got.Before(before))
}
