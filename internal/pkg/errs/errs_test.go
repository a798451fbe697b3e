//go:build unit

package errs_test

import (
	"testing"

	"hotelres/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestIs(t *testing.T) {
	sentinel := errs.New("sold out")

	t.Run("sees a mark through wrapping", func(t *testing.T) {
		cause := errs.New("insufficient remaining units")
		err := errs.Mark(errs.Wrapf(cause, "sold out on %s", "2026-09-10"), sentinel)

		assert.True(t, errs.Is(err, sentinel))
		assert.True(t, errs.Is(errs.Wrap(err, "outer"), sentinel), "mark survives further wrapping")
		assert.True(t, errs.Is(err, cause), "the wrapped cause stays matchable")
	})

	t.Run("matches a plain unwrap chain", func(t *testing.T) {
		err := errs.Wrap(sentinel, "context")
		assert.True(t, errs.Is(err, sentinel))
	})

	t.Run("does not match unrelated errors", func(t *testing.T) {
		other := errs.New("unrelated")
		assert.False(t, errs.Is(errs.Mark(errs.New("boom"), sentinel), other))
	})
}

func TestMarkNil(t *testing.T) {
	sentinel := errs.New("sentinel")
	assert.Equal(t, sentinel, errs.Mark(nil, sentinel))
}
