package gdi

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestReleaserReverseOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontextract.gdi")
	defer teardown()
	//
	var order []string
	release := func(name string) func() error {
		return func() error {
			order = append(order, name)
			return nil
		}
	}
	var rel Releaser
	rel.Push("a", release("a"))
	rel.Push("b", release("b"))
	rel.Push("nil", nil)
	rel.Push("c", release("c"))
	assert.Equal(t, 3, rel.Len())
	assert.NoError(t, rel.Unwind())
	assert.Equal(t, []string{"c", "b", "a"}, order)
	assert.Equal(t, 0, rel.Len())
	assert.NoError(t, rel.Unwind(), "second unwind must be a no-op")
	assert.Equal(t, []string{"c", "b", "a"}, order)
}

func TestReleaserContinuesAfterFailure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontextract.gdi")
	defer teardown()
	//
	errB := errors.New("b failed")
	errC := errors.New("c failed")
	calls := 0
	var rel Releaser
	rel.Push("a", func() error { calls++; return nil })
	rel.Push("b", func() error { calls++; return errB })
	rel.Push("c", func() error { calls++; return errC })
	err := rel.Unwind()
	assert.Equal(t, 3, calls)
	assert.ErrorIs(t, err, errB)
	assert.ErrorIs(t, err, errC)
}

func TestEmptyReleaser(t *testing.T) {
	var rel Releaser
	assert.NoError(t, rel.Unwind())
}
