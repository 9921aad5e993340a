package diff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prettyjs/jsfmt/internal/diff"
	"github.com/prettyjs/jsfmt/render"
)

func TestOpKindFlag(t *testing.T) {
	t.Parallel()

	assert.Equal(t, render.FlagDeleted, diff.OpDelete.Flag())
	assert.Equal(t, render.FlagInserted, diff.OpInsert.Flag())
	assert.Equal(t, render.FlagDefault, diff.OpEqual.Flag())
}

func TestHirschbergComputeIdentical(t *testing.T) {
	t.Parallel()

	h := diff.NewHirschberg(4)
	ops := h.Compute([]string{"a", "b", "c"}, []string{"a", "b", "c"})

	for _, op := range ops {
		assert.Equal(t, diff.OpEqual, op.Kind)
	}
}

func TestHirschbergComputeLineChanged(t *testing.T) {
	t.Parallel()

	h := diff.NewHirschberg(4)
	ops := h.Compute(
		[]string{"let x = 1;"},
		[]string{"let x = 1;", "let y = 2;"},
	)

	var inserted int
	for _, op := range ops {
		if op.Kind == diff.OpInsert {
			inserted++
		}
	}

	assert.Equal(t, 1, inserted)
}
