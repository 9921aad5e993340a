package position_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prettyjs/jsfmt/position"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		line int
		col  int
		want position.Position
	}{
		"zero values": {
			line: 0,
			col:  0,
			want: position.Position{Line: 0, Col: 0},
		},
		"positive values": {
			line: 5,
			col:  10,
			want: position.Position{Line: 5, Col: 10},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, position.New(tc.line, tc.col))
		})
	}
}

func TestRangeContains(t *testing.T) {
	t.Parallel()

	r := position.NewRange(position.New(1, 2), position.New(3, 0))

	tcs := map[string]struct {
		pos  position.Position
		want bool
	}{
		"before start line":  {pos: position.New(0, 0), want: false},
		"before start col":   {pos: position.New(1, 0), want: false},
		"at start":           {pos: position.New(1, 2), want: true},
		"middle":             {pos: position.New(2, 5), want: true},
		"at end":             {pos: position.New(3, 0), want: false},
		"after end":          {pos: position.New(3, 1), want: false},
		"well after end":     {pos: position.New(4, 0), want: false},
		"well before start":  {pos: position.New(-1, 0), want: false},
		"end line zero col":  {pos: position.New(2, 100000), want: true},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, r.Contains(tc.pos))
		})
	}
}

func TestRangesUniqueValues(t *testing.T) {
	t.Parallel()

	a := position.NewRange(position.New(0, 0), position.New(0, 1))
	b := position.NewRange(position.New(1, 0), position.New(1, 1))

	rs := position.NewRanges(a, b, a)

	assert.Len(t, rs.Values(), 3)
	assert.ElementsMatch(t, []position.Range{a, b}, rs.UniqueValues())
}

func TestSpan(t *testing.T) {
	t.Parallel()

	s := position.NewSpan(4, 10)

	assert.Equal(t, 6, s.Len())
	assert.True(t, s.Contains(4))
	assert.True(t, s.Contains(9))
	assert.False(t, s.Contains(10))
	assert.False(t, s.Contains(3))
}
