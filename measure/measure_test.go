package measure_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prettyjs/jsfmt/measure"
)

func TestWidthASCII(t *testing.T) {
	t.Parallel()

	m := measure.New()
	assert.Equal(t, 5, m.Width("hello"))
	assert.Equal(t, 0, m.Width(""))
}

func TestWidthTabExpansion(t *testing.T) {
	t.Parallel()

	m := measure.New(measure.WithTabWidth(4))

	assert.Equal(t, 4, m.Width("\t"))
	assert.Equal(t, 5, m.Width("a\tb"))
}

func TestWidthFullwidthRune(t *testing.T) {
	t.Parallel()

	m := measure.New()

	assert.Equal(t, 2, m.Width("Ａ")) // fullwidth Latin 'A'
}

func TestColumnFromOffset(t *testing.T) {
	t.Parallel()

	m := measure.New(measure.WithTabWidth(4))

	assert.Equal(t, 7, m.Column(3, "abcd"))
}

func TestTabWidthClampedToOne(t *testing.T) {
	t.Parallel()

	m := measure.New(measure.WithTabWidth(0))
	assert.Equal(t, 1, m.Width("\t"))
}
