// Package measure computes the on-screen column width of formatted text,
// accounting for tab expansion and East Asian wide/fullwidth runes, via
// [golang.org/x/text/width].
package measure
