// Package options defines the formatter's style configuration: the [Options]
// struct, its functional-option constructors, and file-based loading with
// schema validation.
package options
