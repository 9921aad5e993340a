// Package orderedset provides a generic doubly-linked set with O(1)
// membership, insert-before/after, and delete.
//
// [OrderedSet] is the foundation the rest of this module builds on: the
// token stream ([github.com/prettyjs/jsfmt/stream]) is an OrderedSet of
// parts, so every stream rewrite (insert a space, delete a semicolon, splice
// in a line break) is an O(1) linked-list operation rather than an O(n)
// slice shuffle.
package orderedset
