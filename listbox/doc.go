// Package listbox implements the pure state behind a list box: an ordered
// sequence of options, a per-position selection flag and a highlight cursor.
//
// Positions are 0-based. Options have no identity beyond their position.
package listbox
