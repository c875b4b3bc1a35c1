// Package uploads reads the upload directory that feeds the list editor.
//
// A Lister always returns a materialized slice of entry names. Resolve maps
// the name a user typed onto one of those entries.
package uploads
