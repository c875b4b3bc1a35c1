// Package commands wires the listedit CLI: a full-screen list editor over an
// upload directory.
package commands
