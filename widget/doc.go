// Package widget provides a Bubble Tea list editor component: a text input,
// "add" and "remove" buttons and a list box backed by the listbox package.
//
// Add reads the upload directory asynchronously and appends the entry that
// matches the typed name. Remove deletes every selected option. Validation
// and read failures are shown in a modal alert that blocks input until it is
// dismissed.
package widget
