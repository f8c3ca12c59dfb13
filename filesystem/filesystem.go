// Package filesystem is the single entry point for every filesystem
// touch hikari makes (config files, logs, the version cache).
//
// It is backed by afero so tests and CI can swap the OS filesystem for
// an in-memory one without threading a handle through the call tree.
package filesystem

import "github.com/spf13/afero"

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active afero.Afero instance for filesystem interaction.
func API() afero.Afero {
	return backend
}

// SetOsFs restores the filesystem backend to the native operating system implementation.
func SetOsFs() {
	backend = afero.Afero{Fs: afero.NewOsFs()}
}

// SetMemMapFs switches the backend to a volatile in-memory filesystem for unit testing.
func SetMemMapFs() {
	backend = afero.Afero{Fs: afero.NewMemMapFs()}
}
