// Package util provides a collection of domain-agnostic utility functions and cross-platform helpers.
package util

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/FEAR939/Hikari-DoodStream/filesystem"
)

// SanitizeFilename normalizes a string into a safe, cross-platform filesystem-compliant filename.
func SanitizeFilename(filename string) string {
	// Replace invalid characters with underscore
	invalid := regexp.MustCompile(`[\\/<>:;"'|?!*{}#%&^+,~\s]`)
	filename = invalid.ReplaceAllString(filename, "_")

	// Collapse multiple underscores
	collapse := regexp.MustCompile(`__+`)
	filename = collapse.ReplaceAllString(filename, "_")

	// Trim leading/trailing separators
	trim := regexp.MustCompile(`^[_\-.]+|[_\-.]+$`)
	filename = trim.ReplaceAllString(filename, "")

	return filename
}

// PrintErasable prints an ephemeral message to the terminal and returns a closure to clear it.
func PrintErasable(msg string) (eraser func()) {
	fmt.Fprintf(os.Stdout, "\r%s", msg)
	return func() {
		fmt.Fprintf(os.Stdout, "\r%s\r", strings.Repeat(" ", len(msg)))
	}
}

// Ignore executes a function and explicitly discards its error return value.
func Ignore(f func() error) {
	_ = f()
}

// Delete recursively removes a file or directory using the virtualized filesystem API.
func Delete(path string) error {
	fs := filesystem.API()
	stat, err := fs.Stat(path)
	if err != nil {
		return err
	}

	if stat.IsDir() {
		return fs.RemoveAll(path)
	}
	return fs.Remove(path)
}
