package display

import "os"

// IsTerminal reports whether f is attached to a TTY (character device).
// Used to suppress the in-place progress line when output is piped.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}
