package console

import "github.com/atotto/clipboard"

// Clipboard reads text for paste.
type Clipboard interface {
	ReadAll() (string, error)
}

// SystemClipboard reads the OS clipboard.
type SystemClipboard struct{}

// ReadAll returns the clipboard contents.
func (SystemClipboard) ReadAll() (string, error) {
	return clipboard.ReadAll()
}

// ClipboardSupported reports whether the OS clipboard is reachable.
func ClipboardSupported() bool {
	return !clipboard.Unsupported
}
