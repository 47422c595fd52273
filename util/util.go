package util

import (
	"fmt"
	"unicode/utf8"
)

// DefaultPreviewSize is the number of payload bytes shown in log lines
const DefaultPreviewSize = 256

// Preview renders a payload for logging. Valid UTF-8 is returned as text,
// anything else as a hex-quoted string. Output longer than size bytes is
// truncated and suffixed with the total length.
func Preview(payload []byte, size int) string {
	if size <= 0 {
		size = DefaultPreviewSize
	}

	data := payload
	truncated := false

	if len(data) > size {
		data = data[:size]
		truncated = true

		// don't split a multi-byte rune
		for len(data) > 0 && !utf8.Valid(data) && utf8.Valid(payload) {
			data = data[:len(data)-1]
		}
	}

	var out string

	if utf8.Valid(data) {
		out = string(data)
	} else {
		out = fmt.Sprintf("%q", data)
	}

	if truncated {
		out += fmt.Sprintf("... (%d bytes)", len(payload))
	}

	return out
}
