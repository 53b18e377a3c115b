// Package textenc decodes tone log payloads permissively.
//
// The upstream pipeline writes logs as UTF-8 on most hosts but UTF-16LE on
// Windows, sometimes without a BOM. Decoding is best effort: undecodable
// bytes are dropped, never surfaced as errors.
package textenc

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

const (
	// nulProbeWindow and nulProbeLimit drive the BOM-less UTF-16LE sniff:
	// ASCII-heavy UTF-16LE text is roughly every other byte NUL, so a
	// 200-byte prefix with more than 20 NULs is treated as UTF-16LE.
	nulProbeWindow = 200
	nulProbeLimit  = 20
)

//nolint:gochecknoglobals // decoder construction is cheap but allocates; effectively const
var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)

// Decode converts raw log bytes to a string, sniffing UTF-16LE by BOM or
// NUL density and falling back to UTF-8. Invalid input is decoded lossily.
func Decode(raw []byte) string {
	if looksUTF16LE(raw) {
		out, err := utf16le.NewDecoder().Bytes(raw)
		if err == nil {
			// The decoder substitutes U+FFFD for malformed code units
			// (unpaired surrogates, odd trailing bytes); drop them so
			// both paths are lossy by dropping.
			return strings.ReplaceAll(string(out), string(utf8.RuneError), "")
		}
		// Broken UTF-16 stream: fall through to the UTF-8 path.
	}

	return strings.ToValidUTF8(string(raw), "")
}

func looksUTF16LE(raw []byte) bool {
	if bytes.HasPrefix(raw, []byte{0xFF, 0xFE}) {
		return true
	}

	window := raw
	if len(window) > nulProbeWindow {
		window = window[:nulProbeWindow]
	}

	return bytes.Count(window, []byte{0x00}) > nulProbeLimit
}
