// utils/encoding.go
package utils

import (
	"bytes"
	"errors"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var ErrUndecodable = errors.New("unable to decode file content")

// DecodeText decodes an uploaded file's bytes by trying a fixed list of
// encodings in order and returns the text plus the label of the encoding
// that succeeded.
func DecodeText(raw []byte) (string, string, error) {
	// A BOM-prefixed file is also valid UTF-8, so the BOM check has to win
	if bytes.HasPrefix(raw, utf8BOM) && utf8.Valid(raw[len(utf8BOM):]) {
		return string(raw[len(utf8BOM):]), "utf-8-sig", nil
	}
	if utf8.Valid(raw) {
		return string(raw), "utf-8", nil
	}
	for _, try := range []struct {
		label string
		cm    *charmap.Charmap
	}{
		{"latin-1", charmap.ISO8859_1},
		{"iso-8859-1", charmap.ISO8859_1},
		{"cp1252", charmap.Windows1252},
	} {
		decoded, err := try.cm.NewDecoder().Bytes(raw)
		if err == nil {
			return string(decoded), try.label, nil
		}
	}
	return "", "", ErrUndecodable
}
