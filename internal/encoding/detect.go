package encoding

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	xencoding "golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Charset names the encoding an extract was read as.
type Charset string

const (
	UTF8        Charset = "UTF-8"
	UTF16LE     Charset = "UTF-16LE"
	UTF16BE     Charset = "UTF-16BE"
	Windows1252 Charset = "windows-1252"
	ISO8859_9   Charset = "ISO-8859-9"
)

const sniffLen = 8192

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// decoders maps chardet results onto single-byte decoders. Anything chardet
// reports outside this table falls back to Windows-1252, the usual encoding
// of spreadsheet exports saved on Windows.
var decoders = map[string]struct {
	charset Charset
	enc     xencoding.Encoding
}{
	"ISO-8859-1":   {Windows1252, charmap.Windows1252},
	"windows-1252": {Windows1252, charmap.Windows1252},
	"ISO-8859-9":   {ISO8859_9, charmap.ISO8859_9},
}

// Decode sniffs the start of r and returns a reader producing UTF-8 along with
// the charset the input was recognised as.
//
// Detection order:
//  1. BOM (UTF-8 BOM is stripped; UTF-16 LE/BE is decoded)
//  2. valid UTF-8 passes through untouched
//  3. chardet heuristics
//  4. Windows-1252
func Decode(r io.Reader) (io.Reader, Charset, error) {
	br := bufio.NewReaderSize(r, sniffLen)

	buf, err := br.Peek(sniffLen)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, "", fmt.Errorf("peek: %w", err)
	}

	switch {
	case bytes.HasPrefix(buf, bomUTF8):
		_, _ = br.Discard(len(bomUTF8))
		return br, UTF8, nil
	case bytes.HasPrefix(buf, bomUTF16LE):
		return decode(br, unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)), UTF16LE, nil
	case bytes.HasPrefix(buf, bomUTF16BE):
		return decode(br, unicode.UTF16(unicode.BigEndian, unicode.UseBOM)), UTF16BE, nil
	}

	if utf8.Valid(buf) || (len(buf) == sniffLen && validUTF8Prefix(buf)) {
		return br, UTF8, nil
	}

	if result, err := chardet.NewTextDetector().DetectBest(buf); err == nil {
		if result.Charset == "UTF-8" {
			return br, UTF8, nil
		}

		if d, ok := decoders[result.Charset]; ok {
			return decode(br, d.enc), d.charset, nil
		}
	}

	return decode(br, charmap.Windows1252), Windows1252, nil
}

// NewUTF8Reader is Decode without the detected charset.
func NewUTF8Reader(r io.Reader) (io.Reader, error) {
	dr, _, err := Decode(r)
	return dr, err
}

func decode(r io.Reader, e xencoding.Encoding) io.Reader {
	return transform.NewReader(r, e.NewDecoder())
}

// validUTF8Prefix reports whether buf is UTF-8 apart from a multi-byte rune
// cut off by the sniff window.
func validUTF8Prefix(buf []byte) bool {
	for i := 1; i < utf8.UTFMax && i <= len(buf); i++ {
		if utf8.Valid(buf[:len(buf)-i]) {
			return !utf8.FullRune(buf[len(buf)-i:])
		}
	}

	return false
}
