// Package encoding wraps around the various encoding stuff in
// golang.org/x/text/encoding, so that the package names such as
// "unicode" do not clash with the stdlib in the rest of xmltree.
package encoding

import (
	"errors"
	"strings"

	enc "golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var ErrUnsupportedEncoding = errors.New("unsupported encoding")

var encodings = map[string]enc.Encoding{
	"utf8":              unicode.UTF8,
	"utf16":             unicode.UTF16(unicode.BigEndian, unicode.UseBOM),
	"utf16le":           unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
	"utf16be":           unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
	"eucjp":             japanese.EUCJP,
	"shiftjis":          japanese.ShiftJIS,
	"cp932":             japanese.ShiftJIS,
	"iso2022jp":         japanese.ISO2022JP,
	"jis":               japanese.ISO2022JP,
	"big5":              traditionalchinese.Big5,
	"euckr":             korean.EUCKR,
	"gbk":               simplifiedchinese.GBK,
	"gb18030":           simplifiedchinese.GB18030,
	"hzgb2312":          simplifiedchinese.HZGB2312,
	"cp437":             charmap.CodePage437,
	"cp866":             charmap.CodePage866,
	"iso88592":          charmap.ISO8859_2,
	"iso88595":          charmap.ISO8859_5,
	"iso88597":          charmap.ISO8859_7,
	"iso885915":         charmap.ISO8859_15,
	"koi8r":             charmap.KOI8R,
	"koi8u":             charmap.KOI8U,
	"macintosh":         charmap.Macintosh,
	"windows1251":       charmap.Windows1251,
	"windows1252":       charmap.Windows1252,
	"iso88591":          charmap.Windows1252,
	"latin1":            charmap.Windows1252,
	"macintoshcyrillic": charmap.MacintoshCyrillic,
}

// normalize folds case and drops the separators that commonly vary
// between spellings, so "UTF-8", "utf_8" and "utf8" look the same.
func normalize(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', ' ':
			return -1
		}
		return r
	}, strings.ToLower(name))
}

// Load returns the encoding registered under name, or nil if the name
// is not known.
func Load(name string) enc.Encoding {
	return encodings[normalize(name)]
}

// Decode converts b to UTF-8.
//
// If name is empty, a leading UTF-8 or UTF-16 byte order mark selects
// the decoder and is removed; input without a BOM is taken as UTF-8.
func Decode(b []byte, name string) ([]byte, error) {
	if name == "" {
		t := unicode.BOMOverride(transform.Nop)
		out, _, err := transform.Bytes(t, b)
		return out, err
	}

	e := Load(name)
	if e == nil {
		return nil, ErrUnsupportedEncoding
	}
	return e.NewDecoder().Bytes(b)
}
