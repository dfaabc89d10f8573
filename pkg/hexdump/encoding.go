package hexdump

import (
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/joshuapare/hexkit/pkg/types"
)

// EncodeUTF16 encodes s as UTF-16LE. When bom is set the output starts with
// the FF FE byte order mark.
func EncodeUTF16(s string, bom bool) ([]byte, error) {
	policy := unicode.IgnoreBOM
	if bom {
		policy = unicode.UseBOM
	}
	out, err := unicode.UTF16(unicode.LittleEndian, policy).NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, types.Wrap(types.ErrInvalidArgument, "utf-16 encode", err)
	}
	return out, nil
}

// DecodeUTF16 decodes UTF-16 text. A leading BOM selects the byte order and
// is stripped; without one the input is read as little-endian.
func DecodeUTF16(b []byte) (string, error) {
	dec := unicode.BOMOverride(unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder())
	out, _, err := transform.Bytes(dec, b)
	if err != nil {
		return "", types.Wrap(types.ErrInvalidArgument, "utf-16 decode", err)
	}
	return string(out), nil
}
