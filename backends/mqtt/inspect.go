package mqtt

import (
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

const DefaultIDField = "tag_id"

var (
	ErrPayloadNotUTF8 = errors.New("payload is not valid UTF-8")
	ErrPayloadNotJSON = errors.New("payload is not valid JSON")
	ErrPayloadNotMap  = errors.New("payload is not a JSON object")
	ErrMissingIDField = errors.New("payload is missing identifying field")
)

// inspectPayload reports why a payload does not look like a scan record.
// It is informational only; the payload is forwarded regardless.
func inspectPayload(payload []byte, idField string) error {
	if !utf8.Valid(payload) {
		return ErrPayloadNotUTF8
	}

	if !gjson.ValidBytes(payload) {
		return ErrPayloadNotJSON
	}

	if idField == "" {
		return nil
	}

	parsed := gjson.ParseBytes(payload)

	if !parsed.IsObject() {
		return errors.Wrapf(ErrPayloadNotMap, "cannot look up '%s'", idField)
	}

	if !parsed.Get(gjsonEscape(idField)).Exists() {
		return errors.Wrapf(ErrMissingIDField, "'%s' not found", idField)
	}

	return nil
}

// gjsonEscape makes a field name safe to use as a literal gjson path
func gjsonEscape(field string) string {
	out := make([]rune, 0, len(field))

	for _, r := range field {
		switch r {
		case '.', '*', '?', '|', '#', '@', '\\', '!', '=', '<', '>', '%':
			out = append(out, '\\')
		}

		out = append(out, r)
	}

	return string(out)
}
