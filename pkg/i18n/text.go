package i18n

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// Text is a bilingual display string stored as JSONB.
type Text struct {
	EN string `json:"en"`
	AR string `json:"ar"`
}

// In returns the string for the requested language, falling back to the
// other language when the requested one is empty.
func (t Text) In(lang Lang) string {
	if lang == LangAR {
		if t.AR != "" {
			return t.AR
		}
		return t.EN
	}
	if t.EN != "" {
		return t.EN
	}
	return t.AR
}

// IsEmpty reports whether neither language has content.
func (t Text) IsEmpty() bool {
	return strings.TrimSpace(t.EN) == "" && strings.TrimSpace(t.AR) == ""
}

// Value marshals the text for storage.
func (t Text) Value() (driver.Value, error) {
	raw, err := json.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("i18n text: marshal: %w", err)
	}
	return string(raw), nil
}

// Scan decodes the stored JSON representation.
func (t *Text) Scan(value interface{}) error {
	if value == nil {
		*t = Text{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, t)
	case string:
		return json.Unmarshal([]byte(v), t)
	default:
		return fmt.Errorf("i18n text: unsupported scan type %T", value)
	}
}
