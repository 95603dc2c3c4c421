package store

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList persists a slice of strings as a JSON-encoded text
// column. A nil list maps to SQL NULL; an empty list round-trips as
// "[]".
type StringList []string

// Value implements driver.Valuer
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner. Stored text that is not a valid JSON
// array fails the read; a corrupted row should surface, not silently
// decode to nothing.
func (l *StringList) Scan(value any) error {
	if value == nil {
		*l = nil
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("decode string list: unsupported type %T", value)
	}

	var out []string
	if err := json.Unmarshal(data, &out); err != nil {
		return fmt.Errorf("decode string list: %w", err)
	}
	*l = out
	return nil
}

// GormDataType tells GORM which column type to migrate to
func (StringList) GormDataType() string {
	return "text"
}
