package postgres

import (
	"database/sql/driver"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// stringList se guarda como JSONB ('[]' cuando está vacío).
type stringList []string

func (l stringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *stringList) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*l = stringList{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("stringList: unsupported type %T", src)
	}

	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("stringList: %w", err)
	}
	if out == nil {
		out = []string{}
	}
	*l = out
	return nil
}
