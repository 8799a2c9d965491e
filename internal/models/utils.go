package models

import (
	"database/sql/driver"
	"errors"
)

// JSONDoc represents an arbitrary JSON value (object or array) that can be
// stored in a PostgreSQL jsonb column and passed through API payloads
// unchanged.
type JSONDoc []byte

// Value implements the driver.Valuer interface for JSONDoc
func (j JSONDoc) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	return []byte(j), nil
}

// Scan implements the sql.Scanner interface for JSONDoc
func (j *JSONDoc) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	switch v := value.(type) {
	case []byte:
		*j = append((*j)[0:0], v...)
	case string:
		*j = JSONDoc(v)
	default:
		return errors.New("unsupported type for JSONDoc")
	}
	return nil
}

// MarshalJSON writes the document verbatim
func (j JSONDoc) MarshalJSON() ([]byte, error) {
	if len(j) == 0 {
		return []byte("null"), nil
	}
	return j, nil
}

// UnmarshalJSON stores the document verbatim
func (j *JSONDoc) UnmarshalJSON(data []byte) error {
	*j = append((*j)[0:0], data...)
	return nil
}
