package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringArray is a set of string tags stored as a JSON array in a text column.
type StringArray []string

func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		a = StringArray{}
	}
	b, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = StringArray{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, a)
	case string:
		return json.Unmarshal([]byte(v), a)
	default:
		return fmt.Errorf("unsupported type for StringArray: %T", value)
	}
}

// Contains reports whether the array holds the given tag.
func (a StringArray) Contains(tag string) bool {
	for _, t := range a {
		if t == tag {
			return true
		}
	}
	return false
}

// UintArray is a set of record ids stored as a JSON array in a text column.
// The source schema keeps task assignments this way instead of a join table.
type UintArray []uint

func (a UintArray) Value() (driver.Value, error) {
	if a == nil {
		a = UintArray{}
	}
	b, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (a *UintArray) Scan(value interface{}) error {
	if value == nil {
		*a = UintArray{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, a)
	case string:
		return json.Unmarshal([]byte(v), a)
	default:
		return fmt.Errorf("unsupported type for UintArray: %T", value)
	}
}

// Contains reports exact membership of id in the array.
func (a UintArray) Contains(id uint) bool {
	for _, v := range a {
		if v == id {
			return true
		}
	}
	return false
}

// Diff returns the ids present in a but missing from other.
func (a UintArray) Diff(other UintArray) UintArray {
	var missing UintArray
	for _, v := range a {
		if !other.Contains(v) {
			missing = append(missing, v)
		}
	}
	return missing
}

// Without returns a copy of the array with the given id removed.
func (a UintArray) Without(id uint) UintArray {
	out := make(UintArray, 0, len(a))
	for _, v := range a {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
