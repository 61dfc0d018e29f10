package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// The seeded catalog uses placeholder strings such as "Not Available" in
// place of real numbers and URLs. These types decode the raw column value
// exactly once, at the persistence boundary; everything above them works
// with (value, valid) pairs and never sees a sentinel string again.

func isSentinel(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "" || s == "not available" || s == "n/a"
}

// OptionalFloat is a float column that may hold a sentinel instead of a
// number. Absent values marshal to JSON null.
type OptionalFloat struct {
	Float64 float64
	Valid   bool
}

func Float(v float64) OptionalFloat {
	return OptionalFloat{Float64: v, Valid: true}
}

func (o *OptionalFloat) Scan(src interface{}) error {
	o.Float64, o.Valid = 0, false
	switch v := src.(type) {
	case nil:
		return nil
	case float64:
		o.Float64, o.Valid = v, true
		return nil
	case int64:
		o.Float64, o.Valid = float64(v), true
		return nil
	case []byte:
		o.parse(string(v))
		return nil
	case string:
		o.parse(v)
		return nil
	default:
		return fmt.Errorf("cannot scan %T into OptionalFloat", src)
	}
}

func (o *OptionalFloat) parse(raw string) {
	if isSentinel(raw) {
		return
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(raw), ",", ""), 64)
	if err != nil {
		// Unparseable garbage is treated the same as the sentinel.
		return
	}
	o.Float64, o.Valid = f, true
}

// Value keeps the seeded sentinel format on write so rows written by the
// application look like rows written by the seeder.
func (o OptionalFloat) Value() (driver.Value, error) {
	if !o.Valid {
		return "Not Available", nil
	}
	return strconv.FormatFloat(o.Float64, 'f', -1, 64), nil
}

func (o OptionalFloat) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.Float64)
}

func (o *OptionalFloat) UnmarshalJSON(data []byte) error {
	o.Float64, o.Valid = 0, false
	if string(data) == "null" {
		return nil
	}
	if err := json.Unmarshal(data, &o.Float64); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

// OptionalInt is an integer column that may hold a sentinel, with digit
// grouping ("52,934") tolerated.
type OptionalInt struct {
	Int64 int64
	Valid bool
}

func Int(v int64) OptionalInt {
	return OptionalInt{Int64: v, Valid: true}
}

func (o *OptionalInt) Scan(src interface{}) error {
	o.Int64, o.Valid = 0, false
	switch v := src.(type) {
	case nil:
		return nil
	case int64:
		o.Int64, o.Valid = v, true
		return nil
	case []byte:
		o.parse(string(v))
		return nil
	case string:
		o.parse(v)
		return nil
	default:
		return fmt.Errorf("cannot scan %T into OptionalInt", src)
	}
}

func (o *OptionalInt) parse(raw string) {
	if isSentinel(raw) {
		return
	}
	n, err := strconv.ParseInt(strings.ReplaceAll(strings.TrimSpace(raw), ",", ""), 10, 64)
	if err != nil {
		return
	}
	o.Int64, o.Valid = n, true
}

func (o OptionalInt) Value() (driver.Value, error) {
	if !o.Valid {
		return "Not Available", nil
	}
	return strconv.FormatInt(o.Int64, 10), nil
}

func (o OptionalInt) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.Int64)
}

func (o *OptionalInt) UnmarshalJSON(data []byte) error {
	o.Int64, o.Valid = 0, false
	if string(data) == "null" {
		return nil
	}
	if err := json.Unmarshal(data, &o.Int64); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

// OptionalString is a text column where the sentinel means absent.
type OptionalString struct {
	String string
	Valid  bool
}

func Str(v string) OptionalString {
	return OptionalString{String: v, Valid: true}
}

func (o *OptionalString) Scan(src interface{}) error {
	o.String, o.Valid = "", false
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		o.parse(string(v))
		return nil
	case string:
		o.parse(v)
		return nil
	default:
		return fmt.Errorf("cannot scan %T into OptionalString", src)
	}
}

func (o *OptionalString) parse(raw string) {
	if isSentinel(raw) {
		return
	}
	o.String, o.Valid = raw, true
}

func (o OptionalString) Value() (driver.Value, error) {
	if !o.Valid {
		return "Not Available", nil
	}
	return o.String, nil
}

func (o OptionalString) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.String)
}

func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.String, o.Valid = "", false
	if string(data) == "null" {
		return nil
	}
	if err := json.Unmarshal(data, &o.String); err != nil {
		return err
	}
	o.Valid = true
	return nil
}
