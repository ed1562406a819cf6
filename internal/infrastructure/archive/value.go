// Package archive implements JSON export and import of the managed tables.
// Export is best-effort per table; import replays one table through the
// persistence gateway's idempotent upserts.
package archive

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/financebook/backend/internal/domain/shared"
)

// Kind discriminates the JSON scalar held by a Value.
type Kind int

// The scalar kinds a Value can hold.
const (
	KindNull Kind = iota
	KindNumber
	KindString
	KindBool
)

// Value is one JSON scalar from an import document. Keeping the raw token
// lets each field decoder decide the target type, so numeric IDs arrive as
// numbers while decimals survive both quoted and bare spellings.
type Value struct {
	kind Kind
	num  json.Number
	str  string
	b    bool
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("%w: empty value", shared.ErrSerialization)
	}
	switch data[0] {
	case 'n':
		*v = Value{kind: KindNull}
		return nil
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return fmt.Errorf("%w: %v", shared.ErrSerialization, err)
		}
		*v = Value{kind: KindBool, b: b}
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("%w: %v", shared.ErrSerialization, err)
		}
		*v = Value{kind: KindString, str: s}
		return nil
	case '{', '[':
		return fmt.Errorf("%w: expected a scalar, got %c", shared.ErrSerialization, data[0])
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("%w: %v", shared.ErrSerialization, err)
		}
		*v = Value{kind: KindNumber, num: n}
		return nil
	}
}

// IsNull reports whether the value is JSON null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// isBlank reports whether the value carries no usable content for a
// numeric or timestamp field: JSON null, or an empty string. Spreadsheet
// exports spell missing numbers as "".
func (v Value) isBlank() bool {
	return v.kind == KindNull || (v.kind == KindString && v.str == "")
}

// Int converts the value to an int. Strings holding digits are accepted.
func (v Value) Int() (int, error) {
	switch v.kind {
	case KindNumber:
		n, err := v.num.Int64()
		if err != nil {
			return 0, fmt.Errorf("%w: %v", shared.ErrSerialization, err)
		}
		return int(n), nil
	case KindString:
		n, err := strconv.Atoi(v.str)
		if err != nil {
			return 0, fmt.Errorf("%w: '%s' is not an integer", shared.ErrSerialization, v.str)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("%w: expected an integer", shared.ErrSerialization)
	}
}

// Decimal converts the value to an exact decimal. Both bare numbers and
// quoted numeric strings are accepted.
func (v Value) Decimal() (decimal.Decimal, error) {
	var s string
	switch v.kind {
	case KindNumber:
		s = v.num.String()
	case KindString:
		s = v.str
	default:
		return decimal.Decimal{}, fmt.Errorf("%w: expected a decimal", shared.ErrSerialization)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: '%s' is not a decimal", shared.ErrSerialization, s)
	}
	return d, nil
}

// String converts the value to a string.
func (v Value) String() (string, error) {
	switch v.kind {
	case KindString:
		return v.str, nil
	case KindNumber:
		return v.num.String(), nil
	default:
		return "", fmt.Errorf("%w: expected a string", shared.ErrSerialization)
	}
}

// Bool converts the value to a bool.
func (v Value) Bool() (bool, error) {
	if v.kind != KindBool {
		return false, fmt.Errorf("%w: expected a boolean", shared.ErrSerialization)
	}
	return v.b, nil
}

// timeLayouts are the accepted timestamp spellings, broadest first.
// Documents produced by other tools often omit the zone or the time.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Time converts the value to a timestamp.
func (v Value) Time() (time.Time, error) {
	s, err := v.String()
	if err != nil {
		return time.Time{}, err
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: '%s' is not a timestamp", shared.ErrSerialization, s)
}

// Record is one row of an import document.
type Record map[string]Value

// lookup returns the first present key. Export documents use camelCase
// keys, but documents written by other tools use the SQL column names, so
// every field decoder probes both spellings.
func (r Record) lookup(keys ...string) (Value, bool) {
	for _, key := range keys {
		if v, ok := r[key]; ok {
			return v, ok
		}
	}
	return Value{}, false
}

// fieldReader reads typed fields out of a Record with a sticky error, so a
// decoder reads every field and checks once. Missing or null fields decode
// to zero values, matching rows that predate a column.
type fieldReader struct {
	rec Record
	err error
}

func (f *fieldReader) fail(key string, err error) {
	if f.err == nil {
		f.err = fmt.Errorf("field '%s': %w", key, err)
	}
}

// Int reads a required-shape int field; missing, null or "" yields 0.
func (f *fieldReader) Int(keys ...string) int {
	v, ok := f.rec.lookup(keys...)
	if !ok || v.isBlank() {
		return 0
	}
	n, err := v.Int()
	if err != nil {
		f.fail(keys[0], err)
	}
	return n
}

// IntPtr reads an optional int field; missing, null or "" yields nil.
func (f *fieldReader) IntPtr(keys ...string) *int {
	v, ok := f.rec.lookup(keys...)
	if !ok || v.isBlank() {
		return nil
	}
	n, err := v.Int()
	if err != nil {
		f.fail(keys[0], err)
		return nil
	}
	return &n
}

// Str reads an optional string field; missing or null yields nil.
func (f *fieldReader) Str(keys ...string) *string {
	v, ok := f.rec.lookup(keys...)
	if !ok || v.IsNull() {
		return nil
	}
	s, err := v.String()
	if err != nil {
		f.fail(keys[0], err)
		return nil
	}
	return &s
}

// Bool reads a bool field; missing or null yields false.
func (f *fieldReader) Bool(keys ...string) bool {
	v, ok := f.rec.lookup(keys...)
	if !ok || v.IsNull() {
		return false
	}
	b, err := v.Bool()
	if err != nil {
		f.fail(keys[0], err)
	}
	return b
}

// Decimal reads a decimal field; missing, null or "" yields zero.
func (f *fieldReader) Decimal(keys ...string) decimal.Decimal {
	v, ok := f.rec.lookup(keys...)
	if !ok || v.isBlank() {
		return decimal.Zero
	}
	d, err := v.Decimal()
	if err != nil {
		f.fail(keys[0], err)
		return decimal.Zero
	}
	return d
}

// Time reads a timestamp field; missing, null or "" yields the zero time.
func (f *fieldReader) Time(keys ...string) time.Time {
	v, ok := f.rec.lookup(keys...)
	if !ok || v.isBlank() {
		return time.Time{}
	}
	t, err := v.Time()
	if err != nil {
		f.fail(keys[0], err)
		return time.Time{}
	}
	return t
}

// TimePtr reads an optional timestamp field; missing, null or "" yields nil.
func (f *fieldReader) TimePtr(keys ...string) *time.Time {
	v, ok := f.rec.lookup(keys...)
	if !ok || v.isBlank() {
		return nil
	}
	t, err := v.Time()
	if err != nil {
		f.fail(keys[0], err)
		return nil
	}
	return &t
}

// Err returns the first field failure, if any.
func (f *fieldReader) Err() error {
	return f.err
}
