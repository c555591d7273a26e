package model

import (
	"bytes"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
)

// FlexInt is an integer that also accepts numeric strings in JSON. The
// front end posts select values as strings ("3") as often as numbers.
// null and "" decode to zero, which every caller treats as "absent".
type FlexInt int64

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexInt) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = 0
		return nil
	}
	s := strings.TrimSpace(strings.Trim(string(b), `"`))
	if s == "" {
		*f = 0
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid integer %s", b)
	}
	*f = FlexInt(n)
	return nil
}

// Int64 returns the plain value.
func (f FlexInt) Int64() int64 { return int64(f) }

// NullInt64 maps zero and negative values to SQL NULL.
func (f FlexInt) NullInt64() sql.NullInt64 {
	if f <= 0 {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(f), Valid: true}
}

// NullString maps a blank string to SQL NULL.
func NullString(s string) sql.NullString {
	s = strings.TrimSpace(s)
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
