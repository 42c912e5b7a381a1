package models

import "strconv"

// RawRecord is a single key/value record as returned by the RouterOS API.
// Records carry whatever fields the device emitted; any field may be
// missing, so readers treat absence as an empty value.
type RawRecord map[string]string

// Field returns the named field, or "" when the record does not carry it.
func (r RawRecord) Field(name string) string {
	return r[name]
}

// Int parses the named field as a base-10 integer, returning 0 when the
// field is missing or not numeric.
func (r RawRecord) Int(name string) int {
	n, err := strconv.Atoi(r[name])
	if err != nil {
		return 0
	}
	return n
}

// Int64 is Int for counter-sized fields (byte counts can overflow 32 bits).
func (r RawRecord) Int64(name string) int64 {
	n, err := strconv.ParseInt(r[name], 10, 64)
	if err != nil {
		return 0
	}
	return n
}
