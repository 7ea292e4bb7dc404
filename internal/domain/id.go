package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cast"
)

// ID is the canonical record identifier. Upstream resource servers are loose
// about the wire form (JSON numbers and strings both occur in the wild), so
// every id is normalized into this one type at the decoding boundary and
// compared as an int64 from then on.
type ID int64

// ParseID normalizes an id from any scalar form (path segment, query value,
// decoded JSON). A value that does not reduce to an integer is a malformed-id
// error for that single operation.
func ParseID(v any) (ID, error) {
	n, err := cast.ToInt64E(v)
	if err != nil {
		return 0, fmt.Errorf("invalid id %v: %w", v, err)
	}
	return ID(n), nil
}

func (id ID) Int64() int64 { return int64(id) }

func (id ID) String() string { return strconv.FormatInt(int64(id), 10) }

// UnmarshalJSON accepts both numeric and quoted-string ids.
func (id *ID) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case nil:
		*id = 0
		return nil
	case json.Number:
		// Keep the literal digits so ids above 2^53 survive decoding.
		raw = v.String()
	}
	parsed, err := ParseID(raw)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Record is implemented by every entity pointer and gives generic stores and
// services access to the identifier.
type Record interface {
	RecordID() ID
	SetRecordID(ID)
}

// RecordPtr constrains a type parameter to "pointer to entity T".
type RecordPtr[T any] interface {
	*T
	Record
}
