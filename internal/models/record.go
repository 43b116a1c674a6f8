package models

import (
	"strconv"
	"strings"

	srvErrors "github.com/firehall/personnel-agent/pkg/errors"
)

func errInvalidKey(v any) error {
	return srvErrors.NewInvalidKeyError(v)
}

// Record is a schemaless document as persisted by the record store. Field
// type discipline is enforced by convention in the accessor layer, never by
// the engine.
type Record map[string]any

// ID returns the record key, if present.
func (r Record) ID() (int64, bool) {
	id, err := CoerceKey(r["id"])
	if err != nil {
		return 0, false
	}
	return id, true
}

// String returns the named field as a string, or "" when absent.
func (r Record) String(key string) string {
	if v, ok := r[key].(string); ok {
		return v
	}
	return ""
}

// Int64 returns the named field coerced to an integer. Upstream forms may
// supply numeric fields as strings, and JSON decoding yields float64.
func (r Record) Int64(key string) (int64, bool) {
	n, err := CoerceKey(r[key])
	if err != nil {
		return 0, false
	}
	return n, true
}

// Clone returns a shallow copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Documents returns the embedded documents array of a personnel record.
// Entries that are not objects are skipped.
func (r Record) Documents() []Document {
	raw, ok := r["documents"].([]any)
	if !ok {
		return nil
	}
	docs := make([]Document, 0, len(raw))
	for _, entry := range raw {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		docs = append(docs, Document{
			Name:       stringField(m, "name"),
			Category:   stringField(m, "category"),
			UploadedAt: stringField(m, "uploaded_at"),
		})
	}
	return docs
}

func stringField(m map[string]any, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

// CoerceKey normalizes a raw key to an integer. Accepted forms are integer
// types, whole floats (JSON numbers), numeric strings, and records or maps
// carrying an "id" field.
func CoerceKey(v any) (int64, error) {
	switch k := v.(type) {
	case int:
		return int64(k), nil
	case int32:
		return int64(k), nil
	case int64:
		return k, nil
	case uint64:
		return int64(k), nil
	case float64:
		if k != float64(int64(k)) {
			return 0, errInvalidKey(v)
		}
		return int64(k), nil
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(k), 10, 64)
		if err != nil {
			return 0, errInvalidKey(v)
		}
		return n, nil
	case Record:
		id, ok := k["id"]
		if !ok {
			return 0, errInvalidKey(v)
		}
		return CoerceKey(id)
	case map[string]any:
		id, ok := k["id"]
		if !ok {
			return 0, errInvalidKey(v)
		}
		return CoerceKey(id)
	default:
		return 0, errInvalidKey(v)
	}
}
