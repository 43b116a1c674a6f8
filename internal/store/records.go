package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/firehall/personnel-agent/internal/models"
	srvErrors "github.com/firehall/personnel-agent/pkg/errors"
)

// RecordStore implements the collection-agnostic CRUD primitives over the
// schemaless record tables. One row per record: an auto-increment integer
// key plus the JSON document.
type RecordStore struct {
	db *sql.DB
}

func NewRecordStore(db *sql.DB) *RecordStore {
	return &RecordStore{db: db}
}

// GetAll returns every record of the collection in key order. An empty
// collection yields an empty slice, never nil.
func (s *RecordStore) GetAll(ctx context.Context, collection string) ([]models.Record, error) {
	if err := validateCollection(collection); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(`SELECT id, data FROM %s ORDER BY id`, collection))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRecords(rows)
}

// Get returns the record stored under key, or a ResourceNotFoundError.
func (s *RecordStore) Get(ctx context.Context, collection string, key any) (models.Record, error) {
	if err := validateCollection(collection); err != nil {
		return nil, err
	}
	id, err := models.CoerceKey(key)
	if err != nil {
		return nil, err
	}
	row := s.db.QueryRowContext(ctx, fmt.Sprintf(`SELECT id, data FROM %s WHERE id = ?`, collection), id)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, srvErrors.NewResourceNotFoundError(collection + " record")
	}
	return rec, err
}

// Add persists a new record under a freshly assigned key and returns the
// stored record including its id. Personnel records without a documents
// field get one initialized to an empty array; several read paths assume the
// field is always iterable.
func (s *RecordStore) Add(ctx context.Context, collection string, rec models.Record) (models.Record, error) {
	if err := validateCollection(collection); err != nil {
		return nil, err
	}
	stored := applyDefaults(collection, rec)
	data, err := encodeRecord(stored)
	if err != nil {
		return nil, err
	}
	res, err := s.db.ExecContext(ctx, fmt.Sprintf(`INSERT INTO %s (data) VALUES (?)`, collection), data)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	stored["id"] = id
	return stored, nil
}

// Update overwrites the record stored under the record's own id wholesale;
// there is no partial-field merge. A record without an id is rejected with
// MissingKeyError before any I/O. An id with no existing row inserts under
// that key, matching the engine's put semantics.
func (s *RecordStore) Update(ctx context.Context, collection string, rec models.Record) (models.Record, error) {
	if err := validateCollection(collection); err != nil {
		return nil, err
	}
	id, ok := rec.ID()
	if !ok {
		return nil, srvErrors.NewMissingKeyError(collection)
	}
	stored := applyDefaults(collection, rec)
	data, err := encodeRecord(stored)
	if err != nil {
		return nil, err
	}
	_, err = s.db.ExecContext(ctx, fmt.Sprintf(
		`INSERT INTO %s (id, data) VALUES (?, ?) ON CONFLICT (id) DO UPDATE SET data = excluded.data`,
		collection), id, data)
	if err != nil {
		return nil, err
	}
	stored["id"] = id
	return stored, nil
}

// Delete removes the record stored under key. The key may be an integer, a
// numeric string, or a record carrying an id; anything else is rejected with
// InvalidKeyError. Deleting an absent key is a no-op success.
func (s *RecordStore) Delete(ctx context.Context, collection string, key any) error {
	if err := validateCollection(collection); err != nil {
		return err
	}
	id, err := models.CoerceKey(key)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = ?`, collection), id)
	return err
}

// FindByField returns all records whose indexed field equals value, in key
// order. The field should be one declared in the Registry so the expression
// index is used instead of a scan.
func (s *RecordStore) FindByField(ctx context.Context, collection, field string, value any) ([]models.Record, error) {
	if err := validateCollection(collection); err != nil {
		return nil, err
	}
	query, args, err := sq.Select("id", "data").
		From(collection).
		Where(sq.Eq{jsonField(field): value}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRecords(rows)
}

func jsonField(field string) string {
	return fmt.Sprintf("json_extract(data, '$.%s')", field)
}

// applyDefaults returns a copy of rec with collection-level defaults filled
// in. The input record is never mutated.
func applyDefaults(collection string, rec models.Record) models.Record {
	stored := rec.Clone()
	if collection == CollectionPersonnel {
		if _, ok := stored["documents"]; !ok {
			stored["documents"] = []any{}
		}
	}
	return stored
}

// encodeRecord serializes a record without its key; the key lives in the id
// column and is reattached on read.
func encodeRecord(rec models.Record) ([]byte, error) {
	body := rec.Clone()
	delete(body, "id")
	return json.Marshal(map[string]any(body))
}

func decodeRecord(id int64, data []byte) (models.Record, error) {
	var rec models.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	rec["id"] = id
	return rec, nil
}

func scanRecord(row *sql.Row) (models.Record, error) {
	var id int64
	var data []byte
	if err := row.Scan(&id, &data); err != nil {
		return nil, err
	}
	return decodeRecord(id, data)
}

func scanRecords(rows *sql.Rows) ([]models.Record, error) {
	records := make([]models.Record, 0)
	for rows.Next() {
		var id int64
		var data []byte
		if err := rows.Scan(&id, &data); err != nil {
			return nil, err
		}
		rec, err := decodeRecord(id, data)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
