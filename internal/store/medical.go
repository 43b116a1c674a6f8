package store

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"

	"github.com/firehall/personnel-agent/internal/models"
	srvErrors "github.com/firehall/personnel-agent/pkg/errors"
)

// MedicalRecordStore handles the medical records collection. Unlike the
// schemaless collections it is a typed table: the file payload is a BLOB
// column persisted together with the metadata, and keys are UUIDs assigned
// by the service layer.
type MedicalRecordStore struct {
	db *sql.DB
}

func NewMedicalRecordStore(db *sql.DB) *MedicalRecordStore {
	return &MedicalRecordStore{db: db}
}

// Insert persists metadata and file payload in one record.
func (s *MedicalRecordStore) Insert(ctx context.Context, rec *models.MedicalRecord) error {
	_, err := s.db.ExecContext(ctx, queryInsertMedicalRecord,
		rec.ID,
		rec.PersonnelID,
		rec.DocumentName,
		rec.RecordType.Value(),
		rec.FileData,
		rec.FileType,
		rec.FileSize,
		rec.UploadDate,
	)
	return err
}

// Get returns a single record including its file payload.
func (s *MedicalRecordStore) Get(ctx context.Context, id string) (*models.MedicalRecord, error) {
	row := s.db.QueryRowContext(ctx, queryGetMedicalRecord, id)

	var rec models.MedicalRecord
	var recordType string
	err := row.Scan(
		&rec.ID,
		&rec.PersonnelID,
		&rec.DocumentName,
		&recordType,
		&rec.FileData,
		&rec.FileType,
		&rec.FileSize,
		&rec.UploadDate,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, srvErrors.NewResourceNotFoundError("medical record")
	}
	if err != nil {
		return nil, err
	}
	rec.RecordType = models.RecordType(recordType)
	return &rec, nil
}

// Delete removes a record by id. Deleting an absent id is a no-op success.
func (s *MedicalRecordStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, queryDeleteMedicalRecord, id)
	return err
}

// DeleteByKey removes every record matching the (personnel, document name)
// pair and reports how many rows went away.
func (s *MedicalRecordStore) DeleteByKey(ctx context.Context, key models.DocumentKey) (int64, error) {
	res, err := s.db.ExecContext(ctx, queryDeleteMedicalRecordByKey, key.PersonnelID, key.DocumentName)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// List returns record metadata in key order. The file payload is left out;
// downloads fetch single records through Get instead of dragging every BLOB
// through each listing.
func (s *MedicalRecordStore) List(ctx context.Context, opts ...MedicalListOption) ([]models.MedicalRecord, error) {
	builder := sq.Select(
		"id",
		"personnel_id",
		"document_name",
		"record_type",
		"file_type",
		"file_size",
		"upload_date",
	).From("medical_records").OrderBy("upload_date", "id")

	for _, opt := range opts {
		builder = opt(builder)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]models.MedicalRecord, 0)
	for rows.Next() {
		var rec models.MedicalRecord
		var recordType string
		err := rows.Scan(
			&rec.ID,
			&rec.PersonnelID,
			&rec.DocumentName,
			&recordType,
			&rec.FileType,
			&rec.FileSize,
			&rec.UploadDate,
		)
		if err != nil {
			return nil, err
		}
		rec.RecordType = models.RecordType(recordType)
		records = append(records, rec)
	}
	return records, rows.Err()
}

type MedicalListOption func(sq.SelectBuilder) sq.SelectBuilder

func ByPersonnel(personnelID int64) MedicalListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Where(sq.Eq{"personnel_id": personnelID})
	}
}

func ByRecordType(types ...models.RecordType) MedicalListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		if len(types) == 0 {
			return b
		}
		values := make([]string, 0, len(types))
		for _, t := range types {
			values = append(values, t.Value())
		}
		return b.Where(sq.Eq{"record_type": values})
	}
}
