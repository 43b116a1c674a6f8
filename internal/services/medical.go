package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/firehall/personnel-agent/internal/models"
	"github.com/firehall/personnel-agent/internal/store"
	srvErrors "github.com/firehall/personnel-agent/pkg/errors"
)

type MedicalRecordService struct {
	store *store.Store
}

func NewMedicalRecordService(st *store.Store) *MedicalRecordService {
	return &MedicalRecordService{store: st}
}

// UploadParams carries a medical document upload. PersonnelID accepts any
// key form the dashboard sends.
type UploadParams struct {
	PersonnelID  any
	DocumentName string
	RecordType   string // optional; inferred from the name when empty
	FileType     string
	Data         []byte
}

// Upload persists the document payload and metadata as one medical record
// and mirrors a document entry into the personnel record's embedded
// documents array, keeping both collections converged so the reconciler has
// nothing to repair.
func (s *MedicalRecordService) Upload(ctx context.Context, params UploadParams) (*models.MedicalRecord, error) {
	personnelID, err := models.CoerceKey(params.PersonnelID)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(params.DocumentName)
	if name == "" {
		return nil, srvErrors.NewValidationError("document name is required")
	}
	personnel, err := s.store.Records().Get(ctx, store.CollectionPersonnel, personnelID)
	if err != nil {
		return nil, err
	}

	recordType := models.RecordType(params.RecordType)
	switch recordType {
	case models.RecordTypeCheckup, models.RecordTypeLabTest, models.RecordTypeImaging, models.RecordTypeDental, models.RecordTypeGeneral:
	case "":
		recordType = models.RecordTypeFromName(name)
	default:
		return nil, srvErrors.NewValidationError("unknown record type %q", params.RecordType)
	}

	// At most one record may exist per (personnel, document name); a
	// re-upload under the same name replaces the stored record.
	existing, err := s.store.MedicalRecords().List(ctx, store.ByPersonnel(personnelID))
	if err != nil {
		return nil, err
	}
	for _, prev := range existing {
		if prev.DocumentName == name {
			if err := s.store.MedicalRecords().Delete(ctx, prev.ID); err != nil {
				return nil, err
			}
		}
	}

	now := time.Now().UTC()
	rec := &models.MedicalRecord{
		ID:           uuid.NewString(),
		PersonnelID:  personnelID,
		DocumentName: name,
		RecordType:   recordType,
		FileData:     params.Data,
		FileType:     params.FileType,
		FileSize:     int64(len(params.Data)),
		UploadDate:   now,
	}
	if err := s.store.MedicalRecords().Insert(ctx, rec); err != nil {
		return nil, err
	}

	if err := s.attachDocument(ctx, personnel, name, now); err != nil {
		return nil, err
	}
	zap.S().Named("medical_service").Infow("medical record uploaded",
		"personnel", personnelID, "document", name, "type", recordType.Value())
	return rec, nil
}

// attachDocument mirrors the upload into personnel.documents unless an
// entry with the same name already exists.
func (s *MedicalRecordService) attachDocument(ctx context.Context, personnel models.Record, name string, now time.Time) error {
	for _, doc := range personnel.Documents() {
		if doc.Name == name {
			return nil
		}
	}
	docs, _ := personnel["documents"].([]any)
	personnel["documents"] = append(docs, map[string]any{
		"name":        name,
		"category":    models.MedicalCategory,
		"uploaded_at": now.Format(time.RFC3339),
	})
	_, err := s.store.Records().Update(ctx, store.CollectionPersonnel, personnel)
	return err
}

// Download returns one record including its file payload.
func (s *MedicalRecordService) Download(ctx context.Context, id string) (*models.MedicalRecord, error) {
	return s.store.MedicalRecords().Get(ctx, id)
}

// Delete removes a medical record and the mirrored personnel document
// entry. Leaving the document behind would make the next reconciliation
// pass recreate the record.
func (s *MedicalRecordService) Delete(ctx context.Context, id string) error {
	rec, err := s.store.MedicalRecords().Get(ctx, id)
	if err != nil {
		if srvErrors.IsResourceNotFoundError(err) {
			return nil
		}
		return err
	}
	if err := s.store.MedicalRecords().Delete(ctx, id); err != nil {
		return err
	}

	personnel, err := s.store.Records().Get(ctx, store.CollectionPersonnel, rec.PersonnelID)
	if err != nil {
		if srvErrors.IsResourceNotFoundError(err) {
			return nil
		}
		return err
	}
	docs, _ := personnel["documents"].([]any)
	kept := make([]any, 0, len(docs))
	for _, entry := range docs {
		if m, ok := entry.(map[string]any); ok {
			if nameOf(m) == rec.DocumentName {
				continue
			}
		}
		kept = append(kept, entry)
	}
	personnel["documents"] = kept
	_, err = s.store.Records().Update(ctx, store.CollectionPersonnel, personnel)
	return err
}

// GetMedicalRecordsWithPersonnel lists record metadata joined with the
// personnel display fields.
func (s *MedicalRecordService) GetMedicalRecordsWithPersonnel(ctx context.Context) ([]models.MedicalRecordWithPersonnel, error) {
	records, err := s.store.MedicalRecords().List(ctx)
	if err != nil {
		return nil, err
	}
	personnel, err := personnelByID(ctx, s.store)
	if err != nil {
		return nil, err
	}

	out := make([]models.MedicalRecordWithPersonnel, 0, len(records))
	for _, rec := range records {
		joined := models.MedicalRecordWithPersonnel{
			MedicalRecord: rec,
			PersonnelName: models.UnknownName,
		}
		if p, ok := personnel[rec.PersonnelID]; ok {
			joined.PersonnelName = models.DisplayName(p)
			joined.PersonnelRank = p.String("rank")
		}
		out = append(out, joined)
	}
	return out, nil
}

// ListByPersonnel lists record metadata for one personnel record via the
// personnel index.
func (s *MedicalRecordService) ListByPersonnel(ctx context.Context, personnelID int64) ([]models.MedicalRecord, error) {
	return s.store.MedicalRecords().List(ctx, store.ByPersonnel(personnelID))
}

func nameOf(m map[string]any) string {
	if v, ok := m["name"].(string); ok {
		return v
	}
	return ""
}
