package v1

import (
	"fmt"

	"github.com/firehall/personnel-agent/internal/models"
	"github.com/firehall/personnel-agent/internal/services"
)

// NewSessionUser converts a session snapshot to its API shape.
func NewSessionUser(u models.UserSnapshot) SessionUser {
	return SessionUser{
		PersonnelID: u.PersonnelID,
		Username:    u.Username,
		FullName:    u.FullName,
		Rank:        u.Rank,
		Role:        u.Role,
		LoginAt:     u.LoginAt,
	}
}

func NewCredentials(c services.Credentials) Credentials {
	return Credentials{Username: c.Username, Password: c.Password}
}

func NewClearanceView(v services.ClearanceWithPersonnel) ClearanceView {
	return ClearanceView{Request: v.Request, PersonnelName: v.PersonnelName}
}

func NewInventoryItemView(v services.InventoryWithAssignee) InventoryItemView {
	return InventoryItemView{Item: v.Item, AssignedName: v.AssignedName}
}

func NewTrainingView(v models.TrainingWithPersonnel) TrainingView {
	return TrainingView{Training: v.Training, PersonnelName: v.PersonnelName}
}

func NewInspectionView(v models.InspectionWithDetails) InspectionView {
	return InspectionView{
		Inspection:    v.Inspection,
		EquipmentName: v.EquipmentName,
		InspectorName: v.InspectorName,
	}
}

// NewMedicalRecord converts record metadata to its API shape. The binary
// payload never travels through list responses.
func NewMedicalRecord(m models.MedicalRecord) MedicalRecord {
	return MedicalRecord{
		Id:           m.ID,
		PersonnelId:  m.PersonnelID,
		DocumentName: m.DocumentName,
		RecordType:   string(m.RecordType),
		FileType:     m.FileType,
		FileSize:     m.FileSize,
		UploadDate:   m.UploadDate,
	}
}

func NewMedicalRecordWithPersonnel(m models.MedicalRecordWithPersonnel) MedicalRecord {
	rec := NewMedicalRecord(m.MedicalRecord)
	rec.PersonnelName = m.PersonnelName
	rec.PersonnelRank = m.PersonnelRank
	return rec
}

// NewSyncReport converts a reconciliation report to its API shape.
func NewSyncReport(r models.SyncReport) SyncReport {
	failures := make([]SyncFailure, 0, len(r.Failures))
	for _, f := range r.Failures {
		failures = append(failures, SyncFailure{
			Action: string(f.Action),
			Key:    fmt.Sprintf("%d/%s", f.Key.PersonnelID, f.Key.DocumentName),
			Error:  f.Err.Error(),
		})
	}
	return SyncReport{
		Added:     r.Added,
		Removed:   r.Removed,
		Updated:   r.Updated,
		Converged: r.Converged(),
		Failures:  failures,
	}
}
