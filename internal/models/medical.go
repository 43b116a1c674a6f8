package models

import (
	"strings"
	"time"
)

// MedicalCategory is the explicit document category marking a personnel
// document as medical. Legacy records predate the tag and are classified by
// the keyword heuristic instead.
const MedicalCategory = "Medical Record"

// Document is an entry of a personnel record's embedded documents array.
type Document struct {
	Name       string
	Category   string
	UploadedAt string
}

// IsMedical reports whether the document belongs in the medical records
// collection. The explicit category tag wins; the name keyword heuristic is
// kept only for legacy documents uploaded before the tag existed.
func (d Document) IsMedical() bool {
	if d.Category == MedicalCategory {
		return true
	}
	if strings.Contains(strings.ToLower(d.Category), "medical") {
		return true
	}
	return strings.Contains(strings.ToLower(d.Name), "medical")
}

// RecordType classifies a medical record.
type RecordType string

const (
	RecordTypeCheckup RecordType = "Checkup"
	RecordTypeLabTest RecordType = "Lab Test"
	RecordTypeImaging RecordType = "Imaging"
	RecordTypeDental  RecordType = "Dental"
	RecordTypeGeneral RecordType = "General"
)

func (t RecordType) Value() string {
	return string(t)
}

// RecordTypeFromName infers a record type from keywords in the document
// name. Unmatched names fall back to General.
func RecordTypeFromName(name string) RecordType {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "dental"):
		return RecordTypeDental
	case strings.Contains(lower, "checkup"):
		return RecordTypeCheckup
	case strings.Contains(lower, "lab"):
		return RecordTypeLabTest
	case strings.Contains(lower, "imaging"), strings.Contains(lower, "xray"), strings.Contains(lower, "x-ray"):
		return RecordTypeImaging
	default:
		return RecordTypeGeneral
	}
}

// MedicalRecord is a row of the medical records collection. The file payload
// is persisted alongside the metadata in a single record.
type MedicalRecord struct {
	ID           string
	PersonnelID  int64
	DocumentName string
	RecordType   RecordType
	FileData     []byte
	FileType     string
	FileSize     int64
	UploadDate   time.Time
}

// Key returns the cross-collection uniqueness key of the record.
func (m MedicalRecord) Key() DocumentKey {
	return DocumentKey{PersonnelID: m.PersonnelID, DocumentName: m.DocumentName}
}

// DocumentKey identifies a medical document across the personnel-embedded
// documents and the medical records collection.
type DocumentKey struct {
	PersonnelID  int64
	DocumentName string
}
