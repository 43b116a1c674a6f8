package store

import "database/sql"

// Store provides access to all storage repositories.
type Store struct {
	db      *sql.DB
	records *RecordStore
	session *SessionStore
	medical *MedicalRecordStore
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:      db,
		records: NewRecordStore(db),
		session: NewSessionStore(db),
		medical: NewMedicalRecordStore(db),
	}
}

func (s *Store) Records() *RecordStore {
	return s.records
}

func (s *Store) Session() *SessionStore {
	return s.session
}

func (s *Store) MedicalRecords() *MedicalRecordStore {
	return s.medical
}

func (s *Store) Close() error {
	return s.db.Close()
}
