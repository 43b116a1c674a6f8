package store

// Session queries
const (
	queryGetSession = `SELECT data FROM session WHERE key = ?`

	queryUpsertSession = `
		INSERT INTO session (key, data, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (key) DO UPDATE SET
			data = EXCLUDED.data,
			updated_at = CURRENT_TIMESTAMP`

	queryDeleteSession = `DELETE FROM session WHERE key = ?`
)

// Medical record queries
const (
	queryGetMedicalRecord = `
		SELECT id, personnel_id, document_name, record_type, file_data, file_type, file_size, upload_date
		FROM medical_records WHERE id = ?`

	queryInsertMedicalRecord = `
		INSERT INTO medical_records
			(id, personnel_id, document_name, record_type, file_data, file_type, file_size, upload_date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	queryDeleteMedicalRecord = `DELETE FROM medical_records WHERE id = ?`

	queryDeleteMedicalRecordByKey = `
		DELETE FROM medical_records WHERE personnel_id = ? AND document_name = ?`
)
