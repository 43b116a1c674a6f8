package v1

import "time"

// Error is the uniform error envelope for all API responses.
type Error struct {
	Error string `json:"error"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type SessionUser struct {
	PersonnelID int64     `json:"personnel_id"`
	Username    string    `json:"username"`
	FullName    string    `json:"full_name"`
	Rank        string    `json:"rank"`
	Role        string    `json:"role"`
	LoginAt     time.Time `json:"login_at"`
}

type LoginResponse struct {
	Token string      `json:"token"`
	User  SessionUser `json:"user"`
}

// Credentials is returned exactly once, when an account is created.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	Personnel   map[string]any `json:"personnel"`
	Credentials Credentials    `json:"credentials"`
}

type PromoteRequest struct {
	Rank string `json:"rank" binding:"required"`
}

type AssignRequest struct {
	// PersonnelID of the assignee; zero unassigns the item.
	PersonnelID int64 `json:"personnel_id"`
}

type AcceptRequest struct {
	Rank string `json:"rank" binding:"required"`
}

type ClearanceView struct {
	Request       map[string]any `json:"request"`
	PersonnelName string         `json:"personnel_name"`
}

type InventoryItemView struct {
	Item         map[string]any `json:"item"`
	AssignedName string         `json:"assigned_name"`
}

type TrainingView struct {
	Training      map[string]any `json:"training"`
	PersonnelName string         `json:"personnel_name"`
}

type InspectionView struct {
	Inspection    map[string]any `json:"inspection"`
	EquipmentName string         `json:"equipment_name"`
	InspectorName string         `json:"inspector_name"`
}

// MedicalRecord carries record metadata only; the binary payload is
// served by the download endpoint.
type MedicalRecord struct {
	Id            string    `json:"id"`
	PersonnelId   int64     `json:"personnel_id"`
	DocumentName  string    `json:"document_name"`
	RecordType    string    `json:"record_type"`
	FileType      string    `json:"file_type"`
	FileSize      int64     `json:"file_size"`
	UploadDate    time.Time `json:"upload_date"`
	PersonnelName string    `json:"personnel_name,omitempty"`
	PersonnelRank string    `json:"personnel_rank,omitempty"`
}

type SyncFailure struct {
	Action string `json:"action"`
	Key    string `json:"key"`
	Error  string `json:"error"`
}

type SyncReport struct {
	Added     int           `json:"added"`
	Removed   int           `json:"removed"`
	Updated   int           `json:"updated"`
	Converged bool          `json:"converged"`
	Failures  []SyncFailure `json:"failures"`
}
