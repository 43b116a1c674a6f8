package models

// LeaveStatus represents the state of a leave request.
type LeaveStatus string

const (
	// LeaveStatusPending - awaiting admin decision, the only mutable state
	LeaveStatusPending LeaveStatus = "Pending"
	// LeaveStatusApproved - terminal
	LeaveStatusApproved LeaveStatus = "Approved"
	// LeaveStatusRejected - terminal
	LeaveStatusRejected LeaveStatus = "Rejected"
)

func (s LeaveStatus) Value() string {
	return string(s)
}

// ClearanceStatus represents the state of a clearance request.
type ClearanceStatus string

const (
	ClearanceStatusPending   ClearanceStatus = "Pending"
	ClearanceStatusCompleted ClearanceStatus = "Completed"
	ClearanceStatusRejected  ClearanceStatus = "Rejected"
)

func (s ClearanceStatus) Value() string {
	return string(s)
}

// InventoryStatus represents the condition of an inventory item.
type InventoryStatus string

const (
	InventoryStatusGood             InventoryStatus = "Good"
	InventoryStatusNeedsMaintenance InventoryStatus = "Needs Maintenance"
	InventoryStatusDamaged          InventoryStatus = "Damaged"
)

func (s InventoryStatus) Value() string {
	return string(s)
}

// CandidateStatus represents the state of a recruitment candidate.
type CandidateStatus string

const (
	// CandidateStatusApplied - intake received, not yet reviewed
	CandidateStatusApplied CandidateStatus = "Applied"
	// CandidateStatusShortlisted - passed initial review
	CandidateStatusShortlisted CandidateStatus = "Shortlisted"
	// CandidateStatusAccepted - hired, a personnel record exists
	CandidateStatusAccepted CandidateStatus = "Accepted"
	// CandidateStatusRejected - terminal
	CandidateStatusRejected CandidateStatus = "Rejected"
)

func (s CandidateStatus) Value() string {
	return string(s)
}
