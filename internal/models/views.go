package models

// UnknownName is the display-name placeholder attached when a join finds no
// matching record. A miss is not an error, the row degrades instead.
const UnknownName = "Unknown"

// TrainingWithPersonnel is a training row joined with its personnel record.
// Personnel is empty (never nil) when the foreign key matches nothing.
type TrainingWithPersonnel struct {
	Training      Record
	Personnel     Record
	PersonnelName string
}

// InspectionWithDetails is an inspection row joined with the inspected
// equipment and the inspecting personnel.
type InspectionWithDetails struct {
	Inspection    Record
	Equipment     Record
	Inspector     Record
	EquipmentName string
	InspectorName string
}

// MedicalRecordWithPersonnel is a medical record joined with its personnel
// record's display fields.
type MedicalRecordWithPersonnel struct {
	MedicalRecord
	PersonnelName string
	PersonnelRank string
}

// DisplayName builds the display name of a personnel record from its
// identity fields.
func DisplayName(p Record) string {
	first := p.String("first_name")
	last := p.String("last_name")
	switch {
	case first == "" && last == "":
		return UnknownName
	case first == "":
		return last
	case last == "":
		return first
	default:
		return first + " " + last
	}
}
