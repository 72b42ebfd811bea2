package conflict

import "time"

// Operation is the kind of entry a caller is about to create.
type Operation string

const (
	OperationVacation   Operation = "ferie"
	OperationPermission Operation = "permesso"
	OperationSickLeave  Operation = "sick_leave"
	OperationAttendance Operation = "attendance"
)

var OperationValues = []string{
	string(OperationVacation),
	string(OperationPermission),
	string(OperationSickLeave),
	string(OperationAttendance),
}

// Kind tags the stored entity a conflict comes from.
type Kind string

const (
	KindBusinessTrip Kind = "business_trip"
	KindVacation     Kind = "vacation"
	KindPermission   Kind = "permission"
	KindSickLeave    Kind = "sick_leave"
	KindAttendance   Kind = "attendance"
)

type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
)

// Detail is one occupied date in a conflict index.
type Detail struct {
	Date        time.Time
	Kind        Kind
	Description string
	Severity    Severity
}

// Summary counts distinct dates in TotalConflicts, while ByKind counts raw
// occurrences: a date hit by two kinds adds one to the total and two to ByKind.
type Summary struct {
	TotalConflicts int
	ByKind         map[Kind]int
}

// Index is the advisory set of dates already occupied for an employee.
type Index struct {
	ConflictDates []time.Time
	Details       []Detail
	Summary       Summary
}

// Code classifies why a candidate entry was rejected.
type Code string

const (
	CodeHireDateViolation    Code = "hire_date_violation"
	CodeTemporalConflict     Code = "temporal_conflict"
	CodeGeofenceViolation    Code = "geofence_violation"
	CodeDuplicateEntry       Code = "duplicate_entry"
	CodeConfigurationMissing Code = "configuration_missing"
)

type Violation struct {
	Code     Code     `json:"code"`
	Kind     Kind     `json:"kind,omitempty"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// ValidationResult is an accept/reject answer. Rejections are ordinary values,
// never errors.
type ValidationResult struct {
	IsValid    bool        `json:"is_valid"`
	Conflicts  []string    `json:"conflicts"`
	Violations []Violation `json:"violations,omitempty"`
}

// Valid returns an accepting result.
func Valid() ValidationResult {
	return ValidationResult{IsValid: true, Conflicts: []string{}}
}

// Rejected returns a result carrying a single violation.
func Rejected(v Violation) ValidationResult {
	r := Valid()
	r.Add(v)
	return r
}

// Add records a violation and marks the result invalid.
func (r *ValidationResult) Add(v Violation) {
	if v.Severity == "" {
		v.Severity = SeverityCritical
	}
	r.IsValid = false
	r.Conflicts = append(r.Conflicts, v.Message)
	r.Violations = append(r.Violations, v)
}

// Merge appends the violations of other to r.
func (r *ValidationResult) Merge(other ValidationResult) {
	for _, v := range other.Violations {
		r.Add(v)
	}
}

// Reason joins the conflict messages into one human-readable line.
func (r ValidationResult) Reason() string {
	switch len(r.Conflicts) {
	case 0:
		return ""
	case 1:
		return r.Conflicts[0]
	}
	reason := r.Conflicts[0]
	for _, c := range r.Conflicts[1:] {
		reason += "; " + c
	}
	return reason
}
