package domain

// IssueStatus is the value of the project's single-select "Status" field.
type IssueStatus string

const (
	StatusSelectedForDevelopment IssueStatus = "Selected for Development" // Backlog, picked for upcoming work
	StatusWeeklyBacklog          IssueStatus = "Weekly Backlog"           // Scheduled for the current week
	StatusInDevelopment          IssueStatus = "In Development"           // Work in progress (draft PR open)
	StatusReadyForReview         IssueStatus = "Ready For Review"         // PR open and ready
	StatusOnHold                 IssueStatus = "On Hold"                  // Parked
	StatusDone                   IssueStatus = "Done"                     // PR merged
)

// StatusFieldName is the name of the project field this tool manages.
const StatusFieldName = "Status"

// AllStatuses returns all valid status values.
func AllStatuses() []IssueStatus {
	return []IssueStatus{
		StatusSelectedForDevelopment,
		StatusWeeklyBacklog,
		StatusInDevelopment,
		StatusReadyForReview,
		StatusOnHold,
		StatusDone,
	}
}

// IsValid returns true if the status is one of the recognized values.
func (s IssueStatus) IsValid() bool {
	switch s {
	case StatusSelectedForDevelopment, StatusWeeklyBacklog, StatusInDevelopment,
		StatusReadyForReview, StatusOnHold, StatusDone:
		return true
	default:
		return false
	}
}

// ParseStatus converts a raw string into an IssueStatus.
// Returns ErrInvalidStatus for anything outside the recognized set.
func ParseStatus(raw string) (IssueStatus, error) {
	s := IssueStatus(raw)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
