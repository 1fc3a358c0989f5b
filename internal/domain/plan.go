package domain

// AssigneeAction says what to do with a linked issue's assignees.
type AssigneeAction string

const (
	AssigneeActionNone   AssigneeAction = "none"   // Leave assignees untouched
	AssigneeActionClear  AssigneeAction = "clear"  // Remove all assignees
	AssigneeActionAssign AssigneeAction = "assign" // Replace with the plan's assignees
)

// SyncPlan is the outcome of mapping a PR lifecycle state onto linked issues.
type SyncPlan struct {
	Status         IssueStatus
	AssigneeAction AssigneeAction
	Assignees      []string // Target logins; set only for AssigneeActionAssign
	CloseIssue     bool
}

// PlanFor maps a PR snapshot to the actions to apply to its linked issues.
// The decision table is exhaustive over PR state, checked in priority order:
//
//	merged                → Done, close the issue
//	closed without merge  → Selected for Development, clear assignees
//	open                  → In Development (draft) / Ready For Review,
//	                        assign PR assignees (author when none)
func PlanFor(pr PullRequest) SyncPlan {
	switch {
	case pr.Merged:
		return SyncPlan{
			Status:         StatusDone,
			AssigneeAction: AssigneeActionNone,
			CloseIssue:     true,
		}
	case pr.State == PRStateClosed:
		return SyncPlan{
			Status:         StatusSelectedForDevelopment,
			AssigneeAction: AssigneeActionClear,
		}
	default:
		status := StatusReadyForReview
		if pr.Draft {
			status = StatusInDevelopment
		}
		return SyncPlan{
			Status:         status,
			AssigneeAction: AssigneeActionAssign,
			Assignees:      pr.TargetAssignees(),
		}
	}
}
