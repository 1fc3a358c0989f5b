package domain

import "context"

// IssueService provides REST-backed issue and pull request operations.
type IssueService interface {
	// GetPullRequest retrieves the PR snapshot used for status mapping.
	GetPullRequest(ctx context.Context, number int) (*PullRequest, error)

	// GetIssue retrieves the current state of an issue.
	GetIssue(ctx context.Context, number int) (*Issue, error)

	// CloseIssue closes an open issue.
	CloseIssue(ctx context.Context, number int) error

	// ReplaceAssignees replaces the issue's assignees wholesale.
	ReplaceAssignees(ctx context.Context, number int, logins []string) error

	// ClearAssignees removes the given assignees from the issue.
	ClearAssignees(ctx context.Context, number int, logins []string) error
}

// ProjectService provides GraphQL-backed Projects v2 operations.
type ProjectService interface {
	// ProjectID resolves the project node id for the configured
	// organization and project number. Cached for the process lifetime.
	ProjectID(ctx context.Context) (string, error)

	// Fields returns the project's single-select fields with their options.
	// Fetched at most once per process.
	Fields(ctx context.Context) ([]ProjectField, error)

	// StatusOption resolves the "Status" field id and the option id for the
	// given status name.
	StatusOption(ctx context.Context, status IssueStatus) (fieldID, optionID string, err error)

	// ItemID resolves the project item id associating the issue with the
	// configured project.
	ItemID(ctx context.Context, issueNodeID string) (string, error)

	// SetItemStatus sets a single-select field value on a project item.
	// Idempotent: setting the same option twice yields the same final state.
	SetItemStatus(ctx context.Context, itemID, fieldID, optionID string) error

	// LinkedIssues returns the issues a PR closes via closing references.
	LinkedIssues(ctx context.Context, prNumber int) ([]IssueRef, error)
}
