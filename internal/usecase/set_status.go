package usecase

import (
	"context"
	"fmt"

	"github.com/croftworks/prsync/internal/domain"
)

// SetStatusInput contains the parameters for setting one issue's status.
// Exactly one of IssueNumber and IssueNodeID must be set.
type SetStatusInput struct {
	IssueNodeID string
	Status      domain.IssueStatus
	IssueNumber int
}

// SetStatusOutput contains the result of setting an issue's status.
type SetStatusOutput struct {
	IssueNodeID string
	ItemID      string
	Status      domain.IssueStatus
}

// SetStatus sets the project "Status" field of a single issue.
type SetStatus struct {
	issues   domain.IssueService
	projects domain.ProjectService
}

// NewSetStatus creates a new SetStatus use case.
func NewSetStatus(issues domain.IssueService, projects domain.ProjectService) *SetStatus {
	return &SetStatus{
		issues:   issues,
		projects: projects,
	}
}

// Execute validates the input and performs the status set.
// Validation failures happen before any network call.
func (uc *SetStatus) Execute(ctx context.Context, in SetStatusInput) (*SetStatusOutput, error) {
	if (in.IssueNumber == 0) == (in.IssueNodeID == "") {
		return nil, domain.ErrIssueIdentifier
	}
	if !in.Status.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, in.Status)
	}

	nodeID := in.IssueNodeID
	if in.IssueNumber != 0 {
		issue, err := uc.issues.GetIssue(ctx, in.IssueNumber)
		if err != nil {
			return nil, fmt.Errorf("get issue #%d: %w", in.IssueNumber, err)
		}
		nodeID = issue.NodeID
	}

	fieldID, optionID, err := uc.projects.StatusOption(ctx, in.Status)
	if err != nil {
		return nil, err
	}

	itemID, err := uc.projects.ItemID(ctx, nodeID)
	if err != nil {
		return nil, err
	}

	if err := uc.projects.SetItemStatus(ctx, itemID, fieldID, optionID); err != nil {
		return nil, err
	}

	return &SetStatusOutput{
		IssueNodeID: nodeID,
		ItemID:      itemID,
		Status:      in.Status,
	}, nil
}
