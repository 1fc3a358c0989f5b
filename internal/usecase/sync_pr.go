package usecase

import (
	"context"
	"fmt"

	"github.com/croftworks/prsync/internal/domain"
	"go.uber.org/zap"
)

// SyncPRInput contains the parameters for synchronizing a PR's linked issues.
type SyncPRInput struct {
	PRNumber int
}

// IssueResult records what happened to one linked issue.
type IssueResult struct {
	Status    domain.IssueStatus // Status the project field was set to
	Assigned  []string           // Logins assigned, when assignment happened
	Warnings  []string           // Tolerated per-issue failures
	Number    int
	Closed    bool // Issue was closed by this run
	Unchanged bool // No close/assignee change was needed
}

// SyncPROutput contains the result of a sync run.
type SyncPROutput struct {
	Plan    domain.SyncPlan
	Results []IssueResult
	PR      domain.PullRequest
}

// SyncPR synchronizes the project status of every issue a PR closes with the
// PR's lifecycle state.
type SyncPR struct {
	issues   domain.IssueService
	projects domain.ProjectService
	logger   *zap.Logger
}

// NewSyncPR creates a new SyncPR use case.
func NewSyncPR(issues domain.IssueService, projects domain.ProjectService, logger *zap.Logger) *SyncPR {
	return &SyncPR{
		issues:   issues,
		projects: projects,
		logger:   logger,
	}
}

// Execute runs the sync for one pull request.
//
// Issues are processed sequentially. Close and (un)assign failures are logged
// and recorded as warnings so one issue cannot block the rest; the project
// status set is not tolerated, since an unresolvable status means the board is
// misconfigured and the run must stop.
func (uc *SyncPR) Execute(ctx context.Context, in SyncPRInput) (*SyncPROutput, error) {
	pr, err := uc.issues.GetPullRequest(ctx, in.PRNumber)
	if err != nil {
		return nil, fmt.Errorf("get pull request #%d: %w", in.PRNumber, err)
	}

	linked, err := uc.projects.LinkedIssues(ctx, in.PRNumber)
	if err != nil {
		return nil, fmt.Errorf("get linked issues of #%d: %w", in.PRNumber, err)
	}

	plan := domain.PlanFor(*pr)
	uc.logger.Info("sync plan",
		zap.Int("pr", pr.Number),
		zap.String("status", string(plan.Status)),
		zap.String("assignees", string(plan.AssigneeAction)),
		zap.Bool("close", plan.CloseIssue),
		zap.Int("linked_issues", len(linked)),
	)

	// Resolve the status option before touching any issue so a misconfigured
	// status name fails the run with zero mutations applied.
	fieldID, optionID, err := uc.projects.StatusOption(ctx, plan.Status)
	if err != nil {
		return nil, err
	}

	out := &SyncPROutput{PR: *pr, Plan: plan}
	for _, ref := range linked {
		result, err := uc.syncIssue(ctx, ref, plan, fieldID, optionID)
		if err != nil {
			return nil, err
		}
		out.Results = append(out.Results, *result)
	}
	return out, nil
}

// syncIssue applies the plan to a single linked issue.
func (uc *SyncPR) syncIssue(ctx context.Context, ref domain.IssueRef, plan domain.SyncPlan, fieldID, optionID string) (*IssueResult, error) {
	issue, err := uc.issues.GetIssue(ctx, ref.Number)
	if err != nil {
		return nil, fmt.Errorf("get issue #%d: %w", ref.Number, err)
	}

	result := &IssueResult{Number: ref.Number, Status: plan.Status, Unchanged: true}

	if plan.CloseIssue {
		if issue.State == "open" {
			if err := uc.issues.CloseIssue(ctx, ref.Number); err != nil {
				uc.warn(result, "close issue", err)
			} else {
				result.Closed = true
				result.Unchanged = false
				uc.logger.Info("closed issue", zap.Int("issue", ref.Number))
			}
		} else {
			uc.logger.Info("issue already closed", zap.Int("issue", ref.Number))
		}
	}

	switch plan.AssigneeAction {
	case domain.AssigneeActionClear:
		if len(issue.Assignees) > 0 {
			if err := uc.issues.ClearAssignees(ctx, ref.Number, issue.Assignees); err != nil {
				uc.warn(result, "remove assignees", err)
			} else {
				result.Unchanged = false
				uc.logger.Info("removed assignees",
					zap.Int("issue", ref.Number),
					zap.Strings("logins", issue.Assignees))
			}
		}
	case domain.AssigneeActionAssign:
		if !sameLogins(issue.Assignees, plan.Assignees) {
			if err := uc.issues.ReplaceAssignees(ctx, ref.Number, plan.Assignees); err != nil {
				uc.warn(result, "assign issue", err)
			} else {
				result.Assigned = plan.Assignees
				result.Unchanged = false
				uc.logger.Info("assigned issue",
					zap.Int("issue", ref.Number),
					zap.Strings("logins", plan.Assignees))
			}
		}
	case domain.AssigneeActionNone:
	}

	// The status set always runs, even after tolerated failures above.
	itemID, err := uc.projects.ItemID(ctx, ref.NodeID)
	if err != nil {
		return nil, fmt.Errorf("resolve project item of issue #%d: %w", ref.Number, err)
	}
	if err := uc.projects.SetItemStatus(ctx, itemID, fieldID, optionID); err != nil {
		return nil, fmt.Errorf("set status of issue #%d: %w", ref.Number, err)
	}
	uc.logger.Info("set issue status",
		zap.Int("issue", ref.Number),
		zap.String("status", string(plan.Status)))

	return result, nil
}

// warn records a tolerated per-issue failure.
func (uc *SyncPR) warn(result *IssueResult, action string, err error) {
	uc.logger.Warn("could not "+action,
		zap.Int("issue", result.Number),
		zap.Error(err))
	result.Warnings = append(result.Warnings, fmt.Sprintf("could not %s: %v", action, err))
}

// sameLogins compares two login lists as sets.
func sameLogins(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[string]struct{}, len(a))
	for _, login := range a {
		seen[login] = struct{}{}
	}
	for _, login := range b {
		if _, ok := seen[login]; !ok {
			return false
		}
	}
	return true
}
