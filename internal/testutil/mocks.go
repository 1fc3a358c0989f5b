// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"fmt"

	"github.com/croftworks/prsync/internal/domain"
)

// MockIssueService is a test double for domain.IssueService.
type MockIssueService struct {
	PRs      map[int]*domain.PullRequest
	Issues   map[int]*domain.Issue
	Replaced map[int][]string // issue number -> last assignee replacement
	Cleared  map[int][]string // issue number -> logins passed to ClearAssignees
	Closed   []int

	GetPRErr    error
	GetIssueErr error
	CloseErr    error
	ReplaceErr  error
	ClearErr    error
}

// NewMockIssueService creates a MockIssueService with initialized maps.
func NewMockIssueService() *MockIssueService {
	return &MockIssueService{
		PRs:      make(map[int]*domain.PullRequest),
		Issues:   make(map[int]*domain.Issue),
		Replaced: make(map[int][]string),
		Cleared:  make(map[int][]string),
	}
}

// GetPullRequest returns the configured PR snapshot.
func (m *MockIssueService) GetPullRequest(_ context.Context, number int) (*domain.PullRequest, error) {
	if m.GetPRErr != nil {
		return nil, m.GetPRErr
	}
	pr, ok := m.PRs[number]
	if !ok {
		return nil, domain.ErrPRNotFound
	}
	return pr, nil
}

// GetIssue returns the configured issue.
func (m *MockIssueService) GetIssue(_ context.Context, number int) (*domain.Issue, error) {
	if m.GetIssueErr != nil {
		return nil, m.GetIssueErr
	}
	issue, ok := m.Issues[number]
	if !ok {
		return nil, fmt.Errorf("issue #%d not found", number)
	}
	return issue, nil
}

// CloseIssue records the close and updates the stored issue state.
func (m *MockIssueService) CloseIssue(_ context.Context, number int) error {
	if m.CloseErr != nil {
		return m.CloseErr
	}
	m.Closed = append(m.Closed, number)
	if issue, ok := m.Issues[number]; ok {
		issue.State = "closed"
	}
	return nil
}

// ReplaceAssignees records the wholesale assignee replacement.
func (m *MockIssueService) ReplaceAssignees(_ context.Context, number int, logins []string) error {
	if m.ReplaceErr != nil {
		return m.ReplaceErr
	}
	m.Replaced[number] = logins
	if issue, ok := m.Issues[number]; ok {
		issue.Assignees = logins
	}
	return nil
}

// ClearAssignees records the removal.
func (m *MockIssueService) ClearAssignees(_ context.Context, number int, logins []string) error {
	if m.ClearErr != nil {
		return m.ClearErr
	}
	m.Cleared[number] = logins
	if issue, ok := m.Issues[number]; ok {
		issue.Assignees = nil
	}
	return nil
}

// SetStatusCall records one SetItemStatus invocation.
type SetStatusCall struct {
	ItemID   string
	FieldID  string
	OptionID string
}

// MockProjectService is a test double for domain.ProjectService.
// StatusOption resolves against ProjectFields the way the real client does,
// so option-not-found paths behave identically.
type MockProjectService struct {
	ProjectNodeID string
	ProjectFields []domain.ProjectField
	Items         map[string]string // issue node id -> project item id
	Linked        map[int][]domain.IssueRef
	FieldValues   map[string]string // item id + "/" + field id -> option id
	SetCalls      []SetStatusCall

	ProjectErr error
	FieldsErr  error
	ItemErr    error
	SetErr     error
	LinkedErr  error

	FieldsFetches int
}

// NewMockProjectService creates a MockProjectService with initialized maps.
func NewMockProjectService() *MockProjectService {
	return &MockProjectService{
		ProjectNodeID: "PVT_mock",
		Items:         make(map[string]string),
		Linked:        make(map[int][]domain.IssueRef),
		FieldValues:   make(map[string]string),
	}
}

// WithStatusField configures a "Status" field carrying all recognized options.
func (m *MockProjectService) WithStatusField() *MockProjectService {
	field := domain.ProjectField{ID: "FIELD_status", Name: domain.StatusFieldName}
	for i, s := range domain.AllStatuses() {
		field.Options = append(field.Options, domain.FieldOption{
			ID:   fmt.Sprintf("OPT_%d", i),
			Name: string(s),
		})
	}
	m.ProjectFields = []domain.ProjectField{field}
	return m
}

// ProjectID returns the configured project node id.
func (m *MockProjectService) ProjectID(_ context.Context) (string, error) {
	if m.ProjectErr != nil {
		return "", m.ProjectErr
	}
	return m.ProjectNodeID, nil
}

// Fields returns the configured field table.
func (m *MockProjectService) Fields(_ context.Context) ([]domain.ProjectField, error) {
	if m.FieldsErr != nil {
		return nil, m.FieldsErr
	}
	m.FieldsFetches++
	return m.ProjectFields, nil
}

// StatusOption resolves the status field and option from the field table.
func (m *MockProjectService) StatusOption(ctx context.Context, status domain.IssueStatus) (string, string, error) {
	fields, err := m.Fields(ctx)
	if err != nil {
		return "", "", err
	}
	for _, f := range fields {
		if f.Name != domain.StatusFieldName {
			continue
		}
		if opt := f.Option(string(status)); opt != nil {
			return f.ID, opt.ID, nil
		}
		return "", "", fmt.Errorf("%w: %q", domain.ErrStatusOptionNotFound, status)
	}
	return "", "", domain.ErrStatusFieldNotFound
}

// ItemID resolves the configured project item.
func (m *MockProjectService) ItemID(_ context.Context, issueNodeID string) (string, error) {
	if m.ItemErr != nil {
		return "", m.ItemErr
	}
	itemID, ok := m.Items[issueNodeID]
	if !ok {
		return "", domain.ErrItemNotFound
	}
	return itemID, nil
}

// SetItemStatus records the mutation and stores the final field value.
func (m *MockProjectService) SetItemStatus(_ context.Context, itemID, fieldID, optionID string) error {
	if m.SetErr != nil {
		return m.SetErr
	}
	m.SetCalls = append(m.SetCalls, SetStatusCall{ItemID: itemID, FieldID: fieldID, OptionID: optionID})
	m.FieldValues[itemID+"/"+fieldID] = optionID
	return nil
}

// LinkedIssues returns the configured closing references.
func (m *MockProjectService) LinkedIssues(_ context.Context, prNumber int) ([]domain.IssueRef, error) {
	if m.LinkedErr != nil {
		return nil, m.LinkedErr
	}
	return m.Linked[prNumber], nil
}
