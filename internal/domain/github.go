package domain

// PRState is the open/closed state of a pull request.
type PRState string

const (
	PRStateOpen   PRState = "open"
	PRStateClosed PRState = "closed"
)

// PullRequest is the snapshot of a pull request used for status mapping.
// Fields are ordered to minimize memory padding.
type PullRequest struct {
	Assignees []string // Assignee logins
	Author    string   // PR author login
	State     PRState
	Number    int
	Merged    bool
	Draft     bool
}

// TargetAssignees returns the logins linked issues should be assigned to:
// the PR assignees, or the PR author when no one is assigned.
func (pr PullRequest) TargetAssignees() []string {
	if len(pr.Assignees) > 0 {
		return pr.Assignees
	}
	return []string{pr.Author}
}

// IssueRef identifies an issue linked to a pull request via closing references.
// NodeID is the immutable identity; Number is a lookup convenience.
type IssueRef struct {
	NodeID string
	Title  string
	Body   string
	Number int
}

// Issue is the mutable state of an issue as seen by the REST API.
type Issue struct {
	NodeID    string
	State     string // "open" or "closed"
	Assignees []string
	Number    int
}

// FieldOption is one choice of a single-select project field.
type FieldOption struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// ProjectField is a single-select field of a Projects v2 board.
type ProjectField struct {
	ID      string        `json:"id" yaml:"id"`
	Name    string        `json:"name" yaml:"name"`
	Options []FieldOption `json:"options" yaml:"options"`
}

// Option returns the option with the given name, or nil if absent.
func (f ProjectField) Option(name string) *FieldOption {
	for i := range f.Options {
		if f.Options[i].Name == name {
			return &f.Options[i]
		}
	}
	return nil
}
