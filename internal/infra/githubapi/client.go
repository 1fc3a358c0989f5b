// Package githubapi provides REST-backed issue and pull request operations
// via the go-github client.
package githubapi

import (
	"context"
	"fmt"

	"github.com/croftworks/prsync/internal/domain"
	"github.com/google/go-github/v72/github"
	"golang.org/x/oauth2"
)

// Ensure Client implements domain.IssueService.
var _ domain.IssueService = (*Client)(nil)

// Client wraps the go-github client for one repository.
type Client struct {
	gh    *github.Client
	owner string
	repo  string
}

// NewClient creates a new client authenticated with the configured token.
func NewClient(ctx context.Context, cfg domain.Config) *Client {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token})
	return &Client{
		gh:    github.NewClient(oauth2.NewClient(ctx, ts)),
		owner: cfg.Owner,
		repo:  cfg.Repo,
	}
}

// NewClientWithGitHub creates a client around an existing go-github client.
// This is useful for testing.
func NewClientWithGitHub(gh *github.Client, owner, repo string) *Client {
	return &Client{gh: gh, owner: owner, repo: repo}
}

// GetPullRequest retrieves the PR snapshot used for status mapping.
func (c *Client) GetPullRequest(ctx context.Context, number int) (*domain.PullRequest, error) {
	pr, _, err := c.gh.PullRequests.Get(ctx, c.owner, c.repo, number)
	if err != nil {
		return nil, fmt.Errorf("get pull request: %w", err)
	}

	assignees := make([]string, 0, len(pr.Assignees))
	for _, a := range pr.Assignees {
		assignees = append(assignees, a.GetLogin())
	}

	return &domain.PullRequest{
		Number:    number,
		Merged:    pr.GetMerged(),
		State:     domain.PRState(pr.GetState()),
		Draft:     pr.GetDraft(),
		Assignees: assignees,
		Author:    pr.GetUser().GetLogin(),
	}, nil
}

// GetIssue retrieves the current state of an issue.
func (c *Client) GetIssue(ctx context.Context, number int) (*domain.Issue, error) {
	issue, _, err := c.gh.Issues.Get(ctx, c.owner, c.repo, number)
	if err != nil {
		return nil, fmt.Errorf("get issue: %w", err)
	}

	assignees := make([]string, 0, len(issue.Assignees))
	for _, a := range issue.Assignees {
		assignees = append(assignees, a.GetLogin())
	}

	return &domain.Issue{
		Number:    number,
		NodeID:    issue.GetNodeID(),
		State:     issue.GetState(),
		Assignees: assignees,
	}, nil
}

// CloseIssue closes an open issue.
func (c *Client) CloseIssue(ctx context.Context, number int) error {
	req := &github.IssueRequest{State: github.Ptr("closed")}
	if _, _, err := c.gh.Issues.Edit(ctx, c.owner, c.repo, number, req); err != nil {
		return fmt.Errorf("close issue: %w", err)
	}
	return nil
}

// ReplaceAssignees replaces the issue's assignees wholesale.
func (c *Client) ReplaceAssignees(ctx context.Context, number int, logins []string) error {
	req := &github.IssueRequest{Assignees: &logins}
	if _, _, err := c.gh.Issues.Edit(ctx, c.owner, c.repo, number, req); err != nil {
		return fmt.Errorf("replace assignees: %w", err)
	}
	return nil
}

// ClearAssignees removes the given assignees from the issue.
func (c *Client) ClearAssignees(ctx context.Context, number int, logins []string) error {
	if _, _, err := c.gh.Issues.RemoveAssignees(ctx, c.owner, c.repo, number, logins); err != nil {
		return fmt.Errorf("remove assignees: %w", err)
	}
	return nil
}
