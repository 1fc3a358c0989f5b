// Package projects talks to the GitHub GraphQL API for Projects v2
// operations. Projects v2 single-select fields have no REST equivalent.
package projects

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/croftworks/prsync/internal/domain"
	"go.uber.org/zap"
)

// Ensure Client implements domain.ProjectService.
var _ domain.ProjectService = (*Client)(nil)

// requestTimeout bounds each GraphQL round-trip.
const requestTimeout = 10 * time.Second

// APIError is a failed GraphQL call: a non-2xx HTTP response or a response
// carrying GraphQL-level errors.
type APIError struct {
	Body       string
	StatusCode int
}

func (e *APIError) Error() string {
	if e.StatusCode != http.StatusOK {
		return fmt.Sprintf("graphql request failed with status %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("graphql request returned errors: %s", e.Body)
}

// Client resolves and mutates Projects v2 items.
// The resolved project id and the single-select field table are cached for the
// process lifetime; execution is single-threaded, so plain fields suffice.
type Client struct {
	httpClient *http.Client
	logger     *zap.Logger
	url        string
	token      string
	owner      string
	repo       string
	projectNum int

	projectID    string
	fields       []domain.ProjectField
	fieldsLoaded bool
}

// NewClient creates a new Projects client from the configuration.
func NewClient(cfg domain.Config, logger *zap.Logger) *Client {
	url := cfg.GraphQLURL
	if url == "" {
		url = domain.DefaultGraphQLURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		logger:     logger,
		url:        url,
		token:      cfg.Token,
		owner:      cfg.Owner,
		repo:       cfg.Repo,
		projectNum: cfg.ProjectNumber,
	}
}

const queryProjectID = `
query($owner: String!, $number: Int!) {
  organization(login: $owner) {
    projectV2(number: $number) {
      id
    }
  }
}`

const queryProjectFields = `
query($projectId: ID!) {
  node(id: $projectId) {
    ... on ProjectV2 {
      fields(first: 50) {
        nodes {
          ... on ProjectV2SingleSelectField {
            id
            name
            options {
              id
              name
            }
          }
        }
      }
    }
  }
}`

const queryIssueProjectItems = `
query($issueId: ID!) {
  node(id: $issueId) {
    ... on Issue {
      projectItems(first: 10) {
        nodes {
          id
          project {
            id
            title
          }
        }
      }
    }
  }
}`

const queryLinkedIssues = `
query($number: Int!, $owner: String!, $repo: String!) {
  repository(owner: $owner, name: $repo) {
    pullRequest(number: $number) {
      id
      closingIssuesReferences(first: 50) {
        edges {
          node {
            id
            body
            number
            title
          }
        }
      }
    }
  }
}`

const mutationSetFieldValue = `
mutation($projectId: ID!, $itemId: ID!, $fieldId: ID!, $optionId: String!) {
  updateProjectV2ItemFieldValue(
    input: {
      projectId: $projectId
      itemId: $itemId
      fieldId: $fieldId
      value: { singleSelectOptionId: $optionId }
    }
  ) {
    projectV2Item {
      id
    }
  }
}`

// ProjectID resolves the project node id for the configured organization and
// project number. The result is cached.
func (c *Client) ProjectID(ctx context.Context) (string, error) {
	if c.projectID != "" {
		return c.projectID, nil
	}

	var resp struct {
		Organization struct {
			ProjectV2 *struct {
				ID string `json:"id"`
			} `json:"projectV2"`
		} `json:"organization"`
	}
	vars := map[string]any{"owner": c.owner, "number": c.projectNum}
	if err := c.do(ctx, queryProjectID, vars, &resp); err != nil {
		return "", err
	}
	if resp.Organization.ProjectV2 == nil {
		return "", fmt.Errorf("%w: %s project %d", domain.ErrProjectNotFound, c.owner, c.projectNum)
	}

	c.projectID = resp.Organization.ProjectV2.ID
	c.logger.Debug("resolved project id", zap.String("project_id", c.projectID))
	return c.projectID, nil
}

// Fields returns the project's single-select fields. Fetched at most once per
// process.
func (c *Client) Fields(ctx context.Context) ([]domain.ProjectField, error) {
	if c.fieldsLoaded {
		return c.fields, nil
	}

	projectID, err := c.ProjectID(ctx)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Node struct {
			Fields struct {
				Nodes []domain.ProjectField `json:"nodes"`
			} `json:"fields"`
		} `json:"node"`
	}
	if err := c.do(ctx, queryProjectFields, map[string]any{"projectId": projectID}, &resp); err != nil {
		return nil, err
	}

	// Non-single-select fields come back as empty objects; drop them.
	fields := make([]domain.ProjectField, 0, len(resp.Node.Fields.Nodes))
	for _, f := range resp.Node.Fields.Nodes {
		if f.ID != "" {
			fields = append(fields, f)
		}
	}

	c.fields = fields
	c.fieldsLoaded = true
	c.logger.Debug("fetched project fields", zap.Int("count", len(fields)))
	return fields, nil
}

// StatusOption resolves the "Status" field id and the option id for the given
// status. Misses surface misconfiguration (renamed field, missing option)
// immediately instead of silently no-opping.
func (c *Client) StatusOption(ctx context.Context, status domain.IssueStatus) (string, string, error) {
	fields, err := c.Fields(ctx)
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

// ItemID resolves the project item linking the issue to the configured
// project. Issues can sit on several boards, so the item is matched by
// project id rather than taking the first one returned.
func (c *Client) ItemID(ctx context.Context, issueNodeID string) (string, error) {
	projectID, err := c.ProjectID(ctx)
	if err != nil {
		return "", err
	}

	var resp struct {
		Node struct {
			ProjectItems struct {
				Nodes []struct {
					ID      string `json:"id"`
					Project struct {
						ID    string `json:"id"`
						Title string `json:"title"`
					} `json:"project"`
				} `json:"nodes"`
			} `json:"projectItems"`
		} `json:"node"`
	}
	if err := c.do(ctx, queryIssueProjectItems, map[string]any{"issueId": issueNodeID}, &resp); err != nil {
		return "", err
	}

	for _, item := range resp.Node.ProjectItems.Nodes {
		if item.Project.ID == projectID {
			return item.ID, nil
		}
	}
	return "", fmt.Errorf("%w: issue %s", domain.ErrItemNotFound, issueNodeID)
}

// SetItemStatus sets a single-select field value on a project item.
func (c *Client) SetItemStatus(ctx context.Context, itemID, fieldID, optionID string) error {
	projectID, err := c.ProjectID(ctx)
	if err != nil {
		return err
	}

	vars := map[string]any{
		"projectId": projectID,
		"itemId":    itemID,
		"fieldId":   fieldID,
		"optionId":  optionID,
	}
	var resp struct {
		UpdateProjectV2ItemFieldValue struct {
			ProjectV2Item struct {
				ID string `json:"id"`
			} `json:"projectV2Item"`
		} `json:"updateProjectV2ItemFieldValue"`
	}
	if err := c.do(ctx, mutationSetFieldValue, vars, &resp); err != nil {
		return err
	}
	c.logger.Debug("set field value",
		zap.String("item_id", itemID),
		zap.String("option_id", optionID))
	return nil
}

// LinkedIssues returns the issues the PR closes via closing references.
func (c *Client) LinkedIssues(ctx context.Context, prNumber int) ([]domain.IssueRef, error) {
	type issueNode struct {
		ID     string `json:"id"`
		Title  string `json:"title"`
		Body   string `json:"body"`
		Number int    `json:"number"`
	}
	var resp struct {
		Repository struct {
			PullRequest *struct {
				ClosingIssuesReferences struct {
					Edges []struct {
						Node *issueNode `json:"node"`
					} `json:"edges"`
				} `json:"closingIssuesReferences"`
			} `json:"pullRequest"`
		} `json:"repository"`
	}
	vars := map[string]any{"number": prNumber, "owner": c.owner, "repo": c.repo}
	if err := c.do(ctx, queryLinkedIssues, vars, &resp); err != nil {
		return nil, err
	}
	if resp.Repository.PullRequest == nil {
		return nil, fmt.Errorf("%w: #%d", domain.ErrPRNotFound, prNumber)
	}

	var refs []domain.IssueRef
	for _, edge := range resp.Repository.PullRequest.ClosingIssuesReferences.Edges {
		if edge.Node == nil {
			continue
		}
		refs = append(refs, domain.IssueRef{
			NodeID: edge.Node.ID,
			Title:  edge.Node.Title,
			Body:   edge.Node.Body,
			Number: edge.Node.Number,
		})
	}
	return refs, nil
}

// do executes one GraphQL request and decodes the data payload into out.
func (c *Client) do(ctx context.Context, query string, variables map[string]any, out any) error {
	body, err := json.Marshal(map[string]any{"query": query, "variables": variables})
	if err != nil {
		return fmt.Errorf("marshal graphql request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create graphql request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute graphql request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read graphql response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var envelope struct {
		Data   json.RawMessage `json:"data"`
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return fmt.Errorf("parse graphql response: %w", err)
	}
	if len(envelope.Errors) > 0 {
		msgs := make([]string, 0, len(envelope.Errors))
		for _, e := range envelope.Errors {
			msgs = append(msgs, e.Message)
		}
		return &APIError{StatusCode: resp.StatusCode, Body: strings.Join(msgs, "; ")}
	}

	if out != nil {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return fmt.Errorf("parse graphql data: %w", err)
		}
	}
	return nil
}
