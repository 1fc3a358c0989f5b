package domain

import "errors"

// Domain errors.
var (
	ErrInvalidStatus        = errors.New("invalid status")
	ErrProjectNotFound      = errors.New("project not found")
	ErrStatusFieldNotFound  = errors.New("status field not found in project")
	ErrStatusOptionNotFound = errors.New("status option not found in project")
	ErrItemNotFound         = errors.New("issue is not an item of the project")
	ErrPRNotFound           = errors.New("pull request not found")
	ErrIssueIdentifier      = errors.New("exactly one of issue number or issue node id must be provided")
	ErrMissingConfig        = errors.New("missing required configuration")
)
