package usecase

import (
	"context"
	"fmt"

	"github.com/croftworks/prsync/internal/domain"
)

// ListFieldsOutput contains the project's single-select fields.
type ListFieldsOutput struct {
	Fields []domain.ProjectField
}

// ListFields fetches the project's single-select fields and options.
// Useful for diagnosing status misconfiguration.
type ListFields struct {
	projects domain.ProjectService
}

// NewListFields creates a new ListFields use case.
func NewListFields(projects domain.ProjectService) *ListFields {
	return &ListFields{projects: projects}
}

// Execute fetches the field table.
func (uc *ListFields) Execute(ctx context.Context) (*ListFieldsOutput, error) {
	fields, err := uc.projects.Fields(ctx)
	if err != nil {
		return nil, fmt.Errorf("list project fields: %w", err)
	}
	return &ListFieldsOutput{Fields: fields}, nil
}
