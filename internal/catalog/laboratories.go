package catalog

import (
	"context"
	"fmt"
	"strings"
)

// CreateLaboratory registers a laboratory. Admin-only at the API boundary.
func (s *Service) CreateLaboratory(ctx context.Context, name string) (Laboratory, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Laboratory{}, fmt.Errorf("%w: laboratory name is required", ErrInvalidInput)
	}
	return s.store.CreateLaboratory(ctx, name)
}

func (s *Service) ListLaboratories(ctx context.Context) ([]Laboratory, error) {
	return s.store.ListLaboratories(ctx)
}

func (s *Service) GetLaboratory(ctx context.Context, id string) (Laboratory, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Laboratory{}, fmt.Errorf("%w: laboratory_id is required", ErrInvalidInput)
	}
	return s.store.GetLaboratory(ctx, id)
}

func (s *Service) UpdateLaboratory(ctx context.Context, id, name string) (Laboratory, error) {
	id = strings.TrimSpace(id)
	name = strings.TrimSpace(name)
	if id == "" {
		return Laboratory{}, fmt.Errorf("%w: laboratory_id is required", ErrInvalidInput)
	}
	if name == "" {
		return Laboratory{}, fmt.Errorf("%w: laboratory name is required", ErrInvalidInput)
	}
	return s.store.UpdateLaboratory(ctx, id, name)
}

// DeleteLaboratory removes a laboratory. A laboratory still referenced by
// vessels or profiles is not deleted; the store surfaces the referential
// violation as ErrConflict.
func (s *Service) DeleteLaboratory(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("%w: laboratory_id is required", ErrInvalidInput)
	}
	return s.store.DeleteLaboratory(ctx, id)
}
