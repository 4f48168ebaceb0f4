package catalog

import (
	"context"
	"fmt"
	"strings"
)

// CreateVessel registers a vessel with an optional laboratory association.
func (s *Service) CreateVessel(ctx context.Context, vesselType string, laboratoryID *string) (Vessel, error) {
	vesselType = strings.TrimSpace(vesselType)
	if vesselType == "" {
		return Vessel{}, fmt.Errorf("%w: vessel type is required", ErrInvalidInput)
	}
	if laboratoryID != nil {
		id := strings.TrimSpace(*laboratoryID)
		if id == "" {
			laboratoryID = nil
		} else {
			laboratoryID = &id
		}
	}
	return s.store.CreateVessel(ctx, vesselType, laboratoryID)
}

// ListVessels returns all vessels with the laboratory name joined in.
func (s *Service) ListVessels(ctx context.Context) ([]VesselView, error) {
	return s.store.ListVessels(ctx)
}

func (s *Service) GetVessel(ctx context.Context, id string) (Vessel, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Vessel{}, fmt.Errorf("%w: vessel_id is required", ErrInvalidInput)
	}
	return s.store.GetVessel(ctx, id)
}

func (s *Service) UpdateVessel(ctx context.Context, id string, patch VesselPatch) (Vessel, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Vessel{}, fmt.Errorf("%w: vessel_id is required", ErrInvalidInput)
	}
	if patch.Type != nil {
		t := strings.TrimSpace(*patch.Type)
		if t == "" {
			return Vessel{}, fmt.Errorf("%w: vessel type is required", ErrInvalidInput)
		}
		patch.Type = &t
	}
	return s.store.UpdateVessel(ctx, id, patch)
}

// DeleteVessel removes a vessel. Vessels still referenced by collections
// surface ErrConflict from the store.
func (s *Service) DeleteVessel(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("%w: vessel_id is required", ErrInvalidInput)
	}
	return s.store.DeleteVessel(ctx, id)
}
