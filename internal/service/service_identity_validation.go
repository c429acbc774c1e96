package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-persona-keeper/internal/validators"
	"github.com/MKhiriev/go-persona-keeper/models"
)

type IdentityValidationService struct {
	inner     IdentityService
	validator validators.Validator
}

func NewIdentityValidationService() IdentityServiceWrapper {
	return &IdentityValidationService{
		validator: validators.NewIdentityValidator(),
	}
}

func (v *IdentityValidationService) Create(ctx context.Context, identity models.Identity) (models.Identity, error) {
	if err := v.validator.Validate(ctx, normalizeIdentity(identity)); err != nil {
		return models.Identity{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.Create(ctx, identity)
}

func (v *IdentityValidationService) Update(ctx context.Context, identity models.Identity) (models.Identity, error) {
	normalized := normalizeIdentity(identity)
	if err := v.validator.Validate(ctx, normalized, validators.FieldID); err != nil {
		return models.Identity{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if err := v.validator.Validate(ctx, normalized); err != nil {
		return models.Identity{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.Update(ctx, identity)
}

func (v *IdentityValidationService) Get(ctx context.Context, id string) (models.Identity, error) {
	if err := v.validator.Validate(ctx, models.Identity{ID: id}, validators.FieldID); err != nil {
		return models.Identity{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.Get(ctx, id)
}

func (v *IdentityValidationService) List(ctx context.Context) ([]models.Identity, error) {
	return v.inner.List(ctx)
}

func (v *IdentityValidationService) Delete(ctx context.Context, id string) error {
	if err := v.validator.Validate(ctx, models.Identity{ID: id}, validators.FieldID); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.Delete(ctx, id)
}

func (v *IdentityValidationService) Wrap(inner IdentityService) IdentityService {
	v.inner = inner
	return v
}
