package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-persona-keeper/internal/logger"
	"github.com/MKhiriev/go-persona-keeper/internal/store"
	"github.com/MKhiriev/go-persona-keeper/models"
)

type identityService struct {
	repo   store.IdentityRepository
	logger *logger.Logger
}

// NewIdentityService returns an IdentityService over repo. Input is trimmed
// but not validated; wrap it with NewIdentityValidationService.
func NewIdentityService(repo store.IdentityRepository, logger *logger.Logger) IdentityService {
	return &identityService{repo: repo, logger: logger}
}

func (s *identityService) Create(ctx context.Context, identity models.Identity) (models.Identity, error) {
	identity = normalizeIdentity(identity)
	identity.ID = ""

	saved, err := s.repo.Save(ctx, identity)
	if err != nil {
		s.logger.Err(err).Str("func", "identityService.Create").Msg("error creating identity")
		return models.Identity{}, fmt.Errorf("create identity: %w", err)
	}
	s.logger.Info().Str("id", saved.ID).Msg("identity created")

	return saved, nil
}

func (s *identityService) Update(ctx context.Context, identity models.Identity) (models.Identity, error) {
	identity = normalizeIdentity(identity)

	existing, err := s.repo.Get(ctx, identity.ID)
	if err != nil {
		return models.Identity{}, fmt.Errorf("update identity: %w", err)
	}
	identity.CreatedAt = existing.CreatedAt

	saved, err := s.repo.Save(ctx, identity)
	if err != nil {
		s.logger.Err(err).Str("func", "identityService.Update").Msg("error updating identity")
		return models.Identity{}, fmt.Errorf("update identity: %w", err)
	}
	s.logger.Info().Str("id", saved.ID).Msg("identity updated")

	return saved, nil
}

func (s *identityService) Get(ctx context.Context, id string) (models.Identity, error) {
	return s.repo.Get(ctx, strings.TrimSpace(id))
}

func (s *identityService) List(ctx context.Context) ([]models.Identity, error) {
	return s.repo.List(ctx)
}

func (s *identityService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, strings.TrimSpace(id)); err != nil {
		return fmt.Errorf("delete identity: %w", err)
	}
	s.logger.Info().Str("id", id).Msg("identity deleted")
	return nil
}

func normalizeIdentity(i models.Identity) models.Identity {
	for _, f := range []*string{
		&i.ID, &i.FirstName, &i.LastName, &i.Street, &i.City, &i.Region,
		&i.PostalCode, &i.Country, &i.Phone, &i.DateOfBirth, &i.Email,
	} {
		*f = strings.TrimSpace(*f)
	}
	return i
}
