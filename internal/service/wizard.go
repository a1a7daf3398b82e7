package service

import (
	"context"

	"github.com/Narven/wizards-api/internal/middleware"
	"github.com/Narven/wizards-api/internal/model"
	"github.com/Narven/wizards-api/internal/repository"
)

// sampleWizards is what the list route always answers with. It is a fixed
// literal and deliberately not read from the store.
var sampleWizards = []model.Wizard{
	{Name: "Gandalf", Level: 100},
	{Name: "Merlin", Level: 10},
}

// WizardService implements the wizard routes.
type WizardService struct {
	repo            *repository.WizardRepository
	persistOnCreate bool
}

// NewWizardService wires the service to the shared store. With
// persistOnCreate false, Create never writes to repo.
func NewWizardService(repo *repository.WizardRepository, persistOnCreate bool) *WizardService {
	return &WizardService{
		repo:            repo,
		persistOnCreate: persistOnCreate,
	}
}

// List returns a copy of the sample wizards, in their fixed order.
func (s *WizardService) List(ctx context.Context) []model.Wizard {
	out := make([]model.Wizard, len(sampleWizards))
	copy(out, sampleWizards)
	return out
}

// Create accepts a parsed wizard. It logs the current store state and, only
// when persistence is switched on, inserts the wizard (last write wins).
func (s *WizardService) Create(ctx context.Context, w model.Wizard) model.Wizard {
	logger := middleware.LoggerFromContext(ctx)

	if s.persistOnCreate {
		s.repo.Put(w)
	}

	logger.Info().
		Str("wizard", w.Name).
		Bool("persisted", s.persistOnCreate).
		Int("stored_wizards", s.repo.Count()).
		Msg("wizard created")

	return w
}

// Stats reports the store size for the health route.
func (s *WizardService) Stats() map[string]interface{} {
	return map[string]interface{}{
		"stored_wizards":    s.repo.Count(),
		"persist_on_create": s.persistOnCreate,
	}
}
