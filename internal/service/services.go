package service

import (
	"github.com/Narven/wizards-api/internal/repository"
	"github.com/Narven/wizards-api/internal/server"
)

type Services struct {
	Wizard *WizardService
}

func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Wizard: NewWizardService(repos.Wizards, s.Config.Store.PersistOnCreate),
	}, nil
}
