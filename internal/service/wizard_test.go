package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Narven/wizards-api/internal/model"
	"github.com/Narven/wizards-api/internal/repository"
)

func TestWizardServiceListIsFixed(t *testing.T) {
	repo := repository.NewWizardRepository()
	repo.Put(model.Wizard{Name: "Saruman", Level: 90})
	svc := NewWizardService(repo, true)

	want := []model.Wizard{
		{Name: "Gandalf", Level: 100},
		{Name: "Merlin", Level: 10},
	}
	assert.Equal(t, want, svc.List(context.Background()))

	// Callers get a copy; the sample list can't be edited through it.
	list := svc.List(context.Background())
	list[0].Level = 1
	assert.Equal(t, want, svc.List(context.Background()))
}

func TestWizardServiceCreateWithoutPersistence(t *testing.T) {
	repo := repository.NewWizardRepository()
	svc := NewWizardService(repo, false)

	got := svc.Create(context.Background(), model.Wizard{Name: "Frodo", Level: 5})

	assert.Equal(t, model.Wizard{Name: "Frodo", Level: 5}, got)
	assert.Equal(t, 0, repo.Count())
}

func TestWizardServiceCreateWithPersistence(t *testing.T) {
	repo := repository.NewWizardRepository()
	svc := NewWizardService(repo, true)

	svc.Create(context.Background(), model.Wizard{Name: "Frodo", Level: 5})
	svc.Create(context.Background(), model.Wizard{Name: "Frodo", Level: 6})

	w, ok := repo.Get("Frodo")
	require.True(t, ok)
	assert.Equal(t, uint8(6), w.Level)
	assert.Equal(t, 1, svc.Stats()["stored_wizards"])
}
