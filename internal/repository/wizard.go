package repository

import (
	"sort"
	"sync"

	"github.com/Narven/wizards-api/internal/model"
)

// WizardRepository stores wizards keyed by name.
//
// Any number of readers may hold the lock at once; Put takes it exclusively.
// A name maps to at most one wizard and the last Put wins.
type WizardRepository struct {
	mu      sync.RWMutex
	wizards map[string]model.Wizard
}

// NewWizardRepository returns an empty repository.
func NewWizardRepository() *WizardRepository {
	return &WizardRepository{
		wizards: make(map[string]model.Wizard),
	}
}

// Put inserts or replaces the wizard stored under w.Name.
func (r *WizardRepository) Put(w model.Wizard) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.wizards[w.Name] = w
}

// Get returns the wizard stored under name and whether it exists.
func (r *WizardRepository) Get(name string) (model.Wizard, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	w, ok := r.wizards[name]
	return w, ok
}

// List returns a snapshot of all wizards ordered by name.
func (r *WizardRepository) List() []model.Wizard {
	r.mu.RLock()
	out := make([]model.Wizard, 0, len(r.wizards))
	for _, w := range r.wizards {
		out = append(out, w)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Count returns the number of stored wizards.
func (r *WizardRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.wizards)
}
