package repository

// Repositories is a container for all repository instances.
//
// It is built once at startup and the same pointers are handed to every
// service, so all requests share one store.
type Repositories struct {
	Wizards *WizardRepository
}

// NewRepositories constructs the repository container with empty stores.
func NewRepositories() *Repositories {
	return &Repositories{
		Wizards: NewWizardRepository(),
	}
}
