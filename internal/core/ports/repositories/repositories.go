package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	SessionRepo SessionRepositoryFacade

	// SessionPurger is nil for stores that expire sessions on their own.
	SessionPurger SessionPurger
}
