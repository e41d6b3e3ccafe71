package services

import (
	"github.com/SscSPs/personal_ledger_app/internal/core/ports/events"
	portsrepo "github.com/SscSPs/personal_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/personal_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/personal_ledger_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// publisher may be nil, in which case entry events are dropped.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, publisher events.EntryEventPublisher) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The user directory comes first; entries resolve their owners through it.
	container.User = NewUserService(repos.UserRepo)

	options := []LedgerEntryServiceOption{WithTransactionManager(repos.TxManager)}
	if publisher != nil {
		options = append(options, WithEntryEventPublisher(publisher))
	}
	container.LedgerEntry = NewLedgerEntryService(repos.EntryRepo, container.User, options...)

	container.TokenService = NewTokenService(cfg)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.UserSvcFacade        = (*userService)(nil)
	_ portssvc.LedgerEntrySvcFacade = (*ledgerEntryService)(nil)
	_ portssvc.TokenSvc             = (*tokenService)(nil)
)
