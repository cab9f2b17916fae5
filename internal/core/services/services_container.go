package services

import (
	portsrepo "github.com/SscSPs/aba_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/aba_ledger/internal/core/ports/services"
)

// NewServiceContainer creates a new service container over store. The
// ledger service is returned as well so callers can replay the journal.
func NewServiceContainer(store portsrepo.EventStore) (*portssvc.ServiceContainer, *LedgerService) {
	ledgerSvc := NewLedgerService(store)
	return &portssvc.ServiceContainer{Ledger: ledgerSvc}, ledgerSvc
}
