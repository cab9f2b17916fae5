package ledger

import (
	"github.com/SscSPs/aba_ledger/internal/apperrors"
	"github.com/SscSPs/aba_ledger/internal/core/domain"
)

// Parent returns the parent of account, or nil for a root account.
func (l *Ledger) Parent(account domain.Account) (*domain.Account, error) {
	if account.ParentID == nil {
		return nil, nil
	}
	parent, ok := l.accounts[*account.ParentID]
	if !ok {
		return nil, apperrors.NewLedgerError(apperrors.MissingAccount, *account.ParentID)
	}
	return &parent, nil
}

// ChildIDs returns the ids of the direct children of an account, ordered by id.
func (l *Ledger) ChildIDs(id domain.AccountID) []domain.AccountID {
	return append([]domain.AccountID(nil), l.children[id]...)
}

// Children returns the direct children of an account, ordered by id. Children
// registered before their parent are included once the parent exists.
func (l *Ledger) Children(id domain.AccountID) []domain.Account {
	ids := l.children[id]
	children := make([]domain.Account, 0, len(ids))
	for _, childID := range ids {
		children = append(children, l.accounts[childID])
	}
	return children
}

// FullNumber returns the account numbers from the root down to account.
func (l *Ledger) FullNumber(account domain.Account) ([]domain.AccountNumber, error) {
	numbers := []domain.AccountNumber{account.Number}
	current := account
	for depth := 0; current.ParentID != nil; depth++ {
		if depth > len(l.accounts) {
			return nil, apperrors.NewLedgerError(apperrors.InvalidAccount, account.ID).
				WithDetail("account hierarchy contains a loop")
		}
		parent, err := l.Parent(current)
		if err != nil {
			return nil, err
		}
		numbers = append(numbers, parent.Number)
		current = *parent
	}

	for i, j := 0, len(numbers)-1; i < j; i, j = i+1, j-1 {
		numbers[i], numbers[j] = numbers[j], numbers[i]
	}
	return numbers, nil
}

// GetRootAccount returns the parentless account of the given category. When
// several exist the one with the lowest id wins.
func (l *Ledger) GetRootAccount(category domain.AccountCategory) (domain.Account, bool) {
	for _, account := range l.RootAccounts() {
		if account.AccountCategory == category {
			return account, true
		}
	}
	return domain.Account{}, false
}

// RootAccounts returns every parentless account ordered by id.
func (l *Ledger) RootAccounts() []domain.Account {
	var roots []domain.Account
	for _, account := range l.Accounts() {
		if account.IsRoot() {
			roots = append(roots, account)
		}
	}
	return roots
}
