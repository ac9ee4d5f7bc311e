// Package chart builds and indexes the chart of accounts the simulation
// runs over.
package chart

import (
	"fmt"
	"os"

	"github.com/flowcast-dev/flowcast/internal/account"
	"github.com/flowcast-dev/flowcast/internal/model"
)

// Account type names recognized in accounts.csv.
const (
	TypeCash    = "CASH"
	TypeSavings = "SAVINGS"
	TypeAsset   = "ASSET"
	TypeExpense = "EXPENSE"
	TypeRevenue = "REVENUE"
	TypeLoan    = "SIMPLE LOAN"
)

// Registry is an order-preserving name -> account chart.
type Registry struct {
	names  []string
	byName map[string]account.Account
	loans  []*account.Loan
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]account.Account)}
}

// Register adds an account, keeping first-registration order. Re-registering
// a name replaces the account in place.
func (r *Registry) Register(a account.Account) {
	if _, ok := r.byName[a.Name()]; !ok {
		r.names = append(r.names, a.Name())
	}
	r.byName[a.Name()] = a
	if l, ok := a.(*account.Loan); ok {
		r.loans = append(r.loans, l)
	}
}

// Unregister removes an account by name.
func (r *Registry) Unregister(name string) {
	a, ok := r.byName[name]
	if !ok {
		return
	}
	delete(r.byName, name)
	for i, n := range r.names {
		if n == name {
			r.names = append(r.names[:i], r.names[i+1:]...)
			break
		}
	}
	if l, ok := a.(*account.Loan); ok {
		for i, existing := range r.loans {
			if existing == l {
				r.loans = append(r.loans[:i], r.loans[i+1:]...)
				break
			}
		}
	}
}

// Get returns an account by name.
func (r *Registry) Get(name string) (account.Account, bool) {
	a, ok := r.byName[name]
	return a, ok
}

// Names returns account names in chart order.
func (r *Registry) Names() []string {
	return r.names
}

// Accounts returns all accounts in chart order.
func (r *Registry) Accounts() []account.Account {
	result := make([]account.Account, 0, len(r.names))
	for _, n := range r.names {
		result = append(result, r.byName[n])
	}
	return result
}

// ByKind returns accounts of the given kind in chart order.
func (r *Registry) ByKind(kind account.Kind) []account.Account {
	var result []account.Account
	for _, n := range r.names {
		if a := r.byName[n]; a.Kind() == kind {
			result = append(result, a)
		}
	}
	return result
}

// Loans returns the loan accounts in registration order.
func (r *Registry) Loans() []*account.Loan {
	return r.loans
}

// NumLoans returns the number of loan accounts.
func (r *Registry) NumLoans() int {
	return len(r.loans)
}

// Build constructs accounts from specs and registers them in order.
func Build(specs []model.AccountSpec) (*Registry, error) {
	r := NewRegistry()
	for _, spec := range specs {
		a, err := buildAccount(spec)
		if err != nil {
			return nil, fmt.Errorf("account %q: %w", spec.Name, err)
		}
		r.Register(a)
	}
	return r, nil
}

// Load reads accounts.csv from disk and builds the registry.
func Load(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening chart of accounts: %w", err)
	}
	defer f.Close()

	specs, err := ReadAccounts(f)
	if err != nil {
		return nil, fmt.Errorf("reading chart of accounts: %w", err)
	}
	return Build(specs)
}

func buildAccount(spec model.AccountSpec) (account.Account, error) {
	switch spec.Type {
	case TypeCash:
		return account.NewChecking(spec.Name, spec.Balance), nil

	case TypeSavings:
		return account.NewSavings(spec.Name, spec.Rate), nil

	case TypeAsset:
		if spec.TermYears.IsZero() {
			return nil, fmt.Errorf("asset needs a nonzero term_years")
		}
		return account.NewDepreciatingAsset(spec.Name, spec.Balance, spec.SellPrice, spec.TermYears), nil

	case TypeExpense, TypeRevenue:
		kind := account.KindExpense
		if spec.Type == TypeRevenue {
			kind = account.KindRevenue
		}
		step, err := account.NewStep(spec.Timebase, spec.Frequency)
		if err != nil {
			return nil, err
		}
		if spec.NextDate.IsZero() || spec.EndDate.IsZero() {
			return nil, fmt.Errorf("recurring account needs next_date and end_date")
		}
		return account.NewRecurring(spec.Name, spec.AmountDue, kind, spec.NextDate, step, spec.EndDate), nil

	case TypeLoan:
		if spec.NextDate.IsZero() {
			return nil, fmt.Errorf("loan needs a next_date")
		}
		return account.NewLoan(spec.Name, spec.AmountDue, spec.Rate, spec.Balance, spec.NextDate, spec.Frequency, spec.Timebase), nil

	default:
		return nil, fmt.Errorf("unknown account type %q", spec.Type)
	}
}
