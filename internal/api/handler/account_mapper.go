package handler

import (
	"github.com/hlaeja-ltd/account-registry/internal/core/domain"
	"github.com/hlaeja-ltd/account-registry/internal/core/ports"
)

func toAccountInput(req accountRequest) ports.AccountInput {
	return ports.AccountInput{
		Username: req.Username,
		Password: req.Password,
		Enabled:  req.Enabled,
		Roles:    req.Roles,
	}
}

// toAccountResponse maps a persisted account to its external view. An account
// without an id at this stage is a broken internal invariant, not a user
// input error.
func toAccountResponse(a *domain.Account) (accountResponse, error) {
	if !a.Persisted() {
		return accountResponse{}, domain.ErrMissingAccountID
	}
	return accountResponse{
		ID:        a.ID,
		Timestamp: a.UpdatedAt,
		Enabled:   a.Enabled,
		Username:  a.Username,
		Roles:     domain.SplitRoles(a.Roles),
	}, nil
}

func toAccountResponses(accounts []*domain.Account) ([]accountResponse, error) {
	out := make([]accountResponse, len(accounts))
	for i, a := range accounts {
		resp, err := toAccountResponse(a)
		if err != nil {
			return nil, err
		}
		out[i] = resp
	}
	return out, nil
}
