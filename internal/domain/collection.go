package domain

// Collection holds the full set of accounts in creation order and
// enforces account-number uniqueness. The Record Store loads and saves
// it as one document; nothing else owns account state.
type Collection struct {
	accounts []*Account
}

func NewCollection(accounts ...*Account) *Collection {
	return &Collection{accounts: accounts}
}

func (c *Collection) Len() int {
	return len(c.accounts)
}

// Get returns the account with the given number or ErrAccountNotFound.
func (c *Collection) Get(accountNo string) (*Account, error) {
	for _, a := range c.accounts {
		if a.AccountNo == accountNo {
			return a, nil
		}
	}
	return nil, ErrAccountNotFound
}

func (c *Collection) Has(accountNo string) bool {
	_, err := c.Get(accountNo)
	return err == nil
}

// Add appends the account, rejecting duplicate account numbers.
func (c *Collection) Add(a *Account) error {
	if c.Has(a.AccountNo) {
		return ErrAccountExists
	}
	c.accounts = append(c.accounts, a)
	return nil
}

// Remove deletes the account and its history. Remaining accounts keep
// their creation order.
func (c *Collection) Remove(accountNo string) error {
	for i, a := range c.accounts {
		if a.AccountNo == accountNo {
			c.accounts = append(c.accounts[:i], c.accounts[i+1:]...)
			return nil
		}
	}
	return ErrAccountNotFound
}

// List returns the accounts in creation order. The slice is a copy; the
// elements are the live records.
func (c *Collection) List() []*Account {
	out := make([]*Account, len(c.accounts))
	copy(out, c.accounts)
	return out
}
