package domain

// Principal is the authentication context of a request. The customer
// identity and the admin flag are independent: a browser can hold both at
// once, and each logout clears only its own part.
type Principal struct {
	UserID   int64  `json:"user_id,omitempty"`
	UserName string `json:"user_name,omitempty"`
	Admin    bool   `json:"admin,omitempty"`
}

func (p Principal) IsAnonymous() bool {
	return p.UserID == 0 && !p.Admin
}

func (p Principal) IsCustomer() bool {
	return p.UserID != 0
}

func (p Principal) IsAdmin() bool {
	return p.Admin
}

// ClearCustomer drops the customer identity, keeping the admin flag.
func (p *Principal) ClearCustomer() {
	p.UserID = 0
	p.UserName = ""
}

// ClearAdmin drops the admin flag, keeping the customer identity.
func (p *Principal) ClearAdmin() {
	p.Admin = false
}

// Session is the per-browser state persisted in the session store.
// Flash holds a one-shot message consumed on the next page render.
type Session struct {
	Principal Principal `json:"principal"`
	Flash     string    `json:"flash,omitempty"`
}
