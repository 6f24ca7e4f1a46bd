package store

import (
	"sync"

	"staradmin/internal/domain/entity"
)

// State is the gateway's owned working set. Every collection mirrors
// one upstream resource and is refreshed wholesale by the poller.
type State struct {
	Products   *Collection[entity.Product]
	Orders     *Collection[entity.Order]
	Customers  *Collection[entity.Customer]
	Categories *Collection[entity.Category]
	Coupons    *Collection[entity.Coupon]
	Defectives *Collection[entity.DefectiveItem]
	Sections   *Collection[entity.SiteSection]

	session sessionState
}

type sessionState struct {
	mu   sync.RWMutex
	user *entity.AdminUser
}

// NewState builds the empty working set.
func NewState() *State {
	return &State{
		Products:   NewCollection(func(p entity.Product) string { return p.ID }),
		Orders:     NewCollection(func(o entity.Order) string { return o.ID }),
		Customers:  NewCollection(func(c entity.Customer) string { return c.ID }),
		Categories: NewCollection(func(c entity.Category) string { return c.ID }),
		Coupons:    NewCollection(func(c entity.Coupon) string { return c.ID }),
		Defectives: NewCollection(func(d entity.DefectiveItem) string { return d.ID }),
		Sections:   NewCollection(func(s entity.SiteSection) string { return s.ID }),
	}
}

// SetUser stores the authenticated session user.
func (s *State) SetUser(user entity.AdminUser) {
	s.session.mu.Lock()
	defer s.session.mu.Unlock()

	s.session.user = &user
}

// User returns the session user, if authenticated.
func (s *State) User() (entity.AdminUser, bool) {
	s.session.mu.RLock()
	defer s.session.mu.RUnlock()

	if s.session.user == nil {
		return entity.AdminUser{}, false
	}

	return *s.session.user, true
}

// ClearUser drops the session user on logout or token expiry.
func (s *State) ClearUser() {
	s.session.mu.Lock()
	defer s.session.mu.Unlock()

	s.session.user = nil
}

// ClearAll empties every collection, used on logout.
func (s *State) ClearAll() {
	s.Products.ReplaceAll(nil)
	s.Orders.ReplaceAll(nil)
	s.Customers.ReplaceAll(nil)
	s.Categories.ReplaceAll(nil)
	s.Coupons.ReplaceAll(nil)
	s.Defectives.ReplaceAll(nil)
	s.Sections.ReplaceAll(nil)
}
