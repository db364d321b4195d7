// Package managers bundles the infrastructure services the handlers depend
// on: token signing, the in-memory stores and outbound mail.
package managers

import (
	log "github.com/sirupsen/logrus"

	"cardlet-server/internal/stores"
)

// StoreMgr defines the interface for access to the in-memory stores.
// Handlers receive it instead of reaching for package-level state.
type StoreMgr interface {
	Users() *stores.UserStore
	Cards() *stores.CardStore
	Templates() *stores.TemplateStore
	Analytics() *stores.AnalyticsStore
}

// StoreManager owns the in-memory collections of the application. Everything
// it holds is volatile and lost on restart.
type StoreManager struct {
	users     *stores.UserStore
	cards     *stores.CardStore
	templates *stores.TemplateStore
	analytics *stores.AnalyticsStore
}

func (sm *StoreManager) Users() *stores.UserStore { return sm.users }
func (sm *StoreManager) Cards() *stores.CardStore { return sm.cards }
func (sm *StoreManager) Templates() *stores.TemplateStore { return sm.templates }
func (sm *StoreManager) Analytics() *stores.AnalyticsStore { return sm.analytics }

// NewStoreManager creates and initializes the stores, seeding the card
// templates.
func NewStoreManager() StoreMgr {
	log.Info("Initializing store manager")
	templates := stores.NewTemplateStore()
	return &StoreManager{
		users:     stores.NewUserStore(),
		cards:     stores.NewCardStore(templates),
		templates: templates,
		analytics: stores.NewAnalyticsStore(),
	}
}
