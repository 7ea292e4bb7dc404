package service

import (
	"mercado/internal/domain"
	"mercado/internal/metrics"
	"mercado/internal/resource"
	"mercado/internal/store"

	"go.uber.org/zap"
)

// Catalog groups the CRUD services for every entity kind, the way the view
// layer consumes them.
type Catalog struct {
	Roles      *Resource[domain.Role, *domain.Role]
	Categories *Resource[domain.Category, *domain.Category]
	Products   *Resource[domain.Product, *domain.Product]
	Services   *Resource[domain.Service, *domain.Service]
	Users      *Resource[domain.User, *domain.User]
	Clients    *Resource[domain.Client, *domain.Client]
	Providers  *Resource[domain.Provider, *domain.Provider]
}

// NewCatalog builds the seven per-kind services against one resource client,
// each seeded with its own fallback store instance.
func NewCatalog(client *resource.Client, offline bool, logger *zap.Logger, collector *metrics.Collector) *Catalog {
	return &Catalog{
		Roles: NewResource[domain.Role, *domain.Role](
			domain.KindRoles,
			resource.NewRemote[domain.Role, *domain.Role](client, domain.KindRoles),
			store.NewMemory[domain.Role, *domain.Role](store.SeedRoles()),
			offline, logger, collector,
		),
		Categories: NewResource[domain.Category, *domain.Category](
			domain.KindCategories,
			resource.NewRemote[domain.Category, *domain.Category](client, domain.KindCategories),
			store.NewMemory[domain.Category, *domain.Category](store.SeedCategories()),
			offline, logger, collector,
		),
		Products: NewResource[domain.Product, *domain.Product](
			domain.KindProducts,
			resource.NewRemote[domain.Product, *domain.Product](client, domain.KindProducts),
			store.NewMemory[domain.Product, *domain.Product](store.SeedProducts()),
			offline, logger, collector,
		),
		Services: NewResource[domain.Service, *domain.Service](
			domain.KindServices,
			resource.NewRemote[domain.Service, *domain.Service](client, domain.KindServices),
			store.NewMemory[domain.Service, *domain.Service](store.SeedServices()),
			offline, logger, collector,
		),
		Users: NewResource[domain.User, *domain.User](
			domain.KindUsers,
			resource.NewRemote[domain.User, *domain.User](client, domain.KindUsers),
			store.NewMemory[domain.User, *domain.User](store.SeedUsers()),
			offline, logger, collector,
		),
		Clients: NewResource[domain.Client, *domain.Client](
			domain.KindClients,
			resource.NewRemote[domain.Client, *domain.Client](client, domain.KindClients),
			store.NewMemory[domain.Client, *domain.Client](store.SeedClients()),
			offline, logger, collector,
		),
		Providers: NewResource[domain.Provider, *domain.Provider](
			domain.KindProviders,
			resource.NewRemote[domain.Provider, *domain.Provider](client, domain.KindProviders),
			store.NewMemory[domain.Provider, *domain.Provider](store.SeedProviders()),
			offline, logger, collector,
		),
	}
}
