package transport

import (
	"mercado/internal/domain"
	"mercado/internal/listing"
)

// Per-entity listing configuration: which fields each screen searches, sorts
// and filters on. Screens that never sort or never filter simply get the
// superset; unused capabilities cost nothing.

func RoleFields() listing.Fields[domain.Role] {
	return listing.Fields[domain.Role]{
		Search: []func(domain.Role) string{
			func(r domain.Role) string { return r.Name },
			func(r domain.Role) string { return r.Description },
		},
		Name: func(r domain.Role) string { return r.Name },
	}
}

func CategoryFields() listing.Fields[domain.Category] {
	return listing.Fields[domain.Category]{
		Search: []func(domain.Category) string{
			func(c domain.Category) string { return c.Name },
			func(c domain.Category) string { return c.Description },
		},
		Name: func(c domain.Category) string { return c.Name },
	}
}

func ProductFields() listing.Fields[domain.Product] {
	return listing.Fields[domain.Product]{
		Search: []func(domain.Product) string{
			func(p domain.Product) string { return p.Name },
			func(p domain.Product) string { return p.Description },
		},
		Name:     func(p domain.Product) string { return p.Name },
		Price:    func(p domain.Product) float64 { return p.Price },
		Category: func(p domain.Product) domain.ID { return p.CategoryID },
	}
}

func ServiceFields() listing.Fields[domain.Service] {
	return listing.Fields[domain.Service]{
		Search: []func(domain.Service) string{
			func(s domain.Service) string { return s.Name },
			func(s domain.Service) string { return s.Description },
		},
		Name:  func(s domain.Service) string { return s.Name },
		Price: func(s domain.Service) float64 { return s.Price },
	}
}

func UserFields() listing.Fields[domain.User] {
	return listing.Fields[domain.User]{
		Search: []func(domain.User) string{
			func(u domain.User) string { return u.Name },
			func(u domain.User) string { return u.Email },
		},
		Name:     func(u domain.User) string { return u.Name },
		Category: func(u domain.User) domain.ID { return u.RoleID },
	}
}

func ClientFields() listing.Fields[domain.Client] {
	return listing.Fields[domain.Client]{
		Search: []func(domain.Client) string{
			func(c domain.Client) string { return c.Name },
			func(c domain.Client) string { return c.Email },
		},
		Name: func(c domain.Client) string { return c.Name },
	}
}

func ProviderFields() listing.Fields[domain.Provider] {
	return listing.Fields[domain.Provider]{
		Search: []func(domain.Provider) string{
			func(p domain.Provider) string { return p.Company },
			func(p domain.Provider) string { return p.ContactName },
			func(p domain.Provider) string { return p.Email },
		},
		Name: func(p domain.Provider) string { return p.Company },
	}
}
