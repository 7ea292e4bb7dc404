package store

import "mercado/internal/domain"

// Seed datasets back the fallback stores. They are representative demo data,
// not fixtures a deployment should rely on; the live resource server is the
// source of record whenever it answers.

func SeedRoles() []domain.Role {
	return []domain.Role{
		{ID: 1, Name: "Administrator", Description: "Full access to every back-office screen"},
		{ID: 2, Name: "Manager", Description: "Operations management and reporting"},
		{ID: 3, Name: "Salesperson", Description: "Sales and client management"},
	}
}

func SeedCategories() []domain.Category {
	return []domain.Category{
		{ID: 1, Name: "Electronics", Description: "Electronic devices and technology"},
		{ID: 2, Name: "Clothing", Description: "Garments and accessories"},
		{ID: 3, Name: "Home", Description: "Household goods and decoration"},
		{ID: 4, Name: "Sports", Description: "Sporting gear and equipment"},
	}
}

func SeedProducts() []domain.Product {
	return []domain.Product{
		{ID: 1, Name: "Samsung Galaxy Phone", Description: "Latest generation smartphone", Price: 699.99, Stock: 25, CategoryID: 1},
		{ID: 2, Name: "Dell Inspiron Laptop", Description: "Laptop for work and entertainment", Price: 899.99, Stock: 12, CategoryID: 1},
		{ID: 3, Name: "Nike T-Shirt", Description: "Cotton athletic t-shirt", Price: 29.99, Stock: 50, CategoryID: 2},
	}
}

func SeedServices() []domain.Service {
	return []domain.Service{
		{ID: 1, Name: "Tech Consulting", Description: "Technology advisory sessions", Price: 150.00, Duration: 60},
		{ID: 2, Name: "Web Development", Description: "Custom website development", Price: 2500.00, Duration: 480},
		{ID: 3, Name: "Graphic Design", Description: "Logo and branding design work", Price: 200.00, Duration: 120},
	}
}

func SeedUsers() []domain.User {
	return []domain.User{
		{ID: 1, Name: "System Admin", Email: "admin@admin.com", Password: "admin123", RoleID: 1, Active: true},
		{ID: 2, Name: "John Perez", Email: "john@example.com", Password: "john123", RoleID: 2, Active: true},
		{ID: 3, Name: "Maria Garcia", Email: "maria@example.com", Password: "maria123", RoleID: 3, Active: true},
	}
}

func SeedClients() []domain.Client {
	return []domain.Client{
		{ID: 1, Name: "Carlos Rodriguez", Email: "carlos@client.com", Phone: "+1 234 567 8901", Address: "123 Main Street"},
		{ID: 2, Name: "Ana Martinez", Email: "ana@client.com", Phone: "+1 234 567 8902", Address: "456 Central Avenue"},
		{ID: 3, Name: "Luis Gonzalez", Email: "luis@client.com", Phone: "+1 234 567 8903", Address: "789 Market Square"},
	}
}

func SeedProviders() []domain.Provider {
	return []domain.Provider{
		{ID: 1, Company: "TechCorp Solutions", ContactName: "Roberto Silva", Email: "contact@techcorp.com", Phone: "+1 555 123 4567", Address: "100 Industrial Park"},
		{ID: 2, Company: "Global Distribution", ContactName: "Laura Fernandez", Email: "sales@globaldist.com", Phone: "+1 555 765 4321", Address: "200 Commerce Center"},
		{ID: 3, Company: "Integral Services", ContactName: "Miguel Torres", Email: "info@integralsvc.com", Phone: "+1 555 987 6543", Address: "300 Business Plaza"},
	}
}
