package validate

import (
	"strings"

	"mercado/internal/domain"
)

// Each entity validator takes the record, the existing collection for
// uniqueness checks, and the id of the record being edited (zero on create).

func Role(r domain.Role, existing []domain.Role, editingID domain.ID) Errors {
	e := Errors{}
	requiredText(e, "name", r.Name, "name", 3)
	requiredText(e, "description", r.Description, "description", 10)
	return e
}

func Category(c domain.Category, existing []domain.Category, editingID domain.ID) Errors {
	e := Errors{}
	requiredText(e, "name", c.Name, "name", 3)
	requiredText(e, "description", c.Description, "description", 10)
	return e
}

func Product(p domain.Product, existing []domain.Product, editingID domain.ID) Errors {
	e := Errors{}
	requiredText(e, "name", p.Name, "name", 2)
	requiredText(e, "description", p.Description, "description", 10)
	positivePrice(e, "price", p.Price)
	nonNegativeStock(e, "stock", p.Stock)
	if p.CategoryID == 0 {
		e["categoryId"] = "category is required"
	}
	if _, taken := e["name"]; !taken {
		for _, other := range existing {
			if other.ID != editingID && equalName(other.Name, p.Name) {
				e["name"] = "a product with this name already exists"
				break
			}
		}
	}
	return e
}

func Service(s domain.Service, existing []domain.Service, editingID domain.ID) Errors {
	e := Errors{}
	requiredText(e, "name", s.Name, "name", 2)
	requiredText(e, "description", s.Description, "description", 10)
	positivePrice(e, "price", s.Price)
	positiveDuration(e, "duration", s.Duration)
	if _, taken := e["name"]; !taken {
		for _, other := range existing {
			if other.ID != editingID && equalName(other.Name, s.Name) {
				e["name"] = "a service with this name already exists"
				break
			}
		}
	}
	return e
}

func User(u domain.User, existing []domain.User, editingID domain.ID) Errors {
	e := Errors{}
	requiredText(e, "name", u.Name, "name", 2)
	email(e, "email", u.Email)
	password(e, "password", u.Password, editingID != 0)
	if u.RoleID == 0 {
		e["roleId"] = "role is required"
	}
	if _, taken := e["email"]; !taken {
		for _, other := range existing {
			if other.ID != editingID && equalName(other.Email, u.Email) {
				e["email"] = "a user with this email already exists"
				break
			}
		}
	}
	return e
}

func Client(c domain.Client, existing []domain.Client, editingID domain.ID) Errors {
	e := Errors{}
	requiredText(e, "name", c.Name, "name", 2)
	email(e, "email", c.Email)
	phone(e, "phone", c.Phone)
	return e
}

func Provider(p domain.Provider, existing []domain.Provider, editingID domain.ID) Errors {
	e := Errors{}
	requiredText(e, "company", p.Company, "company", 2)
	requiredText(e, "contactName", p.ContactName, "contact name", 2)
	email(e, "email", p.Email)
	phone(e, "phone", p.Phone)
	return e
}

func equalName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
