package validate

import (
	"testing"

	"mercado/internal/domain"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestProperty_WellFormedEmailsPass(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("emails with one @ and a dotted domain are accepted", prop.ForAll(
		func(local string, host string, tld string) bool {
			e := Errors{}
			email(e, "email", local+"@"+host+"."+tld)
			if msg, bad := e["email"]; bad {
				t.Logf("FAIL: rejected %s@%s.%s: %s", local, host, tld, msg)
				return false
			}
			return true
		},
		gen.RegexMatch(`[a-z0-9.+_-]{1,12}`),
		gen.RegexMatch(`[a-z0-9-]{1,10}`),
		gen.RegexMatch(`[a-z]{2,6}`),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestEmailAcceptsMinimalAddress(t *testing.T) {
	e := Errors{}
	email(e, "email", "a@b.co")
	if !e.Valid() {
		t.Fatalf("a@b.co rejected: %v", e)
	}
}

func TestEmailRejectsMalformedInput(t *testing.T) {
	bad := []string{
		"",
		"plainaddress",
		"missing-at.example.com",
		"nodomain@",
		"@nolocal.com",
		"no@dot",
		"spaces in@example.com",
		"double@@example.com",
	}
	for _, input := range bad {
		e := Errors{}
		email(e, "email", input)
		if e.Valid() {
			t.Errorf("email %q was accepted", input)
		}
	}
}

func TestProperty_UniquenessExcludesTheRecordBeingEdited(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("a product keeps its own name on edit but cannot take another's", prop.ForAll(
		func(name string, otherName string) bool {
			if equalName(name, otherName) {
				return true
			}

			existing := []domain.Product{
				{ID: 5, Name: name, Description: "long enough description", Price: 10, Stock: 1, CategoryID: 1},
				{ID: 7, Name: otherName, Description: "long enough description", Price: 10, Stock: 1, CategoryID: 1},
			}

			// Editing record 5 while keeping its own name must pass.
			keep := domain.Product{ID: 5, Name: name, Description: "long enough description", Price: 10, Stock: 1, CategoryID: 1}
			if errs := Product(keep, existing, 5); !errs.Valid() {
				t.Logf("FAIL: editing record with unchanged name rejected: %v", errs)
				return false
			}

			// Editing record 5 to take record 7's name must fail on name.
			steal := domain.Product{ID: 5, Name: otherName, Description: "long enough description", Price: 10, Stock: 1, CategoryID: 1}
			if errs := Product(steal, existing, 5); errs.Valid() {
				t.Logf("FAIL: duplicate name %q accepted", otherName)
				return false
			}

			// Creating a brand new record with either name must fail.
			create := domain.Product{Name: name, Description: "long enough description", Price: 10, Stock: 1, CategoryID: 1}
			if errs := Product(create, existing, 0); errs.Valid() {
				t.Logf("FAIL: create with existing name %q accepted", name)
				return false
			}

			return true
		},
		gen.RegexMatch(`[A-Z][a-z]{3,12}`),
		gen.RegexMatch(`[A-Z][a-z]{3,12}`),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestProductRules(t *testing.T) {
	valid := domain.Product{Name: "Phone", Description: "A reasonable description", Price: 10, Stock: 0, CategoryID: 1}
	if errs := Product(valid, nil, 0); !errs.Valid() {
		t.Fatalf("valid product rejected: %v", errs)
	}

	cases := []struct {
		name  string
		mut   func(*domain.Product)
		field string
	}{
		{"empty name", func(p *domain.Product) { p.Name = "  " }, "name"},
		{"short name", func(p *domain.Product) { p.Name = "x" }, "name"},
		{"short description", func(p *domain.Product) { p.Description = "tiny" }, "description"},
		{"zero price", func(p *domain.Product) { p.Price = 0 }, "price"},
		{"negative price", func(p *domain.Product) { p.Price = -5 }, "price"},
		{"negative stock", func(p *domain.Product) { p.Stock = -1 }, "stock"},
		{"missing category", func(p *domain.Product) { p.CategoryID = 0 }, "categoryId"},
	}
	for _, tc := range cases {
		p := valid
		tc.mut(&p)
		errs := Product(p, nil, 0)
		if _, ok := errs[tc.field]; !ok {
			t.Errorf("%s: no error on field %q, got %v", tc.name, tc.field, errs)
		}
	}
}

func TestServiceRequiresPositiveDuration(t *testing.T) {
	s := domain.Service{Name: "Consulting", Description: "A reasonable description", Price: 100, Duration: 0}
	errs := Service(s, nil, 0)
	if _, ok := errs["duration"]; !ok {
		t.Fatalf("zero duration accepted: %v", errs)
	}

	s.Duration = 60
	if errs := Service(s, nil, 0); !errs.Valid() {
		t.Fatalf("valid service rejected: %v", errs)
	}
}

func TestUserPasswordOptionalOnEdit(t *testing.T) {
	existing := []domain.User{{ID: 2, Name: "Someone", Email: "someone@example.com", RoleID: 1}}

	// Create without a password is blocked.
	created := domain.User{Name: "New User", Email: "new@example.com", RoleID: 1}
	errs := User(created, existing, 0)
	if _, ok := errs["password"]; !ok {
		t.Fatalf("create without password accepted: %v", errs)
	}

	// Edit without a password keeps the stored one.
	edited := domain.User{ID: 2, Name: "Someone", Email: "someone@example.com", RoleID: 1}
	if errs := User(edited, existing, 2); !errs.Valid() {
		t.Fatalf("edit without password rejected: %v", errs)
	}

	// A password that is present must still meet the minimum length.
	edited.Password = "abc"
	errs = User(edited, existing, 2)
	if _, ok := errs["password"]; !ok {
		t.Fatalf("short password accepted on edit: %v", errs)
	}
}

func TestUserEmailUniquenessIsCaseInsensitive(t *testing.T) {
	existing := []domain.User{{ID: 1, Name: "Admin", Email: "admin@admin.com", RoleID: 1}}

	u := domain.User{Name: "Imposter", Email: "ADMIN@Admin.com", Password: "secret1", RoleID: 2}
	errs := User(u, existing, 0)
	if _, ok := errs["email"]; !ok {
		t.Fatalf("duplicate email with different case accepted: %v", errs)
	}
}

func TestPhoneRules(t *testing.T) {
	ok := []string{"+1 234 567 8901", "(123) 456-7890", "12345678"}
	for _, input := range ok {
		e := Errors{}
		phone(e, "phone", input)
		if !e.Valid() {
			t.Errorf("phone %q rejected: %v", input, e)
		}
	}

	bad := []string{"", "555-CALL", "1234567", "12 34"}
	for _, input := range bad {
		e := Errors{}
		phone(e, "phone", input)
		if e.Valid() {
			t.Errorf("phone %q accepted", input)
		}
	}
}

func TestClientAndProviderRequireContactFields(t *testing.T) {
	c := domain.Client{Name: "Carlos", Email: "carlos@client.com", Phone: "+1 234 567 8901"}
	if errs := Client(c, nil, 0); !errs.Valid() {
		t.Fatalf("valid client rejected: %v", errs)
	}

	c.Phone = ""
	errs := Client(c, nil, 0)
	if _, ok := errs["phone"]; !ok {
		t.Fatalf("client without phone accepted: %v", errs)
	}

	p := domain.Provider{Company: "TechCorp", ContactName: "Roberto", Email: "contact@techcorp.com", Phone: "+1 555 123 4567"}
	if errs := Provider(p, nil, 0); !errs.Valid() {
		t.Fatalf("valid provider rejected: %v", errs)
	}

	p.Company = ""
	errs = Provider(p, nil, 0)
	if _, ok := errs["company"]; !ok {
		t.Fatalf("provider without company accepted: %v", errs)
	}
}

func TestRoleAndCategoryMinimumLengths(t *testing.T) {
	r := domain.Role{Name: "Ad", Description: "short"}
	errs := Role(r, nil, 0)
	if _, ok := errs["name"]; !ok {
		t.Errorf("two-character role name accepted")
	}
	if _, ok := errs["description"]; !ok {
		t.Errorf("short role description accepted")
	}

	c := domain.Category{Name: "Electronics", Description: "Electronic devices and technology"}
	if errs := Category(c, nil, 0); !errs.Valid() {
		t.Fatalf("valid category rejected: %v", errs)
	}
}
