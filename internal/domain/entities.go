package domain

// Entity kind names double as the REST collection segments on the resource
// server, so the constants are the single source of truth for both.
const (
	KindRoles      = "roles"
	KindCategories = "categories"
	KindProducts   = "products"
	KindServices   = "services"
	KindUsers      = "users"
	KindClients    = "clients"
	KindProviders  = "providers"
)

// Kinds lists every entity kind the catalog serves.
var Kinds = []string{
	KindRoles,
	KindCategories,
	KindProducts,
	KindServices,
	KindUsers,
	KindClients,
	KindProviders,
}

// Role is a back-office permission profile, referenced by User.RoleID.
type Role struct {
	ID          ID     `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (r *Role) RecordID() ID      { return r.ID }
func (r *Role) SetRecordID(id ID) { r.ID = id }

// Category groups products; Product.CategoryID references it. A dangling
// reference is tolerated and rendered as "unknown" by consumers.
type Category struct {
	ID          ID     `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
}

func (c *Category) RecordID() ID      { return c.ID }
func (c *Category) SetRecordID(id ID) { c.ID = id }

// Product is a catalog item. Price is a non-negative decimal, Stock a
// non-negative unit count.
type Product struct {
	ID          ID      `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	CategoryID  ID      `json:"categoryId"`
	Image       string  `json:"image,omitempty"`
}

func (p *Product) RecordID() ID      { return p.ID }
func (p *Product) SetRecordID(id ID) { p.ID = id }

// Service is a bookable offering; Duration is in minutes.
type Service struct {
	ID          ID      `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Duration    int     `json:"duration"`
}

func (s *Service) RecordID() ID      { return s.ID }
func (s *Service) SetRecordID(id ID) { s.ID = id }

// User is a back-office account. Password is optional on update and omitted
// from responses when empty.
type User struct {
	ID       ID     `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	RoleID   ID     `json:"roleId"`
	Active   bool   `json:"active"`
}

func (u *User) RecordID() ID      { return u.ID }
func (u *User) SetRecordID(id ID) { u.ID = id }

// Client is a storefront customer created through public registration.
type Client struct {
	ID      ID     `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address,omitempty"`
}

func (c *Client) RecordID() ID      { return c.ID }
func (c *Client) SetRecordID(id ID) { c.ID = id }

// Provider is a supplier company created through public registration.
type Provider struct {
	ID          ID     `json:"id"`
	Company     string `json:"company"`
	ContactName string `json:"contactName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address,omitempty"`
}

func (p *Provider) RecordID() ID      { return p.ID }
func (p *Provider) SetRecordID(id ID) { p.ID = id }
