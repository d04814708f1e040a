package account

import "time"

// UserRecord is a stored account, keyed by email in the users mapping.
// JSON field names follow the persisted blob layout, so blobs written by
// earlier versions of the storefront round-trip unchanged.
type UserRecord struct {
	FirstName   string          `json:"firstName"`
	LastName    string          `json:"lastName"`
	Email       string          `json:"email"`
	Password    string          `json:"password"`
	CreatedAt   time.Time       `json:"createdAt"`
	Orders      []Order         `json:"orders"`
	Addresses   []Address       `json:"addresses"`
	Activities  []ActivityEvent `json:"activities"`
	Preferences Preferences     `json:"preferences"`
}

// Order is a placed order, newest first in UserRecord.Orders.
type Order struct {
	ID              string      `json:"id"`
	Date            time.Time   `json:"date"`
	Items           []OrderItem `json:"items"`
	Total           float64     `json:"total"`
	Status          string      `json:"status"`
	ShippingAddress string      `json:"shippingAddress"`
}

type OrderItem struct {
	Name     string  `json:"name"`
	Size     string  `json:"size,omitempty"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type Address struct {
	Label   string `json:"label"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}

// ActivityEvent is an immutable log entry. Events are only ever prepended
// to UserRecord.Activities and never mutated or removed.
type ActivityEvent struct {
	ID          int64     `json:"id"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}

type Preferences struct {
	Notifications bool `json:"notifications"`
	Newsletter    bool `json:"newsletter"`
}

// Clone returns a deep copy of the record. Callers receive clones so the
// store's own state can only change through its operations.
func (u *UserRecord) Clone() *UserRecord {
	c := *u

	if u.Orders != nil {
		c.Orders = make([]Order, len(u.Orders))
		for i, o := range u.Orders {
			c.Orders[i] = o
			if o.Items != nil {
				c.Orders[i].Items = make([]OrderItem, len(o.Items))
				copy(c.Orders[i].Items, o.Items)
			}
		}
	}
	if u.Addresses != nil {
		c.Addresses = make([]Address, len(u.Addresses))
		copy(c.Addresses, u.Addresses)
	}
	if u.Activities != nil {
		c.Activities = make([]ActivityEvent, len(u.Activities))
		copy(c.Activities, u.Activities)
	}

	return &c
}
