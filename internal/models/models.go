package models

// Field names double as the persisted document keys, so the bson and json
// tags must stay in sync with each other.

// DefaultCurrency is the ISO code applied when a request omits one.
const DefaultCurrency = "eur"

// Product represents an item in the "product" collection. The slug is the
// external lookup key; the MongoDB _id is never exposed, which is why no
// model carries an ID field.
type Product struct {
	Title            string   `bson:"title" json:"title"`
	Slug             string   `bson:"slug" json:"slug"`
	Description      string   `bson:"description" json:"description"`
	ShortDescription string   `bson:"short_description" json:"short_description"`
	Price            float64  `bson:"price" json:"price"`
	Currency         string   `bson:"currency" json:"currency"`
	Images           []string `bson:"images" json:"images"`
	Features         []string `bson:"features" json:"features"`
	InStock          bool     `bson:"in_stock" json:"in_stock"`
	StripePriceID    *string  `bson:"stripe_price_id" json:"stripe_price_id"`
}

// OrderItem is a denormalized snapshot of a cart line. ProductID is a plain
// optional reference, never verified against the product collection.
type OrderItem struct {
	ProductID  *string `bson:"product_id" json:"product_id"`
	Title      string  `bson:"title" json:"title"`
	Quantity   int     `bson:"quantity" json:"quantity"`
	UnitAmount int     `bson:"unit_amount" json:"unit_amount"` // minor currency units (cents)
}

// Order represents a document in the "order" collection. AmountTotal is in
// minor currency units and is computed once at creation time.
type Order struct {
	Email           *string     `bson:"email" json:"email"`
	Items           []OrderItem `bson:"items" json:"items"`
	AmountTotal     int         `bson:"amount_total" json:"amount_total"`
	Currency        string      `bson:"currency" json:"currency"`
	StripeSessionID *string     `bson:"stripe_session_id" json:"stripe_session_id"`
	Status          string      `bson:"status" json:"status"`
}

// Order statuses. An order is written once with status "created"; the paid
// and canceled transitions belong to a payment webhook outside this service.
const (
	OrderStatusCreated  = "created"
	OrderStatusPaid     = "paid"
	OrderStatusCanceled = "canceled"
)

// Testimonial represents a document in the "testimonial" collection.
type Testimonial struct {
	Name  string  `bson:"name" json:"name"`
	Role  *string `bson:"role" json:"role"`
	Quote string  `bson:"quote" json:"quote"`
}

// ContactMessage represents a document in the "contactmessage" collection.
type ContactMessage struct {
	Name    string `bson:"name" json:"name"`
	Email   string `bson:"email" json:"email"`
	Message string `bson:"message" json:"message"`
}
