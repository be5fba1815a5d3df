package model

import "time"

// Order describes a commerce order as delivered by webhook or polled import.
// Everything past Number, Tags and CreatedAt is opaque material for the card
// description and never influences routing.
type Order struct {
	ID              int64
	Number          int64
	Tags            string
	CreatedAt       time.Time
	Currency        string
	TotalPrice      string
	Email           string
	Phone           string
	Customer        *Customer
	ShippingLines   []ShippingLine
	LineItems       []LineItem
	ShippingAddress *Address
}

// Customer holds the buyer's name fields.
type Customer struct {
	FirstName string
	LastName  string
}

// ShippingLine is the shipping method chosen at checkout.
type ShippingLine struct {
	Title string
}

// LineItem is one purchased product.
type LineItem struct {
	Name     string
	Quantity int
	Price    string
}

// Address is the order's shipping destination.
type Address struct {
	Address1 string
	City     string
	Province string
	Zip      string
	Country  string
}

// CustomerName renders the buyer name or a guest placeholder.
func (o *Order) CustomerName() string {
	if o.Customer == nil {
		return "Guest Customer"
	}
	name := o.Customer.FirstName
	if o.Customer.LastName != "" {
		if name != "" {
			name += " "
		}
		name += o.Customer.LastName
	}
	if name == "" {
		return "Guest Customer"
	}
	return name
}
