package shopify

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/falconboard/boardflow/internal/domain/model"
)

// orderPayload mirrors the admin API order JSON. The same shape arrives in
// webhook bodies, so webhook handlers decode through this package too.
type orderPayload struct {
	ID              int64            `json:"id"`
	OrderNumber     int64            `json:"order_number"`
	Tags            string           `json:"tags"`
	CreatedAt       time.Time        `json:"created_at"`
	Currency        string           `json:"currency"`
	TotalPrice      string           `json:"total_price"`
	Email           string           `json:"email"`
	Phone           string           `json:"phone"`
	Customer        *customerPayload `json:"customer"`
	ShippingLines   []shippingLine   `json:"shipping_lines"`
	LineItems       []lineItem       `json:"line_items"`
	ShippingAddress *addressPayload  `json:"shipping_address"`
}

type customerPayload struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type shippingLine struct {
	Title string `json:"title"`
}

type lineItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
}

type addressPayload struct {
	Address1 string `json:"address1"`
	City     string `json:"city"`
	Province string `json:"province"`
	Zip      string `json:"zip"`
	Country  string `json:"country"`
}

func (p *orderPayload) toModel() *model.Order {
	order := &model.Order{
		ID:         p.ID,
		Number:     p.OrderNumber,
		Tags:       p.Tags,
		CreatedAt:  p.CreatedAt,
		Currency:   p.Currency,
		TotalPrice: p.TotalPrice,
		Email:      p.Email,
		Phone:      p.Phone,
	}
	if p.Customer != nil {
		order.Customer = &model.Customer{FirstName: p.Customer.FirstName, LastName: p.Customer.LastName}
	}
	for _, line := range p.ShippingLines {
		order.ShippingLines = append(order.ShippingLines, model.ShippingLine{Title: line.Title})
	}
	for _, item := range p.LineItems {
		order.LineItems = append(order.LineItems, model.LineItem{Name: item.Name, Quantity: item.Quantity, Price: item.Price})
	}
	if p.ShippingAddress != nil {
		order.ShippingAddress = &model.Address{
			Address1: p.ShippingAddress.Address1,
			City:     p.ShippingAddress.City,
			Province: p.ShippingAddress.Province,
			Zip:      p.ShippingAddress.Zip,
			Country:  p.ShippingAddress.Country,
		}
	}
	return order
}

// DecodeOrder parses a webhook body into the domain order.
func DecodeOrder(raw []byte) (*model.Order, error) {
	var payload orderPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("decode order payload: %w", err)
	}
	return payload.toModel(), nil
}
