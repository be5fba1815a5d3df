package usecase

import (
	"fmt"
	"strings"

	"github.com/falconboard/boardflow/internal/domain/model"
)

// CardTitle renders the card title. It must contain the order marker, which
// serves as the board-wide de-duplication key.
func CardTitle(order *model.Order) string {
	return fmt.Sprintf("Order %s", OrderMarker(order.Number))
}

// CardDescription renders the human-readable order summary placed in the
// card body. Purely presentational; routing never reads it back.
func CardDescription(order *model.Order, column string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Order %s\n", OrderMarker(order.Number))
	fmt.Fprintf(&b, "Customer: %s\n", order.CustomerName())
	fmt.Fprintf(&b, "Total: %s %s\n", order.Currency, order.TotalPrice)

	shipping := "N/A"
	if len(order.ShippingLines) > 0 {
		shipping = order.ShippingLines[0].Title
	}
	fmt.Fprintf(&b, "Shipping: %s (%s)\n", column, shipping)
	fmt.Fprintf(&b, "Date: %s\n", order.CreatedAt.Format("2006-01-02"))
	fmt.Fprintf(&b, "Email: %s\n", orDefault(order.Email))
	fmt.Fprintf(&b, "Phone: %s\n", orDefault(order.Phone))
	fmt.Fprintf(&b, "Tags: %s\n", orDefault(order.Tags))

	if len(order.LineItems) > 0 {
		b.WriteString("\nItems:\n")
		for _, item := range order.LineItems {
			fmt.Fprintf(&b, "- %dx %s (%s %s)\n", item.Quantity, item.Name, order.Currency, item.Price)
		}
	}

	b.WriteString("\nShipping Address:\n")
	if addr := order.ShippingAddress; addr != nil {
		fmt.Fprintf(&b, "%s\n%s, %s %s\n%s\n", addr.Address1, addr.City, addr.Province, addr.Zip, addr.Country)
	} else {
		b.WriteString("N/A\n")
	}

	return strings.TrimSpace(b.String())
}

func orDefault(s string) string {
	if s == "" {
		return "None"
	}
	return s
}
