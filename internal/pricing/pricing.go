package pricing

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

var (
	ErrUnknownItem     = errors.New("unknown item: no unit price in price table")
	ErrInvalidQuantity = errors.New("quantity must be a positive whole number")
)

// PriceTable maps an exact product name to its integer unit price.
type PriceTable map[string]int

// DefaultPriceTable is the fixed catalog used on the order creation path.
func DefaultPriceTable() PriceTable {
	return PriceTable{
		"Beef":    600,
		"Chicken": 800,
		"Bread":   400,
	}
}

func (t PriceTable) UnitPrice(name string) (int, error) {
	price, ok := t[name]
	if !ok {
		return 0, ErrUnknownItem
	}
	return price, nil
}

// Line is the priced tuple computed when an order is first created.
type Line struct {
	Name      string
	Quantity  int
	UnitPrice int
	Total     int
}

// SanitizeName trims the submitted item name and drops anything that is not
// a letter, digit or space, so markup can never reach storage or rendering.
func SanitizeName(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// Quote derives the priced line for a new order. The quantity is parsed once
// and the parsed value is used everywhere; the total is integer arithmetic
// over the table's unit price.
func Quote(table PriceTable, rawName, rawQuantity string) (Line, error) {
	name := SanitizeName(rawName)

	qty, err := strconv.Atoi(strings.TrimSpace(rawQuantity))
	if err != nil || qty <= 0 {
		return Line{}, ErrInvalidQuantity
	}

	unitPrice, err := table.UnitPrice(name)
	if err != nil {
		return Line{}, err
	}

	return Line{
		Name:      name,
		Quantity:  qty,
		UnitPrice: unitPrice,
		Total:     unitPrice * qty,
	}, nil
}
