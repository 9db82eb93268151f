package pricing

import "strconv"

// LineItem is the display-ready tuple reconstructed for invoicing. The stored
// order only carries a descriptor string and a snapshot total, so quantity and
// unit price may have to be derived after the fact.
type LineItem struct {
	Product       string
	Quantity      float64
	QuantityKnown bool // false means the quantity is indeterminate
	UnitPrice     float64
	LineTotal     float64
}

// ResolveLine rebuilds the invoice line from an order's descriptor string,
// its snapshot total and the catalog unit price looked up for the descriptor's
// name. When the descriptor carries no usable quantity the quantity is derived
// as total/price; with a zero or unknown price it stays indeterminate rather
// than dividing by zero. The line total always equals the snapshot total.
func ResolveLine(descriptor string, orderTotal, unitPrice float64) LineItem {
	name, rawQty := SplitDescriptor(descriptor)

	item := LineItem{
		Product:   name,
		UnitPrice: unitPrice,
		LineTotal: orderTotal,
	}

	qty, err := strconv.ParseFloat(stripNonNumeric(rawQty), 64)
	if err == nil && qty > 0 {
		item.Quantity = qty
		item.QuantityKnown = true
		return item
	}

	if unitPrice > 0 {
		item.Quantity = orderTotal / unitPrice
		item.QuantityKnown = true
	}
	return item
}

// stripNonNumeric keeps digits and decimal points only, mirroring how the
// quantity segment is cleaned before parsing.
func stripNonNumeric(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= '0' && c <= '9') || c == '.' {
			out = append(out, c)
		}
	}
	return string(out)
}
