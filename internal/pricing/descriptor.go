package pricing

import (
	"strconv"
	"strings"
)

// ItemSpec is the structured form of the compact "name|quantity" descriptor.
type ItemSpec struct {
	Name     string
	Quantity int
}

// Descriptor renders the compact stored form. A non-positive quantity yields
// the name-only shape.
func (s ItemSpec) Descriptor() string {
	if s.Quantity <= 0 {
		return s.Name
	}
	return s.Name + "|" + strconv.Itoa(s.Quantity)
}

// SplitDescriptor parses a stored descriptor on a single "|" separator. The
// left segment is the product name; the right segment, when present, is the
// raw quantity string (returned uncleaned).
func SplitDescriptor(descriptor string) (name, rawQuantity string) {
	parts := strings.SplitN(descriptor, "|", 2)
	name = strings.TrimSpace(parts[0])
	if len(parts) == 2 {
		rawQuantity = parts[1]
	}
	return name, rawQuantity
}

// Good is one entry of a delivery job's goods description, a ";"-joined list
// of "name|note" pairs.
type Good struct {
	Name string
	Note string
}

func (g Good) Display() string {
	if g.Note == "" {
		return g.Name
	}
	return g.Name + " (" + g.Note + ")"
}

func ParseGoods(description string) []Good {
	var goods []Good
	for _, entry := range strings.Split(description, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "|", 2)
		g := Good{Name: strings.TrimSpace(parts[0])}
		if len(parts) == 2 {
			g.Note = strings.TrimSpace(parts[1])
		}
		goods = append(goods, g)
	}
	return goods
}

func EncodeGoods(goods []Good) string {
	entries := make([]string, 0, len(goods))
	for _, g := range goods {
		if g.Note == "" {
			entries = append(entries, g.Name)
			continue
		}
		entries = append(entries, g.Name+"|"+g.Note)
	}
	return strings.Join(entries, ";")
}

// DisplayGoods renders a goods description for customer-facing screens.
func DisplayGoods(description string) []string {
	goods := ParseGoods(description)
	out := make([]string, 0, len(goods))
	for _, g := range goods {
		out = append(out, g.Display())
	}
	return out
}
