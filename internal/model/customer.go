package model

import (
	"strings"
	"unicode"
)

// Customer is the customer snapshot carried by a single platform webhook.
type Customer struct {
	ID        string
	Email     string
	FirstName string
	LastName  string
	Default   *Address
	Extra     []Address
}

// Addresses returns the default address (if any) followed by the extra
// addresses in webhook order, which drives display numbering.
func (c *Customer) Addresses() []Address {
	addresses := make([]Address, 0, len(c.Extra)+1)
	if c.Default != nil {
		addresses = append(addresses, *c.Default)
	}
	return append(addresses, c.Extra...)
}

// DisplayName renders the customer name, see FullName.
func (c *Customer) DisplayName() string {
	return FullName(c.FirstName, c.LastName)
}

// FullName joins name parts honoring East Asian convention: when either part
// contains CJK ideographs the surname comes first with no separator,
// otherwise parts are joined western-style with a space.
func FullName(first, last string) string {
	first = strings.TrimSpace(first)
	last = strings.TrimSpace(last)

	if containsCJK(first) || containsCJK(last) {
		return last + first
	}

	switch {
	case first == "":
		return last
	case last == "":
		return first
	default:
		return first + " " + last
	}
}

func containsCJK(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Han, r) {
			return true
		}
	}
	return false
}
