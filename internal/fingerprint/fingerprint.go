package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/umalmyha/customer-notifier/internal/model"
)

// Field and address separators must never appear inside a normalized field,
// address1 in particular cannot validly contain a pipe or a newline.
const (
	fieldSeparator   = "|"
	addressSeparator = "\n"
)

// Compute returns the canonical digest of an address set: every text field is
// trimmed and lower-cased, concatenated in a fixed documented order, then
// hashed with SHA-256. An empty set yields the empty string, the store-wide
// "no address" sentinel - an empty set is never hashed to a digest.
func Compute(addresses []model.Address) string {
	if len(addresses) == 0 {
		return ""
	}

	entries := make([]string, 0, len(addresses))
	for i := range addresses {
		entries = append(entries, canonical(&addresses[i]))
	}

	digest := sha256.Sum256([]byte(strings.Join(entries, addressSeparator)))
	return hex.EncodeToString(digest[:])
}

// canonical concatenation order: company, address1, address2, city, province,
// country, zip, phone, contact name. Changing it invalidates every stored
// fingerprint.
func canonical(a *model.Address) string {
	fields := []string{
		a.Company,
		a.Address1,
		a.Address2,
		a.City,
		a.Province,
		a.Country,
		a.Zip,
		a.Phone,
		a.ContactName(),
	}

	for i, f := range fields {
		fields[i] = strings.ToLower(strings.TrimSpace(f))
	}
	return strings.Join(fields, fieldSeparator)
}
