package model

// Address is a single postal address attached to a customer. Identifier may
// be absent for payloads which don't carry platform-assigned address ids.
type Address struct {
	ID        *int64
	Company   string
	Address1  string
	Address2  string
	City      string
	Province  string
	Zip       string
	Country   string
	Phone     string
	FirstName string
	LastName  string
	Name      string
}

// ContactName resolves the displayable contact name: the single display name
// when the platform sent one, otherwise the joined name parts.
func (a *Address) ContactName() string {
	if a.Name != "" {
		return a.Name
	}
	return FullName(a.FirstName, a.LastName)
}
