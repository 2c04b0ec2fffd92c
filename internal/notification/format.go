package notification

import (
	"fmt"
	"strings"
	"time"

	"github.com/umalmyha/customer-notifier/internal/classifier"
	"github.com/umalmyha/customer-notifier/internal/model"
)

const (
	timeLayout  = "2006/01/02 15:04:05"
	rule        = "──────────────────"
	notProvided = "not provided"
)

// Subject lines per notification type.
const (
	SubjectRegistration         = "new customer registration"
	SubjectDeletionConfirmation = "your account has been deleted"
	SubjectDeletionNotice       = "customer account deleted"
)

// AddressChangeSubject names the classified action in the operator subject.
func AddressChangeSubject(action classifier.Action) string {
	return "customer address notification: " + action.String()
}

// Formatter renders plain-text notification bodies. Timestamps are rendered
// in one fixed zone, the operator's, regardless of where the server runs.
type Formatter struct {
	loc *time.Location
	now func() time.Time
}

func NewFormatter(loc *time.Location) *Formatter {
	return &Formatter{loc: loc, now: time.Now}
}

// AddressChange builds the operator report for a classified address action:
// header naming the action, identity block, then the full address list.
func (f *Formatter) AddressChange(c *model.Customer, action classifier.Action) string {
	var b strings.Builder

	b.WriteString(AddressChangeSubject(action) + "\n")
	b.WriteString(rule + "\n")
	f.identity(&b, c)
	b.WriteString(rule + "\n\n")

	addresses := c.Addresses()
	if len(addresses) == 0 {
		b.WriteString("addresses on file: none\n")
		return b.String()
	}

	fmt.Fprintf(&b, "addresses on file: %d\n", len(addresses))
	for i := range addresses {
		f.address(&b, i+1, &addresses[i])
	}
	return b.String()
}

// Registration builds the operator notice about a freshly registered account.
func (f *Formatter) Registration(c *model.Customer) string {
	var b strings.Builder

	b.WriteString("new customer registration\n")
	b.WriteString(rule + "\n")
	f.identity(&b, c)
	b.WriteString(rule + "\n")
	return b.String()
}

// DeletionConfirmation builds the customer-facing farewell message.
func (f *Formatter) DeletionConfirmation(c *model.Customer) string {
	name := c.FirstName
	if name == "" {
		name = c.DisplayName()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", name)
	b.WriteString("Your account has been successfully deleted. ")
	b.WriteString("You are welcome to register again at any time.\n")
	return b.String()
}

// DeletionNotice builds the operator copy of an account deletion.
func (f *Formatter) DeletionNotice(c *model.Customer) string {
	var b strings.Builder

	b.WriteString("customer account deleted\n")
	b.WriteString(rule + "\n")
	f.identity(&b, c)
	b.WriteString(rule + "\n")
	return b.String()
}

func (f *Formatter) identity(b *strings.Builder, c *model.Customer) {
	fmt.Fprintf(b, "name : %s\n", orDefault(c.DisplayName()))
	fmt.Fprintf(b, "email: %s\n", orDefault(c.Email))
	fmt.Fprintf(b, "sent : %s (%s)\n", f.now().In(f.loc).Format(timeLayout), f.loc)
}

func (f *Formatter) address(b *strings.Builder, n int, a *model.Address) {
	fmt.Fprintf(b, "\n[address %d] %s\n", n, rule)
	fmt.Fprintf(b, "company : %s\n", orDefault(a.Company))
	fmt.Fprintf(b, "line 1  : %s\n", orDefault(a.Address1))
	fmt.Fprintf(b, "line 2  : %s\n", orDefault(a.Address2))
	fmt.Fprintf(b, "city    : %s\n", orDefault(a.City))
	fmt.Fprintf(b, "province: %s\n", orDefault(a.Province))
	fmt.Fprintf(b, "country : %s\n", orDefault(a.Country))
	fmt.Fprintf(b, "phone   : %s\n", orDefault(a.Phone))
}

func orDefault(s string) string {
	if s == "" {
		return notProvided
	}
	return s
}
