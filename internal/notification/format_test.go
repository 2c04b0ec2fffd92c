package notification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/umalmyha/customer-notifier/internal/classifier"
	"github.com/umalmyha/customer-notifier/internal/model"
)

func fixedFormatter() *Formatter {
	f := NewFormatter(time.UTC)
	f.now = func() time.Time {
		return time.Date(2022, time.August, 14, 9, 30, 5, 0, time.UTC)
	}
	return f
}

func TestAddressChangeBody(t *testing.T) {
	f := fixedFormatter()

	c := &model.Customer{
		ID:        "42",
		Email:     "john.chan@example.com",
		FirstName: "John",
		LastName:  "Chan",
		Default: &model.Address{
			Address1: "88 Nathan Road",
			City:     "Hong Kong",
			Province: "Kowloon",
			Country:  "Hong Kong SAR",
		},
		Extra: []model.Address{
			{Address1: "1 Queen's Road", City: "Central", Company: "Tak Shing Electrical"},
		},
	}

	body := f.AddressChange(c, classifier.ChangedDefaultAddress)

	assert.Contains(t, body, "customer address notification: default address changed")
	assert.Contains(t, body, "name : John Chan")
	assert.Contains(t, body, "email: john.chan@example.com")
	assert.Contains(t, body, "sent : 2022/08/14 09:30:05 (UTC)")
	assert.Contains(t, body, "addresses on file: 2")
	assert.Contains(t, body, "[address 1]")
	assert.Contains(t, body, "[address 2]")
	assert.Contains(t, body, "line 1  : 88 Nathan Road")
	assert.Contains(t, body, "company : Tak Shing Electrical")
	assert.Contains(t, body, "phone   : not provided", "absent fields must render the placeholder")
}

func TestAddressChangeNoAddresses(t *testing.T) {
	f := fixedFormatter()

	c := &model.Customer{ID: "42", Email: "john.chan@example.com", FirstName: "John", LastName: "Chan"}
	body := f.AddressChange(c, classifier.RemovedDefaultAddress)

	assert.Contains(t, body, "customer address notification: default address removed")
	assert.Contains(t, body, "addresses on file: none")
	assert.NotContains(t, body, "[address 1]")
}

func TestCJKNameOrdering(t *testing.T) {
	f := fixedFormatter()

	c := &model.Customer{ID: "7", Email: "tm@example.com", FirstName: "大文", LastName: "陳"}
	body := f.Registration(c)

	assert.Contains(t, body, "name : 陳大文", "CJK names render surname first with no separator")
}

func TestDeletionConfirmation(t *testing.T) {
	f := fixedFormatter()

	c := &model.Customer{ID: "42", Email: "john.chan@example.com", FirstName: "John", LastName: "Chan"}
	body := f.DeletionConfirmation(c)

	assert.Contains(t, body, "Dear John,")
	assert.Contains(t, body, "successfully deleted")
}

func TestDeletionNotice(t *testing.T) {
	f := fixedFormatter()

	c := &model.Customer{ID: "42", Email: "john.chan@example.com", FirstName: "John", LastName: "Chan"}
	body := f.DeletionNotice(c)

	assert.Contains(t, body, "customer account deleted")
	assert.Contains(t, body, "email: john.chan@example.com")
	assert.Contains(t, body, "sent : 2022/08/14 09:30:05 (UTC)")
}

func TestSubjects(t *testing.T) {
	assert.Equal(t, "customer address notification: address added", AddressChangeSubject(classifier.AddedExtraAddress))
	assert.Equal(t, "new customer registration", SubjectRegistration)
}
