package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/umalmyha/customer-notifier/internal/classifier"
	"github.com/umalmyha/customer-notifier/internal/model"
	svcMocks "github.com/umalmyha/customer-notifier/internal/service/mocks"
	"github.com/umalmyha/customer-notifier/internal/validation"
)

const syncWebhookBody = `{
	"id": 42,
	"email": "john.chan@example.com",
	"first_name": "John",
	"last_name": "Chan",
	"default_address": {
		"id": 1001,
		"address1": "88 Nathan Road",
		"city": "Hong Kong",
		"province": "Kowloon",
		"country": "Hong Kong SAR"
	},
	"addresses": [
		{"id": 1001, "address1": "88 Nathan Road", "city": "Hong Kong", "province": "Kowloon", "country": "Hong Kong SAR"},
		{"id": 1002, "address1": "1 Queen's Road", "city": "Central", "country": "Hong Kong SAR"}
	]
}`

type webhookHandlerTestSuite struct {
	suite.Suite
	app              *echo.Echo
	lifecycleSvcMock *svcMocks.CustomerLifecycleService
	handler          *WebhookHandler
}

func (s *webhookHandlerTestSuite) SetupSuite() {
	enLocale := en.New()
	unvTranslator := ut.New(enLocale, enLocale)
	trans, ok := unvTranslator.GetTranslator("en")
	s.Require().True(ok, "en translator must be available")

	s.app = echo.New()
	s.app.Validator = validation.Echo(validator.New(), trans)
}

func (s *webhookHandlerTestSuite) SetupTest() {
	s.lifecycleSvcMock = svcMocks.NewCustomerLifecycleService(s.T())
	s.handler = NewWebhookHandler(s.lifecycleSvcMock)
}

func (s *webhookHandlerTestSuite) request(body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return s.app.NewContext(req, rec), rec
}

func (s *webhookHandlerTestSuite) TestAddressesSyncedMapsPayload() {
	s.lifecycleSvcMock.On("AddressesSynced", mock.Anything, mock.MatchedBy(func(c *model.Customer) bool {
		// the addresses list repeats the default, only 1002 is an extra
		return c.ID == "42" &&
			c.Default != nil && c.Default.Address1 == "88 Nathan Road" &&
			len(c.Extra) == 1 && c.Extra[0].Address1 == "1 Queen's Road"
	})).Return(classifier.ChangedDefaultAddress, nil).Once()

	ctx, rec := s.request(syncWebhookBody)

	s.T().Log("valid webhook must be mapped and acknowledged")
	{
		err := s.handler.AddressesSynced(ctx)
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().Equal(http.StatusOK, rec.Code)

		var resp syncResponse
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
		s.Assert().Equal("default address changed", resp.Action)
		s.Assert().True(resp.Dispatched)
	}
}

func (s *webhookHandlerTestSuite) TestAddressesSyncedNoChange() {
	s.lifecycleSvcMock.On("AddressesSynced", mock.Anything, mock.AnythingOfType("*model.Customer")).
		Return(classifier.NoChange, nil).Once()

	ctx, rec := s.request(`{"id": 42, "email": "john.chan@example.com"}`)

	s.T().Log("no-change webhook must report nothing dispatched")
	{
		err := s.handler.AddressesSynced(ctx)
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().Equal(http.StatusOK, rec.Code)

		var resp syncResponse
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
		s.Assert().Equal("no change", resp.Action)
		s.Assert().False(resp.Dispatched)
	}
}

func (s *webhookHandlerTestSuite) TestAddressesSyncedRejectsMissingID() {
	ctx, _ := s.request(`{"email": "john.chan@example.com"}`)

	s.T().Log("payload without id must be rejected before reaching the service")
	{
		err := s.handler.AddressesSynced(ctx)

		var pldErr *validation.PayloadError
		s.Assert().ErrorAs(err, &pldErr, "error must carry payload violations")
		s.lifecycleSvcMock.AssertNotCalled(s.T(), "AddressesSynced", mock.Anything, mock.Anything)
	}
}

func (s *webhookHandlerTestSuite) TestCustomerCreated() {
	s.lifecycleSvcMock.On("CustomerCreated", mock.Anything, mock.MatchedBy(func(c *model.Customer) bool {
		return c.ID == "42" && c.Email == "john.chan@example.com"
	})).Return(true, nil).Once()

	ctx, rec := s.request(`{"id": 42, "email": "john.chan@example.com", "first_name": "John", "last_name": "Chan"}`)

	s.T().Log("registration webhook must be acknowledged")
	{
		err := s.handler.CustomerCreated(ctx)
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().Equal(http.StatusOK, rec.Code)

		var resp ackResponse
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
		s.Assert().True(resp.Dispatched)
	}
}

func (s *webhookHandlerTestSuite) TestAccountDeletedRequiresEmail() {
	ctx, _ := s.request(`{"id": 42}`)

	s.T().Log("deletion without a confirmation address must be rejected")
	{
		err := s.handler.AccountDeleted(ctx)

		var pldErr *validation.PayloadError
		s.Assert().ErrorAs(err, &pldErr, "error must carry payload violations")
		s.lifecycleSvcMock.AssertNotCalled(s.T(), "AccountDeleted", mock.Anything, mock.Anything)
	}
}

func (s *webhookHandlerTestSuite) TestAccountDeleted() {
	s.lifecycleSvcMock.On("AccountDeleted", mock.Anything, mock.MatchedBy(func(c *model.Customer) bool {
		return c.ID == "42" && c.Email == "john.chan@example.com" && c.FirstName == "John"
	})).Return(true, nil).Once()

	ctx, rec := s.request(`{"id": 42, "email": "john.chan@example.com", "first_name": "John", "last_name": "Chan"}`)

	s.T().Log("deletion request must be acknowledged")
	{
		err := s.handler.AccountDeleted(ctx)
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().Equal(http.StatusOK, rec.Code)
	}
}

func (s *webhookHandlerTestSuite) TestHealth() {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	ctx := s.app.NewContext(req, rec)

	s.T().Log("health probe must respond ok")
	{
		err := s.handler.Health(ctx)
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().Equal(http.StatusOK, rec.Code)
	}
}

// start webhook handler test suite
func TestWebhookHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(webhookHandlerTestSuite))
}
