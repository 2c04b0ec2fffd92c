package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/umalmyha/customer-notifier/internal/classifier"
	"github.com/umalmyha/customer-notifier/internal/model"
	"github.com/umalmyha/customer-notifier/internal/service"
)

type address struct {
	ID        *int64 `json:"id"`
	Company   string `json:"company"`
	Address1  string `json:"address1"`
	Address2  string `json:"address2"`
	City      string `json:"city"`
	Province  string `json:"province"`
	Zip       string `json:"zip"`
	Country   string `json:"country"`
	Phone     string `json:"phone"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Name      string `json:"name"`
}

type customerWebhook struct {
	ID             json.Number `json:"id" validate:"required"`
	Email          string      `json:"email" validate:"omitempty,email"`
	FirstName      string      `json:"first_name"`
	LastName       string      `json:"last_name"`
	DefaultAddress *address    `json:"default_address"`
	Addresses      []address   `json:"addresses"`
}

type accountDeletion struct {
	ID        json.Number `json:"id" validate:"required"`
	Email     string      `json:"email" validate:"required,email"`
	FirstName string      `json:"first_name"`
	LastName  string      `json:"last_name"`
}

type newCustomer struct {
	ID             json.Number `json:"id" validate:"required"`
	Email          string      `json:"email" validate:"required,email"`
	FirstName      string      `json:"first_name"`
	LastName       string      `json:"last_name"`
	DefaultAddress *address    `json:"default_address"`
	Addresses      []address   `json:"addresses"`
}

type syncResponse struct {
	Action     string `json:"action"`
	Dispatched bool   `json:"dispatched"`
}

type ackResponse struct {
	Dispatched bool `json:"dispatched"`
}

// WebhookHandler adapts platform webhook payloads to the lifecycle service.
type WebhookHandler struct {
	lifecycleSvc service.CustomerLifecycleService
}

func NewWebhookHandler(lifecycleSvc service.CustomerLifecycleService) *WebhookHandler {
	return &WebhookHandler{lifecycleSvc: lifecycleSvc}
}

// AddressesSynced handles the platform's customer update webhook.
func (h *WebhookHandler) AddressesSynced(c echo.Context) error {
	var payload customerWebhook
	if err := c.Bind(&payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&payload); err != nil {
		return err
	}

	action, err := h.lifecycleSvc.AddressesSynced(c.Request().Context(), payload.customer())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, &syncResponse{
		Action:     action.String(),
		Dispatched: action != classifier.NoChange,
	})
}

// CustomerCreated handles the platform's customer registration webhook.
func (h *WebhookHandler) CustomerCreated(c echo.Context) error {
	var payload newCustomer
	if err := c.Bind(&payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&payload); err != nil {
		return err
	}

	notified, err := h.lifecycleSvc.CustomerCreated(c.Request().Context(), payload.customer())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, &ackResponse{Dispatched: notified})
}

// AccountDeleted handles the account deletion request.
func (h *WebhookHandler) AccountDeleted(c echo.Context) error {
	var payload accountDeletion
	if err := c.Bind(&payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&payload); err != nil {
		return err
	}

	dispatched, err := h.lifecycleSvc.AccountDeleted(c.Request().Context(), &model.Customer{
		ID:        payload.ID.String(),
		Email:     payload.Email,
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, &ackResponse{Dispatched: dispatched})
}

// Health is the liveness probe.
func (h *WebhookHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (p *customerWebhook) customer() *model.Customer {
	return buildCustomer(p.ID.String(), p.Email, p.FirstName, p.LastName, p.DefaultAddress, p.Addresses)
}

func (p *newCustomer) customer() *model.Customer {
	return buildCustomer(p.ID.String(), p.Email, p.FirstName, p.LastName, p.DefaultAddress, p.Addresses)
}

// buildCustomer maps the webhook shape to the model: the addresses list may
// repeat the default address, extras are the rest (matched by address id).
func buildCustomer(id, email, firstName, lastName string, def *address, all []address) *model.Customer {
	cust := &model.Customer{
		ID:        id,
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
	}

	if def != nil {
		converted := def.model()
		cust.Default = &converted
	}

	for i := range all {
		if def != nil && def.ID != nil && all[i].ID != nil && *def.ID == *all[i].ID {
			continue
		}
		cust.Extra = append(cust.Extra, all[i].model())
	}
	return cust
}

func (a *address) model() model.Address {
	return model.Address{
		ID:        a.ID,
		Company:   a.Company,
		Address1:  a.Address1,
		Address2:  a.Address2,
		City:      a.City,
		Province:  a.Province,
		Zip:       a.Zip,
		Country:   a.Country,
		Phone:     a.Phone,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Name:      a.Name,
	}
}
