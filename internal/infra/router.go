package infra

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/umalmyha/customer-notifier/internal/cache"
	"github.com/umalmyha/customer-notifier/internal/config"
	errs "github.com/umalmyha/customer-notifier/internal/errors"
	"github.com/umalmyha/customer-notifier/internal/handlers"
	"github.com/umalmyha/customer-notifier/internal/mailer"
	"github.com/umalmyha/customer-notifier/internal/notification"
	"github.com/umalmyha/customer-notifier/internal/repository"
	"github.com/umalmyha/customer-notifier/internal/service"
	"github.com/umalmyha/customer-notifier/internal/validation"
)

// Router assembles the webhook endpoints around the lifecycle service.
func Router(
	recordRepo repository.CustomerRecordRepository,
	recordCache cache.RecordCache,
	dispatcher mailer.Dispatcher,
	notifyCfg config.NotifyCfg,
) (*echo.Echo, error) {
	e := echo.New()
	e.HTTPErrorHandler = httpErrorHandler(e)

	enLocale := en.New()
	unvTranslator := ut.New(enLocale, enLocale)
	trans, ok := unvTranslator.GetTranslator("en")
	if !ok {
		return nil, errors.New("failed to build echo validator because of missing en translations")
	}
	e.Validator = validation.Echo(validator.New(), trans)

	loc, err := time.LoadLocation(notifyCfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("unknown notification timezone %q - %w", notifyCfg.Timezone, err)
	}

	// Services
	formatter := notification.NewFormatter(loc)
	lifecycleSvc := service.NewCustomerLifecycleService(recordRepo, recordCache, dispatcher, formatter, notifyCfg.OperatorEmail)

	// Handlers
	webhookHandler := handlers.NewWebhookHandler(lifecycleSvc)

	e.GET("/healthz", webhookHandler.Health)
	e.POST("/webhook", webhookHandler.AddressesSynced)
	e.POST("/webhook/new-customer", webhookHandler.CustomerCreated)
	e.POST("/delete-account", webhookHandler.AccountDeleted)

	return e, nil
}

// httpErrorHandler maps the typed core errors onto HTTP statuses: rejected
// payloads are the caller's fault, dispatch failures point at the mail
// collaborator, store failures mean the service can't process events now.
func httpErrorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		var payloadErr *validation.PayloadError
		var validationErr *errs.ValidationErr
		var dispatchErr *errs.DispatchErr
		var storeErr *errs.StoreErr

		switch {
		case errors.As(err, &payloadErr):
			err = echo.NewHTTPError(http.StatusBadRequest, payloadErr)
		case errors.As(err, &validationErr):
			err = echo.NewHTTPError(http.StatusBadRequest, validationErr.Error())
		case errors.As(err, &dispatchErr):
			err = echo.NewHTTPError(http.StatusBadGateway, dispatchErr.Error())
		case errors.As(err, &storeErr):
			err = echo.NewHTTPError(http.StatusServiceUnavailable, storeErr.Error())
		}

		c.Logger().Error(err.Error())
		e.DefaultHTTPErrorHandler(err, c)
	}
}
