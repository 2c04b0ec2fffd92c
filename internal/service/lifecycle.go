package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/umalmyha/customer-notifier/internal/cache"
	"github.com/umalmyha/customer-notifier/internal/classifier"
	errs "github.com/umalmyha/customer-notifier/internal/errors"
	"github.com/umalmyha/customer-notifier/internal/fingerprint"
	"github.com/umalmyha/customer-notifier/internal/mailer"
	"github.com/umalmyha/customer-notifier/internal/model"
	"github.com/umalmyha/customer-notifier/internal/notification"
	"github.com/umalmyha/customer-notifier/internal/repository"
)

// CustomerLifecycleService handles one logical operation per webhook event
// type. Each call is independent, records are read-modify-written per
// customer id with last-write-wins semantics.
type CustomerLifecycleService interface {
	CustomerCreated(ctx context.Context, c *model.Customer) (bool, error)
	AddressesSynced(ctx context.Context, c *model.Customer) (classifier.Action, error)
	AccountDeleted(ctx context.Context, c *model.Customer) (bool, error)
}

type customerLifecycleService struct {
	recordRepo  repository.CustomerRecordRepository
	recordCache cache.RecordCache
	dispatcher  mailer.Dispatcher
	formatter   *notification.Formatter
	operator    string
}

func NewCustomerLifecycleService(
	recordRepo repository.CustomerRecordRepository,
	recordCache cache.RecordCache,
	dispatcher mailer.Dispatcher,
	formatter *notification.Formatter,
	operator string,
) CustomerLifecycleService {
	return &customerLifecycleService{
		recordRepo:  recordRepo,
		recordCache: recordCache,
		dispatcher:  dispatcher,
		formatter:   formatter,
		operator:    operator,
	}
}

// AddressesSynced fingerprints the incoming address state, classifies the
// transition against the remembered baseline and notifies the operator on any
// action. The record is refreshed even on NoChange so benign webhook replays
// are absorbed. First observation records the baseline silently.
func (s *customerLifecycleService) AddressesSynced(ctx context.Context, c *model.Customer) (classifier.Action, error) {
	if c.ID == "" {
		return classifier.NoChange, errs.NewValidationErr("id", "customer identifier is required")
	}

	var defaultSet []model.Address
	if c.Default != nil {
		defaultSet = []model.Address{*c.Default}
	}

	current := classifier.Snapshot{
		DefaultFingerprint: fingerprint.Compute(defaultSet),
		ExtraFingerprint:   fingerprint.Compute(c.Extra),
		ExtraCount:         len(c.Extra),
	}

	last, err := s.findRecord(ctx, c.ID)
	if err != nil {
		return classifier.NoChange, err
	}

	action := classifier.Classify(last, current)
	firstObservation := !last.Active()

	rec := &model.CustomerRecord{
		ID:                 c.ID,
		DefaultFingerprint: current.DefaultFingerprint,
		ExtraFingerprint:   current.ExtraFingerprint,
		ExtraCount:         current.ExtraCount,
		Notified:           last.Active() && last.Notified,
	}
	if err := s.saveRecord(ctx, rec); err != nil {
		return classifier.NoChange, err
	}

	if firstObservation {
		logrus.WithField("customerId", c.ID).Info("first observation, baseline recorded without notification")
		return classifier.NoChange, nil
	}

	if action == classifier.NoChange {
		return action, nil
	}

	subject := notification.AddressChangeSubject(action)
	body := s.formatter.AddressChange(c, action)
	if err := s.dispatch(ctx, c.ID, []string{s.operator}, subject, body); err != nil {
		return action, err
	}
	return action, nil
}

// CustomerCreated records the registration baseline and notifies the operator
// once per registration: the notified flag on the record suppresses duplicate
// notices while the account stays active.
func (s *customerLifecycleService) CustomerCreated(ctx context.Context, c *model.Customer) (bool, error) {
	if c.ID == "" {
		return false, errs.NewValidationErr("id", "customer identifier is required")
	}
	if c.Email == "" {
		return false, errs.NewValidationErr("email", "customer email is required")
	}

	last, err := s.findRecord(ctx, c.ID)
	if err != nil {
		return false, err
	}
	alreadyNotified := last.Active() && last.Notified

	var defaultSet []model.Address
	if c.Default != nil {
		defaultSet = []model.Address{*c.Default}
	}

	rec := &model.CustomerRecord{
		ID:                 c.ID,
		DefaultFingerprint: fingerprint.Compute(defaultSet),
		ExtraFingerprint:   fingerprint.Compute(c.Extra),
		ExtraCount:         len(c.Extra),
		Notified:           true,
	}
	if err := s.saveRecord(ctx, rec); err != nil {
		return false, err
	}

	if alreadyNotified {
		logrus.WithField("customerId", c.ID).Info("registration notice already sent, baseline refreshed")
		return false, nil
	}

	if err := s.dispatch(ctx, c.ID, []string{s.operator}, notification.SubjectRegistration, s.formatter.Registration(c)); err != nil {
		return false, err
	}
	return true, nil
}

// AccountDeleted flags the record deleted and sends the customer confirmation
// plus a separate operator copy. Flagging instead of removing makes a repeat
// deletion a provable no-op while a never-seen id still gets its confirmation.
func (s *customerLifecycleService) AccountDeleted(ctx context.Context, c *model.Customer) (bool, error) {
	if c.ID == "" {
		return false, errs.NewValidationErr("id", "customer identifier is required")
	}
	if c.Email == "" {
		return false, errs.NewValidationErr("email", "customer email is required")
	}

	last, err := s.findRecord(ctx, c.ID)
	if err != nil {
		return false, err
	}

	if last != nil && last.Deleted {
		logrus.WithField("customerId", c.ID).Info("account already deleted, skipping duplicate confirmation")
		return false, nil
	}

	if err := s.saveRecord(ctx, &model.CustomerRecord{ID: c.ID, Deleted: true}); err != nil {
		return false, err
	}

	if err := s.dispatch(ctx, c.ID, []string{c.Email}, notification.SubjectDeletionConfirmation, s.formatter.DeletionConfirmation(c)); err != nil {
		return false, err
	}
	if err := s.dispatch(ctx, c.ID, []string{s.operator}, notification.SubjectDeletionNotice, s.formatter.DeletionNotice(c)); err != nil {
		return true, err
	}
	return true, nil
}

// findRecord is cache-aside: hit the cache first, fall back to the repository
// and cache the result on a hit.
func (s *customerLifecycleService) findRecord(ctx context.Context, id string) (*model.CustomerRecord, error) {
	rec, err := s.recordCache.FindByID(ctx, id)
	if err != nil {
		return nil, errs.NewStoreErr(err)
	}
	if rec != nil {
		return rec, nil
	}

	rec, err = s.recordRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errs.NewStoreErr(err)
	}
	if rec == nil {
		return nil, nil
	}

	if err := s.recordCache.Cache(ctx, rec); err != nil {
		return nil, errs.NewStoreErr(err)
	}
	return rec, nil
}

// saveRecord evicts the cached entry before the write so the next read
// repopulates from the repository.
func (s *customerLifecycleService) saveRecord(ctx context.Context, rec *model.CustomerRecord) error {
	if err := s.recordCache.EvictByID(ctx, rec.ID); err != nil {
		return errs.NewStoreErr(err)
	}
	if err := s.recordRepo.Upsert(ctx, rec); err != nil {
		return errs.NewStoreErr(err)
	}
	return nil
}

// dispatch sends one notification. A failure is surfaced as DispatchErr but
// the record update that preceded it stays committed - deduplication state
// wins over guaranteed delivery, so the failure is logged loudly.
func (s *customerLifecycleService) dispatch(ctx context.Context, customerID string, to []string, subject string, body string) error {
	dispatchID := uuid.NewString()

	if err := s.dispatcher.Send(ctx, to, subject, body); err != nil {
		logrus.WithFields(logrus.Fields{
			"customerId": customerID,
			"dispatchId": dispatchID,
			"subject":    subject,
		}).Errorf("state committed but notification was not delivered - %v", err)
		return errs.NewDispatchErr(err)
	}

	logrus.WithFields(logrus.Fields{
		"customerId": customerID,
		"dispatchId": dispatchID,
		"subject":    subject,
	}).Info("notification dispatched")
	return nil
}
