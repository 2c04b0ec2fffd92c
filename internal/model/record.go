package model

import "time"

// CustomerRecord is the persisted per-customer baseline used to detect
// address changes on the next webhook. Empty fingerprint strings are the
// canonical "no address" sentinel, never conflated with "unknown".
type CustomerRecord struct {
	ID                 string    `json:"id" bson:"_id"`
	DefaultFingerprint string    `json:"defaultFingerprint" bson:"defaultFingerprint"`
	ExtraFingerprint   string    `json:"extraFingerprint" bson:"extraFingerprint"`
	ExtraCount         int       `json:"extraCount" bson:"extraCount"`
	Notified           bool      `json:"notified" bson:"notified"`
	Deleted            bool      `json:"deleted" bson:"deleted"`
	UpdatedAt          time.Time `json:"updatedAt" bson:"updatedAt"`
}

// Active reports whether the record represents a live observation baseline.
// A record flagged deleted behaves as if the customer was never seen.
func (r *CustomerRecord) Active() bool {
	return r != nil && !r.Deleted
}
