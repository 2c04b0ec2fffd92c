package classifier

import "github.com/umalmyha/customer-notifier/internal/model"

// Action is the single change category assigned to an incoming address sync.
type Action int

const (
	// NoChange means no notification is warranted
	NoChange Action = iota
	// AddedDefaultAddress means a default address appeared
	AddedDefaultAddress
	// RemovedDefaultAddress means the default address is gone
	RemovedDefaultAddress
	// ChangedDefaultAddress means the default address content changed
	ChangedDefaultAddress
	// AddedExtraAddress means a non-default address appeared
	AddedExtraAddress
	// RemovedExtraAddress means a non-default address is gone
	RemovedExtraAddress
	// UpdatedExtraAddress means non-default address content changed
	UpdatedExtraAddress
)

func (a Action) String() string {
	switch a {
	case AddedDefaultAddress:
		return "default address added"
	case RemovedDefaultAddress:
		return "default address removed"
	case ChangedDefaultAddress:
		return "default address changed"
	case AddedExtraAddress:
		return "address added"
	case RemovedExtraAddress:
		return "address removed"
	case UpdatedExtraAddress:
		return "address updated"
	default:
		return "no change"
	}
}

// Snapshot is what the current webhook says about a customer's addresses.
type Snapshot struct {
	DefaultFingerprint string
	ExtraFingerprint   string
	ExtraCount         int
}

// Classify compares the remembered baseline against the current snapshot and
// assigns at most one action. A missing or deleted baseline is a first
// observation: it must be recorded silently, never reported as a change.
// Default-address transitions win outright - extra transitions are consulted
// only when the default fingerprint is unchanged.
func Classify(last *model.CustomerRecord, current Snapshot) Action {
	if !last.Active() {
		return NoChange
	}

	switch {
	case last.DefaultFingerprint == "" && current.DefaultFingerprint != "":
		return AddedDefaultAddress
	case last.DefaultFingerprint != "" && current.DefaultFingerprint == "":
		return RemovedDefaultAddress
	case last.DefaultFingerprint != current.DefaultFingerprint:
		return ChangedDefaultAddress
	case last.ExtraFingerprint == "" && current.ExtraFingerprint != "":
		return AddedExtraAddress
	case last.ExtraFingerprint != "" && current.ExtraFingerprint == "":
		return RemovedExtraAddress
	case last.ExtraFingerprint != current.ExtraFingerprint:
		return extraChange(last.ExtraCount, current.ExtraCount)
	}
	return NoChange
}

// extraChange tells apart growth, shrinkage and in-place edits of a non-empty
// extra address set by count delta.
func extraChange(lastCount, currentCount int) Action {
	switch {
	case currentCount > lastCount:
		return AddedExtraAddress
	case currentCount < lastCount:
		return RemovedExtraAddress
	default:
		return UpdatedExtraAddress
	}
}
