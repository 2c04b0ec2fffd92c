package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/umalmyha/customer-notifier/internal/model"
)

func record(defaultFp string, extraFp string, extraCount int) *model.CustomerRecord {
	return &model.CustomerRecord{
		ID:                 "42",
		DefaultFingerprint: defaultFp,
		ExtraFingerprint:   extraFp,
		ExtraCount:         extraCount,
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		last     *model.CustomerRecord
		current  Snapshot
		expected Action
	}{
		{
			name:     "first observation is never a change even with addresses present",
			last:     nil,
			current:  Snapshot{DefaultFingerprint: "d1", ExtraFingerprint: "e1", ExtraCount: 2},
			expected: NoChange,
		},
		{
			name:     "record flagged deleted behaves as first observation",
			last:     &model.CustomerRecord{ID: "42", Deleted: true, DefaultFingerprint: "d0"},
			current:  Snapshot{DefaultFingerprint: "d1"},
			expected: NoChange,
		},
		{
			name:     "identical fingerprints yield no change",
			last:     record("d1", "e1", 1),
			current:  Snapshot{DefaultFingerprint: "d1", ExtraFingerprint: "e1", ExtraCount: 1},
			expected: NoChange,
		},
		{
			name:     "default address appears",
			last:     record("", "e1", 1),
			current:  Snapshot{DefaultFingerprint: "d1", ExtraFingerprint: "e1", ExtraCount: 1},
			expected: AddedDefaultAddress,
		},
		{
			name:     "default address disappears while extras unchanged",
			last:     record("d1", "e1", 1),
			current:  Snapshot{DefaultFingerprint: "", ExtraFingerprint: "e1", ExtraCount: 1},
			expected: RemovedDefaultAddress,
		},
		{
			name:     "default address content changes",
			last:     record("d1", "e1", 1),
			current:  Snapshot{DefaultFingerprint: "d2", ExtraFingerprint: "e1", ExtraCount: 1},
			expected: ChangedDefaultAddress,
		},
		{
			name:     "default change wins when both categories change in one event",
			last:     record("d1", "e1", 1),
			current:  Snapshot{DefaultFingerprint: "d2", ExtraFingerprint: "e2", ExtraCount: 2},
			expected: ChangedDefaultAddress,
		},
		{
			name:     "default removal wins over extra changes",
			last:     record("d1", "e1", 1),
			current:  Snapshot{DefaultFingerprint: "", ExtraFingerprint: "", ExtraCount: 0},
			expected: RemovedDefaultAddress,
		},
		{
			name:     "first extra address appears",
			last:     record("d1", "", 0),
			current:  Snapshot{DefaultFingerprint: "d1", ExtraFingerprint: "e1", ExtraCount: 1},
			expected: AddedExtraAddress,
		},
		{
			name:     "last extra address disappears",
			last:     record("d1", "e1", 1),
			current:  Snapshot{DefaultFingerprint: "d1", ExtraFingerprint: "", ExtraCount: 0},
			expected: RemovedExtraAddress,
		},
		{
			name:     "extra set grows",
			last:     record("d1", "e1", 1),
			current:  Snapshot{DefaultFingerprint: "d1", ExtraFingerprint: "e2", ExtraCount: 2},
			expected: AddedExtraAddress,
		},
		{
			name:     "extra set shrinks but stays non-empty",
			last:     record("d1", "e1", 3),
			current:  Snapshot{DefaultFingerprint: "d1", ExtraFingerprint: "e2", ExtraCount: 2},
			expected: RemovedExtraAddress,
		},
		{
			name:     "extra content edited in place",
			last:     record("d1", "e1", 2),
			current:  Snapshot{DefaultFingerprint: "d1", ExtraFingerprint: "e2", ExtraCount: 2},
			expected: UpdatedExtraAddress,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.last, tt.current))
		})
	}
}

func TestClassifyIdempotent(t *testing.T) {
	last := record("d1", "e1", 1)
	current := Snapshot{DefaultFingerprint: "d2", ExtraFingerprint: "e1", ExtraCount: 1}

	first := Classify(last, current)
	second := Classify(last, current)
	assert.Equal(t, first, second, "same inputs must classify identically")
}

func TestActionLabels(t *testing.T) {
	assert.Equal(t, "no change", NoChange.String())
	assert.Equal(t, "default address changed", ChangedDefaultAddress.String())
	assert.Equal(t, "address updated", UpdatedExtraAddress.String())
}
