package reconcile

import (
	"encoding/json"
	"testing"
	"time"

	"courier-tracker/internal/features/tracking/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEngine_Defaults(t *testing.T) {
	e := NewEngine(nil, 0)

	assert.NotNil(t, e.table)
	assert.Equal(t, DefaultDedupeWindow, e.dedup.Window)
	assert.NotNil(t, e.dedup.Fold)

	e = NewEngine(nil, 5*time.Minute)
	assert.Equal(t, 5*time.Minute, e.dedup.Window)
}

func TestEngine_ProjectOutForDelivery(t *testing.T) {
	p := NewEngine(nil, 0).Project(outForDeliveryTracking())
	meta := p.Response.Metadata

	assert.Equal(t, int64(1000101), meta.ConsignmentNumber)
	assert.Equal(t, domain.SourceTracking, meta.SourceKind)
	assert.Equal(t, "out_for_delivery", meta.CurrentStepKey)
	assert.Equal(t, "Out for Delivery", meta.StatusLabel)
	assert.Equal(t, "Mumbai → Pune", meta.RouteSummary)
	assert.Equal(t, tp(20*time.Hour), meta.LastUpdated)

	assert.Equal(t, []string{"box.jpg"}, p.Response.Attachments.PackageImages)
	assert.Equal(t, []string{}, p.Response.Attachments.DeliveryProofImages)
	assert.Equal(t, 1, p.Collapsed)
}

func TestEngine_ProjectDelivered(t *testing.T) {
	p := NewEngine(nil, 0).Project(deliveredCustomer())

	assert.Equal(t, "delivered", p.Response.Metadata.CurrentStepKey)
	assert.Equal(t, []string{"sign.png"}, p.Response.Attachments.DeliveryProofImages)
	assert.Equal(t, []string{}, p.Response.Attachments.PackageImages)
}

func TestEngine_Movement(t *testing.T) {
	summary, collapsed := NewEngine(nil, 0).Movement(medicineInTransit())

	assert.Equal(t, int64(1000404), summary.ConsignmentNumber)
	assert.Len(t, summary.MovementHistory, 2)
	assert.Equal(t, 1, collapsed)
}

func TestEngine_Deterministic(t *testing.T) {
	e := NewEngine(nil, 0)
	for _, doc := range allFixtures() {
		first, err := json.Marshal(e.Project(doc).Response)
		require.NoError(t, err)
		second, err := json.Marshal(e.Project(doc).Response)
		require.NoError(t, err)
		assert.JSONEq(t, string(first), string(second))
		assert.Equal(t, first, second)
	}
}

func TestEngine_Properties(t *testing.T) {
	e := NewEngine(nil, 0)
	for _, doc := range allFixtures() {
		resp := e.Project(doc).Response
		current, ok := domain.ParseStep(resp.Metadata.CurrentStepKey)
		require.True(t, ok)

		lastCompleted := ""
		for _, s := range resp.Steps {
			if s.Completed {
				lastCompleted = s.Key
			}
			if !s.Completed {
				assert.Nil(t, s.Timestamp)
				assert.Empty(t, s.Fields)
			}
		}
		assert.Equal(t, resp.Metadata.CurrentStepKey, lastCompleted)

		if current != domain.StepDelivered {
			assert.Empty(t, resp.Attachments.DeliveryProofImages)
			for _, s := range resp.Steps {
				if s.Key == "delivered" {
					assert.Nil(t, s.Timestamp)
				}
			}
			for _, ev := range resp.MovementHistory {
				assert.NotEqual(t, "delivered", ev.Status)
			}
		}
	}
}

func TestEngine_JSONShape(t *testing.T) {
	raw, err := json.Marshal(NewEngine(nil, 0).Project(&domain.CustomerDocument{ConsignmentNumber: 9}).Response)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Contains(t, decoded, "metadata")
	assert.Contains(t, decoded, "steps")
	assert.Equal(t, []any{}, decoded["movementHistory"])
}
