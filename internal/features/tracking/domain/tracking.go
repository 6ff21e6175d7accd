package domain

import "time"

// Field formats.
const (
	FormatDateTime = "datetime"
	FormatCurrency = "currency"
	FormatPhone    = "phone"
	FormatCount    = "count"
)

// Field is one labelled value shown under a step.
type Field struct {
	Label  string `json:"label"`
	Value  string `json:"value"`
	Format string `json:"format,omitempty"`
}

// StepView is one rendered lifecycle step.
type StepView struct {
	// Key is the canonical step key, e.g. "in_transit".
	Key string `json:"key"`
	// Title is the display title.
	Title string `json:"title"`
	// Completed is true for the current step and every step before it.
	// Monotonic completion wins over timestamps: an earlier step with no time
	// of its own is still completed and carries Implied.
	Completed bool `json:"completed"`
	// Implied marks a completed step with no recorded time of its own.
	Implied bool `json:"implied,omitempty"`
	// Timestamp is when the step happened, null when unknown or not yet reached.
	Timestamp *time.Time `json:"timestamp"`
	// Description is a one-line summary of the step.
	Description string `json:"description"`
	// Fields are step-specific details; empty for steps not yet reached.
	Fields []Field `json:"fields"`
}

// MovementEvent is one deduplicated, timestamped fact in the shipment history.
type MovementEvent struct {
	Status      string     `json:"status"`
	Label       string     `json:"label"`
	Timestamp   *time.Time `json:"timestamp"`
	Location    string     `json:"location,omitempty"`
	Description string     `json:"description,omitempty"`
}

// Metadata summarizes a shipment.
type Metadata struct {
	ConsignmentNumber int64      `json:"consignmentNumber"`
	BookingReference  string     `json:"bookingReference"`
	SourceKind        SourceKind `json:"sourceKind"`
	ServiceType       string     `json:"serviceType"`
	PackageCount      int        `json:"packageCount"`
	PaymentMethod     string     `json:"paymentMethod"`
	RouteSummary      string     `json:"routeSummary"`
	BookingDate       *time.Time `json:"bookingDate"`
	StatusLabel       string     `json:"statusLabel"`
	CurrentStepKey    string     `json:"currentStepKey"`
	EstimatedDelivery *time.Time `json:"estimatedDelivery"`
	LastUpdated       *time.Time `json:"lastUpdated"`
}

// Attachments lists image URLs attached to a shipment.
type Attachments struct {
	PackageImages       []string `json:"packageImages"`
	DeliveryProofImages []string `json:"deliveryProofImages"`
}

// TrackingResponse is the full tracking projection of one shipment.
type TrackingResponse struct {
	Metadata        Metadata        `json:"metadata"`
	Steps           []StepView      `json:"steps"`
	MovementHistory []MovementEvent `json:"movementHistory"`
	Attachments     Attachments     `json:"attachments"`
}

// MovementSummary is the narrow polling projection.
type MovementSummary struct {
	ConsignmentNumber int64           `json:"consignmentNumber"`
	MovementHistory   []MovementEvent `json:"movementHistory"`
}
