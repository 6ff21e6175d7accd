package domain

// Step is a canonical lifecycle stage. The underlying value is the stage's rank in the
// primary flow; compact flows fold the stages they omit into the preceding one.
type Step int

const (
	// StepBooked is the booking itself; unknown statuses classify here.
	StepBooked Step = iota
	// StepReceived is the parcel being received at an OCL office or hub.
	StepReceived
	// StepInTransit covers line-haul movement and hub arrivals.
	StepInTransit
	// StepOutForDelivery means a courier is carrying the parcel to the consignee.
	StepOutForDelivery
	// StepDelivered is the successful terminal state.
	StepDelivered
	// StepUndelivered is the failed terminal state. It shares StepDelivered's position in every flow.
	StepUndelivered
)

var stepKeys = [...]string{
	StepBooked:         "booked",
	StepReceived:       "received_at_ocl",
	StepInTransit:      "in_transit",
	StepOutForDelivery: "out_for_delivery",
	StepDelivered:      "delivered",
	StepUndelivered:    "undelivered",
}

var stepTitles = [...]string{
	StepBooked:         "Booked",
	StepReceived:       "Received at OCL",
	StepInTransit:      "In Transit",
	StepOutForDelivery: "Out for Delivery",
	StepDelivered:      "Delivered",
	StepUndelivered:    "Delivery Attempted",
}

// Key returns the stable wire identifier of the step.
func (s Step) Key() string {
	if s < StepBooked || s > StepUndelivered {
		return stepKeys[StepBooked]
	}
	return stepKeys[s]
}

// Title returns the display title of the step.
func (s Step) Title() string {
	if s < StepBooked || s > StepUndelivered {
		return stepTitles[StepBooked]
	}
	return stepTitles[s]
}

// Terminal reports whether the step ends the lifecycle.
func (s Step) Terminal() bool {
	return s == StepDelivered || s == StepUndelivered
}

func (s Step) String() string {
	return s.Key()
}

// ParseStep resolves a wire key back into a Step.
func ParseStep(key string) (Step, bool) {
	for i, k := range stepKeys {
		if k == key {
			return Step(i), true
		}
	}
	return StepBooked, false
}

// Flow is an ordered set of steps a shipment is displayed through.
type Flow struct {
	name  string
	steps []Step
}

var (
	// PrimaryFlow is booked → received_at_ocl → in_transit → out_for_delivery → delivered.
	PrimaryFlow = Flow{name: "primary", steps: []Step{StepBooked, StepReceived, StepInTransit, StepOutForDelivery, StepDelivered}}
	// CompactFlow folds receipt into booking: booked → in_transit → out_for_delivery → delivered.
	CompactFlow = Flow{name: "compact", steps: []Step{StepBooked, StepInTransit, StepOutForDelivery, StepDelivered}}
)

// FlowByName returns the named flow.
func FlowByName(name string) (Flow, bool) {
	switch name {
	case PrimaryFlow.name:
		return PrimaryFlow, true
	case CompactFlow.name:
		return CompactFlow, true
	}
	return Flow{}, false
}

// Name returns the flow identifier.
func (f Flow) Name() string {
	return f.name
}

// Steps returns a copy of the flow's steps in display order.
func (f Flow) Steps() []Step {
	out := make([]Step, len(f.steps))
	copy(out, f.steps)
	return out
}

// Len returns the number of steps in the flow.
func (f Flow) Len() int {
	return len(f.steps)
}

// Ordinal returns the position of s in the flow. Undelivered takes Delivered's position and
// steps the flow omits take the position of the closest preceding step.
func (f Flow) Ordinal(s Step) int {
	if s == StepUndelivered {
		s = StepDelivered
	}
	ordinal := 0
	for i, st := range f.steps {
		if st > s {
			break
		}
		ordinal = i
	}
	return ordinal
}

// Fold maps s onto the step the flow displays for it, keeping Undelivered distinct.
func (f Flow) Fold(s Step) Step {
	if s == StepUndelivered {
		return s
	}
	if len(f.steps) == 0 {
		return StepBooked
	}
	return f.steps[f.Ordinal(s)]
}
