package reconcile

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"courier-tracker/internal/features/tracking/classifier"
	"courier-tracker/internal/features/tracking/domain"
)

const pendingDescription = "Pending"

// StepData is what a step would show if it were reached.
type StepData struct {
	Timestamp   *time.Time
	Description string
	Fields      []domain.Field
}

// CurrentStep resolves the shipment's current step: the classified stored status,
// escalated by later scan evidence (confirmed delivery, then out-for-delivery,
// in-transit, received). Evidence never demotes the stored status.
func CurrentStep(set *domain.RawEventSet, flow domain.Flow, table *classifier.Table) domain.Step {
	classified := flow.Fold(table.Classify(set.CurrentStatus, set.Kind))

	evidence := domain.StepBooked
	switch {
	case deliveredTime(set, classified) != nil:
		evidence = domain.StepDelivered
	case outForDeliveryTime(set) != nil:
		evidence = domain.StepOutForDelivery
	case inTransitTime(set) != nil:
		evidence = domain.StepInTransit
	case receivedTime(set) != nil:
		evidence = domain.StepReceived
	}
	evidence = flow.Fold(evidence)

	if flow.Ordinal(evidence) > flow.Ordinal(classified) {
		return evidence
	}
	return classified
}

// DeriveStepData computes every step's own timestamp, description and fields from
// the event set, before any clamping against the current step.
func DeriveStepData(set *domain.RawEventSet, flow domain.Flow, current domain.Step) map[domain.Step]StepData {
	data := make(map[domain.Step]StepData, flow.Len()+1)
	compact := flow.Ordinal(domain.StepReceived) == flow.Ordinal(domain.StepBooked)

	data[domain.StepBooked] = bookedData(set, compact)
	data[domain.StepReceived] = receivedData(set)
	data[domain.StepInTransit] = inTransitData(set)
	data[domain.StepOutForDelivery] = outForDeliveryData(set)
	data[domain.StepDelivered] = deliveredData(set, current)
	data[domain.StepUndelivered] = undeliveredData(set, current)
	return data
}

// BuildTimeline renders flow's steps against the current step. Steps after the current
// one are never completed and carry no timestamp or fields. The current step is always
// completed. Earlier steps are completed; those without their own time are marked implied.
// When the shipment is undelivered, the terminal slot renders the failure variant.
func BuildTimeline(flow domain.Flow, current domain.Step, data map[domain.Step]StepData) []domain.StepView {
	currentOrdinal := flow.Ordinal(current)
	steps := flow.Steps()
	views := make([]domain.StepView, 0, len(steps))

	for i, step := range steps {
		if step == domain.StepDelivered && current == domain.StepUndelivered {
			step = domain.StepUndelivered
		}
		d := data[step]
		view := domain.StepView{
			Key:    step.Key(),
			Title:  step.Title(),
			Fields: []domain.Field{},
		}

		switch {
		case i > currentOrdinal:
			view.Description = pendingDescription
		case i == currentOrdinal:
			view.Completed = true
			view.Timestamp = d.Timestamp
			view.Description = d.Description
			view.Fields = nonNilFields(d.Fields)
		default:
			view.Completed = true
			view.Implied = d.Timestamp == nil
			view.Timestamp = d.Timestamp
			view.Description = d.Description
			view.Fields = nonNilFields(d.Fields)
		}
		views = append(views, view)
	}
	return views
}

func bookedTime(set *domain.RawEventSet) *time.Time {
	if t := set.GroupTime(domain.GroupBooking); t != nil {
		return t
	}
	return logTime(set, "booked")
}

func receivedTime(set *domain.RawEventSet) *time.Time {
	if t := set.GroupTime(domain.GroupReceived); t != nil {
		return t
	}
	return logTime(set, "received")
}

// inTransitTime prefers the explicit transit record, then a logged in-transit entry,
// then the latest hub scan, then a logged hub arrival.
func inTransitTime(set *domain.RawEventSet) *time.Time {
	if t := set.GroupTime(domain.GroupInTransit); t != nil {
		return t
	}
	if t := logTime(set, "in_transit"); t != nil {
		return t
	}
	if t := set.GroupTime(domain.GroupReachedHub); t != nil {
		return t
	}
	return logTime(set, "reached_hub")
}

func outForDeliveryTime(set *domain.RawEventSet) *time.Time {
	if t := set.GroupTime(domain.GroupOutForDelivery); t != nil {
		return t
	}
	return logTime(set, "out_for_delivery")
}

// deliveredTime is only ever set when the stored status is itself delivered.
func deliveredTime(set *domain.RawEventSet, classified domain.Step) *time.Time {
	if classified != domain.StepDelivered {
		return nil
	}
	if t := set.GroupTime(domain.GroupDelivered); t != nil {
		return t
	}
	return logTime(set, "delivered")
}

func undeliveredTime(set *domain.RawEventSet) *time.Time {
	if a, ok := set.LastAttempt(); ok && a.Timestamp != nil {
		return a.Timestamp
	}
	return logTime(set, "undelivered")
}

func logTime(set *domain.RawEventSet, status string) *time.Time {
	if entry, ok := set.LatestLog(status); ok {
		return entry.Timestamp
	}
	return nil
}

func bookedData(set *domain.RawEventSet, compact bool) StepData {
	d := set.Details
	f := fieldList{}
	f.time("Booking Date", bookedTime(set))
	f.text("Service Type", d.ServiceType)
	if d.PackageCount > 0 {
		f.add("Packages", strconv.Itoa(d.PackageCount), domain.FormatCount)
	}
	f.text("Payment Method", d.PaymentMethod)
	f.text("Route", routeSummary(d.Origin, d.Destination))

	description := "Shipment booked"
	if pickup, ok := set.Group(domain.GroupPickup); ok {
		f.time("Picked Up At", pickup.Timestamp)
		f.text("Pickup Location", pickup.Location)
		f.text("Picked Up By", pickup.Actor)
		if pickup.Timestamp != nil {
			description = "Shipment booked and picked up"
		}
	}
	if compact {
		if receipt, ok := set.Group(domain.GroupReceived); ok {
			f.text("Received At", receipt.Location)
			f.text("Received By", receipt.Actor)
		}
	}
	return StepData{Timestamp: bookedTime(set), Description: description, Fields: f.fields}
}

func receivedData(set *domain.RawEventSet) StepData {
	f := fieldList{}
	description := "Received at OCL"
	if receipt, ok := set.Group(domain.GroupReceived); ok {
		f.text("Branch", receipt.Location)
		f.text("Received By", receipt.Actor)
		f.text("Notes", receipt.Note)
		if receipt.Location != "" {
			description = "Received at " + receipt.Location
		}
	}
	ts := receivedTime(set)
	f.time("Received At", ts)
	return StepData{Timestamp: ts, Description: description, Fields: f.fields}
}

func inTransitData(set *domain.RawEventSet) StepData {
	f := fieldList{}
	description := "Shipment in transit"
	if transit, ok := set.Group(domain.GroupInTransit); ok {
		f.text("Transit Location", transit.Location)
		f.text("Vehicle", transit.Actor)
		if transit.Location != "" {
			description = "In transit via " + transit.Location
		}
	}
	if hub, ok := set.Group(domain.GroupReachedHub); ok {
		f.text("Current Hub", hub.Location)
		f.time("Hub Scan Time", hub.Timestamp)
		if hub.Location != "" {
			description = "Reached " + hub.Location
		}
	} else if entry, ok := set.LatestLog("reached_hub"); ok && entry.Location != "" {
		f.text("Current Hub", entry.Location)
	}
	return StepData{Timestamp: inTransitTime(set), Description: description, Fields: f.fields}
}

func outForDeliveryData(set *domain.RawEventSet) StepData {
	f := fieldList{}
	description := "Out for delivery"
	courier := ""
	if ofd, ok := set.Group(domain.GroupOutForDelivery); ok {
		courier = ofd.Actor
	}
	if assigned, ok := set.Group(domain.GroupAssigned); ok {
		if courier == "" {
			courier = assigned.Actor
		}
		f.text("Courier", courier)
		f.add("Courier Phone", assigned.Contact, domain.FormatPhone)
		f.time("Assigned At", assigned.Timestamp)
		f.text("Dispatch Hub", assigned.Location)
	} else {
		f.text("Courier", courier)
	}
	if courier != "" {
		description = "Out for delivery with " + courier
	}
	return StepData{Timestamp: outForDeliveryTime(set), Description: description, Fields: f.fields}
}

func deliveredData(set *domain.RawEventSet, current domain.Step) StepData {
	if current != domain.StepDelivered {
		return StepData{Description: pendingDescription}
	}
	ts := deliveredTime(set, current)
	f := fieldList{}
	f.text("Received By", set.Delivery.Recipient)
	if amount := set.Delivery.AmountCollected; amount != nil {
		f.add("Amount Collected", strconv.FormatFloat(*amount, 'f', 2, 64), domain.FormatCurrency)
	}
	f.time("Delivered At", ts)
	if ev, ok := set.Group(domain.GroupDelivered); ok {
		f.text("Delivery Location", ev.Location)
	}

	description := "Shipment delivered"
	if set.Delivery.Recipient != "" {
		description = "Delivered to " + set.Delivery.Recipient
	}
	return StepData{Timestamp: ts, Description: description, Fields: f.fields}
}

func undeliveredData(set *domain.RawEventSet, current domain.Step) StepData {
	if current != domain.StepUndelivered {
		return StepData{Description: pendingDescription}
	}
	f := fieldList{}
	f.add("Attempts", strconv.Itoa(len(set.Attempts)), domain.FormatCount)

	description := "Delivery could not be completed"
	if last, ok := set.LastAttempt(); ok {
		f.text("Last Failure Reason", last.Reason)
		f.text("Last Attempt Location", last.Location)
		f.text("Agent", last.Agent)
		f.time("Last Attempt At", last.Timestamp)
		if last.Reason != "" {
			description = "Delivery attempt failed: " + last.Reason
		}
	}
	return StepData{Timestamp: undeliveredTime(set), Description: description, Fields: f.fields}
}

// fieldList accumulates fields, skipping empty values.
type fieldList struct {
	fields []domain.Field
}

func (l *fieldList) add(label, value, format string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	l.fields = append(l.fields, domain.Field{Label: label, Value: value, Format: format})
}

func (l *fieldList) text(label, value string) {
	l.add(label, value, "")
}

func (l *fieldList) time(label string, t *time.Time) {
	if t == nil {
		return
	}
	l.add(label, t.UTC().Format(time.RFC3339), domain.FormatDateTime)
}

func routeSummary(origin, destination string) string {
	switch {
	case origin != "" && destination != "":
		return fmt.Sprintf("%s → %s", origin, destination)
	case origin != "":
		return origin
	default:
		return destination
	}
}

func nonNilFields(fields []domain.Field) []domain.Field {
	if fields == nil {
		return []domain.Field{}
	}
	return fields
}
