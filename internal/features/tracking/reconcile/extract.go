package reconcile

import (
	"sort"
	"strings"
	"time"

	"courier-tracker/internal/features/tracking/classifier"
	"courier-tracker/internal/features/tracking/domain"
)

// Extract normalizes a source document into a RawEventSet.
//
// Repeatable actions stored as arrays contribute only their last element. The
// statusHistory and history logs are merged into one time-sorted log. A delivered
// record's time is honored only when the stored status itself says delivered, and
// logged delivered entries are dropped otherwise.
func Extract(doc domain.SourceDocument, table *classifier.Table) domain.RawEventSet {
	switch d := doc.(type) {
	case *domain.TrackingDocument:
		return extractTracking(d, table)
	case *domain.MedicineDocument:
		return extractMedicine(d, table)
	case *domain.CustomerDocument:
		return extractCustomer(d, table)
	}
	return domain.RawEventSet{Groups: map[domain.GroupKey]domain.RawEvent{}}
}

func extractTracking(d *domain.TrackingDocument, table *classifier.Table) domain.RawEventSet {
	b := newExtraction(domain.SourceTracking, d.ConsignmentNumber, d.BookingReference, d.Status, table)
	b.set.Details = domain.ShipmentDetails{
		ServiceType:       d.ServiceType,
		PackageCount:      d.PackageCount,
		PaymentMethod:     d.PaymentMethod,
		Origin:            d.Origin,
		Destination:       d.Destination,
		BookingDate:       d.BookingDate.Ptr(),
		EstimatedDelivery: d.EstimatedDelivery.Ptr(),
		LastUpdated:       d.UpdatedAt.Ptr(),
		PackageImages:     nonNil(d.PackageImages),
	}
	b.booking(d.BookingDate, d.Origin)
	b.pickup(d.Pickup)
	b.hubScan(d.ReachedHub)
	b.transit(d.InTransit)
	b.assignment(d.AssignedToCourier)
	b.outForDelivery(d.OutForDelivery)
	b.delivered(d.Delivered)
	b.attempts(d.UnreachableAttempts)
	b.logs(d.StatusHistory, d.History)
	return b.set
}

func extractMedicine(d *domain.MedicineDocument, table *classifier.Table) domain.RawEventSet {
	b := newExtraction(domain.SourceMedicine, d.ConsignmentNumber, d.BookingReference, d.Status, table)
	serviceType := "Medicine delivery"
	if d.MedicineName != "" {
		serviceType += " (" + d.MedicineName + ")"
	}
	b.set.Details = domain.ShipmentDetails{
		ServiceType:       serviceType,
		PackageCount:      d.Boxes,
		PaymentMethod:     d.PaymentMode,
		Origin:            d.FromCity,
		Destination:       d.ToCity,
		BookingDate:       d.CreatedAt.Ptr(),
		EstimatedDelivery: d.ExpectedBy.Ptr(),
		LastUpdated:       d.UpdatedAt.Ptr(),
		PackageImages:     nonNil(d.Images),
	}
	b.booking(d.CreatedAt, d.FromCity)
	b.pickup(d.PickedUp)
	b.hubScan(d.HubArrivals)
	b.transit(d.Dispatch)
	b.assignment(d.Assignments)
	b.outForDelivery(d.OutForDelivery)
	b.delivered(d.Delivery)
	b.attempts(d.Unreachable)
	b.logs(d.StatusHistory, d.History)
	return b.set
}

func extractCustomer(d *domain.CustomerDocument, table *classifier.Table) domain.RawEventSet {
	b := newExtraction(domain.SourceCustomer, d.ConsignmentNumber, d.BookingReference, d.CurrentStatus, table)
	b.set.Details = domain.ShipmentDetails{
		ServiceType:       d.ServiceType,
		PackageCount:      d.PackageCount,
		PaymentMethod:     d.PaymentMethod,
		Origin:            d.Origin,
		Destination:       d.Destination,
		BookingDate:       d.CreatedAt.Ptr(),
		EstimatedDelivery: d.ExpectedDeliveryDate.Ptr(),
		LastUpdated:       d.UpdatedAt.Ptr(),
		PackageImages:     nonNil(d.PackageImages),
	}
	b.booking(d.CreatedAt, d.Origin)
	b.pickup(d.Pickup)
	b.receipt(d.ReceivedAtOcl)
	b.hubScan(d.ReachedHub)
	b.transit(d.InTransit)
	b.assignment(d.AssignedCourier)
	b.outForDelivery(d.OutForDelivery)
	b.delivered(d.Delivered)
	b.attempts(d.DeliveryAttempts)
	b.logs(d.StatusHistory, d.History)
	return b.set
}

type extraction struct {
	set   domain.RawEventSet
	table *classifier.Table
	// terminal is the classified stored status, used for the self-consistency rules.
	terminal domain.Step
}

func newExtraction(kind domain.SourceKind, number int64, reference, status string, table *classifier.Table) *extraction {
	return &extraction{
		set: domain.RawEventSet{
			Kind:              kind,
			ConsignmentNumber: number,
			BookingReference:  reference,
			CurrentStatus:     domain.NormalizeStatus(status),
			Groups:            make(map[domain.GroupKey]domain.RawEvent),
		},
		table:    table,
		terminal: table.Classify(status, kind),
	}
}

func (b *extraction) add(ev domain.RawEvent) {
	b.set.Groups[ev.Group] = ev
}

func (b *extraction) booking(at domain.Timestamp, origin string) {
	if !at.Valid {
		return
	}
	b.add(domain.RawEvent{Group: domain.GroupBooking, Status: "booked", Timestamp: at.Ptr(), Location: origin})
}

func (b *extraction) pickup(p *domain.PickupRecord) {
	if p == nil {
		return
	}
	b.add(domain.RawEvent{
		Group:     domain.GroupPickup,
		Status:    "pickup",
		Timestamp: p.PickedAt.Ptr(),
		Location:  p.Location,
		Actor:     p.PickedBy,
		Note:      p.Notes,
	})
}

func (b *extraction) receipt(r *domain.ReceiptRecord) {
	if r == nil {
		return
	}
	b.add(domain.RawEvent{
		Group:     domain.GroupReceived,
		Status:    "received",
		Timestamp: r.ReceivedAt.Ptr(),
		Location:  r.Branch,
		Actor:     r.ReceivedBy,
		Note:      r.Notes,
	})
}

func (b *extraction) transit(r *domain.TransitRecord) {
	if r == nil {
		return
	}
	b.add(domain.RawEvent{
		Group:     domain.GroupInTransit,
		Status:    "in_transit",
		Timestamp: r.CompletedAt.Ptr(),
		Location:  r.Location,
		Actor:     r.Vehicle,
		Note:      r.Notes,
	})
}

func (b *extraction) hubScan(scans []domain.HubScan) {
	scan, ok := domain.Last(scans)
	if !ok {
		return
	}
	b.add(domain.RawEvent{
		Group:     domain.GroupReachedHub,
		Status:    "reached_hub",
		Timestamp: scan.ScannedAt.Ptr(),
		Location:  scan.HubName,
		Actor:     scan.ScannedBy,
		Note:      scan.Notes,
	})
}

func (b *extraction) assignment(assignments []domain.CourierAssignment) {
	a, ok := domain.Last(assignments)
	if !ok {
		return
	}
	b.add(domain.RawEvent{
		Group:     domain.GroupAssigned,
		Status:    "assigned",
		Timestamp: a.AssignedAt.Ptr(),
		Location:  a.Hub,
		Actor:     a.CourierName,
		Contact:   a.CourierPhone,
	})
}

func (b *extraction) outForDelivery(r *domain.OutForDeliveryRecord) {
	if r == nil {
		return
	}
	b.add(domain.RawEvent{
		Group:     domain.GroupOutForDelivery,
		Status:    "out_for_delivery",
		Timestamp: r.StartedAt.Ptr(),
		Location:  r.Location,
		Actor:     r.CourierName,
		Note:      r.Notes,
	})
}

func (b *extraction) delivered(r *domain.DeliveryRecord) {
	if r == nil {
		return
	}
	ev := domain.RawEvent{
		Group:    domain.GroupDelivered,
		Status:   "delivered",
		Location: r.Location,
		Actor:    r.ReceivedBy,
		Note:     r.Notes,
	}
	if b.terminal == domain.StepDelivered {
		ev.Timestamp = r.DeliveredAt.Ptr()
		b.set.Delivery = domain.DeliveryDetails{
			Recipient:       r.ReceivedBy,
			AmountCollected: r.AmountCollected,
			ProofImages:     nonNil(r.ProofImages),
		}
	}
	b.add(ev)
}

// attempts records failed delivery attempts, which only count once the stored
// status itself is undelivered.
func (b *extraction) attempts(attempts []domain.DeliveryAttempt) {
	if b.terminal != domain.StepUndelivered {
		return
	}
	for _, a := range attempts {
		b.set.Attempts = append(b.set.Attempts, domain.Attempt{
			Timestamp: a.AttemptedAt.Ptr(),
			Reason:    a.Reason,
			Location:  a.Location,
			Agent:     a.AgentName,
		})
	}
}

func (b *extraction) logs(statusHistory []domain.StatusHistoryEntry, history []domain.HistoryEntry) {
	entries := make([]domain.LogEntry, 0, len(statusHistory)+len(history))
	for _, h := range statusHistory {
		entries = append(entries, domain.LogEntry{
			Status:    b.table.Fold(h.Status),
			RawStatus: h.Status,
			Timestamp: h.Timestamp.Ptr(),
			Note:      h.Notes,
			Origin:    domain.LogStatusHistory,
		})
	}
	for _, h := range history {
		ts := h.Timestamp
		if !ts.Valid && h.Meta != nil {
			ts = domain.ParseTimestamp(h.Meta["timestamp"])
		}
		entries = append(entries, domain.LogEntry{
			Status:    b.table.Fold(h.Status),
			RawStatus: h.Status,
			Timestamp: ts.Ptr(),
			Note:      h.Notes,
			Location:  metaString(h.Meta, "location"),
			Origin:    domain.LogHistory,
		})
	}

	kept := entries[:0]
	for _, e := range entries {
		if e.Status == "" {
			continue
		}
		if e.Status == "delivered" && b.terminal != domain.StepDelivered {
			continue
		}
		if e.Status == "undelivered" && b.terminal != domain.StepUndelivered {
			continue
		}
		kept = append(kept, e)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return timeLess(kept[i].Timestamp, kept[j].Timestamp)
	})
	b.set.Log = kept
}

// timeLess orders timestamps ascending with missing times last.
func timeLess(a, b *time.Time) bool {
	switch {
	case a == nil:
		return false
	case b == nil:
		return true
	default:
		return a.Before(*b)
	}
}

func metaString(meta map[string]any, key string) string {
	if meta == nil {
		return ""
	}
	if s, ok := meta[key].(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
