package domain

import (
	"strings"
	"time"
	"unicode"
)

// GroupKey names the kind of action that produced an event.
type GroupKey string

const (
	GroupBooking        GroupKey = "booking"
	GroupPickup         GroupKey = "pickup"
	GroupReceived       GroupKey = "receivedAtHub"
	GroupInTransit      GroupKey = "intransit"
	GroupReachedHub     GroupKey = "reachedHub"
	GroupAssigned       GroupKey = "assignedToCourier"
	GroupOutForDelivery GroupKey = "outForDelivery"
	GroupDelivered      GroupKey = "delivered"
)

// GroupOrder is the lifecycle order of action groups, used wherever groups are enumerated.
var GroupOrder = []GroupKey{
	GroupBooking,
	GroupPickup,
	GroupReceived,
	GroupInTransit,
	GroupReachedHub,
	GroupAssigned,
	GroupOutForDelivery,
	GroupDelivered,
}

// RawEvent is the authoritative record of one action group.
type RawEvent struct {
	Group GroupKey
	// Status is the movement status the group stands for, e.g. "pickup" or "reached_hub".
	Status    string
	Timestamp *time.Time
	Location  string
	Actor     string
	Contact   string
	Note      string
}

// Log origins.
const (
	LogStatusHistory = "statusHistory"
	LogHistory       = "history"
)

// LogEntry is one line of the combined statusHistory/history log.
type LogEntry struct {
	// Status is the folded movement status; RawStatus is what was stored.
	Status    string
	RawStatus string
	Timestamp *time.Time
	Note      string
	Location  string
	Origin    string
}

// Attempt is a failed delivery attempt.
type Attempt struct {
	Timestamp *time.Time
	Reason    string
	Location  string
	Agent     string
}

// DeliveryDetails holds what the consignee side recorded on delivery.
type DeliveryDetails struct {
	Recipient       string
	AmountCollected *float64
	ProofImages     []string
}

// ShipmentDetails is descriptive booking metadata.
type ShipmentDetails struct {
	ServiceType       string
	PackageCount      int
	PaymentMethod     string
	Origin            string
	Destination       string
	BookingDate       *time.Time
	EstimatedDelivery *time.Time
	LastUpdated       *time.Time
	PackageImages     []string
}

// RawEventSet is a source document normalized into one shape. Everything downstream of
// extraction reads only this.
type RawEventSet struct {
	Kind              SourceKind
	ConsignmentNumber int64
	BookingReference  string
	// CurrentStatus is the stored top-level status, normalized.
	CurrentStatus string
	Details       ShipmentDetails
	Groups        map[GroupKey]RawEvent
	// Log is the merged statusHistory and history, ascending by time, untimed entries last.
	Log      []LogEntry
	Attempts []Attempt
	Delivery DeliveryDetails
}

// Group returns the event recorded for key.
func (s *RawEventSet) Group(key GroupKey) (RawEvent, bool) {
	ev, ok := s.Groups[key]
	return ev, ok
}

// GroupTime returns the timestamp of key's event, or nil.
func (s *RawEventSet) GroupTime(key GroupKey) *time.Time {
	if ev, ok := s.Groups[key]; ok {
		return ev.Timestamp
	}
	return nil
}

// Events returns the recorded groups in lifecycle order.
func (s *RawEventSet) Events() []RawEvent {
	events := make([]RawEvent, 0, len(s.Groups))
	for _, key := range GroupOrder {
		if ev, ok := s.Groups[key]; ok {
			events = append(events, ev)
		}
	}
	return events
}

// LatestLog returns the most recent timed log entry whose folded status is one of statuses.
func (s *RawEventSet) LatestLog(statuses ...string) (LogEntry, bool) {
	for i := len(s.Log) - 1; i >= 0; i-- {
		entry := s.Log[i]
		if entry.Timestamp == nil {
			continue
		}
		for _, status := range statuses {
			if entry.Status == status {
				return entry, true
			}
		}
	}
	return LogEntry{}, false
}

// LastAttempt returns the most recent failed delivery attempt.
func (s *RawEventSet) LastAttempt() (Attempt, bool) {
	return Last(s.Attempts)
}

// Last returns the final element of items. Repeatable actions are stored as arrays
// where only the most recent entry is authoritative.
func Last[T any](items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[len(items)-1], true
}

// NormalizeStatus lower-cases and trims a raw status and joins words separated by
// whitespace or '-' with '_', so "Reached-Hub" and "reached hub" both become "reached_hub".
func NormalizeStatus(raw string) string {
	words := strings.FieldsFunc(strings.ToLower(raw), func(r rune) bool {
		return r == '-' || unicode.IsSpace(r)
	})
	return strings.Join(words, "_")
}
