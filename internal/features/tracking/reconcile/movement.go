package reconcile

import (
	"courier-tracker/internal/features/tracking/classifier"
	"courier-tracker/internal/features/tracking/domain"
)

// ComposeMovement lists the shipment's timestamped facts: recorded action groups,
// failed delivery attempts and the combined log. Untimed facts are dropped, near
// duplicates collapse through d, exact duplicates are removed, and the result is
// ascending by timestamp. It also reports how many events were collapsed.
func ComposeMovement(set *domain.RawEventSet, table *classifier.Table, d Deduplicator) ([]domain.MovementEvent, int) {
	var events []domain.MovementEvent

	for _, ev := range set.Events() {
		if ev.Timestamp == nil {
			continue
		}
		events = append(events, domain.MovementEvent{
			Status:      ev.Status,
			Label:       withLocation(table.Label(ev.Status), ev.Location),
			Timestamp:   ev.Timestamp,
			Location:    ev.Location,
			Description: ev.Note,
		})
	}

	for _, a := range set.Attempts {
		if a.Timestamp == nil {
			continue
		}
		label := table.Label("undelivered")
		if a.Reason != "" {
			label += ": " + a.Reason
		}
		events = append(events, domain.MovementEvent{
			Status:      "undelivered",
			Label:       label,
			Timestamp:   a.Timestamp,
			Location:    a.Location,
			Description: a.Agent,
		})
	}

	for _, entry := range set.Log {
		if entry.Timestamp == nil {
			continue
		}
		events = append(events, domain.MovementEvent{
			Status:      entry.Status,
			Label:       withLocation(table.Label(entry.Status), entry.Location),
			Timestamp:   entry.Timestamp,
			Location:    entry.Location,
			Description: entry.Note,
		})
	}

	out := ExactDedupe(d.Dedupe(events))
	return out, len(events) - len(out)
}

func withLocation(label, location string) string {
	if location == "" {
		return label
	}
	return label + " at " + location
}
