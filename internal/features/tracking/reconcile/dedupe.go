package reconcile

import (
	"sort"
	"strconv"
	"time"
	"unicode/utf8"

	"courier-tracker/internal/features/tracking/domain"
)

// DefaultDedupeWindow is how close two same-status events must be to count as one.
const DefaultDedupeWindow = 120 * time.Second

// Deduplicator collapses near-duplicate movement events.
type Deduplicator struct {
	// Window is the maximum distance between duplicates.
	Window time.Duration
	// Fold maps a status onto its canonical form. Nil compares statuses as-is.
	Fold func(string) string
}

// Dedupe merges events whose folded status matches and whose timestamps lie within the
// window of the last kept event of that status. The merged event is whichever has the
// longer label; ties keep the first seen. Events without a timestamp are never merged.
// The result is ascending by timestamp and Dedupe(Dedupe(x)) == Dedupe(x).
func (d Deduplicator) Dedupe(events []domain.MovementEvent) []domain.MovementEvent {
	sorted := sortMovement(events)
	out := make([]domain.MovementEvent, 0, len(sorted))
	lastByStatus := make(map[string]int)

	for _, ev := range sorted {
		if ev.Timestamp == nil {
			out = append(out, ev)
			continue
		}
		key := d.fold(ev.Status)
		if idx, ok := lastByStatus[key]; ok && within(*out[idx].Timestamp, *ev.Timestamp, d.Window) {
			if utf8.RuneCountInString(ev.Label) > utf8.RuneCountInString(out[idx].Label) {
				out[idx] = ev
			}
			continue
		}
		lastByStatus[key] = len(out)
		out = append(out, ev)
	}

	return sortMovement(out)
}

func (d Deduplicator) fold(status string) string {
	if d.Fold == nil {
		return status
	}
	return d.Fold(status)
}

// ExactDedupe drops events identical in status, label and timestamp, keeping the first.
func ExactDedupe(events []domain.MovementEvent) []domain.MovementEvent {
	seen := make(map[string]struct{}, len(events))
	out := make([]domain.MovementEvent, 0, len(events))
	for _, ev := range events {
		key := ev.Status + "\x00" + ev.Label + "\x00" + timeKey(ev.Timestamp)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, ev)
	}
	return out
}

func sortMovement(events []domain.MovementEvent) []domain.MovementEvent {
	out := make([]domain.MovementEvent, len(events))
	copy(out, events)
	sort.SliceStable(out, func(i, j int) bool {
		return timeLess(out[i].Timestamp, out[j].Timestamp)
	})
	return out
}

func within(a, b time.Time, window time.Duration) bool {
	diff := b.Sub(a)
	if diff < 0 {
		diff = -diff
	}
	return diff <= window
}

func timeKey(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return strconv.FormatInt(t.UnixNano(), 10)
}
