package reconcile

import (
	"time"

	"courier-tracker/internal/features/tracking/domain"
)

var base = time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

func at(offset time.Duration) domain.Timestamp {
	return domain.NewTimestamp(base.Add(offset))
}

func tp(offset time.Duration) *time.Time {
	t := base.Add(offset)
	return &t
}

func fieldValue(fields []domain.Field, label string) (string, bool) {
	for _, f := range fields {
		if f.Label == label {
			return f.Value, true
		}
	}
	return "", false
}

// outForDeliveryTracking is a corporate shipment out for delivery with a stray delivery time.
func outForDeliveryTracking() *domain.TrackingDocument {
	return &domain.TrackingDocument{
		ConsignmentNumber: 1000101,
		BookingReference:  "1000101",
		Status:            "OFP",
		ServiceType:       "Express",
		PackageCount:      2,
		PaymentMethod:     "Prepaid",
		Origin:            "Mumbai",
		Destination:       "Pune",
		BookingDate:       at(0),
		Pickup:            &domain.PickupRecord{PickedAt: at(time.Hour), Location: "Andheri", PickedBy: "Kiran"},
		ReachedHub: []domain.HubScan{
			{HubName: "Thane", ScannedAt: at(5 * time.Hour)},
			{HubName: "Pune Central", ScannedAt: at(10 * time.Hour)},
		},
		AssignedToCourier: []domain.CourierAssignment{
			{CourierName: "Sunil", AssignedAt: at(18 * time.Hour)},
			{CourierName: "Ravi", CourierPhone: "+91-9800000000", AssignedAt: at(19 * time.Hour), Hub: "Pune Central"},
		},
		OutForDelivery: &domain.OutForDeliveryRecord{StartedAt: at(20 * time.Hour)},
		Delivered:      &domain.DeliveryRecord{DeliveredAt: at(30 * time.Hour), ReceivedBy: "Meera", ProofImages: []string{"pod.jpg"}},
		PackageImages:  []string{"box.jpg"},
		StatusHistory: []domain.StatusHistoryEntry{
			{Status: "picked", Timestamp: at(time.Hour + 30*time.Second), Notes: "picked from sender"},
			{Status: "delivered", Timestamp: at(30 * time.Hour)},
		},
	}
}

// deliveredCustomer is a direct booking delivered without a deliveredAt on the record.
func deliveredCustomer() *domain.CustomerDocument {
	amount := 450.0
	return &domain.CustomerDocument{
		ConsignmentNumber: 1000202,
		BookingReference:  "CB-1000202",
		CurrentStatus:     "Delivered",
		ServiceType:       "Standard",
		PackageCount:      1,
		PaymentMethod:     "COD",
		Origin:            "Delhi",
		Destination:       "Jaipur",
		CreatedAt:         at(0),
		Pickup:            &domain.PickupRecord{PickedAt: at(2 * time.Hour), Location: "Karol Bagh"},
		InTransit:         &domain.TransitRecord{CompletedAt: at(12 * time.Hour), Location: "NH48", Vehicle: "DL-1C-4455"},
		OutForDelivery:    &domain.OutForDeliveryRecord{StartedAt: at(40 * time.Hour), CourierName: "Imran"},
		Delivered:         &domain.DeliveryRecord{ReceivedBy: "Asha", AmountCollected: &amount, ProofImages: []string{"sign.png"}},
		StatusHistory: []domain.StatusHistoryEntry{
			{Status: "booked", Timestamp: at(0)},
			{Status: "delivered", Timestamp: at(48 * time.Hour), Notes: "handed to Asha"},
		},
		History: []domain.HistoryEntry{
			{Status: "intransit", Meta: map[string]any{"timestamp": "2024-05-01T20:01:00Z", "location": "Ajmer"}},
		},
	}
}

// undeliveredTracking is a corporate shipment whose last two delivery attempts failed.
func undeliveredTracking() *domain.TrackingDocument {
	return &domain.TrackingDocument{
		ConsignmentNumber: 1000303,
		BookingReference:  "1000303",
		Status:            "undelivered",
		BookingDate:       at(0),
		InTransit:         &domain.TransitRecord{CompletedAt: at(6 * time.Hour)},
		OutForDelivery:    &domain.OutForDeliveryRecord{StartedAt: at(24 * time.Hour), CourierName: "Ravi"},
		UnreachableAttempts: []domain.DeliveryAttempt{
			{AttemptedAt: at(30 * time.Hour), Reason: "Customer not available", Location: "Baner", AgentName: "Ravi"},
			{AttemptedAt: at(54 * time.Hour), Reason: "Door locked", Location: "Baner", AgentName: "Sunil"},
		},
	}
}

// medicineInTransit has only a hub arrival and a stale delivered log line.
func medicineInTransit() *domain.MedicineDocument {
	return &domain.MedicineDocument{
		ConsignmentNumber: 1000404,
		BookingReference:  "MD-1000404",
		Status:            "dispatched",
		MedicineName:      "Insulin",
		Boxes:             3,
		FromCity:          "Chennai",
		ToCity:            "Madurai",
		CreatedAt:         at(0),
		HubArrivals:       []domain.HubScan{{HubName: "Trichy", ScannedAt: at(8 * time.Hour)}},
		Delivery:          &domain.DeliveryRecord{DeliveredAt: at(9 * time.Hour)},
		History: []domain.HistoryEntry{
			{Status: "delivered", Timestamp: at(9 * time.Hour)},
			{Status: "reachedhub", Timestamp: at(8*time.Hour + time.Minute), Meta: map[string]any{"location": "Trichy"}},
		},
	}
}

func allFixtures() []domain.SourceDocument {
	return []domain.SourceDocument{
		outForDeliveryTracking(),
		deliveredCustomer(),
		undeliveredTracking(),
		medicineInTransit(),
		&domain.CustomerDocument{ConsignmentNumber: 9, CurrentStatus: "???"},
		&domain.TrackingDocument{ConsignmentNumber: 10, Status: "delivered"},
	}
}
