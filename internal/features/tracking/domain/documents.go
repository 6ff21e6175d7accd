package domain

// SourceKind identifies which stored document shape holds a shipment's event log.
type SourceKind string

const (
	// SourceTracking is the corporate/admin tracking record.
	SourceTracking SourceKind = "tracking"
	// SourceMedicine is a medicine-delivery booking.
	SourceMedicine SourceKind = "medicine"
	// SourceCustomer is a direct customer booking.
	SourceCustomer SourceKind = "customer"
)

// LookupOrder is the order in which sources are consulted for an identifier.
var LookupOrder = []SourceKind{SourceTracking, SourceMedicine, SourceCustomer}

// SourceDocument is one of TrackingDocument, MedicineDocument or CustomerDocument.
type SourceDocument interface {
	Kind() SourceKind
	Identity() (consignmentNumber int64, bookingReference string)
	sourceDocument()
}

// PickupRecord is the first-mile collection scan.
type PickupRecord struct {
	PickedAt Timestamp `json:"pickedAt"`
	Location string    `json:"location"`
	PickedBy string    `json:"pickedBy"`
	Notes    string    `json:"notes"`
}

// ReceiptRecord is the intake scan at an OCL office.
type ReceiptRecord struct {
	ReceivedAt Timestamp `json:"receivedAt"`
	Branch     string    `json:"branch"`
	ReceivedBy string    `json:"receivedBy"`
	Notes      string    `json:"notes"`
}

// TransitRecord marks line-haul movement.
type TransitRecord struct {
	CompletedAt Timestamp `json:"completedAt"`
	Location    string    `json:"location"`
	Vehicle     string    `json:"vehicle"`
	Notes       string    `json:"notes"`
}

// HubScan is one arrival scan at a hub. Stored as a repeatable array.
type HubScan struct {
	HubName   string    `json:"hubName"`
	ScannedAt Timestamp `json:"scannedAt"`
	ScannedBy string    `json:"scannedBy"`
	Notes     string    `json:"notes"`
}

// CourierAssignment hands the parcel to a delivery courier. Stored as a repeatable array.
type CourierAssignment struct {
	CourierName  string    `json:"courierName"`
	CourierPhone string    `json:"courierPhone"`
	AssignedAt   Timestamp `json:"assignedAt"`
	Hub          string    `json:"hub"`
}

// OutForDeliveryRecord is the last-mile dispatch.
type OutForDeliveryRecord struct {
	StartedAt   Timestamp `json:"startedAt"`
	CourierName string    `json:"courierName"`
	Location    string    `json:"location"`
	Notes       string    `json:"notes"`
}

// DeliveryRecord is the proof of delivery.
type DeliveryRecord struct {
	DeliveredAt     Timestamp `json:"deliveredAt"`
	ReceivedBy      string    `json:"receivedBy"`
	AmountCollected *float64  `json:"amountCollected"`
	Location        string    `json:"location"`
	ProofImages     []string  `json:"proofImages"`
	Notes           string    `json:"notes"`
}

// DeliveryAttempt is one failed delivery attempt.
type DeliveryAttempt struct {
	AttemptedAt Timestamp `json:"attemptedAt"`
	Reason      string    `json:"reason"`
	Location    string    `json:"location"`
	AgentName   string    `json:"agentName"`
}

// StatusHistoryEntry is a structured status log line.
type StatusHistoryEntry struct {
	Status    string    `json:"status"`
	Timestamp Timestamp `json:"timestamp"`
	Notes     string    `json:"notes"`
}

// HistoryEntry is a free-form log line; the time may live in Meta["timestamp"].
type HistoryEntry struct {
	Status    string         `json:"status"`
	Timestamp Timestamp      `json:"timestamp"`
	Notes     string         `json:"notes"`
	Meta      map[string]any `json:"meta"`
}

// TrackingDocument is the corporate/admin tracking record.
type TrackingDocument struct {
	ConsignmentNumber   int64                 `json:"consignmentNumber"`
	BookingReference    string                `json:"bookingReference"`
	Status              string                `json:"status"`
	CorporateName       string                `json:"corporateName"`
	ServiceType         string                `json:"serviceType"`
	PackageCount        int                   `json:"packageCount"`
	PaymentMethod       string                `json:"paymentMethod"`
	Origin              string                `json:"origin"`
	Destination         string                `json:"destination"`
	BookingDate         Timestamp             `json:"bookingDate"`
	EstimatedDelivery   Timestamp             `json:"estimatedDelivery"`
	UpdatedAt           Timestamp             `json:"updatedAt"`
	PackageImages       []string              `json:"packageImages"`
	Pickup              *PickupRecord         `json:"pickup"`
	ReachedHub          []HubScan             `json:"reachedHub"`
	InTransit           *TransitRecord        `json:"intransit"`
	AssignedToCourier   []CourierAssignment   `json:"assignedToCourier"`
	OutForDelivery      *OutForDeliveryRecord `json:"outForDelivery"`
	Delivered           *DeliveryRecord       `json:"delivered"`
	UnreachableAttempts []DeliveryAttempt     `json:"unreachableAttempts"`
	StatusHistory       []StatusHistoryEntry  `json:"statusHistory"`
	History             []HistoryEntry        `json:"history"`
}

func (d *TrackingDocument) Kind() SourceKind { return SourceTracking }

func (d *TrackingDocument) Identity() (int64, string) {
	return d.ConsignmentNumber, d.BookingReference
}

func (d *TrackingDocument) sourceDocument() {}

// MedicineDocument is a medicine-delivery booking.
type MedicineDocument struct {
	ConsignmentNumber int64                 `json:"consignmentNumber"`
	BookingReference  string                `json:"bookingReference"`
	Status            string                `json:"status"`
	MedicineName      string                `json:"medicineName"`
	Boxes             int                   `json:"boxes"`
	PaymentMode       string                `json:"paymentMode"`
	FromCity          string                `json:"fromCity"`
	ToCity            string                `json:"toCity"`
	CreatedAt         Timestamp             `json:"createdAt"`
	ExpectedBy        Timestamp             `json:"expectedBy"`
	UpdatedAt         Timestamp             `json:"updatedAt"`
	Images            []string              `json:"images"`
	PickedUp          *PickupRecord         `json:"pickedUp"`
	Dispatch          *TransitRecord        `json:"dispatch"`
	HubArrivals       []HubScan             `json:"hubArrivals"`
	Assignments       []CourierAssignment   `json:"assignments"`
	OutForDelivery    *OutForDeliveryRecord `json:"outForDelivery"`
	Delivery          *DeliveryRecord       `json:"delivery"`
	Unreachable       []DeliveryAttempt     `json:"unreachable"`
	StatusHistory     []StatusHistoryEntry  `json:"statusHistory"`
	History           []HistoryEntry        `json:"history"`
}

func (d *MedicineDocument) Kind() SourceKind { return SourceMedicine }

func (d *MedicineDocument) Identity() (int64, string) {
	return d.ConsignmentNumber, d.BookingReference
}

func (d *MedicineDocument) sourceDocument() {}

// CustomerDocument is a booking placed directly by a customer.
type CustomerDocument struct {
	ConsignmentNumber    int64                 `json:"consignmentNumber"`
	BookingReference     string                `json:"bookingReference"`
	CurrentStatus        string                `json:"currentStatus"`
	ServiceType          string                `json:"serviceType"`
	PackageCount         int                   `json:"packageCount"`
	PaymentMethod        string                `json:"paymentMethod"`
	Origin               string                `json:"origin"`
	Destination          string                `json:"destination"`
	CreatedAt            Timestamp             `json:"createdAt"`
	ExpectedDeliveryDate Timestamp             `json:"expectedDeliveryDate"`
	UpdatedAt            Timestamp             `json:"updatedAt"`
	PackageImages        []string              `json:"packageImages"`
	Pickup               *PickupRecord         `json:"pickup"`
	ReceivedAtOcl        *ReceiptRecord        `json:"receivedAtOcl"`
	InTransit            *TransitRecord        `json:"intransit"`
	ReachedHub           []HubScan             `json:"reachedHub"`
	AssignedCourier      []CourierAssignment   `json:"assignedCourier"`
	OutForDelivery       *OutForDeliveryRecord `json:"outForDelivery"`
	Delivered            *DeliveryRecord       `json:"delivered"`
	DeliveryAttempts     []DeliveryAttempt     `json:"deliveryAttempts"`
	StatusHistory        []StatusHistoryEntry  `json:"statusHistory"`
	History              []HistoryEntry        `json:"history"`
}

func (d *CustomerDocument) Kind() SourceKind { return SourceCustomer }

func (d *CustomerDocument) Identity() (int64, string) {
	return d.ConsignmentNumber, d.BookingReference
}

func (d *CustomerDocument) sourceDocument() {}
