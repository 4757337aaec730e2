package domain

// CourierAvailability represents whether a courier can take new assignments.
type CourierAvailability string

// Courier represents a delivery courier (motorizado) bound to a signed-in user.
type Courier struct {
	ID            string
	UserID        string
	Email         string
	Name          string
	Phone         string
	Document      string
	VehiclePlate  string
	VehicleType   string
	Availability  CourierAvailability
	Rating        float64
	TotalDelivery int
	Active        bool
}
