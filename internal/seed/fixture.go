package seed

// File is the decoded seed document.
type File struct {
	Couriers    []CourierFixture    `mapstructure:"couriers"`
	Credentials []CredentialFixture `mapstructure:"credentials"`
	Assignments []AssignmentFixture `mapstructure:"assignments"`
	Deliveries  []DeliveryFixture   `mapstructure:"deliveries"`
	Statistics  []StatisticsFixture `mapstructure:"statistics"`
}

// CourierFixture seeds a courier profile.
type CourierFixture struct {
	ID            string  `mapstructure:"id"`
	UserID        string  `mapstructure:"user_id"`
	Email         string  `mapstructure:"email"`
	Name          string  `mapstructure:"name"`
	Phone         string  `mapstructure:"phone"`
	Document      string  `mapstructure:"document"`
	VehiclePlate  string  `mapstructure:"vehicle_plate"`
	VehicleType   string  `mapstructure:"vehicle_type"`
	Availability  string  `mapstructure:"availability"`
	Rating        float64 `mapstructure:"rating"`
	TotalDelivery int     `mapstructure:"total_delivery"`
	Active        bool    `mapstructure:"active"`
}

// CredentialFixture seeds a sign-in identity.
type CredentialFixture struct {
	UserID    string `mapstructure:"user_id"`
	Email     string `mapstructure:"email"`
	Password  string `mapstructure:"password"`
	CourierID string `mapstructure:"courier_id"`
}

// AddressFixture seeds an address.
type AddressFixture struct {
	Line      string `mapstructure:"line"`
	Reference string `mapstructure:"reference"`
}

// OrderFixture seeds an order linked to an assignment.
type OrderFixture struct {
	ID               string         `mapstructure:"id"`
	Number           string         `mapstructure:"number"`
	CustomerName     string         `mapstructure:"customer_name"`
	CustomerPhone    string         `mapstructure:"customer_phone"`
	Pickup           AddressFixture `mapstructure:"pickup"`
	DropOff          AddressFixture `mapstructure:"drop_off"`
	Description      string         `mapstructure:"description"`
	ItemValue        float64        `mapstructure:"item_value"`
	DeliveryFee      float64        `mapstructure:"delivery_fee"`
	PaymentMethod    string         `mapstructure:"payment_method"`
	Notes            string         `mapstructure:"notes"`
	Status           string         `mapstructure:"status"`
	Priority         string         `mapstructure:"priority"`
	EstimatedMinutes int            `mapstructure:"estimated_minutes"`
	CreatedAt        string         `mapstructure:"created_at"`
	UpdatedAt        string         `mapstructure:"updated_at"`
}

// AssignmentFixture seeds an assignment.
type AssignmentFixture struct {
	ID          string       `mapstructure:"id"`
	CourierID   string       `mapstructure:"courier_id"`
	Status      string       `mapstructure:"status"`
	AssignedAt  string       `mapstructure:"assigned_at"`
	RespondedAt string       `mapstructure:"responded_at"`
	CompletedAt string       `mapstructure:"completed_at"`
	Notes       string       `mapstructure:"notes"`
	Order       OrderFixture `mapstructure:"order"`
}

// DeliveryFixture seeds a delivery history record.
type DeliveryFixture struct {
	ID              string   `mapstructure:"id"`
	CourierID       string   `mapstructure:"courier_id"`
	OrderID         string   `mapstructure:"order_id"`
	AssignmentID    string   `mapstructure:"assignment_id"`
	OrderNumber     string   `mapstructure:"order_number"`
	TimeTotal       int      `mapstructure:"time_total"`
	Distance        *float64 `mapstructure:"distance"`
	ValueEarned     float64  `mapstructure:"value_earned"`
	CustomerRating  *int     `mapstructure:"customer_rating"`
	CustomerComment string   `mapstructure:"customer_comment"`
	DeliveredAt     string   `mapstructure:"delivered_at"`
}

// StatisticsFixture seeds a daily aggregate. An empty Day means today.
type StatisticsFixture struct {
	CourierID      string  `mapstructure:"courier_id"`
	Day            string  `mapstructure:"day"`
	TotalDelivered int     `mapstructure:"total_delivered"`
	TotalEarned    float64 `mapstructure:"total_earned"`
	TotalWorkTime  int     `mapstructure:"total_work_time"`
	TotalDistance  float64 `mapstructure:"total_distance"`
	AverageRating  float64 `mapstructure:"average_rating"`
}
