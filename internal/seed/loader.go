// Package seed loads demo fixtures into the in-memory stores.
package seed

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/viper"

	"service-motorizado/internal/apperr"
	"service-motorizado/internal/domain"
	"service-motorizado/internal/logx"
)

// Load reads a seed document from path. The format follows the file extension.
func Load(path string) (*File, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read seed file %q: %w", path, err)
	}
	return decode(v)
}

// Read reads a seed document of the given format ("yaml", "json", ...) from r.
func Read(r io.Reader, format string) (*File, error) {
	v := viper.New()
	v.SetConfigType(format)
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("read seed: %w", err)
	}
	return decode(v)
}

func decode(v *viper.Viper) (*File, error) {
	var f File
	if err := v.Unmarshal(&f); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	return &f, nil
}

type courierSink interface {
	Put(c domain.Courier) error
	AddCredential(c domain.Credential) error
}

type assignmentSink interface {
	Insert(a domain.Assignment) error
}

type historySink interface {
	Append(r domain.DeliveryRecord) error
}

type statsSink interface {
	Today() string
	Seed(s domain.DailyStatistics) error
}

// Targets are the stores a seed document is applied to.
type Targets struct {
	Couriers    courierSink
	Assignments assignmentSink
	History     historySink
	Stats       statsSink
}

// Apply converts every fixture and inserts it. It stops at the first invalid fixture.
func Apply(f *File, t Targets, logger logx.Logger) error {
	for i, c := range f.Couriers {
		courier, err := c.toDomain()
		if err != nil {
			return fmt.Errorf("courier #%d: %w", i, err)
		}
		if err := t.Couriers.Put(courier); err != nil {
			return fmt.Errorf("courier #%d: %w", i, err)
		}
	}
	for i, c := range f.Credentials {
		if err := t.Couriers.AddCredential(domain.Credential(c)); err != nil {
			return fmt.Errorf("credential #%d: %w", i, err)
		}
	}
	for i, a := range f.Assignments {
		assignment, err := a.toDomain()
		if err != nil {
			return fmt.Errorf("assignment #%d: %w", i, err)
		}
		if err := t.Assignments.Insert(assignment); err != nil {
			return fmt.Errorf("assignment #%d: %w", i, err)
		}
	}
	for i, d := range f.Deliveries {
		rec, err := d.toDomain()
		if err != nil {
			return fmt.Errorf("delivery #%d: %w", i, err)
		}
		if err := t.History.Append(rec); err != nil {
			return fmt.Errorf("delivery #%d: %w", i, err)
		}
	}
	for i, s := range f.Statistics {
		day := s.Day
		if day == "" {
			day = t.Stats.Today()
		}
		if err := t.Stats.Seed(domain.DailyStatistics{
			CourierID:      s.CourierID,
			Day:            day,
			TotalDelivered: s.TotalDelivered,
			TotalEarned:    s.TotalEarned,
			TotalWorkTime:  s.TotalWorkTime,
			TotalDistance:  s.TotalDistance,
			AverageRating:  s.AverageRating,
		}); err != nil {
			return fmt.Errorf("statistics #%d: %w", i, err)
		}
	}

	logger.Info("seed applied",
		logx.Event("seed_applied"),
		logx.Int("couriers", len(f.Couriers)),
		logx.Int("assignments", len(f.Assignments)),
		logx.Int("deliveries", len(f.Deliveries)),
		logx.Int("statistics", len(f.Statistics)),
	)
	return nil
}

func (c CourierFixture) toDomain() (domain.Courier, error) {
	availability := domain.CourierAvailability(c.Availability)
	if availability == "" {
		availability = domain.AvailabilityAvailable
	}
	if !availability.Valid() {
		return domain.Courier{}, fmt.Errorf("%w: availability %q", apperr.ErrValidation, c.Availability)
	}
	return domain.Courier{
		ID:            c.ID,
		UserID:        c.UserID,
		Email:         c.Email,
		Name:          c.Name,
		Phone:         c.Phone,
		Document:      c.Document,
		VehiclePlate:  c.VehiclePlate,
		VehicleType:   c.VehicleType,
		Availability:  availability,
		Rating:        c.Rating,
		TotalDelivery: c.TotalDelivery,
		Active:        c.Active,
	}, nil
}

func (a AssignmentFixture) toDomain() (domain.Assignment, error) {
	status := domain.AssignmentStatus(a.Status)
	if !status.Valid() {
		return domain.Assignment{}, fmt.Errorf("%w: assignment status %q", apperr.ErrValidation, a.Status)
	}
	assignedAt, err := parseTime("assigned_at", a.AssignedAt)
	if err != nil {
		return domain.Assignment{}, err
	}
	respondedAt, err := parseOptionalTime("responded_at", a.RespondedAt)
	if err != nil {
		return domain.Assignment{}, err
	}
	completedAt, err := parseOptionalTime("completed_at", a.CompletedAt)
	if err != nil {
		return domain.Assignment{}, err
	}
	order, err := a.Order.toDomain()
	if err != nil {
		return domain.Assignment{}, err
	}
	return domain.Assignment{
		ID:          a.ID,
		CourierID:   a.CourierID,
		Order:       order,
		Status:      status,
		AssignedAt:  assignedAt,
		RespondedAt: respondedAt,
		CompletedAt: completedAt,
		Notes:       a.Notes,
	}, nil
}

func (o OrderFixture) toDomain() (domain.Order, error) {
	status := domain.OrderStatus(o.Status)
	if status == "" {
		status = domain.OrderAssigned
	}
	priority := domain.OrderPriority(o.Priority)
	if priority == "" {
		priority = domain.PriorityNormal
	}
	if !status.Valid() {
		return domain.Order{}, fmt.Errorf("%w: order status %q", apperr.ErrValidation, o.Status)
	}
	if !priority.Valid() {
		return domain.Order{}, fmt.Errorf("%w: order priority %q", apperr.ErrValidation, o.Priority)
	}
	createdAt, err := parseTime("order.created_at", o.CreatedAt)
	if err != nil {
		return domain.Order{}, err
	}
	updatedAt := createdAt
	if o.UpdatedAt != "" {
		if updatedAt, err = parseTime("order.updated_at", o.UpdatedAt); err != nil {
			return domain.Order{}, err
		}
	}
	return domain.Order{
		ID:               o.ID,
		Number:           o.Number,
		CustomerName:     o.CustomerName,
		CustomerPhone:    o.CustomerPhone,
		Pickup:           domain.Address(o.Pickup),
		DropOff:          domain.Address(o.DropOff),
		Description:      o.Description,
		ItemValue:        o.ItemValue,
		DeliveryFee:      o.DeliveryFee,
		PaymentMethod:    o.PaymentMethod,
		Notes:            o.Notes,
		Priority:         priority,
		Status:           status,
		EstimatedMinutes: o.EstimatedMinutes,
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}, nil
}

func (d DeliveryFixture) toDomain() (domain.DeliveryRecord, error) {
	deliveredAt, err := parseTime("delivered_at", d.DeliveredAt)
	if err != nil {
		return domain.DeliveryRecord{}, err
	}
	return domain.DeliveryRecord{
		ID:              d.ID,
		CourierID:       d.CourierID,
		OrderID:         d.OrderID,
		AssignmentID:    d.AssignmentID,
		OrderNumber:     d.OrderNumber,
		TimeTotal:       d.TimeTotal,
		Distance:        d.Distance,
		ValueEarned:     d.ValueEarned,
		CustomerRating:  d.CustomerRating,
		CustomerComment: d.CustomerComment,
		DeliveredAt:     deliveredAt,
	}, nil
}

func parseTime(field, raw string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s %q is not RFC 3339", apperr.ErrValidation, field, raw)
	}
	return t, nil
}

func parseOptionalTime(field, raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := parseTime(field, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
