package handlers

import "service-motorizado/internal/domain"

func (r completeRequest) toModel() domain.Outcome {
	return domain.Outcome{
		TimeTotal:       r.TimeTotal,
		ValueEarned:     r.ValueEarned,
		Distance:        r.Distance,
		CustomerRating:  r.CustomerRating,
		CustomerComment: r.CustomerComment,
	}
}

func orderToResponse(o domain.Order) orderDTO {
	return orderDTO{
		ID:               o.ID,
		Number:           o.Number,
		CustomerName:     o.CustomerName,
		CustomerPhone:    o.CustomerPhone,
		Pickup:           addressDTO(o.Pickup),
		DropOff:          addressDTO(o.DropOff),
		Description:      o.Description,
		ItemValue:        o.ItemValue,
		DeliveryFee:      o.DeliveryFee,
		PaymentMethod:    o.PaymentMethod,
		Notes:            o.Notes,
		Priority:         string(o.Priority),
		Status:           string(o.Status),
		EstimatedMinutes: o.EstimatedMinutes,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
}

func assignmentToResponse(a domain.Assignment) assignmentDTO {
	return assignmentDTO{
		ID:          a.ID,
		CourierID:   a.CourierID,
		Status:      string(a.Status),
		AssignedAt:  a.AssignedAt,
		RespondedAt: a.RespondedAt,
		CompletedAt: a.CompletedAt,
		Notes:       a.Notes,
		Order:       orderToResponse(a.Order),
	}
}

func assignmentsToResponse(list []domain.Assignment) []assignmentDTO {
	out := make([]assignmentDTO, 0, len(list))
	for _, a := range list {
		out = append(out, assignmentToResponse(a))
	}
	return out
}

func deliveryToResponse(d domain.DeliveryRecord) deliveryDTO {
	return deliveryDTO{
		ID:              d.ID,
		OrderID:         d.OrderID,
		AssignmentID:    d.AssignmentID,
		OrderNumber:     d.OrderNumber,
		TimeTotal:       d.TimeTotal,
		Distance:        d.Distance,
		ValueEarned:     d.ValueEarned,
		CustomerRating:  d.CustomerRating,
		CustomerComment: d.CustomerComment,
		DeliveredAt:     d.DeliveredAt,
	}
}

func deliveriesToResponse(list []domain.DeliveryRecord) []deliveryDTO {
	out := make([]deliveryDTO, 0, len(list))
	for _, d := range list {
		out = append(out, deliveryToResponse(d))
	}
	return out
}

func statisticsToResponse(s domain.DailyStatistics) statisticsDTO {
	return statisticsDTO{
		CourierID:      s.CourierID,
		Day:            s.Day,
		TotalDelivered: s.TotalDelivered,
		TotalEarned:    s.TotalEarned,
		TotalWorkTime:  s.TotalWorkTime,
		TotalDistance:  s.TotalDistance,
		AverageRating:  s.AverageRating,
	}
}

func courierToResponse(c domain.Courier) courierDTO {
	return courierDTO{
		ID:            c.ID,
		UserID:        c.UserID,
		Email:         c.Email,
		Name:          c.Name,
		Phone:         c.Phone,
		Document:      c.Document,
		VehiclePlate:  c.VehiclePlate,
		VehicleType:   c.VehicleType,
		Availability:  string(c.Availability),
		Rating:        c.Rating,
		TotalDelivery: c.TotalDelivery,
		Active:        c.Active,
	}
}

func sessionToResponse(s domain.Session) sessionDTO {
	return sessionDTO{
		Token:     s.Token,
		Courier:   courierToResponse(s.Courier),
		IssuedAt:  s.IssuedAt,
		ExpiresAt: s.ExpiresAt,
	}
}
