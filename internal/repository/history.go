package repository

import (
	"fmt"
	"sort"
	"sync"

	"service-motorizado/internal/apperr"
	"service-motorizado/internal/domain"
)

// HistoryStore is the append-only delivery history, partitioned by courier id.
type HistoryStore struct {
	mu        sync.RWMutex
	byCourier map[string][]domain.DeliveryRecord
	ids       map[string]struct{}
}

// NewHistoryStore creates an empty HistoryStore.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{
		byCourier: make(map[string][]domain.DeliveryRecord),
		ids:       make(map[string]struct{}),
	}
}

// Append records a delivery. A record id or assignment id may only be recorded once.
func (h *HistoryStore) Append(r domain.DeliveryRecord) error {
	if r.ID == "" || r.CourierID == "" {
		return fmt.Errorf("append delivery: %w: id and courier are required", apperr.ErrValidation)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.ids[r.ID]; ok {
		return fmt.Errorf("append delivery %q: %w: duplicate id", r.ID, apperr.ErrConflict)
	}
	if r.AssignmentID != "" {
		for _, existing := range h.byCourier[r.CourierID] {
			if existing.AssignmentID == r.AssignmentID {
				return fmt.Errorf("append delivery %q: %w: assignment %q already delivered",
					r.ID, apperr.ErrConflict, r.AssignmentID)
			}
		}
	}
	h.ids[r.ID] = struct{}{}
	h.byCourier[r.CourierID] = append(h.byCourier[r.CourierID], cloneRecord(r))
	return nil
}

// List returns the courier's deliveries, newest first, with optional pagination.
func (h *HistoryStore) List(courierID string, limit, offset *int) []domain.DeliveryRecord {
	h.mu.RLock()
	src := h.byCourier[courierID]
	out := make([]domain.DeliveryRecord, 0, len(src))
	for _, r := range src {
		out = append(out, cloneRecord(r))
	}
	h.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DeliveredAt.After(out[j].DeliveredAt)
	})

	start := 0
	if offset != nil && *offset > 0 {
		start = *offset
	}
	if start >= len(out) {
		return []domain.DeliveryRecord{}
	}
	out = out[start:]
	if limit != nil && *limit >= 0 && *limit < len(out) {
		out = out[:*limit]
	}
	return out
}

// Delivered reports whether a delivery was recorded for the assignment.
func (h *HistoryStore) Delivered(courierID, assignmentID string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, r := range h.byCourier[courierID] {
		if r.AssignmentID == assignmentID {
			return true
		}
	}
	return false
}

// Discard drops a record whose completion could not be finished. It is not a general delete:
// only the most recent record of the courier can be discarded.
func (h *HistoryStore) Discard(courierID, recordID string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	list := h.byCourier[courierID]
	if len(list) == 0 || list[len(list)-1].ID != recordID {
		return fmt.Errorf("discard delivery %q: %w", recordID, apperr.ErrNotFound)
	}
	h.byCourier[courierID] = list[:len(list)-1]
	delete(h.ids, recordID)
	return nil
}

// Count returns the number of deliveries recorded for the courier.
func (h *HistoryStore) Count(courierID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.byCourier[courierID])
}

func cloneRecord(r domain.DeliveryRecord) domain.DeliveryRecord {
	if r.Distance != nil {
		d := *r.Distance
		r.Distance = &d
	}
	if r.CustomerRating != nil {
		v := *r.CustomerRating
		r.CustomerRating = &v
	}
	return r
}
