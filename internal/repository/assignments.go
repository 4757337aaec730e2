package repository

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"service-motorizado/internal/apperr"
	"service-motorizado/internal/domain"
)

// AssignmentStore holds the assignments visible to couriers, partitioned by courier id.
type AssignmentStore struct {
	mu     sync.RWMutex
	shards map[string]*assignmentShard
	// owner maps assignment id to courier id.
	owner map[string]string
	// activeByOrder maps order id to the id of its single non-terminal assignment.
	activeByOrder map[string]string
	// retired holds ids of swept or removed assignments; they are never handed out again.
	retired map[string]struct{}
	seq     uint64
}

type assignmentShard struct {
	mu    sync.RWMutex
	items map[string]*storedAssignment
}

type storedAssignment struct {
	a   domain.Assignment
	seq uint64
}

// NewAssignmentStore creates an empty AssignmentStore.
func NewAssignmentStore() *AssignmentStore {
	return &AssignmentStore{
		shards:        make(map[string]*assignmentShard),
		owner:         make(map[string]string),
		activeByOrder: make(map[string]string),
		retired:       make(map[string]struct{}),
	}
}

// Insert adds a new assignment. Only one non-terminal assignment may exist per order,
// and the id of a swept or removed assignment cannot be reused.
func (s *AssignmentStore) Insert(a domain.Assignment) error {
	if a.ID == "" || a.CourierID == "" || a.Order.ID == "" {
		return fmt.Errorf("insert assignment: %w: id, courier and order are required", apperr.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.owner[a.ID]; ok {
		return fmt.Errorf("insert assignment %q: %w: duplicate id", a.ID, apperr.ErrConflict)
	}
	if _, ok := s.retired[a.ID]; ok {
		return fmt.Errorf("insert assignment %q: %w: id already retired", a.ID, apperr.ErrConflict)
	}
	if a.Status.Active() {
		if other, ok := s.activeByOrder[a.Order.ID]; ok {
			return fmt.Errorf("insert assignment %q: %w: order %q already held by %q",
				a.ID, apperr.ErrConflict, a.Order.ID, other)
		}
		s.activeByOrder[a.Order.ID] = a.ID
	}

	sh := s.shards[a.CourierID]
	if sh == nil {
		sh = &assignmentShard{items: make(map[string]*storedAssignment)}
		s.shards[a.CourierID] = sh
	}
	s.seq++
	s.owner[a.ID] = a.CourierID

	sh.mu.Lock()
	sh.items[a.ID] = &storedAssignment{a: cloneAssignment(a), seq: s.seq}
	sh.mu.Unlock()
	return nil
}

// ListActive returns pending and accepted assignments of the courier, most recently assigned first.
func (s *AssignmentStore) ListActive(courierID string) []domain.Assignment {
	sh := s.shard(courierID)
	if sh == nil {
		return []domain.Assignment{}
	}

	sh.mu.RLock()
	picked := make([]*storedAssignment, 0, len(sh.items))
	for _, it := range sh.items {
		if it.a.Status.Active() {
			picked = append(picked, it)
		}
	}
	sh.mu.RUnlock()

	sort.Slice(picked, func(i, j int) bool {
		ai, aj := picked[i].a.AssignedAt, picked[j].a.AssignedAt
		if !ai.Equal(aj) {
			return ai.After(aj)
		}
		return picked[i].seq < picked[j].seq
	})

	out := make([]domain.Assignment, 0, len(picked))
	for _, it := range picked {
		out = append(out, cloneAssignment(it.a))
	}
	return out
}

// Get returns the assignment with the given id.
func (s *AssignmentStore) Get(assignmentID string) (domain.Assignment, error) {
	sh := s.shardOf(assignmentID)
	if sh == nil {
		return domain.Assignment{}, notFound(assignmentID)
	}
	sh.mu.RLock()
	defer sh.mu.RUnlock()
	it, ok := sh.items[assignmentID]
	if !ok {
		return domain.Assignment{}, notFound(assignmentID)
	}
	return cloneAssignment(it.a), nil
}

// Apply runs mutation on a copy of the assignment and commits the copy only if mutation returns nil.
// The assignment id and courier id cannot be changed. Moving a terminal assignment back to an
// active status fails with ErrConflict while another assignment holds the order.
func (s *AssignmentStore) Apply(assignmentID string, mutation func(*domain.Assignment) error) (domain.Assignment, error) {
	sh := s.shardOf(assignmentID)
	if sh == nil {
		return domain.Assignment{}, notFound(assignmentID)
	}

	// store lock first: a status change may release the order index
	s.mu.Lock()
	defer s.mu.Unlock()
	sh.mu.Lock()
	defer sh.mu.Unlock()

	it, ok := sh.items[assignmentID]
	if !ok {
		return domain.Assignment{}, notFound(assignmentID)
	}

	next := cloneAssignment(it.a)
	if err := mutation(&next); err != nil {
		return domain.Assignment{}, err
	}
	next.ID = it.a.ID
	next.CourierID = it.a.CourierID

	wasActive, isActive := it.a.Status.Active(), next.Status.Active()
	if !wasActive && isActive {
		if other, ok := s.activeByOrder[next.Order.ID]; ok && other != next.ID {
			return domain.Assignment{}, fmt.Errorf("assignment %q: %w: order %q already held by %q",
				next.ID, apperr.ErrConflict, next.Order.ID, other)
		}
		s.activeByOrder[next.Order.ID] = next.ID
	}
	if wasActive && !isActive && s.activeByOrder[it.a.Order.ID] == it.a.ID {
		delete(s.activeByOrder, it.a.Order.ID)
	}
	it.a = next
	return cloneAssignment(next), nil
}

// UpdateOrders applies mutation to the linked order of every assignment of the courier that references orderID.
// The result lists active assignments first, then by assigned-at descending.
func (s *AssignmentStore) UpdateOrders(courierID, orderID string, mutation func(*domain.Order)) ([]domain.Assignment, error) {
	sh := s.shard(courierID)
	if sh == nil {
		return nil, fmt.Errorf("order %q: %w", orderID, apperr.ErrNotFound)
	}

	sh.mu.Lock()
	var hits []*storedAssignment
	for _, it := range sh.items {
		if it.a.Order.ID != orderID {
			continue
		}
		mutation(&it.a.Order)
		hits = append(hits, &storedAssignment{a: cloneAssignment(it.a), seq: it.seq})
	}
	sh.mu.Unlock()

	if len(hits) == 0 {
		return nil, fmt.Errorf("order %q: %w", orderID, apperr.ErrNotFound)
	}
	sort.Slice(hits, func(i, j int) bool {
		ai, aj := hits[i].a, hits[j].a
		if ai.Status.Active() != aj.Status.Active() {
			return ai.Status.Active()
		}
		if !ai.AssignedAt.Equal(aj.AssignedAt) {
			return ai.AssignedAt.After(aj.AssignedAt)
		}
		return hits[i].seq > hits[j].seq
	})
	touched := make([]domain.Assignment, 0, len(hits))
	for _, h := range hits {
		touched = append(touched, h.a)
	}
	return touched, nil
}

// Remove drops the assignment from the store.
func (s *AssignmentStore) Remove(assignmentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	courierID, ok := s.owner[assignmentID]
	if !ok {
		return notFound(assignmentID)
	}
	sh := s.shards[courierID]

	sh.mu.Lock()
	it := sh.items[assignmentID]
	delete(sh.items, assignmentID)
	sh.mu.Unlock()

	delete(s.owner, assignmentID)
	s.retired[assignmentID] = struct{}{}
	if it != nil && s.activeByOrder[it.a.Order.ID] == assignmentID {
		delete(s.activeByOrder, it.a.Order.ID)
	}
	return nil
}

// SweepTerminal removes terminal assignments whose grace interval has elapsed at now.
// It returns the ids of the removed assignments.
func (s *AssignmentStore) SweepTerminal(now time.Time, grace func(domain.AssignmentStatus) time.Duration) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed []string
	for courierID, sh := range s.shards {
		sh.mu.Lock()
		for id, it := range sh.items {
			if !it.a.Status.Terminal() || it.a.TerminalAt == nil {
				continue
			}
			if now.Before(it.a.TerminalAt.Add(grace(it.a.Status))) {
				continue
			}
			delete(sh.items, id)
			delete(s.owner, id)
			s.retired[id] = struct{}{}
			removed = append(removed, id)
		}
		empty := len(sh.items) == 0
		sh.mu.Unlock()
		if empty {
			delete(s.shards, courierID)
		}
	}
	sort.Strings(removed)
	return removed
}

// CourierOf returns the id of the courier owning the assignment.
func (s *AssignmentStore) CourierOf(assignmentID string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.owner[assignmentID]
	return id, ok
}

// ActiveFor returns the non-terminal assignment holding the order, if any.
func (s *AssignmentStore) ActiveFor(orderID string) (domain.Assignment, bool) {
	s.mu.RLock()
	id, ok := s.activeByOrder[orderID]
	s.mu.RUnlock()
	if !ok {
		return domain.Assignment{}, false
	}
	a, err := s.Get(id)
	if err != nil {
		return domain.Assignment{}, false
	}
	return a, true
}

func (s *AssignmentStore) shard(courierID string) *assignmentShard {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.shards[courierID]
}

func (s *AssignmentStore) shardOf(assignmentID string) *assignmentShard {
	courierID, ok := s.CourierOf(assignmentID)
	if !ok {
		return nil
	}
	return s.shard(courierID)
}

func notFound(assignmentID string) error {
	return fmt.Errorf("assignment %q: %w", assignmentID, apperr.ErrNotFound)
}

func cloneAssignment(a domain.Assignment) domain.Assignment {
	a.RespondedAt = cloneTime(a.RespondedAt)
	a.CompletedAt = cloneTime(a.CompletedAt)
	a.TerminalAt = cloneTime(a.TerminalAt)
	return a
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
