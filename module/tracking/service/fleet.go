package service

import "sort"

// FleetService answers whether a bus id belongs to the fleet. The allow-list
// is fixed at startup and never mutated, so lookups need no locking.
type FleetService struct {
	allowed map[string]struct{}
	ids     []string
}

func NewFleetService(busIDs []string) *FleetService {
	allowed := make(map[string]struct{}, len(busIDs))
	ids := make([]string, 0, len(busIDs))
	for _, id := range busIDs {
		if _, ok := allowed[id]; ok {
			continue
		}
		allowed[id] = struct{}{}
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return &FleetService{allowed: allowed, ids: ids}
}

// Allowed reports exact membership. No trimming or case folding is applied.
func (s *FleetService) Allowed(busID string) bool {
	_, ok := s.allowed[busID]
	return ok
}

// BusIDs returns the allow-list in sorted order.
func (s *FleetService) BusIDs() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}
