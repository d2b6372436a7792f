package services

import "time"

// SetNow overrides the clock for deterministic tests.
func (s *RateSyncService) SetNow(now func() time.Time) {
	s.now = now
}

// SetNow overrides the clock for deterministic tests.
func (s *TrackingService) SetNow(now func() time.Time) {
	s.now = now
}

// SetNow overrides the clock for deterministic tests.
func (s *ETFPriceService) SetNow(now func() time.Time) {
	s.now = now
}
