package models

import (
	"testing"
	"time"
)

func TestRefreshTokenRecord_StatePredicates(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	revoked := now.Add(-time.Minute)

	tests := []struct {
		name       string
		rec        RefreshTokenRecord
		wantActive bool
		wantExp    bool
		wantRev    bool
	}{
		{
			name:       "active",
			rec:        RefreshTokenRecord{ExpiresAt: now.Add(time.Hour), RevocationReason: RevocationReasonNone},
			wantActive: true,
		},
		{
			name:    "expired",
			rec:     RefreshTokenRecord{ExpiresAt: now.Add(-time.Hour)},
			wantExp: true,
		},
		{
			name:    "expiry boundary counts as expired",
			rec:     RefreshTokenRecord{ExpiresAt: now},
			wantExp: true,
		},
		{
			name:    "rotated",
			rec:     RefreshTokenRecord{ExpiresAt: now.Add(time.Hour), RevokedAt: &revoked, RevocationReason: RevocationReasonRotated},
			wantRev: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.rec.IsActive(now); got != tc.wantActive {
				t.Fatalf("IsActive = %v, want %v", got, tc.wantActive)
			}
			if got := tc.rec.IsExpired(now); got != tc.wantExp {
				t.Fatalf("IsExpired = %v, want %v", got, tc.wantExp)
			}
			if got := tc.rec.IsRevoked(); got != tc.wantRev {
				t.Fatalf("IsRevoked = %v, want %v", got, tc.wantRev)
			}
		})
	}
}
