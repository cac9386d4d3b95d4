package services

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeriveStatus(t *testing.T) {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		eta  int
		now  time.Time
		want Status
	}{
		{"fresh order", 15, created, StatusEnRoute},
		{"halfway there", 15, created.Add(7 * time.Minute), StatusEnRoute},
		{"just before deadline", 15, created.Add(15*time.Minute - time.Second), StatusEnRoute},
		{"exactly at deadline", 15, created.Add(15 * time.Minute), StatusDelivered},
		{"long after deadline", 5, created.Add(3 * time.Hour), StatusDelivered},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveStatus(created, tt.eta, tt.now))
		})
	}
}

// delivered แล้วต้องไม่ย้อนกลับ — เวลาเดินหน้าอย่างเดียว status ก็เช่นกัน
func TestDeriveStatusNeverReverses(t *testing.T) {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	eta := 10

	delivered := false
	for minute := 0; minute <= 60; minute++ {
		got := DeriveStatus(created, eta, created.Add(time.Duration(minute)*time.Minute))
		if delivered {
			assert.Equal(t, StatusDelivered, got, "status reversed at minute %d", minute)
		}
		if got == StatusDelivered {
			delivered = true
		}
	}
	assert.True(t, delivered)
}

func TestEstimateDeliveryMinutesRange(t *testing.T) {
	for i := 0; i < 1000; i++ {
		eta := EstimateDeliveryMinutes()
		assert.GreaterOrEqual(t, eta, 5)
		assert.LessOrEqual(t, eta, 20)
	}
}

func TestNewGuestOrderID(t *testing.T) {
	for i := 0; i < 100; i++ {
		id := NewGuestOrderID()
		assert.Len(t, id, 9)
		for _, r := range id {
			assert.True(t, strings.ContainsRune(guestOrderIDCharset, r), "unexpected char %q in %q", r, id)
		}
	}
}
