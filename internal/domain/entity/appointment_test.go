package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentStatusIsValid(t *testing.T) {
	for _, s := range AppointmentStatusValues() {
		assert.True(t, s.IsValid(), "%s should be valid", s)
	}

	invalid := []AppointmentStatus{"", "requested", "Confirmed", "DONE", "NOSHOW"}
	for _, s := range invalid {
		assert.False(t, s.IsValid(), "%q should be invalid", s)
	}
}

func TestAppointmentStatusValues(t *testing.T) {
	values := AppointmentStatusValues()
	assert.Len(t, values, 6)
	assert.Equal(t, AppointmentStatusRequested, values[0])
	assert.Equal(t, AppointmentStatusNoShow, values[5])
}

func TestAppointmentIsTerminal(t *testing.T) {
	tests := []struct {
		status AppointmentStatus
		want   bool
	}{
		{AppointmentStatusRequested, false},
		{AppointmentStatusConfirmed, false},
		{AppointmentStatusRescheduled, false},
		{AppointmentStatusCompleted, true},
		{AppointmentStatusCancelled, true},
		{AppointmentStatusNoShow, true},
	}

	for _, tt := range tests {
		a := &Appointment{Status: tt.status}
		assert.Equal(t, tt.want, a.IsTerminal(), "status %s", tt.status)
	}
}

func TestAppointmentOverlaps(t *testing.T) {
	at := func(hour int) time.Time {
		return time.Date(2025, 6, 2, hour, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name         string
		aStart, aEnd int
		bStart, bEnd int
		want         bool
	}{
		{"identical ranges", 9, 10, 9, 10, true},
		{"partial overlap", 9, 10, 9, 11, true},
		{"contained", 9, 12, 10, 11, true},
		{"back to back", 9, 10, 10, 11, false},
		{"disjoint", 9, 10, 14, 15, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Appointment{ScheduledStart: at(tt.aStart), ScheduledEnd: at(tt.aEnd)}
			b := &Appointment{ScheduledStart: at(tt.bStart), ScheduledEnd: at(tt.bEnd)}
			assert.Equal(t, tt.want, a.Overlaps(b))
			assert.Equal(t, tt.want, b.Overlaps(a), "overlap must be symmetric")
		})
	}
}
