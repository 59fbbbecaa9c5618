package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextStreak(t *testing.T) {
	now := time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC)
	sameDay := now.Add(-3 * time.Hour)
	yesterday := now.Add(-24 * time.Hour)
	lastWeek := now.Add(-7 * 24 * time.Hour)

	tests := []struct {
		name    string
		current int
		last    *time.Time
		want    int
	}{
		{"first quiz ever", 0, nil, 1},
		{"second quiz same day", 3, &sameDay, 3},
		{"same day floors at one", 0, &sameDay, 1},
		{"consecutive day increments", 3, &yesterday, 4},
		{"gap resets", 9, &lastWeek, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextStreak(tt.current, tt.last, now))
		})
	}
}
