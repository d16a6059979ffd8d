package helpers

import (
	"testing"
	"time"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{"10s", 10 * time.Second},
		{" 1h ", time.Hour},
		{"", 5 * time.Second},
		{"soon", 5 * time.Second},
		{"0s", 5 * time.Second},
		{"-1m", 5 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseDuration(tt.in, 5*time.Second); got != tt.want {
				t.Errorf("ParseDuration(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
