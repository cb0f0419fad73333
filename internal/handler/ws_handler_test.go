package handler

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOriginAllowed(t *testing.T) {
	tests := []struct {
		name    string
		origin  string
		allowed []string
		want    bool
	}{
		{"no origin header", "", nil, true},
		{"same host without list", "http://panel.local:5000", nil, true},
		{"foreign host without list", "http://evil.example", nil, false},
		{"listed origin", "https://admin.garajhub.uz", []string{"https://admin.garajhub.uz"}, true},
		{"listed origin case-insensitive", "HTTPS://ADMIN.GARAJHUB.UZ", []string{"https://admin.garajhub.uz"}, true},
		{"unlisted origin", "http://panel.local:5000", []string{"https://admin.garajhub.uz"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "http://panel.local:5000/api/activity/stream", nil)
			if tt.origin != "" {
				r.Header.Set("Origin", tt.origin)
			}
			assert.Equal(t, tt.want, originAllowed(r, tt.allowed))
		})
	}
}
