package netinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPrivate(t *testing.T) {
	tests := []struct {
		address string
		want    bool
	}{
		{"10.0.0.1", true},
		{"10.255.255.255", true},
		{"172.16.5.5", true},
		{"172.31.255.255", true},
		{"192.168.1.1", true},
		{"172.32.0.1", false},
		{"172.15.0.1", false},
		{"192.167.1.1", false},
		{"8.8.8.8", false},
		{"1.2.3", false},
		{"1.2.3.4.5", false},
		{"a.b.c.d", false},
		{"10.0.0.x", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.address, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPrivate(tt.address))
		})
	}
}

func TestStripPort(t *testing.T) {
	assert.Equal(t, "192.168.1.5", StripPort("192.168.1.5:1234"))
	assert.Equal(t, "8.8.8.8", StripPort("8.8.8.8"))
	assert.Equal(t, "", StripPort(""))
}
