package tools

import (
	"context"
	"net"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDisallowedIP(t *testing.T) {
	tests := []struct {
		name    string
		ip      string
		blocked bool
	}{
		{"loopback v4", "127.0.0.1", true},
		{"loopback v6", "::1", true},
		{"private 10", "10.0.0.1", true},
		{"private 172", "172.16.5.9", true},
		{"private 192", "192.168.1.1", true},
		{"link local", "169.254.169.254", true},
		{"unspecified", "0.0.0.0", true},
		{"multicast", "224.0.0.1", true},
		{"cgnat", "100.64.1.1", true},
		{"benchmarking", "198.18.0.1", true},
		{"class e", "240.0.0.1", true},
		{"ipv4-mapped private", "::ffff:10.0.0.1", true},
		{"ipv4-mapped loopback", "::ffff:127.0.0.1", true},
		{"unique local v6", "fd00::1", true},
		{"link local v6", "fe80::1", true},
		{"doc range v6", "2001:db8::1", true},
		{"public v4", "93.184.216.34", false},
		{"public v4 dns", "8.8.8.8", false},
		{"public v6", "2606:4700:4700::1111", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ip := net.ParseIP(tt.ip)
			assert.Equal(t, tt.blocked, isDisallowedIP(ip))
		})
	}
}

func TestValidateFetchURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"scheme file", "file:///etc/passwd", true},
		{"scheme ftp", "ftp://example.com/x", true},
		{"scheme gopher", "gopher://example.com", true},
		{"no host", "http://", true},
		{"localhost", "http://localhost/admin", true},
		{"local suffix", "http://db.local/status", true},
		{"internal suffix", "http://metadata.internal/v1", true},
		{"lan suffix", "http://nas.lan/", true},
		{"literal loopback", "http://127.0.0.1:8080/", true},
		{"literal private", "http://10.0.0.1/admin", true},
		{"literal link local", "http://169.254.169.254/latest/meta-data/", true},
		{"literal v6 loopback", "http://[::1]/", true},
		{"literal v6 mapped private", "http://[::ffff:192.168.0.1]/", true},
		{"literal public", "http://93.184.216.34/", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := url.Parse(tt.url)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			err = validateFetchURL(context.Background(), u)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
