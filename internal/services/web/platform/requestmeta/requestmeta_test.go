package requestmeta

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestScheme(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		req    func() *http.Request
		policy SchemePolicy
		want   string
	}{
		{
			name: "plain http",
			req:  func() *http.Request { return httptest.NewRequest(http.MethodGet, "/blog", nil) },
			want: "http",
		},
		{
			name: "tls",
			req: func() *http.Request {
				req := httptest.NewRequest(http.MethodGet, "/blog", nil)
				req.TLS = &tls.ConnectionState{}
				return req
			},
			want: "https",
		},
		{
			name: "untrusted forwarded proto is ignored",
			req: func() *http.Request {
				req := httptest.NewRequest(http.MethodGet, "/blog", nil)
				req.Header.Set("X-Forwarded-Proto", "https")
				return req
			},
			want: "http",
		},
		{
			name: "trusted forwarded proto is used",
			req: func() *http.Request {
				req := httptest.NewRequest(http.MethodGet, "/blog", nil)
				req.Header.Set("X-Forwarded-Proto", "HTTPS")
				return req
			},
			policy: SchemePolicy{TrustForwardedProto: true},
			want:   "https",
		},
		{
			name: "trusted forwarded proto with junk falls back",
			req: func() *http.Request {
				req := httptest.NewRequest(http.MethodGet, "/blog", nil)
				req.Header.Set("X-Forwarded-Proto", "gopher")
				return req
			},
			policy: SchemePolicy{TrustForwardedProto: true},
			want:   "http",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Scheme(tc.req(), tc.policy); got != tc.want {
				t.Fatalf("Scheme() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestIsHTTPSNilRequest(t *testing.T) {
	t.Parallel()

	if IsHTTPS(nil, SchemePolicy{TrustForwardedProto: true}) {
		t.Fatal("IsHTTPS(nil) = true, want false")
	}
}

func TestIsCrossOrigin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		origin  string
		referer string
		policy  SchemePolicy
		proto   string
		want    bool
	}{
		{name: "no headers", want: false},
		{name: "same origin", origin: "http://example.com", want: false},
		{name: "same origin explicit port", origin: "http://example.com:80", want: false},
		{name: "same referer", referer: "http://example.com/blog/new", want: false},
		{name: "other host", origin: "http://evil.test", want: true},
		{name: "other port", origin: "http://example.com:8080", want: true},
		{name: "scheme mismatch", origin: "https://example.com", want: true},
		{name: "null origin", origin: "null", want: true},
		{name: "origin wins over referer", origin: "http://evil.test", referer: "http://example.com/", want: true},
		{name: "forwarded https trusted", origin: "https://example.com", policy: SchemePolicy{TrustForwardedProto: true}, proto: "https", want: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodPost, "/blog/new", nil)
			if tc.origin != "" {
				req.Header.Set("Origin", tc.origin)
			}
			if tc.referer != "" {
				req.Header.Set("Referer", tc.referer)
			}
			if tc.proto != "" {
				req.Header.Set("X-Forwarded-Proto", tc.proto)
			}
			if got := IsCrossOrigin(req, tc.policy); got != tc.want {
				t.Fatalf("IsCrossOrigin() = %v, want %v", got, tc.want)
			}
		})
	}
}
