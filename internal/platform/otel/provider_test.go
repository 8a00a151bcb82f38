package otel

import (
	"context"
	"testing"
)

func TestCollectorEndpoint(t *testing.T) {
	tests := []struct {
		name     string
		endpoint string
		enabled  string
		want     string
		wantOn   bool
	}{
		{name: "unset", endpoint: "", enabled: "", want: "", wantOn: false},
		{name: "blank", endpoint: "   ", enabled: "", want: "", wantOn: false},
		{name: "set", endpoint: " http://collector:4318 ", enabled: "", want: "http://collector:4318", wantOn: true},
		{name: "explicitly on", endpoint: "http://collector:4318", enabled: "true", want: "http://collector:4318", wantOn: true},
		{name: "forced off", endpoint: "http://collector:4318", enabled: "FALSE", want: "", wantOn: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(EndpointEnv, tc.endpoint)
			t.Setenv(EnabledEnv, tc.enabled)

			got, on := collectorEndpoint()
			if got != tc.want || on != tc.wantOn {
				t.Fatalf("collectorEndpoint() = %q, %v, want %q, %v", got, on, tc.want, tc.wantOn)
			}
		})
	}
}

func TestSetupWithoutEndpointIsNoop(t *testing.T) {
	t.Setenv(EndpointEnv, "")
	t.Setenv(EnabledEnv, "")

	shutdown, err := Setup(context.Background(), "portfolio-web")
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := shutdown(ctx); err != nil {
		t.Fatalf("noop shutdown: %v", err)
	}
}

func TestSetupRegistersProviderForEndpoint(t *testing.T) {
	// TEST-NET address; no spans are recorded so nothing is exported.
	t.Setenv(EndpointEnv, "http://192.0.2.1:4318")
	t.Setenv(EnabledEnv, "")

	shutdown, err := Setup(context.Background(), "portfolio-web")
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}
