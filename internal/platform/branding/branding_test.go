package branding

import (
	"strings"
	"testing"
)

func TestAppName(t *testing.T) {
	if AppName == "" {
		t.Fatal("expected AppName to be non-empty")
	}
	if !strings.HasPrefix(AppName, Owner.Name) {
		t.Fatalf("AppName = %q, want prefix %q", AppName, Owner.Name)
	}
}

func TestOwnerLinksAreAbsolute(t *testing.T) {
	for name, link := range map[string]string{"linkedin": Owner.LinkedIn, "github": Owner.GitHub} {
		if !strings.HasPrefix(link, "https://") {
			t.Fatalf("%s link = %q, want https URL", name, link)
		}
	}
}
