package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/handnotes/internal/infrastructure"
	"github.com/JaimeStill/handnotes/pkg/lifecycle"
)

func TestBuildRouter_Probes(t *testing.T) {
	infra := &infrastructure.Infrastructure{Lifecycle: lifecycle.New()}
	router := buildRouter(infra)

	probe := func(path string) (int, string) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		return w.Code, w.Body.String()
	}

	if code, body := probe("/healthz"); code != http.StatusOK || body != "OK" {
		t.Errorf("healthz = %d %q", code, body)
	}
	if code, _ := probe("/readyz"); code != http.StatusServiceUnavailable {
		t.Errorf("readyz before startup = %d, want 503", code)
	}

	infra.Lifecycle.WaitForStartup()

	if code, body := probe("/readyz"); code != http.StatusOK || body != "READY" {
		t.Errorf("readyz after startup = %d %q", code, body)
	}
}
