package app

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"

	"stlucia/pkg/config"
	"stlucia/pkg/logger"
)

type routesFunc func(*httprouter.Router)

func (f routesFunc) RegisterRoutes(r *httprouter.Router) { f(r) }

func respond(body string) httprouter.Handle {
	return func(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
		_, _ = w.Write([]byte(body))
	}
}

func newTestApplication() *Application {
	cfg := &config.Config{
		Port:           "8000",
		MaxRequestSize: 1024,
		Log:            logger.Discard(),
	}

	probes := routesFunc(func(r *httprouter.Router) {
		r.GET("/health", respond("health"))
		r.GET("/ready", respond("ready"))
	})
	catalog := routesFunc(func(r *httprouter.Router) {
		r.GET("/", respond("root"))
		r.GET("/tours", respond("tours"))
	})
	bookings := routesFunc(func(r *httprouter.Router) {
		r.POST("/book", respond("booked"))
	})

	a := NewApplication(cfg)
	a.SetApp(probes, catalog, bookings)
	return a
}

func TestApplication_Routing(t *testing.T) {
	handler := newTestApplication().Handler()

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
		wantBody   string
	}{
		{"root", http.MethodGet, "/", "", http.StatusOK, "root"},
		{"tours", http.MethodGet, "/tours", "", http.StatusOK, "tours"},
		{"health probe", http.MethodGet, "/health", "", http.StatusOK, "health"},
		{"ready probe", http.MethodGet, "/ready", "", http.StatusOK, "ready"},
		{"book", http.MethodPost, "/book", `{"kind":"tour"}`, http.StatusOK, "booked"},
		{"unknown path", http.MethodGet, "/admin", "", http.StatusNotFound, `{"error":"Resource not found"}`},
		{"wrong method", http.MethodDelete, "/tours", "", http.StatusMethodNotAllowed, `{"error":"Method not allowed"}`},
		{"plain options", http.MethodOptions, "/book", "", http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
			if !strings.Contains(w.Body.String(), tt.wantBody) {
				t.Errorf("expected body containing %q, got %q", tt.wantBody, w.Body.String())
			}
		})
	}
}

func TestApplication_CORSOnAppRoutes(t *testing.T) {
	handler := newTestApplication().Handler()

	req := httptest.NewRequest(http.MethodOptions, "/book", nil)
	req.Header.Set("Origin", "https://any-origin.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected preflight status 200, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://any-origin.example" {
		t.Errorf("unexpected allow origin %q", got)
	}
}

func TestApplication_ServerAddress(t *testing.T) {
	a := newTestApplication()
	if a.server.Addr != ":8000" {
		t.Errorf("expected :8000, got %s", a.server.Addr)
	}
}
