package routes

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cufit/cufit-backend/internal/config"
	"github.com/cufit/cufit-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
)

func docsTestApp(t *testing.T, cfg *config.Config) *fiber.App {
	t.Helper()
	app := fiber.New()
	ok := func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) }
	app.Get("/get-profile/", ok)
	app.Get("/workout/get-profile/", middleware.Deprecated("/get-profile/"), ok).Name(compatRoutePrefix + "get-profile")
	if err := registerDocsRoutes(app, cfg); err != nil {
		t.Fatalf("registerDocsRoutes: %v", err)
	}
	return app
}

func TestRegisterDocsRoutesServesIndex(t *testing.T) {
	app := docsTestApp(t, &config.Config{AppEnv: "development", EnableDocs: true})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/docs", nil))
	if err != nil {
		t.Fatalf("app.Test docs page: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected docs page status 200, got %d", resp.StatusCode)
	}
	if got := resp.Header.Get("Content-Security-Policy"); !strings.Contains(got, "default-src 'none'") {
		t.Fatalf("expected restrictive CSP, got %q", got)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "/workout/get-profile/") {
		t.Fatalf("expected route listing in page, got %s", body)
	}
}

func TestDocsRoutesJSONMarksDeprecated(t *testing.T) {
	app := docsTestApp(t, &config.Config{AppEnv: "development", EnableDocs: true})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/docs/routes.json", nil))
	if err != nil {
		t.Fatalf("app.Test routes.json: %v", err)
	}
	defer resp.Body.Close()

	var payload struct {
		Routes []docsRoute `json:"routes"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(payload.Routes) != 2 {
		t.Fatalf("expected 2 routes, got %+v", payload.Routes)
	}
	for _, r := range payload.Routes {
		want := r.Path == "/workout/get-profile/"
		if r.Deprecated != want {
			t.Fatalf("route %s deprecated=%v, want %v", r.Path, r.Deprecated, want)
		}
	}
}

func TestRegisterDocsRoutesDisabledOutsideDevelopment(t *testing.T) {
	app := docsTestApp(t, &config.Config{AppEnv: "production", EnableDocs: true})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/docs", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 when docs disabled, got %d", resp.StatusCode)
	}
}
