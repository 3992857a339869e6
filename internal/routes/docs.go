package routes

import (
	"bytes"
	"fmt"
	"html/template"
	"sort"
	"strings"
	"time"

	"github.com/cufit/cufit-backend/internal/config"
	"github.com/gofiber/fiber/v2"
)

const docsIndexHTML = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{ .Title }}</title>
  <style>
    body { margin: 0; font-family: Georgia, "Times New Roman", serif; color: #132019; background: #f6f7f4; }
    main { max-width: 1120px; margin: 0 auto; padding: 48px 20px 64px; }
    h1 { margin: 0 0 8px; }
    p { color: #536258; }
    table { width: 100%; border-collapse: collapse; background: #fff; border: 1px solid #d8ddd6; }
    th, td { text-align: left; padding: 8px 12px; border-bottom: 1px solid #d8ddd6; }
    code { font-family: "SFMono-Regular", Menlo, monospace; }
    .deprecated { color: #9a3412; }
  </style>
</head>
<body>
<main>
  <h1>{{ .Title }}</h1>
  <p>Environment <code>{{ .Env }}</code>, generated {{ .Generated }}. Machine readable listing at <a href="/docs/routes.json">/docs/routes.json</a>.</p>
  <table>
    <thead><tr><th>Method</th><th>Path</th><th>Status</th></tr></thead>
    <tbody>
    {{- range .Routes }}
      <tr>
        <td><code>{{ .Method }}</code></td>
        <td><code>{{ .Path }}</code></td>
        <td>{{ if .Deprecated }}<span class="deprecated">deprecated</span>{{ else }}current{{ end }}</td>
      </tr>
    {{- end }}
    </tbody>
  </table>
</main>
</body>
</html>`

type docsRoute struct {
	Method     string `json:"method"`
	Path       string `json:"path"`
	Deprecated bool   `json:"deprecated"`
}

type docsPageData struct {
	Title     string
	Env       string
	Generated string
	Routes    []docsRoute
}

// registerDocsRoutes serves a route index. It is only mounted in development
// with ENABLE_API_DOCS set.
func registerDocsRoutes(app *fiber.App, cfg *config.Config) error {
	if !cfg.DocsEnabled() {
		return nil
	}

	indexTemplate, err := template.New("docs-index").Parse(docsIndexHTML)
	if err != nil {
		return fmt.Errorf("parse docs template: %w", err)
	}

	indexHandler := func(c *fiber.Ctx) error {
		applyDocsBaseHeaders(c, fiber.MIMETextHTMLCharsetUTF8)
		c.Set(fiber.HeaderContentSecurityPolicy, "default-src 'none'; style-src 'unsafe-inline'; base-uri 'none'; form-action 'none'; frame-ancestors 'none'")

		data := docsPageData{
			Title:     "CU Fit API",
			Env:       cfg.AppEnv,
			Generated: time.Now().UTC().Format(time.RFC3339),
			Routes:    collectDocsRoutes(app),
		}
		var body bytes.Buffer
		if err := indexTemplate.Execute(&body, data); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to render api docs")
		}
		return c.Send(body.Bytes())
	}

	app.Get("/docs", indexHandler)
	app.Get("/docs/", indexHandler)
	app.Get("/docs/routes.json", func(c *fiber.Ctx) error {
		applyDocsBaseHeaders(c, fiber.MIMEApplicationJSONCharsetUTF8)
		return c.JSON(fiber.Map{"routes": collectDocsRoutes(app)})
	})
	return nil
}

// collectDocsRoutes lists registered routes, skipping HEAD duplicates and the
// docs pages themselves.
func collectDocsRoutes(app *fiber.App) []docsRoute {
	seen := make(map[string]bool)
	routes := make([]docsRoute, 0)
	for _, r := range app.GetRoutes(true) {
		if r.Method == fiber.MethodHead || strings.HasPrefix(r.Path, "/docs") {
			continue
		}
		key := r.Method + " " + r.Path
		if seen[key] {
			continue
		}
		seen[key] = true
		routes = append(routes, docsRoute{
			Method:     r.Method,
			Path:       r.Path,
			Deprecated: strings.HasPrefix(r.Name, compatRoutePrefix),
		})
	}
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Path == routes[j].Path {
			return routes[i].Method < routes[j].Method
		}
		return routes[i].Path < routes[j].Path
	})
	return routes
}

func applyDocsBaseHeaders(c *fiber.Ctx, contentType string) {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderCacheControl, "no-store, max-age=0")
	c.Set(fiber.HeaderPragma, "no-cache")
	c.Set(fiber.HeaderExpires, "0")
	c.Set(fiber.HeaderXContentTypeOptions, "nosniff")
	c.Set(fiber.HeaderXFrameOptions, "DENY")
	c.Set("Referrer-Policy", "no-referrer")
	c.Set("Cross-Origin-Resource-Policy", "same-origin")
	c.Set("X-Robots-Tag", "noindex, nofollow")
}
