package http

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v3"
)

//go:embed openapi.yaml
var openAPISource []byte

const docsPage = `<!DOCTYPE html>
<html>
<head>
  <title>Terminal Portfolio API</title>
  <meta charset="utf-8"/>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css"/>
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>SwaggerUIBundle({url: "/docs/openapi.json", dom_id: "#swagger-ui"});</script>
</body>
</html>`

// DocsHandler serves the API description. It is only mounted outside
// production.
type DocsHandler struct {
	spec []byte
}

// NewDocsHandler parses the embedded OpenAPI YAML once and renders it as
// JSON with info.version set to version.
func NewDocsHandler(version string) (*DocsHandler, error) {
	var doc map[string]interface{}
	if err := yaml.Unmarshal(openAPISource, &doc); err != nil {
		return nil, fmt.Errorf("parse openapi.yaml: %w", err)
	}

	if info, ok := doc["info"].(map[string]interface{}); ok {
		info["version"] = version
	}

	spec, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode openapi document: %w", err)
	}
	return &DocsHandler{spec: spec}, nil
}

func (h *DocsHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/docs", h.page)
	r.GET("/docs/openapi.json", h.document)
}

func (h *DocsHandler) page(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(docsPage))
}

func (h *DocsHandler) document(c *gin.Context) {
	c.Data(http.StatusOK, "application/json", h.spec)
}
