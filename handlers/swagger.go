package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints for the content API.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
// Content paths in the document are rooted at apiPrefix.
func RegisterSwagger(rg *gin.Engine, apiPrefix string) {
	doc := []byte(strings.ReplaceAll(swaggerJSON, "{{prefix}}", apiPrefix))

	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", doc)
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>ContentCraft API - Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

// Minimal OpenAPI document describing the public content endpoints.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "contentcraft-api", "version": "v1.0.0" },
  "components": {
    "schemas": {
      "Detail": { "type": "object", "properties": { "detail": { "type": "string" } } },
      "ValidationFailure": { "type": "object", "properties": { "detail": { "type": "string" }, "errors": { "type": "array", "items": { "type": "object", "properties": { "field": {"type":"string"}, "rule": {"type":"string"}, "param": {"type":"string"}, "message": {"type":"string"} } } } } },
      "PortfolioItemCreate": { "type": "object", "required": ["title","client","type","description","results"], "properties": { "title": {"type":"string","maxLength":200}, "client": {"type":"string","maxLength":100}, "type": {"type":"string","enum":["Video Scripts","Content Package","Channel Copy","Lead Magnet","Email Marketing","Thumbnail Copy"]}, "description": {"type":"string","maxLength":500}, "results": {"type":"string","maxLength":300}, "tags": {"type":"array","maxItems":10,"items":{"type":"string"}}, "is_active": {"type":"boolean","default":true} } },
      "TestimonialCreate": { "type": "object", "required": ["name","channel","subscribers","testimonial","rating"], "properties": { "name": {"type":"string","maxLength":100}, "channel": {"type":"string","maxLength":100}, "subscribers": {"type":"string","maxLength":20}, "testimonial": {"type":"string","maxLength":1000}, "rating": {"type":"integer","minimum":1,"maximum":5}, "is_active": {"type":"boolean","default":true} } },
      "StatsUpdate": { "type": "object", "properties": { "number": {"type":"string","maxLength":20}, "label": {"type":"string","maxLength":100}, "order": {"type":"integer","minimum":0} } },
      "ContactInquiryCreate": { "type": "object", "required": ["name","email","service","message"], "properties": { "name": {"type":"string","maxLength":100}, "email": {"type":"string","format":"email"}, "channel": {"type":"string","maxLength":100}, "subscribers": {"type":"string","maxLength":20}, "service": {"type":"string","maxLength":50}, "project": {"type":"string","maxLength":50}, "budget": {"type":"string","maxLength":20}, "message": {"type":"string","maxLength":2000} } },
      "ContactInquiryUpdate": { "type": "object", "properties": { "status": {"type":"string","enum":["new","contacted","in-progress","completed","closed"]} } }
    }
  },
  "paths": {
    "{{prefix}}/": { "get": { "summary": "API banner", "responses": { "200": { "description": "running" } } } },
    "{{prefix}}/portfolio": {
      "get": { "summary": "List portfolio items, newest first", "parameters": [ {"name":"type","in":"query","schema":{"type":"string"}}, {"name":"active","in":"query","schema":{"type":"boolean","default":true}} ], "responses": { "200": { "description": "portfolio items" }, "422": { "description": "invalid query" } } },
      "post": { "summary": "Create portfolio item", "requestBody": { "content": { "application/json": { "schema": {"$ref":"#/components/schemas/PortfolioItemCreate"} } } }, "responses": { "200": { "description": "created item" }, "422": { "description": "validation failed" } } }
    },
    "{{prefix}}/portfolio/{id}": {
      "put": { "summary": "Partially update portfolio item", "responses": { "200": { "description": "updated item" }, "404": { "description": "not found or no changes made" }, "422": { "description": "validation failed" } } },
      "delete": { "summary": "Delete portfolio item", "responses": { "200": { "description": "deleted" }, "404": { "description": "not found" } } }
    },
    "{{prefix}}/testimonials": {
      "get": { "summary": "List testimonials, newest first", "parameters": [ {"name":"active","in":"query","schema":{"type":"boolean","default":true}} ], "responses": { "200": { "description": "testimonials" } } },
      "post": { "summary": "Create testimonial", "requestBody": { "content": { "application/json": { "schema": {"$ref":"#/components/schemas/TestimonialCreate"} } } }, "responses": { "200": { "description": "created testimonial" }, "422": { "description": "validation failed" } } }
    },
    "{{prefix}}/stats": { "get": { "summary": "List stats by display order", "responses": { "200": { "description": "stats" } } } },
    "{{prefix}}/stats/{id}": {
      "put": { "summary": "Partially update stats item", "requestBody": { "content": { "application/json": { "schema": {"$ref":"#/components/schemas/StatsUpdate"} } } }, "responses": { "200": { "description": "updated stats" }, "404": { "description": "not found or no changes made" } } }
    },
    "{{prefix}}/contact": {
      "post": { "summary": "Submit contact inquiry", "requestBody": { "content": { "application/json": { "schema": {"$ref":"#/components/schemas/ContactInquiryCreate"} } } }, "responses": { "200": { "description": "stored inquiry with status new" }, "422": { "description": "validation failed" }, "429": { "description": "rate limit exceeded" } } },
      "get": { "summary": "List contact inquiries, newest first", "parameters": [ {"name":"status","in":"query","schema":{"type":"string"}}, {"name":"limit","in":"query","schema":{"type":"integer","minimum":1,"maximum":100,"default":50}} ], "responses": { "200": { "description": "inquiries" }, "422": { "description": "invalid query" } } }
    },
    "{{prefix}}/contact/{id}/status": {
      "put": { "summary": "Update inquiry status", "requestBody": { "content": { "application/json": { "schema": {"$ref":"#/components/schemas/ContactInquiryUpdate"} } } }, "responses": { "200": { "description": "updated inquiry" }, "404": { "description": "not found" } } }
    },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } },
    "/metrics": { "get": { "summary": "Prometheus metrics", "responses": { "200": { "description": "metrics" } } } }
  }
}`
