package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Header("Content-Type", "application/json")
		c.String(http.StatusOK, swaggerJSON)
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>butterfly-api — Swagger</title>
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

// Minimal OpenAPI document describing the butterfly and user endpoints.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "butterfly-api", "version": "v0.1.0" },
  "paths": {
    "/butterflies/{id}": {
      "get": { "summary": "Get a butterfly by id", "parameters": [{"name":"id","in":"path","required":true,"schema":{"type":"string"}}], "responses": { "200": { "description": "the butterfly" }, "404": { "description": "not found" } } }
    },
    "/butterflies": {
      "post": { "summary": "Create a butterfly", "requestBody": { "content": { "application/json": { "schema": {"type":"object","required":["commonName","species","article"],"additionalProperties":false,"properties":{"commonName":{"type":"string"},"species":{"type":"string"},"article":{"type":"string"}}}}}}, "responses": { "200": { "description": "the created butterfly with a generated id" }, "400": { "description": "invalid request body" } } }
    },
    "/users/{id}": {
      "get": { "summary": "Get a user by id", "parameters": [{"name":"id","in":"path","required":true,"schema":{"type":"string"}}], "responses": { "200": { "description": "the user" }, "404": { "description": "not found" } } }
    },
    "/users": {
      "post": { "summary": "Create a user", "requestBody": { "content": { "application/json": { "schema": {"type":"object","required":["username"],"additionalProperties":false,"properties":{"username":{"type":"string"}}}}}}, "responses": { "200": { "description": "the created user with a generated id" }, "400": { "description": "invalid request body" } } }
    },
    "/users/ratings": {
      "post": { "summary": "Rate a butterfly for a user", "requestBody": { "content": { "application/json": { "schema": {"type":"object","required":["id","rating","butterfly"],"additionalProperties":false,"properties":{"id":{"type":"string"},"rating":{"type":"number","minimum":0,"maximum":5},"butterfly":{"type":"string"}}}}}}, "responses": { "200": { "description": "the accepted rating" }, "400": { "description": "invalid body or rating out of range" }, "404": { "description": "user not found" } } }
    },
    "/users/ratings/{userid}": {
      "get": { "summary": "Get a user's butterfly ratings", "parameters": [{"name":"userid","in":"path","required":true,"schema":{"type":"string"}}], "responses": { "200": { "description": "the rating list" }, "404": { "description": "no ratings found" } } }
    },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } }
  }
}`
