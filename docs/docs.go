// Package docs registers the Swagger document served at /swagger/*any.
// Regenerate with `swag init -g cmd/api/main.go`.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/commands": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Commands"],
                "summary": "Execute a natural-language command",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/http.commandReq"}}],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"},
                    "422": {"description": "Command not recognized"},
                    "429": {"description": "Too Many Requests"}
                }
            }
        },
        "/api/v1/commands/parse": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Commands"],
                "summary": "Interpret a command without executing it",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/http.commandReq"}}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/commands/examples": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["Commands"],
                "summary": "List example commands",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/commands/suggestions": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["Commands"],
                "summary": "List quick-action suggestions",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/tasks": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "List tasks",
                "parameters": [
                    {"type": "string", "name": "processo", "in": "query"},
                    {"type": "string", "name": "tipo", "in": "query"},
                    {"type": "string", "name": "entidade", "in": "query"},
                    {"type": "string", "name": "obra", "in": "query"},
                    {"type": "string", "name": "q", "in": "query"},
                    {"type": "integer", "name": "limit", "in": "query"},
                    {"type": "integer", "name": "offset", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "Create a task",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/api/v1/tasks/stats": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "Task counters",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/tasks/export": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["text/csv", "application/json"],
                "tags": ["Tasks"],
                "summary": "Export tasks",
                "parameters": [
                    {"type": "string", "name": "format", "in": "query", "enum": ["csv", "json"]},
                    {"type": "string", "name": "filter", "in": "query", "enum": ["all", "pending", "completed", "overdue"]}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/api/v1/tasks/{id}": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "Task detail",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "put": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "Update a task",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "delete": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "Delete a task",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        }
    },
    "definitions": {
        "http.commandReq": {
            "type": "object",
            "properties": {"text": {"type": "string", "example": "Mostrar pendentes para esta semana"}}
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {"type": "apiKey", "name": "X-API-Key", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "Assistente de Gestão API",
	Description:      "Contract and work-order deadline tracker driven by Portuguese commands.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
