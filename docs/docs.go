// Package docs holds the OpenAPI description served under /swagger.
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
        "/api/v1/documents": {
            "get": {
                "produces": ["application/json"],
                "tags": ["documents"],
                "summary": "List documents matching the filter",
                "parameters": [
                    {"type": "string", "description": "Document status or All", "name": "status", "in": "query"},
                    {"type": "string", "description": "Document type or All", "name": "type", "in": "query"},
                    {"type": "string", "description": "Creator name or All", "name": "creator", "in": "query"},
                    {"type": "string", "description": "Created on or after (YYYY-MM-DD)", "name": "from", "in": "query"},
                    {"type": "string", "description": "Created on or before (YYYY-MM-DD)", "name": "to", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/api/v1/users": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "List users matching the filter",
                "parameters": [
                    {"type": "string", "description": "Account status or All", "name": "status", "in": "query"},
                    {"type": "string", "description": "Role or All", "name": "role", "in": "query"},
                    {"type": "string", "description": "Department or All", "name": "department", "in": "query"},
                    {"type": "string", "description": "Created on or after (YYYY-MM-DD)", "name": "from", "in": "query"},
                    {"type": "string", "description": "Created on or before (YYYY-MM-DD)", "name": "to", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/api/v1/announcements": {
            "get": {
                "produces": ["application/json"],
                "tags": ["announcements"],
                "summary": "List announcements matching the filter",
                "parameters": [
                    {"type": "string", "description": "Announcement status or All", "name": "status", "in": "query"},
                    {"type": "string", "description": "Visible to All, Restricted or All", "name": "visibility", "in": "query"},
                    {"type": "string", "description": "Creator name or All", "name": "creator", "in": "query"},
                    {"type": "string", "description": "Created on or after (YYYY-MM-DD)", "name": "from", "in": "query"},
                    {"type": "string", "description": "Created on or before (YYYY-MM-DD)", "name": "to", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/api/v1/notifications": {
            "get": {
                "produces": ["application/json"],
                "tags": ["notifications"],
                "summary": "List notifications matching the filter",
                "parameters": [
                    {"type": "string", "description": "Notification type or All", "name": "type", "in": "query"},
                    {"type": "string", "description": "Created on or after (YYYY-MM-DD)", "name": "from", "in": "query"},
                    {"type": "string", "description": "Created on or before (YYYY-MM-DD)", "name": "to", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/api/v1/metrics/key": {
            "get": {
                "produces": ["application/json"],
                "tags": ["reports"],
                "summary": "Headline numbers of the session snapshot",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/analytics.KeyMetrics"}}
                }
            }
        },
        "/api/v1/status": {
            "get": {
                "produces": ["application/json"],
                "tags": ["session"],
                "summary": "Snapshot load time, row counts and load warnings",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.statusResponse"}}
                }
            }
        },
        "/api/v1/refresh": {
            "post": {
                "produces": ["application/json"],
                "tags": ["session"],
                "summary": "Reload the session snapshot from the database",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.statusResponse"}}
                }
            }
        },
        "/api/v1/report.pdf": {
            "get": {
                "produces": ["application/pdf"],
                "tags": ["reports"],
                "summary": "Render the analytics report as PDF",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}}
                }
            }
        },
        "/api/v1/reports": {
            "post": {
                "produces": ["application/json"],
                "tags": ["reports"],
                "summary": "Render the report, store it and return a download link",
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/service.ArchivedReport"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Database connectivity check",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        }
    },
    "definitions": {
        "analytics.KeyMetrics": {
            "type": "object",
            "properties": {
                "active_users": {"type": "integer"},
                "published_announcements": {"type": "integer"},
                "recent_notifications": {"type": "integer"},
                "total_documents": {"type": "integer"}
            }
        },
        "handler.errorEnvelope": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "handler.errorPayload": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/handler.errorEnvelope"},
                "request_id": {"type": "string"}
            }
        },
        "handler.statusResponse": {
            "type": "object",
            "properties": {
                "counts": {"type": "object", "additionalProperties": {"type": "integer"}},
                "loaded_at": {"type": "string"},
                "session_id": {"type": "string"},
                "warnings": {"type": "array", "items": {"type": "string"}}
            }
        },
        "service.ArchivedReport": {
            "type": "object",
            "properties": {
                "expires_at": {"type": "string"},
                "filename": {"type": "string"},
                "url": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "DMS Analytics API",
	Description:      "Read-only analytics over a document-management database: filtered views, summaries, CSV and PDF exports.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
