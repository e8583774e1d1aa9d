package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Lanyard API",
        "description": "Student scan-count lookup backed by the lanyard spreadsheet",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http",
        "https"
    ],
    "tags": [
        {"name": "Lookup", "description": "Student scan counts and tiers"},
        {"name": "Health", "description": "Liveness and readiness probes"}
    ],
    "paths": {
        "/": {
            "get": {
                "tags": ["Lookup"],
                "summary": "Liveness banner",
                "produces": ["text/plain"],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "string"}}
                }
            }
        },
        "/health": {
            "get": {
                "tags": ["Health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "tags": ["Health"],
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"},
                    "503": {"description": "Store not configured", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/api/student": {
            "get": {
                "tags": ["Lookup"],
                "summary": "Look up a student's scan count and tier",
                "produces": ["application/json"],
                "parameters": [
                    {"name": "id", "in": "query", "required": true, "type": "string", "description": "Student ID"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/LookupResult"}},
                    "400": {"description": "Missing student ID", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "404": {"description": "Student not found", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "500": {"description": "Store failure or credentials not loaded", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/api/cache/invalidate": {
            "post": {
                "tags": ["Lookup"],
                "summary": "Drop the cached roster",
                "responses": {
                    "204": {"description": "No Content"},
                    "500": {"description": "Cache failure", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        }
    },
    "definitions": {
        "LookupResult": {
            "type": "object",
            "properties": {
                "student_id": {"type": "string"},
                "name": {"type": "string"},
                "class_year": {"type": "string"},
                "team": {"type": "string"},
                "scan_count": {"type": "integer"},
                "tier": {"type": "string"},
                "color": {"type": "string"}
            }
        },
        "ErrorBody": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
