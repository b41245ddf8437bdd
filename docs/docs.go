// Package docs holds the generated OpenAPI document served at /swagger.
// Regenerate with: swag init -g cmd/server/main.go
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
        "/auth/register": {
            "post": {
                "tags": ["auth"],
                "summary": "Register a new user",
                "responses": {
                    "201": {"description": "Created"},
                    "409": {"description": "Conflict"},
                    "422": {"description": "Unprocessable Entity"},
                    "429": {"description": "Too Many Requests"}
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Login",
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized"},
                    "429": {"description": "Too Many Requests"}
                }
            }
        },
        "/auth/refresh": {
            "post": {
                "tags": ["auth"],
                "summary": "Refresh access token",
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "tags": ["auth"],
                "summary": "Logout",
                "security": [{"ApiKeyAuth": []}],
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/users/me": {
            "get": {
                "tags": ["users"],
                "summary": "Current user profile",
                "security": [{"ApiKeyAuth": []}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/users/role/{role}": {
            "get": {
                "tags": ["users"],
                "summary": "List users by role",
                "security": [{"ApiKeyAuth": []}],
                "parameters": [{"type": "string", "name": "role", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/waste/report": {
            "post": {
                "tags": ["waste"],
                "summary": "Report a waste incident",
                "security": [{"ApiKeyAuth": []}],
                "responses": {
                    "201": {"description": "Created"},
                    "422": {"description": "Unprocessable Entity"}
                }
            }
        },
        "/waste/my-reports": {
            "get": {
                "tags": ["waste"],
                "summary": "List own waste reports",
                "security": [{"ApiKeyAuth": []}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/waste/reports": {
            "get": {
                "tags": ["waste"],
                "summary": "List the report queue",
                "security": [{"ApiKeyAuth": []}],
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}
            }
        },
        "/waste/reports/{id}/status": {
            "patch": {
                "tags": ["waste"],
                "summary": "Update a report's status",
                "security": [{"ApiKeyAuth": []}],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"},
                    "422": {"description": "Unprocessable Entity"}
                }
            }
        },
        "/waste/schedule": {
            "post": {
                "tags": ["waste"],
                "summary": "Schedule a pickup",
                "security": [{"ApiKeyAuth": []}],
                "responses": {
                    "201": {"description": "Created"},
                    "422": {"description": "Unprocessable Entity"}
                }
            }
        },
        "/events": {
            "get": {
                "tags": ["events"],
                "summary": "List community events",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["events"],
                "summary": "Create a community event",
                "security": [{"ApiKeyAuth": []}],
                "responses": {
                    "201": {"description": "Created"},
                    "403": {"description": "Forbidden"},
                    "422": {"description": "Unprocessable Entity"}
                }
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {
            "type": "apiKey",
            "name": "x-auth-token",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Chemba Waste Platform API",
	Description:      "Civic waste reporting, reward points, pickup scheduling and community events.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
