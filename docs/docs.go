// Package docs registers the Swagger 2.0 description of the coffee API
// with swag, which gin-swagger serves as doc.json.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/login/kakao/oauth": {
            "get": {
                "tags": ["identity"],
                "summary": "Exchange a Kakao authorization code for a token set",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "description": "Authorization code", "name": "code", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/OAuthToken"}},
                    "400": {"description": "Missing code or rejected by the provider", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "502": {"description": "Provider unreachable", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/users": {
            "get": {
                "tags": ["identity"],
                "summary": "List users by offset",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "integer", "default": 0, "minimum": 0, "name": "skip", "in": "query"},
                    {"type": "integer", "default": 10, "minimum": 0, "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/User"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/users/{user_id}": {
            "get": {
                "tags": ["identity"],
                "summary": "Get a user",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "integer", "name": "user_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/User"}},
                    "404": {"description": "User not found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/coffee/{cafe_id}/rule": {
            "get": {
                "tags": ["collection"],
                "summary": "List the pickup rules of a cafe",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "integer", "name": "cafe_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Rule"}}}
                }
            },
            "post": {
                "tags": ["collection"],
                "summary": "Append pickup rules, one per collect day",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "integer", "name": "cafe_id", "in": "path", "required": true},
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateRulesRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"type": "array", "items": {"$ref": "#/definitions/Rule"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/coffee/{cafe_id}/transaction": {
            "get": {
                "tags": ["collection"],
                "summary": "List the collection transactions of a cafe",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "integer", "name": "cafe_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Transaction"}}}
                }
            },
            "post": {
                "tags": ["collection"],
                "summary": "Record a collection transaction",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "integer", "name": "cafe_id", "in": "path", "required": true},
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateTransactionRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Transaction"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["collection"],
                "summary": "Cancel a collection transaction",
                "consumes": ["application/json"],
                "parameters": [
                    {"type": "integer", "name": "cafe_id", "in": "path", "required": true},
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CancelTransactionRequest"}}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/coffee/{cafe_id}/carbon": {
            "get": {
                "tags": ["collection"],
                "summary": "Sum of completed collection amounts",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "integer", "name": "cafe_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Carbon"}}
                }
            }
        }
    },
    "definitions": {
        "ErrorResponse": {
            "type": "object",
            "properties": {
                "detail": {"type": "string"},
                "code": {"type": "string"},
                "request_id": {"type": "string"},
                "details": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {"field": {"type": "string"}, "message": {"type": "string"}}
                    }
                }
            }
        },
        "OAuthToken": {
            "type": "object",
            "properties": {
                "access_token": {"type": "string"},
                "refresh_token": {"type": "string"},
                "expires_in": {"type": "integer"},
                "scope": {"type": "string"},
                "token_type": {"type": "string"}
            }
        },
        "User": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "token": {"type": "string"},
                "name": {"type": "string"},
                "address": {"type": "string"},
                "phone_number": {"type": "string"},
                "role": {"type": "string"},
                "created_at": {"type": "string", "format": "date-time"},
                "updated_at": {"type": "string", "format": "date-time"}
            }
        },
        "Rule": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "cafe_id": {"type": "integer"},
                "weekday": {"type": "integer"},
                "time": {"type": "string"}
            }
        },
        "CreateRulesRequest": {
            "type": "object",
            "required": ["collect_days", "amount", "position"],
            "properties": {
                "collect_days": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "required": ["weekday", "time"],
                        "properties": {"weekday": {"type": "integer"}, "time": {"type": "string"}}
                    }
                },
                "amount": {"type": "integer"},
                "position": {"type": "string"}
            }
        },
        "Transaction": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "cafe_id": {"type": "integer"},
                "client_name": {"type": "string"},
                "time": {"type": "string", "format": "date-time"},
                "amount": {"type": "integer"},
                "status": {"type": "string", "enum": ["Waiting", "COMPLETED"]}
            }
        },
        "CreateTransactionRequest": {
            "type": "object",
            "required": ["history_id", "client_name", "time", "state", "amount"],
            "properties": {
                "history_id": {"type": "integer"},
                "client_name": {"type": "string"},
                "time": {"type": "string", "format": "date-time"},
                "state": {"type": "string"},
                "amount": {"type": "integer"}
            }
        },
        "CancelTransactionRequest": {
            "type": "object",
            "required": ["history_id"],
            "properties": {"history_id": {"type": "integer"}}
        },
        "Carbon": {
            "type": "object",
            "properties": {"carbon": {"type": "integer"}}
        }
    }
}`

// SwaggerInfo holds the exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Coffee Collection API",
	Description:      "Cafe coffee-ground pickup rules, collection transactions and carbon totals.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
