// Package swagger holds the OpenAPI description served at /swagger.
// Regenerate with: swag init -g cmd/api/main.go -o docs/swagger
package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/catalog": {
            "get": {
                "description": "Lists every item kind with its default price, wiring and extras limit (-1 means unlimited)",
                "produces": ["application/json"],
                "tags": ["receipts"],
                "summary": "List catalog",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/CatalogResponse"}
                    }
                }
            }
        },
        "/receipt": {
            "post": {
                "description": "Builds a cart from lines of items with nested extras and renders a fixed-width receipt, most expensive item first",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["receipts"],
                "summary": "Render receipt",
                "parameters": [
                    {
                        "description": "Cart and print options",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/RenderReceiptRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/RenderReceiptResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "413": {"description": "Request Entity Too Large", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "CatalogEntry": {
            "type": "object",
            "properties": {
                "family": {"type": "string"},
                "kind": {"type": "string"},
                "max_extras": {"type": "integer"},
                "name": {"type": "string"},
                "price": {"type": "string"},
                "wired": {"type": "boolean"}
            }
        },
        "CatalogResponse": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/CatalogEntry"}}
            }
        },
        "ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "lines[0]: extras[0]: extras not allowed: microwave cannot have any extras"}
            }
        },
        "LineRequest": {
            "type": "object",
            "required": ["kind"],
            "properties": {
                "extras": {"type": "array", "maxItems": 16, "items": {"$ref": "#/definitions/LineRequest"}},
                "kind": {"type": "string", "example": "console"},
                "overrides": {"type": "object", "additionalProperties": true}
            }
        },
        "ReceiptItem": {
            "type": "object",
            "properties": {
                "extras": {"type": "array", "items": {"$ref": "#/definitions/ReceiptItem"}},
                "kind": {"type": "string"},
                "name": {"type": "string"},
                "price": {"type": "string"},
                "total": {"type": "string"},
                "wired": {"type": "boolean"}
            }
        },
        "RenderReceiptRequest": {
            "type": "object",
            "properties": {
                "detailed": {"type": "boolean", "example": true},
                "grouped": {"type": "boolean", "example": false},
                "lines": {"type": "array", "maxItems": 100, "items": {"$ref": "#/definitions/LineRequest"}},
                "order": {"type": "string", "enum": ["asc", "desc"], "example": "asc"},
                "width": {"type": "integer", "minimum": 10, "maximum": 200, "example": 50}
            }
        },
        "RenderReceiptResponse": {
            "type": "object",
            "properties": {
                "cached": {"type": "boolean"},
                "item_count": {"type": "integer", "example": 4},
                "items": {"type": "array", "items": {"$ref": "#/definitions/ReceiptItem"}},
                "key": {"type": "string"},
                "lines": {"type": "array", "items": {"type": "string"}},
                "rendered_at": {"type": "string", "format": "date-time"},
                "text": {"type": "string"},
                "total": {"type": "string", "example": "555.00"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{"http", "https"},
	Title:            "ElectroCart API",
	Description:      "Builds electronics carts with nested extras and renders fixed-width receipts.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
