// Package docs contains the OpenAPI description served by the swagger UI
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
        "/currencies": {
            "get": {
                "description": "Returns all ACTIVE currencies, optionally filtered by code and name",
                "produces": ["application/json"],
                "tags": ["currencies"],
                "summary": "List currencies",
                "parameters": [
                    {"maxLength": 3, "minLength": 3, "type": "string", "description": "Currency code", "name": "code", "in": "query"},
                    {"type": "string", "description": "Currency name", "name": "name", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/schema.CurrencyListResponse"}},
                    "400": {"description": "Invalid query arguments", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "429": {"description": "Rate limit exceeded", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            },
            "post": {
                "description": "Creates an ACTIVE currency. The code must not be used by another ACTIVE currency.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["currencies"],
                "summary": "Create a new currency",
                "parameters": [
                    {"description": "Currency name and code", "name": "currency", "in": "body", "required": true, "schema": {"$ref": "#/definitions/schema.CurrencyCreateRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/schema.CreatedResponse"}},
                    "400": {"description": "Invalid request body", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "409": {"description": "Duplicated code", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "422": {"description": "Rejected by storage", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "429": {"description": "Rate limit exceeded", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/currencies/{id}": {
            "get": {
                "description": "Returns an ACTIVE currency with resource links",
                "produces": ["application/json"],
                "tags": ["currencies"],
                "summary": "Get a currency by ID",
                "parameters": [{"type": "integer", "description": "Currency ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/schema.CurrencyDetailResponse"}},
                    "404": {"description": "Currency not found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "429": {"description": "Rate limit exceeded", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            },
            "patch": {
                "description": "Changes name, code or status of an ACTIVE currency",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["currencies"],
                "summary": "Update a currency",
                "parameters": [
                    {"type": "integer", "description": "Currency ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "currency", "in": "body", "required": true, "schema": {"$ref": "#/definitions/schema.CurrencyUpdateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/schema.CurrencyUpdatedResponse"}},
                    "400": {"description": "Invalid request body", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "404": {"description": "Currency not found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "409": {"description": "Duplicated code", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "429": {"description": "Rate limit exceeded", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            },
            "delete": {
                "description": "Soft-deletes an ACTIVE currency. Its rates are kept.",
                "tags": ["currencies"],
                "summary": "Delete a currency",
                "parameters": [{"type": "integer", "description": "Currency ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Currency not found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "409": {"description": "Rejected by storage", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "429": {"description": "Rate limit exceeded", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "Returns the health status of the API and its database",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.HealthResponse"}},
                    "503": {"description": "Service unavailable", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/rates": {
            "get": {
                "description": "Returns rates whose base and quote currencies are both ACTIVE",
                "produces": ["application/json"],
                "tags": ["rates"],
                "summary": "List exchange rates",
                "parameters": [
                    {"type": "string", "description": "Quote currency code", "name": "currency", "in": "query"},
                    {"type": "string", "description": "Base currency code", "name": "baseCurrency", "in": "query"},
                    {"type": "number", "description": "Exact rate", "name": "rate", "in": "query"},
                    {"type": "boolean", "description": "Cash rate", "name": "isCash", "in": "query"},
                    {"enum": ["BUY", "SELL"], "type": "string", "description": "Operation type", "name": "operationType", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/schema.RateListResponse"}},
                    "400": {"description": "Invalid query arguments", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "429": {"description": "Rate limit exceeded", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            },
            "post": {
                "description": "Creates a rate between two ACTIVE currencies given by code",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["rates"],
                "summary": "Create a new rate",
                "parameters": [
                    {"description": "Rate to create", "name": "rate", "in": "body", "required": true, "schema": {"$ref": "#/definitions/schema.RateCreateRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/schema.CreatedResponse"}},
                    "400": {"description": "Invalid request body or unknown currency", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "422": {"description": "Rejected by storage", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "429": {"description": "Rate limit exceeded", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/rates/{id}": {
            "get": {
                "description": "Returns a rate with both currencies nested",
                "produces": ["application/json"],
                "tags": ["rates"],
                "summary": "Get a rate by ID",
                "parameters": [{"type": "integer", "description": "Rate ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/schema.RateDetailResponse"}},
                    "404": {"description": "Rate not found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "429": {"description": "Rate limit exceeded", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            },
            "patch": {
                "description": "Changes operationType, rate or isCash. Currencies cannot be changed.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["rates"],
                "summary": "Update a rate",
                "parameters": [
                    {"type": "integer", "description": "Rate ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "rate", "in": "body", "required": true, "schema": {"$ref": "#/definitions/schema.RateUpdateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/schema.RateUpdatedResponse"}},
                    "400": {"description": "Invalid request body", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "404": {"description": "Rate not found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "429": {"description": "Rate limit exceeded", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["rates"],
                "summary": "Delete a rate",
                "parameters": [{"type": "integer", "description": "Rate ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Rate not found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "409": {"description": "Rejected by storage", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "429": {"description": "Rate limit exceeded", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "models.ErrorResponse": {
            "type": "object",
            "properties": {
                "details": {"type": "object"},
                "message": {"type": "string", "example": "Page not found."},
                "status": {"type": "string", "example": "FAILED"}
            }
        },
        "models.HealthResponse": {
            "type": "object",
            "properties": {
                "database": {"type": "string", "example": "up"},
                "status": {"type": "string", "example": "healthy"},
                "time": {"type": "string", "example": "2024-03-20T13:00:00Z"}
            }
        },
        "schema.CreatedResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer", "example": 1},
                "status": {"type": "string", "example": "CREATED"}
            }
        },
        "schema.CurrencyCreateRequest": {
            "type": "object",
            "required": ["code", "name"],
            "properties": {
                "code": {"type": "string", "maxLength": 3, "minLength": 3, "example": "USD"},
                "name": {"type": "string", "maxLength": 20, "minLength": 2, "example": "US Dollar"}
            }
        },
        "schema.CurrencyDetailResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "string", "example": "USD"},
                "created": {"type": "string", "example": "16-10-2026 10:00:00"},
                "id": {"type": "integer", "example": 1},
                "metadata": {"$ref": "#/definitions/schema.Links"},
                "name": {"type": "string", "example": "US Dollar"},
                "status": {"type": "string", "example": "ACT"},
                "updated": {"type": "string", "example": "16-10-2026 11:30:00"}
            }
        },
        "schema.CurrencyListResponse": {
            "type": "object",
            "properties": {
                "currencies": {"type": "array", "items": {"$ref": "#/definitions/schema.CurrencyResponse"}},
                "next": {"type": "string"}
            }
        },
        "schema.CurrencyMinimalResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "string", "example": "USD"},
                "id": {"type": "integer", "example": 1}
            }
        },
        "schema.CurrencyResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "string", "example": "USD"},
                "id": {"type": "integer", "example": 1},
                "name": {"type": "string", "example": "US Dollar"},
                "status": {"type": "string", "example": "ACT"}
            }
        },
        "schema.CurrencyUpdateRequest": {
            "type": "object",
            "properties": {
                "code": {"type": "string", "maxLength": 3, "minLength": 3, "example": "USD"},
                "name": {"type": "string", "maxLength": 20, "minLength": 2, "example": "Dollar"},
                "status": {"type": "string", "enum": ["ACT", "DEL"], "example": "ACT"}
            }
        },
        "schema.CurrencyUpdatedResponse": {
            "type": "object",
            "properties": {
                "record": {"$ref": "#/definitions/schema.CurrencyResponse"},
                "status": {"type": "string", "example": "UPDATED"}
            }
        },
        "schema.Links": {
            "type": "object",
            "properties": {
                "collection": {"type": "string", "example": "http://localhost:8080/api/v1/currencies"},
                "self": {"type": "string", "example": "http://localhost:8080/api/v1/currencies/1"}
            }
        },
        "schema.RateCreateRequest": {
            "type": "object",
            "required": ["baseCurrency", "currency", "isCash", "operationType", "rate"],
            "properties": {
                "baseCurrency": {"type": "string", "example": "USD"},
                "currency": {"type": "string", "example": "EUR"},
                "isCash": {"type": "boolean", "example": true},
                "operationType": {"type": "string", "enum": ["BUY", "SELL"], "example": "BUY"},
                "rate": {"type": "number", "example": 0.92}
            }
        },
        "schema.RateDetailResponse": {
            "type": "object",
            "properties": {
                "baseCurrency": {"$ref": "#/definitions/schema.CurrencyMinimalResponse"},
                "created": {"type": "string", "example": "16-10-2026 10:00:00"},
                "currency": {"$ref": "#/definitions/schema.CurrencyMinimalResponse"},
                "id": {"type": "integer", "example": 1},
                "isCash": {"type": "boolean", "example": true},
                "metadata": {"$ref": "#/definitions/schema.Links"},
                "operationType": {"type": "string", "example": "BUY"},
                "rate": {"type": "number", "example": 0.92},
                "updated": {"type": "string", "example": "16-10-2026 11:30:00"}
            }
        },
        "schema.RateListResponse": {
            "type": "object",
            "properties": {
                "next": {"type": "string"},
                "rates": {"type": "array", "items": {"$ref": "#/definitions/schema.RateResponse"}}
            }
        },
        "schema.RateResponse": {
            "type": "object",
            "properties": {
                "baseCurrency": {"type": "string", "example": "USD"},
                "currency": {"type": "string", "example": "EUR"},
                "id": {"type": "integer", "example": 1},
                "isCash": {"type": "boolean", "example": true},
                "operationType": {"type": "string", "example": "BUY"},
                "rate": {"type": "number", "example": 0.92}
            }
        },
        "schema.RateUpdateRequest": {
            "type": "object",
            "properties": {
                "isCash": {"type": "boolean", "example": false},
                "operationType": {"type": "string", "enum": ["BUY", "SELL"], "example": "SELL"},
                "rate": {"type": "number", "example": 0.93}
            }
        },
        "schema.RateUpdatedResponse": {
            "type": "object",
            "properties": {
                "record": {"$ref": "#/definitions/schema.RateResponse"},
                "status": {"type": "string", "example": "UPDATED"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Currency Rates API",
	Description:      "Currencies and exchange rates between them.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
