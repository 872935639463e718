// Package api contains the Swagger documentation of the API.
package api

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "description": "Entrypoint for the API, listing all endpoints",
                "tags": ["General"],
                "summary": "API root",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/router.RootResponse"}}
                }
            },
            "delete": {
                "description": "Permanently deletes all transactions and budgets",
                "tags": ["General"],
                "summary": "Delete everything",
                "parameters": [
                    {"type": "string", "description": "Confirmation to delete all resources. Must have the value 'yes-please-delete-everything'", "name": "confirm", "in": "query"}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/controllers.httpError"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/controllers.httpError"}}
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": ["General"],
                "summary": "Allowed HTTP verbs",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/version": {
            "get": {
                "description": "Returns the software version of the API",
                "tags": ["General"],
                "summary": "API version",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/router.VersionResponse"}}
                }
            }
        },
        "/healthz": {
            "get": {
                "description": "Returns the application health and, if not healthy, an error",
                "produces": ["application/json"],
                "tags": ["General"],
                "summary": "Get health",
                "responses": {
                    "204": {"description": "No Content"},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/healthz.Response"}}
                }
            }
        },
        "/transactions": {
            "get": {
                "description": "Returns all transactions, newest first",
                "produces": ["application/json"],
                "tags": ["Transactions"],
                "summary": "Get transactions",
                "parameters": [
                    {"type": "string", "description": "Only transactions in this month, YYYY-MM", "name": "month", "in": "query"},
                    {"type": "string", "description": "Only transactions of this category", "name": "category", "in": "query"},
                    {"type": "string", "description": "Glob pattern for the description, e.g. *lunch*", "name": "description", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Transaction"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/controllers.httpError"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/controllers.httpError"}}
                }
            },
            "post": {
                "description": "Creates a new transaction",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Transactions"],
                "summary": "Create transaction",
                "parameters": [
                    {"description": "Transaction", "name": "transaction", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.TransactionEditable"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Transaction"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/controllers.httpError"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/controllers.httpError"}}
                }
            }
        },
        "/transactions/{id}": {
            "get": {
                "description": "Returns a specific transaction",
                "produces": ["application/json"],
                "tags": ["Transactions"],
                "summary": "Get transaction",
                "parameters": [
                    {"type": "string", "description": "ID formatted as string", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Transaction"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/controllers.httpError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/controllers.httpError"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/controllers.httpError"}}
                }
            },
            "put": {
                "description": "Replaces amount, date, description and category of a transaction",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Transactions"],
                "summary": "Update transaction",
                "parameters": [
                    {"type": "string", "description": "ID formatted as string", "name": "id", "in": "path", "required": true},
                    {"description": "Transaction", "name": "transaction", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.TransactionEditable"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.httpMessage"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/controllers.httpError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/controllers.httpError"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/controllers.httpError"}}
                }
            },
            "delete": {
                "description": "Permanently deletes a transaction",
                "produces": ["application/json"],
                "tags": ["Transactions"],
                "summary": "Delete transaction",
                "parameters": [
                    {"type": "string", "description": "ID formatted as string", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.httpMessage"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/controllers.httpError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/controllers.httpError"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/controllers.httpError"}}
                }
            }
        },
        "/budgets": {
            "get": {
                "description": "Returns all budgets, ordered by month and category",
                "produces": ["application/json"],
                "tags": ["Budgets"],
                "summary": "Get budgets",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Budget"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/controllers.httpError"}}
                }
            },
            "post": {
                "description": "Sets the budget for a category in a month. An existing budget for the same category and month is replaced.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Budgets"],
                "summary": "Set budget",
                "parameters": [
                    {"description": "Budget", "name": "budget", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.BudgetEditable"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.httpMessage"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/controllers.httpError"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/controllers.httpError"}}
                }
            }
        },
        "/categories": {
            "get": {
                "description": "Returns the categories transactions and budgets can use",
                "produces": ["application/json"],
                "tags": ["Categories"],
                "summary": "Get categories",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"type": "string"}}}
                }
            }
        },
        "/summary": {
            "get": {
                "description": "Returns totals, recent transactions and the budget comparison for a month",
                "produces": ["application/json"],
                "tags": ["Summary"],
                "summary": "Get summary",
                "parameters": [
                    {"type": "string", "description": "Month for the budget comparison in YYYY-MM format, defaults to the current month", "name": "month", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.Summary"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/controllers.httpError"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/controllers.httpError"}}
                }
            }
        },
        "/charts/categories.png": {
            "get": {
                "description": "Renders a pie chart of the spending per category",
                "produces": ["image/png"],
                "tags": ["Charts"],
                "summary": "Category chart",
                "parameters": [
                    {"type": "string", "description": "Only use transactions in this month, YYYY-MM", "name": "month", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/controllers.httpError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/controllers.httpError"}}
                }
            }
        },
        "/charts/monthly.png": {
            "get": {
                "description": "Renders a bar chart of the spending per month",
                "produces": ["image/png"],
                "tags": ["Charts"],
                "summary": "Monthly chart",
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/controllers.httpError"}}
                }
            }
        },
        "/charts/budgets.png": {
            "get": {
                "description": "Renders a bar chart comparing budget and actual spending per category",
                "produces": ["image/png"],
                "tags": ["Charts"],
                "summary": "Budget chart",
                "parameters": [
                    {"type": "string", "description": "Month in YYYY-MM format, defaults to the current month", "name": "month", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/controllers.httpError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/controllers.httpError"}}
                }
            }
        },
        "/export": {
            "get": {
                "description": "Exports all transactions and budgets",
                "produces": ["application/json"],
                "tags": ["Export"],
                "summary": "Export",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.ExportResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/controllers.httpError"}}
                }
            }
        }
    },
    "definitions": {
        "aggregate.CategoryTotal": {
            "type": "object",
            "properties": {
                "category": {"type": "string", "example": "Food"},
                "total": {"type": "string", "example": "15.00"}
            }
        },
        "aggregate.Comparison": {
            "type": "object",
            "properties": {
                "actual": {"type": "string", "example": "40"},
                "budget": {"type": "string", "example": "100"},
                "category": {"type": "string", "example": "Food"}
            }
        },
        "aggregate.MonthlyTotal": {
            "type": "object",
            "properties": {
                "label": {"type": "string", "example": "Jan 2024"},
                "month": {"type": "string", "example": "2024-01"},
                "total": {"type": "string", "example": "148.20"}
            }
        },
        "controllers.BudgetEditable": {
            "type": "object",
            "properties": {
                "amount": {"description": "Positive amount, as number or string", "type": "string", "example": "250"},
                "category": {"description": "One of the configured categories", "type": "string", "example": "Food"},
                "month": {"description": "Year and month in YYYY-MM format", "type": "string", "example": "2024-05"}
            }
        },
        "controllers.ExportResponse": {
            "type": "object",
            "properties": {
                "creationTime": {"description": "Time the export was created", "type": "string", "example": "2024-05-12T17:59:23.143527Z"},
                "data": {"$ref": "#/definitions/store.Export"},
                "version": {"description": "Version of the backend that created the export", "type": "string", "example": "1.2.0"}
            }
        },
        "controllers.Summary": {
            "type": "object",
            "properties": {
                "budgetComparison": {"type": "array", "items": {"$ref": "#/definitions/aggregate.Comparison"}},
                "categoryTotals": {"type": "array", "items": {"$ref": "#/definitions/aggregate.CategoryTotal"}},
                "currentMonth": {"type": "array", "items": {"$ref": "#/definitions/aggregate.CategoryTotal"}},
                "month": {"type": "string", "example": "2024-05"},
                "monthlyTotals": {"type": "array", "items": {"$ref": "#/definitions/aggregate.MonthlyTotal"}},
                "recent": {"type": "array", "items": {"$ref": "#/definitions/models.Transaction"}},
                "total": {"type": "string", "example": "1520.34"}
            }
        },
        "controllers.TransactionEditable": {
            "type": "object",
            "properties": {
                "amount": {"description": "Positive amount, as number or string", "type": "string", "example": "14.03"},
                "category": {"description": "One of the configured categories", "type": "string", "example": "Food"},
                "date": {"description": "Date in YYYY-MM-DD or RFC3339 format", "type": "string", "example": "2024-05-12"},
                "description": {"description": "Optional description", "type": "string", "example": "Lunch with Mara"}
            }
        },
        "controllers.httpError": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "the specified resource ID is not a valid UUID"}
            }
        },
        "controllers.httpMessage": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "Transaction updated"}
            }
        },
        "healthz.Response": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "the database cannot be accessed"}
            }
        },
        "models.Budget": {
            "type": "object",
            "properties": {
                "amount": {"type": "string", "example": "250"},
                "category": {"type": "string", "example": "Food"},
                "createdAt": {"type": "string", "example": "2022-04-02T19:28:44.491514Z"},
                "month": {"type": "string", "example": "2024-05"},
                "updatedAt": {"type": "string", "example": "2022-04-17T20:14:01.048145Z"}
            }
        },
        "models.Transaction": {
            "type": "object",
            "properties": {
                "amount": {"type": "string", "example": "14.03"},
                "category": {"type": "string", "example": "Food"},
                "createdAt": {"type": "string", "example": "2022-04-02T19:28:44.491514Z"},
                "date": {"type": "string", "example": "2024-05-12"},
                "description": {"type": "string", "example": "Lunch with Mara"},
                "id": {"type": "string", "example": "65392deb-5e92-4268-b114-297faad6cdce"},
                "updatedAt": {"type": "string", "example": "2022-04-17T20:14:01.048145Z"}
            }
        },
        "router.RootLinks": {
            "type": "object",
            "properties": {
                "budgets": {"type": "string", "example": "https://example.com/api/budgets"},
                "categories": {"type": "string", "example": "https://example.com/api/categories"},
                "charts": {"type": "string", "example": "https://example.com/api/charts/categories.png"},
                "docs": {"type": "string", "example": "https://example.com/api/docs/index.html"},
                "export": {"type": "string", "example": "https://example.com/api/export"},
                "healthz": {"type": "string", "example": "https://example.com/api/healthz"},
                "metrics": {"type": "string", "example": "https://example.com/api/metrics"},
                "summary": {"type": "string", "example": "https://example.com/api/summary"},
                "transactions": {"type": "string", "example": "https://example.com/api/transactions"},
                "version": {"type": "string", "example": "https://example.com/api/version"}
            }
        },
        "router.RootResponse": {
            "type": "object",
            "properties": {
                "links": {"$ref": "#/definitions/router.RootLinks"}
            }
        },
        "router.VersionObject": {
            "type": "object",
            "properties": {
                "version": {"type": "string", "example": "1.1.0"}
            }
        },
        "router.VersionResponse": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/router.VersionObject"}
            }
        },
        "store.Export": {
            "type": "object",
            "properties": {
                "budgets": {"type": "array", "items": {"$ref": "#/definitions/models.Budget"}},
                "transactions": {"type": "array", "items": {"$ref": "#/definitions/models.Transaction"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "",
	Host:             "",
	BasePath:         "",
	Schemes:          []string{},
	Title:            "",
	Description:      "",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
