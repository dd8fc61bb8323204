// Package docs holds the OpenAPI description served at /swagger/*. The
// document is maintained by hand in the layout swag emits; keep it in step
// with the handler annotations.
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
        "/signup": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Sign up",
                "parameters": [
                    {
                        "description": "Account details",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/ports.SignupInput"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Log in",
                "parameters": [
                    {
                        "description": "Login credentials",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handler.loginRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.loginResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.messageResponse"}}
                }
            }
        },
        "/api/bookings": {
            "get": {
                "produces": ["application/json"],
                "tags": ["bookings"],
                "summary": "List bookings of a user",
                "parameters": [
                    {
                        "type": "string",
                        "description": "User id (defaults to the demo user)",
                        "name": "user_id",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.listBookingsResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["bookings"],
                "summary": "Create a booking",
                "parameters": [
                    {
                        "description": "Booking details",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/ports.CreateBookingInput"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.messageResponse"}}
                }
            }
        },
        "/api/profile": {
            "get": {
                "produces": ["application/json"],
                "tags": ["profile"],
                "summary": "Current profile (demo: first stored account)",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.profileResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.messageResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handler.messageResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"}
            }
        },
        "handler.loginRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "handler.userResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"}
            }
        },
        "handler.loginResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "user": {"$ref": "#/definitions/handler.userResponse"}
            }
        },
        "handler.bookingResponse": {
            "description": "Stored booking; fields supplied as null are null, extra keys from creation are included.",
            "type": "object",
            "additionalProperties": true,
            "properties": {
                "id": {"type": "string"},
                "user_id": {"type": "string"},
                "car_id": {"type": "string"},
                "car_name": {"type": "string"},
                "car_image": {"type": "string"},
                "start_date": {"type": "string"},
                "end_date": {"type": "string"},
                "location": {"type": "string"},
                "price": {"type": "number"},
                "status": {"type": "string"}
            }
        },
        "handler.listBookingsResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "bookings": {"type": "array", "items": {"$ref": "#/definitions/handler.bookingResponse"}}
            }
        },
        "handler.profileUserResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "avatar": {"type": "string"},
                "memberSince": {"type": "string"}
            }
        },
        "handler.profileResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "user": {"$ref": "#/definitions/handler.profileUserResponse"}
            }
        },
        "ports.SignupInput": {
            "type": "object",
            "required": ["name", "email", "password", "agreeTerms"],
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string", "minLength": 6},
                "agreeTerms": {"type": "boolean"}
            }
        },
        "ports.CreateBookingInput": {
            "description": "A required key counts as supplied even when null. Keys outside this schema are stored as given and returned by GET /api/bookings.",
            "type": "object",
            "additionalProperties": true,
            "required": ["user_id", "car_id", "car_name", "car_image", "start_date", "end_date", "location", "price"],
            "properties": {
                "user_id": {"type": "string"},
                "car_id": {"type": "string"},
                "car_name": {"type": "string"},
                "car_image": {"type": "string"},
                "start_date": {"type": "string"},
                "end_date": {"type": "string"},
                "location": {"type": "string"},
                "price": {"type": "number"},
                "status": {"type": "string"}
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
	Title:            "Car Rental API",
	Description:      "Signup, login, bookings and profile for the car rental web client.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
