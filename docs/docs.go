// Package docs holds the OpenAPI document served at /swagger. It mirrors the
// swag template format so the swagger UI consumes it unchanged.
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
        "/users/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Register a new user",
                "parameters": [
                    {
                        "description": "Credentials",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handler.CredentialsRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.AuthResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.Error"}}
                }
            }
        },
        "/users/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Login with email and password",
                "parameters": [
                    {
                        "description": "Credentials",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handler.CredentialsRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.AuthResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.Error"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.Error"}}
                }
            }
        },
        "/users/profile": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Get the authenticated user's record",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.User"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.Error"}}
                }
            }
        },
        "/workouts": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["workouts"],
                "summary": "List workouts, newest first. Admins see every user's workouts.",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.Workout"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.Error"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["workouts"],
                "summary": "Create a workout owned by the caller",
                "parameters": [
                    {
                        "description": "Workout",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handler.WorkoutRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/model.Workout"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.Error"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.Error"}}
                }
            }
        },
        "/workouts/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["workouts"],
                "summary": "Get one workout by id",
                "parameters": [
                    {"type": "string", "description": "Workout id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Workout"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.Error"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/errors.Error"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.Error"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["workouts"],
                "summary": "Replace a workout's fields",
                "parameters": [
                    {"type": "string", "description": "Workout id", "name": "id", "in": "path", "required": true},
                    {
                        "description": "Workout",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handler.WorkoutRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Workout"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.Error"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.Error"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/errors.Error"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.Error"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["workouts"],
                "summary": "Delete a workout",
                "parameters": [
                    {"type": "string", "description": "Workout id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.MessageResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.Error"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/errors.Error"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.Error"}}
                }
            }
        },
        "/meals": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["meals"],
                "summary": "List meals, newest first. Admins see every user's meals.",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.Meal"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.Error"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["meals"],
                "summary": "Create a meal owned by the caller",
                "parameters": [
                    {
                        "description": "Meal",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handler.MealRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/model.Meal"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.Error"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.Error"}}
                }
            }
        },
        "/meals/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["meals"],
                "summary": "Get one meal by id",
                "parameters": [
                    {"type": "string", "description": "Meal id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Meal"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.Error"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/errors.Error"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.Error"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["meals"],
                "summary": "Replace a meal's fields",
                "parameters": [
                    {"type": "string", "description": "Meal id", "name": "id", "in": "path", "required": true},
                    {
                        "description": "Meal",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handler.MealRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Meal"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.Error"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.Error"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/errors.Error"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.Error"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["meals"],
                "summary": "Delete a meal",
                "parameters": [
                    {"type": "string", "description": "Meal id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.MessageResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.Error"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/errors.Error"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.Error"}}
                }
            }
        }
    },
    "definitions": {
        "errors.Error": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "errors": {"type": "array", "items": {"type": "string"}}
            }
        },
        "handler.AuthResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"},
                "user": {"$ref": "#/definitions/handler.UserSummary"}
            }
        },
        "handler.CredentialsRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string", "minLength": 6}
            }
        },
        "handler.MealRequest": {
            "type": "object",
            "required": ["name", "calories", "protein", "fat", "carbs"],
            "properties": {
                "name": {"type": "string"},
                "calories": {"type": "number", "minimum": 0},
                "protein": {"type": "number", "minimum": 0},
                "fat": {"type": "number", "minimum": 0},
                "carbs": {"type": "number", "minimum": 0},
                "userId": {"type": "string"}
            }
        },
        "handler.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        },
        "handler.UserSummary": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "role": {"type": "string"}
            }
        },
        "handler.WorkoutRequest": {
            "type": "object",
            "required": ["name", "type", "duration"],
            "properties": {
                "name": {"type": "string"},
                "type": {"type": "string"},
                "duration": {"type": "number"},
                "userId": {"type": "string"}
            }
        },
        "model.Meal": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "calories": {"type": "integer"},
                "protein": {"type": "integer"},
                "fat": {"type": "integer"},
                "carbs": {"type": "integer"},
                "userId": {"type": "string"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "model.User": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "email": {"type": "string"},
                "role": {"type": "string"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "model.Workout": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "type": {"type": "string"},
                "duration": {"type": "integer"},
                "userId": {"type": "string"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and the JWT.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:3000",
	BasePath:         "/api",
	Schemes:          []string{"http"},
	Title:            "Fitness Tracker API",
	Description:      "Personal fitness tracking API: workouts, meals and progress, with JWT authentication and per-user ownership.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
