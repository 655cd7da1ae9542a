// Package docs registra el documento OpenAPI del servicio para http-swagger.
// Regenerar con: swag init -g cmd/api/main.go -o internal/docs
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
        "/api/calculate": {
            "get": {
                "produces": ["application/json"],
                "tags": ["calculator"],
                "summary": "Calcular edad humana (query string)",
                "parameters": [
                    {"type": "number", "description": "Edad del perro en años", "name": "age", "in": "query"},
                    {"type": "string", "description": "Fecha de nacimiento", "name": "birthday", "in": "query"},
                    {"type": "string", "description": "small|medium|large", "name": "size", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dogage.calculateResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dogage.errorResponse"}}
                }
            },
            "post": {
                "description": "Acepta dogAge (años, fraccional) o birthday (YYYY-MM-DD / RFC3339); birthday gana si vienen ambos.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["calculator"],
                "summary": "Calcular edad humana equivalente",
                "parameters": [
                    {"description": "Edad o fecha de nacimiento + tamaño", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dogage.calculateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dogage.calculateResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dogage.errorResponse"}}
                }
            }
        },
        "/api/auth/login": {
            "post": {
                "description": "Valida usuario/password, crea una sesión y devuelve un token (también como cookie HttpOnly).",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Iniciar sesión",
                "parameters": [
                    {"description": "Credenciales", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/users.loginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/users.loginResponse"}},
                    "400": {"description": "username and password required", "schema": {"type": "string"}},
                    "401": {"description": "invalid credentials", "schema": {"type": "string"}},
                    "429": {"description": "too many requests", "schema": {"type": "string"}}
                }
            }
        },
        "/api/auth/logout": {
            "post": {
                "description": "Revoca la sesión actual (si hay) y borra la cookie. Idempotente.",
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Cerrar sesión",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/users.successResponse"}}}
            }
        },
        "/api/admin/users": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Crear usuario del panel",
                "parameters": [
                    {"description": "Datos del usuario; role admin|editor (default admin)", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/users.createUserRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/users.userResponse"}},
                    "400": {"description": "invalid input", "schema": {"type": "string"}},
                    "403": {"description": "admin access required", "schema": {"type": "string"}},
                    "409": {"description": "username or email already in use", "schema": {"type": "string"}}
                }
            }
        },
        "/api/admin/posts": {
            "get": {
                "produces": ["application/json"],
                "tags": ["posts"],
                "summary": "Listar posts (panel)",
                "parameters": [
                    {"type": "string", "description": "draft|published|trash", "name": "status", "in": "query"},
                    {"type": "string", "description": "post|page", "name": "type", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/posts.postResponse"}}},
                    "401": {"description": "authentication required", "schema": {"type": "string"}}
                }
            },
            "post": {
                "description": "El autor es el usuario autenticado. Si no se manda slug se deriva del título.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["posts"],
                "summary": "Crear post",
                "parameters": [
                    {"description": "Post", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/posts.postRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/posts.postResponse"}},
                    "400": {"description": "invalid input", "schema": {"type": "string"}},
                    "409": {"description": "slug already in use", "schema": {"type": "string"}}
                }
            }
        },
        "/api/posts": {
            "get": {
                "produces": ["application/json"],
                "tags": ["public"],
                "summary": "Posts publicados",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/posts.postResponse"}}}}
            }
        },
        "/api/admin/testimonials": {
            "post": {
                "description": "Si status viene vacío y dogAge empieza con años (\"8 years\") se deriva la etapa de vida.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["testimonials"],
                "summary": "Crear testimonio",
                "parameters": [
                    {"description": "Testimonio", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/testimonials.testimonialRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/testimonials.testimonialResponse"}},
                    "400": {"description": "invalid input", "schema": {"type": "string"}},
                    "401": {"description": "authentication required", "schema": {"type": "string"}}
                }
            }
        },
        "/api/testimonials": {
            "get": {
                "produces": ["application/json"],
                "tags": ["public"],
                "summary": "Testimonios activos",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/testimonials.testimonialResponse"}}}}
            }
        },
        "/api/admin/settings": {
            "get": {
                "produces": ["application/json"],
                "tags": ["settings"],
                "summary": "Listar settings",
                "parameters": [
                    {"type": "string", "description": "general|appearance|seo", "name": "group", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/settings.settingResponse"}}}}
            },
            "post": {
                "description": "Upsert por key. El valor se valida contra el type (boolean, number, json).",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["settings"],
                "summary": "Crear o actualizar un setting",
                "parameters": [
                    {"description": "Setting", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/settings.setRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/settings.settingResponse"}},
                    "400": {"description": "value does not match setting type", "schema": {"type": "string"}}
                }
            }
        }
    },
    "definitions": {
        "dogage.calculateRequest": {
            "type": "object",
            "properties": {
                "birthday": {"type": "string"},
                "dogAge": {"type": "number"},
                "size": {"type": "string", "enum": ["small", "medium", "large"]}
            }
        },
        "dogage.calculateResponse": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "dogAge": {"type": "number"},
                "humanAge": {"type": "integer"},
                "lifeStage": {"type": "string"},
                "size": {"type": "string"}
            }
        },
        "dogage.errorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "users.loginRequest": {
            "type": "object",
            "properties": {"password": {"type": "string"}, "username": {"type": "string"}}
        },
        "users.loginResponse": {
            "type": "object",
            "properties": {
                "expiresAt": {"type": "string"},
                "success": {"type": "boolean"},
                "token": {"type": "string"},
                "user": {"$ref": "#/definitions/users.userResponse"}
            }
        },
        "users.successResponse": {
            "type": "object",
            "properties": {"success": {"type": "boolean"}}
        },
        "users.createUserRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "firstName": {"type": "string"},
                "lastName": {"type": "string"},
                "password": {"type": "string"},
                "role": {"type": "string", "enum": ["admin", "editor"]},
                "username": {"type": "string"}
            }
        },
        "users.userResponse": {
            "type": "object",
            "properties": {
                "createdAt": {"type": "string"},
                "email": {"type": "string"},
                "firstName": {"type": "string"},
                "id": {"type": "string"},
                "lastName": {"type": "string"},
                "role": {"type": "string"},
                "updatedAt": {"type": "string"},
                "username": {"type": "string"}
            }
        },
        "posts.postRequest": {
            "type": "object",
            "properties": {
                "content": {"type": "string"},
                "excerpt": {"type": "string"},
                "featuredImage": {"type": "string"},
                "metaDescription": {"type": "string"},
                "metaTitle": {"type": "string"},
                "slug": {"type": "string"},
                "status": {"type": "string", "enum": ["draft", "published", "trash"]},
                "title": {"type": "string"},
                "type": {"type": "string", "enum": ["post", "page"]}
            }
        },
        "posts.postResponse": {
            "type": "object",
            "properties": {
                "authorId": {"type": "string"},
                "content": {"type": "string"},
                "createdAt": {"type": "string"},
                "excerpt": {"type": "string"},
                "featuredImage": {"type": "string"},
                "id": {"type": "integer"},
                "metaDescription": {"type": "string"},
                "metaTitle": {"type": "string"},
                "publishedAt": {"type": "string"},
                "slug": {"type": "string"},
                "status": {"type": "string"},
                "title": {"type": "string"},
                "type": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "testimonials.testimonialRequest": {
            "type": "object",
            "properties": {
                "dogAge": {"type": "string"},
                "dogName": {"type": "string"},
                "image": {"type": "string"},
                "isActive": {"type": "boolean"},
                "name": {"type": "string"},
                "order": {"type": "integer"},
                "quote": {"type": "string"},
                "status": {"type": "string"},
                "statusColor": {"type": "string"}
            }
        },
        "testimonials.testimonialResponse": {
            "type": "object",
            "properties": {
                "createdAt": {"type": "string"},
                "dogAge": {"type": "string"},
                "dogName": {"type": "string"},
                "id": {"type": "integer"},
                "image": {"type": "string"},
                "isActive": {"type": "boolean"},
                "name": {"type": "string"},
                "order": {"type": "integer"},
                "quote": {"type": "string"},
                "status": {"type": "string"},
                "statusColor": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "settings.setRequest": {
            "type": "object",
            "properties": {
                "group": {"type": "string", "enum": ["general", "appearance", "seo"]},
                "key": {"type": "string"},
                "type": {"type": "string", "enum": ["text", "boolean", "json", "number"]},
                "value": {"type": "string"}
            }
        },
        "settings.settingResponse": {
            "type": "object",
            "properties": {
                "createdAt": {"type": "string"},
                "group": {"type": "string"},
                "id": {"type": "integer"},
                "key": {"type": "string"},
                "type": {"type": "string"},
                "updatedAt": {"type": "string"},
                "value": {"type": "string"}
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
	Title:            "Dog Years API",
	Description:      "Calculadora de edad de perros y API del panel de administración.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
