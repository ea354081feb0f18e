package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "School Portal API",
        "description": "Multi-school portal administration and survey service",
        "version": "0.1.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Authentication", "description": "Session lifecycle and view guard"},
        {"name": "Schools", "description": "School registry and active-school switch"},
        {"name": "Users", "description": "Per-school account management"},
        {"name": "Branding", "description": "Active school theme"},
        {"name": "Surveys", "description": "Survey authoring"},
        {"name": "Responses", "description": "Recorded submissions and reports"},
        {"name": "Public", "description": "Published-survey intake, no session required"},
        {"name": "Files", "description": "Uploaded-file registry"},
        {"name": "Data", "description": "Bulk export, import, and wipe"}
    ],
    "paths": {
        "/auth/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Sign in",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid credentials"}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Sign out",
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/auth/me": {
            "get": {
                "tags": ["Authentication"],
                "summary": "Get current user",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "No valid session"}
                }
            }
        },
        "/auth/guard": {
            "get": {
                "tags": ["Authentication"],
                "summary": "Check view access",
                "parameters": [
                    {"name": "roles", "in": "query", "type": "string", "description": "Comma-separated required roles"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/GuardDecision"}}
                }
            }
        },
        "/tenants": {
            "get": {
                "tags": ["Schools"],
                "summary": "List schools",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Schools"],
                "summary": "Register school",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SchoolRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/tenants/active": {
            "get": {
                "tags": ["Schools"],
                "summary": "Get active school",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Schools"],
                "summary": "Switch active school",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SwitchSchoolRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Unknown school"}
                }
            }
        },
        "/tenants/{id}": {
            "put": {
                "tags": ["Schools"],
                "summary": "Update school",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SchoolRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Schools"],
                "summary": "Delete school",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "409": {"description": "Last remaining school"}
                }
            }
        },
        "/users": {
            "get": {
                "tags": ["Users"],
                "summary": "List accounts",
                "parameters": [
                    {"name": "include_secrets", "in": "query", "type": "boolean", "description": "ADMIN only"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Users"],
                "summary": "Add account",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UserRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Email already registered"}
                }
            }
        },
        "/users/{id}": {
            "put": {
                "tags": ["Users"],
                "summary": "Replace account",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UserRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Users"],
                "summary": "Remove account",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "409": {"description": "Last remaining account"}
                }
            }
        },
        "/branding": {
            "get": {
                "tags": ["Branding"],
                "summary": "Get branding",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Branding"],
                "summary": "Replace branding",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/BrandingRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/surveys": {
            "get": {
                "tags": ["Surveys"],
                "summary": "List surveys",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Surveys"],
                "summary": "Create survey",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SurveyRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/surveys/{id}": {
            "get": {
                "tags": ["Surveys"],
                "summary": "Get survey",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Surveys"],
                "summary": "Replace survey",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SurveyRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Surveys"],
                "summary": "Delete survey",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/surveys/{id}/responses": {
            "get": {
                "tags": ["Responses"],
                "summary": "List survey responses",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/surveys/{id}/responses/export": {
            "get": {
                "tags": ["Responses"],
                "summary": "Download response report",
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"], "default": "csv"}
                ],
                "responses": {
                    "200": {"description": "Report file"}
                }
            }
        },
        "/responses": {
            "get": {
                "tags": ["Responses"],
                "summary": "List all responses",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/public/surveys": {
            "get": {
                "tags": ["Public"],
                "summary": "List published surveys",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/public/surveys/{id}": {
            "get": {
                "tags": ["Public"],
                "summary": "Get published survey",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Unknown or unpublished survey"}
                }
            }
        },
        "/public/surveys/{id}/responses": {
            "post": {
                "tags": ["Public"],
                "summary": "Submit answers",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ResponseRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/files": {
            "get": {
                "tags": ["Files"],
                "summary": "List files",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Files"],
                "summary": "Register upload",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/FileRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/files/{id}": {
            "delete": {
                "tags": ["Files"],
                "summary": "Remove file record",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/data/export": {
            "get": {
                "tags": ["Data"],
                "summary": "Export active school content",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ExportDocument"}}
                }
            }
        },
        "/data/import": {
            "post": {
                "tags": ["Data"],
                "summary": "Import content document",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ExportDocument"}}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "Malformed document, nothing applied"}
                }
            }
        },
        "/data": {
            "delete": {
                "tags": ["Data"],
                "summary": "Erase all portal data",
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "secret": {"type": "string"}
            },
            "required": ["email", "secret"]
        },
        "GuardDecision": {
            "type": "object",
            "properties": {
                "allow": {"type": "boolean"},
                "redirect": {"type": "string"}
            }
        },
        "SchoolRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "logo": {"type": "string"},
                "primary_color": {"type": "string"},
                "secondary_color": {"type": "string"},
                "tagline": {"type": "string"},
                "template": {"type": "string"},
                "font": {"type": "string"}
            },
            "required": ["name"]
        },
        "SwitchSchoolRequest": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}
            },
            "required": ["id"]
        },
        "UserRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "name": {"type": "string"},
                "secret": {"type": "string"},
                "role": {"type": "string", "enum": ["ADMIN", "TEACHER", "VIEWER"]}
            },
            "required": ["email", "name", "secret", "role"]
        },
        "BrandingRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "logo": {"type": "string"},
                "primary_color": {"type": "string"},
                "secondary_color": {"type": "string"},
                "tagline": {"type": "string"},
                "template": {"type": "string"},
                "font": {"type": "string"}
            },
            "required": ["name"]
        },
        "SurveyRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "status": {"type": "string", "enum": ["draft", "published"]},
                "questions": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/QuestionRequest"}
                }
            },
            "required": ["title", "status"]
        },
        "QuestionRequest": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "type": {"type": "string", "enum": ["text", "multiple-choice", "rating", "yes-no"]},
                "question": {"type": "string"},
                "options": {"type": "array", "items": {"type": "string"}},
                "required": {"type": "boolean"}
            },
            "required": ["type", "question"]
        },
        "ResponseRequest": {
            "type": "object",
            "properties": {
                "respondent_id": {"type": "string"},
                "respondent_name": {"type": "string"},
                "is_anonymous": {"type": "boolean"},
                "answers": {"type": "object"}
            },
            "required": ["answers"]
        },
        "FileRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "type": {"type": "string"},
                "data": {"type": "string"},
                "url": {"type": "string"},
                "size": {"type": "integer"}
            },
            "required": ["name", "type"]
        },
        "ExportDocument": {
            "type": "object",
            "properties": {
                "version": {"type": "integer"},
                "branding": {"$ref": "#/definitions/BrandingRequest"},
                "surveys": {"type": "array", "items": {"type": "object"}},
                "files": {"type": "array", "items": {"type": "object"}},
                "responses": {"type": "array", "items": {"type": "object"}},
                "exported_at": {"type": "string"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
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
