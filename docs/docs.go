// Package docs содержит описание API для swagger UI.
// Поддерживается вручную в формате swag; при изменении маршрутов обновлять вместе с аннотациями хэндлеров.
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
        "/api/v1/users/register": {
            "post": {
                "tags": ["users"],
                "summary": "Регистрация пользователя",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.RegisterRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.UserResponse"}},
                    "400": {"description": "Ошибка валидации", "schema": {"$ref": "#/definitions/apperrors.ErrorResponse"}},
                    "409": {"description": "Email уже зарегистрирован", "schema": {"$ref": "#/definitions/apperrors.ErrorResponse"}}
                }
            }
        },
        "/api/v1/users/login": {
            "post": {
                "tags": ["users"],
                "summary": "Вход",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.LoginRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.LoginResponse"}},
                    "401": {"description": "Неверные учетные данные", "schema": {"$ref": "#/definitions/apperrors.ErrorResponse"}}
                }
            }
        },
        "/api/v1/users/me": {
            "get": {
                "tags": ["users"],
                "summary": "Текущий пользователь",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.UserResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/apperrors.ErrorResponse"}}
                }
            }
        },
        "/api/v1/users/{user_id}/preferences": {
            "put": {
                "tags": ["recommendations"],
                "summary": "Обновить настройки пользователя",
                "parameters": [
                    {"type": "integer", "in": "path", "name": "user_id", "required": true},
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.UpdatePreferenceRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.PreferenceAck"}},
                    "400": {"description": "ID в пути и теле не совпадают", "schema": {"$ref": "#/definitions/apperrors.ErrorResponse"}}
                }
            }
        },
        "/api/v1/recommendations/{user_id}": {
            "get": {
                "tags": ["recommendations"],
                "summary": "Рекомендации (заглушка)",
                "parameters": [{"type": "integer", "in": "path", "name": "user_id", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.RecommendationsResponse"}}}
            }
        },
        "/api/v1/companies": {
            "post": {
                "tags": ["companies"],
                "summary": "Создать компанию",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.CreateCompanyRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.CompanyResponse"}},
                    "409": {"description": "Компания уже существует", "schema": {"$ref": "#/definitions/apperrors.ErrorResponse"}}
                }
            }
        },
        "/api/v1/companies/{company_id}": {
            "get": {
                "tags": ["companies"],
                "summary": "Компания по ID",
                "parameters": [{"type": "integer", "in": "path", "name": "company_id", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CompanyResponse"}},
                    "404": {"description": "Компания не найдена", "schema": {"$ref": "#/definitions/apperrors.ErrorResponse"}}
                }
            }
        },
        "/api/v1/drives": {
            "post": {
                "tags": ["drives"],
                "summary": "Создать набор (drive)",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.CreateDriveRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.DriveResponse"}},
                    "404": {"description": "Компания не найдена", "schema": {"$ref": "#/definitions/apperrors.ErrorResponse"}}
                }
            }
        },
        "/api/v1/drives/{company_id}": {
            "get": {
                "tags": ["drives"],
                "summary": "Наборы компании",
                "parameters": [{"type": "integer", "in": "path", "name": "company_id", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.DriveResponse"}}},
                    "400": {"description": "Некорректный ID", "schema": {"$ref": "#/definitions/apperrors.ErrorResponse"}}
                }
            }
        },
        "/api/v1/applications": {
            "post": {
                "tags": ["applications"],
                "summary": "Подать заявку на набор",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.CreateApplicationRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.ApplicationResponse"}},
                    "404": {"description": "Пользователь или набор не найден", "schema": {"$ref": "#/definitions/apperrors.ErrorResponse"}}
                }
            }
        },
        "/api/v1/applications/user/{user_id}": {
            "get": {
                "tags": ["applications"],
                "summary": "Заявки пользователя с данными набора и компании",
                "parameters": [{"type": "integer", "in": "path", "name": "user_id", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.ApplicationDetail"}}},
                    "400": {"description": "Некорректный ID", "schema": {"$ref": "#/definitions/apperrors.ErrorResponse"}}
                }
            }
        },
        "/api/v1/applications/drive/{drive_id}": {
            "get": {
                "tags": ["applications"],
                "summary": "Заявки на набор",
                "parameters": [{"type": "integer", "in": "path", "name": "drive_id", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.ApplicationResponse"}}},
                    "400": {"description": "Некорректный ID", "schema": {"$ref": "#/definitions/apperrors.ErrorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "tags": ["system"],
                "summary": "Проверка доступности БД",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "properties": {"status": {"type": "string"}}}},
                    "500": {"description": "БД недоступна", "schema": {"$ref": "#/definitions/apperrors.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "apperrors.ErrorResponse": {"type": "object", "properties": {"error": {"type": "object"}}},
        "dto.RegisterRequest": {"type": "object", "properties": {"full_name": {"type": "string"}, "email": {"type": "string"}, "password": {"type": "string"}, "account_type": {"type": "string", "enum": ["student", "tpo-admin", "recruiter"]}}},
        "dto.LoginRequest": {"type": "object", "properties": {"email": {"type": "string"}, "password": {"type": "string"}}},
        "dto.LoginResponse": {"type": "object", "properties": {"message": {"type": "string"}, "user_id": {"type": "integer"}, "account_type": {"type": "string"}, "token": {"type": "string"}}},
        "dto.UserResponse": {"type": "object", "properties": {"id": {"type": "integer"}, "full_name": {"type": "string"}, "email": {"type": "string"}, "account_type": {"type": "string"}}},
        "dto.CreateCompanyRequest": {"type": "object", "properties": {"name": {"type": "string"}, "industry": {"type": "string"}, "location": {"type": "string"}}},
        "dto.CompanyResponse": {"type": "object", "properties": {"id": {"type": "integer"}, "name": {"type": "string"}, "industry": {"type": "string"}, "location": {"type": "string"}}},
        "dto.CreateDriveRequest": {"type": "object", "properties": {"company_id": {"type": "integer"}, "role": {"type": "string"}, "package_lpa": {"type": "number"}, "deadline": {"type": "string", "description": "RFC3339 или YYYY-MM-DD"}}},
        "dto.DriveResponse": {"type": "object", "properties": {"id": {"type": "integer"}, "company_id": {"type": "integer"}, "role": {"type": "string"}, "package_lpa": {"type": "number"}, "deadline": {"type": "string", "format": "date-time"}}},
        "dto.CreateApplicationRequest": {"type": "object", "properties": {"user_id": {"type": "integer"}, "drive_id": {"type": "integer"}, "status": {"type": "string"}}},
        "dto.ApplicationResponse": {"type": "object", "properties": {"id": {"type": "integer"}, "user_id": {"type": "integer"}, "drive_id": {"type": "integer"}, "status": {"type": "string"}, "applied_date": {"type": "string", "format": "date-time"}}},
        "models.ApplicationDetail": {"type": "object", "properties": {"application_id": {"type": "integer"}, "drive_id": {"type": "integer"}, "role": {"type": "string"}, "company_id": {"type": "integer"}, "company_name": {"type": "string"}, "package_lpa": {"type": "number"}, "deadline": {"type": "string", "format": "date-time"}, "status": {"type": "string"}, "applied_date": {"type": "string", "format": "date-time"}}},
        "dto.Recommendation": {"type": "object", "properties": {"role": {"type": "string"}, "match_score": {"type": "number"}}},
        "dto.RecommendationsResponse": {"type": "object", "properties": {"user_id": {"type": "integer"}, "recommendations": {"type": "array", "items": {"$ref": "#/definitions/dto.Recommendation"}}}},
        "dto.UpdatePreferenceRequest": {"type": "object", "properties": {"user_id": {"type": "integer"}, "theme": {"type": "string"}}},
        "dto.PreferenceAck": {"type": "object", "properties": {"message": {"type": "string"}, "data": {"$ref": "#/definitions/dto.UpdatePreferenceRequest"}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8000",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Placement Tracker API",
	Description:      "API для учета кампусного трудоустройства: пользователи, компании, наборы и заявки.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
