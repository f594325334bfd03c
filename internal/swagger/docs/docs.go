// Package docs holds the generated swagger document.
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
        "/dashboard/ping": {
            "get": {
                "tags": [
                    "Meta"
                ],
                "summary": "Ping",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "PONG",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/dashboard/version": {
            "get": {
                "tags": [
                    "Meta"
                ],
                "summary": "Version",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "version",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/dashboard/auth/register": {
            "post": {
                "tags": [
                    "Auth"
                ],
                "summary": "Register a user",
                "description": "Anonymous callers may only create the user role. A bearer token with manage_users may choose any role.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "New identity",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/core.RegisterInput"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/models.Identity"
                        }
                    },
                    "400": {
                        "description": "Validation",
                        "schema": {
                            "$ref": "#/definitions/errmsg._Validation"
                        }
                    },
                    "403": {
                        "description": "PermissionDenied",
                        "schema": {
                            "$ref": "#/definitions/errmsg._PermissionDenied"
                        }
                    },
                    "409": {
                        "description": "EmailInUse",
                        "schema": {
                            "$ref": "#/definitions/errmsg._EmailInUse"
                        }
                    },
                    "503": {
                        "description": "Transport",
                        "schema": {
                            "$ref": "#/definitions/errmsg._Transport"
                        }
                    }
                }
            }
        },
        "/dashboard/auth/login": {
            "post": {
                "tags": [
                    "Auth"
                ],
                "summary": "Sign in",
                "description": "Set role to require that the account holds exactly that role.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Credentials",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/auth.loginRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.SessionIdentity"
                        }
                    },
                    "400": {
                        "description": "LoginInvalidPayload",
                        "schema": {
                            "$ref": "#/definitions/errmsg._LoginInvalidPayload"
                        }
                    },
                    "401": {
                        "description": "InvalidCredential",
                        "schema": {
                            "$ref": "#/definitions/errmsg._InvalidCredential"
                        }
                    },
                    "403": {
                        "description": "AccountDeactivated",
                        "schema": {
                            "$ref": "#/definitions/errmsg._AccountDeactivated"
                        }
                    },
                    "503": {
                        "description": "Transport",
                        "schema": {
                            "$ref": "#/definitions/errmsg._Transport"
                        }
                    }
                }
            }
        },
        "/dashboard/auth/logout": {
            "post": {
                "tags": [
                    "Auth"
                ],
                "summary": "Sign out",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "401": {
                        "description": "SessionInvalid",
                        "schema": {
                            "$ref": "#/definitions/errmsg._SessionInvalid"
                        }
                    }
                }
            }
        },
        "/dashboard/auth/me": {
            "get": {
                "tags": [
                    "Auth"
                ],
                "summary": "Current identity",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/auth.meResponse"
                        }
                    },
                    "401": {
                        "description": "SessionInvalid",
                        "schema": {
                            "$ref": "#/definitions/errmsg._SessionInvalid"
                        }
                    }
                }
            }
        },
        "/dashboard/stats": {
            "get": {
                "tags": [
                    "Dashboard"
                ],
                "summary": "Dashboard statistics",
                "description": "Counts cover every record regardless of owner. The seeded system administrator is excluded from the user totals.",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Stats"
                        }
                    },
                    "503": {
                        "description": "Transport",
                        "schema": {
                            "$ref": "#/definitions/errmsg._Transport"
                        }
                    }
                }
            }
        },
        "/dashboard/overview": {
            "get": {
                "tags": [
                    "Dashboard"
                ],
                "summary": "Dashboard overview",
                "description": "Each section reports its own error, so one failing section never hides the others.",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.overviewResponse"
                        }
                    }
                }
            }
        },
        "/dashboard/activity": {
            "get": {
                "tags": [
                    "Dashboard"
                ],
                "summary": "Activity log",
                "description": "Callers without view_all_activity only see their own entries.",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "entries, default 50, max 100",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.ActivityEntry"
                            }
                        }
                    }
                }
            }
        },
        "/dashboard/reports": {
            "post": {
                "tags": [
                    "Dashboard"
                ],
                "summary": "Generate report",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Report type and optional date bounds",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/api.reportRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Report"
                        }
                    },
                    "400": {
                        "description": "InvalidReportType",
                        "schema": {
                            "$ref": "#/definitions/errmsg._InvalidReportType"
                        }
                    },
                    "403": {
                        "description": "PermissionDenied",
                        "schema": {
                            "$ref": "#/definitions/errmsg._PermissionDenied"
                        }
                    }
                }
            }
        },
        "/dashboard/users": {
            "get": {
                "tags": [
                    "Users"
                ],
                "summary": "List users",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "user, manager or admin",
                        "name": "role",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "page size, default 10, max 100",
                        "name": "limit",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "id of the last user on the previous page",
                        "name": "after",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.Identity"
                            }
                        }
                    },
                    "400": {
                        "description": "InvalidRole",
                        "schema": {
                            "$ref": "#/definitions/errmsg._InvalidRole"
                        }
                    },
                    "403": {
                        "description": "PermissionDenied",
                        "schema": {
                            "$ref": "#/definitions/errmsg._PermissionDenied"
                        }
                    }
                }
            }
        },
        "/dashboard/users/search": {
            "get": {
                "tags": [
                    "Users"
                ],
                "summary": "Search users",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "search term",
                        "name": "q",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.Identity"
                            }
                        }
                    },
                    "400": {
                        "description": "Validation",
                        "schema": {
                            "$ref": "#/definitions/errmsg._Validation"
                        }
                    },
                    "403": {
                        "description": "PermissionDenied",
                        "schema": {
                            "$ref": "#/definitions/errmsg._PermissionDenied"
                        }
                    }
                }
            }
        },
        "/dashboard/users/{id}": {
            "get": {
                "tags": [
                    "Users"
                ],
                "summary": "Get user",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "User ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Identity"
                        }
                    },
                    "404": {
                        "description": "UserNotFound",
                        "schema": {
                            "$ref": "#/definitions/errmsg._UserNotFound"
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "Users"
                ],
                "summary": "Delete user",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "User ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "403": {
                        "description": "PermissionDenied",
                        "schema": {
                            "$ref": "#/definitions/errmsg._PermissionDenied"
                        }
                    },
                    "404": {
                        "description": "UserNotFound",
                        "schema": {
                            "$ref": "#/definitions/errmsg._UserNotFound"
                        }
                    }
                }
            }
        },
        "/dashboard/users/{id}/status": {
            "patch": {
                "tags": [
                    "Users"
                ],
                "summary": "Set user status",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "User ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "New status",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/api.statusRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Identity"
                        }
                    },
                    "403": {
                        "description": "PermissionDenied",
                        "schema": {
                            "$ref": "#/definitions/errmsg._PermissionDenied"
                        }
                    },
                    "404": {
                        "description": "UserNotFound",
                        "schema": {
                            "$ref": "#/definitions/errmsg._UserNotFound"
                        }
                    }
                }
            }
        },
        "/dashboard/users/{id}/role": {
            "patch": {
                "tags": [
                    "Users"
                ],
                "summary": "Set user role",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "User ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "New role",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/api.roleRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Identity"
                        }
                    },
                    "400": {
                        "description": "InvalidRole",
                        "schema": {
                            "$ref": "#/definitions/errmsg._InvalidRole"
                        }
                    },
                    "403": {
                        "description": "PermissionDenied",
                        "schema": {
                            "$ref": "#/definitions/errmsg._PermissionDenied"
                        }
                    },
                    "404": {
                        "description": "UserNotFound",
                        "schema": {
                            "$ref": "#/definitions/errmsg._UserNotFound"
                        }
                    }
                }
            }
        },
        "/dashboard/users/{id}/profile": {
            "patch": {
                "tags": [
                    "Users"
                ],
                "summary": "Update user profile",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "User ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Profile fields",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/api.profileRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Identity"
                        }
                    },
                    "400": {
                        "description": "Validation",
                        "schema": {
                            "$ref": "#/definitions/errmsg._Validation"
                        }
                    },
                    "403": {
                        "description": "PermissionDenied",
                        "schema": {
                            "$ref": "#/definitions/errmsg._PermissionDenied"
                        }
                    },
                    "404": {
                        "description": "UserNotFound",
                        "schema": {
                            "$ref": "#/definitions/errmsg._UserNotFound"
                        }
                    }
                }
            }
        },
        "/dashboard/projects": {
            "get": {
                "tags": [
                    "Projects"
                ],
                "summary": "List projects",
                "description": "Callers without view_all_records only see projects they created.",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "page size, default 50, max 100",
                        "name": "limit",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "id of the last project on the previous page",
                        "name": "after",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.Project"
                            }
                        }
                    },
                    "503": {
                        "description": "Transport",
                        "schema": {
                            "$ref": "#/definitions/errmsg._Transport"
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "Projects"
                ],
                "summary": "Create project",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Project",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.ProjectInput"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/models.Project"
                        }
                    },
                    "400": {
                        "description": "Validation",
                        "schema": {
                            "$ref": "#/definitions/errmsg._Validation"
                        }
                    }
                }
            }
        },
        "/dashboard/projects/{id}": {
            "get": {
                "tags": [
                    "Projects"
                ],
                "summary": "Get project",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Project ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Project"
                        }
                    },
                    "404": {
                        "description": "ProjectNotFound",
                        "schema": {
                            "$ref": "#/definitions/errmsg._ProjectNotFound"
                        }
                    }
                }
            },
            "patch": {
                "tags": [
                    "Projects"
                ],
                "summary": "Update project",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Project ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Fields to change",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.ProjectPatch"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Project"
                        }
                    },
                    "400": {
                        "description": "Validation",
                        "schema": {
                            "$ref": "#/definitions/errmsg._Validation"
                        }
                    },
                    "403": {
                        "description": "PermissionDenied",
                        "schema": {
                            "$ref": "#/definitions/errmsg._PermissionDenied"
                        }
                    },
                    "404": {
                        "description": "ProjectNotFound",
                        "schema": {
                            "$ref": "#/definitions/errmsg._ProjectNotFound"
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "Projects"
                ],
                "summary": "Delete project",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Project ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "403": {
                        "description": "PermissionDenied",
                        "schema": {
                            "$ref": "#/definitions/errmsg._PermissionDenied"
                        }
                    },
                    "404": {
                        "description": "ProjectNotFound",
                        "schema": {
                            "$ref": "#/definitions/errmsg._ProjectNotFound"
                        }
                    }
                }
            }
        },
        "/dashboard/tasks": {
            "get": {
                "tags": [
                    "Tasks"
                ],
                "summary": "List tasks",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "only tasks of this project",
                        "name": "projectId",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "page size, default 50, max 100",
                        "name": "limit",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "id of the last task on the previous page",
                        "name": "after",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.Task"
                            }
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "Tasks"
                ],
                "summary": "Create task",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Task",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.TaskInput"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/models.Task"
                        }
                    },
                    "400": {
                        "description": "Validation",
                        "schema": {
                            "$ref": "#/definitions/errmsg._Validation"
                        }
                    },
                    "404": {
                        "description": "ProjectNotFound",
                        "schema": {
                            "$ref": "#/definitions/errmsg._ProjectNotFound"
                        }
                    }
                }
            }
        },
        "/dashboard/tasks/{id}": {
            "get": {
                "tags": [
                    "Tasks"
                ],
                "summary": "Get task",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Task ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Task"
                        }
                    },
                    "404": {
                        "description": "TaskNotFound",
                        "schema": {
                            "$ref": "#/definitions/errmsg._TaskNotFound"
                        }
                    }
                }
            },
            "patch": {
                "tags": [
                    "Tasks"
                ],
                "summary": "Update task",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Task ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Fields to change",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.TaskPatch"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Task"
                        }
                    },
                    "400": {
                        "description": "Validation",
                        "schema": {
                            "$ref": "#/definitions/errmsg._Validation"
                        }
                    },
                    "403": {
                        "description": "PermissionDenied",
                        "schema": {
                            "$ref": "#/definitions/errmsg._PermissionDenied"
                        }
                    },
                    "404": {
                        "description": "TaskNotFound",
                        "schema": {
                            "$ref": "#/definitions/errmsg._TaskNotFound"
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "Tasks"
                ],
                "summary": "Delete task",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Task ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "403": {
                        "description": "PermissionDenied",
                        "schema": {
                            "$ref": "#/definitions/errmsg._PermissionDenied"
                        }
                    },
                    "404": {
                        "description": "TaskNotFound",
                        "schema": {
                            "$ref": "#/definitions/errmsg._TaskNotFound"
                        }
                    }
                }
            }
        },
        "/dashboard/tasks/{id}/status": {
            "patch": {
                "tags": [
                    "Tasks"
                ],
                "summary": "Set task status",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Task ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "New status",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/api.taskStatusRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Task"
                        }
                    },
                    "400": {
                        "description": "Validation",
                        "schema": {
                            "$ref": "#/definitions/errmsg._Validation"
                        }
                    },
                    "403": {
                        "description": "PermissionDenied",
                        "schema": {
                            "$ref": "#/definitions/errmsg._PermissionDenied"
                        }
                    },
                    "404": {
                        "description": "TaskNotFound",
                        "schema": {
                            "$ref": "#/definitions/errmsg._TaskNotFound"
                        }
                    }
                }
            }
        },
        "/dashboard/tasks/{id}/assign": {
            "patch": {
                "tags": [
                    "Tasks"
                ],
                "summary": "Assign task",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Task ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Assignee",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/api.assignRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Task"
                        }
                    },
                    "403": {
                        "description": "PermissionDenied",
                        "schema": {
                            "$ref": "#/definitions/errmsg._PermissionDenied"
                        }
                    },
                    "404": {
                        "description": "UserNotFound",
                        "schema": {
                            "$ref": "#/definitions/errmsg._UserNotFound"
                        }
                    }
                }
            }
        },
        "/dashboard/ws/session": {
            "get": {
                "tags": [
                    "Streams"
                ],
                "summary": "Session state stream",
                "description": "WebSocket. Sends {\"type\":\"session\",\"data\":{\"status\":...,\"profile\":...}} frames until the session ends. Browsers pass the token as ?authorization=.",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "101": {
                        "description": "Switching Protocols"
                    }
                }
            }
        },
        "/dashboard/ws/{collection}": {
            "get": {
                "tags": [
                    "Streams"
                ],
                "summary": "Live collection stream",
                "description": "WebSocket. Sends {\"type\":\"snapshot\",\"collection\":...,\"docs\":[...]} frames whenever the result set changes.",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "users, projects, tasks or activity",
                        "name": "collection",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "tasks only",
                        "name": "projectId",
                        "in": "query"
                    }
                ],
                "responses": {
                    "101": {
                        "description": "Switching Protocols"
                    },
                    "403": {
                        "description": "PermissionDenied",
                        "schema": {
                            "$ref": "#/definitions/errmsg._PermissionDenied"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "api.assignRequest": {
            "type": "object",
            "properties": {
                "assignedTo": {
                    "type": "string"
                }
            }
        },
        "api.overviewPart": {
            "type": "object",
            "properties": {
                "data": {},
                "error": {
                    "$ref": "#/definitions/api.partError"
                }
            }
        },
        "api.overviewResponse": {
            "type": "object",
            "properties": {
                "stats": {
                    "$ref": "#/definitions/api.overviewPart"
                },
                "users": {
                    "$ref": "#/definitions/api.overviewPart"
                },
                "projects": {
                    "$ref": "#/definitions/api.overviewPart"
                },
                "tasks": {
                    "$ref": "#/definitions/api.overviewPart"
                },
                "activity": {
                    "$ref": "#/definitions/api.overviewPart"
                }
            }
        },
        "api.partError": {
            "type": "object",
            "properties": {
                "statusCode": {
                    "type": "integer"
                },
                "message": {
                    "type": "string"
                }
            }
        },
        "api.profileRequest": {
            "type": "object",
            "properties": {
                "displayName": {
                    "type": "string"
                }
            }
        },
        "api.reportRequest": {
            "type": "object",
            "properties": {
                "type": {
                    "type": "string",
                    "enum": [
                        "user_activity",
                        "project_progress",
                        "task_completion"
                    ]
                },
                "from": {
                    "type": "string"
                },
                "to": {
                    "type": "string"
                }
            }
        },
        "api.roleRequest": {
            "type": "object",
            "properties": {
                "role": {
                    "type": "string",
                    "enum": [
                        "user",
                        "manager",
                        "admin"
                    ]
                }
            }
        },
        "api.statusRequest": {
            "type": "object",
            "properties": {
                "isActive": {
                    "type": "boolean"
                }
            }
        },
        "api.taskStatusRequest": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string",
                    "enum": [
                        "pending",
                        "in_progress",
                        "completed"
                    ]
                }
            }
        },
        "auth.loginRequest": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                },
                "role": {
                    "type": "string",
                    "enum": [
                        "user",
                        "manager",
                        "admin"
                    ]
                }
            }
        },
        "auth.meResponse": {
            "type": "object",
            "properties": {
                "profile": {
                    "$ref": "#/definitions/models.Identity"
                },
                "initials": {
                    "type": "string"
                },
                "permissions": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "core.RegisterInput": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                },
                "displayName": {
                    "type": "string"
                },
                "role": {
                    "type": "string",
                    "enum": [
                        "user",
                        "manager",
                        "admin"
                    ]
                }
            }
        },
        "errmsg._AccountDeactivated": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string",
                    "example": "user account is deactivated"
                },
                "statusCode": {
                    "type": "integer",
                    "example": 403
                }
            }
        },
        "errmsg._EmailInUse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string",
                    "example": "email is already registered"
                },
                "statusCode": {
                    "type": "integer",
                    "example": 409
                }
            }
        },
        "errmsg._IdentityNotRegistered": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string",
                    "example": "user not found in directory"
                },
                "statusCode": {
                    "type": "integer",
                    "example": 401
                }
            }
        },
        "errmsg._InternalServerError": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string",
                    "example": "internal server error: ..."
                },
                "statusCode": {
                    "type": "integer",
                    "example": 500
                }
            }
        },
        "errmsg._InvalidCredential": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string",
                    "example": "email or password is incorrect"
                },
                "statusCode": {
                    "type": "integer",
                    "example": 401
                }
            }
        },
        "errmsg._InvalidReportType": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string",
                    "example": "report type must be one of user_activity, project_progress, task_completion"
                },
                "statusCode": {
                    "type": "integer",
                    "example": 400
                }
            }
        },
        "errmsg._InvalidRole": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string",
                    "example": "role must be one of user, manager, admin"
                },
                "statusCode": {
                    "type": "integer",
                    "example": 400
                }
            }
        },
        "errmsg._LoginInvalidPayload": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string",
                    "example": "email and password must be provided"
                },
                "statusCode": {
                    "type": "integer",
                    "example": 400
                }
            }
        },
        "errmsg._NoToken": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string",
                    "example": "no token has been provided"
                },
                "statusCode": {
                    "type": "integer",
                    "example": 401
                }
            }
        },
        "errmsg._PermissionDenied": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string",
                    "example": "you are not allowed to perform this action"
                },
                "statusCode": {
                    "type": "integer",
                    "example": 403
                }
            }
        },
        "errmsg._ProjectNotFound": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string",
                    "example": "project not found"
                },
                "statusCode": {
                    "type": "integer",
                    "example": 404
                }
            }
        },
        "errmsg._RoleMismatch": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string",
                    "example": "access denied for this role"
                },
                "statusCode": {
                    "type": "integer",
                    "example": 403
                }
            }
        },
        "errmsg._SessionInvalid": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string",
                    "example": "session is not valid"
                },
                "statusCode": {
                    "type": "integer",
                    "example": 401
                }
            }
        },
        "errmsg._TaskNotFound": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string",
                    "example": "task not found"
                },
                "statusCode": {
                    "type": "integer",
                    "example": 404
                }
            }
        },
        "errmsg._Transport": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string",
                    "example": "backend unavailable: ..."
                },
                "statusCode": {
                    "type": "integer",
                    "example": 503
                }
            }
        },
        "errmsg._UserNotFound": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string",
                    "example": "user not found"
                },
                "statusCode": {
                    "type": "integer",
                    "example": 404
                }
            }
        },
        "errmsg._Validation": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string",
                    "example": "name is required"
                },
                "statusCode": {
                    "type": "integer",
                    "example": 400
                }
            }
        },
        "models.ActivityEntry": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "type": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "relatedId": {
                    "type": "string"
                },
                "userId": {
                    "type": "string"
                },
                "timestamp": {
                    "type": "string"
                }
            }
        },
        "models.DateRange": {
            "type": "object",
            "properties": {
                "from": {
                    "type": "string"
                },
                "to": {
                    "type": "string"
                }
            }
        },
        "models.Identity": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "displayName": {
                    "type": "string"
                },
                "role": {
                    "type": "string",
                    "enum": [
                        "user",
                        "manager",
                        "admin"
                    ]
                },
                "isActive": {
                    "type": "boolean"
                },
                "system": {
                    "type": "boolean"
                },
                "createdAt": {
                    "type": "string"
                },
                "updatedAt": {
                    "type": "string"
                }
            }
        },
        "models.Project": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "deadline": {
                    "type": "string",
                    "example": "2025-03-01"
                },
                "createdBy": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "updatedAt": {
                    "type": "string"
                },
                "status": {
                    "type": "string",
                    "enum": [
                        "active",
                        "on_hold",
                        "completed"
                    ]
                },
                "progress": {
                    "type": "integer",
                    "minimum": 0,
                    "maximum": 100
                }
            }
        },
        "models.ProjectInput": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "deadline": {
                    "type": "string",
                    "example": "2025-03-01"
                }
            }
        },
        "models.ProjectPatch": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "deadline": {
                    "type": "string"
                },
                "status": {
                    "type": "string",
                    "enum": [
                        "active",
                        "on_hold",
                        "completed"
                    ]
                },
                "progress": {
                    "type": "integer"
                }
            }
        },
        "models.Report": {
            "type": "object",
            "properties": {
                "type": {
                    "type": "string",
                    "enum": [
                        "user_activity",
                        "project_progress",
                        "task_completion"
                    ]
                },
                "dateRange": {
                    "$ref": "#/definitions/models.DateRange"
                },
                "generatedAt": {
                    "type": "string"
                },
                "generatedBy": {
                    "type": "string"
                },
                "data": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "integer"
                    }
                }
            }
        },
        "models.SessionIdentity": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "displayName": {
                    "type": "string"
                },
                "role": {
                    "type": "string",
                    "enum": [
                        "user",
                        "manager",
                        "admin"
                    ]
                },
                "token": {
                    "type": "string"
                }
            }
        },
        "models.Stats": {
            "type": "object",
            "properties": {
                "totalUsers": {
                    "type": "integer"
                },
                "activeUsers": {
                    "type": "integer"
                },
                "totalProjects": {
                    "type": "integer"
                },
                "completedTasks": {
                    "type": "integer"
                },
                "pendingTasks": {
                    "type": "integer"
                },
                "recentActivity": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.ActivityEntry"
                    }
                }
            }
        },
        "models.Task": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "projectId": {
                    "type": "string"
                },
                "priority": {
                    "type": "string",
                    "enum": [
                        "low",
                        "medium",
                        "high"
                    ]
                },
                "status": {
                    "type": "string",
                    "enum": [
                        "pending",
                        "in_progress",
                        "completed"
                    ]
                },
                "assignedTo": {
                    "type": "string"
                },
                "createdBy": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "updatedAt": {
                    "type": "string"
                }
            }
        },
        "models.TaskInput": {
            "type": "object",
            "properties": {
                "title": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "projectId": {
                    "type": "string"
                },
                "priority": {
                    "type": "string",
                    "enum": [
                        "low",
                        "medium",
                        "high"
                    ]
                }
            }
        },
        "models.TaskPatch": {
            "type": "object",
            "properties": {
                "title": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "priority": {
                    "type": "string",
                    "enum": [
                        "low",
                        "medium",
                        "high"
                    ]
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Provide the session token as ` + "`" + `Bearer <token>` + "`" + `.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "tags": [
        {
            "description": "Health checks and metadata about the dashboard service.",
            "name": "Meta"
        },
        {
            "description": "Sign-up, sign-in and session management.",
            "name": "Auth"
        },
        {
            "description": "Statistics, overview, activity log and reports.",
            "name": "Dashboard"
        },
        {
            "description": "Directory profiles and account administration.",
            "name": "Users"
        },
        {
            "description": "Projects owned by dashboard users.",
            "name": "Projects"
        },
        {
            "description": "Tasks inside projects.",
            "name": "Tasks"
        },
        {
            "description": "WebSocket live views.",
            "name": "Streams"
        }
    ]
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "25.10.16.1",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Admin Dashboard API",
	Description:      "Dashboard API over users, projects, tasks, the activity log and aggregate statistics.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
