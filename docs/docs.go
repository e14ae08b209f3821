// Package docs contiene la especificación OpenAPI servida en /swagger/.
// Sigue las anotaciones de los handlers; se regenera con: swag init -g cmd/api/main.go
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
        "/assistant": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "assistant"
                ],
                "summary": "Historial del asistente",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID del shelter",
                        "name": "shelterId",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "messages",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "array",
                                "items": {
                                    "$ref": "#/definitions/assistant.messageResponse"
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "shelterId is required",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "post": {
                "description": "Reintenta la generación con backoff exponencial; guarda el par pregunta/respuesta si viene shelterId.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "assistant"
                ],
                "summary": "Preguntar al asistente",
                "parameters": [
                    {
                        "description": "shelterId, question",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/assistant.askRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "message",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "400": {
                        "description": "question is required",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "patch": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "assistant"
                ],
                "summary": "Regenerar respuesta",
                "parameters": [
                    {
                        "description": "messageId, question",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/assistant.regenerateRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "message, messageId",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "400": {
                        "description": "messageId and question are required",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/community/ai": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "community"
                ],
                "summary": "Mejorar post de la comunidad",
                "parameters": [
                    {
                        "description": "content, aiOption",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/assistant.improveRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/assistant.improveResponse"
                        }
                    },
                    "400": {
                        "description": "Missing required fields: content or aiOption",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/assistant.improveResponse"
                        }
                    }
                }
            }
        },
        "/dashboard": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "pets"
                ],
                "summary": "Estadísticas del voluntario",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID del voluntario",
                        "name": "volunteerId",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/pets.dashboardResponse"
                        }
                    },
                    "400": {
                        "description": "volunteerId is required",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/pets": {
            "get": {
                "description": "Nunca devuelve adoptadas. Orden: más nuevas primero; con shelterLocation se filtra por radio y se ordena por distancia.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "discovery"
                ],
                "summary": "Buscar mascotas en adopción",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Shelter que mira (anota isFavorite)",
                        "name": "shelterId",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Tamaño de página (default 10, máx 100)",
                        "name": "limit",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Cursor devuelto como nextPageKey",
                        "name": "startAfter",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Dog | Cat | Other",
                        "name": "selectedCategory",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Male | Female",
                        "name": "selectedGender",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Free | < 500k | 500k–1M | > 1M",
                        "name": "selectedAdoptionFeeRange",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Yes | No",
                        "name": "selectedVaccinated",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Small | Medium | Large",
                        "name": "selectedSize",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "lat,lon",
                        "name": "shelterLocation",
                        "in": "query"
                    },
                    {
                        "type": "number",
                        "description": "Radio en km (default 10)",
                        "name": "radiusKm",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/discovery.response"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/discovery.response"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/discovery.response"
                        }
                    }
                }
            }
        },
        "/pets/favorites": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "favorites"
                ],
                "summary": "Favoritos del shelter",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID del shelter",
                        "name": "shelterId",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Tamaño de página (default 10)",
                        "name": "limit",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Cursor devuelto como nextPageKey",
                        "name": "startAfterKey",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/favorites.response"
                        }
                    },
                    "400": {
                        "description": "Shelter ID is required",
                        "schema": {
                            "$ref": "#/definitions/favorites.response"
                        }
                    }
                }
            },
            "post": {
                "description": "Idempotente: repetir el mismo pedido no duplica filas.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "favorites"
                ],
                "summary": "Marcar / desmarcar favorito",
                "parameters": [
                    {
                        "description": "petId, shelterId, isFavorite",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/favorites.toggleFavoriteRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/favorites.response"
                        }
                    },
                    "400": {
                        "description": "Pet ID and Shelter ID are required",
                        "schema": {
                            "$ref": "#/definitions/favorites.response"
                        }
                    },
                    "404": {
                        "description": "pet not found",
                        "schema": {
                            "$ref": "#/definitions/favorites.response"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/favorites.response"
                        }
                    }
                }
            }
        },
        "/pets/home": {
            "get": {
                "description": "Las más nuevas no adoptadas de cada categoría, anotadas para el shelter.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "discovery"
                ],
                "summary": "Home por categoría",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID del shelter",
                        "name": "shelterId",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Mascotas por categoría (default 10)",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/discovery.homeResponse"
                        }
                    },
                    "400": {
                        "description": "shelterId is required",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/pets/volunteer": {
            "get": {
                "description": "Incluye adoptadas. Paginado por cursor (startAfterKey) con conteo de visitas.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "pets"
                ],
                "summary": "Mascotas de un voluntario",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID del voluntario",
                        "name": "volunteerId",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Tamaño de página (default 10)",
                        "name": "limit",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Cursor devuelto como nextPageKey",
                        "name": "startAfterKey",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/pets.petPageResponse"
                        }
                    },
                    "400": {
                        "description": "volunteerId is required",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "post": {
                "description": "Un voluntario publica una mascota en adopción. Siempre se crea como no adoptada.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "pets"
                ],
                "summary": "Publicar mascota",
                "parameters": [
                    {
                        "description": "Datos de la mascota; volunteerId acepta 'volunteers/<id>'",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/pets.createPetRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "petId",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "400": {
                        "description": "invalid pet payload",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "internal error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "patch": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "pets"
                ],
                "summary": "Marcar mascota adoptada / disponible",
                "parameters": [
                    {
                        "description": "petId + adopted",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/pets.toggleAdoptedRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "message",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "400": {
                        "description": "petId and adopted are required",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "pet not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/pets/volunteer/image": {
            "post": {
                "description": "Recibe base64 (o data URL) y devuelve la URL pública del host configurado (imgbb o S3).",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "pets"
                ],
                "summary": "Subir imagen de mascota",
                "parameters": [
                    {
                        "description": "image en base64",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/images.uploadRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "data.url",
                        "schema": {
                            "$ref": "#/definitions/images.response"
                        }
                    },
                    "400": {
                        "description": "Missing image data or API key",
                        "schema": {
                            "$ref": "#/definitions/images.response"
                        }
                    },
                    "500": {
                        "description": "Upload failed",
                        "schema": {
                            "$ref": "#/definitions/images.response"
                        }
                    }
                }
            }
        },
        "/pets/{petID}": {
            "get": {
                "description": "Devuelve la mascota con viewCount, isFavorite (si viene shelterId) y su voluntario.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "pets"
                ],
                "summary": "Detalle de mascota",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID de la mascota",
                        "name": "petID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Shelter que mira (para isFavorite)",
                        "name": "shelterId",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/pets.petDetailResponse"
                        }
                    },
                    "404": {
                        "description": "pet not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "post": {
                "description": "Una fila por (mascota, shelter); repetir solo actualiza la fecha. viewCount cuenta shelters distintos.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "views"
                ],
                "summary": "Registrar visita",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID de la mascota",
                        "name": "petID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Shelter que mira",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/views.recordViewRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "message",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "400": {
                        "description": "Pet ID and Shelter ID are required",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "pet not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "delete": {
                "description": "Borra también sus visitas y favoritos.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "pets"
                ],
                "summary": "Borrar mascota",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID de la mascota",
                        "name": "petID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "message",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "pet not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "patch": {
                "description": "PATCH parcial. \"adoptionFee\": null la deja gratuita; images/coverImage ausentes o null no se tocan.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "pets"
                ],
                "summary": "Editar mascota",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID de la mascota",
                        "name": "petID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Campos a modificar; volunteerId requerido",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/pets.updatePetRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "message",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "400": {
                        "description": "invalid pet payload",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "pet not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/volunteers/{volunteerID}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "volunteers"
                ],
                "summary": "Perfil de voluntario",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID del voluntario",
                        "name": "volunteerID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/volunteers.VolunteerResponse"
                        }
                    },
                    "404": {
                        "description": "volunteer not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "put": {
                "description": "La ubicación (lat/lon) es la que usa la búsqueda por cercanía.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "volunteers"
                ],
                "summary": "Crear o reemplazar perfil de voluntario",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID del voluntario",
                        "name": "volunteerID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Perfil",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/volunteers.upsertVolunteerRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/volunteers.VolunteerResponse"
                        }
                    },
                    "400": {
                        "description": "invalid volunteer payload",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "assistant.Sender": {
            "type": "string",
            "enum": [
                "user",
                "ai"
            ],
            "x-enum-varnames": [
                "SenderUser",
                "SenderAI"
            ]
        },
        "assistant.askRequest": {
            "type": "object",
            "properties": {
                "question": {
                    "type": "string"
                },
                "shelterId": {
                    "type": "string"
                }
            }
        },
        "assistant.improveRequest": {
            "type": "object",
            "properties": {
                "aiOption": {
                    "type": "string"
                },
                "content": {
                    "type": "string"
                }
            }
        },
        "assistant.improveResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string"
                },
                "improvedContent": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                }
            }
        },
        "assistant.messageResponse": {
            "type": "object",
            "properties": {
                "createdAt": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                },
                "sender": {
                    "$ref": "#/definitions/assistant.Sender"
                }
            }
        },
        "assistant.regenerateRequest": {
            "type": "object",
            "properties": {
                "messageId": {
                    "type": "string"
                },
                "question": {
                    "type": "string"
                }
            }
        },
        "discovery.homeResponse": {
            "type": "object",
            "properties": {
                "cat": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/pets.PetResponse"
                    }
                },
                "dog": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/pets.PetResponse"
                    }
                },
                "other": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/pets.PetResponse"
                    }
                }
            }
        },
        "discovery.response": {
            "type": "object",
            "properties": {
                "data": {},
                "error": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                }
            }
        },
        "favorites.response": {
            "type": "object",
            "properties": {
                "data": {},
                "error": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                }
            }
        },
        "favorites.toggleFavoriteRequest": {
            "type": "object",
            "properties": {
                "isFavorite": {
                    "type": "boolean"
                },
                "petId": {
                    "type": "string"
                },
                "shelterId": {
                    "type": "string"
                }
            }
        },
        "images.response": {
            "type": "object",
            "properties": {
                "data": {},
                "error": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                }
            }
        },
        "images.uploadRequest": {
            "type": "object",
            "properties": {
                "image": {
                    "type": "string"
                }
            }
        },
        "pets.AgeUnit": {
            "type": "string",
            "enum": [
                "Days",
                "Weeks",
                "Months",
                "Years"
            ],
            "x-enum-varnames": [
                "AgeDays",
                "AgeWeeks",
                "AgeMonths",
                "AgeYears"
            ]
        },
        "pets.Category": {
            "type": "string",
            "enum": [
                "Dog",
                "Cat",
                "Other"
            ],
            "x-enum-varnames": [
                "CategoryDog",
                "CategoryCat",
                "CategoryOther"
            ]
        },
        "pets.Gender": {
            "type": "string",
            "enum": [
                "Male",
                "Female"
            ],
            "x-enum-varnames": [
                "GenderMale",
                "GenderFemale"
            ]
        },
        "pets.PetResponse": {
            "type": "object",
            "properties": {
                "adopted": {
                    "type": "boolean"
                },
                "adoptionFee": {
                    "type": "integer"
                },
                "age": {
                    "type": "integer"
                },
                "ageUnit": {
                    "$ref": "#/definitions/pets.AgeUnit"
                },
                "behaviours": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "breed": {
                    "type": "string"
                },
                "category": {
                    "$ref": "#/definitions/pets.Category"
                },
                "color": {
                    "type": "string"
                },
                "coverImage": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "disabilities": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "distanceKm": {
                    "type": "number"
                },
                "gender": {
                    "$ref": "#/definitions/pets.Gender"
                },
                "id": {
                    "type": "string"
                },
                "images": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "isFavorite": {
                    "type": "boolean"
                },
                "name": {
                    "type": "string"
                },
                "size": {
                    "$ref": "#/definitions/pets.Size"
                },
                "specialDiet": {
                    "type": "string"
                },
                "updatedAt": {
                    "type": "string"
                },
                "vaccinated": {
                    "type": "boolean"
                },
                "viewCount": {
                    "type": "integer"
                },
                "volunteer": {
                    "type": "string"
                },
                "weight": {
                    "type": "number"
                },
                "weightUnit": {
                    "$ref": "#/definitions/pets.WeightUnit"
                }
            }
        },
        "pets.Size": {
            "type": "string",
            "enum": [
                "Small",
                "Medium",
                "Large"
            ],
            "x-enum-varnames": [
                "SizeSmall",
                "SizeMedium",
                "SizeLarge"
            ]
        },
        "pets.WeightUnit": {
            "type": "string",
            "enum": [
                "Kilogram",
                "Gram",
                "Ons",
                "Pound"
            ],
            "x-enum-varnames": [
                "WeightKilogram",
                "WeightGram",
                "WeightOns",
                "WeightPound"
            ]
        },
        "pets.createPetRequest": {
            "type": "object",
            "properties": {
                "adoptionFee": {
                    "type": "integer"
                },
                "age": {
                    "type": "integer"
                },
                "ageUnit": {
                    "type": "string"
                },
                "behaviours": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "breed": {
                    "type": "string"
                },
                "category": {
                    "type": "string"
                },
                "color": {
                    "type": "string"
                },
                "coverImage": {
                    "type": "string"
                },
                "disabilities": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "gender": {
                    "type": "string"
                },
                "images": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "name": {
                    "type": "string"
                },
                "size": {
                    "type": "string"
                },
                "specialDiet": {
                    "type": "string"
                },
                "vaccinated": {
                    "type": "boolean"
                },
                "volunteerId": {
                    "type": "string"
                },
                "weight": {
                    "type": "number"
                },
                "weightUnit": {
                    "type": "string"
                }
            }
        },
        "pets.dashboardResponse": {
            "type": "object",
            "properties": {
                "totalAdoptedPets": {
                    "type": "integer"
                },
                "totalPets": {
                    "type": "integer"
                },
                "totalPetsViewed": {
                    "type": "integer"
                }
            }
        },
        "pets.petDetailResponse": {
            "type": "object",
            "properties": {
                "pet": {
                    "$ref": "#/definitions/pets.PetResponse"
                },
                "volunteer": {
                    "$ref": "#/definitions/volunteers.VolunteerResponse"
                }
            }
        },
        "pets.petPageResponse": {
            "type": "object",
            "properties": {
                "nextPageKey": {
                    "type": "string"
                },
                "pets": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/pets.PetResponse"
                    }
                },
                "totalPages": {
                    "type": "integer"
                }
            }
        },
        "pets.toggleAdoptedRequest": {
            "type": "object",
            "properties": {
                "adopted": {
                    "type": "boolean"
                },
                "petId": {
                    "type": "string"
                }
            }
        },
        "pets.updatePetRequest": {
            "type": "object",
            "properties": {
                "adoptionFee": {
                    "type": "integer"
                },
                "age": {
                    "type": "integer"
                },
                "ageUnit": {
                    "type": "string"
                },
                "behaviours": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "breed": {
                    "type": "string"
                },
                "category": {
                    "type": "string"
                },
                "color": {
                    "type": "string"
                },
                "coverImage": {
                    "type": "string"
                },
                "disabilities": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "gender": {
                    "type": "string"
                },
                "images": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "name": {
                    "type": "string"
                },
                "size": {
                    "type": "string"
                },
                "specialDiet": {
                    "type": "string"
                },
                "vaccinated": {
                    "type": "boolean"
                },
                "volunteerId": {
                    "type": "string"
                },
                "weight": {
                    "type": "number"
                },
                "weightUnit": {
                    "type": "string"
                }
            }
        },
        "views.recordViewRequest": {
            "type": "object",
            "properties": {
                "shelterId": {
                    "type": "string"
                }
            }
        },
        "volunteers.VolunteerResponse": {
            "type": "object",
            "properties": {
                "address": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "location": {
                    "$ref": "#/definitions/volunteers.locationResponse"
                },
                "name": {
                    "type": "string"
                },
                "phoneNumber": {
                    "type": "string"
                },
                "updatedAt": {
                    "type": "string"
                }
            }
        },
        "volunteers.locationInput": {
            "type": "object",
            "properties": {
                "latitude": {
                    "type": "number"
                },
                "longitude": {
                    "type": "number"
                }
            }
        },
        "volunteers.locationResponse": {
            "type": "object",
            "properties": {
                "latitude": {
                    "type": "number"
                },
                "longitude": {
                    "type": "number"
                }
            }
        },
        "volunteers.upsertVolunteerRequest": {
            "type": "object",
            "properties": {
                "address": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "location": {
                    "$ref": "#/definitions/volunteers.locationInput"
                },
                "name": {
                    "type": "string"
                },
                "phoneNumber": {
                    "type": "string"
                }
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
	Title:            "Petster API",
	Description:      "Backend de adopción de mascotas: discovery, favoritos, visitas y asistente.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
