// Package docs registra la especificación OpenAPI del servicio para swag.
// El documento está escrito a mano a partir de las anotaciones de los handlers
// (summary, parámetros y códigos de respuesta). docs_test.go verifica que cada
// @Router anotado exista acá con el mismo @Summary.
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
        "/breeds": {
            "get": {
                "description": "Filtra por texto (nombre o categoría, sin distinguir mayúsculas) y por categoría. Mantiene el orden del catálogo.",
                "produces": ["application/json"],
                "tags": ["breeds"],
                "summary": "Buscar razas",
                "parameters": [
                    {"type": "string", "description": "Texto a buscar en nombre o categoría", "name": "q", "in": "query"},
                    {"type": "string", "description": "all, cattle o buffalo (default all)", "name": "animal", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/breeds/animals": {
            "get": {
                "produces": ["application/json"],
                "tags": ["breeds"],
                "summary": "Valores del selector de categoría",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/breeds/{breedID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["breeds"],
                "summary": "Obtener una raza",
                "parameters": [
                    {"type": "string", "description": "ID de la raza", "name": "breedID", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "breed not found"}}
            }
        },
        "/breeders": {
            "get": {
                "description": "Filtra por ubicación (texto) y especialidad. Mantiene el orden del directorio.",
                "produces": ["application/json"],
                "tags": ["breeders"],
                "summary": "Buscar criadores",
                "parameters": [
                    {"type": "string", "description": "Ciudad o estado", "name": "location", "in": "query"},
                    {"type": "string", "description": "Especialidad; default all", "name": "specialty", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/breeders/specialties": {
            "get": {
                "produces": ["application/json"],
                "tags": ["breeders"],
                "summary": "Valores del selector de especialidad",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/breeders/{breederID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["breeders"],
                "summary": "Obtener un criador",
                "parameters": [
                    {"type": "string", "description": "ID del criador", "name": "breederID", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "breeder not found"}}
            }
        },
        "/chat/suggestions": {
            "get": {
                "produces": ["application/json"],
                "tags": ["chat"],
                "summary": "Preguntas sugeridas",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/chat/sessions": {
            "post": {
                "produces": ["application/json"],
                "tags": ["chat"],
                "summary": "Abrir una sesión de chat",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/chat/sessions/{sessionID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["chat"],
                "summary": "Ver el transcript",
                "parameters": [
                    {"type": "string", "description": "ID de la sesión", "name": "sessionID", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "session not found"}}
            },
            "delete": {
                "tags": ["chat"],
                "summary": "Cerrar la sesión",
                "parameters": [
                    {"type": "string", "description": "ID de la sesión", "name": "sessionID", "in": "path", "required": true}
                ],
                "responses": {"204": {"description": "No Content"}, "404": {"description": "session not found"}}
            }
        },
        "/chat/sessions/{sessionID}/messages": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["chat"],
                "summary": "Enviar un mensaje",
                "parameters": [
                    {"type": "string", "description": "ID de la sesión", "name": "sessionID", "in": "path", "required": true},
                    {"description": "Mensaje", "name": "body", "in": "body", "required": true, "schema": {"type": "object", "properties": {"text": {"type": "string"}}}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "invalid input"},
                    "404": {"description": "session not found"},
                    "409": {"description": "reply pending"},
                    "502": {"description": "upstream error"}
                }
            }
        },
        "/recognition/uploads": {
            "post": {
                "description": "Acepta una imagen (campo multipart \"image\") de hasta 10MB y devuelve la vista previa como data URL.",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["recognition"],
                "summary": "Subir una imagen",
                "parameters": [
                    {"type": "file", "description": "Imagen del animal", "name": "image", "in": "formData", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "invalid upload"},
                    "413": {"description": "file too large"},
                    "415": {"description": "unsupported media type"}
                }
            }
        },
        "/recognition/uploads/{uploadID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["recognition"],
                "summary": "Ver una imagen subida",
                "parameters": [
                    {"type": "string", "description": "ID de la imagen", "name": "uploadID", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "upload not found"}}
            },
            "delete": {
                "tags": ["recognition"],
                "summary": "Descartar una imagen",
                "parameters": [
                    {"type": "string", "description": "ID de la imagen", "name": "uploadID", "in": "path", "required": true}
                ],
                "responses": {"204": {"description": "No Content"}, "404": {"description": "upload not found"}}
            }
        },
        "/recognition/uploads/{uploadID}/analyses": {
            "post": {
                "produces": ["application/json"],
                "tags": ["recognition"],
                "summary": "Identificar la raza",
                "parameters": [
                    {"type": "string", "description": "ID de la imagen", "name": "uploadID", "in": "path", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "404": {"description": "upload not found"},
                    "409": {"description": "analysis pending"},
                    "502": {"description": "upstream error"}
                }
            }
        },
        "/contact": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["contact"],
                "summary": "Enviar el formulario de contacto",
                "parameters": [
                    {"description": "Formulario", "name": "body", "in": "body", "required": true, "schema": {"type": "object", "properties": {
                        "name": {"type": "string"}, "email": {"type": "string"}, "phone": {"type": "string"},
                        "subject": {"type": "string"}, "message": {"type": "string"}
                    }}}
                ],
                "responses": {"201": {"description": "Created"}, "400": {"description": "validation failed"}}
            }
        },
        "/content/home": {
            "get": {"produces": ["application/json"], "tags": ["content"], "summary": "Contenido de la portada", "responses": {"200": {"description": "OK"}}}
        },
        "/content/about": {
            "get": {"produces": ["application/json"], "tags": ["content"], "summary": "Contenido de \"Sobre nosotros\"", "responses": {"200": {"description": "OK"}}}
        },
        "/content/contact": {
            "get": {"produces": ["application/json"], "tags": ["content"], "summary": "Datos de contacto y preguntas frecuentes", "responses": {"200": {"description": "OK"}}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Yield-AI API",
	Description:      "Catálogo de razas, directorio de criadores, chat asistente, reconocimiento de razas por imagen y contacto.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
