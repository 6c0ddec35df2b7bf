// Package docs registers the OpenAPI document served under /swagger.
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
        "/agents": {
            "get": {"tags": ["Agents"], "summary": "List sales agents", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.SalesAgent"}}},
                    "404": {"description": "No agents found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}}},
            "post": {"tags": ["Agents"], "summary": "Create a sales agent", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "agent", "required": true, "schema": {"$ref": "#/definitions/models.CreateAgentRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/handlers.AgentCreatedResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "409": {"description": "Email already exists.", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}}}
        },
        "/agents/{id}": {
            "get": {"tags": ["Agents"], "summary": "Get a sales agent", "produces": ["application/json"],
                "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.SalesAgent"}},
                    "404": {"description": "Agent not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}}}
        },
        "/leads": {
            "get": {"tags": ["Leads"], "summary": "List leads", "produces": ["application/json"],
                "parameters": [
                    {"in": "query", "name": "salesAgent", "type": "string"},
                    {"in": "query", "name": "status", "type": "string"},
                    {"in": "query", "name": "priority", "type": "string"},
                    {"in": "query", "name": "tags", "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.LeadView"}}},
                    "404": {"description": "No leads found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}}},
            "post": {"tags": ["Leads"], "summary": "Create a lead", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "lead", "required": true, "schema": {"$ref": "#/definitions/models.CreateLeadRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/handlers.LeadCreatedResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}}}
        },
        "/leads/agent/{agentId}": {
            "get": {"tags": ["Leads"], "summary": "List the leads assigned to an agent", "produces": ["application/json"],
                "parameters": [{"in": "path", "name": "agentId", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.LeadView"}}},
                    "404": {"description": "No assigned leads found for this agent.", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}}}
        },
        "/leads/{id}": {
            "get": {"tags": ["Leads"], "summary": "Get a lead", "produces": ["application/json"],
                "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.LeadView"}},
                    "404": {"description": "Lead not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}}},
            "put": {"tags": ["Leads"], "summary": "Update a lead", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "path", "name": "id", "type": "string", "required": true},
                    {"in": "body", "name": "lead", "required": true, "schema": {"$ref": "#/definitions/models.UpdateLeadRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Lead"}},
                    "404": {"description": "Lead not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}}},
            "delete": {"tags": ["Leads"], "summary": "Delete a lead", "produces": ["application/json"],
                "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.LeadDeletedResponse"}},
                    "404": {"description": "Lead not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}}}
        },
        "/leads/{id}/comments": {
            "get": {"tags": ["Comments"], "summary": "List the comments of a lead", "produces": ["application/json"],
                "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.CommentView"}}},
                    "404": {"description": "No comments found for this lead ID.", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}}},
            "post": {"tags": ["Comments"], "summary": "Add a comment to a lead", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "path", "name": "id", "type": "string", "required": true},
                    {"in": "body", "name": "comment", "required": true, "schema": {"$ref": "#/definitions/models.CreateCommentRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/handlers.CommentCreatedResponse"}}}}
        },
        "/tags": {
            "get": {"tags": ["Tags"], "summary": "List tags", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Tag"}}},
                    "404": {"description": "Tags not found.", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}}},
            "post": {"tags": ["Tags"], "summary": "Create a tag", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "tag", "required": true, "schema": {"$ref": "#/definitions/models.CreateTagRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.TagCreatedResponse"}}}}
        },
        "/report/last-week": {
            "get": {"tags": ["Reports"], "summary": "Leads closed in the last seven days", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.ClosedDeal"}}},
                    "404": {"description": "No leads closed in the last seven days.", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}}}
        },
        "/report/pipeline": {
            "get": {"tags": ["Reports"], "summary": "Number of leads not yet Closed", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.PipelineSummary"}},
                    "404": {"description": "No Leads found in pipeline.", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}}}
        },
        "/report/closed-by-agent": {
            "get": {"tags": ["Reports"], "summary": "Closed lead counts per agent", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.AgentClosedCount"}}},
                    "404": {"description": "No closed leads found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}}}
        },
        "/health": {
            "get": {"tags": ["Health"], "summary": "Service health", "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}}
        }
    },
    "definitions": {
        "handlers.ErrorResponse": {"type": "object", "properties": {
            "error": {"type": "string"},
            "details": {"type": "array", "items": {"$ref": "#/definitions/models.FieldError"}}}},
        "handlers.AgentCreatedResponse": {"type": "object", "properties": {
            "message": {"type": "string"}, "agent": {"$ref": "#/definitions/models.SalesAgent"}}},
        "handlers.LeadCreatedResponse": {"type": "object", "properties": {
            "message": {"type": "string"}, "lead": {"$ref": "#/definitions/models.Lead"}}},
        "handlers.LeadDeletedResponse": {"type": "object", "properties": {
            "message": {"type": "string"}, "lead": {"$ref": "#/definitions/models.Lead"}}},
        "handlers.CommentCreatedResponse": {"type": "object", "properties": {
            "message": {"type": "string"}, "comment": {"$ref": "#/definitions/models.Comment"}}},
        "handlers.TagCreatedResponse": {"type": "object", "properties": {
            "message": {"type": "string"}, "tag": {"$ref": "#/definitions/models.Tag"}}},
        "models.FieldError": {"type": "object", "properties": {
            "field": {"type": "string"}, "rule": {"type": "string"}, "message": {"type": "string"}}},
        "models.AgentRef": {"type": "object", "properties": {
            "id": {"type": "string"}, "name": {"type": "string"}, "email": {"type": "string"}}},
        "models.LeadRef": {"type": "object", "properties": {
            "id": {"type": "string"}, "name": {"type": "string"}}},
        "models.SalesAgent": {"type": "object", "properties": {
            "id": {"type": "string"}, "name": {"type": "string"}, "email": {"type": "string"}, "createdAt": {"type": "string"}}},
        "models.CreateAgentRequest": {"type": "object", "required": ["name", "email"], "properties": {
            "name": {"type": "string"}, "email": {"type": "string"}}},
        "models.Lead": {"type": "object", "properties": {
            "id": {"type": "string"}, "name": {"type": "string"},
            "source": {"type": "string", "enum": ["Website", "Referral", "Cold Call", "Advertisement", "Email", "Other"]},
            "salesAgent": {"type": "string"},
            "status": {"type": "string", "enum": ["New", "Contacted", "Qualified", "Proposal Sent", "Closed"]},
            "tags": {"type": "array", "items": {"type": "string"}},
            "timeToClose": {"type": "integer", "minimum": 1},
            "priority": {"type": "string", "enum": ["High", "Medium", "Low"]},
            "createdAt": {"type": "string"}, "updatedAt": {"type": "string"}, "closedAt": {"type": "string"}}},
        "models.LeadView": {"type": "object", "properties": {
            "id": {"type": "string"}, "name": {"type": "string"}, "source": {"type": "string"},
            "salesAgent": {"$ref": "#/definitions/models.AgentRef"},
            "status": {"type": "string"}, "tags": {"type": "array", "items": {"type": "string"}},
            "timeToClose": {"type": "integer"}, "priority": {"type": "string"},
            "createdAt": {"type": "string"}, "closedAt": {"type": "string"}}},
        "models.CreateLeadRequest": {"type": "object", "required": ["name", "source", "salesAgent", "timeToClose"], "properties": {
            "name": {"type": "string"}, "source": {"type": "string"}, "salesAgent": {"type": "string"},
            "status": {"type": "string"}, "tags": {"type": "array", "items": {"type": "string"}},
            "timeToClose": {"type": "integer"}, "priority": {"type": "string"}}},
        "models.UpdateLeadRequest": {"type": "object", "properties": {
            "name": {"type": "string"}, "source": {"type": "string"}, "salesAgent": {"type": "string"},
            "status": {"type": "string"}, "tags": {"type": "array", "items": {"type": "string"}},
            "timeToClose": {"type": "integer"}, "priority": {"type": "string"}}},
        "models.Tag": {"type": "object", "properties": {
            "id": {"type": "string"}, "name": {"type": "string"}, "createdAt": {"type": "string"}}},
        "models.CreateTagRequest": {"type": "object", "required": ["name"], "properties": {
            "name": {"type": "string"}}},
        "models.Comment": {"type": "object", "properties": {
            "id": {"type": "string"}, "lead": {"type": "string"}, "author": {"type": "string"},
            "commentText": {"type": "string"}, "createdAt": {"type": "string"}}},
        "models.CommentView": {"type": "object", "properties": {
            "id": {"type": "string"}, "lead": {"$ref": "#/definitions/models.LeadRef"},
            "author": {"$ref": "#/definitions/models.AgentRef"},
            "commentText": {"type": "string"}, "createdAt": {"type": "string"}}},
        "models.CreateCommentRequest": {"type": "object", "required": ["author", "commentText"], "properties": {
            "author": {"type": "string"}, "commentText": {"type": "string"}}},
        "models.ClosedDeal": {"type": "object", "properties": {
            "id": {"type": "string"}, "name": {"type": "string"},
            "source": {"type": "string"}, "salesAgent": {"$ref": "#/definitions/models.AgentRef"},
            "status": {"type": "string"}, "closedAt": {"type": "string"}, "priority": {"type": "string"}}},
        "models.PipelineSummary": {"type": "object", "properties": {
            "totalLeadsInPipeline": {"type": "integer"}}},
        "models.AgentClosedCount": {"type": "object", "properties": {
            "salesAgentId": {"type": "string"}, "salesAgentName": {"type": "string"}, "closedLeadsCount": {"type": "integer"}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Lead Management API",
	Description:      "Sales agents, leads, tags, comments and lead reports.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
