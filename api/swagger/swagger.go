package swagger

import (
	"bytes"
	"text/template"

	"github.com/swaggo/swag"
)

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Enterprise Data API",
        "description": "Read-only analytics over enterprise learner enrollments, learners, offers and admin insights.",
        "version": "1.0.0"
    },
    "basePath": "{{.BasePath}}",
    "schemes": [
        "http",
        "https"
    ],
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "tags": [
        {
            "name": "Enrollments",
            "description": "Consented learner enrollments"
        },
        {
            "name": "Learners",
            "description": "Enterprise learners"
        },
        {
            "name": "Offers",
            "description": "Subsidy offers"
        },
        {
            "name": "Insights",
            "description": "Nightly admin snapshots"
        },
        {
            "name": "Ops",
            "description": "Health and metrics"
        }
    ],
    "paths": {
        "/health": {
            "get": {
                "tags": [
                    "Ops"
                ],
                "summary": "Liveness",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/ready": {
            "get": {
                "tags": [
                    "Ops"
                ],
                "summary": "Readiness of Postgres and Redis",
                "responses": {
                    "200": {
                        "description": "Ready"
                    },
                    "503": {
                        "description": "A dependency is down"
                    }
                }
            }
        },
        "/metrics": {
            "get": {
                "tags": [
                    "Ops"
                ],
                "summary": "Prometheus metrics",
                "produces": [
                    "text/plain"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/v1/enterprise/{enterprise_id}/enrollments/": {
            "get": {
                "tags": [
                    "Enrollments"
                ],
                "summary": "List enterprise enrollments",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "enterprise_id",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Enterprise customer UUID"
                    },
                    {
                        "name": "passed_date",
                        "in": "query",
                        "type": "string",
                        "description": "last_week"
                    },
                    {
                        "name": "learner_activity",
                        "in": "query",
                        "type": "string",
                        "description": "active_past_week, inactive_past_week or inactive_past_month"
                    },
                    {
                        "name": "search",
                        "in": "query",
                        "type": "string",
                        "description": "Email contains"
                    },
                    {
                        "name": "search_all",
                        "in": "query",
                        "type": "string",
                        "description": "Email or course title contains"
                    },
                    {
                        "name": "search_course",
                        "in": "query",
                        "type": "string",
                        "description": "Course title contains"
                    },
                    {
                        "name": "search_start_date",
                        "in": "query",
                        "type": "string",
                        "description": "Course start date",
                        "format": "date"
                    },
                    {
                        "name": "offer_id",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "name": "budget_id",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "name": "ignore_null_course_list_price",
                        "in": "query",
                        "type": "string",
                        "description": "Exclude rows without a list price when present"
                    },
                    {
                        "name": "course_product_line",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "name": "is_subsidy",
                        "in": "query",
                        "type": "boolean"
                    },
                    {
                        "name": "ordering",
                        "in": "query",
                        "type": "string",
                        "description": "Field name, prefix with - for descending"
                    },
                    {
                        "name": "page",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "page_size",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "no_page",
                        "in": "query",
                        "type": "string",
                        "description": "Disable paging when present"
                    },
                    {
                        "name": "format",
                        "in": "query",
                        "type": "string",
                        "description": "json or csv",
                        "enum": [
                            "json",
                            "csv"
                        ]
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Invalid query",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "401": {
                        "description": "Unauthorized"
                    },
                    "403": {
                        "description": "Forbidden"
                    }
                },
                "produces": [
                    "application/json",
                    "text/csv"
                ]
            }
        },
        "/v1/enterprise/{enterprise_id}/enrollments/overview/": {
            "get": {
                "tags": [
                    "Enrollments"
                ],
                "summary": "Enrollment overview",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "enterprise_id",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Enterprise customer UUID"
                    },
                    {
                        "name": "passed_date",
                        "in": "query",
                        "type": "string",
                        "description": "last_week"
                    },
                    {
                        "name": "learner_activity",
                        "in": "query",
                        "type": "string",
                        "description": "active_past_week, inactive_past_week or inactive_past_month"
                    },
                    {
                        "name": "search",
                        "in": "query",
                        "type": "string",
                        "description": "Email contains"
                    },
                    {
                        "name": "search_all",
                        "in": "query",
                        "type": "string",
                        "description": "Email or course title contains"
                    },
                    {
                        "name": "search_course",
                        "in": "query",
                        "type": "string",
                        "description": "Course title contains"
                    },
                    {
                        "name": "search_start_date",
                        "in": "query",
                        "type": "string",
                        "description": "Course start date",
                        "format": "date"
                    },
                    {
                        "name": "offer_id",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "name": "budget_id",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "name": "ignore_null_course_list_price",
                        "in": "query",
                        "type": "string",
                        "description": "Exclude rows without a list price when present"
                    },
                    {
                        "name": "course_product_line",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "name": "is_subsidy",
                        "in": "query",
                        "type": "boolean"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Invalid query",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "401": {
                        "description": "Unauthorized"
                    },
                    "403": {
                        "description": "Forbidden"
                    }
                }
            }
        },
        "/v1/enterprise/{enterprise_id}/learners/": {
            "get": {
                "tags": [
                    "Learners"
                ],
                "summary": "List enterprise learners",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "enterprise_id",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Enterprise customer UUID"
                    },
                    {
                        "name": "has_enrollments",
                        "in": "query",
                        "type": "boolean"
                    },
                    {
                        "name": "active_courses",
                        "in": "query",
                        "type": "boolean"
                    },
                    {
                        "name": "all_enrollments_passed",
                        "in": "query",
                        "type": "boolean"
                    },
                    {
                        "name": "extra_fields",
                        "in": "query",
                        "type": "array",
                        "items": {
                            "type": "string",
                            "enum": [
                                "enrollment_count",
                                "course_completion_count"
                            ]
                        },
                        "collectionFormat": "multi"
                    },
                    {
                        "name": "ordering",
                        "in": "query",
                        "type": "string",
                        "description": "Field name, prefix with - for descending"
                    },
                    {
                        "name": "page",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "page_size",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "no_page",
                        "in": "query",
                        "type": "string",
                        "description": "Disable paging when present"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Invalid query",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "401": {
                        "description": "Unauthorized"
                    },
                    "403": {
                        "description": "Forbidden"
                    }
                }
            }
        },
        "/v1/enterprise/{enterprise_id}/learners/completed_courses/": {
            "get": {
                "tags": [
                    "Learners"
                ],
                "summary": "Completed courses per learner",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "enterprise_id",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Enterprise customer UUID"
                    },
                    {
                        "name": "ordering",
                        "in": "query",
                        "type": "string",
                        "description": "Field name, prefix with - for descending"
                    },
                    {
                        "name": "page",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "page_size",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "no_page",
                        "in": "query",
                        "type": "string",
                        "description": "Disable paging when present"
                    },
                    {
                        "name": "format",
                        "in": "query",
                        "type": "string",
                        "description": "json or pdf",
                        "enum": [
                            "json",
                            "pdf"
                        ]
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Invalid query",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "401": {
                        "description": "Unauthorized"
                    },
                    "403": {
                        "description": "Forbidden"
                    }
                },
                "produces": [
                    "application/json",
                    "application/pdf"
                ]
            }
        },
        "/v1/enterprise/{enterprise_id}/offers/": {
            "get": {
                "tags": [
                    "Offers"
                ],
                "summary": "List enterprise offers",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "enterprise_id",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Enterprise customer UUID"
                    },
                    {
                        "name": "offer_id",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "name": "status",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "name": "ordering",
                        "in": "query",
                        "type": "string",
                        "description": "Field name, prefix with - for descending"
                    },
                    {
                        "name": "page",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "page_size",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "no_page",
                        "in": "query",
                        "type": "string",
                        "description": "Disable paging when present"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Invalid query",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "401": {
                        "description": "Unauthorized"
                    },
                    "403": {
                        "description": "Forbidden"
                    }
                }
            }
        },
        "/v1/enterprise/{enterprise_id}/offers/{offer_id}/": {
            "get": {
                "tags": [
                    "Offers"
                ],
                "summary": "Retrieve an offer",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "enterprise_id",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Enterprise customer UUID"
                    },
                    {
                        "name": "offer_id",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Hyphens are ignored"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Invalid query",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "401": {
                        "description": "Unauthorized"
                    },
                    "403": {
                        "description": "Forbidden"
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/v1/enterprise/{enterprise_id}/insights/": {
            "get": {
                "tags": [
                    "Insights"
                ],
                "summary": "Admin insights",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "enterprise_id",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Enterprise customer UUID"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Invalid query",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "401": {
                        "description": "Unauthorized"
                    },
                    "403": {
                        "description": "Forbidden"
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/v0/enterprise/{enterprise_id}/enrollments/": {
            "get": {
                "tags": [
                    "Enrollments"
                ],
                "summary": "List enterprise enrollments (v0)",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "enterprise_id",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Enterprise customer UUID"
                    },
                    {
                        "name": "page",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "page_size",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "no_page",
                        "in": "query",
                        "type": "string",
                        "description": "Disable paging when present"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Invalid query",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "401": {
                        "description": "Unauthorized"
                    },
                    "403": {
                        "description": "Forbidden"
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/v0/enterprise/{enterprise_id}/enrollments/overview/": {
            "get": {
                "tags": [
                    "Enrollments"
                ],
                "summary": "Enrollment overview (v0)",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "enterprise_id",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Enterprise customer UUID"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Invalid query",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "401": {
                        "description": "Unauthorized"
                    },
                    "403": {
                        "description": "Forbidden"
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {
                    "type": "integer"
                },
                "page_size": {
                    "type": "integer"
                },
                "total_count": {
                    "type": "integer"
                },
                "num_pages": {
                    "type": "integer"
                }
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                },
                "status": {
                    "type": "integer"
                }
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "object"
                },
                "error": {
                    "$ref": "#/definitions/APIError"
                },
                "pagination": {
                    "$ref": "#/definitions/Pagination"
                },
                "meta": {
                    "type": "object"
                }
            }
        }
    }
}`

// SwaggerInfo carries the fields substituted into docTemplate.
var SwaggerInfo = struct {
	BasePath string
}{BasePath: "/enterprise/api"}

type swaggerDoc struct{}

// ReadDoc renders the Swagger document for the configured base path.
func (s *swaggerDoc) ReadDoc() string {
	tpl, err := template.New("swagger").Parse(docTemplate)
	if err != nil {
		return docTemplate
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, SwaggerInfo); err != nil {
		return docTemplate
	}
	return buf.String()
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
