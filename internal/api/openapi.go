package api

import _ "embed"

// OpenAPISpec is the OpenAPI document describing the HTTP API.
//
//go:embed openapi.yaml
var OpenAPISpec []byte
