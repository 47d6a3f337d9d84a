// Package api embeds the OpenAPI document served at /api/docs/openapi.yaml.
package api

import _ "embed"

// OpenAPI is the OpenAPI 3 description of the HTTP API.
//
//go:embed openapi.yaml
var OpenAPI []byte
