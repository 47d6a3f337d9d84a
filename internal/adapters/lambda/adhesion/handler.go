// Package adhesion implements the serverless company registration function
// behind an API Gateway proxy integration. It validates the request exactly
// like the HTTP API and writes straight to the company repository.
//
// The function is unauthenticated; deployments are expected to restrict who
// can invoke it at the gateway.
package adhesion

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"

	"github.com/jsamuelsen11/company-adhesion-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/company-adhesion-service/internal/domain"
	"github.com/jsamuelsen11/company-adhesion-service/internal/domain/company"
	"github.com/jsamuelsen11/company-adhesion-service/internal/platform/clock"
	"github.com/jsamuelsen11/company-adhesion-service/internal/ports"
)

// Handler serves API Gateway proxy events.
type Handler struct {
	companies ports.CompanyRepository
	clock     ports.Clock
	logger    *slog.Logger
	newID     func() string
}

// Option configures a Handler.
type Option func(*Handler)

// WithIDGenerator replaces the UUID generator.
func WithIDGenerator(fn func() string) Option {
	return func(h *Handler) { h.newID = fn }
}

// NewHandler creates a Handler. A nil clock uses the system clock and a nil
// logger discards output.
func NewHandler(companies ports.CompanyRepository, clk ports.Clock, logger *slog.Logger, opts ...Option) *Handler {
	if clk == nil {
		clk = clock.System{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	h := &Handler{
		companies: companies,
		clock:     clk,
		logger:    logger,
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Handle registers the company described by the request body.
//
//   - non-POST methods get 405
//   - a missing, malformed or invalid body gets 400
//   - storage failures get 500, or 503 when the breaker is open
//   - success gets 201 with the stored company
func (h *Handler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	logger := h.logger.With(slog.String("request_id", req.RequestContext.RequestID))
	logger.InfoContext(ctx, "received event",
		slog.String("method", req.HTTPMethod),
		slog.String("path", req.Path),
		slog.Int("body_bytes", len(req.Body)),
	)

	if req.HTTPMethod != http.MethodPost {
		return respond(http.StatusMethodNotAllowed, methodNotAllowed{Message: "Method Not Allowed"}), nil
	}

	if len(req.Body) > dto.MaxBodyBytes {
		return problem(ctx, logger, req.Path, &domain.ValidationError{Fields: map[string]string{
			"body": fmt.Sprintf("must not exceed %d bytes", dto.MaxBodyBytes),
		}})
	}

	var raw registerBody
	if err := dto.DecodeStrict(strings.NewReader(req.Body), &raw); err != nil {
		return problem(ctx, logger, req.Path, err)
	}
	body := raw.request()
	if err := body.Validate(); err != nil {
		return problem(ctx, logger, req.Path, err)
	}

	cmd := body.ToCommand()
	saved, err := h.companies.Save(ctx, company.Company{
		ID:           h.newID(),
		TaxID:        cmd.TaxID,
		LegalName:    cmd.LegalName,
		AdhesionDate: h.clock.Now(),
		Type:         cmd.Type,
	})
	if err != nil {
		logger.ErrorContext(ctx, "failed to save company",
			slog.String("operation", "RegisterCompany"),
			slog.String("tax_id", cmd.TaxID),
			slog.Any("error", err),
		)
		return problem(ctx, logger, req.Path, err)
	}

	logger.InfoContext(ctx, "company saved",
		slog.String("id", saved.ID),
		slog.String("type", saved.Type.String()),
	)
	return respond(http.StatusCreated, dto.ToCompanyResponse(&saved)), nil
}

// registerBody accepts the HTTP API field names and the cuit, razonSocial
// and tipo names sent by older clients of the function. The HTTP API names
// win when both are set.
type registerBody struct {
	dto.RegisterCompanyRequest

	Cuit        string `json:"cuit"`
	RazonSocial string `json:"razonSocial"`
	Tipo        string `json:"tipo"`
}

func (b registerBody) request() dto.RegisterCompanyRequest {
	r := b.RegisterCompanyRequest
	r.TaxID = cmp.Or(r.TaxID, b.Cuit)
	r.LegalName = cmp.Or(r.LegalName, b.RazonSocial)
	r.Type = cmp.Or(r.Type, b.Tipo)
	return r
}

type methodNotAllowed struct {
	Message string `json:"message"`
}

// problem renders err as a Problem Details response using the same mapping
// as the HTTP API.
func problem(ctx context.Context, logger *slog.Logger, path string, err error) (events.APIGatewayProxyResponse, error) {
	pd := dto.NewProblem(path, err)
	if pd.Status < http.StatusInternalServerError {
		logger.WarnContext(ctx, "request rejected", slog.Int("status", pd.Status), slog.Any("error", err))
	}

	resp := respond(pd.Status, pd)
	resp.Headers["Content-Type"] = "application/problem+json"
	return resp, nil
}

func respond(status int, body any) events.APIGatewayProxyResponse {
	payload, err := json.Marshal(body)
	if err != nil {
		status = http.StatusInternalServerError
		payload = []byte(`{"message":"Internal Server Error"}`)
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers: map[string]string{
			"Content-Type":                 "application/json",
			"Access-Control-Allow-Origin":  "*",
			"Access-Control-Allow-Methods": http.MethodPost,
			"Access-Control-Allow-Headers": "Content-Type",
		},
		Body: string(payload),
	}
}
