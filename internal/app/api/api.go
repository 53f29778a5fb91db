package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	app "github.com/airnav/flight-advisor/internal/app/flight-advisor"
	"github.com/airnav/flight-advisor/internal/app/flight-advisor/airspace"
	"github.com/airnav/flight-advisor/internal/pkg/auth"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var tracer = otel.Tracer("flight-advisor/api")
var meter = otel.Meter("flight-advisor/api")

func Register(ctx context.Context, app app.AdvisorApp, policies io.Reader) (*chi.Mux, error) {
	log := logging.GetFromContext(ctx)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	authenticator, err := auth.NewAuthenticator(ctx, log, policies)
	if err != nil {
		return nil, fmt.Errorf("failed to create api authenticator: %w", err)
	}

	statusChecks, err := meter.Int64Counter("airspace_status_checks",
		metric.WithDescription("number of airspace status checks served"))
	if err != nil {
		return nil, fmt.Errorf("failed to create status check counter: %w", err)
	}

	r.Route("/api/v0", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(authenticator)

			r.Route("/airspace", func(r chi.Router) {
				r.Post("/status", statusHandler(log, app, statusChecks))
			})

			r.Route("/rulesets", func(r chi.Router) {
				r.Post("/resolve", resolveHandler(log, app))
			})

			r.Route("/jurisdictions", func(r chi.Router) {
				r.Get("/", queryJurisdictionsHandler(log, app))
				r.Get("/{id}", getJurisdictionByIDHandler(log, app))
				r.Post("/", seedHandler(log, app))
			})

			r.Route("/permits", func(r chi.Router) {
				r.Get("/", queryPermitsHandler(log, app))
				r.Post("/", applyPermitHandler(log, app))
				r.Post("/decision", decisionHandler(log, app))
			})
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return r, nil
}

func statusHandler(log *slog.Logger, a app.AdvisorApp, statusChecks metric.Int64Counter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "check-airspace-status")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, logger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		req := statusRequest{}
		err = json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			logger.Error("could not decode status request", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		geometry, err := airspace.ParseWKT(req.Geometry)
		if err != nil {
			logger.Error("could not parse geometry", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(err.Error()))
			return
		}

		buffer := req.Buffer
		if buffer <= 0 {
			buffer = a.DefaultBuffer()
		}

		tenants := auth.GetAllowedTenantsFromContext(ctx)
		opts := app.FetchOptions{Weather: req.Weather, Start: req.Start}

		status, err := a.CheckFlight(ctx, geometry, buffer, req.Rulesets.toConfiguration(), tenants, opts)
		if err != nil && errors.Is(err, airspace.ErrInvalidGeometry) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(err.Error()))
			return
		}
		if err != nil {
			logger.Error("could not check airspace status", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(err.Error()))
			return
		}

		statusChecks.Add(ctx, 1, metric.WithAttributes(attribute.String("color", string(status.Color))))

		if r.Header.Get("Accept") == "application/geo+json" {
			fc := newFeatureCollection(status)

			b, err := json.Marshal(fc)
			if err != nil {
				logger.Error("could not marshal status features", "err", err.Error())
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte(err.Error()))
				return
			}

			w.Header().Set("Content-Type", "application/geo+json")
			w.WriteHeader(http.StatusOK)
			w.Write(b)
			return
		}

		response := NewApiResponse(r, status, 1, 1, 0, 1)

		w.Header().Set("Content-Type", "application/vnd.api+json")
		w.WriteHeader(http.StatusOK)
		w.Write(response.Byte())
	}
}

func resolveHandler(log *slog.Logger, a app.AdvisorApp) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "resolve-rulesets")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, logger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		w.Header().Set("Content-Type", "application/vnd.api+json")

		req := resolveRequest{}
		err = json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			logger.Error("could not decode resolve request", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		geometry, err := airspace.ParseWKT(req.Geometry)
		if err != nil {
			logger.Error("could not parse geometry", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(err.Error()))
			return
		}

		rulesets, err := a.ResolveRulesets(ctx, geometry, req.Rulesets.toConfiguration())
		if err != nil {
			logger.Error("could not resolve rulesets", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(err.Error()))
			return
		}

		response := NewApiResponse(r, rulesets, uint64(len(rulesets)), uint64(len(rulesets)), 0, uint64(len(rulesets)))

		w.WriteHeader(http.StatusOK)
		w.Write(response.Byte())
	}
}

func queryJurisdictionsHandler(log *slog.Logger, a app.AdvisorApp) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "query-jurisdictions")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, logger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		w.Header().Set("Content-Type", "application/vnd.api+json")

		result, err := a.Jurisdictions(ctx, r.URL.Query())
		if err != nil {
			logger.Error("could not query jurisdictions", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(err.Error()))
			return
		}

		if result.Count == 0 {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("[]"))
			return
		}

		data := make([]json.RawMessage, 0, len(result.Data))
		for _, b := range result.Data {
			data = append(data, json.RawMessage(b))
		}

		response := NewApiResponse(r, data, uint64(result.Count), uint64(result.TotalCount), uint64(result.Offset), uint64(result.Limit))

		w.WriteHeader(http.StatusOK)
		w.Write(response.Byte())
	}
}

func getJurisdictionByIDHandler(log *slog.Logger, a app.AdvisorApp) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "get-jurisdiction-byID")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, logger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		w.Header().Set("Content-Type", "application/vnd.api+json")

		id := chi.URLParam(r, "id")
		if id == "" {
			logger.Error("no id parameter found in request")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		result, err := a.Jurisdictions(ctx, map[string][]string{"id": {id}})
		if err != nil {
			logger.Debug("failed to query jurisdictions", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(err.Error()))
			return
		}
		if result.Count != 1 {
			logger.Debug("jurisdiction not found", "id", id)
			w.WriteHeader(http.StatusNotFound)
			return
		}

		response := NewApiResponse(r, json.RawMessage(result.Data[0]), 1, 1, 0, 1)

		w.WriteHeader(http.StatusOK)
		w.Write(response.Byte())
	}
}

func seedHandler(log *slog.Logger, a app.AdvisorApp) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "seed-jurisdictions")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, logger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		w.Header().Set("Content-Type", "application/vnd.api+json")

		if !isMultipartFormData(r) {
			w.WriteHeader(http.StatusUnsupportedMediaType)
			return
		}

		file, _, err := r.FormFile("fileupload")
		if err != nil {
			logger.Error("unable to get file from fileupload", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer file.Close()

		err = a.Seed(ctx, file)
		if err != nil {
			logger.Error("could not seed", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(err.Error()))
			return
		}

		w.WriteHeader(http.StatusCreated)
	}
}

func queryPermitsHandler(log *slog.Logger, a app.AdvisorApp) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "query-pilot-permits")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, logger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		w.Header().Set("Content-Type", "application/vnd.api+json")

		tenants := auth.GetAllowedTenantsFromContext(ctx)

		result, err := a.PilotPermits(ctx, r.URL.Query(), tenants)
		if err != nil && errors.Is(err, app.ErrUnauthorized) {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		if err != nil {
			logger.Error("could not query pilot permits", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(err.Error()))
			return
		}

		if result.Count == 0 {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("[]"))
			return
		}

		data := make([]json.RawMessage, 0, len(result.Data))
		for _, b := range result.Data {
			data = append(data, json.RawMessage(b))
		}

		response := NewApiResponse(r, data, uint64(result.Count), uint64(result.TotalCount), uint64(result.Offset), uint64(result.Limit))

		w.WriteHeader(http.StatusOK)
		w.Write(response.Byte())
	}
}

func applyPermitHandler(log *slog.Logger, a app.AdvisorApp) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "apply-for-permit")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, logger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		w.Header().Set("Content-Type", "application/vnd.api+json")

		req := permitRequest{}
		err = json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			logger.Error("could not decode permit request", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if req.PermitID == "" {
			logger.Error("no permit id found in request")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		tenants := auth.GetAllowedTenantsFromContext(ctx)
		tenant := ""
		if len(tenants) > 0 {
			tenant = tenants[0]
		}

		permit, err := a.ApplyForPermit(ctx, req.toApplication(), tenant)
		if err != nil && errors.Is(err, app.ErrUnauthorized) {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		if err != nil {
			logger.Error("could not apply for permit", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(err.Error()))
			return
		}

		response := NewApiResponse(r, permit, 1, 1, 0, 1)

		w.WriteHeader(http.StatusCreated)
		w.Write(response.Byte())
	}
}

func decisionHandler(log *slog.Logger, a app.AdvisorApp) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "evaluate-permit-decision")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, _, logger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		w.Header().Set("Content-Type", "application/vnd.api+json")

		req := decisionRequest{}
		err = json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			logger.Error("could not decode decision request", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		outcome, err := a.EvaluateDecision(req.FirstQuestionID, req.Questions, req.Answers)
		if err != nil && errors.Is(err, airspace.ErrDanglingQuestion) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(err.Error()))
			return
		}
		if err != nil {
			logger.Error("could not evaluate decision flow", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(err.Error()))
			return
		}

		response := NewApiResponse(r, outcome, 1, 1, 0, 1)

		w.WriteHeader(http.StatusOK)
		w.Write(response.Byte())
	}
}

func isMultipartFormData(r *http.Request) bool {
	contentType := r.Header.Get("Content-Type")
	return strings.Contains(contentType, "multipart/form-data")
}
