package auth

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/open-policy-agent/opa/v1/rego"
)

type contextKey int

const tenantsContextKey contextKey = 0

// NewAuthenticator prepares the authorization policy found in policies and
// returns a middleware that evaluates it for each request. The policy decides
// both whether the request is allowed and which tenants it may act on.
func NewAuthenticator(ctx context.Context, logger *slog.Logger, policies io.Reader) (func(http.Handler) http.Handler, error) {
	module, err := io.ReadAll(policies)
	if err != nil {
		return nil, fmt.Errorf("unable to read authz policies: %w", err)
	}

	query, err := rego.New(
		rego.Query("x = data.flightadvisor.authz.allow"),
		rego.Module("authz.rego", string(module)),
	).PrepareForEval(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to prepare authz query: %w", err)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			token, ok := bearerToken(r)
			if !ok {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			input := map[string]any{
				"method": r.Method,
				"path":   strings.Split(strings.TrimPrefix(r.URL.Path, "/"), "/"),
				"token":  token,
			}

			if claims, err := tokenClaims(token); err == nil {
				input["claims"] = claims
			}

			results, err := query.Eval(ctx, rego.EvalInput(input))
			if err != nil {
				logger.Error("policy evaluation failure", "err", err.Error())
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			if len(results) == 0 {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			tenants, allowed := decision(results[0].Bindings["x"])
			if !allowed {
				w.WriteHeader(http.StatusForbidden)
				return
			}

			ctx = context.WithValue(ctx, tenantsContextKey, tenants)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}, nil
}

// GetAllowedTenantsFromContext returns the tenants the authenticated caller
// may act on, or an empty slice for unauthenticated contexts.
func GetAllowedTenantsFromContext(ctx context.Context) []string {
	tenants, ok := ctx.Value(tenantsContextKey).([]string)
	if !ok {
		return []string{}
	}
	return tenants
}

// decision interprets the policy result binding. A bare boolean allows or
// denies without tenant scoping, an object carries the allowed tenants.
func decision(binding any) ([]string, bool) {
	switch v := binding.(type) {
	case bool:
		return []string{}, v
	case map[string]any:
		tenants, ok := v["tenants"].([]any)
		if !ok {
			return []string{}, false
		}
		result := make([]string, 0, len(tenants))
		for _, t := range tenants {
			if s, ok := t.(string); ok {
				result = append(result, s)
			}
		}
		return result, true
	default:
		return []string{}, false
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}

	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return "", false
	}

	return token, true
}

// tokenClaims decodes the payload of a jwt without verifying the signature.
// Verification is the policy's concern, the claims are offered as input so
// policies can scope tenants without re-parsing the token themselves.
func tokenClaims(token string) (map[string]any, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return nil, fmt.Errorf("token is not a jwt")
	}

	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, fmt.Errorf("unable to decode token payload: %w", err)
	}

	claims := map[string]any{}
	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil, fmt.Errorf("unable to unmarshal token claims: %w", err)
	}

	return claims, nil
}
