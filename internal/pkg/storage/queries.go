package storage

import (
	app "github.com/airnav/flight-advisor/internal/app/flight-advisor"
	"github.com/jackc/pgx/v5"
)

func newConditions(conditions ...app.ConditionFunc) map[string]any {
	m := make(map[string]any)

	for _, f := range conditions {
		m = f(m)
	}

	if _, ok := m["limit"]; !ok {
		m["limit"] = 100
	}

	if _, ok := m["offset"]; !ok {
		m["offset"] = 0
	}

	return m
}

func newJurisdictionParams(conditions ...app.ConditionFunc) (string, pgx.NamedArgs) {
	c := newConditions(conditions...)

	query := "WHERE 1=1"
	args := pgx.NamedArgs{}

	if id, ok := c["id"]; ok {
		query += " AND id=@id"
		args["id"] = id
	}

	if regions, ok := c["regions"]; ok {
		query += " AND region=ANY(@regions)"
		args["regions"] = regions
	}

	query += " ORDER BY id ASC"

	if offset, ok := c["offset"]; ok {
		query += " OFFSET @offset"
		args["offset"] = offset
	}

	if limit, ok := c["limit"]; ok {
		query += " LIMIT @limit"
		args["limit"] = limit
	}

	return query, args
}

func newPilotPermitParams(conditions ...app.ConditionFunc) (string, pgx.NamedArgs) {
	c := newConditions(conditions...)

	query := "WHERE 1=1"
	args := pgx.NamedArgs{}

	if id, ok := c["id"]; ok {
		query += " AND permit_id=@permit_id"
		args["permit_id"] = id
	}

	if tenants, ok := c["tenants"]; ok {
		query += " AND tenant=ANY(@tenants)"
		args["tenants"] = tenants
	}

	if organization, ok := c["organization"]; ok {
		query += " AND organization_id=@organization_id"
		args["organization_id"] = organization
	}

	if status, ok := c["status"]; ok {
		query += " AND status=@status"
		args["status"] = status
	}

	query += " ORDER BY permit_id ASC"

	if offset, ok := c["offset"]; ok {
		query += " OFFSET @offset"
		args["offset"] = offset
	}

	if limit, ok := c["limit"]; ok {
		query += " LIMIT @limit"
		args["limit"] = limit
	}

	return query, args
}
