package storage

import (
	"context"
	"encoding/json"
	"errors"

	app "github.com/airnav/flight-advisor/internal/app/flight-advisor"
	"github.com/airnav/flight-advisor/internal/app/flight-advisor/airspace"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Db struct {
	pool *pgxpool.Pool
}

func New(ctx context.Context, cfg Config) (Db, error) {
	p, err := connect(ctx, cfg)
	if err != nil {
		return Db{}, err
	}

	err = initialize(ctx, p)
	if err != nil {
		return Db{}, err
	}

	return Db{
		pool: p,
	}, nil
}

func initialize(ctx context.Context, pool *pgxpool.Pool) error {
	log := logging.GetFromContext(ctx)

	ddl := `
	CREATE TABLE IF NOT EXISTS jurisdictions (
		row_id      BIGSERIAL,
		id          TEXT    NOT NULL,
		region      TEXT    NOT NULL,
		data        JSONB   NOT NULL,
		created_on  timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
		modified_on timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (row_id)
	);

	CREATE UNIQUE INDEX IF NOT EXISTS jurisdiction_id_idx ON jurisdictions (lower(id));
	CREATE INDEX IF NOT EXISTS jurisdiction_region_idx ON jurisdictions (region);

	CREATE TABLE IF NOT EXISTS pilot_permits (
		row_id          BIGSERIAL,
		permit_id       TEXT    NOT NULL,
		status          TEXT    NOT NULL,
		organization_id TEXT    NULL,
		data            JSONB   NOT NULL,
		tenant          TEXT    NOT NULL,
		created_on      timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
		modified_on     timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (row_id)
	);

	CREATE UNIQUE INDEX IF NOT EXISTS pilot_permit_idx ON pilot_permits (lower(permit_id), tenant);
	CREATE INDEX IF NOT EXISTS pilot_permit_tenant_idx ON pilot_permits (tenant, status);
	`

	tx, err := pool.Begin(ctx)
	if err != nil {
		log.Error("could not begin transaction", "err", err.Error())
		return err
	}

	_, err = tx.Exec(ctx, ddl)
	if err != nil {
		log.Error("could not execute ddl statement", "err", err.Error())
		tx.Rollback(ctx)
		return err
	}

	err = tx.Commit(ctx)
	if err != nil {
		log.Error("could not commit transaction", "err", err.Error())
		return err
	}

	return nil
}

func connect(ctx context.Context, cfg Config) (*pgxpool.Pool, error) {
	conn, err := pgxpool.New(ctx, cfg.ConnStr())
	if err != nil {
		return nil, err
	}

	err = conn.Ping(ctx)
	if err != nil {
		return nil, err
	}

	return conn, err
}

func (db Db) Close() {
	db.pool.Close()
}

func (db Db) SaveJurisdiction(ctx context.Context, j airspace.Jurisdiction) error {
	log := logging.GetFromContext(ctx)

	data, err := json.Marshal(j)
	if err != nil {
		return err
	}

	upsert := `INSERT INTO jurisdictions(id, region, data) VALUES (@id, @region, @data)
			   ON CONFLICT (lower(id)) DO UPDATE SET region=@region, data=@data, modified_on=CURRENT_TIMESTAMP;`

	_, err = db.pool.Exec(ctx, upsert, pgx.NamedArgs{
		"id":     j.ID,
		"region": string(j.Region),
		"data":   string(data),
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			log.Debug("upsert statement failed", "err", pgErr.Error(), "code", pgErr.Code, "message", pgErr.Message)
		}

		log.Error("could not execute statement", "err", err.Error())
		return err
	}

	return nil
}

func (db Db) SavePilotPermit(ctx context.Context, p airspace.PilotPermit, tenant string) error {
	log := logging.GetFromContext(ctx)

	data, err := json.Marshal(p)
	if err != nil {
		return err
	}

	upsert := `INSERT INTO pilot_permits(permit_id, status, organization_id, data, tenant)
			   VALUES (@permit_id, @status, @organization_id, @data, @tenant)
			   ON CONFLICT (lower(permit_id), tenant) DO UPDATE SET status=@status, data=@data, modified_on=CURRENT_TIMESTAMP;`

	_, err = db.pool.Exec(ctx, upsert, pgx.NamedArgs{
		"permit_id":       p.PermitID,
		"status":          string(p.Status),
		"organization_id": p.OrganizationID,
		"data":            string(data),
		"tenant":          tenant,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			log.Debug("upsert statement failed", "err", pgErr.Error(), "code", pgErr.Code, "message", pgErr.Message)
		}

		log.Error("could not execute statement", "err", err.Error())
		return err
	}

	return nil
}

func (db Db) QueryJurisdictions(ctx context.Context, conditions ...app.ConditionFunc) (app.QueryResult, error) {
	where, args := newJurisdictionParams(conditions...)

	query := "SELECT data, COUNT(*) OVER () AS total_count FROM jurisdictions " + where

	return db.queryData(ctx, query, args)
}

func (db Db) QueryPilotPermits(ctx context.Context, conditions ...app.ConditionFunc) (app.QueryResult, error) {
	where, args := newPilotPermitParams(conditions...)

	query := "SELECT data, COUNT(*) OVER () AS total_count FROM pilot_permits " + where

	return db.queryData(ctx, query, args)
}

func (db Db) queryData(ctx context.Context, query string, args pgx.NamedArgs) (app.QueryResult, error) {
	log := logging.GetFromContext(ctx)

	rows, err := db.pool.Query(ctx, query, args)
	if err != nil {
		log.Error("could not execute query", "err", err.Error())
		return app.QueryResult{}, err
	}
	defer rows.Close()

	var data [][]byte
	var totalCount int64

	for rows.Next() {
		var b []byte
		err = rows.Scan(&b, &totalCount)
		if err != nil {
			return app.QueryResult{}, err
		}
		data = append(data, b)
	}

	if rows.Err() != nil {
		return app.QueryResult{}, rows.Err()
	}

	offset, _ := args["offset"].(int)
	limit, _ := args["limit"].(int)

	return app.QueryResult{
		Data:       data,
		Count:      len(data),
		Offset:     offset,
		Limit:      limit,
		TotalCount: totalCount,
	}, nil
}
