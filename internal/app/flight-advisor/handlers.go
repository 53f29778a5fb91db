package flightadvisor

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/airnav/flight-advisor/internal/app/flight-advisor/airspace"
	"github.com/airnav/flight-advisor/pkg/types"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/senml"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("flight-advisor")

const (
	locationURN = "urn:oma:lwm2m:ext:3336"

	latitudeResource  = "5514"
	longitudeResource = "5515"
)

// NewPositionHandler returns a topic message handler for drone position
// reports. Positions arrive as senml location packs; each report triggers a
// point status check and an airspace.status.changed message is published with
// the result.
func NewPositionHandler(app AdvisorApp, msgCtx messaging.MsgContext) messaging.TopicMessageHandler {
	return func(ctx context.Context, d messaging.IncomingTopicMessage, logger *slog.Logger) {
		var err error

		ctx, span := tracer.Start(ctx, d.TopicName())
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		msg := struct {
			Pack      senml.Pack `json:"pack"`
			Tenant    string     `json:"tenant"`
			Timestamp time.Time  `json:"timestamp"`
		}{}

		err = json.Unmarshal(d.Body(), &msg)
		if err != nil {
			log.Error("could not unmarshal message", "err", err.Error())
			return
		}

		if msg.Pack.Validate() != nil {
			log.Error("message contains an invalid package")
			return
		}

		droneID, ok := extractDroneID(msg.Pack)
		if !ok {
			log.Debug("no drone id found in package")
			return
		}

		coordinate, ok := extractPosition(msg.Pack)
		if !ok {
			log.Debug("no position found in package", "drone_id", droneID)
			return
		}

		tenant := msg.Tenant
		if tenant == "" {
			tenant = "default"
		}

		status, err := app.CheckFlight(ctx,
			airspace.Point{Coordinate: coordinate},
			app.DefaultBuffer(),
			app.DefaultConfiguration(),
			[]string{tenant},
			FetchOptions{},
		)
		if err != nil {
			log.Error("could not check flight position", "drone_id", droneID, "err", err.Error())
			return
		}

		ts := msg.Timestamp
		if ts.IsZero() {
			ts = time.Now()
		}

		err = msgCtx.PublishOnTopic(ctx, &types.AirspaceStatusChanged{
			Subject:         droneID,
			Color:           string(status.Color),
			Advisories:      len(status.Advisories),
			RequiresPermits: status.RequiresPermits,
			Tenant:          tenant,
			Timestamp:       ts.UTC(),
		})
		if err != nil {
			log.Error("could not publish airspace status", "drone_id", droneID, "err", err.Error())
			return
		}
	}
}

func extractDroneID(pack senml.Pack) (string, bool) {
	r, ok := pack.GetRecord(senml.FindByName("0"))
	if !ok {
		return "", false
	}
	if r.StringValue != locationURN {
		return "", false
	}
	return strings.Split(r.Name, "/")[0], true
}

func extractPosition(pack senml.Pack) (airspace.Coordinate2D, bool) {
	lat, latOk := pack.GetRecord(senml.FindByName(latitudeResource))
	lon, lonOk := pack.GetRecord(senml.FindByName(longitudeResource))

	if !latOk || !lonOk || lat.Value == nil || lon.Value == nil {
		return airspace.Coordinate2D{}, false
	}

	return airspace.Coordinate2D{Latitude: *lat.Value, Longitude: *lon.Value}, true
}
