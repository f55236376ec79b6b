package metrics

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

type Provider struct {
	RequestsTotal    metric.Int64Counter
	RequestDuration  metric.Float64Histogram
	RequestsInFlight metric.Int64UpDownCounter

	ValidationsTotal   metric.Int64Counter
	ValidationMessages metric.Int64Histogram

	registry *prometheus.Registry
}

func NewProvider() (*Provider, error) {
	registry := prometheus.NewRegistry()

	exporter, err := promexporter.New(
		promexporter.WithRegisterer(registry),
	)
	if err != nil {
		return nil, err
	}

	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter))
	otel.SetMeterProvider(provider)

	meter := provider.Meter("constraintsvc")

	requestsTotal, err := meter.Int64Counter(
		"http_requests",
		metric.WithDescription("Total number of HTTP requests"),
	)
	if err != nil {
		return nil, err
	}

	requestDuration, err := meter.Float64Histogram(
		"http_request_duration",
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10),
	)
	if err != nil {
		return nil, err
	}

	requestsInFlight, err := meter.Int64UpDownCounter(
		"http_requests_in_flight",
		metric.WithDescription("Number of HTTP requests currently in flight"),
	)
	if err != nil {
		return nil, err
	}

	validationsTotal, err := meter.Int64Counter(
		"validations",
		metric.WithDescription("Number of validation runs by schema and outcome"),
	)
	if err != nil {
		return nil, err
	}

	validationMessages, err := meter.Int64Histogram(
		"validation_messages",
		metric.WithDescription("Failure messages produced per validation run"),
		metric.WithExplicitBucketBoundaries(0, 1, 2, 5, 10, 25, 50, 100),
	)
	if err != nil {
		return nil, err
	}

	return &Provider{
		RequestsTotal:      requestsTotal,
		RequestDuration:    requestDuration,
		RequestsInFlight:   requestsInFlight,
		ValidationsTotal:   validationsTotal,
		ValidationMessages: validationMessages,
		registry:           registry,
	}, nil
}

// RecordValidation counts one validation run against schemaID.
func (p *Provider) RecordValidation(ctx context.Context, schemaID string, valid bool, messages int) {
	attrs := metric.WithAttributes(
		attribute.String("schema", schemaID),
		attribute.Bool("valid", valid),
	)
	p.ValidationsTotal.Add(ctx, 1, attrs)
	p.ValidationMessages.Record(ctx, int64(messages), attrs)
}

func (p *Provider) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}
