package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type MetricsTestSuite struct {
	suite.Suite
	provider *Provider
}

func (s *MetricsTestSuite) SetupTest() {
	var err error
	s.provider, err = NewProvider()
	s.Require().NoError(err)
	s.Require().NotNil(s.provider)
}

func TestMetricsTestSuite(t *testing.T) {
	suite.Run(t, new(MetricsTestSuite))
}

func (s *MetricsTestSuite) scrape() string {
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()

	s.provider.Handler().ServeHTTP(w, req)

	s.Require().Equal(http.StatusOK, w.Code)
	s.Assert().Contains(w.Header().Get("Content-Type"), "text/plain")
	return w.Body.String()
}

func (s *MetricsTestSuite) TestNewProvider_Success() {
	s.Assert().NotNil(s.provider.RequestsTotal)
	s.Assert().NotNil(s.provider.RequestDuration)
	s.Assert().NotNil(s.provider.RequestsInFlight)
	s.Assert().NotNil(s.provider.ValidationsTotal)
	s.Assert().NotNil(s.provider.ValidationMessages)
	s.Assert().NotNil(s.provider.registry)
}

func (s *MetricsTestSuite) TestNewProvider_SeparateRegistries() {
	other, err := NewProvider()
	s.Require().NoError(err)

	s.Assert().NotSame(s.provider.registry, other.registry)
}

func (s *MetricsTestSuite) TestProvider_HTTPMetrics() {
	ctx := context.Background()
	attrs := metric.WithAttributes(
		attribute.String("method", "POST"),
		attribute.String("path", "/api/validate"),
		attribute.String("status", "422"),
	)

	s.provider.RequestsTotal.Add(ctx, 3, attrs)
	s.provider.RequestDuration.Record(ctx, 0.25, attrs)
	s.provider.RequestsInFlight.Add(ctx, 1)

	body := s.scrape()

	s.Assert().Contains(body, "http_requests_total")
	s.Assert().Contains(body, "http_request_duration_seconds")
	s.Assert().Contains(body, "http_requests_in_flight")
	s.Assert().Contains(body, `path="/api/validate"`)
}

func (s *MetricsTestSuite) TestProvider_RecordValidation() {
	ctx := context.Background()

	s.provider.RecordValidation(ctx, "profile", false, 3)
	s.provider.RecordValidation(ctx, "inline", true, 0)

	body := s.scrape()

	s.Assert().Contains(body, "validations_total")
	s.Assert().Contains(body, "validation_messages")
	s.Assert().Contains(body, `schema="profile"`)
	s.Assert().Contains(body, `valid="false"`)
	s.Assert().Contains(body, `schema="inline"`)
}

func (s *MetricsTestSuite) TestProvider_ConcurrentRecording() {
	ctx := context.Background()
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.provider.RecordValidation(ctx, "profile", i%2 == 0, i)
			s.provider.RequestsTotal.Add(ctx, 1)
		}(i)
	}
	wg.Wait()

	s.Assert().Contains(s.scrape(), "validations_total")
}
