package tracing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/noah-isme/enterprise-data-api/pkg/config"
)

func TestInitDisabledIsNoop(t *testing.T) {
	shutdown, err := Init(config.TracingConfig{Enabled: false}, "test")
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}

func TestStartAndEndSpanRecordsError(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(tracesdk.NewTracerProvider(tracesdk.WithSpanProcessor(recorder)))
	defer otel.SetTracerProvider(previous)

	_, span := StartSpan(context.Background(), "enrollments.list", attribute.String("enterprise_id", "abc"))
	EndSpan(span, errors.New("boom"))

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	require.Equal(t, "enrollments.list", ended[0].Name())
	require.Equal(t, codes.Error, ended[0].Status().Code)
	require.Contains(t, ended[0].Attributes(), attribute.String("enterprise_id", "abc"))
}
