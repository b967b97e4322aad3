// Package telemetry wires the service logger and distributed tracing.
package telemetry

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.uber.org/zap"
)

// Logger is the process-wide structured logger, replaced by InitTelemetry.
var Logger = zap.NewNop()

var tracerProvider *sdktrace.TracerProvider

// InitTelemetry sets up the zap logger and, when OTLP_ENDPOINT is configured,
// an OTLP trace exporter registered as the global tracer provider.
func InitTelemetry(serviceName string) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}
	Logger = logger

	endpoint := os.Getenv("OTLP_ENDPOINT")
	if endpoint == "" {
		return nil
	}

	ctx := context.Background()
	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(serviceName)),
	)
	if err != nil {
		return err
	}

	tracerProvider = sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tracerProvider)
	return nil
}

// Shutdown flushes pending spans and the logger.
func Shutdown(ctx context.Context) {
	if tracerProvider != nil {
		_ = tracerProvider.Shutdown(ctx)
	}
	if Logger != nil {
		_ = Logger.Sync()
	}
}

// TracingMiddleware starts one span per request and propagates it through
// the request context.
func TracingMiddleware() gin.HandlerFunc {
	tracer := otel.Tracer("payments-admin")
	return func(c *gin.Context) {
		ctx, span := tracer.Start(c.Request.Context(), c.Request.Method+" "+c.FullPath())
		defer span.End()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		span.SetAttributes(
			attribute.String("http.method", c.Request.Method),
			attribute.Int("http.status_code", c.Writer.Status()),
		)
	}
}
