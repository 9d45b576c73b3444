package jaeger

import (
	"context"

	"github.com/St0pfen/Steam-Market-REST-API-server/internal/config"
	"github.com/opentracing/opentracing-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
	"go.uber.org/zap"
)

// Start registers a global jaeger tracer and blocks until ctx is
// cancelled. Controllers pick the tracer up via opentracing.
func Start(ctx context.Context, serviceName string, conf config.Jaeger, log *zap.Logger) {
	cfg := jaegercfg.Configuration{
		ServiceName: serviceName,
		Sampler: &jaegercfg.SamplerConfig{
			Type:  conf.Sampler.Type,
			Param: conf.Sampler.Param,
		},
		Reporter: &jaegercfg.ReporterConfig{
			LogSpans:           conf.Reporter.LogSpans,
			LocalAgentHostPort: conf.Reporter.LocalAgentHostPort,
		},
	}

	tracer, closer, err := cfg.NewTracer()
	if err != nil {
		log.Warn("failed to init jaeger tracer", zap.Error(err))
		return
	}
	opentracing.SetGlobalTracer(tracer)

	<-ctx.Done()
	if err = closer.Close(); err != nil {
		log.Warn("error closing tracer", zap.Error(err))
	}
}
