package trace

import (
	"io"

	opentracing "github.com/opentracing/opentracing-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
)

// InitJaeger installs a Jaeger tracer as the opentracing global tracer,
// so Split/Concat/Rebalance spans are exported instead of discarded. The
// returned closer must be closed on shutdown to flush buffered spans.
// Nothing in this module calls this, cmd/chunkbench included; the library
// itself never forces a tracer on its callers.
func InitJaeger(service string) (io.Closer, error) {
	cfg := jaegercfg.Configuration{
		ServiceName: service,
		Sampler: &jaegercfg.SamplerConfig{
			Type:  "const",
			Param: 1,
		},
		Reporter: &jaegercfg.ReporterConfig{
			LogSpans: false,
		},
	}
	tracer, closer, err := cfg.NewTracer()
	if err != nil {
		return nil, err
	}
	opentracing.SetGlobalTracer(tracer)
	return closer, nil
}
