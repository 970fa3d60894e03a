package services

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	noopmetric "go.opentelemetry.io/otel/metric/noop"
)

const (
	usecaseMeterName          = "lingo-services-clips.services"
	usecaseCallsMetricName    = "clips.usecase.calls"
	usecaseDurationMetricName = "clips.usecase.duration_ms"
)

var (
	attrOp      = attribute.Key("op")
	attrOutcome = attribute.Key("outcome")
)

type usecaseMetrics struct {
	calls    metric.Int64Counter
	duration metric.Float64Histogram
}

// newUsecaseMetrics 从全局 MeterProvider 创建指标，失败时退化为 noop 仪表。
func newUsecaseMetrics() *usecaseMetrics {
	provider := otel.GetMeterProvider()
	if provider == nil {
		provider = noopmetric.NewMeterProvider()
	}
	meter := provider.Meter(usecaseMeterName)
	noopMeter := noopmetric.NewMeterProvider().Meter(usecaseMeterName)

	calls, err := meter.Int64Counter(usecaseCallsMetricName,
		metric.WithDescription("Number of usecase invocations by operation and outcome"))
	if err != nil {
		calls, _ = noopMeter.Int64Counter(usecaseCallsMetricName)
	}
	duration, err := meter.Float64Histogram(usecaseDurationMetricName,
		metric.WithDescription("Usecase latency including repository calls"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		duration, _ = noopMeter.Float64Histogram(usecaseDurationMetricName)
	}
	return &usecaseMetrics{calls: calls, duration: duration}
}

// observe 在用例返回时记录调用次数与耗时，errp 指向具名返回值。
func (m *usecaseMetrics) observe(ctx context.Context, op string, start time.Time, errp *error) {
	if m == nil {
		return
	}
	var err error
	if errp != nil {
		err = *errp
	}
	m.calls.Add(ctx, 1, metric.WithAttributes(attrOp.String(op), attrOutcome.String(outcomeOf(err))))
	m.duration.Record(ctx, float64(time.Since(start).Microseconds())/1000, metric.WithAttributes(attrOp.String(op)))
}

func outcomeOf(err error) string {
	if err == nil {
		return "ok"
	}
	if kind := KindOf(err); kind != 0 {
		return kind.String()
	}
	return KindInfrastructure.String()
}
