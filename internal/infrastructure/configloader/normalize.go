package configloader

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	defaultHandlerTimeout = 5 * time.Second
	defaultQueryTimeout   = 3 * time.Second
	defaultJWTHeaderKey   = "authorization"
)

// durationParser 解析 duration 文本并累积错误，便于一次性报告所有非法字段。
type durationParser struct {
	errs []error
}

func (p *durationParser) parse(field, raw string) time.Duration {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: invalid duration %q", field, raw))
		return 0
	}
	if d < 0 {
		p.errs = append(p.errs, fmt.Errorf("%s: must not be negative", field))
		return 0
	}
	return d
}

func (p *durationParser) err() error {
	return errors.Join(p.errs...)
}

func fromFile(fc fileConfig) (RuntimeConfig, error) {
	var p durationParser
	rc := RuntimeConfig{
		Server:        serverFromFile(fc.Server, &p),
		Database:      databaseFromFile(fc.Data, &p),
		Observability: observabilityFromFile(fc.Observability, &p),
	}
	return rc, p.err()
}

func serverFromFile(s fileServer, p *durationParser) ServerConfig {
	server := ServerConfig{
		Network: s.HTTP.Network,
		Address: s.HTTP.Addr,
		Timeout: p.parse("server.http.timeout", s.HTTP.Timeout),
	}
	if s.JWT != nil {
		server.JWT = ServerJWTConfig{
			Enabled:          true,
			ExpectedAudience: s.JWT.ExpectedAudience,
			SkipValidate:     s.JWT.SkipValidate,
			Required:         s.JWT.Required,
			HeaderKey:        firstNonEmpty(s.JWT.HeaderKey, defaultJWTHeaderKey),
		}
	}
	server.Handlers = handlerTimeouts(
		p.parse("server.handlers.default_timeout", s.Handlers.DefaultTimeout),
		p.parse("server.handlers.command_timeout", s.Handlers.CommandTimeout),
		p.parse("server.handlers.query_timeout", s.Handlers.QueryTimeout),
	)
	server.MetadataKeys = append([]string(nil), s.MetadataKeys...)
	return server
}

func handlerTimeouts(def, command, query time.Duration) HandlerTimeoutConfig {
	cfg := HandlerTimeoutConfig{
		Default: defaultHandlerTimeout,
		Command: defaultHandlerTimeout,
		Query:   defaultQueryTimeout,
	}
	if def > 0 {
		cfg.Default = def
	}
	if command > 0 {
		cfg.Command = command
	} else {
		cfg.Command = cfg.Default
	}
	if query > 0 {
		cfg.Query = query
	} else {
		cfg.Query = min(cfg.Query, cfg.Default)
	}
	return cfg
}

func databaseFromFile(d fileData, p *durationParser) DatabaseConfig {
	pg := d.Postgres
	return DatabaseConfig{
		DSN:               pg.DSN,
		MaxOpenConns:      pg.MaxOpenConns,
		MinOpenConns:      pg.MinOpenConns,
		MaxConnLifetime:   p.parse("data.postgres.max_conn_lifetime", pg.MaxConnLifetime),
		MaxConnIdleTime:   p.parse("data.postgres.max_conn_idle_time", pg.MaxConnIdleTime),
		HealthCheckPeriod: p.parse("data.postgres.health_check_period", pg.HealthCheckPeriod),
		Schema:            pg.Schema,
		PreparedStmts:     pg.PreparedStatementsEnabled,
		PoolMetrics:       pg.PoolMetricsEnabled,
		Transaction: TransactionConfig{
			DefaultIsolation: pg.Transaction.DefaultIsolation,
			DefaultTimeout:   p.parse("data.postgres.transaction.default_timeout", pg.Transaction.DefaultTimeout),
			LockTimeout:      p.parse("data.postgres.transaction.lock_timeout", pg.Transaction.LockTimeout),
			MaxRetries:       pg.Transaction.MaxRetries,
			MetricsEnabled:   pg.Transaction.MetricsEnabled,
		},
	}
}

func observabilityFromFile(o fileObservability, p *durationParser) ObservabilityConfig {
	t, m := o.Tracing, o.Metrics
	return ObservabilityConfig{
		GlobalAttributes: mapCopy(o.GlobalAttributes),
		Tracing: TracingConfig{
			Enabled:            t.Enabled,
			Exporter:           t.Exporter,
			Endpoint:           t.Endpoint,
			Headers:            mapCopy(t.Headers),
			Insecure:           t.Insecure,
			SamplingRatio:      t.SamplingRatio,
			BatchTimeout:       p.parse("observability.tracing.batch_timeout", t.BatchTimeout),
			ExportTimeout:      p.parse("observability.tracing.export_timeout", t.ExportTimeout),
			MaxQueueSize:       t.MaxQueueSize,
			MaxExportBatchSize: t.MaxExportBatchSize,
			Required:           t.Required,
			Attributes:         mapCopy(t.Attributes),
		},
		Metrics: MetricsConfig{
			Enabled:             m.Enabled,
			Exporter:            m.Exporter,
			Endpoint:            m.Endpoint,
			Headers:             mapCopy(m.Headers),
			Insecure:            m.Insecure,
			Interval:            p.parse("observability.metrics.interval", m.Interval),
			DisableRuntimeStats: m.DisableRuntimeStats,
			Required:            m.Required,
			ResourceAttributes:  mapCopy(m.ResourceAttributes),
			HTTPEnabled:         m.HTTPEnabled,
			HTTPIncludeHealth:   m.HTTPIncludeHealth,
		},
	}
}

func mapCopy(src map[string]string) map[string]string {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[string]string, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func fillDefaults(cfg *RuntimeConfig) {
	if cfg.Server.Address == "" {
		cfg.Server.Address = ":8000"
	}
	defaultKeys := []string{
		"x-apigateway-api-userinfo",
		"x-request-id",
		"x-md-",
	}
	if len(cfg.Server.MetadataKeys) == 0 {
		cfg.Server.MetadataKeys = append([]string(nil), defaultKeys...)
	}
}

var validIsolations = map[string]struct{}{
	"":                {},
	"read_committed":  {},
	"repeatable_read": {},
	"serializable":    {},
}

// validate 校验归一化后的配置，返回全部违规项。
func validate(cfg RuntimeConfig) error {
	var errs []error
	if strings.TrimSpace(cfg.Database.DSN) == "" {
		errs = append(errs, errors.New("data.postgres.dsn: required"))
	}
	if cfg.Database.MaxOpenConns < 0 || cfg.Database.MinOpenConns < 0 {
		errs = append(errs, errors.New("data.postgres: connection counts must not be negative"))
	}
	if cfg.Database.MaxOpenConns > 0 && cfg.Database.MinOpenConns > cfg.Database.MaxOpenConns {
		errs = append(errs, errors.New("data.postgres.min_open_conns: must not exceed max_open_conns"))
	}
	if _, ok := validIsolations[strings.ToLower(cfg.Database.Transaction.DefaultIsolation)]; !ok {
		errs = append(errs, fmt.Errorf("data.postgres.transaction.default_isolation: unsupported %q", cfg.Database.Transaction.DefaultIsolation))
	}
	if r := cfg.Observability.Tracing.SamplingRatio; r < 0 || r > 1 {
		errs = append(errs, fmt.Errorf("observability.tracing.sampling_ratio: %v out of [0,1]", r))
	}
	return errors.Join(errs...)
}
