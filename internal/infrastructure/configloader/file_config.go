package configloader

// fileConfig 对应 configs/config.yaml 的结构，时长字段以 Go duration 文本（如 "5s"）书写。
type fileConfig struct {
	Server        fileServer        `json:"server"`
	Data          fileData          `json:"data"`
	Observability fileObservability `json:"observability"`
}

type fileServer struct {
	HTTP struct {
		Network string `json:"network"`
		Addr    string `json:"addr"`
		Timeout string `json:"timeout"`
	} `json:"http"`
	JWT *struct {
		ExpectedAudience string `json:"expected_audience"`
		SkipValidate     bool   `json:"skip_validate"`
		Required         bool   `json:"required"`
		HeaderKey        string `json:"header_key"`
	} `json:"jwt"`
	Handlers struct {
		DefaultTimeout string `json:"default_timeout"`
		CommandTimeout string `json:"command_timeout"`
		QueryTimeout   string `json:"query_timeout"`
	} `json:"handlers"`
	MetadataKeys []string `json:"metadata_keys"`
}

type fileData struct {
	Postgres struct {
		DSN                       string `json:"dsn"`
		MaxOpenConns              int    `json:"max_open_conns"`
		MinOpenConns              int    `json:"min_open_conns"`
		MaxConnLifetime           string `json:"max_conn_lifetime"`
		MaxConnIdleTime           string `json:"max_conn_idle_time"`
		HealthCheckPeriod         string `json:"health_check_period"`
		Schema                    string `json:"schema"`
		PreparedStatementsEnabled bool   `json:"prepared_statements_enabled"`
		PoolMetricsEnabled        bool   `json:"pool_metrics_enabled"`
		Transaction               struct {
			DefaultIsolation string `json:"default_isolation"`
			DefaultTimeout   string `json:"default_timeout"`
			LockTimeout      string `json:"lock_timeout"`
			MaxRetries       int    `json:"max_retries"`
			MetricsEnabled   bool   `json:"metrics_enabled"`
		} `json:"transaction"`
	} `json:"postgres"`
}

type fileObservability struct {
	GlobalAttributes map[string]string `json:"global_attributes"`
	Tracing          struct {
		Enabled            bool              `json:"enabled"`
		Exporter           string            `json:"exporter"`
		Endpoint           string            `json:"endpoint"`
		Headers            map[string]string `json:"headers"`
		Insecure           bool              `json:"insecure"`
		SamplingRatio      float64           `json:"sampling_ratio"`
		BatchTimeout       string            `json:"batch_timeout"`
		ExportTimeout      string            `json:"export_timeout"`
		MaxQueueSize       int               `json:"max_queue_size"`
		MaxExportBatchSize int               `json:"max_export_batch_size"`
		Required           bool              `json:"required"`
		Attributes         map[string]string `json:"attributes"`
	} `json:"tracing"`
	Metrics struct {
		Enabled             bool              `json:"enabled"`
		Exporter            string            `json:"exporter"`
		Endpoint            string            `json:"endpoint"`
		Headers             map[string]string `json:"headers"`
		Insecure            bool              `json:"insecure"`
		Interval            string            `json:"interval"`
		DisableRuntimeStats bool              `json:"disable_runtime_stats"`
		Required            bool              `json:"required"`
		ResourceAttributes  map[string]string `json:"resource_attributes"`
		HTTPEnabled         bool              `json:"http_enabled"`
		HTTPIncludeHealth   bool              `json:"http_include_health"`
	} `json:"metrics"`
}
