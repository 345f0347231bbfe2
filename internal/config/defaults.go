package config

const (
	DefaultEnvFile = ".env"

	DefaultCosmosDatabase    = "todos"
	DefaultCosmosContainer   = "tasks"
	DefaultPartitionKeyField = "id"

	DefaultTransport   = TransportStdio
	DefaultHTTPAddress = "127.0.0.1:8080"

	DefaultLogLevel  = "info"
	DefaultLogFormat = LogFormatAuto

	DefaultEnableAuditLogging = true
)

const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

const (
	LogFormatAuto    = "auto"
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)
