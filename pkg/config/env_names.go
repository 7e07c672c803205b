package config

// EnvPrefix is the envconfig prefix shared by every WATCHLOG_* variable.
const EnvPrefix = "watchlog"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvAppEnv = "WATCHLOG_APP_ENV"
	EnvPort   = "WATCHLOG_APP_PORT"

	EnvDBDSN  = "WATCHLOG_DB_DSN"
	EnvDBHost = "WATCHLOG_DB_HOST"
	EnvDBUser = "WATCHLOG_DB_USER"
	EnvDBName = "WATCHLOG_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
