package config

const (
	// EnvPrefix is the envconfig prefix shared by every variable.
	EnvPrefix = "BAYTKUM"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvDBDSN  = "BAYTKUM_DB_DSN"
	EnvDBHost = "BAYTKUM_DB_HOST"
	EnvDBUser = "BAYTKUM_DB_USER"
	EnvDBName = "BAYTKUM_DB_NAME"
)

var discreteDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
