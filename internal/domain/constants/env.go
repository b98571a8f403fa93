package constants

// Deployment environments read from env.env.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)
