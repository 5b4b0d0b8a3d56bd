package model

// Environment identifies the deployment environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Scope carries per-request caller context through the use case layer.
type Scope struct {
	UserID         string
	ConversationID string
}
