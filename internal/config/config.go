package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Analysis AnalysisConfig `mapstructure:"analysis"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// AnalysisConfig carries optional overrides for the scoring pipeline's
// marker tables and thresholds. Zero values mean "use the built-in
// defaults"; the detection rules themselves stay in code.
type AnalysisConfig struct {
	ClaimWordThreshold         int      `mapstructure:"claim_word_threshold"         validate:"omitempty,gt=0"`
	ComprehensiveWordThreshold int      `mapstructure:"comprehensive_word_threshold" validate:"omitempty,gt=0"`
	EvidenceMarkers            []string `mapstructure:"evidence_markers"`
	ReasoningMarkers           []string `mapstructure:"reasoning_markers"`
}
