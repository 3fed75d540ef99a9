// internal/common/config/config.go
package config

// Config is the main application configuration struct.
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	APIs      APIsConfig      `mapstructure:"apis"`
	Chat      ChatConfig      `mapstructure:"chat"`
	Interview InterviewConfig `mapstructure:"interview"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// ServerConfig holds the HTTP API settings.
type ServerConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	EnableCORS      bool   `mapstructure:"enable_cors"`
	ReadTimeout     int    `mapstructure:"read_timeout"`     // milliseconds
	WriteTimeout    int    `mapstructure:"write_timeout"`    // milliseconds
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"` // milliseconds
}

type DatabaseConfig struct {
	Redis RedisConfig `mapstructure:"redis"`
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// APIsConfig holds settings for external API integrations.
type APIsConfig struct {
	GenAI struct {
		BaseURL    string `mapstructure:"base_url"`
		APIKey     string `mapstructure:"api_key"`
		Model      string `mapstructure:"model"`
		Timeout    int    `mapstructure:"timeout"` // milliseconds
		MaxRetries int    `mapstructure:"max_retries"`
	} `mapstructure:"genai"`
}

// ChatConfig holds settings for the floating chat session manager.
// WindowWidth/WindowHeight are the fixed on-screen size of the chat window;
// position clamping keeps the window fully inside the reported viewport.
type ChatConfig struct {
	WindowWidth    int `mapstructure:"window_width"`
	WindowHeight   int `mapstructure:"window_height"`
	ViewportWidth  int `mapstructure:"viewport_width"`  // default when the client reports none
	ViewportHeight int `mapstructure:"viewport_height"` // default when the client reports none
	HistoryWindow  int `mapstructure:"history_window"`  // trailing transcript entries sent to the gateway
}

// InterviewConfig holds settings for the fit-interview flow.
type InterviewConfig struct {
	AdvanceDelay int    `mapstructure:"advance_delay"` // milliseconds of visual-feedback pause before advancing
	RegistryPath string `mapstructure:"registry_path"` // optional question-bank override file
	SessionTTL   int    `mapstructure:"session_ttl"`   // milliseconds
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}
