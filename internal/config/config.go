package config

import "time"

// Default configuration values.
const (
	defaultServiceName     = "school-cluster"
	defaultServiceVersion  = "1.0.0"
	defaultServicePort     = 8000
	defaultReadTimeoutSec  = 30
	defaultWriteTimeoutSec = 60
	defaultIdleTimeoutSec  = 120
	defaultShutdownSec     = 30
	defaultModelDir        = "model"
	defaultVectorizerFile  = "tfidf_vectorizer.json"
	defaultKMeansFile      = "kmeans_model.json"
	defaultLogLevel        = "info"
	defaultLogFormat       = "json"
)

// Config holds all configuration for the school-cluster service.
type Config struct {
	Service ServiceConfig `yaml:"service"`
	Model   ModelConfig   `yaml:"model"`
	Logging LoggingConfig `yaml:"logging"`
	CORS    CORSConfig    `yaml:"cors"`
}

// ServiceConfig holds service-level configuration.
type ServiceConfig struct {
	Name            string        `yaml:"name"`
	Version         string        `yaml:"version"`
	Port            int           `env:"CLUSTER_PORT" yaml:"port"`
	Debug           bool          `env:"APP_DEBUG"    yaml:"debug"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// ModelConfig holds the model artifact locations.
type ModelConfig struct {
	Dir            string `env:"MODEL_DIR" yaml:"dir"`
	VectorizerFile string `yaml:"vectorizer_file"`
	KMeansFile     string `yaml:"kmeans_file"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL"  yaml:"level"`
	Format string `env:"LOG_FORMAT" yaml:"format"`
}

// CORSConfig holds CORS configuration. The dashboard is served from a
// different origin, so the default allows everything.
type CORSConfig struct {
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" yaml:"allowed_origins"`
}

// Load loads configuration from the specified path.
func Load(path string) (*Config, error) {
	return load[Config](path, setDefaults)
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	setServiceDefaults(&cfg.Service)
	setModelDefaults(&cfg.Model)
	setLoggingDefaults(&cfg.Logging)
	setCORSDefaults(&cfg.CORS)
}

func setServiceDefaults(s *ServiceConfig) {
	if s.Name == "" {
		s.Name = defaultServiceName
	}
	if s.Version == "" {
		s.Version = defaultServiceVersion
	}
	if s.Port == 0 {
		s.Port = defaultServicePort
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = defaultReadTimeoutSec * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = defaultWriteTimeoutSec * time.Second
	}
	if s.IdleTimeout == 0 {
		s.IdleTimeout = defaultIdleTimeoutSec * time.Second
	}
	if s.ShutdownTimeout == 0 {
		s.ShutdownTimeout = defaultShutdownSec * time.Second
	}
}

func setModelDefaults(m *ModelConfig) {
	if m.Dir == "" {
		m.Dir = defaultModelDir
	}
	if m.VectorizerFile == "" {
		m.VectorizerFile = defaultVectorizerFile
	}
	if m.KMeansFile == "" {
		m.KMeansFile = defaultKMeansFile
	}
}

func setLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = defaultLogLevel
	}
	if l.Format == "" {
		l.Format = defaultLogFormat
	}
}

func setCORSDefaults(c *CORSConfig) {
	if len(c.AllowedOrigins) == 0 {
		c.AllowedOrigins = []string{"*"}
	}
}
