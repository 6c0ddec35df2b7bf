package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	MongoDB MongoDBConfig
	Kafka   KafkaConfig
	CORS    CORSConfig
	Log     LogConfig
}

type ServerConfig struct {
	Port            string
	Environment     string
	Version         string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

type MongoDBConfig struct {
	URI         string
	Database    string
	MaxPoolSize uint64
	MinPoolSize uint64
	MaxRetries  int
	TLSCAFile   string
}

type KafkaConfig struct {
	Brokers         []string
	ProducerTimeout int
	ClientID        string
	Username        string
	Password        string
	SSL             bool
	SASLMechanism   string
	Topics          KafkaTopics
}

// Enabled reports whether lead events should be published at all
func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0
}

type KafkaTopics struct {
	LeadEvents string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	// SERVER_PORT, MONGODB_URI, KAFKA_BROKERS, ...
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Names used by the existing deployments
	_ = v.BindEnv("server.port", "PORT", "SERVER_PORT")
	_ = v.BindEnv("mongodb.uri", "MONGODB", "MONGODB_URI")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Reading config file is optional
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config

	config.Server = ServerConfig{
		Port:            v.GetString("server.port"),
		Environment:     v.GetString("server.environment"),
		Version:         v.GetString("server.version"),
		ReadTimeout:     seconds(v.GetInt("server.read_timeout")),
		WriteTimeout:    seconds(v.GetInt("server.write_timeout")),
		IdleTimeout:     seconds(v.GetInt("server.idle_timeout")),
		ShutdownTimeout: seconds(v.GetInt("server.shutdown_timeout")),
	}

	config.MongoDB = MongoDBConfig{
		URI:         v.GetString("mongodb.uri"),
		Database:    v.GetString("mongodb.database"),
		MaxPoolSize: v.GetUint64("mongodb.max_pool_size"),
		MinPoolSize: v.GetUint64("mongodb.min_pool_size"),
		MaxRetries:  v.GetInt("mongodb.max_retries"),
		TLSCAFile:   v.GetString("mongodb.tls_ca_file"),
	}

	config.Kafka = KafkaConfig{
		Brokers:         splitList(v.GetStringSlice("kafka.brokers")),
		ProducerTimeout: v.GetInt("kafka.producer_timeout"),
		ClientID:        v.GetString("kafka.client_id"),
		Username:        v.GetString("kafka.username"),
		Password:        v.GetString("kafka.password"),
		SSL:             v.GetBool("kafka.ssl"),
		SASLMechanism:   v.GetString("kafka.sasl_mechanism"),
		Topics: KafkaTopics{
			LeadEvents: v.GetString("kafka.topics.lead_events"),
		},
	}

	config.CORS = CORSConfig{
		AllowedOrigins: splitList(v.GetStringSlice("cors.allowed_origins")),
	}

	config.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate rejects configurations the service cannot start with
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Server.Port) == "" {
		return errors.New("server.port must be set")
	}
	if strings.TrimSpace(c.MongoDB.URI) == "" {
		return errors.New("mongodb.uri must be set")
	}
	if strings.TrimSpace(c.MongoDB.Database) == "" {
		return errors.New("mongodb.database must be set")
	}
	if c.Kafka.Enabled() && c.Kafka.Topics.LeadEvents == "" {
		return errors.New("kafka.topics.lead_events must be set when kafka.brokers is configured")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "3000")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.version", "1.0.0")
	v.SetDefault("server.read_timeout", 15)
	v.SetDefault("server.write_timeout", 15)
	v.SetDefault("server.idle_timeout", 60)
	v.SetDefault("server.shutdown_timeout", 30)

	// MongoDB defaults
	v.SetDefault("mongodb.uri", "mongodb://localhost:27017")
	v.SetDefault("mongodb.database", "lead_management")
	v.SetDefault("mongodb.max_pool_size", 100)
	v.SetDefault("mongodb.min_pool_size", 10)
	v.SetDefault("mongodb.max_retries", 5)
	v.SetDefault("mongodb.tls_ca_file", "")

	// Kafka defaults, publishing stays off until brokers are set
	v.SetDefault("kafka.brokers", []string{})
	v.SetDefault("kafka.producer_timeout", 5000)
	v.SetDefault("kafka.client_id", "lead-management-api")
	v.SetDefault("kafka.username", "")
	v.SetDefault("kafka.password", "")
	v.SetDefault("kafka.ssl", false)
	v.SetDefault("kafka.sasl_mechanism", "plain")
	v.SetDefault("kafka.topics.lead_events", "leads.events")

	v.SetDefault("cors.allowed_origins", []string{"*"})

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}

// splitList flattens comma separated entries, which is how list values
// arrive from the environment.
func splitList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}
