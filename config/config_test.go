package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoDB.URI)
	assert.Equal(t, "lead_management", cfg.MongoDB.Database)
	assert.False(t, cfg.Kafka.Enabled())
	assert.Equal(t, "leads.events", cfg.Kafka.Topics.LeadEvents)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("MONGODB", "mongodb://db.internal:27017")
	t.Setenv("MONGODB_DATABASE", "crm")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:5173,https://crm.example.com")
	t.Setenv("LOG_FORMAT", "console")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Server.Port)
	assert.Equal(t, "mongodb://db.internal:27017", cfg.MongoDB.URI)
	assert.Equal(t, "crm", cfg.MongoDB.Database)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.True(t, cfg.Kafka.Enabled())
	assert.Equal(t, []string{"http://localhost:5173", "https://crm.example.com"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadPrefersPortOverServerPort(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Server.Port)

	t.Setenv("PORT", "9100")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, "9100", cfg.Server.Port)
}

func TestValidate(t *testing.T) {
	valid := Config{
		Server:  ServerConfig{Port: "3000"},
		MongoDB: MongoDBConfig{URI: "mongodb://localhost", Database: "db"},
	}
	assert.NoError(t, valid.Validate())

	noDB := valid
	noDB.MongoDB.Database = " "
	assert.Error(t, noDB.Validate())

	noTopic := valid
	noTopic.Kafka = KafkaConfig{Brokers: []string{"k1:9092"}}
	assert.EqualError(t, noTopic.Validate(), "kafka.topics.lead_events must be set when kafka.brokers is configured")
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, splitList([]string{"a, b", "", " c "}))
	assert.Empty(t, splitList(nil))
}
