package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	AppPort        string
	AppEnv         string
	AWSRegion      string
	AWSEndpointURL string // empty in prod, set to LocalStack URL in dev
	AWSAccessKeyID string
	AWSSecretKey   string
	DynamoTables   DynamoTables
	AllowedOrigins []string // CORS allowed origins
	RateLimitRPS   float64
	RateLimitBurst int
	TrustProxy     bool // read client IPs from X-Forwarded-For / X-Real-Ip
}

// DynamoTables holds the DynamoDB table name for each entity.
type DynamoTables struct {
	Products string
}

// Load reads all configuration from environment variables, falling back to
// defaults. Values already set on v (e.g. bound command-line flags) win.
func Load(v *viper.Viper) *Config {
	if v == nil {
		v = viper.New()
	}
	setDefaults(v)
	v.AutomaticEnv()

	return &Config{
		AppPort:        v.GetString("APP_PORT"),
		AppEnv:         v.GetString("APP_ENV"),
		AWSRegion:      v.GetString("AWS_REGION"),
		AWSEndpointURL: v.GetString("AWS_ENDPOINT_URL"),
		AWSAccessKeyID: v.GetString("AWS_ACCESS_KEY_ID"),
		AWSSecretKey:   v.GetString("AWS_SECRET_ACCESS_KEY"),
		DynamoTables: DynamoTables{
			Products: v.GetString("DYNAMO_TABLE_PRODUCTS"),
		},
		AllowedOrigins: splitList(v.GetString("ALLOWED_ORIGINS")),
		RateLimitRPS:   v.GetFloat64("RATE_LIMIT_RPS"),
		RateLimitBurst: v.GetInt("RATE_LIMIT_BURST"),
		TrustProxy:     v.GetBool("TRUST_PROXY"),
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "3000")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("AWS_ENDPOINT_URL", "")
	v.SetDefault("AWS_ACCESS_KEY_ID", "")
	v.SetDefault("AWS_SECRET_ACCESS_KEY", "")
	v.SetDefault("DYNAMO_TABLE_PRODUCTS", "products")
	v.SetDefault("ALLOWED_ORIGINS", "*")
	v.SetDefault("RATE_LIMIT_RPS", 5)
	v.SetDefault("RATE_LIMIT_BURST", 10)
	v.SetDefault("TRUST_PROXY", false)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
