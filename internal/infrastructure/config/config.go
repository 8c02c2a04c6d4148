package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config is the full service configuration, loaded from the environment.
// Variable names are kept from the previous deployment so existing manifests
// keep working.
type Config struct {
	App        AppConfig
	AWS        AWSConfig
	Quotations QuotationsConfig
}

type AppConfig struct {
	Port      string `envconfig:"PORT" default:"8080"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`
}

type AWSConfig struct {
	Region          string `envconfig:"AWS_REGION" default:"us-east-1"`
	AccessKeyID     string `envconfig:"AWS_ACCESS_KEY_ID" default:"local"`
	SecretAccessKey string `envconfig:"AWS_SECRET_ACCESS_KEY" default:"local"`

	// DynamoDBEndpoint points the SDK at a local DynamoDB (e.g.
	// http://dynamodb:8000). Empty means the real service endpoint.
	DynamoDBEndpoint string `envconfig:"DYNAMODB_ENDPOINT"`
}

type QuotationsConfig struct {
	Table        string `envconfig:"COTIZACIONES_TABLE_NAME" default:"cotizaciones"`
	Bucket       string `envconfig:"S3_BUCKET_NAME" required:"true"`
	EventBusName string `envconfig:"EVENT_BUS_NAME" required:"true"`

	// StrictTransitions makes APROBADA a terminal state. The historical
	// behavior (re-adjust/re-approve allowed) is the default.
	StrictTransitions bool `envconfig:"QUOTATIONS_STRICT_TRANSITIONS" default:"false"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}
