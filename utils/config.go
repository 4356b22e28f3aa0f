package utils

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
)

var (
	EnvPath string = "."
)

type Config struct {
	Env                    string `mapstructure:"ENV"`
	ServerPort             int    `mapstructure:"SERVER_PORT"`
	SigningKey             string `mapstructure:"SIGNING_KEY"`
	AWSRegion              string `mapstructure:"AWS_REGION"`
	AWSAccessKeyID         string `mapstructure:"AWS_ACCESS_KEY"`
	AWSSecretAccessKey     string `mapstructure:"AWS_SECRET_ACCESS_KEY"`
	DocumentsBucket        string `mapstructure:"DOCUMENTS_BUCKET"`
	DBUsername             string `mapstructure:"DB_USERNAME"`
	DBPassword             string `mapstructure:"DB_PASSWORD"`
	DBHost                 string `mapstructure:"DB_HOST"`
	DBPort                 string `mapstructure:"DB_PORT"`
	DBDriver               string `mapstructure:"DB_DRIVER"`
	DBName                 string `mapstructure:"DB_NAME"`
	SSLMode                string `mapstructure:"SSLMODE"`
	Papertrail             string `mapstructure:"PAPERTRAIL"`
	PapertrailAppName      string `mapstructure:"PAPERTRAIL_APP_NAME"`
	RedisHost              string `mapstructure:"REDIS_HOST"`
	RedisPort              string `mapstructure:"REDIS_PORT"`
	RedisPassword          string `mapstructure:"REDIS_PASSWORD"`
	OTPProvider            string `mapstructure:"OTP_PROVIDER"`
	TwilioKeySid           string `mapstructure:"TWILIO_KEY_SID"`
	TwilioKeySecret        string `mapstructure:"TWILIO_KEY_SECRET"`
	TwilioAccountSid       string `mapstructure:"TWILIO_ACCOUNT_SID"`
	TwilioVerifyServiceSid string `mapstructure:"TWILIO_VERIFY_SERVICE_SID"`
	JoiningFee             int64  `mapstructure:"JOINING_FEE"`
}

func LoadConfig(path string) (*Config, error) {
	// Validate that the path is not empty
	if path == "" {
		path = "."
	}

	// Create a new Viper instance to avoid global state
	v := viper.New()

	// Disable environment variable prefix
	v.SetEnvPrefix("")
	v.AutomaticEnv()

	// Configure config file
	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// Log the error, but don't fail entirely
		log.Printf("Warning: Unable to read config file: %v", err)
	}

	// Create config struct
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func validateConfig(config *Config) error {
	if config.ServerPort == 0 {
		return fmt.Errorf("server port must be specified")
	}

	if config.DBUsername == "" || config.DBPassword == "" {
		return fmt.Errorf("database credentials must be provided")
	}

	if config.JoiningFee == 0 {
		// fee the card currently launches with
		config.JoiningFee = 799
	}

	return nil
}

// Optional: Masking sensitive information for logging
func (c *Config) Redact() Config {
	redacted := *c
	redacted.AWSSecretAccessKey = "****"
	redacted.DBPassword = "****"
	redacted.RedisPassword = "****"
	redacted.TwilioKeySecret = "****"
	redacted.SigningKey = "****"
	return redacted
}
