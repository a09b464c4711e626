// Package config reads the data-access settings from the environment. A
// .env file in the working directory is loaded automatically; real
// environment variables take precedence.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	_ "github.com/joho/godotenv/autoload"
)

// ServiceAccount holds the Google service account key fields, read from the
// environment variables prefixed with "GD_". Marshalling the struct yields
// the credentials JSON the Google client libraries accept.
type ServiceAccount struct {
	Type                    string `json:"type"`
	ProjectID               string `json:"project_id"`
	PrivateKeyID            string `json:"private_key_id"`
	PrivateKey              string `json:"private_key"`
	ClientEmail             string `json:"client_email"`
	ClientID                string `json:"client_id"`
	AuthURI                 string `json:"auth_uri"`
	TokenURI                string `json:"token_uri"`
	AuthProviderX509CertURL string `json:"auth_provider_x509_cert_url"`
	ClientX509CertURL       string `json:"client_x509_cert_url"`
	UniverseDomain          string `json:"universe_domain"`
}

// S3 holds the object storage settings. AWS_ACCESS_KEY_ID and
// AWS_SECRET_ACCESS_KEY are accepted as fallbacks for the access keys.
type S3 struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	UseSSL    bool
}

// Config is the top level data-access configuration.
type Config struct {
	Workdir        string
	Credentials    string
	ServiceAccount ServiceAccount
	S3             S3
}

// Load reads the configuration from the environment. Missing values are not
// an error here - each source validates the settings it needs when it
// connects.
func Load() *Config {
	return &Config{
		Workdir:     getEnv("DATA_ACCESS_WORKDIR", ""),
		Credentials: getEnv("DATA_ACCESS_CREDENTIALS", ""),
		ServiceAccount: ServiceAccount{
			Type:                    getEnv("GD_TYPE", "service_account"),
			ProjectID:               getEnv("GD_PROJECT_ID", ""),
			PrivateKeyID:            getEnv("GD_PRIVATE_KEY_ID", ""),
			PrivateKey:              getEnv("GD_PRIVATE_KEY", ""),
			ClientEmail:             getEnv("GD_CLIENT_EMAIL", ""),
			ClientID:                getEnv("GD_CLIENT_ID", ""),
			AuthURI:                 getEnv("GD_AUTH_URI", "https://accounts.google.com/o/oauth2/auth"),
			TokenURI:                getEnv("GD_TOKEN_URI", "https://oauth2.googleapis.com/token"),
			AuthProviderX509CertURL: getEnv("GD_AUTH_PROVIDER_X509_CERT_URL", "https://www.googleapis.com/oauth2/v1/certs"),
			ClientX509CertURL:       getEnv("GD_CLIENT_X509_CERT_URL", ""),
			UniverseDomain:          getEnv("GD_UNIVERSE_DOMAIN", "googleapis.com"),
		},
		S3: S3{
			Endpoint:  getEnv("S3_ENDPOINT", "s3.amazonaws.com"),
			AccessKey: getEnv("S3_ACCESS_KEY", getEnv("AWS_ACCESS_KEY_ID", "")),
			SecretKey: getEnv("S3_SECRET_KEY", getEnv("AWS_SECRET_ACCESS_KEY", "")),
			Bucket:    getEnv("S3_BUCKET", ""),
			Region:    getEnv("S3_REGION", getEnv("AWS_REGION", "")),
			UseSSL:    getEnvBool("S3_USE_SSL", true),
		},
	}
}

// Validate checks that the fields the Google libraries require are present.
func (sa ServiceAccount) Validate() error {
	if sa.PrivateKey == "" {
		return fmt.Errorf("GD_PRIVATE_KEY is required")
	}

	if sa.ClientEmail == "" {
		return fmt.Errorf("GD_CLIENT_EMAIL is required")
	}

	return nil
}

// JSON renders the service account in the key-file form expected by
// google.CredentialsFromJSON.
func (sa ServiceAccount) JSON() ([]byte, error) {
	return json.Marshal(sa)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}

	return def
}
