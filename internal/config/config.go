// Package config loads the YAML startup configuration, applies defaults, and
// folds in environment overrides for secrets and deployment-provided values.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"

	defaultPort      = 8080
	defaultEnv       = "development"
	defaultDataDir   = "data"
	defaultStaticDir = "public"
)

// AppConfig holds runtime startup configuration.
type AppConfig struct {
	Port           int            `yaml:"port"`
	Env            string         `yaml:"env"` // "development" | "production"
	AllowedOrigins []string       `yaml:"allowed_origins"`
	RedisURL       string         `yaml:"redis_url"`
	Paths          PathsConfig    `yaml:"paths"`
	Admin          AdminConfig    `yaml:"admin"`
	ContentStore   ContentStore   `yaml:"content_store"`
	SMTP           SMTPConfig     `yaml:"smtp"`
	PublicBaseURL  string         `yaml:"public_base_url"`
}

// PathsConfig locates the on-disk stores and the static upload root.
type PathsConfig struct {
	Data   string `yaml:"data"`
	Static string `yaml:"static"`
}

// AdminConfig selects where the admin password and signing secret come from.
// Provider "env" reads them directly; "ssm" resolves them from Parameter
// Store under /amplify/<app_id>/<branch>/.
type AdminConfig struct {
	Password    string `yaml:"password"`
	Secret      string `yaml:"secret"`
	Provider    string `yaml:"provider"` // "env" | "ssm"
	SSMAppID    string `yaml:"ssm_app_id"`
	SSMBranch   string `yaml:"ssm_branch"`
	SSMCacheTTL int    `yaml:"ssm_cache_ttl_seconds"`
}

// ContentStore selects the SiteContent backing store.
type ContentStore struct {
	Backend         string `yaml:"backend"` // "file" | "s3"
	Region          string `yaml:"region"`
	Bucket          string `yaml:"bucket"`
	Key             string `yaml:"key"`
	Endpoint        string `yaml:"endpoint"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
}

// SMTPConfig is the environment-level mail fallback; admin-edited MailSettings
// take precedence field by field.
type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	Secure   *bool  `yaml:"secure"`
	User     string `yaml:"user"`
	Pass     string `yaml:"pass"`
	MailFrom string `yaml:"mail_from"`
	MailTo   string `yaml:"mail_to"`
}

// Load reads the YAML file at path (missing file is fine, defaults apply),
// then layers environment overrides on top.
func Load(path string) (*AppConfig, error) {
	cfg := &AppConfig{}
	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()
	return cfg, nil
}

func (c *AppConfig) applyDefaults() {
	if c.Port == 0 {
		c.Port = defaultPort
	}
	if c.Env == "" {
		c.Env = defaultEnv
	}
	if c.Paths.Data == "" {
		c.Paths.Data = defaultDataDir
	}
	if c.Paths.Static == "" {
		c.Paths.Static = defaultStaticDir
	}
	if c.Admin.Provider == "" {
		c.Admin.Provider = "env"
	}
	if c.Admin.SSMBranch == "" {
		c.Admin.SSMBranch = "main"
	}
	if c.Admin.SSMCacheTTL == 0 {
		c.Admin.SSMCacheTTL = 60
	}
	if c.ContentStore.Backend == "" {
		c.ContentStore.Backend = "file"
	}
}

func (c *AppConfig) applyEnv() {
	setIfEnv(&c.Admin.Password, "ADMIN_PASSWORD")
	setIfEnv(&c.Admin.Secret, "ADMIN_SECRET")
	setIfEnv(&c.ContentStore.Bucket, "ADMIN_CONTENT_BUCKET")
	setIfEnv(&c.ContentStore.Key, "ADMIN_CONTENT_KEY")
	setIfEnv(&c.ContentStore.Region, "AWS_REGION")
	setIfEnv(&c.SMTP.Host, "SMTP_HOST")
	setIfEnv(&c.SMTP.Port, "SMTP_PORT")
	setIfEnv(&c.SMTP.User, "SMTP_USER")
	setIfEnv(&c.SMTP.Pass, "SMTP_PASS")
	setIfEnv(&c.SMTP.MailFrom, "MAIL_FROM")
	setIfEnv(&c.SMTP.MailTo, "MAIL_TO")
	setIfEnv(&c.RedisURL, "REDIS_URL")
	if v, ok := os.LookupEnv("SMTP_SECURE"); ok {
		secure := strings.EqualFold(strings.TrimSpace(v), "true")
		c.SMTP.Secure = &secure
	}
	if c.ContentStore.Bucket != "" && c.ContentStore.Key != "" && c.ContentStore.Backend == "" {
		c.ContentStore.Backend = "s3"
	}
}

func setIfEnv(dst *string, name string) {
	if v := strings.TrimSpace(os.Getenv(name)); v != "" {
		*dst = v
	}
}

// IsDev reports whether the app runs in development mode.
func (c *AppConfig) IsDev() bool {
	return !strings.EqualFold(c.Env, "production")
}
