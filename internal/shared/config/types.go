package config

import (
	"fmt"
	"strings"
)

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	BaseURL        string   `mapstructure:"base_url"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	TemplatesPath  string   `mapstructure:"templates_path"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type PasswordConfig struct {
	BcryptCost int `mapstructure:"bcrypt_cost"`
}

type SessionConfig struct {
	ExpDays int `mapstructure:"exp_days"`
}

type CookieConfig struct {
	Name     string `mapstructure:"name"`
	Domain   string `mapstructure:"domain"`
	Path     string `mapstructure:"path"`
	Secure   bool   `mapstructure:"secure"`
	SameSite string `mapstructure:"same_site"`
}

// AuthConfig groups credential hashing, session lifetime, cookie settings and
// the admin allow-list. Emails listed in AdminEmails receive the admin role at
// registration time; the role is immutable through the exposed surface.
type AuthConfig struct {
	Password    PasswordConfig `mapstructure:"password"`
	Session     SessionConfig  `mapstructure:"session"`
	Cookie      CookieConfig   `mapstructure:"cookie"`
	AdminEmails []string       `mapstructure:"admin_emails"`
}

// IsAdminEmail reports whether the given email is on the admin allow-list.
// Comparison is case-insensitive on the whole address.
func (a *AuthConfig) IsAdminEmail(email string) bool {
	for _, allowed := range a.AdminEmails {
		if strings.EqualFold(allowed, email) {
			return true
		}
	}
	return false
}

type UploadConfig struct {
	MaxFileBytes int64 `mapstructure:"max_file_bytes"`
	MaxFiles     int   `mapstructure:"max_files"`
}
