package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	AppPort    string
	AppBaseURL string

	MySQLHost string
	MySQLPort string
	MySQLDB   string
	MySQLUser string
	MySQLPass string

	RedisAddr string
	RedisDB   int

	SMTPHost   string
	SMTPPort   int
	SMTPUser   string
	SMTPPass   string
	AdminEmail string

	JWTSecret string

	// Roles with company-wide request visibility (approve/reject, status
	// filters). Deliberately configuration, not code.
	AdminRoles []string

	CommentMaxLen int
	IdempTTLSecs  int
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getenvInt(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}

func Load() *Config {
	c := &Config{
		AppPort:    getenv("APP_PORT", "8080"),
		AppBaseURL: getenv("APP_BASE_URL", "http://localhost:8080"),

		MySQLHost: getenv("MYSQL_HOST", "mysql"),
		MySQLPort: getenv("MYSQL_PORT", "3306"),
		MySQLDB:   getenv("MYSQL_DB", "wayfarer"),
		MySQLUser: getenv("MYSQL_USER", "wayfarer"),
		MySQLPass: getenv("MYSQL_PASS", "wayfarer"),

		RedisAddr: getenv("REDIS_ADDR", "redis:6379"),
		RedisDB:   getenvInt("REDIS_DB", 0),

		SMTPHost:   getenv("SMTP_HOST", ""),
		SMTPPort:   getenvInt("SMTP_PORT", 587),
		SMTPUser:   getenv("SMTP_USER", ""),
		SMTPPass:   getenv("SMTP_PASS", ""),
		AdminEmail: getenv("ADMIN_EMAIL", "noreply@wayfarer.local"),

		JWTSecret: getenv("JWT_SECRET", ""),

		CommentMaxLen: getenvInt("COMMENT_MAX_LEN", 2000),
		IdempTTLSecs:  getenvInt("IDEMPOTENCY_TTL_SECONDS", 300),
	}
	roles := getenv("ADMIN_ROLES", "manager,company_admin,super_admin")
	for _, r := range strings.Split(roles, ",") {
		if r = strings.TrimSpace(r); r != "" {
			c.AdminRoles = append(c.AdminRoles, r)
		}
	}
	return c
}

func (c *Config) Validate() error {
	if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
		return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
	}
	if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
		return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
	}
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	if c.JWTSecret == "" {
		return errors.New("missing JWT_SECRET")
	}
	return nil
}

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// multiStatements=true is handy for migrations; parseTime needed for DATETIME
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?multiStatements=true&parseTime=true&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}

// MailEnabled reports whether SMTP delivery is configured at all.
func (c *Config) MailEnabled() bool { return c.SMTPHost != "" }
