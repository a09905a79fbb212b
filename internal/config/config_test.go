package config

import (
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	c := Load()
	if c.AppPort != "8080" {
		t.Fatalf("AppPort = %q", c.AppPort)
	}
	if len(c.AdminRoles) != 3 || c.AdminRoles[0] != "manager" {
		t.Fatalf("AdminRoles = %v", c.AdminRoles)
	}
	if c.CommentMaxLen != 2000 || c.IdempTTLSecs != 300 {
		t.Fatalf("limits = %d, %d", c.CommentMaxLen, c.IdempTTLSecs)
	}
}

func TestLoad_AdminRolesOverride(t *testing.T) {
	t.Setenv("ADMIN_ROLES", "manager, lead ,")
	c := Load()
	if len(c.AdminRoles) != 2 || c.AdminRoles[1] != "lead" {
		t.Fatalf("AdminRoles = %v", c.AdminRoles)
	}
}

func TestValidate(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	c := Load()
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	c.JWTSecret = ""
	if err := c.Validate(); err == nil {
		t.Fatal("missing JWT_SECRET accepted")
	}

	c = Load()
	c.MySQLPort = "notaport"
	if err := c.Validate(); err == nil {
		t.Fatal("invalid MYSQL_PORT accepted")
	}
}

func TestMySQLDSN(t *testing.T) {
	c := Load()
	dsn := c.MySQLDSN()
	if !strings.Contains(dsn, "@tcp(mysql:3306)/wayfarer") {
		t.Fatalf("dsn = %q", dsn)
	}
	if !strings.Contains(dsn, "parseTime=true") {
		t.Fatalf("dsn = %q", dsn)
	}
}

func TestMailEnabled(t *testing.T) {
	c := Load()
	if c.MailEnabled() {
		t.Fatal("mail enabled without SMTP_HOST")
	}
	c.SMTPHost = "smtp.corp.com"
	if !c.MailEnabled() {
		t.Fatal("mail disabled with SMTP_HOST set")
	}
}
