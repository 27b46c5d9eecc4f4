package config

import (
	"flag"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	type want struct {
		usersPath     string
		companiesPath string
		outputPath    string
		logLevel      string
	}

	tests := []struct {
		name  string
		env   map[string]string
		flags []string
		want  want
	}{
		{
			name:  "defaults",
			env:   map[string]string{},
			flags: []string{},
			want: want{
				usersPath:     "users.json",
				companiesPath: "companies.json",
				outputPath:    "output.txt",
				logLevel:      "info",
			},
		},
		{
			name: "env only",
			env: map[string]string{
				"USERS_FILE":     "/data/users.json",
				"COMPANIES_FILE": "/data/companies.json",
				"OUTPUT_FILE":    "/data/report.txt",
				"LOG_LEVEL":      "debug",
			},
			flags: []string{},
			want: want{
				usersPath:     "/data/users.json",
				companiesPath: "/data/companies.json",
				outputPath:    "/data/report.txt",
				logLevel:      "debug",
			},
		},
		{
			name: "flags only",
			env:  map[string]string{},
			flags: []string{
				"-u", "in/u.json",
				"-c", "in/c.json",
				"-o", "out/r.txt",
				"-l", "warn",
			},
			want: want{
				usersPath:     "in/u.json",
				companiesPath: "in/c.json",
				outputPath:    "out/r.txt",
				logLevel:      "warn",
			},
		},
		{
			name: "env overrides flags",
			env: map[string]string{
				"USERS_FILE":  "env-users.json",
				"OUTPUT_FILE": "env-output.txt",
			},
			flags: []string{
				"-u", "flag-users.json",
				"-c", "flag-companies.json",
				"-o", "flag-output.txt",
			},
			want: want{
				usersPath:     "env-users.json",
				companiesPath: "flag-companies.json",
				outputPath:    "env-output.txt",
				logLevel:      "info",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)

			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			os.Args = append([]string{"test"}, tt.flags...)

			cfg, err := Parse()
			require.NoError(t, err)

			assert.Equal(t, tt.want.usersPath, cfg.UsersPath)
			assert.Equal(t, tt.want.companiesPath, cfg.CompaniesPath)
			assert.Equal(t, tt.want.outputPath, cfg.OutputPath)
			assert.Equal(t, tt.want.logLevel, cfg.LogLevel)
		})
	}
}

func TestParseConfig_InvalidLogLevel(t *testing.T) {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	t.Setenv("LOG_LEVEL", "loud")
	os.Args = []string{"test"}

	_, err := Parse()
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := Config{
		UsersPath:     "users.json",
		CompaniesPath: "companies.json",
		OutputPath:    "output.txt",
		LogLevel:      "info",
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{name: "empty users path", mutate: func(c *Config) { c.UsersPath = "" }},
		{name: "empty companies path", mutate: func(c *Config) { c.CompaniesPath = "" }},
		{name: "empty output path", mutate: func(c *Config) { c.OutputPath = "" }},
		{name: "unknown log level", mutate: func(c *Config) { c.LogLevel = "verbose" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
