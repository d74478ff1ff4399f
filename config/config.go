package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/juho05/log"
)

type environment map[string]string

type Config struct {
	DBUser          string
	DBPassword      string
	DBName          string
	DBHost          string
	DBPort          int
	DataDir         string
	ListenAddr      string
	AutoMigrate     bool
	LogLevel        log.Severity
	LogFile         *os.File
	SessionLifetime time.Duration
	SecureCookies   bool
}

// Load loads the configuration from environment variables into Config.
// environ should be of the same format as os.Environ()
func Load(environ []string) (Config, []error) {
	env := make(environment, len(environ))
	for _, e := range environ {
		parts := strings.SplitN(e, "=", 2)
		if len(parts) != 2 {
			log.Fatalf("invalid environment variable format: %s", e)
		}
		env[parts[0]] = parts[1]
	}

	var errors []error

	var config Config
	var err error

	config.DBUser, err = loadDBUser(env)
	if err != nil {
		errors = append(errors, err)
	}

	config.DBPassword, err = loadDBPassword(env)
	if err != nil {
		errors = append(errors, err)
	}

	config.DBName, err = loadDBName(env)
	if err != nil {
		errors = append(errors, err)
	}

	config.DBHost, err = loadDBHost(env)
	if err != nil {
		errors = append(errors, err)
	}

	config.DBPort, err = loadDBPort(env)
	if err != nil {
		errors = append(errors, err)
	}

	config.DataDir, err = loadDataDir(env)
	if err != nil {
		errors = append(errors, err)
	}

	config.ListenAddr = loadListenAddr(env)

	config.AutoMigrate, err = loadAutoMigrate(env)
	if err != nil {
		errors = append(errors, err)
	}

	config.LogLevel, err = loadLogLevel(env)
	if err != nil {
		errors = append(errors, err)
	}

	config.LogFile, err = loadLogFile(env)
	if err != nil {
		errors = append(errors, err)
	}

	config.SessionLifetime, err = loadSessionLifetime(env)
	if err != nil {
		errors = append(errors, err)
	}

	config.SecureCookies, err = loadSecureCookies(env)
	if err != nil {
		errors = append(errors, err)
	}

	return config, errors
}

// ImageDir is the directory uploaded station images are stored in.
func (c Config) ImageDir() string {
	return filepath.Join(c.DataDir, "images")
}

func loadDBUser(env environment) (string, error) {
	return requiredString(env, "DB_USER")
}

func loadDBPassword(env environment) (string, error) {
	return requiredString(env, "DB_PASSWORD")
}

func loadDBHost(env environment) (string, error) {
	return requiredString(env, "DB_HOST")
}

func loadDBName(env environment) (string, error) {
	return requiredString(env, "DB_NAME")
}

func loadDBPort(env environment) (int, error) {
	return requiredInt(env, "DB_PORT")
}

func loadDataDir(env environment) (string, error) {
	return requiredString(env, "DATA_DIR")
}

func loadListenAddr(env environment) string {
	return optionalString(env, "LISTEN_ADDR", "0.0.0.0:8080")
}

func loadAutoMigrate(env environment) (bool, error) {
	return boolean(env, "AUTO_MIGRATE", true)
}

func loadLogLevel(env environment) (log.Severity, error) {
	key := "LOG_LEVEL"
	def := log.INFO
	logLevelStr := env[key]
	if logLevelStr == "" {
		return def, nil
	}
	level, err := strconv.Atoi(logLevelStr)
	if err != nil {
		return def, newError(key, "invalid log level: must be an integer")
	}
	if level < int(log.NONE) || level > int(log.TRACE) {
		return def, newError(key, "invalid log level: valid values: 0 (none), 1 (fatal), 2 (error), 3 (warning), 4 (info), 5 (trace)")
	}
	return log.Severity(level), nil
}

// FIXME config should not be responsible for opening log file
func loadLogFile(env environment) (*os.File, error) {
	key := "LOG_FILE"
	def := os.Stderr
	if env[key] == "" {
		return def, nil
	}
	appnd, _ := strconv.ParseBool(env["LOG_APPEND"])
	if appnd {
		file, err := os.OpenFile(env[key], os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return def, newError(key, fmt.Sprintf("failed to open log file (append): %s", err))
		}
		return file, nil
	} else {
		file, err := os.Create(env[key])
		if err != nil {
			return def, newError(key, fmt.Sprintf("failed to open log file: %s", err))
		}
		return file, nil
	}
}

func loadSessionLifetime(env environment) (time.Duration, error) {
	key := "SESSION_LIFETIME"
	def := 30 * 24 * time.Hour
	str := env[key]
	if str == "" {
		return def, nil
	}
	d, err := time.ParseDuration(str)
	if err != nil {
		return def, newError(key, "must be a duration (e.g. 720h)")
	}
	if d <= 0 {
		return def, newError(key, "must be positive")
	}
	return d, nil
}

func loadSecureCookies(env environment) (bool, error) {
	return boolean(env, "SECURE_COOKIES", false)
}

func optionalString(env environment, key, def string) string {
	str := env[key]
	if str == "" {
		return def
	}
	return str
}

func requiredString(env environment, key string) (string, error) {
	str := env[key]
	if str == "" {
		return "", newError(key, "must not be empty")
	}
	return str, nil
}

func requiredInt(env environment, key string) (int, error) {
	str := env[key]
	if str == "" {
		return 0, newError(key, "must not be empty")
	}
	i, err := strconv.Atoi(str)
	if err != nil {
		return 0, newError(key, "must be an integer")
	}
	return i, nil
}

func boolean(env environment, key string, def bool) (bool, error) {
	str := env[key]
	if str == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(str)
	if err != nil {
		return false, newError(key, "must be a boolean")
	}
	return b, nil
}
