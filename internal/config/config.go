/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package config loads the example server configuration from flags,
// DRESP_* environment variables and an optional config file.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables, e.g. DRESP_ADDR.
const EnvPrefix = "DRESP"

const (
	defaultAddr            = ":8080"
	defaultLogLevel        = "info"
	defaultLogFormat       = "text"
	defaultShutdownTimeout = 10 * time.Second
	defaultMaxBody         = 1 << 20
)

// Config is the resolved configuration.
type Config struct {
	Addr            string
	LogLevel        logrus.Level
	LogFormat       string
	ShutdownTimeout time.Duration
	MaxBody         int64
	ConfigFile      string
}

// Load parses args (without the program name) and resolves every option.
// Precedence is: explicitly set flag, environment, config file, default.
func Load(args []string) (Config, error) {
	fs := flag.NewFlagSet("dresp-example", flag.ContinueOnError)
	fs.String("addr", defaultAddr, "Address to bind the HTTP server.")
	fs.String("loglevel", defaultLogLevel, "Log level (trace, debug, info, warn, error).")
	fs.String("logformat", defaultLogFormat, "Log format (text or json).")
	fs.Duration("shutdown-timeout", defaultShutdownTimeout, "Grace period for in-flight requests on shutdown.")
	fs.Int64("max-body", defaultMaxBody, "Maximum accepted request body size in bytes.")
	fs.String("config", "", "Configuration file (toml, yaml or json).")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return Config{}, err
	}

	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", file, err)
		}
	}

	lvl, err := logrus.ParseLevel(v.GetString("loglevel"))
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	c := Config{
		Addr:            v.GetString("addr"),
		LogLevel:        lvl,
		LogFormat:       strings.ToLower(v.GetString("logformat")),
		ShutdownTimeout: v.GetDuration("shutdown-timeout"),
		MaxBody:         v.GetInt64("max-body"),
		ConfigFile:      v.ConfigFileUsed(),
	}
	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) validate() error {
	if c.Addr == "" {
		return errors.New("config: addr must not be empty")
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("config: unknown log format %q", c.LogFormat)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("config: shutdown-timeout must be positive, got %s", c.ShutdownTimeout)
	}
	if c.MaxBody <= 0 {
		return fmt.Errorf("config: max-body must be positive, got %d", c.MaxBody)
	}
	return nil
}

// Logger builds a logrus logger for c.
func (c Config) Logger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(c.LogLevel)
	if c.LogFormat == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return l
}
