// Copyright 2024 The PGDL Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/pgdl/pgdl/shacl"
)

// Configuration keys.
const (
	KeyTurtleBase     = "turtle.base"
	KeyTurtlePrefixes = "turtle.prefixes"
	KeyNamespace      = "shacl.namespace"
	KeyOutputFormat   = "output.format"
	KeyHTTPHost       = "http.host"
	KeyHTTPTimeout    = "http.timeout"
	KeyHTTPMaxBody    = "http.max_body"
	KeyHTTPCacheSize  = "http.cache_size"
	KeyQuiet          = "diagnostics.quiet"
)

const (
	DefaultHost    = "127.0.0.1:64210"
	DefaultFormat  = "turtle"
	DefaultTimeout = 30 * time.Second
	DefaultMaxBody = 8 << 20
	DefaultCache   = 128
)

// EnvPrefix is the prefix of environment variables overriding config keys,
// e.g. PGDL_HTTP_HOST for http.host.
const EnvPrefix = "PGDL"

// Config defines the behavior of pgdl conversions and the HTTP service.
type Config struct {
	Turtle shacl.TurtleOptions
	// Namespace of schema element IRIs; pg: when empty.
	Namespace string
	Format    string
	HTTP      HTTP
	Quiet     bool
}

// HTTP configures the conversion service.
type HTTP struct {
	Host      string
	Timeout   time.Duration
	MaxBody   int64
	CacheSize int
}

// SetDefaults registers default values and environment bindings on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyOutputFormat, DefaultFormat)
	v.SetDefault(KeyHTTPHost, DefaultHost)
	v.SetDefault(KeyHTTPTimeout, DefaultTimeout.String())
	v.SetDefault(KeyHTTPMaxBody, DefaultMaxBody)
	v.SetDefault(KeyHTTPCacheSize, DefaultCache)
	v.SetDefault(KeyQuiet, false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load reads the config file into v. If file is empty, pgdl.{yml,yaml,toml,json}
// is searched in the working directory and $HOME/.pgdl; a missing file is not
// an error in that case.
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("pgdl")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.pgdl")
	}
	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &nf) {
			return nil, fmt.Errorf("could not read config file %q: %v", file, err)
		}
	}
	return From(v)
}

// From builds a Config from the current state of v.
func From(v *viper.Viper) (*Config, error) {
	timeout, err := parseDuration(v.GetString(KeyHTTPTimeout))
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %v", KeyHTTPTimeout, err)
	}
	c := &Config{
		Turtle: shacl.TurtleOptions{
			Base: v.GetString(KeyTurtleBase),
		},
		Namespace: shacl.CleanNamespace(v.GetString(KeyNamespace)),
		Format:    v.GetString(KeyOutputFormat),
		HTTP: HTTP{
			Host:      v.GetString(KeyHTTPHost),
			Timeout:   timeout,
			MaxBody:   v.GetInt64(KeyHTTPMaxBody),
			CacheSize: v.GetInt(KeyHTTPCacheSize),
		},
		Quiet: v.GetBool(KeyQuiet),
	}
	if v.IsSet(KeyTurtlePrefixes) {
		c.Turtle.Prefixes = v.GetStringMapString(KeyTurtlePrefixes)
	}
	return c, nil
}

// Translator returns the SHACL translator configured by c.
func (c *Config) Translator() *shacl.Translator {
	if c.Namespace == "" {
		return shacl.Default
	}
	return &shacl.Translator{Namespace: c.Namespace}
}

// parseDuration reads a duration according to the following scheme:
//   - If the value is empty the duration is zero.
//   - If the value is parsable as a time.Duration, the parsed value is kept.
//   - If the value is parsable as a number, that number of seconds is kept.
func parseDuration(text string) (time.Duration, error) {
	if text == "" {
		return 0, nil
	}
	if d, err := time.ParseDuration(text); err == nil {
		return d, nil
	}
	if i, err := strconv.ParseInt(text, 10, 64); err == nil {
		return time.Duration(i) * time.Second, nil
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, err
	}
	return time.Duration(f * float64(time.Second)), nil
}
