// Package config loads the backend configuration from defaults, an
// optional YAML file and YNAM_-prefixed environment variables, in that
// order of precedence (lowest first).
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog/log"
)

type Application struct {
	Host             string   `koanf:"host"`
	Port             int      `koanf:"port"`
	LogFormat        string   `koanf:"logformat"` // "json" or "human"
	LogLevel         string   `koanf:"loglevel"`
	GinMode          string   `koanf:"ginmode"`
	EnablePprof      bool     `koanf:"enablepprof"`
	CORSAllowOrigins []string `koanf:"corsalloworigins"`
	Database         Database `koanf:"db"`
}

type Database struct {
	// Path of the sqlite database file. Used when no host is configured.
	Path string `koanf:"path"`

	// When Host is set, postgresql is used instead of sqlite.
	Host     string `koanf:"host"`
	User     string `koanf:"user"`
	Password string `koanf:"password"`
	Name     string `koanf:"name"`
}

// Addr returns the listen address for the HTTP server.
func (a Application) Addr() string {
	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Load reads the configuration. A missing config file is not an error,
// the defaults and environment are enough to run.
func Load(path string) (Application, error) {
	k := koanf.New(".")

	err := k.Load(structs.Provider(Application{
		Host:      "",
		Port:      8080,
		LogFormat: "json",
		LogLevel:  "info",
		GinMode:   "release",
		Database: Database{
			Path: "data/backend.db",
		},
	}, "koanf"), nil)
	if err != nil {
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if !os.IsNotExist(err) {
			return Application{}, err
		}
		log.Debug().Str("path", path).Msg("no config file, using defaults and environment")
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: "YNAM_",
		TransformFunc: func(k, v string) (string, any) {
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, "YNAM_")), "_", ".")
			return k, v
		},
	}), nil)
	if err != nil {
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}

	return app, nil
}
