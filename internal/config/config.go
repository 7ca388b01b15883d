package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

type Application struct {
	Addr     string   `koanf:"addr"`
	Frontend Frontend `koanf:"frontend"`
	Storage  Storage  `koanf:"storage"`
	Payday   Payday   `koanf:"payday"`
}

type Frontend struct {
	Enabled bool `koanf:"enabled"`
}

// Storage selects the birthday store backend. Valid backends are
// "file", "redis" and "postgres".
type Storage struct {
	Backend  string   `koanf:"backend"`
	File     File     `koanf:"file"`
	Redis    Redis    `koanf:"redis"`
	Database Database `koanf:"db"`
}

type File struct {
	Path string `koanf:"path"`
}

type Redis struct {
	URL   string `koanf:"url"`
	Token string `koanf:"token"`
}

type Database struct {
	Host   string `koanf:"host"`
	Port   int    `koanf:"port"`
	User   string `koanf:"user"`
	Pass   string `koanf:"pass"`
	Name   string `koanf:"name"`
	Schema string `koanf:"schema"`
}

type Payday struct {
	// Anchor is an ISO date of any known payday.
	Anchor string `koanf:"anchor"`
	// Every is the cycle length in days.
	Every int `koanf:"every"`
}

func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(Application{
		Addr: ":8080",
		Frontend: Frontend{
			Enabled: true,
		},
		Storage: Storage{
			Backend: "file",
			File: File{
				Path: "data/birthdays.json",
			},
			Database: Database{
				Host:   "localhost",
				Port:   5432,
				User:   "yeargrid",
				Pass:   "",
				Name:   "yeargrid",
				Schema: "yeargrid",
			},
		},
	}, "koanf"), nil)
	if err != nil {
		log.Errorf("error loading config from structs: %v", err)
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if os.IsNotExist(err) {
			log.Infof("Config file not found at %s, using defaults and environment variables", path)
		} else {
			log.Errorf("error loading config from YAML: %v", err)
			return Application{}, err
		}
	} else {
		log.Infof("Loaded configuration from file: %s", path)
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: "YEARGRID_",
		TransformFunc: func(k, v string) (string, any) {
			// Transform the key.
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, "YEARGRID_")), "_", ".")
			return k, v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}

	return app, nil
}
