package config

import (
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

const DefaultPath = "./config/application.yaml"

type Application struct {
	Server Server `koanf:"server"`
	Upload Upload `koanf:"upload"`
	Chart  Chart  `koanf:"chart"`
	Report Report `koanf:"report"`
}

type Server struct {
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"readtimeout"`
	WriteTimeout time.Duration `koanf:"writetimeout"`
	IdleTimeout  time.Duration `koanf:"idletimeout"`
}

type Upload struct {
	MaxBytes int64 `koanf:"maxbytes"`
}

type Chart struct {
	Width    int `koanf:"width"`
	Height   int `koanf:"height"`
	BarWidth int `koanf:"barwidth"`
}

// Report holds the file locations used by the command line tool.
type Report struct {
	Input  string `koanf:"input"`
	Output string `koanf:"output"`
	Chart  string `koanf:"chart"`
}

func Defaults() Application {
	return Application{
		Server: Server{
			Port:         8181,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		Upload: Upload{
			MaxBytes: 10 << 20,
		},
		Chart: Chart{
			Width:    800,
			Height:   480,
			BarWidth: 80,
		},
		Report: Report{
			Input:  "tasks.csv",
			Output: "productivity_report.html",
			Chart:  "category_duration.png",
		},
	}
}

func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(Defaults(), "koanf"), nil)
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
		Prefix: "PRODUCTIVITY_",
		TransformFunc: func(k, v string) (string, any) {
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, "PRODUCTIVITY_")), "_", ".")
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
