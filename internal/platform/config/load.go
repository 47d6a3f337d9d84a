package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	defaultConfigDir = "configs"
)

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
}

// WithConfigDir reads the YAML files from dir instead of ./configs.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) {
		o.configDir = dir
	}
}

// layer is one source in the precedence stack; later layers win.
type layer struct {
	name string
	load func(k *koanf.Koanf) error
}

func defaultsLayer(values map[string]any) layer {
	return layer{name: "defaults", load: func(k *koanf.Koanf) error {
		return k.Load(confmap.Provider(values, "."), nil)
	}}
}

func yamlLayer(path string) layer {
	return layer{name: path, load: func(k *koanf.Koanf) error {
		return k.Load(file.Provider(path), yaml.Parser())
	}}
}

// envLayer maps APP_ variables onto keys already known to k, so
// APP_SERVER_READ_TIMEOUT becomes server.read_timeout rather than
// server.read.timeout. Unknown variables fall back to one level per
// underscore.
func envLayer() layer {
	return layer{name: "environment", load: func(k *koanf.Koanf) error {
		known := make(map[string]string, len(k.Keys()))
		for _, key := range k.Keys() {
			known[strings.ReplaceAll(key, ".", "_")] = key
		}

		return k.Load(env.Provider(".", env.Opt{
			Prefix: envPrefix,
			TransformFunc: func(name, value string) (string, any) {
				name = strings.ToLower(strings.TrimPrefix(name, envPrefix))
				if key, ok := known[name]; ok {
					return key, value
				}
				return strings.ReplaceAll(name, "_", "."), value
			},
		}), nil)
	}}
}

type validatable interface {
	Validate() error
}

// build applies layers in order and decodes the merged tree into T.
func build[T any, PT interface {
	*T
	validatable
}](layers ...layer) (*T, error) {
	k := koanf.New(".")
	for _, l := range layers {
		if err := l.load(k); err != nil {
			return nil, fmt.Errorf("loading %s: %w", l.name, err)
		}
	}

	cfg := new(T)
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := PT(cfg).Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

// Load builds the server configuration. Precedence, lowest first:
//
//  1. compiled defaults
//  2. {configDir}/base.yaml
//  3. {configDir}/{profile}.yaml
//  4. APP_ environment variables, e.g. APP_AUTH_JWT_SECRET -> auth.jwt_secret
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := loadOptions{configDir: defaultConfigDir}
	for _, opt := range opts {
		opt(&o)
	}

	return build[Config](
		defaultsLayer(defaults()),
		yamlLayer(filepath.Join(o.configDir, "base.yaml")),
		yamlLayer(filepath.Join(o.configDir, profile+".yaml")),
		envLayer(),
	)
}

// LoadFunction builds the Lambda configuration from compiled defaults and
// APP_ variables. Functions ship without config files.
func LoadFunction() (*FunctionConfig, error) {
	return build[FunctionConfig](
		defaultsLayer(functionDefaults()),
		envLayer(),
	)
}

// validateProfile rejects names that could escape the config directory.
func validateProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return errors.New("profile must not be empty")
	case strings.ContainsAny(profile, `/\`), strings.Contains(profile, ".."):
		return fmt.Errorf("profile %q must be a bare file name", profile)
	}
	return nil
}
