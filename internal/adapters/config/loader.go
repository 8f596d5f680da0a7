// Package config provides the configuration loader for keel.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.trai.ch/keel/internal/core/domain"
	"go.trai.ch/keel/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger   ports.Logger
	validate *validator.Validate
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger, validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Load reads keel.yaml from root and resolves it into a domain.Config.
func (l *Loader) Load(root string) (*domain.Config, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "root", root)
	}

	path := filepath.Join(root, domain.ConfigFileName)
	keelfile, err := l.read(path)
	if err != nil {
		return nil, err
	}

	if err := l.validate.Struct(keelfile); err != nil {
		return nil, invalid(path, err)
	}

	return resolve(root, keelfile), nil
}

func (l *Loader) read(path string) (*Keelfile, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the suite root
	if errors.Is(err, os.ErrNotExist) {
		l.Logger.Debug("no config file found, using defaults", "path", path)
		return &Keelfile{}, nil
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "path", path)
	}

	var keelfile Keelfile
	if err := yaml.Unmarshal(data, &keelfile); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, err.Error()), "path", path)
	}
	return &keelfile, nil
}

func resolve(root string, k *Keelfile) *domain.Config {
	cfg := &domain.Config{
		Root:              root,
		SuiteName:         k.Suite.Name,
		SuiteVersion:      k.Suite.Version,
		TargetDir:         suitePath(root, k.Target, domain.DefaultTargetPath()),
		CacheDir:          suitePath(root, k.Cache.Dir, domain.DefaultCachePath()),
		Protocol:          k.Cache.Protocol,
		IgnorableSuffixes: k.Cache.IgnorableSuffixes,
		Parallelism:       k.Parallelism,
		Telemetry:         k.Telemetry,
	}

	if cfg.SuiteName == "" {
		cfg.SuiteName = filepath.Base(root)
	}
	if cfg.Protocol == "" {
		cfg.Protocol = domain.ProtocolJSON
	}
	if k.Cache.IgnorableSuffixes == nil {
		cfg.IgnorableSuffixes = []string{domain.DefaultIgnorableSuffix}
	}
	if cfg.Telemetry == "" {
		cfg.Telemetry = domain.TelemetryOTel
	}
	if k.MetricsFile != "" {
		cfg.MetricsFile = suitePath(root, k.MetricsFile, "")
	}
	return cfg
}

// suitePath resolves a configured path against the suite root.
func suitePath(root, configured, fallback string) string {
	if configured == "" {
		configured = fallback
	}
	if filepath.IsAbs(configured) {
		return filepath.Clean(configured)
	}
	return filepath.Join(root, configured)
}

func invalid(path string, err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return zerr.With(zerr.Wrap(domain.ErrConfigInvalid, err.Error()), "path", path)
	}

	fields := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		fields = append(fields, fe.Namespace()+" ("+fe.Tag()+")")
	}
	wrapped := zerr.With(zerr.Wrap(domain.ErrConfigInvalid, "configuration has invalid fields"), "path", path)
	return zerr.With(wrapped, "fields", strings.Join(fields, ", "))
}
