package config

// Keelfile represents the structure of the keel.yaml configuration file.
type Keelfile struct {
	Version     string   `yaml:"version" validate:"omitempty,oneof=1"`
	Suite       SuiteDTO `yaml:"suite"`
	Target      string   `yaml:"target"`
	Cache       CacheDTO `yaml:"cache"`
	Parallelism int      `yaml:"parallelism" validate:"gte=0"`
	MetricsFile string   `yaml:"metrics-file"`
	Telemetry   string   `yaml:"telemetry" validate:"omitempty,oneof=otel progrock none"`
}

// SuiteDTO names the suite.
type SuiteDTO struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

// CacheDTO configures the build cache.
type CacheDTO struct {
	Dir               string   `yaml:"dir"`
	Protocol          string   `yaml:"protocol" validate:"omitempty,oneof=json msgpack"`
	IgnorableSuffixes []string `yaml:"ignorable-suffixes" validate:"omitempty,dive,required,startswith=."`
}
