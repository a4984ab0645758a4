package config

// Config is the top-level studydeck configuration, corresponding to .studydeck.yml.
type Config struct {
	Port            int      `yaml:"port" koanf:"port"`
	DataDir         string   `yaml:"data_dir" koanf:"data_dir"`
	MaterialsDir    string   `yaml:"materials_dir" koanf:"materials_dir"`
	CatalogFile     string   `yaml:"catalog_file" koanf:"catalog_file"`
	AllowAllOrigins bool     `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	OpenDelayMS     int      `yaml:"open_delay_ms" koanf:"open_delay_ms"`
	SessionIdleMin  int      `yaml:"session_idle_minutes" koanf:"session_idle_minutes"`
	Include         []string `yaml:"include" koanf:"include"`
	Exclude         []string `yaml:"exclude" koanf:"exclude"`
}
