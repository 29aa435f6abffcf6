package config

// Config is the top-level aiact configuration, corresponding to .aiact.yml.
type Config struct {
	// DatasetPath is the article collection JSON loaded at startup and
	// written by `aiact new`.
	DatasetPath string `yaml:"dataset_path" koanf:"dataset_path"`

	// DatasetURL is fetched when DatasetPath does not exist. A failed
	// fetch degrades to an empty, still-usable document.
	DatasetURL string `yaml:"dataset_url" koanf:"dataset_url"`

	// DataDir holds the edit-history SQLite database.
	DataDir string `yaml:"data_dir" koanf:"data_dir"`

	// OutputDir receives exported slide decks.
	OutputDir string `yaml:"output_dir" koanf:"output_dir"`

	// Author is stamped on newly created articles and history entries.
	Author string `yaml:"author" koanf:"author"`

	Port         int  `yaml:"port" koanf:"port"`
	CORSAllowAll bool `yaml:"cors_allow_all" koanf:"cors_allow_all"`
}
