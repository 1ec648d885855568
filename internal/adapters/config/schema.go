package config

// File represents the structure of the foxtail.yaml configuration file.
type File struct {
	Version string     `yaml:"version"`
	Project ProjectDTO `yaml:"project"`
	Direnv  DirenvDTO  `yaml:"direnv"`
	Watch   WatchDTO   `yaml:"watch"`
}

// ProjectDTO describes the project layout section.
type ProjectDTO struct {
	Root      string `yaml:"root"`
	Marker    string `yaml:"marker"`
	CacheDir  string `yaml:"cache_dir"`
	CacheGlob string `yaml:"cache_glob"`
}

// DirenvDTO describes how the reload mechanism is invoked.
type DirenvDTO struct {
	Command  string   `yaml:"command"`
	Args     []string `yaml:"args"`
	ForceEnv string   `yaml:"force_env"`
}

// WatchDTO holds watch-mode settings.
type WatchDTO struct {
	Debounce string `yaml:"debounce"`
}
