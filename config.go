package coco

// Config locates the dataset files on disk.
type Config struct {
	Root      string `yaml:"ROOT" json:"ROOT"`
	Images    string `yaml:"IMAGES" json:"IMAGES"`
	Captions  string `yaml:"CAPTIONS" json:"CAPTIONS"`
	Instances string `yaml:"INSTANCES" json:"INSTANCES"`
}

// Validate returns an error if the config is missing a required path.
// Only the captions and instances files are read.
func (c *Config) Validate() error {
	if c.Captions == "" {
		return Errorf(EINVALID, "config CAPTIONS path required")
	}
	if c.Instances == "" {
		return Errorf(EINVALID, "config INSTANCES path required")
	}
	return nil
}

// ConfigLoader reads a Config from a file.
type ConfigLoader interface {
	LoadConfig(path string) (*Config, error)
}
