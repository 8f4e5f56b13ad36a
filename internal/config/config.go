package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/containerd/platforms"
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"
	"gopkg.in/yaml.v3"
)

const (

	// Image name the build produces.
	DefaultImage = "facebook-messenger"

	// Tag applied to the built image.
	DefaultTag = "latest"

	// Platform the image is built for.
	DefaultPlatform = "linux/amd64"

	// Build context directory.
	DefaultContext = "."

	// Registry host used for push operations and the printed push example.
	DefaultRegistry = "registry.example.com"

	// Name of the optional config file looked up in the working directory.
	FileName = "mbuild.yaml"
)

var ErrConfig = errors.New("invalid configuration")

// Build settings for the facebook-messenger image.
type Config struct {
	Image      string `yaml:"image"`      // Image name (without tag).
	Tag        string `yaml:"tag"`        // Image tag.
	Platform   string `yaml:"platform"`   // OCI platform (e.g., "linux/amd64").
	Context    string `yaml:"context"`    // Build context directory.
	Dockerfile string `yaml:"dockerfile"` // Dockerfile path. Empty uses the context default.
	Registry   string `yaml:"registry"`   // Registry host for push operations.
}

// Returns the compiled-in defaults.
func Default() Config {
	return Config{
		Image:    DefaultImage,
		Tag:      DefaultTag,
		Platform: DefaultPlatform,
		Context:  DefaultContext,
		Registry: DefaultRegistry,
	}
}

// Loads the configuration, applying file overrides on top of the defaults.
//
// When path is empty, mbuild.yaml in the working directory is used if it
// exists; its absence is not an error. An explicit path must exist and
// parse.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("%w: %w", ErrConfig, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("%w: %s: %w", ErrConfig, path, err)
		}
		return cfg, nil
	}

	data, err := os.ReadFile(FileName)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: %s: %w", ErrConfig, FileName, err)
	}

	return cfg, nil
}

// Returns the full image reference (e.g., "facebook-messenger:latest").
func (c Config) Ref() string {
	return c.Image + ":" + c.Tag
}

// Returns the registry-qualified image reference used for push operations.
func (c Config) RemoteRef() string {
	return c.Registry + "/" + c.Ref()
}

// Parses the platform string into its OCI form.
func (c Config) OCIPlatform() (ocispec.Platform, error) {
	p, err := platforms.Parse(c.Platform)
	if err != nil {
		return ocispec.Platform{}, fmt.Errorf("%w: platform %q: %w", ErrConfig, c.Platform, err)
	}
	return p, nil
}

// Checks that all required fields are set and the platform is valid.
func (c Config) Validate() error {
	if c.Image == "" {
		return fmt.Errorf("%w: image name is empty", ErrConfig)
	}
	if c.Tag == "" {
		return fmt.Errorf("%w: tag is empty", ErrConfig)
	}
	if c.Context == "" {
		return fmt.Errorf("%w: build context is empty", ErrConfig)
	}
	if _, err := c.OCIPlatform(); err != nil {
		return err
	}
	return nil
}
