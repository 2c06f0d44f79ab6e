package extract

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fwojciec/feedtab"
	"gopkg.in/yaml.v3"
)

// LoadConfig reads a YAML file that overrides parts of DefaultConfig.
// Keys not present in the file keep their default values; unknown keys are
// rejected so that a typo does not silently fall back to a default.
func LoadConfig(path string) (Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file %q: %w", path, err)
	}

	cfg := DefaultConfig()
	decoder := yaml.NewDecoder(bytes.NewReader(content))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, feedtab.Errorf(feedtab.EINVALID, "parse config file %q: %v", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first setting the extractors cannot work without.
func (c Config) Validate() error {
	required := []struct {
		name, value string
	}{
		{"domain", c.Domain},
		{"urn_attr", c.URNAttr},
		{"block", c.BlockSelector},
		{"caption", c.CaptionSelector},
		{"header", c.HeaderSelector},
		{"comment_entity", c.CommentEntitySelector},
		{"comment_author", c.CommentAuthorSelector},
		{"comment_content", c.CommentContentSelector},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return feedtab.Errorf(feedtab.EINVALID, "config: %s must not be empty", r.name)
		}
	}
	if strings.Count(c.UpdateURLFormat, "%d") != 1 {
		return feedtab.Errorf(feedtab.EINVALID, "config: update_url_format must contain exactly one %%d")
	}
	return nil
}
