package sources

import (
	"errors"
	"fmt"
	"os"

	"newsagg-api/core/domain"
	coreerrors "newsagg-api/core/errors"

	"gopkg.in/yaml.v3"
)

// sourcesFile is the on-disk registry layout:
//
//	sources:
//	  - name: bbc
//	    url: https://newsapi.org/v2/everything?domains=bbc.co.uk
//	  - name: hn
//	    url: https://news.ycombinator.com/rss
//	    format: feed
type sourcesFile struct {
	Sources []sourceEntry `yaml:"sources"`
}

type sourceEntry struct {
	Name       string `yaml:"name"`
	URL        string `yaml:"url"`
	Format     string `yaml:"format"`
	Credential string `yaml:"credential"`
}

// LoadYAML reads a YAML registry file. ${VAR} references are expanded from
// the environment, and NewsAPI entries without a credential get defaultCredential.
func LoadYAML(path string, defaultCredential string) (*StaticRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sources file %s: %w", path, err)
	}

	registry, err := ParseYAML(data, defaultCredential)
	if err != nil {
		return nil, fmt.Errorf("parse sources file %s: %w", path, err)
	}
	return registry, nil
}

// ParseYAML builds a registry from YAML content
func ParseYAML(data []byte, defaultCredential string) (*StaticRegistry, error) {
	expanded := os.ExpandEnv(string(data))

	var file sourcesFile
	if err := yaml.Unmarshal([]byte(expanded), &file); err != nil {
		return nil, err
	}
	if len(file.Sources) == 0 {
		return nil, errors.New("no sources defined")
	}

	targets := make([]domain.FetchTarget, 0, len(file.Sources))
	for i, entry := range file.Sources {
		target, err := domain.NewFetchTarget(entry.Name, entry.URL, domain.TargetFormat(entry.Format))
		if err != nil {
			return nil, &coreerrors.ValidationError{
				Field:   fmt.Sprintf("sources[%d]", i),
				Message: err.Error(),
			}
		}

		target.Credential = entry.Credential
		if target.Credential == "" && target.Format == domain.FormatNewsAPI {
			target.Credential = defaultCredential
		}
		targets = append(targets, target)
	}

	return NewStaticRegistry(targets)
}
