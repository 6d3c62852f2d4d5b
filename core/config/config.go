// Package config holds the session configuration: prompt, initial search
// path, and operational logging. The user-visible error message is not
// configurable; it is a compatibility contract.
package config

import (
	_ "embed"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"sigs.k8s.io/yaml"
)

//go:embed default/config.yaml
var defaultConfigData []byte

const (
	ConfigurationName = "config.yaml"
	AppLogName        = "app.log"
)

type Configuration struct {
	configurationDir string

	// Prompt is printed before every interactive read.
	Prompt string `json:"prompt" validate:"required"`

	// SearchPath seeds the session's command search path. The `path`
	// builtin replaces it at runtime.
	SearchPath []string `json:"search_path" validate:"min=1"`

	// ColorPrompt renders the prompt in bold when stdout is a terminal.
	ColorPrompt bool `json:"color_prompt"`

	// AppLog enables an operational log file in the configuration
	// directory when true. Log output never reaches the session streams.
	AppLog bool `json:"app_log"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

// OpenAppLog opens the application log in an append only state.
func (c *Configuration) OpenAppLog() (io.WriteCloser, error) {
	name := filepath.Join(c.configurationDir, AppLogName)
	return os.OpenFile(name, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
}

// Default returns the embedded configuration.
func Default() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}
