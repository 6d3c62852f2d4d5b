package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v2"
)

func TestBuiltinConfig(t *testing.T) {
	rawConfig := make(map[string]interface{})
	assert.Nil(t, yaml.Unmarshal(defaultConfigData, &rawConfig))

	knownFields := make(map[string]bool)
	rt := reflect.TypeOf(Configuration{})
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}

		jsonTag := field.Tag.Get("json")
		assert.NotEmpty(t, jsonTag)
		jsonField := strings.Split(jsonTag, ",")[0]
		knownFields[jsonField] = true

		if _, ok := rawConfig[jsonField]; !ok {
			assert.False(t, true, "default config missing field: %q", jsonField)
		}
	}

	for k := range rawConfig {
		_, ok := knownFields[k]
		assert.True(t, ok, "default config contains invalid field: %q", k)
	}
}

func TestDefaultConfig(t *testing.T) {
	// Will panic() on load failure because it should never happen at runtime.
	cfg := Default()
	assert.NotNil(t, cfg)
	assert.Nil(t, cfg.Validate())
	assert.Equal(t, "dash> ", cfg.Prompt)
	assert.Equal(t, []string{"/bin"}, cfg.SearchPath)
}

func TestValidate(t *testing.T) {
	t.Run("empty prompt", func(t *testing.T) {
		cfg := Default()
		cfg.Prompt = ""
		assert.NotNil(t, cfg.Validate())
	})

	t.Run("empty search path", func(t *testing.T) {
		cfg := Default()
		cfg.SearchPath = nil
		assert.NotNil(t, cfg.Validate())
	})
}

func TestLoad(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		dir := t.TempDir()
		contents := "prompt: \"$ \"\nsearch_path:\n  - /usr/bin\n"
		assert.Nil(t, ioutil.WriteFile(filepath.Join(dir, ConfigurationName), []byte(contents), 0600))

		cfg, err := Load(dir)
		assert.Nil(t, err)
		assert.Equal(t, "$ ", cfg.Prompt)
		assert.Equal(t, []string{"/usr/bin"}, cfg.SearchPath)
	})

	t.Run("accepts path to the file itself", func(t *testing.T) {
		dir := t.TempDir()
		contents := "prompt: \"$ \"\nsearch_path:\n  - /usr/bin\n"
		assert.Nil(t, ioutil.WriteFile(filepath.Join(dir, ConfigurationName), []byte(contents), 0600))

		cfg, err := Load(filepath.Join(dir, ConfigurationName))
		assert.Nil(t, err)
		assert.Equal(t, "$ ", cfg.Prompt)
	})

	t.Run("unknown fields rejected", func(t *testing.T) {
		dir := t.TempDir()
		contents := "prompt: \"$ \"\nbogus_field: true\n"
		assert.Nil(t, ioutil.WriteFile(filepath.Join(dir, ConfigurationName), []byte(contents), 0600))

		_, err := Load(dir)
		assert.NotNil(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope"))
		assert.True(t, os.IsNotExist(err))
	})
}
