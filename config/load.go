// SPDX-FileCopyrightText: Copyright 2026 CUI OSS
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"github.com/cuioss/cui-http-sub001/env"
)

// EnvConfigPath names the environment variable that overrides configuration
// file discovery.
const EnvConfigPath = "CUI_HTTP_SECURITY_CONFIG"

// defaultFileName is the file looked up under the XDG config home when no
// override is set.
const defaultFileName = "cui-http/security.yaml"

//go:embed data/security-config.schema.json
var embeddedSchemaFS embed.FS

const schemaFile = "data/security-config.schema.json"

// fileConfig mirrors the on-disk configuration document. Absent fields keep
// the Default policy; pointers distinguish "not set" from a false or zero
// value.
type fileConfig struct {
	AllowNullBytes           *bool `yaml:"allowNullBytes" json:"allowNullBytes,omitempty"`
	AllowControlCharacters   *bool `yaml:"allowControlCharacters" json:"allowControlCharacters,omitempty"`
	AllowExtendedASCII       *bool `yaml:"allowExtendedAscii" json:"allowExtendedAscii,omitempty"`
	AllowDoubleEncoding      *bool `yaml:"allowDoubleEncoding" json:"allowDoubleEncoding,omitempty"`
	NormalizeUnicode         *bool `yaml:"normalizeUnicode" json:"normalizeUnicode,omitempty"`
	FailOnSuspiciousPatterns *bool `yaml:"failOnSuspiciousPatterns" json:"failOnSuspiciousPatterns,omitempty"`
	CaseSensitiveComparison  *bool `yaml:"caseSensitiveComparison" json:"caseSensitiveComparison,omitempty"`

	MaxPathLength           *int `yaml:"maxPathLength" json:"maxPathLength,omitempty"`
	MaxParameterNameLength  *int `yaml:"maxParameterNameLength" json:"maxParameterNameLength,omitempty"`
	MaxParameterValueLength *int `yaml:"maxParameterValueLength" json:"maxParameterValueLength,omitempty"`
	MaxHeaderNameLength     *int `yaml:"maxHeaderNameLength" json:"maxHeaderNameLength,omitempty"`
	MaxHeaderValueLength    *int `yaml:"maxHeaderValueLength" json:"maxHeaderValueLength,omitempty"`
	MaxCookieNameLength     *int `yaml:"maxCookieNameLength" json:"maxCookieNameLength,omitempty"`
	MaxCookieValueLength    *int `yaml:"maxCookieValueLength" json:"maxCookieValueLength,omitempty"`
	MaxBodyLength           *int `yaml:"maxBodyLength" json:"maxBodyLength,omitempty"`
	MaxParameterCount       *int `yaml:"maxParameterCount" json:"maxParameterCount,omitempty"`

	SuspiciousPaths          []string `yaml:"suspiciousPaths" json:"suspiciousPaths,omitempty"`
	SuspiciousParameterNames []string `yaml:"suspiciousParameterNames" json:"suspiciousParameterNames,omitempty"`
	CustomSignatures         []string `yaml:"customSignatures" json:"customSignatures,omitempty"`
}

// LoadFile reads a configuration file and builds a Config from it. The
// format is chosen by extension: .json is validated against the embedded
// JSON Schema, everything else is parsed as YAML.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file: %w", err)
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return LoadJSON(data)
	}
	return LoadYAML(data)
}

// LoadYAML builds a Config from a YAML document. Unknown fields are
// rejected.
func LoadYAML(data []byte) (*Config, error) {
	var fc fileConfig
	dec := yaml.NewDecoder(strings.NewReader(string(data)))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML configuration: %w", err)
	}
	return fc.build()
}

// LoadJSON builds a Config from a JSON document, validating it against the
// embedded schema first.
func LoadJSON(data []byte) (*Config, error) {
	if err := validateAgainstSchema(data); err != nil {
		return nil, err
	}
	var fc fileConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse JSON configuration: %w", err)
	}
	return fc.build()
}

// ResolvePath returns the configuration file to load and whether one is
// configured. The EnvConfigPath variable wins; otherwise the default file
// under the XDG config home is used if it exists.
func ResolvePath(reader env.Reader) (string, bool) {
	if path, ok := reader.Lookup(EnvConfigPath); ok && path != "" {
		return path, true
	}
	path, err := xdg.SearchConfigFile(defaultFileName)
	if err != nil {
		return "", false
	}
	return path, true
}

// Load resolves and loads the configuration for the current environment,
// falling back to the Default policy when no file is configured.
func Load(reader env.Reader) (*Config, error) {
	path, ok := ResolvePath(reader)
	if !ok {
		return Default(), nil
	}
	return LoadFile(path)
}

// validateAgainstSchema validates raw JSON bytes against the embedded
// configuration schema.
func validateAgainstSchema(data []byte) error {
	schemaData, err := embeddedSchemaFS.ReadFile(schemaFile)
	if err != nil {
		return fmt.Errorf("failed to read embedded schema %s: %w", schemaFile, err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaData),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("configuration schema validation failed: %w", err)
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		msgs = append(msgs, desc.String())
	}
	return fmt.Errorf("configuration schema validation failed: %s", strings.Join(msgs, "; "))
}

// build applies the file's explicit fields on top of the default policy.
func (fc *fileConfig) build() (*Config, error) {
	b := NewBuilder()

	setBool := func(v *bool, apply func(bool) *Builder) {
		if v != nil {
			apply(*v)
		}
	}
	setInt := func(v *int, apply func(int) *Builder) {
		if v != nil {
			apply(*v)
		}
	}

	setBool(fc.AllowNullBytes, b.AllowNullBytes)
	setBool(fc.AllowControlCharacters, b.AllowControlCharacters)
	setBool(fc.AllowExtendedASCII, b.AllowExtendedASCII)
	setBool(fc.AllowDoubleEncoding, b.AllowDoubleEncoding)
	setBool(fc.NormalizeUnicode, b.NormalizeUnicode)
	setBool(fc.FailOnSuspiciousPatterns, b.FailOnSuspiciousPatterns)
	setBool(fc.CaseSensitiveComparison, b.CaseSensitiveComparison)

	setInt(fc.MaxPathLength, b.MaxPathLength)
	setInt(fc.MaxParameterNameLength, b.MaxParameterNameLength)
	setInt(fc.MaxParameterValueLength, b.MaxParameterValueLength)
	setInt(fc.MaxHeaderNameLength, b.MaxHeaderNameLength)
	setInt(fc.MaxHeaderValueLength, b.MaxHeaderValueLength)
	setInt(fc.MaxCookieNameLength, b.MaxCookieNameLength)
	setInt(fc.MaxCookieValueLength, b.MaxCookieValueLength)
	setInt(fc.MaxBodyLength, b.MaxBodyLength)
	setInt(fc.MaxParameterCount, b.MaxParameterCount)

	if fc.SuspiciousPaths != nil {
		b.SuspiciousPaths(fc.SuspiciousPaths)
	}
	if fc.SuspiciousParameterNames != nil {
		b.SuspiciousParameterNames(fc.SuspiciousParameterNames)
	}
	if fc.CustomSignatures != nil {
		b.CustomSignatures(fc.CustomSignatures)
	}

	return b.Build()
}
