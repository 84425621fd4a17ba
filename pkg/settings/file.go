package settings

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/footbagworks/panelcut/pkg/errors"
)

// Format is a snapshot encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// FormatFromPath picks the encoding from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", errors.New(errors.ErrCodeInvalidSettings, "cannot tell settings format of %q", filepath.Base(path))
}

// versionProbe reads only the version, so newer snapshots are rejected
// before their unknown fields are interpreted.
type versionProbe struct {
	Version int `json:"version" toml:"version"`
}

// Decode parses a snapshot. Fields absent from data keep their defaults.
func Decode(data []byte, format Format) (Snapshot, error) {
	var probe versionProbe
	if err := unmarshal(data, format, &probe); err != nil {
		return Snapshot{}, err
	}
	switch {
	case probe.Version == 0:
		return Snapshot{}, errors.New(errors.ErrCodeInvalidSettings, "settings snapshot has no version")
	case probe.Version > Version:
		return Snapshot{}, errors.Wrap(errors.ErrCodeUnsupportedVer,
			&errors.VersionError{Got: probe.Version, Max: Version}, "cannot load settings")
	case probe.Version < 0:
		return Snapshot{}, errors.New(errors.ErrCodeInvalidSettings, "invalid settings version %d", probe.Version)
	}

	s := Default()
	if err := unmarshal(data, format, &s); err != nil {
		return Snapshot{}, err
	}
	return upgrade(s), nil
}

// upgrade brings an older snapshot to the current version. Version 1 had
// no star, corner stitch or layout sections; the defaults already fill them.
func upgrade(s Snapshot) Snapshot {
	if s.Version < Version {
		s.Version = Version
	}
	s.Schema = SchemaRef
	return s
}

func unmarshal(data []byte, format Format, v any) error {
	var err error
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, v)
	case FormatTOML:
		err = toml.Unmarshal(data, v)
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unknown settings format: %s", format)
	}
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidSettings, err, "parse %s settings", format)
	}
	return nil
}

// Encode serializes a snapshot.
func Encode(s Snapshot, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode json: %w", err)
		}
		return append(data, '\n'), nil
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(s); err != nil {
			return nil, fmt.Errorf("encode toml: %w", err)
		}
		return buf.Bytes(), nil
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown settings format: %s", format)
}

// Load reads a snapshot from path.
func Load(path string) (Snapshot, error) {
	if err := errors.ValidateSettingsFilename(path); err != nil {
		return Snapshot{}, err
	}
	format, err := FormatFromPath(path)
	if err != nil {
		return Snapshot{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Snapshot{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "settings file %s", path)
		}
		return Snapshot{}, fmt.Errorf("read settings: %w", err)
	}
	s, err := Decode(data, format)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Save writes s to path in the format implied by its extension.
func Save(path string, s Snapshot) error {
	if err := errors.ValidateSettingsFilename(path); err != nil {
		return err
	}
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	s.Schema = SchemaRef
	s.Version = Version
	data, err := Encode(s, format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}
