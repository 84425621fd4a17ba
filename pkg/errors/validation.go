package errors

import (
	"path/filepath"
	"slices"
	"strings"
	"unicode"
)

// SettingsExtensions lists the file extensions a settings snapshot may use.
var SettingsExtensions = []string{".json", ".toml"}

// ValidateOutputPath validates a path that rendered artifacts are written to.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - Must not name a directory (trailing separator)
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator)) {
		return New(ErrCodeInvalidPath, "output path must name a file, not a directory")
	}

	return nil
}

// ValidateSettingsFilename validates the name of a settings snapshot file.
// Only the extension decides the encoding, so it must be known.
func ValidateSettingsFilename(filename string) error {
	if err := ValidateOutputPath(filename); err != nil {
		return err
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !slices.Contains(SettingsExtensions, ext) {
		return New(ErrCodeInvalidSettings, "settings file must end in .json or .toml, got %q", filepath.Base(filename))
	}

	return nil
}

// ValidateFormat checks that format is one of the allowed output formats.
func ValidateFormat(format string, allowed []string) error {
	if slices.Contains(allowed, format) {
		return nil
	}
	return New(ErrCodeInvalidFormat, "invalid format: %s (must be one of: %s)", format, strings.Join(allowed, ", "))
}
