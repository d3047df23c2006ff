// Package config reads and writes bookmark parameter files.
//
// A parameter file is TOML mirroring bookmark.Params. Keys that are absent
// keep their DefaultParams value, unknown keys are rejected, and colors are
// normalized to lowercase #rrggbb.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/bookmark"
)

// DefaultFile is the parameter file used when none is named.
const DefaultFile = "bookmark.toml"

// ErrExists is returned by Create when the file is already there.
var ErrExists = errors.New("config: file already exists")

// Load reads the parameter file at path over DefaultParams. An empty path
// returns the defaults.
func Load(path string) (bookmark.Params, error) {
	if path == "" {
		return bookmark.DefaultParams(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return bookmark.Params{}, fmt.Errorf("config: %w", err)
	}
	p, err := Decode(data)
	if err != nil {
		return bookmark.Params{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return p, nil
}

// Decode parses TOML over DefaultParams and normalizes the colors.
func Decode(data []byte) (bookmark.Params, error) {
	p := bookmark.DefaultParams()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return bookmark.Params{}, fmt.Errorf("unknown keys:\n%s", strict.String())
		}
		var de *toml.DecodeError
		if errors.As(err, &de) {
			row, col := de.Position()
			return bookmark.Params{}, fmt.Errorf("line %d column %d: %w", row, col, err)
		}
		return bookmark.Params{}, err
	}
	if err := Normalize(&p); err != nil {
		return bookmark.Params{}, err
	}
	return p, nil
}

// Encode renders p as TOML.
func Encode(p bookmark.Params) ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(p); err != nil {
		return nil, fmt.Errorf("config: encode: %w", err)
	}
	return buf.Bytes(), nil
}

// Save writes p to path, replacing any existing file.
func Save(path string, p bookmark.Params) error {
	data, err := Encode(p)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Create writes p to path unless a file already exists there.
func Create(path string, p bookmark.Params) error {
	data, err := Encode(p)
	if err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%w: %s", ErrExists, path)
		}
		return fmt.Errorf("config: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("config: %w", err)
	}
	return f.Close()
}

// Normalize rewrites the colors of p in canonical form.
func Normalize(p *bookmark.Params) error {
	var errs []error
	for _, c := range []struct {
		name string
		v    *string
	}{
		{"background", &p.Background},
		{"fill", &p.Fill},
		{"stroke", &p.Stroke},
	} {
		n, err := NormalizeColor(*c.v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", c.name, err))
			continue
		}
		*c.v = n
	}
	return errors.Join(errs...)
}

// NormalizeColor returns s as lowercase #rrggbb. The empty string and
// "none" both mean unpainted and come back as "" and "none".
func NormalizeColor(s string) (string, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return "", nil
	case strings.EqualFold(s, "none"):
		return "none", nil
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return "", fmt.Errorf("invalid color %q: %w", s, err)
	}
	return c.Hex(), nil
}
