// Package config loads the theme and charset overrides for hexhog from a
// TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/hexhog/editor"
	"github.com/iw2rmb/hexhog/internal/grapheme"
)

const (
	// EnvPath overrides the config file location.
	EnvPath = "HEXHOG_CONFIG"

	appDir   = "hexhog"
	fileName = "config.toml"
)

// Config is the user-adjustable presentation of the editor.
type Config struct {
	Theme   editor.Theme
	Charset editor.Charset
}

func Default() Config {
	return Config{
		Theme:   editor.DefaultTheme(),
		Charset: editor.DefaultCharset(),
	}
}

// FieldError reports a config value that could not be applied. The field
// keeps its default.
type FieldError struct {
	Section string
	Field   string
	Msg     string
}

func (e *FieldError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("config [%s]: %s", e.Section, e.Msg)
	}
	return fmt.Sprintf("config [%s] %s: %s", e.Section, e.Field, e.Msg)
}

// DefaultPath resolves the config file location: $HEXHOG_CONFIG when set,
// otherwise hexhog/config.toml under the user config directory.
func DefaultPath() (string, error) {
	if p, ok := os.LookupEnv(EnvPath); ok {
		if strings.TrimSpace(p) == "" {
			return "", fmt.Errorf("%s must not be empty", EnvPath)
		}
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, appDir, fileName), nil
}

// Load reads the config at path. A missing file yields Default. A file that
// does not parse is an error. Individual bad fields are skipped and
// reported together as *FieldError values joined into the returned error;
// the returned Config is usable either way.
func Load(path string) (Config, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	return Parse(string(raw))
}

// Parse decodes TOML config text on top of Default.
func Parse(text string) (Config, error) {
	cfg := Default()

	var root map[string]any
	if _, err := toml.Decode(text, &root); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	var errs []error
	if tbl, ok, err := section(root, "theme"); err != nil {
		errs = append(errs, err)
	} else if ok {
		errs = append(errs, applyTheme(&cfg.Theme, tbl)...)
	}
	if tbl, ok, err := section(root, "charset"); err != nil {
		errs = append(errs, err)
	} else if ok {
		errs = append(errs, applyCharset(&cfg.Charset, tbl)...)
	}
	return cfg, errors.Join(errs...)
}

func section(root map[string]any, name string) (map[string]any, bool, error) {
	v, ok := root[name]
	if !ok {
		return nil, false, nil
	}
	tbl, ok := v.(map[string]any)
	if !ok {
		return nil, false, &FieldError{Section: name, Msg: "must be a table"}
	}
	return tbl, true, nil
}

func applyTheme(th *editor.Theme, tbl map[string]any) []error {
	fields := map[string]*lipgloss.TerminalColor{
		"null":             &th.Null,
		"ascii_printable":  &th.ASCIIPrintable,
		"ascii_whitespace": &th.ASCIIWhitespace,
		"ascii_other":      &th.ASCIIOther,
		"non_ascii":        &th.NonASCII,
		"accent":           &th.Accent,
		"primary":          &th.Primary,
		"border":           &th.Border,
		"select":           &th.Select,
		"background":       &th.Background,
	}

	var errs []error
	for _, key := range sortedKeys(tbl) {
		dst, known := fields[key]
		if !known {
			errs = append(errs, &FieldError{Section: "theme", Field: key, Msg: "unknown field"})
			continue
		}
		c, err := ParseColor(tbl[key])
		if err != nil {
			errs = append(errs, &FieldError{Section: "theme", Field: key, Msg: err.Error()})
			continue
		}
		*dst = c
	}
	return errs
}

func applyCharset(cs *editor.Charset, tbl map[string]any) []error {
	fields := map[string]*string{
		"null":             &cs.Null,
		"ascii_whitespace": &cs.ASCIIWhitespace,
		"ascii_other":      &cs.ASCIIOther,
		"non_ascii":        &cs.NonASCII,
	}

	var errs []error
	for _, key := range sortedKeys(tbl) {
		dst, known := fields[key]
		if !known {
			errs = append(errs, &FieldError{Section: "charset", Field: key, Msg: "unknown field"})
			continue
		}
		glyph, err := parseGlyph(tbl[key])
		if err != nil {
			errs = append(errs, &FieldError{Section: "charset", Field: key, Msg: err.Error()})
			continue
		}
		*dst = glyph
	}
	return errs
}

func parseGlyph(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", errors.New("must be a string")
	}
	if s == "" {
		return "", errors.New("cannot be empty")
	}
	if !grapheme.IsSingleCell(s) {
		return "", errors.New("must be a single character")
	}
	return s, nil
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var (
	errColorName   = errors.New("invalid color name")
	errColorIndex  = errors.New("invalid color index")
	errColorFormat = errors.New("invalid color format")
)

// Named terminal colors and the ANSI index each maps to.
var colorNames = map[string]int{
	"black":        0,
	"red":          1,
	"green":        2,
	"yellow":       3,
	"blue":         4,
	"magenta":      5,
	"cyan":         6,
	"gray":         7,
	"grey":         7,
	"darkgray":     8,
	"darkgrey":     8,
	"lightred":     9,
	"lightgreen":   10,
	"lightyellow":  11,
	"lightblue":    12,
	"lightmagenta": 13,
	"lightcyan":    14,
	"white":        15,
}

// ParseColor converts a decoded TOML value into a terminal color. It accepts
// a color name, "reset", a "#rrggbb" string, an ANSI index 0-255 (as an
// integer or a numeric string), or an [r, g, b] array.
func ParseColor(v any) (lipgloss.TerminalColor, error) {
	switch val := v.(type) {
	case string:
		return parseColorString(val)
	case int64:
		if val < 0 || val > 255 {
			return nil, errColorIndex
		}
		return lipgloss.Color(strconv.FormatInt(val, 10)), nil
	case []any:
		return parseRGB(val)
	default:
		return nil, errColorFormat
	}
}

func parseColorString(s string) (lipgloss.TerminalColor, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if strings.HasPrefix(name, "#") {
		if len(name) != 7 {
			return nil, errColorName
		}
		if _, err := strconv.ParseUint(name[1:], 16, 32); err != nil {
			return nil, errColorName
		}
		return lipgloss.Color(name), nil
	}
	if n, err := strconv.Atoi(name); err == nil {
		if n < 0 || n > 255 {
			return nil, errColorIndex
		}
		return lipgloss.Color(strconv.Itoa(n)), nil
	}

	name = strings.NewReplacer("-", "", "_", "", " ", "").Replace(name)
	if name == "reset" {
		return lipgloss.NoColor{}, nil
	}
	idx, ok := colorNames[name]
	if !ok {
		return nil, errColorName
	}
	return lipgloss.Color(strconv.Itoa(idx)), nil
}

func parseRGB(arr []any) (lipgloss.TerminalColor, error) {
	if len(arr) != 3 {
		return nil, errColorFormat
	}
	var rgb [3]int64
	for i, item := range arr {
		n, ok := item.(int64)
		if !ok || n < 0 || n > 255 {
			return nil, errColorFormat
		}
		rgb[i] = n
	}
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", rgb[0], rgb[1], rgb[2])), nil
}
