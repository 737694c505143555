package migration

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"
	"time"
	"unicode"
)

// DefaultDir is the on-disk migrations directory used when none is given
const DefaultDir = "migrations"

// VersionLayout is the timestamp layout of migration versions
const VersionLayout = "20060102150405"

var migrationTemplate = template.Must(template.New("migration").Parse(`-- {{.Direction}}: {{.Name}}
-- Version: {{.Version}}
{{- if .Description}}
-- {{.Description}}
{{- end}}

`))

// Pair is a newly scaffolded up/down migration
type Pair struct {
	Version     string
	Name        string
	Description string
	UpPath      string
	DownPath    string
}

// Scaffold writes an empty <version>_<name>.up.sql / .down.sql pair into dir.
// The version is the current UTC time, so lexical order is apply order.
func Scaffold(dir, name, description string, now time.Time) (*Pair, error) {
	slug := Slug(name)
	if slug == "" {
		return nil, fmt.Errorf("migration name %q has no usable characters", name)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create migrations directory: %w", err)
	}

	version := now.UTC().Format(VersionLayout)
	base := filepath.Join(dir, version+"_"+slug)
	pair := &Pair{
		Version:     version,
		Name:        slug,
		Description: description,
		UpPath:      base + ".up.sql",
		DownPath:    base + ".down.sql",
	}

	if err := writeMigration(pair.UpPath, "Up", pair); err != nil {
		return nil, err
	}
	if err := writeMigration(pair.DownPath, "Down", pair); err != nil {
		_ = os.Remove(pair.UpPath)
		return nil, err
	}
	return pair, nil
}

func writeMigration(path, direction string, p *Pair) error {
	// O_EXCL keeps an existing migration from being overwritten
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	data := struct {
		*Pair
		Direction string
	}{p, direction}
	if err := migrationTemplate.Execute(f, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Slug lowercases name and joins its words with single underscores,
// dropping anything that is not a letter or digit
func Slug(name string) string {
	words := strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return r == ' ' || r == '-' || r == '_'
	})
	parts := make([]string, 0, len(words))
	for _, w := range words {
		clean := strings.Map(func(r rune) rune {
			if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
				return r
			}
			return -1
		}, w)
		if clean != "" {
			parts = append(parts, clean)
		}
	}
	return strings.Join(parts, "_")
}

// List returns the migration base names in dir that have an up file, in
// apply order. A missing directory yields an empty list.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if base, ok := strings.CutSuffix(entry.Name(), ".up.sql"); ok {
			names = append(names, base)
		}
	}
	sort.Strings(names)
	return names, nil
}
