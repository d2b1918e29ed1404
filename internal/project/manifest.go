// Package project handles csussus.toml project manifests.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ManifestName — имя файла манифеста в корне проекта.
const ManifestName = "csussus.toml"

// SourceExt — расширение исходных файлов.
const SourceExt = ".csus"

// Manifest describes a project's csussus.toml [package] section.
type Manifest struct {
	Name    string
	Version string
	// Root — каталог исходников относительно манифеста. По умолчанию "src".
	Root string
}

var (
	// ErrPackageSectionMissing indicates that [package] is missing.
	ErrPackageSectionMissing = errors.New("missing [package]")
	// ErrPackageNameMissing indicates that [package].name is missing.
	ErrPackageNameMissing = errors.New("missing [package].name")
)

type manifestFile struct {
	Package struct {
		Name    string `toml:"name"`
		Version string `toml:"version"`
		Root    string `toml:"root"`
	} `toml:"package"`
}

// Load parses a csussus.toml manifest.
func Load(path string) (Manifest, error) {
	var cfg manifestFile
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Manifest{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return Manifest{}, fmt.Errorf("%s: %w", path, ErrPackageSectionMissing)
	}
	name := strings.TrimSpace(cfg.Package.Name)
	if !meta.IsDefined("package", "name") || name == "" {
		return Manifest{}, fmt.Errorf("%s: %w", path, ErrPackageNameMissing)
	}

	m := Manifest{
		Name:    name,
		Version: strings.TrimSpace(cfg.Package.Version),
		Root:    strings.TrimSpace(cfg.Package.Root),
	}
	if m.Root == "" {
		m.Root = "src"
	}
	return m, nil
}

// Find ищет манифест в dir и выше по дереву каталогов.
// Возвращает путь к найденному csussus.toml.
func Find(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		candidate := filepath.Join(abs, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		parent := filepath.Dir(abs)
		if parent == abs {
			return "", fmt.Errorf("no %s found in %s or any parent directory", ManifestName, dir)
		}
		abs = parent
	}
}

// WriteDefault записывает стартовый манифест для нового проекта.
func WriteDefault(dir, name string) error {
	content := fmt.Sprintf("[package]\nname = %q\nversion = \"0.1.0\"\nroot = \"src\"\n", name)
	return os.WriteFile(filepath.Join(dir, ManifestName), []byte(content), 0o644)
}
