package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// maxParentLookups bounds the walk towards the filesystem root
const maxParentLookups = 20

// FindProjectRoot returns the nearest directory, starting at the directory of
// path, that contains a package.json. It returns "" when there is none.
func FindProjectRoot(path string) string {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return ""
	}

	dir := absPath
	if isDir, err := IsDirectory(absPath); err != nil || !isDir {
		dir = filepath.Dir(absPath)
	}

	for i := 0; i < maxParentLookups; i++ {
		if _, err := os.Stat(filepath.Join(dir, "package.json")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}

// GetPackageName reads the "name" field of the package.json in dir
func GetPackageName(dir string) string {
	content, err := os.ReadFile(filepath.Join(dir, "package.json"))
	if err != nil {
		return ""
	}

	var manifest struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(content, &manifest); err != nil {
		return ""
	}
	return manifest.Name
}
