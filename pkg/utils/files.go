package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultExtensions are the source file extensions processed when none are configured
var DefaultExtensions = []string{".js", ".jsx", ".mjs", ".cjs", ".ts", ".tsx", ".mts", ".cts"}

// DefaultExclude are directory names never descended into
var DefaultExclude = []string{"node_modules", "vendor", "dist", "build", "coverage"}

// IsSourceFile checks if a file has one of the given extensions. Declaration
// files (.d.ts) are not source files.
func IsSourceFile(filename string, extensions []string) bool {
	lower := strings.ToLower(filename)
	if strings.HasSuffix(lower, ".d.ts") || strings.HasSuffix(lower, ".d.mts") || strings.HasSuffix(lower, ".d.cts") {
		return false
	}
	ext := filepath.Ext(lower)
	for _, want := range extensions {
		if ext == strings.ToLower(want) {
			return true
		}
	}
	return false
}

// FindSourceFiles recursively finds all source files with the given extensions
// in a directory, skipping hidden directories and the excluded directory names.
func FindSourceFiles(root string, extensions, exclude []string) ([]string, error) {
	var files []string

	skip := make(map[string]bool, len(exclude))
	for _, name := range exclude {
		skip[name] = true
	}

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		// Skip excluded and hidden directories (but not the root directory)
		if info.IsDir() {
			if path == root {
				return nil
			}
			name := filepath.Base(path)
			if skip[name] || strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if IsSourceFile(filepath.Base(path), extensions) {
			files = append(files, path)
		}

		return nil
	})

	return files, err
}

// IsDirectory checks if the given path is a directory
func IsDirectory(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}
