package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

func findFilesInPath(configDir string) ([]string, error) {
	var matches []string

	err := filepath.Walk(configDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && strings.HasSuffix(info.Name(), ".hcl") {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return matches, err
	}

	if len(matches) == 0 {
		return matches, fmt.Errorf("could not find any configuration files in %s", configDir)
	}

	sort.Strings(matches)
	return matches, nil
}
