package scenario

import (
	"io/fs"
	"path/filepath"
	"strings"
)

const FeatureExtension = ".feature"

// SearchFeatureFilesIn walks the given directories recursively and returns
// every file with the feature extension, in walk order.
func SearchFeatureFilesIn(directories []string) ([]string, error) {
	featureFiles := make([]string, 0)

	for _, directory := range directories {
		err := filepath.Walk(directory, func(path string, info fs.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !info.IsDir() && strings.HasSuffix(info.Name(), FeatureExtension) {
				featureFiles = append(featureFiles, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return featureFiles, nil
}
