package file

import (
	"os"
	"path/filepath"
)

// PathExists checks if the given path exists.
func PathExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// PathExistOrCreate creates the directory at the given path if it does not exist.
func PathExistOrCreate(path string) error {
	exist, err := PathExists(path)
	if err != nil || exist {
		return err
	}
	return os.MkdirAll(path, os.ModePerm)
}

// OpenAppend opens dir/name for appending, creating the directory and the file when missing.
func OpenAppend(dir, name string) (*os.File, error) {
	if err := PathExistOrCreate(dir); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, name), os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
}
