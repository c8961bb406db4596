package file

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ErrPersistence базовая ошибка чтения или записи книги на диск
var ErrPersistence = errors.New("persistence failed")

// PersistenceError ошибка ввода-вывода или (де)сериализации
type PersistenceError struct {
	Op   string // save, load
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

func (e *PersistenceError) Is(target error) bool { return target == ErrPersistence }

const snapshotVersion = 1

// snapshot содержимое файла книги
type snapshot[T any] struct {
	Version int `json:"version"`
	Records []T `json:"records"`
}

// jsonStore хранит слайс записей в одном JSON файле.
// Запись атомарная и устойчивая: временный файл + fsync + rename + fsync каталога.
type jsonStore[T any] struct {
	path string
}

func (s jsonStore[T]) write(records []T) error {
	data, err := json.MarshalIndent(snapshot[T]{Version: snapshotVersion, Records: records}, "", "  ")
	if err != nil {
		return &PersistenceError{Op: "save", Path: s.path, Err: err}
	}
	if err := writeFileAtomic(s.path, data, 0o600); err != nil {
		return &PersistenceError{Op: "save", Path: s.path, Err: err}
	}
	return nil
}

func (s jsonStore[T]) read() ([]T, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, &PersistenceError{Op: "load", Path: s.path, Err: err}
	}

	var snap snapshot[T]
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&snap); err != nil {
		return nil, &PersistenceError{Op: "load", Path: s.path, Err: err}
	}
	if snap.Version != snapshotVersion {
		return nil, &PersistenceError{Op: "load", Path: s.path, Err: fmt.Errorf("unsupported version %d", snap.Version)}
	}
	return snap.Records, nil
}

func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp.*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		_ = tmp.Close()
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := io.Copy(tmp, bytes.NewReader(data)); err != nil {
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}
	committed = true
	return fsyncDir(dir)
}

// fsyncDir фиксирует rename в каталоге на диске
func fsyncDir(dir string) error {
	f, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Sync()
}
