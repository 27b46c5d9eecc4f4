// Package repository содержит чтение входных JSON-файлов и запись отчёта.
package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mmeshcher/topup-report/internal/model"
)

var (
	// ErrDataSource возвращается, если входной файл не удаётся открыть или прочитать.
	ErrDataSource = errors.New("data source error")
	// ErrFormat возвращается, если содержимое входного файла не является корректным JSON.
	ErrFormat = errors.New("format error")
	// ErrWrite возвращается, если отчёт не удалось записать.
	ErrWrite = errors.New("write error")
)

// FileRepository читает пользователей и компании из JSON-файлов и сохраняет отчёт в текстовый файл.
type FileRepository struct {
	usersPath     string
	companiesPath string
	outputPath    string
}

// NewFileRepository создаёт репозиторий с указанными путями к файлам.
func NewFileRepository(usersPath, companiesPath, outputPath string) *FileRepository {
	return &FileRepository{
		usersPath:     usersPath,
		companiesPath: companiesPath,
		outputPath:    outputPath,
	}
}

// LoadUsers читает список пользователей.
func (r *FileRepository) LoadUsers(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := readJSON(ctx, r.usersPath, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// LoadCompanies читает список компаний.
func (r *FileRepository) LoadCompanies(ctx context.Context) ([]model.Company, error) {
	var companies []model.Company
	if err := readJSON(ctx, r.companiesPath, &companies); err != nil {
		return nil, err
	}
	return companies, nil
}

// SaveReport записывает отчёт целиком: сначала во временный файл рядом с целевым, затем переименовывает.
// При ошибке целевой файл не изменяется.
func (r *FileRepository) SaveReport(ctx context.Context, report string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.outputPath), "."+filepath.Base(r.outputPath)+".*")
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWrite, r.outputPath, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(report); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: %s: %w", ErrWrite, r.outputPath, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %s: %w", ErrWrite, r.outputPath, err)
	}
	if err := os.Chmod(tmpName, r.reportMode()); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %s: %w", ErrWrite, r.outputPath, err)
	}
	if err := os.Rename(tmpName, r.outputPath); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %s: %w", ErrWrite, r.outputPath, err)
	}

	return nil
}

// reportMode возвращает права существующего файла отчёта, иначе 0644.
func (r *FileRepository) reportMode() os.FileMode {
	fi, err := os.Stat(r.outputPath)
	if err != nil || !fi.Mode().IsRegular() {
		return 0o644
	}
	return fi.Mode().Perm()
}

func readJSON(ctx context.Context, path string, dst any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrDataSource, path, err)
	}

	if !bytes.HasPrefix(bytes.TrimSpace(data), []byte("[")) {
		return fmt.Errorf("%w: %s: top-level value is not an array", ErrFormat, path)
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrFormat, path, err)
	}

	return nil
}
