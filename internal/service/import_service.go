package service

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

var (
	ErrImportFileEmpty     = errors.New("import file is empty")
	ErrImportBadPassword   = errors.New("import file could not be decrypted with the given password")
	ErrImportMissingHeader = errors.New("import file is missing the header row")
	ErrImportMissingName   = errors.New("import row is missing the name column")
	ErrImportTooManyRows   = errors.New("import file exceeds the configured row limit")
)

const (
	importSaltSize  = 16
	importNonceSize = 12
	importKDFIter   = 4096
)

// ClinicianRow is one decoded record from a clinician import file.
type ClinicianRow struct {
	Name          string
	LicenseNumber string
	Specialty     string
	Email         string
	Phone         string
}

// ClinicianImportService decodes clinician bulk-import files. Files are CSV
// with a header row; when a password is supplied the payload is expected to
// be AES-256-GCM encrypted as salt || nonce || ciphertext with the key
// derived via PBKDF2-SHA256.
type ClinicianImportService interface {
	Decode(fileBytes []byte, password string) ([]ClinicianRow, error)
}

type clinicianImportService struct {
	maxRows int
}

func NewClinicianImportService(maxRows int) ClinicianImportService {
	return &clinicianImportService{maxRows: maxRows}
}

func (s *clinicianImportService) Decode(fileBytes []byte, password string) ([]ClinicianRow, error) {
	if len(fileBytes) == 0 {
		return nil, ErrImportFileEmpty
	}

	plaintext := fileBytes
	if password != "" {
		decrypted, err := decryptImportFile(fileBytes, password)
		if err != nil {
			return nil, err
		}
		plaintext = decrypted
	}

	return s.parseCSV(plaintext)
}

func (s *clinicianImportService) parseCSV(data []byte) ([]ClinicianRow, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, ErrImportMissingHeader
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := columns["name"]; !ok {
		return nil, ErrImportMissingHeader
	}

	var rows []ClinicianRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse import file: %w", err)
		}

		row := ClinicianRow{
			Name:          field(record, columns, "name"),
			LicenseNumber: field(record, columns, "license_number"),
			Specialty:     field(record, columns, "specialty"),
			Email:         field(record, columns, "email"),
			Phone:         field(record, columns, "phone"),
		}
		if row.Name == "" {
			return nil, ErrImportMissingName
		}

		rows = append(rows, row)
		if s.maxRows > 0 && len(rows) > s.maxRows {
			return nil, ErrImportTooManyRows
		}
	}

	return rows, nil
}

func field(record []string, columns map[string]int, name string) string {
	idx, ok := columns[name]
	if !ok || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

func decryptImportFile(data []byte, password string) ([]byte, error) {
	if len(data) < importSaltSize+importNonceSize+1 {
		return nil, ErrImportBadPassword
	}

	salt := data[:importSaltSize]
	nonce := data[importSaltSize : importSaltSize+importNonceSize]
	ciphertext := data[importSaltSize+importNonceSize:]

	key := pbkdf2.Key([]byte(password), salt, importKDFIter, 32, sha256.New)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrImportBadPassword
	}
	return plaintext, nil
}
