package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"strings"
	"testing"

	"golang.org/x/crypto/pbkdf2"
)

func encryptForTest(t *testing.T, plaintext []byte, password string) []byte {
	t.Helper()

	salt := make([]byte, importSaltSize)
	if _, err := rand.Read(salt); err != nil {
		t.Fatalf("rand salt: %v", err)
	}
	nonce := make([]byte, importNonceSize)
	if _, err := rand.Read(nonce); err != nil {
		t.Fatalf("rand nonce: %v", err)
	}

	key := pbkdf2.Key([]byte(password), salt, importKDFIter, 32, sha256.New)
	block, err := aes.NewCipher(key)
	if err != nil {
		t.Fatalf("new cipher: %v", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		t.Fatalf("new gcm: %v", err)
	}

	out := append([]byte{}, salt...)
	out = append(out, nonce...)
	return append(out, gcm.Seal(nil, nonce, plaintext, nil)...)
}

func TestDecodePlainCSV(t *testing.T) {
	csvData := strings.Join([]string{
		"name,license_number,specialty,email,phone",
		"Dr. Aisha Rahman,LIC-100,Cardiology,aisha@example.com,0501234567",
		"Dr. Omar Khalil,LIC-200,Pediatrics,,",
	}, "\n")

	svc := NewClinicianImportService(100)
	rows, err := svc.Decode([]byte(csvData), "")
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].Name != "Dr. Aisha Rahman" || rows[0].LicenseNumber != "LIC-100" {
		t.Errorf("unexpected first row: %+v", rows[0])
	}
	if rows[1].Email != "" || rows[1].Phone != "" {
		t.Errorf("expected empty optional columns, got %+v", rows[1])
	}
}

func TestDecodeHeaderOrderDoesNotMatter(t *testing.T) {
	csvData := "specialty,name\nDermatology,Dr. Lina Saad\n"

	svc := NewClinicianImportService(100)
	rows, err := svc.Decode([]byte(csvData), "")
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if rows[0].Name != "Dr. Lina Saad" || rows[0].Specialty != "Dermatology" {
		t.Errorf("columns mismapped: %+v", rows[0])
	}
}

func TestDecodeEncryptedRoundTrip(t *testing.T) {
	csvData := "name,phone\nDr. Hana Yousef,0559876543\n"
	encrypted := encryptForTest(t, []byte(csvData), "s3cret")

	svc := NewClinicianImportService(100)
	rows, err := svc.Decode(encrypted, "s3cret")
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(rows) != 1 || rows[0].Name != "Dr. Hana Yousef" {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}

func TestDecodeWrongPassword(t *testing.T) {
	encrypted := encryptForTest(t, []byte("name\nDr. X\n"), "right")

	svc := NewClinicianImportService(100)
	if _, err := svc.Decode(encrypted, "wrong"); err != ErrImportBadPassword {
		t.Fatalf("got %v, want ErrImportBadPassword", err)
	}
}

func TestDecodeEmptyFile(t *testing.T) {
	svc := NewClinicianImportService(100)
	if _, err := svc.Decode(nil, ""); err != ErrImportFileEmpty {
		t.Fatalf("got %v, want ErrImportFileEmpty", err)
	}
}

func TestDecodeMissingNameColumn(t *testing.T) {
	svc := NewClinicianImportService(100)
	if _, err := svc.Decode([]byte("license_number\nLIC-1\n"), ""); err != ErrImportMissingHeader {
		t.Fatalf("got %v, want ErrImportMissingHeader", err)
	}
}

func TestDecodeMissingNameValue(t *testing.T) {
	svc := NewClinicianImportService(100)
	if _, err := svc.Decode([]byte("name,specialty\n,Radiology\n"), ""); err != ErrImportMissingName {
		t.Fatalf("got %v, want ErrImportMissingName", err)
	}
}

func TestDecodeRowLimit(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("name\n")
	for i := 0; i < 3; i++ {
		sb.WriteString("Dr. Someone\n")
	}

	svc := NewClinicianImportService(2)
	if _, err := svc.Decode([]byte(sb.String()), ""); err != ErrImportTooManyRows {
		t.Fatalf("got %v, want ErrImportTooManyRows", err)
	}
}
