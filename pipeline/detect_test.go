package pipeline

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// TestIsArchiveFile tests archive file detection
func TestIsArchiveFile(t *testing.T) {
	tmpDir := t.TempDir()

	// Test non-zip extension
	t.Run("non-zip extension", func(t *testing.T) {
		filePath := filepath.Join(tmpDir, "test.txt")
		if err := os.WriteFile(filePath, []byte("not a zip"), 0644); err != nil {
			t.Fatalf("Failed to create test file: %v", err)
		}
		got, err := isArchiveFile(filePath)
		if err != nil {
			t.Errorf("isArchiveFile() error = %v", err)
		}
		if got != false {
			t.Errorf("isArchiveFile() = %v, want false", got)
		}
	})

	// Test zip extension but invalid content
	t.Run("zip extension but invalid content", func(t *testing.T) {
		filePath := filepath.Join(tmpDir, "test.zip")
		if err := os.WriteFile(filePath, []byte("not a real zip file"), 0644); err != nil {
			t.Fatalf("Failed to create test file: %v", err)
		}
		got, err := isArchiveFile(filePath)
		if err != nil {
			t.Errorf("isArchiveFile() error = %v", err)
		}
		if got != false {
			t.Errorf("isArchiveFile() = %v, want false", got)
		}
	})

	// Test valid zip file
	t.Run("valid zip file", func(t *testing.T) {
		filePath := filepath.Join(tmpDir, "test2.zip")
		zipFile, err := os.Create(filePath)
		if err != nil {
			t.Fatalf("Failed to create zip file: %v", err)
		}
		w := zip.NewWriter(zipFile)
		f, err := w.Create("test.txt")
		if err != nil {
			t.Fatalf("Failed to create file in zip: %v", err)
		}
		content := make([]byte, 300)
		f.Write(content)
		w.Close()
		zipFile.Close()

		got, err := isArchiveFile(filePath)
		if err != nil {
			t.Errorf("isArchiveFile() error = %v", err)
		}
		if got != true {
			t.Errorf("isArchiveFile() = %v, want true", got)
		}
	})
}

// TestIsArchiveFile_NonExistent tests with non-existent file
func TestIsArchiveFile_NonExistent(t *testing.T) {
	_, err := isArchiveFile("/nonexistent/file.zip")
	if err == nil {
		t.Error("Expected error for non-existent file, got nil")
	}
}

// TestDetectUTF tests UTF encoding detection
func TestDetectUTF(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
		want srcEncoding
	}{
		{
			name: "UTF-8 BOM",
			buf:  []byte{0xEF, 0xBB, 0xBF, 0x00},
			want: encUTF8,
		},
		{
			name: "UTF-16 Big Endian BOM",
			buf:  []byte{0xFE, 0xFF, 0x00, 0x00},
			want: encUTF16BigEndian,
		},
		{
			name: "UTF-16 Little Endian BOM",
			buf:  []byte{0xFF, 0xFE, 0x01, 0x00}, // Different from UTF-32LE
			want: encUTF16LittleEndian,
		},
		{
			name: "UTF-32 Big Endian BOM",
			buf:  []byte{0x00, 0x00, 0xFE, 0xFF},
			want: encUTF32BigEndian,
		},
		{
			name: "UTF-32 Little Endian BOM",
			buf:  []byte{0xFF, 0xFE, 0x00, 0x00},
			want: encUTF32LittleEndian,
		},
		{
			name: "No BOM",
			buf:  []byte{0x00, 0x01, 0x02, 0x03},
			want: encUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := detectUTF(tt.buf)
			if got != tt.want {
				t.Errorf("detectUTF() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestBOMDetectionFunctions tests individual BOM detection functions
func TestBOMDetectionFunctions(t *testing.T) {
	t.Run("isUTF8BOM3", func(t *testing.T) {
		if !isUTF8BOM3([]byte{0xEF, 0xBB, 0xBF}) {
			t.Error("Expected true for UTF-8 BOM")
		}
		if isUTF8BOM3([]byte{0x00, 0x00, 0x00}) {
			t.Error("Expected false for non-BOM")
		}
	})

	t.Run("isUTF16BigEndianBOM2", func(t *testing.T) {
		if !isUTF16BigEndianBOM2([]byte{0xFE, 0xFF}) {
			t.Error("Expected true for UTF-16 BE BOM")
		}
		if isUTF16BigEndianBOM2([]byte{0xFF, 0xFE}) {
			t.Error("Expected false for UTF-16 LE BOM")
		}
	})

	t.Run("isUTF16LittleEndianBOM2", func(t *testing.T) {
		if !isUTF16LittleEndianBOM2([]byte{0xFF, 0xFE}) {
			t.Error("Expected true for UTF-16 LE BOM")
		}
		if isUTF16LittleEndianBOM2([]byte{0xFE, 0xFF}) {
			t.Error("Expected false for UTF-16 BE BOM")
		}
	})

	t.Run("isUTF32BigEndianBOM4", func(t *testing.T) {
		if !isUTF32BigEndianBOM4([]byte{0x00, 0x00, 0xFE, 0xFF}) {
			t.Error("Expected true for UTF-32 BE BOM")
		}
		if isUTF32BigEndianBOM4([]byte{0xFF, 0xFE, 0x00, 0x00}) {
			t.Error("Expected false for UTF-32 LE BOM")
		}
	})

	t.Run("isUTF32LittleEndianBOM4", func(t *testing.T) {
		if !isUTF32LittleEndianBOM4([]byte{0xFF, 0xFE, 0x00, 0x00}) {
			t.Error("Expected true for UTF-32 LE BOM")
		}
		if isUTF32LittleEndianBOM4([]byte{0x00, 0x00, 0xFE, 0xFF}) {
			t.Error("Expected false for UTF-32 BE BOM")
		}
	})
}

// TestIsDocumentFile tests source document detection
func TestIsDocumentFile(t *testing.T) {
	tmpDir := t.TempDir()

	docContent := []byte(`<?xml version="1.0" encoding="UTF-8"?>
<document title="Test">
<section title="First"><p>Content</p></section>
</document>`)

	tests := []struct {
		name    string
		file    string
		content []byte
		wantDoc bool
		wantEnc srcEncoding
		wantErr bool
	}{
		{
			name:    "valid document",
			file:    "test.xml",
			content: docContent,
			wantDoc: true,
			wantEnc: encUnknown,
			wantErr: false,
		},
		{
			name:    "document with UTF-8 BOM",
			file:    "test-utf8.xml",
			content: append([]byte{0xEF, 0xBB, 0xBF}, docContent...),
			wantDoc: true,
			wantEnc: encUTF8,
			wantErr: false,
		},
		{
			name:    "non-document extension",
			file:    "test.txt",
			content: docContent,
			wantDoc: false,
			wantEnc: encUnknown,
			wantErr: false,
		},
		{
			name:    "document extension but invalid content",
			file:    "bad.xml",
			content: []byte("not a document at all"),
			wantDoc: false,
			wantEnc: encUnknown,
			wantErr: false,
		},
		{
			name:    "uppercase extension",
			file:    "test.XML",
			content: docContent,
			wantDoc: true,
			wantEnc: encUnknown,
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filePath := filepath.Join(tmpDir, tt.file)
			if err := os.WriteFile(filePath, tt.content, 0644); err != nil {
				t.Fatalf("Failed to create test file: %v", err)
			}

			gotDoc, gotEnc, err := isDocumentFile(filePath)
			if (err != nil) != tt.wantErr {
				t.Errorf("isDocumentFile() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if gotDoc != tt.wantDoc {
				t.Errorf("isDocumentFile() document = %v, want %v", gotDoc, tt.wantDoc)
			}
			if gotEnc != tt.wantEnc {
				t.Errorf("isDocumentFile() encoding = %v, want %v", gotEnc, tt.wantEnc)
			}
		})
	}
}

// TestIsDocumentFile_NonExistent tests with non-existent file
func TestIsDocumentFile_NonExistent(t *testing.T) {
	_, _, err := isDocumentFile("/nonexistent/file.xml")
	if err == nil {
		t.Error("Expected error for non-existent file, got nil")
	}
}

// TestIsDocumentInArchive tests document detection in archive
func TestIsDocumentInArchive(t *testing.T) {
	tmpDir := t.TempDir()
	zipPath := filepath.Join(tmpDir, "test.zip")

	docContent := []byte(`<?xml version="1.0" encoding="UTF-8"?>
<document title="Test">
<section title="First"><p>Content</p></section>
</document>`)

	zipFile, err := os.Create(zipPath)
	if err != nil {
		t.Fatalf("Failed to create zip file: %v", err)
	}

	w := zip.NewWriter(zipFile)

	f1, err := w.CreateHeader(&zip.FileHeader{
		Name:   "test.xml",
		Method: zip.Store,
	})
	if err != nil {
		t.Fatalf("Failed to create file in zip: %v", err)
	}
	if _, err := f1.Write(docContent); err != nil {
		t.Fatalf("Failed to write to zip: %v", err)
	}

	f2, err := w.CreateHeader(&zip.FileHeader{
		Name:   "test.txt",
		Method: zip.Store,
	})
	if err != nil {
		t.Fatalf("Failed to create txt file in zip: %v", err)
	}
	if _, err := f2.Write([]byte("not a document")); err != nil {
		t.Fatalf("Failed to write txt to zip: %v", err)
	}

	f3, err := w.CreateHeader(&zip.FileHeader{
		Name:   "test-bom.xml",
		Method: zip.Store,
	})
	if err != nil {
		t.Fatalf("Failed to create BOM file in zip: %v", err)
	}
	if _, err := f3.Write(append([]byte{0xEF, 0xBB, 0xBF}, docContent...)); err != nil {
		t.Fatalf("Failed to write BOM file to zip: %v", err)
	}

	w.Close()
	zipFile.Close()

	r, err := zip.OpenReader(zipPath)
	if err != nil {
		t.Fatalf("Failed to open zip: %v", err)
	}
	defer r.Close()

	tests := []struct {
		name    string
		fileIdx int
		wantDoc bool
		wantEnc srcEncoding
	}{
		{
			name:    "document in archive",
			fileIdx: 0,
			wantDoc: true,
			wantEnc: encUnknown,
		},
		{
			name:    "non-document in archive",
			fileIdx: 1,
			wantDoc: false,
			wantEnc: encUnknown,
		},
		{
			name:    "document with BOM in archive",
			fileIdx: 2,
			wantDoc: true,
			wantEnc: encUTF8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotDoc, gotEnc, err := isDocumentInArchive(r.File[tt.fileIdx])
			if err != nil {
				t.Errorf("isDocumentInArchive() error = %v", err)
				return
			}
			if gotDoc != tt.wantDoc {
				t.Errorf("isDocumentInArchive() document = %v, want %v", gotDoc, tt.wantDoc)
			}
			if gotEnc != tt.wantEnc {
				t.Errorf("isDocumentInArchive() encoding = %v, want %v", gotEnc, tt.wantEnc)
			}
		})
	}
}

// TestSelectReader tests reader selection for different encodings
func TestSelectReader(t *testing.T) {
	testData := []byte("test data")
	r := bytes.NewReader(testData)

	tests := []srcEncoding{
		encUnknown,
		encUTF8,
		encUTF16BigEndian,
		encUTF16LittleEndian,
		encUTF32BigEndian,
		encUTF32LittleEndian,
	}

	for i, enc := range tests {
		t.Run(string(rune('0'+i)), func(t *testing.T) {
			result := selectReader(r, enc)
			if result == nil {
				t.Error("selectReader() returned nil")
			}
		})
	}
}

// TestSelectReader_Panic tests that invalid encoding causes panic
func TestSelectReader_Panic(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for invalid encoding, but didn't panic")
		}
	}()

	r := bytes.NewReader([]byte("test"))
	selectReader(r, srcEncoding(999))
}
