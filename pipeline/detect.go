package pipeline

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
	"github.com/h2non/filetype/matchers"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

type srcEncoding int

const (
	encUnknown srcEncoding = iota
	encUTF8
	encUTF16BigEndian
	encUTF16LittleEndian
	encUTF32BigEndian
	encUTF32LittleEndian
)

func isUTF32BigEndianBOM4(buf []byte) bool {
	return buf[0] == 0x00 && buf[1] == 0x00 && buf[2] == 0xFE && buf[3] == 0xFF
}

func isUTF32LittleEndianBOM4(buf []byte) bool {
	return buf[0] == 0xFF && buf[1] == 0xFE && buf[2] == 0x00 && buf[3] == 0x00
}

func isUTF8BOM3(buf []byte) bool {
	return buf[0] == 0xEF && buf[1] == 0xBB && buf[2] == 0xBF
}

func isUTF16BigEndianBOM2(buf []byte) bool {
	return buf[0] == 0xFE && buf[1] == 0xFF
}

func isUTF16LittleEndianBOM2(buf []byte) bool {
	return buf[0] == 0xFF && buf[1] == 0xFE
}

// detectUTF expects at least 4 bytes in buf. Order of checks matters, UTF-32
// LE BOM starts with the UTF-16 LE BOM.
func detectUTF(buf []byte) srcEncoding {
	if isUTF32BigEndianBOM4(buf) {
		return encUTF32BigEndian
	}
	if isUTF32LittleEndianBOM4(buf) {
		return encUTF32LittleEndian
	}
	if isUTF8BOM3(buf) {
		return encUTF8
	}
	if isUTF16BigEndianBOM2(buf) {
		return encUTF16BigEndian
	}
	if isUTF16LittleEndianBOM2(buf) {
		return encUTF16LittleEndian
	}
	return encUnknown
}

// selectReader wraps r with a BOM stripping decoder matching the detected
// encoding.
func selectReader(r io.Reader, enc srcEncoding) io.Reader {
	switch enc {
	case encUnknown:
		return r
	case encUTF8:
		return unicode.UTF8BOM.NewDecoder().Reader(r)
	case encUTF16BigEndian:
		return unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewDecoder().Reader(r)
	case encUTF16LittleEndian:
		return unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder().Reader(r)
	case encUTF32BigEndian:
		return utf32.UTF32(utf32.BigEndian, utf32.ExpectBOM).NewDecoder().Reader(r)
	case encUTF32LittleEndian:
		return utf32.UTF32(utf32.LittleEndian, utf32.ExpectBOM).NewDecoder().Reader(r)
	default:
		panic("unsupported source encoding")
	}
}

// isArchiveFile checks if the file is a zip archive by sniffing its content.
// Extension alone is not trusted.
func isArchiveFile(path string) (bool, error) {
	if !strings.EqualFold(filepath.Ext(path), ".zip") {
		return false, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	head := make([]byte, 512)
	n, err := f.Read(head)
	if err != nil && err != io.EOF {
		return false, err
	}
	t, err := filetype.Match(head[:n])
	if err != nil {
		return false, err
	}
	return t == matchers.TypeZip, nil
}

// isDocumentFile checks if the file looks like a source document, returning
// detected encoding of its content.
func isDocumentFile(path string) (bool, srcEncoding, error) {
	if !strings.EqualFold(filepath.Ext(path), ".xml") {
		return false, encUnknown, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return false, encUnknown, err
	}
	defer f.Close()
	return sniffDocument(f)
}

// isDocumentInArchive checks a single archive entry the same way
// isDocumentFile checks a file on disk.
func isDocumentInArchive(f *zip.File) (bool, srcEncoding, error) {
	if !strings.EqualFold(path.Ext(f.FileHeader.Name), ".xml") {
		return false, encUnknown, nil
	}
	r, err := f.Open()
	if err != nil {
		return false, encUnknown, err
	}
	defer r.Close()
	return sniffDocument(r)
}

// sniffDocument looks at the head of the content for the document root
// element after decoding a possible BOM.
func sniffDocument(r io.Reader) (bool, srcEncoding, error) {
	head := make([]byte, 512)
	n, err := io.ReadFull(r, head)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return false, encUnknown, err
	}
	if n < 4 {
		return false, encUnknown, nil
	}
	head = head[:n]

	enc := detectUTF(head)
	decoded, err := io.ReadAll(selectReader(bytes.NewReader(head), enc))
	if err != nil {
		// BOM promised more bytes than the head holds, still usable as is
		decoded = head
	}
	return bytes.Contains(decoded, []byte("<document")), enc, nil
}
