package resume

import (
	"archive/zip"
	"bytes"
	"encoding/base64"

	pdf "github.com/ledongthuc/pdf"
)

// DocumentInfo is a structural summary of a document for logs.
// It is never used to accept or reject a document; the model decides that.
type DocumentInfo struct {
	Pages      int  // PDF only, 0 when unknown
	WellFormed bool // container opened without error
}

// Inspect looks at the container of a document without reading its text.
func Inspect(doc Document) DocumentInfo {
	data, err := base64.StdEncoding.DecodeString(doc.Base64)
	if err != nil || len(data) == 0 {
		return DocumentInfo{}
	}
	switch doc.MediaType {
	case MediaTypePDF:
		return inspectPDF(data)
	case MediaTypeDOCX:
		return inspectDocx(data)
	default:
		return DocumentInfo{WellFormed: true}
	}
}

func inspectPDF(data []byte) (info DocumentInfo) {
	// ledongthuc/pdf panics on some malformed inputs.
	defer func() {
		if recover() != nil {
			info = DocumentInfo{}
		}
	}()
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return DocumentInfo{}
	}
	return DocumentInfo{Pages: r.NumPage(), WellFormed: true}
}

func inspectDocx(data []byte) DocumentInfo {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return DocumentInfo{}
	}
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			return DocumentInfo{WellFormed: true}
		}
	}
	return DocumentInfo{}
}
