// Package format identifies the kind of drawing file an input is, so that
// inputs the pipeline cannot read are rejected with a clear reason.
package format

import (
	"bytes"
	"path/filepath"
	"strings"
)

// Format represents a drawing file format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// PDF indicates a PDF document, the only supported input.
	PDF
	// DWG indicates an AutoCAD drawing.
	DWG
	// DXF indicates an AutoCAD drawing exchange file.
	DXF
	// PNG indicates a raster PNG image.
	PNG
	// JPEG indicates a raster JPEG image.
	JPEG
)

// pdfHeaderWindow is how far into the data the %PDF- header may start;
// readers tolerate leading garbage up to this offset.
const pdfHeaderWindow = 1024

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case PDF:
		return "PDF"
	case DWG:
		return "DWG"
	case DXF:
		return "DXF"
	case PNG:
		return "PNG"
	case JPEG:
		return "JPEG"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case PDF:
		return ".pdf"
	case DWG:
		return ".dwg"
	case DXF:
		return ".dxf"
	case PNG:
		return ".png"
	case JPEG:
		return ".jpg"
	default:
		return ""
	}
}

// IsRaster reports whether the format carries no vector geometry.
func (f Format) IsRaster() bool {
	return f == PNG || f == JPEG
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return PDF
	case ".dwg":
		return DWG
	case ".dxf":
		return DXF
	case ".png":
		return PNG
	case ".jpg", ".jpeg":
		return JPEG
	default:
		return Unknown
	}
}

// DetectFromMagic checks file magic bytes to determine format.
// This provides more reliable detection than extension-based detection.
func DetectFromMagic(data []byte) Format {
	switch {
	case bytes.HasPrefix(data, []byte("AC10")):
		return DWG
	case bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")):
		return PNG
	case bytes.HasPrefix(data, []byte{0xFF, 0xD8, 0xFF}):
		return JPEG
	}

	head := data
	if len(head) > pdfHeaderWindow {
		head = head[:pdfHeaderWindow]
	}
	if bytes.Contains(head, []byte("%PDF-")) {
		return PDF
	}

	if detectDXFMagic(head) {
		return DXF
	}
	return Unknown
}

// detectDXFMagic checks for the group code 0 / SECTION pair that opens an
// ASCII DXF file.
func detectDXFMagic(data []byte) bool {
	fields := strings.Fields(string(data))
	return len(fields) >= 2 && fields[0] == "0" && fields[1] == "SECTION"
}
