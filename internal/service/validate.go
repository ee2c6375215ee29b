package service

import (
	"strings"

	"loganalyzer/internal/model"
)

// checkExtension reports whether filename ends with one of the policy's
// allowed suffixes. The comparison is case-insensitive; an empty filename is
// never allowed.
func checkExtension(filename string, p model.AdmissionPolicy) bool {
	if filename == "" {
		return false
	}
	lower := strings.ToLower(filename)
	for _, ext := range p.AllowedExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// checkSize reports whether sizeBytes is within the policy ceiling.
// Negative sizes are invalid by definition.
func checkSize(sizeBytes int64, p model.AdmissionPolicy) bool {
	return sizeBytes >= 0 && sizeBytes <= p.MaxBytes
}
