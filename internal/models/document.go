package models

import (
	"path/filepath"
	"strings"
)

// ResumeFile is an uploaded resume held in memory for the duration of a
// request.
type ResumeFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

func (f *ResumeFile) Ext() string {
	return strings.ToLower(filepath.Ext(f.Filename))
}

func (f *ResumeFile) Size() int64 {
	return int64(len(f.Data))
}
