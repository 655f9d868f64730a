package histlib

import (
	"strings"

	"github.com/histdl/histdl/common"
)

// Record is a single download-history entry. Records carry no unique
// identifier; identity is the (url, status) pair itself, so two records
// with the same url and status are indistinguishable.
type Record struct {
	Url    string `json:"url"`
	Status string `json:"status"`
}

// Matches reports whether q occurs in the record's url or status,
// compared case-insensitively. The empty query matches every record.
func (r Record) Matches(q string) bool {
	if q == "" {
		return true
	}
	q = strings.ToLower(q)
	return strings.Contains(strings.ToLower(r.Url), q) ||
		strings.Contains(strings.ToLower(r.Status), q)
}

// Kind classifies the record's status for display.
func (r Record) Kind() common.StatusKind {
	return common.KindOf(r.Status)
}

// same reports whether o has the same structural identity as r.
func (r Record) same(o Record) bool {
	return r.Url == o.Url && r.Status == o.Status
}
