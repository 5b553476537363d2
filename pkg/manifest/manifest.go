// Package manifest provides provenance sidecars for cleaned output files.
// A manifest records the content hash, row count, timestamp and validation
// status of a cleaned dataset so consumers can detect stale or tampered files.
package manifest

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// TagStart is the first line of a manifest file.
	TagStart = "MANIFEST_START"
	// TagEnd is the last line of a manifest file.
	TagEnd = "MANIFEST_END"
)

// Manifest verification errors.
var (
	ErrNoManifestBlock = errors.New("no manifest block found")
	ErrNoHashFound     = errors.New("no hash found in manifest")
	ErrHashMismatch    = errors.New("hash mismatch")
)

// Manifest contains the recorded dataset status.
type Manifest struct {
	LastModify time.Time
	Hash       string
	Rows       int
	Validation bool
}

// CalculateHash computes the SHA-256 hash of the content.
func CalculateHash(content []byte) string {
	hash := sha256.Sum256(content)

	return hex.EncodeToString(hash[:])
}

// Build constructs the manifest text for the given content.
func Build(content []byte, rows int, validated bool) string {
	valStr := "FALSE"
	if validated {
		valStr = "TRUE"
	}

	now := time.Now().UTC().Format(time.RFC3339)

	return fmt.Sprintf("%s\nVALIDATION: %s\nLAST_MODIFY: %s\nROWS: %d\nHASH: %s\n%s\n",
		TagStart, valStr, now, rows, CalculateHash(content), TagEnd)
}

// Parse reads a manifest from its textual form.
func Parse(text string) (*Manifest, error) {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, TagStart) || !strings.HasSuffix(trimmed, TagEnd) {
		return nil, ErrNoManifestBlock
	}

	m := &Manifest{}

	for _, line := range strings.Split(trimmed, "\n") {
		parts := strings.SplitN(strings.TrimSpace(line), ":", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		val := strings.TrimSpace(parts[1])

		switch key {
		case "VALIDATION":
			m.Validation = strings.EqualFold(val, "TRUE")
		case "LAST_MODIFY":
			if t, err := time.Parse(time.RFC3339, val); err == nil {
				m.LastModify = t
			}
		case "ROWS":
			if n, err := strconv.Atoi(val); err == nil {
				m.Rows = n
			}
		case "HASH":
			m.Hash = val
		}
	}

	return m, nil
}

// Verify checks whether content matches the hash recorded in the manifest text.
func Verify(content []byte, manifestText string) (bool, error) {
	m, err := Parse(manifestText)
	if err != nil {
		return false, err
	}

	if m.Hash == "" {
		return false, ErrNoHashFound
	}

	if CalculateHash(content) != m.Hash {
		return false, ErrHashMismatch
	}

	return true, nil
}
