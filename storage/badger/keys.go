package badger

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/pondside/docbrief/core"
)

// Key prefixes for different data types
const (
	documentPrefix       = "docrec"
	documentDatePrefix   = "docrecd"
	documentStatusPrefix = "docrecs"
	documentIDSeq        = "docrecseq"
)

// makeDocumentKey generates a key for a document by ID.
func makeDocumentKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", documentPrefix, id))
}

// makeDocumentDateKey generates a composite key for the creation-time index.
// Format: prefix:timestamp:id
func makeDocumentDateKey(createdAt time.Time, id core.ID) []byte {
	prefix := documentDatePrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 16 // 8 bytes for timestamp + 8 bytes for ID
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(createdAt.UnixMicro()))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makeDocumentStatusKey generates a composite key for the status index.
// Format: prefix:status:id
func makeDocumentStatusKey(status core.Status, id core.ID) []byte {
	prefix := documentStatusPrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 9 // 1 byte for status + 8 bytes for ID
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	buf[offset] = byte(status)
	offset++
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makePartialStatusKey generates a partial key for status-filtered scans.
// Format: prefix:status
func makePartialStatusKey(status core.Status) []byte {
	prefix := documentStatusPrefix + ":"
	prefixBytes := []byte(prefix)
	buf := make([]byte, len(prefixBytes)+1)
	offset := copy(buf, prefixBytes)
	buf[offset] = byte(status)
	return buf
}
