package task

import (
	"crypto/sha256"
	"encoding/base32"
	"strconv"
	"strings"
	"time"
)

// IDLength is the length of generated task IDs.
const IDLength = 8

// GenerateID derives a lowercase base32 ID from a task name, a sequence
// number and a timestamp. The sequence number keeps tasks that share a name
// and a clock reading apart.
func GenerateID(name string, seq int, timestamp time.Time) string {
	input := name + "\x00" + strconv.Itoa(seq) + "\x00" + timestamp.Format(time.RFC3339Nano)
	hash := sha256.Sum256([]byte(input))
	encoded := base32.StdEncoding.EncodeToString(hash[:])
	return strings.ToLower(encoded[:IDLength])
}
