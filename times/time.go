package times

import (
	"fmt"
	"time"
)

// FileStampLayout is the second resolution timestamp used in output file names.
const FileStampLayout = "20060102_150405"

// FileStamp formats t for file names, in UTC.
func FileStamp(t time.Time) string {
	return t.UTC().Format(FileStampLayout)
}

// FileStampNano is FileStamp followed by the zero padded nanoseconds of t,
// so that names produced within the same second still differ.
func FileStampNano(t time.Time) string {
	return fmt.Sprintf("%s_%09d", FileStamp(t), t.Nanosecond())
}
