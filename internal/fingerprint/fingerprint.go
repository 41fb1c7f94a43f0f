package fingerprint

import (
	"crypto/md5"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

// DefaultSampleSize is the head/tail sample length used when none is
// configured.
const DefaultSampleSize = 1 << 20

// Fingerprinter hashes file content for identity comparison.
type Fingerprinter struct {
	sampleSize int64
}

// New constructs a Fingerprinter. Non-positive sample sizes fall back to
// DefaultSampleSize.
func New(sampleSize int64) *Fingerprinter {
	if sampleSize <= 0 {
		sampleSize = DefaultSampleSize
	}
	return &Fingerprinter{sampleSize: sampleSize}
}

// File returns the hex digest identifying the file's content. Files no
// larger than twice the sample size are hashed in full; larger files hash
// the first and last sample plus the little-endian encoded file length, in
// that fixed order. Errors are per-file and never abort a batch.
func (f *Fingerprinter) File(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("fingerprint open %s: %w", path, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return "", fmt.Errorf("fingerprint stat %s: %w", path, err)
	}
	size := info.Size()

	hasher := md5.New()

	if size <= 2*f.sampleSize {
		if _, err := io.Copy(hasher, file); err != nil {
			return "", fmt.Errorf("fingerprint read %s: %w", path, err)
		}
		return hex.EncodeToString(hasher.Sum(nil)), nil
	}

	head := make([]byte, f.sampleSize)
	if _, err := io.ReadFull(file, head); err != nil {
		return "", fmt.Errorf("fingerprint read head %s: %w", path, err)
	}
	tail := make([]byte, f.sampleSize)
	if _, err := file.ReadAt(tail, size-f.sampleSize); err != nil {
		return "", fmt.Errorf("fingerprint read tail %s: %w", path, err)
	}

	var length [8]byte
	binary.LittleEndian.PutUint64(length[:], uint64(size))

	hasher.Write(head)
	hasher.Write(tail)
	hasher.Write(length[:])
	return hex.EncodeToString(hasher.Sum(nil)), nil
}
