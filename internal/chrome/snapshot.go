package chrome

import (
	"fmt"
	"io"
	"os"
)

// Snapshot is a private temporary copy of a Chrome cookie database.
// Chrome holds an exclusive lock on the live file while running, so all
// reads go through a copy. The copy contains plaintext session
// credentials; Close must run on every exit path so it never outlives
// the process.
type Snapshot struct {
	Path string
}

// NewSnapshot copies the database at src to a uniquely named temporary
// file. The unique name makes concurrent runs safe. The caller must
// Close the snapshot when done reading.
func NewSnapshot(src string) (*Snapshot, error) {
	in, err := os.Open(src)
	if err != nil {
		return nil, fmt.Errorf("open cookie database: %w", err)
	}
	defer in.Close()

	tmp, err := os.CreateTemp("", "chrome-cookies-*.db")
	if err != nil {
		return nil, fmt.Errorf("create snapshot file: %w", err)
	}

	if _, err := io.Copy(tmp, in); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return nil, fmt.Errorf("copy cookie database: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return nil, fmt.Errorf("finish snapshot: %w", err)
	}

	return &Snapshot{Path: tmp.Name()}, nil
}

// Close deletes the temporary copy.
func (s *Snapshot) Close() error {
	return os.Remove(s.Path)
}
