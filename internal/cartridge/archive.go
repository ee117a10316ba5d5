package cartridge

import (
	"fmt"
	"io"
	"strings"

	"github.com/bodgit/sevenzip"
)

// LoadArchive extracts the first .gb/.gbc entry from a .7z-packed ROM
// distribution and returns its raw bytes. ROMs are commonly shared this
// way; this path is purely additive to the raw-file contract in spec §6
// — a plain ROM path never touches this code.
func LoadArchive(path string) ([]byte, error) {
	r, err := sevenzip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("cartridge: opening archive %s: %w", path, err)
	}
	defer r.Close()

	for _, f := range r.File {
		name := strings.ToLower(f.Name)
		if !strings.HasSuffix(name, ".gb") && !strings.HasSuffix(name, ".gbc") {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("cartridge: opening archive entry %s: %w", f.Name, err)
		}
		defer rc.Close()

		data, err := io.ReadAll(rc)
		if err != nil {
			return nil, fmt.Errorf("cartridge: reading archive entry %s: %w", f.Name, err)
		}
		return data, nil
	}

	return nil, fmt.Errorf("cartridge: archive %s contains no .gb/.gbc entry", path)
}
