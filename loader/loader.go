// Package loader reads ROM images and opens the disk backing file for
// the Fox runtime.
package loader

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/foxvm/fvm/vm"
)

// LoadROMFile reads a packed word image into the machine's main
// memory and rewinds execution to word zero. The word count is the
// byte count divided by the word size; trailing partial words are
// ignored.
func LoadROMFile(machine *vm.VM, path string) error {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided ROM path
	if err != nil {
		return err
	}

	words := make([]uint64, len(data)/vm.WordBytes)
	for i := range words {
		words[i] = binary.LittleEndian.Uint64(data[i*vm.WordBytes:])
	}

	if err := machine.LoadWords(words); err != nil {
		return fmt.Errorf("failed to load ROM into memory: %w", err)
	}
	return nil
}

// OpenDisk opens the disk backing file for reading and writing
func OpenDisk(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}
	return f, nil
}
