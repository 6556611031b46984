package stackvm

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config tunes host-visible knobs around the VM without changing its
// observable semantics when left at the zero value. It is ambient
// plumbing (SPEC_FULL.md "Configuration"): the teacher has nothing like
// it because cellux-langsam never exposed tuning at all, so this follows
// the shape chazu-maggie and vovakirdan-surge use for their own TOML
// configs instead.
type Config struct {
	// HeapCapacityHint presizes the heap's live-object set. Zero means
	// "let the map grow organically"; it never affects which objects are
	// considered live.
	HeapCapacityHint int `toml:"heap_capacity_hint"`

	// DisableGC turns off the RETURN-triggered collection cycle from
	// §4.2. It exists for debugging leak hunts with the disassembler/CLI
	// and must never be set for production runs: turning it on means
	// unreachable objects are not destroyed at RETURN, so they stay in
	// the live set until Run's final Teardown empties the heap.
	DisableGC bool `toml:"disable_gc"`

	// InputBufferLimit bounds how many bytes a single IN reads, per spec
	// §6's "bounded buffer, implementation-defined maximum". A longer
	// token is not an error: IN returns its first InputBufferLimit bytes
	// and the rest is left for the next IN. Zero selects DefaultInputLimit.
	InputBufferLimit int `toml:"input_buffer_limit"`
}

// DefaultInputLimit matches the original VM's IN buffer (scanf into a
// 1024-byte stack buffer, %1023s).
const DefaultInputLimit = 1023

// LoadConfig decodes a TOML config file at path. A missing file is not
// an error — it just yields the zero Config (full spec-default
// behavior).
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) inputLimit() int {
	if c.InputBufferLimit > 0 {
		return c.InputBufferLimit
	}
	return DefaultInputLimit
}
