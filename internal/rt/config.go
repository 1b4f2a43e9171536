package rt

import "github.com/BurntSushi/toml"

// Config is a TOML-loadable set of VM sizing knobs, grounded on the
// teacher's cmd/surge/project_manifest.go (which decodes a project
// manifest the same way with toml.Decode). init_vm(stack_size,
// heap_size, max_threads) takes these as raw integers in spec.md;
// vexrt's CLI driver additionally accepts a config file so a deployment
// does not need to pass three flags on every invocation.
type Config struct {
	StackSize  int    `toml:"stack_size"`
	HeapSize   int64  `toml:"heap_size"`
	InboxSize  int    `toml:"inbox_size"`
	MaxThreads int    `toml:"max_threads"`
	VMName     string `toml:"vm_name"`
}

// DefaultConfig mirrors idris_vm()'s convenience defaults.
func DefaultConfig() Config {
	return Config{
		StackSize:  DefaultStackSize,
		HeapSize:   DefaultHeapSize,
		InboxSize:  DefaultInboxSize,
		MaxThreads: 8,
		VMName:     "main",
	}
}

// LoadConfig decodes a TOML file at path, filling in any field the file
// omits from DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	_, err := toml.DecodeFile(path, &cfg)
	return cfg, err
}

// NewVMFromConfig builds a VM sized per cfg.
func NewVMFromConfig(cfg Config) *VM {
	return NewVM(cfg.VMName, cfg.StackSize, uint64(cfg.HeapSize), cfg.InboxSize)
}
