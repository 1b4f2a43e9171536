package rt_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vexlang/vexrt/internal/rt"
)

func TestLoadConfigOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vexrt.toml")
	contents := "stack_size = 128\nvm_name = \"custom\"\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := rt.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.StackSize != 128 {
		t.Errorf("StackSize = %d, want 128", cfg.StackSize)
	}
	if cfg.VMName != "custom" {
		t.Errorf("VMName = %q, want %q", cfg.VMName, "custom")
	}
	// Fields the file didn't mention keep DefaultConfig's values.
	if cfg.HeapSize != rt.DefaultConfig().HeapSize {
		t.Errorf("HeapSize = %d, want default %d", cfg.HeapSize, rt.DefaultConfig().HeapSize)
	}
}

func TestNewVMFromConfigUsesRequestedSizes(t *testing.T) {
	cfg := rt.DefaultConfig()
	cfg.StackSize = 4
	cfg.VMName = "sized"

	vm := rt.NewVMFromConfig(cfg)
	defer vm.Terminate()

	if vm.Name != "sized" {
		t.Errorf("Name = %q, want %q", vm.Name, "sized")
	}
	if vm.StackMax != 4 {
		t.Errorf("StackMax = %d, want 4", vm.StackMax)
	}
}
