package buildopts

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeOptions(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	want := Set{
		{"CMAKE_BUILD_TYPE", "RELEASE"},
		{"CMAKE_INSTALL_PREFIX", "/usr/local"},
		{"INSTALL_C_EXAMPLES", "OFF"},
		{"INSTALL_PYTHON_EXAMPLES", "OFF"},
		{"BUILD_OPENCV_PYTHON2", "ON"},
		{"PYTHON2_INCLUDE_DIR", "/usr/include/python2.7"},
		{"BUILD_EXAMPLES", "OFF"},
	}
	if got := Defaults(); !reflect.DeepEqual(got, want) {
		t.Errorf("Defaults() = %v, want %v", got, want)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	got, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got, Defaults()) {
		t.Errorf("Load(\"\") = %v, want defaults", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	got, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got, Defaults()) {
		t.Errorf("Load on missing file = %v, want defaults", got)
	}
}

func TestLoadJSONPreservesOrder(t *testing.T) {
	path := writeOptions(t, "opts.json", `{"Z_LAST_FIRST": "1", "A_SECOND": "2", "M_THIRD": "3"}`)
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Set{
		{"Z_LAST_FIRST", "1"},
		{"A_SECOND", "2"},
		{"M_THIRD", "3"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Load = %v, want %v", got, want)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeOptions(t, "opts.yaml", "CMAKE_BUILD_TYPE: Debug\nWITH_TBB: ON\nCUDA_ARCH_BIN: 7.5\n")
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Set{
		{"CMAKE_BUILD_TYPE", "Debug"},
		{"WITH_TBB", "ON"},
		{"CUDA_ARCH_BIN", "7.5"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Load = %v, want %v", got, want)
	}
}

func TestLoadEmptyMapping(t *testing.T) {
	path := writeOptions(t, "opts.json", "{}")
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got, Defaults()) {
		t.Errorf("Load on empty mapping = %v, want defaults", got)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	path := writeOptions(t, "opts.yaml", "")
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got, Defaults()) {
		t.Errorf("Load on empty file = %v, want defaults", got)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := writeOptions(t, "opts.json", "{")
	if _, err := Load(path); err == nil {
		t.Error("Load on malformed document = nil error, want parse error")
	}
}

func TestLoadNonMapping(t *testing.T) {
	path := writeOptions(t, "opts.yaml", "- a\n- b\n")
	if _, err := Load(path); err == nil {
		t.Error("Load on sequence document = nil error, want parse error")
	}
}

func TestDefineArgs(t *testing.T) {
	s := Set{{"A", "B"}, {"C", "D"}}
	if got, want := s.DefineArgs(), "-D A=B -D C=D"; got != want {
		t.Errorf("DefineArgs = %q, want %q", got, want)
	}
}
