package tables

import (
	"errors"
	"testing"
)

func TestFiles(t *testing.T) {
	fs := ResultFiles()
	if len(fs) != 6 || fs[0] != "a100-results.csv" || fs[5] != "rome-results-cce.csv" {
		t.Fatalf("Bad file list %v", fs)
	}
	// Callers get a copy
	fs[0] = "x"
	if ResultFiles()[0] != "a100-results.csv" {
		t.Fatalf("File list was shared")
	}
	if PeaksFile() != "peaks.csv" {
		t.Fatalf("Bad peaks file %s", PeaksFile())
	}
}

func TestNames(t *testing.T) {
	if n, err := ModelName("openmp"); err != nil || n != "OpenMP" {
		t.Fatalf("openmp: %s %v", n, err)
	}
	if n, err := ModelName("omp-target"); err != nil || n != "OpenMP (target)" {
		t.Fatalf("omp-target: %s %v", n, err)
	}
	if _, err := ModelName("cuda"); !errors.Is(err, ErrUnknownModel) {
		t.Fatalf("cuda: %v", err)
	}
	if n, err := PlatformName("a100"); err != nil || n != "NVIDIA A100" {
		t.Fatalf("a100: %s %v", n, err)
	}
	if n, err := PlatformName("gen9"); err != nil || n != "Intel® Iris® Pro 580" {
		t.Fatalf("gen9: %s %v", n, err)
	}
	if _, err := PlatformName("h100"); !errors.Is(err, ErrUnknownPlatform) {
		t.Fatalf("h100: %v", err)
	}
}

func TestModels(t *testing.T) {
	if m, found := ModelAlias("kokkos-sycl"); !found || m != "kokkos" {
		t.Fatalf("alias: %s %v", m, found)
	}
	if _, found := ModelAlias("kokkos"); found {
		t.Fatalf("kokkos is not an alias")
	}
	if g := ModelGroup("omp-target"); g != "openmp" {
		t.Fatalf("group %s", g)
	}
	if g := ModelGroup("stdpar"); g != "stdpar" {
		t.Fatalf("group %s", g)
	}
	if !InModelOrder("raja") || InModelOrder("omp-target") {
		t.Fatalf("model order")
	}
	if o := ModelOrder(); len(o) != 5 || o[0] != "openmp" || o[4] != "onedpl" {
		t.Fatalf("order %v", o)
	}
}

func TestSockets(t *testing.T) {
	if m, k := SocketMultiplier("rome"); m != 2 || k != "EPYC 7742" {
		t.Fatalf("rome: %d %s", m, k)
	}
	if m, k := SocketMultiplier("clx_1S"); m != 1 || k != "Xeon 6230" {
		t.Fatalf("clx_1S: %d %s", m, k)
	}
	if m, k := SocketMultiplier("a100"); m != 1 || k != "a100" {
		t.Fatalf("a100: %d %s", m, k)
	}
}

func TestDecodeErrors(t *testing.T) {
	if _, err := decode([]byte("results: [a.csv]\n")); err == nil {
		t.Fatalf("Expected error for missing peaks")
	}
	if _, err := decode([]byte("results: [a.csv]\npeaks: p.csv\nsockets:\n  x: {multiplier: 0, peak: y}\n")); err == nil {
		t.Fatalf("Expected error for zero multiplier")
	}
	if _, err := decode([]byte("results: [")); err == nil {
		t.Fatalf("Expected syntax error")
	}
}
