package table

import (
	"bytes"
	"math"
	"testing"
)

func TestFormatRawRowmajorCsv(t *testing.T) {
	var buf bytes.Buffer
	err := FormatRawRowmajorCsv(
		&buf,
		[]string{"Device", "OpenMP", "Kokkos (SYCL)"},
		[][]string{
			{"NVIDIA A100", "50.0", "X"},
			{"2 x AMD EPYC 7742", "X", "a,b"},
		})
	if err != nil {
		t.Fatal(err)
	}
	expect := "Device,OpenMP,Kokkos (SYCL)\nNVIDIA A100,50.0,X\n2 x AMD EPYC 7742,X,\"a,b\"\n"
	if s := buf.String(); s != expect {
		t.Fatalf("Got %q", s)
	}

	buf.Reset()
	if err := FormatRawRowmajorCsv(&buf, nil, [][]string{{"a", "b"}}); err != nil {
		t.Fatal(err)
	}
	if s := buf.String(); s != "a,b\n" {
		t.Fatalf("Got %q", s)
	}
}

func TestFormatRawRowmajorFixed(t *testing.T) {
	var buf bytes.Buffer
	err := FormatRawRowmajorFixed(
		&buf,
		[]string{"Device", "SYCL"},
		[][]string{
			{"Intel® Iris® Pro 580", "12.5"},
			{"AMD MI100", "X"},
		})
	if err != nil {
		t.Fatal(err)
	}
	expect := "" +
		"Device                SYCL\n" +
		"Intel® Iris® Pro 580  12.5\n" +
		"AMD MI100             X\n"
	if s := buf.String(); s != expect {
		t.Fatalf("Got\n%s", s)
	}
}

func TestFormatFloat(t *testing.T) {
	for v, want := range map[float64]string{
		50:              "50.0",
		100:             "100.0",
		100.0 / 3:       "33.333333333333336",
		12.25:           "12.25",
		0:               "0.0",
		0.0001:          "0.0001",
		0.00001:         "1e-05",
		1e15:            "1000000000000000.0",
		1.5e16:          "1.5e+16",
		-2.5:            "-2.5",
		math.Inf(1):     "inf",
		math.Inf(-1):    "-inf",
		math.MaxFloat64: "1.7976931348623157e+308",
		5e-324:          "5e-324",
	} {
		if s := FormatFloat(v); s != want {
			t.Fatalf("FormatFloat(%v) = %s, want %s", v, s, want)
		}
	}
	if s := FormatFloat(math.NaN()); s != "nan" {
		t.Fatalf("NaN: %s", s)
	}
}
