// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package main

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/gviegas/scenemath/linear"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := newRootCommand(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

// parseQ parses a line printed by Q.String.
func parseQ(t *testing.T, s string) [4]float64 {
	t.Helper()
	var q [4]float64
	if _, err := fmt.Sscanf(s, "(%g, %g, %g, %g)", &q[0], &q[1], &q[2], &q[3]); err != nil {
		t.Fatalf("parseQ(%q): %v", s, err)
	}
	return q
}

func TestConvert(t *testing.T) {
	h := math.Sqrt2 / 2
	for _, x := range [...]struct {
		args []string
		want [4]float64
	}{
		{[]string{"axis", "0", "0", "1", "90", "--degrees"}, [4]float64{0, 0, h, h}},
		{[]string{"axis", "0", "2", "0", "0"}, [4]float64{0, 0, 0, 1}},
		{[]string{"euler", "0", "0", "3.141592653589793", "--double"}, [4]float64{0, 0, 1, 0}},
		{[]string{"euler", "--order", "zyx", "90", "0", "0", "--degrees"}, [4]float64{h, 0, 0, h}},
		{[]string{"matrix", "1", "0", "0", "0", "0", "1", "0", "0", "0", "0", "1", "0", "7", "8", "9", "1"}, [4]float64{0, 0, 0, 1}},
		{[]string{"matrix", "--", "0", "1", "0", "0", "-1", "0", "0", "0", "0", "0", "1", "0", "0", "0", "0", "1"}, [4]float64{0, 0, h, h}},
		{[]string{"vectors", "1", "0", "0", "0", "3", "0"}, [4]float64{0, 0, h, h}},
		{[]string{"slerp", "0", "0", "0", "1", "0", "0", "1", "0", "0.5", "--double"}, [4]float64{0, 0, h, h}},
	} {
		out, err := execute(t, x.args...)
		if err != nil {
			t.Fatalf("quatconv %v\nhave %v\nwant nil", x.args, err)
		}
		have := parseQ(t, strings.TrimSpace(out))
		if diff := cmp.Diff(x.want, have, cmpopts.EquateApprox(0, 1e-6)); diff != "" {
			t.Fatalf("quatconv %v (-want +have):\n%s", x.args, diff)
		}
	}
}

func TestMatrixFlag(t *testing.T) {
	out, err := execute(t, "axis", "1", "0", "0", "180", "--degrees", "--matrix", "--double")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 {
		t.Fatalf("quatconv --matrix: lines\nhave %d\nwant 4\n%s", len(lines), out)
	}
	want := [3][3]float64{{1, 0, 0}, {0, -1, 0}, {0, 0, -1}}
	for r, line := range lines[1:] {
		var have [3]float64
		if _, err := fmt.Sscan(line, &have[0], &have[1], &have[2]); err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(want[r], have, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
			t.Fatalf("quatconv --matrix: row %d (-want +have):\n%s", r, diff)
		}
	}
}

func TestErrors(t *testing.T) {
	if _, err := execute(t, "euler", "--order", "xxy", "0", "0", "0"); !errors.Is(err, linear.ErrInvalidOrder) {
		t.Fatalf("quatconv euler --order xxy\nhave %v\nwant %v", err, linear.ErrInvalidOrder)
	}
	for _, args := range [...][]string{
		{"axis", "0", "0", "0", "1"},
		{"axis", "0", "0", "1"},
		{"vectors", "0", "0", "0", "1", "0", "0"},
		{"slerp", "0", "0", "0", "1", "0", "0", "0", "1", "half"},
		{"nodes"},
	} {
		if _, err := execute(t, args...); err == nil {
			t.Fatalf("quatconv %v\nhave nil\nwant error", args)
		}
	}
}

func TestNodes(t *testing.T) {
	const json = `{
		"asset": {"version": "2.0"},
		"nodes": [{"name": "spin", "rotation": [0, 1, 0, 0]}]
	}`
	path := filepath.Join(t.TempDir(), "spin.gltf")
	if err := os.WriteFile(path, []byte(json), 0o600); err != nil {
		t.Fatal(err)
	}
	out, err := execute(t, "nodes", path)
	if err != nil {
		t.Fatal(err)
	}
	want := "spin\nspin (0, 1, 0, 0)\n"
	if out != want {
		t.Fatalf("quatconv nodes\nhave %q\nwant %q", out, want)
	}
}

func TestParseFloats(t *testing.T) {
	f, err := parseFloats[float32]([]string{"0.1", "-2.5e3"})
	if err != nil {
		t.Fatal(err)
	}
	if want := []float32{0.1, -2500}; !cmp.Equal(f, want) {
		t.Fatalf("parseFloats[float32]\nhave %v\nwant %v", f, want)
	}
	d, err := parseFloats[float64]([]string{"0.1"})
	if err != nil {
		t.Fatal(err)
	}
	if d[0] != 0.1 {
		t.Fatalf("parseFloats[float64]\nhave %v\nwant 0.1", d[0])
	}
	if _, err := parseFloats[float32]([]string{"1", "x"}); err == nil || !strings.Contains(err.Error(), `"x"`) {
		t.Fatalf("parseFloats(x)\nhave %v\nwant invalid number error", err)
	}
}
