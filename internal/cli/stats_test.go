package cli

import (
	"bytes"
	"slices"
	"strings"
	"testing"
)

func TestParseSizes(t *testing.T) {
	got, err := parseSizes("8, 16,32")
	if err != nil {
		t.Fatalf("parseSizes: %v", err)
	}
	if !slices.Equal(got, []int{8, 16, 32}) {
		t.Errorf("parseSizes = %v, want [8 16 32]", got)
	}

	if _, err := parseSizes("8,big"); err == nil {
		t.Error("expected error for a non-numeric size")
	}
}

func TestParseSizes_Default(t *testing.T) {
	if _, err := parseSizes(defaultStatSizes); err != nil {
		t.Errorf("default sizes should parse: %v", err)
	}
}

// The help text explains ACMR as a per-index ratio; the floor it quotes
// must match that definition (a long strip costs one new vertex out of
// three references per triangle).
func TestStatsHelp_ACMRFloor(t *testing.T) {
	var buf bytes.Buffer
	long := New(&buf, LogInfo).statsCommand().Long

	if !strings.Contains(long, "1/3") {
		t.Errorf("stats help should quote the 1/3 strip floor:\n%s", long)
	}
	if strings.Contains(long, "0.5") || strings.Contains(long, "0.33") {
		t.Errorf("stats help quotes a per-triangle figure:\n%s", long)
	}
}
