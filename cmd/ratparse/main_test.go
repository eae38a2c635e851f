package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestRun(t *testing.T) {
	log := zap.NewNop().Sugar()

	t.Run("success", func(t *testing.T) {
		tests := []struct {
			bits     string
			raw      bool
			literals []string
			want     string
		}{
			{"64", false, []string{"1.25", "-47e-2", "3/-4"}, "1.25\t5/4\n-47e-2\t-47/100\n3/-4\t-3/4\n"},
			{"64", true, []string{"1.25", "6/8"}, "1.25\t125/100\n6/8\t6/8\n"},
			{"8", false, []string{"127", "0.01"}, "127\t127\n0.01\t1/100\n"},
			{"32", false, []string{"1.0000000000"}, "1.0000000000\t1\n"},
			{"16", false, nil, ""},
		}
		for _, tt := range tests {
			var buf bytes.Buffer
			failed, err := run(&buf, log, tt.bits, tt.raw, tt.literals)
			if err != nil {
				t.Errorf("run(%v, %v, %q) failed: %v", tt.bits, tt.raw, tt.literals, err)
				continue
			}
			if failed != 0 {
				t.Errorf("run(%v, %v, %q) reported %v failures, want 0", tt.bits, tt.raw, tt.literals, failed)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("run(%v, %v, %q) wrote %q, want %q", tt.bits, tt.raw, tt.literals, got, tt.want)
			}
		}
	})

	t.Run("failures", func(t *testing.T) {
		var buf bytes.Buffer
		failed, err := run(&buf, log, "8", false, []string{"200", "1/2", "1/0"})
		if err != nil {
			t.Fatalf("run failed: %v", err)
		}
		if failed != 2 {
			t.Errorf("run reported %v failures, want 2", failed)
		}
		want := "200\terror: parsing \"200\": overflow: numerator does not fit into int8\n" +
			"1/2\t1/2\n" +
			"1/0\terror: parsing \"1/0\": zero denominator\n"
		if got := buf.String(); got != want {
			t.Errorf("run wrote %q, want %q", got, want)
		}
	})

	t.Run("error", func(t *testing.T) {
		_, err := run(&bytes.Buffer{}, log, "128", false, []string{"1"})
		if err == nil {
			t.Errorf("run with 128 bits did not fail")
		}
	})
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestRun_WriteError(t *testing.T) {
	_, err := run(failingWriter{}, zap.NewNop().Sugar(), "64", false, []string{"1"})
	if err == nil {
		t.Errorf("run to a failing writer did not fail")
	}
}

// syncBuffer records whether buffered log entries were flushed.
type syncBuffer struct {
	bytes.Buffer
	synced bool
}

func (b *syncBuffer) Sync() error {
	b.synced = true
	return nil
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		failed     int
		want       int
		wantSynced bool
	}{
		{0, 0, false},
		{1, 1, true},
		{3, 1, true},
	}
	for _, tt := range tests {
		var buf syncBuffer
		core := zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), &buf, zap.DebugLevel)
		log := zap.New(core).Sugar()
		got := exitCode(log, tt.failed, 3)
		if got != tt.want {
			t.Errorf("exitCode(%v, 3) = %v, want %v", tt.failed, got, tt.want)
		}
		if buf.synced != tt.wantSynced {
			t.Errorf("exitCode(%v, 3) synced logger = %v, want %v", tt.failed, buf.synced, tt.wantSynced)
		}
		if tt.wantSynced && !strings.Contains(buf.String(), "some literals failed") {
			t.Errorf("exitCode(%v, 3) logged %q, want failure summary", tt.failed, buf.String())
		}
	}
}

func TestReadLiterals(t *testing.T) {
	input := "1.25\n\n  3/4  \r\n-1e2\n"
	got, err := readLiterals(strings.NewReader(input))
	if err != nil {
		t.Fatalf("readLiterals failed: %v", err)
	}
	want := []string{"1.25", "3/4", "-1e2"}
	if len(got) != len(want) {
		t.Fatalf("readLiterals(%q) = %q, want %q", input, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("readLiterals(%q)[%v] = %q, want %q", input, i, got[i], want[i])
		}
	}
}

func TestNewLogger(t *testing.T) {
	for _, verbose := range []bool{false, true} {
		log, err := newLogger(verbose)
		if err != nil {
			t.Errorf("newLogger(%v) failed: %v", verbose, err)
			continue
		}
		if got := log.Desugar().Core().Enabled(zap.DebugLevel); got != verbose {
			t.Errorf("newLogger(%v) debug enabled = %v, want %v", verbose, got, verbose)
		}
	}
}
