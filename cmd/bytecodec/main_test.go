package main

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/storacha/go-bytecodec/core/hash/hashers"
	"github.com/storacha/go-bytecodec/testing/fixtures"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, strings.TrimSpace(stdout.String()), strings.TrimSpace(stderr.String())
}

func requireFailureOutput(t *testing.T, stderr string, name string) {
	t.Helper()
	var out map[string]string
	require.NoError(t, json.Unmarshal([]byte(stderr), &out), stderr)
	require.Equal(t, name, out["name"])
	require.NotEmpty(t, out["message"])
	require.NotContains(t, out, "stack")
}

func TestConversions(t *testing.T) {
	testCases := []struct {
		name string
		args []string
		want string
	}{
		{"from-uint", []string{"from-uint", "300"}, "[44,1]"},
		{"from-uint zero", []string{"from-uint", "0"}, "[0]"},
		{"from-uint big", []string{"from-uint", "18446744073709551616"}, "[0,0,0,0,0,0,0,0,1]"},
		{"from-uint sized", []string{"from-uint", "--size", "4", "300"}, "[44,1,0,0]"},
		{"to-uint", []string{"to-uint", "[44,1,0,0]"}, "300"},
		{"from-str", []string{"from-str", "abc"}, "[97,98,99]"},
		{"to-str", []string{"to-str", "[97,98,99]"}, "abc"},
		{"from-hex", []string{"from-hex", "abc"}, "[10,188]"},
		{"to-hex", []string{"to-hex", "[10,188]"}, "0abc"},
		{"reverse", []string{"reverse", "[1,2,3,4,5]"}, "[5,4,3,2,1]"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code, stdout, stderr := runCLI(t, tc.args...)
			require.Equal(t, 0, code, stderr)
			require.Equal(t, tc.want, stdout)
		})
	}
}

func TestConversionFailures(t *testing.T) {
	testCases := []struct {
		name    string
		args    []string
		failure string
	}{
		{"not a number", []string{"from-uint", "twelve"}, "InvalidUint"},
		{"out of range byte", []string{"to-hex", "[10,256]"}, "InvalidBytes"},
		{"fractional byte", []string{"reverse", "[1.5]"}, "InvalidBytes"},
		{"not an array", []string{"to-str", "hello"}, "InvalidBytes"},
		{"bad hex", []string{"from-hex", "xyz"}, "InvalidHex"},
		{"wide character", []string{"from-str", "☃"}, "InvalidString"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code, stdout, stderr := runCLI(t, tc.args...)
			require.Equal(t, 1, code)
			require.Empty(t, stdout)
			requireFailureOutput(t, stderr, tc.failure)
		})
	}
}

func TestHash(t *testing.T) {
	t.Run("default sha2-256", func(t *testing.T) {
		code, stdout, stderr := runCLI(t, "hash", "abc")
		require.Equal(t, 0, code, stderr)
		require.Equal(t, fixtures.SHA256ABC, stdout)
	})

	t.Run("bytes input", func(t *testing.T) {
		code, stdout, stderr := runCLI(t, "hash", "--bytes", "[97,98,99]")
		require.Equal(t, 0, code, stderr)
		require.Equal(t, fixtures.SHA256ABC, stdout)
	})

	t.Run("repeated inputs", func(t *testing.T) {
		code, stdout, stderr := runCLI(t, "hash", "abc", "abc")
		require.Equal(t, 0, code, stderr)
		require.Equal(t, []string{fixtures.SHA256ABC, fixtures.SHA256ABC}, strings.Split(stdout, "\n"))
	})

	t.Run("multihash", func(t *testing.T) {
		code, stdout, stderr := runCLI(t, "hash", "--format", "multihash", "abc")
		require.Equal(t, 0, code, stderr)
		require.Equal(t, "1220"+fixtures.SHA256ABC, stdout)
	})

	t.Run("cid", func(t *testing.T) {
		code, stdout, stderr := runCLI(t, "hash", "--format", "cid", "abc")
		require.Equal(t, 0, code, stderr)
		require.True(t, strings.HasPrefix(stdout, "bafkrei"), stdout)
	})

	t.Run("multibase", func(t *testing.T) {
		code, stdout, stderr := runCLI(t, "hash", "--format", "base16", "abc")
		require.Equal(t, 0, code, stderr)
		require.Equal(t, "f"+fixtures.SHA256ABC, stdout)
	})

	t.Run("every algorithm", func(t *testing.T) {
		for _, name := range hashers.Names() {
			h, err := hashers.Lookup(name)
			require.NoError(t, err)
			code, stdout, stderr := runCLI(t, "hash", "--alg", name, "abc")
			require.Equal(t, 0, code, stderr)
			require.Len(t, stdout, int(h.Size())*2)
		}
	})

	t.Run("alg from env", func(t *testing.T) {
		t.Setenv("BYTECODEC_HASH", "sha3-256")
		code, stdout, stderr := runCLI(t, "hash", "abc")
		require.Equal(t, 0, code, stderr)
		require.Equal(t, "3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532", stdout)
	})

	t.Run("unknown alg", func(t *testing.T) {
		code, _, stderr := runCLI(t, "hash", "--alg", "md5-ish", "abc")
		require.Equal(t, 1, code)
		require.Contains(t, stderr, "unknown hash")
	})

	t.Run("unknown format", func(t *testing.T) {
		code, _, stderr := runCLI(t, "hash", "--format", "morse", "abc")
		require.Equal(t, 1, code)
		require.Contains(t, stderr, "unknown output format")
	})

	t.Run("invalid input", func(t *testing.T) {
		code, _, stderr := runCLI(t, "hash", "☃")
		require.Equal(t, 1, code)
		requireFailureOutput(t, stderr, "InvalidString")
	})
}

func TestAlgs(t *testing.T) {
	code, stdout, stderr := runCLI(t, "algs")
	require.Equal(t, 0, code, stderr)
	require.Equal(t, hashers.Names(), strings.Split(stdout, "\n"))
}

func TestUsageErrors(t *testing.T) {
	code, _, _ := runCLI(t, "no-such-command")
	require.Equal(t, 2, code)

	code, _, stderr := runCLI(t, "--log-level", "loud", "algs")
	require.Equal(t, 2, code)
	require.Contains(t, stderr, "invalid log level")
}

func TestParseLogLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		" warn ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	} {
		got, err := parseLogLevel(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	_, err := parseLogLevel("verbose")
	require.Error(t, err)
}

func TestDebugLogging(t *testing.T) {
	code, stdout, stderr := runCLI(t, "--log-level", "debug", "--log-format", "json", "from-hex", "zz")
	require.Equal(t, 1, code)
	require.Empty(t, stdout)

	lines := strings.Split(stderr, "\n")
	var sawStack bool
	for _, line := range lines {
		var rec map[string]any
		if json.Unmarshal([]byte(line), &rec) != nil {
			continue
		}
		if rec["msg"] == "failure stack" {
			sawStack = true
			require.Equal(t, "InvalidHex", rec["name"])
			require.Equal(t, "bytecodec", rec["app"])
		}
	}
	require.True(t, sawStack, stderr)
}
