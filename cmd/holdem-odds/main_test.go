package main

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noEnv(string) (string, bool) { return "", false }

// runCLI runs holdem-odds with a config path that does not exist, so only
// defaults, flags and env apply.
func runCLI(t *testing.T, env func(string) (string, bool), args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	args = append([]string{"--config", filepath.Join(t.TempDir(), "none.hcl")}, args...)
	err := run(args, &stdout, &stderr, env)
	return stdout.String(), err
}

func TestEval(t *testing.T) {
	t.Parallel()
	out, err := runCLI(t, noEnv, "eval", "AsKs", "-b", "QsJsTs")
	require.NoError(t, err)
	assert.Contains(t, out, "A royal flush")
	assert.Contains(t, out, "AKs (Premium)")
	assert.Contains(t, out, "texture")
	assert.Regexp(t, regexp.MustCompile(`distance\s+0`), out)

	out, err = runCLI(t, noEnv, "eval", "9h Th", "-b", "8h Jh 2c")
	require.NoError(t, err)
	assert.Contains(t, out, "combo draw")

	out, err = runCLI(t, noEnv, "eval", "7d7c")
	require.NoError(t, err)
	assert.Contains(t, out, "One pair, Sevens")
	assert.NotContains(t, out, "texture")
}

func TestOddsExact(t *testing.T) {
	t.Parallel()
	out, err := runCLI(t, noEnv, "odds", "AsAd", "--vs", "KsKd", "-b", "2c7h9d", "-p")
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`player\s+91\.6%`), out)
	assert.Regexp(t, regexp.MustCompile(`opponent\s+8\.4%`), out)
	assert.Contains(t, out, "Two Pair")

	out, err = runCLI(t, noEnv, "odds", "AhKd", "--exact")
	require.NoError(t, err)
	assert.Contains(t, out, "preflop table")
	assert.Regexp(t, regexp.MustCompile(`player\s+65\.3%`), out)

	_, err = runCLI(t, noEnv, "odds", "AhKd", "--exact", "-d", "2c")
	require.Error(t, err)
}

func TestOddsMonteCarlo(t *testing.T) {
	t.Parallel()
	out, err := runCLI(t, noEnv, "--seed", "1", "--max-trials", "500", "--duration", "1m",
		"odds", "AsAd", "-b", "2c7hKd", "-n", "2", "-p")
	require.NoError(t, err)
	assert.Contains(t, out, "monte carlo vs 2 random")
	assert.Regexp(t, regexp.MustCompile(`trials\s+500`), out)
	assert.Contains(t, out, "Three of a Kind")

	out, err = runCLI(t, noEnv, "--seed", "1", "--max-trials", "300", "--duration", "1m",
		"odds", "AsAd", "-b", "2c7h9d", "-r", "KK,QQ")
	require.NoError(t, err)
	assert.Contains(t, out, "from KK,QQ")
	assert.Regexp(t, regexp.MustCompile(`trials\s+300`), out)
}

func TestOutsCommand(t *testing.T) {
	t.Parallel()
	out, err := runCLI(t, noEnv, "outs", "AsAd", "-b", "2c7hKd", "-o", "KsKc")
	require.NoError(t, err)
	// Only the two remaining aces beat a set of kings.
	assert.Regexp(t, regexp.MustCompile(`outs\s+2`), out)
	assert.Contains(t, out, "Ah Ac")

	out, err = runCLI(t, noEnv, "outs", "9hTh", "-b", "8hJh2c", "--discounted")
	require.NoError(t, err)
	assert.Contains(t, out, "flush draw")

	_, err = runCLI(t, noEnv, "outs", "AsAd", "-b", "2c")
	require.ErrorIs(t, err, errNoBoard)

	_, err = runCLI(t, noEnv, "outs", "AsAd", "-b", "2c7hKd", "-o", "KsKc", "-d", "3c")
	require.Error(t, err)
}

func TestPotentialCommand(t *testing.T) {
	t.Parallel()
	out, err := runCLI(t, noEnv, "potential", "9h8h", "-b", "7h6c2hKd", "--exact")
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`ppot\s+41\.2%`), out)
	assert.Regexp(t, regexp.MustCompile(`npot\s+9\.2%`), out)

	out, err = runCLI(t, noEnv, "--seed", "2", "--max-trials", "200", "--duration", "1m",
		"potential", "9h8h", "-b", "7h6c2hKd", "-n", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "monte carlo vs 3 random")

	_, err = runCLI(t, noEnv, "potential", "9h8h", "-b", "7h6c2hKd", "--exact", "-n", "2")
	require.Error(t, err)
}

func TestPreflopCommand(t *testing.T) {
	t.Parallel()
	out, err := runCLI(t, noEnv, "preflop", "72o", "AA", "AsKd", "AA", "--top", "2")
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`AA\s+85\.2%\s+Premium`), out)
	assert.Contains(t, out, "AKo")
	assert.NotContains(t, out, "72o")

	out, err = runCLI(t, noEnv, "preflop")
	require.NoError(t, err)
	assert.Contains(t, out, "32o")

	_, err = runCLI(t, noEnv, "preflop", "AK")
	require.Error(t, err)
}

func TestConfigAndEnv(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "holdem-odds.hcl")
	src := "analysis {\n  opponents  = 3\n  max_trials = 200\n  duration   = \"1m\"\n}\n"
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))

	var stdout, stderr bytes.Buffer
	err := run([]string{"--config", path, "odds", "QdQh"}, &stdout, &stderr, noEnv)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "monte carlo vs 3 random")
	assert.Regexp(t, regexp.MustCompile(`trials\s+200`), stdout.String())

	env := func(key string) (string, bool) {
		if key == "HOLDEMEVAL_OPPONENTS" {
			return "5", true
		}
		return "", false
	}
	stdout.Reset()
	err = run([]string{"--config", path, "odds", "QdQh"}, &stdout, &stderr, env)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "monte carlo vs 5 random")

	bad := func(key string) (string, bool) {
		if key == "HOLDEMEVAL_SEED" {
			return "abc", true
		}
		return "", false
	}
	_, err = runCLI(t, bad, "eval", "AsKs")
	require.Error(t, err)
}

func TestCLIErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		args []string
	}{
		{"one card pocket", []string{"odds", "As"}},
		{"bad card", []string{"eval", "AsXx"}},
		{"board overlaps pocket", []string{"eval", "AsKs", "-b", "As2c3d"}},
		{"two card board", []string{"eval", "AsKs", "-b", "2c3d"}},
		{"bad color", []string{"--color", "sometimes", "eval", "AsKs"}},
		{"too many opponents", []string{"odds", "AsKs", "-n", "30"}},
		{"bad range", []string{"odds", "AsKs", "-r", "ZZ"}},
		{"unknown command", []string{"fold"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := runCLI(t, noEnv, tc.args...)
			require.Error(t, err)
		})
	}
}

func TestHelp(t *testing.T) {
	t.Parallel()
	out, err := runCLI(t, noEnv, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "holdem-odds")
	assert.Contains(t, out, "potential")
}

func TestEffectiveStrength(t *testing.T) {
	t.Parallel()
	assert.InDelta(t, 1.0, effectiveStrength(1, 0.5, 0), 1e-12)
	assert.InDelta(t, 0.5, effectiveStrength(0, 0.5, 0.3), 1e-12)
	assert.InDelta(t, 0.5*0.8+0.5*0.2, effectiveStrength(0.5, 0.2, 0.2), 1e-12)
}
