package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const data5Root = "e9e1bc4a10c502ef995ede1914b0186ed288b8dde80c8c533a0f93a96490f995"

func runForTest(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()

	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRun_buildProveVerify(t *testing.T) {
	t.Parallel()

	code, tree, stderr := runForTest(t, "build", "data1", "data2", "data3", "data4", "data5")
	require.Zerof(t, code, "stderr: %s", stderr)

	treePath := filepath.Join(t.TempDir(), "tree.json")
	require.NoError(t, os.WriteFile(treePath, []byte(tree), 0o600))

	code, root, stderr := runForTest(t, "root", "-tree", treePath)
	require.Zerof(t, code, "stderr: %s", stderr)
	require.Equal(t, data5Root, strings.TrimSpace(root))

	code, proof, stderr := runForTest(t, "proof", "-tree", treePath, "data2")
	require.Zerof(t, code, "stderr: %s", stderr)
	proof = strings.TrimSpace(proof)

	code, out, _ := runForTest(t, "verify", "-proof", proof, "-root", data5Root, "data2")
	require.Zero(t, code)
	require.Equal(t, "valid\n", out)

	code, out, _ = runForTest(t, "verify", "-proof", proof, "-root", data5Root, "data6")
	require.Equal(t, 1, code)
	require.Equal(t, "invalid\n", out)
}

func TestRun_proofMissingLeaf(t *testing.T) {
	t.Parallel()

	_, tree, _ := runForTest(t, "build", "a", "b", "c")
	treePath := filepath.Join(t.TempDir(), "tree.json")
	require.NoError(t, os.WriteFile(treePath, []byte(tree), 0o600))

	code, _, stderr := runForTest(t, "proof", "-tree", treePath, "z")
	require.Equal(t, 1, code)
	require.Contains(t, stderr, "no proof")
}

func TestRun_engines(t *testing.T) {
	t.Parallel()

	code, out, _ := runForTest(t, "engines")
	require.Zero(t, code)
	require.Contains(t, strings.Split(strings.TrimSpace(out), "\n"), "sha-256")
}

func TestRun_usage(t *testing.T) {
	t.Parallel()

	for _, args := range [][]string{
		nil,
		{"frobnicate"},
		{"build"},
		{"proof", "-tree", "x"},
		{"verify", "data2"},
		{"build", "-nope", "a"},
	} {
		code, _, _ := runForTest(t, args...)
		require.Equalf(t, 2, code, "args %q", args)
	}
}

func TestRun_buildUnknownEngine(t *testing.T) {
	t.Parallel()

	code, _, stderr := runForTest(t, "build", "-engine", "md5", "a", "b")
	require.Equal(t, 1, code)
	require.Contains(t, stderr, "invalid engine")
}
