// Command merkletree builds Merkle trees, issues inclusion proofs,
// and verifies them from the command line.
//
// Usage:
//
//	merkletree [-v] build [-engine NAME] [-double] [-sort] [-hashed] ITEM...
//	merkletree [-v] root -tree FILE
//	merkletree [-v] proof -tree FILE [-hashed] ITEM
//	merkletree [-v] verify -proof PROOF -root HEX [-double] [-hashed] ITEM
//	merkletree engines
//
// Trees are read and written in the JSON form of [merkle.Tree.JSON].
// Items are hashed with the tree's engine unless -hashed is given,
// in which case they are hexadecimal digests.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gordian-engine/merkle"
	"github.com/gordian-engine/merkle/mhash"
	"github.com/gordian-engine/merkle/mproof"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// errUsage reports a command line problem that has already been described.
var errUsage = errors.New("usage error")

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("merkletree", flag.ContinueOnError)
	fs.SetOutput(stderr)
	verbose := fs.Bool("v", false, "log at debug level")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	lvl := slog.LevelInfo
	if *verbose {
		lvl = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: lvl}))

	if fs.NArg() == 0 {
		fmt.Fprintln(stderr, "missing command: build, root, proof, verify, or engines")
		return 2
	}

	var err error
	switch cmd, rest := fs.Arg(0), fs.Args()[1:]; cmd {
	case "build":
		err = runBuild(log, rest, stdout, stderr)
	case "root":
		err = runRoot(log, rest, stdout, stderr)
	case "proof":
		err = runProof(log, rest, stdout, stderr)
	case "verify":
		var ok bool
		ok, err = runVerify(rest, stdout, stderr)
		if err == nil && !ok {
			return 1
		}
	case "engines":
		for _, n := range merkle.Engines().Names() {
			fmt.Fprintln(stdout, n)
		}
	default:
		fmt.Fprintf(stderr, "unknown command %q\n", cmd)
		return 2
	}

	if errors.Is(err, errUsage) {
		return 2
	}
	if err != nil {
		log.Error("Command failed", "err", err)
		return 1
	}
	return 0
}

func runBuild(log *slog.Logger, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	fs.SetOutput(stderr)
	engine := fs.String("engine", merkle.DefaultOptions().Engine, "hash engine name")
	double := fs.Bool("double", false, "double hash every digest")
	sort := fs.Bool("sort", false, "sort leaves by their bytes")
	hashed := fs.Bool("hashed", false, "items are hexadecimal digests")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(stderr, "build needs at least one item")
		return errUsage
	}

	t, err := merkle.NewTree(log, merkle.TreeConfig{
		Options: merkle.Options{
			DoubleHash: *double,
			Engine:     *engine,
			Sort:       *sort,
		},
	})
	if err != nil {
		return err
	}

	items, err := decodeItems(fs.Args(), *hashed)
	if err != nil {
		return err
	}
	if _, err := t.AddLeaves(!*hashed, items...); err != nil {
		return fmt.Errorf("failed to add leaves: %w", err)
	}

	b, err := t.JSON()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, string(b))
	return err
}

func runRoot(log *slog.Logger, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("root", flag.ContinueOnError)
	fs.SetOutput(stderr)
	treePath := fs.String("tree", "", "path to tree JSON")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	t, err := loadTree(log, *treePath)
	if err != nil {
		return err
	}

	root, err := t.RootHex()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, root)
	return err
}

func runProof(log *slog.Logger, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("proof", flag.ContinueOnError)
	fs.SetOutput(stderr)
	treePath := fs.String("tree", "", "path to tree JSON")
	hashed := fs.Bool("hashed", false, "item is a hexadecimal digest")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "proof needs exactly one item")
		return errUsage
	}

	t, err := loadTree(log, *treePath)
	if err != nil {
		return err
	}

	leaf, err := leafFor(fs.Arg(0), *hashed, t.Hash)
	if err != nil {
		return err
	}

	p, ok := t.GetProof(leaf)
	if !ok {
		return fmt.Errorf("no proof for leaf %s", leaf)
	}
	_, err = fmt.Fprintln(stdout, p.String())
	return err
}

func runVerify(args []string, stdout, stderr io.Writer) (bool, error) {
	fs := flag.NewFlagSet("verify", flag.ContinueOnError)
	fs.SetOutput(stderr)
	proof := fs.String("proof", "", "proof string")
	root := fs.String("root", "", "expected root as hex")
	double := fs.Bool("double", false, "the tree double hashes")
	hashed := fs.Bool("hashed", false, "item is a hexadecimal digest")
	if err := fs.Parse(args); err != nil {
		return false, errUsage
	}
	if fs.NArg() != 1 || *proof == "" || *root == "" {
		fmt.Fprintln(stderr, "verify needs -proof, -root, and exactly one item")
		return false, errUsage
	}

	// The proof names its engine, which is needed to hash a raw item.
	p, err := merkle.ProofFrom(*proof)
	if err != nil {
		return false, err
	}
	fn, err := merkle.Engines().Resolve(p.Engine, *double)
	if err != nil {
		return false, err
	}

	leaf, err := leafFor(fs.Arg(0), *hashed, fn)
	if err != nil {
		return false, err
	}

	ok := mproof.Verify(p, leaf, strings.ToLower(*root), fn)
	if ok {
		fmt.Fprintln(stdout, "valid")
	} else {
		fmt.Fprintln(stdout, "invalid")
	}
	return ok, nil
}

func loadTree(log *slog.Logger, path string) (*merkle.Tree, error) {
	if path == "" {
		return nil, errors.New("missing -tree")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tree: %w", err)
	}
	return merkle.TreeFromJSON(log, b)
}

func decodeItems(args []string, hashed bool) ([][]byte, error) {
	out := make([][]byte, len(args))
	for i, a := range args {
		if !hashed {
			out[i] = []byte(a)
			continue
		}
		h, err := mhash.FromHex(a)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		out[i] = h
	}
	return out, nil
}

func leafFor(item string, hashed bool, fn mhash.Func) (mhash.Hash, error) {
	if hashed {
		return mhash.FromHex(item)
	}
	return fn([]byte(item)), nil
}
