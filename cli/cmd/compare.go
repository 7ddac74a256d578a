package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/repr"
	"github.com/gofrs/uuid"
	"github.com/neonfmt/neon"
	"github.com/spf13/cobra"
)

var (
	compareInput string
	compareDiff  bool

	compareCmd = &cobra.Command{
		Use:   "compare",
		Short: "compare Readable vs Compact NEON encodings of a JSON document",
		RunE:  runCompare,
	}
)

func init() {
	compareCmd.Flags().StringVarP(&compareInput, "input", "i", "-", "input JSON file (default stdin)")
	compareCmd.Flags().BoolVar(&compareDiff, "diff", false, "on round-trip mismatch, write a scratch file with the decoded value's repr for external diffing")
}

func runCompare(c *cobra.Command, args []string) error {
	data, err := readInput(compareInput)
	if err != nil {
		return err
	}

	v, err := neon.FromJSON(data)
	if err != nil {
		return err
	}

	readableOpts := neon.DefaultEncodeOptions()
	readableOpts.Mode = neon.Readable
	readableEnc := neon.NewEncoder(readableOpts)
	if _, err := readableEnc.Encode(v); err != nil {
		return err
	}

	compactEnc := neon.NewEncoder(neon.CompactEncodeOptions())
	compactText, err := compactEnc.Encode(v)
	if err != nil {
		return err
	}

	rs, cs := readableEnc.Stats(), compactEnc.Stats()
	fmt.Printf("json bytes:     %d\n", len(data))
	fmt.Printf("readable bytes: %d (%.1f%% of json)\n", rs.OutputSize, 100*float64(rs.OutputSize)/float64(len(data)))
	fmt.Printf("compact bytes:  %d (%.1f%% of json, %.1f%% savings)\n", cs.OutputSize, 100*float64(cs.OutputSize)/float64(len(data)), cs.SavingsPercent)
	fmt.Printf("json tokens ~%d, compact tokens ~%d\n", cs.InputTokens, cs.OutputTokens)

	decoded, err := neon.Decode(compactText)
	if err != nil {
		return err
	}
	if !neon.Equal(v, decoded) {
		fmt.Println("WARNING: decode(encode(v)) != v")
		fmt.Println(repr.String(decoded, repr.Indent("  ")))
		if compareDiff {
			path, werr := writeScratchRepr(decoded)
			if werr != nil {
				return werr
			}
			fmt.Printf("wrote decoded repr to %s for diffing\n", path)
		}
	}

	return nil
}

func writeScratchRepr(v neon.Value) (string, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return "", err
	}
	path := filepath.Join(os.TempDir(), fmt.Sprintf("neon-compare-%s.repr", id.String()))
	return path, os.WriteFile(path, []byte(repr.String(v, repr.Indent("  "))), 0o644)
}
