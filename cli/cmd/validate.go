package cmd

import (
	"fmt"

	"github.com/neonfmt/neon"
	"github.com/smasher164/xid"
	"github.com/spf13/cobra"
)

var (
	validateInput string

	validateCmd = &cobra.Command{
		Use:   "validate",
		Short: "decode NEON text and report syntax errors and key-shape warnings",
		RunE:  runValidate,
	}
)

func init() {
	validateCmd.Flags().StringVarP(&validateInput, "input", "i", "-", "input NEON file (default stdin)")
}

func runValidate(c *cobra.Command, args []string) error {
	data, err := readInput(validateInput)
	if err != nil {
		return err
	}

	v, err := neon.Decode(string(data))
	if err != nil {
		fmt.Println("syntax error:", err)
		return err
	}

	warnings := lintKeyShapes(v, "")
	for _, w := range warnings {
		fmt.Println("warning:", w)
	}
	fmt.Printf("ok, %d key-shape warning(s)\n", len(warnings))
	return nil
}

// lintKeyShapes walks v and flags object keys that are not
// identifier-shaped (don't start with a Unicode identifier-start rune or
// underscore, per xid.Start/xid.Continue) — such keys won't abbreviate
// or round trip through the unquoted-string form cleanly.
func lintKeyShapes(v neon.Value, path string) []string {
	var warnings []string
	switch v.Kind() {
	case neon.KindObject:
		for _, k := range v.Obj().Keys() {
			if !isIdentifierShaped(k) {
				warnings = append(warnings, fmt.Sprintf("%s: key %q is not identifier-shaped", path, k))
			}
			val, _ := v.Obj().Get(k)
			warnings = append(warnings, lintKeyShapes(val, path+"."+k)...)
		}
	case neon.KindArray:
		for i, el := range v.Elements() {
			warnings = append(warnings, lintKeyShapes(el, fmt.Sprintf("%s[%d]", path, i))...)
		}
	}
	return warnings
}

func isIdentifierShaped(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' {
			continue
		}
		if i == 0 {
			if !xid.Start(r) {
				return false
			}
		} else if !xid.Continue(r) {
			return false
		}
	}
	return true
}
