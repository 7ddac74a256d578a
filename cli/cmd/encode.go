package cmd

import (
	"github.com/neonfmt/neon"
	"github.com/spf13/cobra"
)

var (
	encodeInput      string
	encodeOutput     string
	encodeCompact    bool
	encodeAbbreviate bool
	encodePretty     bool

	encodeCmd = &cobra.Command{
		Use:   "encode",
		Short: "encode a JSON document as NEON text",
		RunE:  runEncode,
	}
)

func init() {
	encodeCmd.Flags().StringVarP(&encodeInput, "input", "i", "-", "input JSON file (default stdin)")
	encodeCmd.Flags().StringVarP(&encodeOutput, "output", "o", "-", "output NEON file (default stdout)")
	encodeCmd.Flags().BoolVarP(&encodeCompact, "compact", "c", false, "force CompactEncodeOptions regardless of config")
	encodeCmd.Flags().BoolVarP(&encodeAbbreviate, "abbreviate", "a", false, "force field-name abbreviation on")
	encodeCmd.Flags().BoolVarP(&encodePretty, "pretty", "p", false, "use Readable mode instead of Compact")
}

func runEncode(c *cobra.Command, args []string) error {
	opts, _, err := LoadConfig()
	if err != nil {
		return err
	}
	if encodeCompact {
		opts = neon.CompactEncodeOptions()
	}
	if encodeAbbreviate {
		opts.AbbreviateFields = true
	}
	if encodePretty {
		opts.Mode = neon.Readable
	}

	data, err := readInput(encodeInput)
	if err != nil {
		return err
	}

	v, err := neon.FromJSON(data)
	if err != nil {
		return err
	}

	enc := neon.NewEncoder(opts)
	out, err := enc.Encode(v)
	if err != nil {
		return err
	}

	if err := writeOutput(encodeOutput, []byte(out)); err != nil {
		return err
	}
	logStats(enc.Stats())
	return nil
}
