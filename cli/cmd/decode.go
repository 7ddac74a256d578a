package cmd

import (
	"github.com/neonfmt/neon"
	"github.com/spf13/cobra"
)

var (
	decodeInput  string
	decodeOutput string
	decodePretty bool

	decodeCmd = &cobra.Command{
		Use:   "decode",
		Short: "decode NEON text into a JSON document",
		RunE:  runDecode,
	}
)

func init() {
	decodeCmd.Flags().StringVarP(&decodeInput, "input", "i", "-", "input NEON file (default stdin)")
	decodeCmd.Flags().StringVarP(&decodeOutput, "output", "o", "-", "output JSON file (default stdout)")
	decodeCmd.Flags().BoolVarP(&decodePretty, "pretty", "p", false, "indent the JSON output")
}

func runDecode(c *cobra.Command, args []string) error {
	_, opts, err := LoadConfig()
	if err != nil {
		return err
	}

	data, err := readInput(decodeInput)
	if err != nil {
		return err
	}

	dec := neon.NewDecoder(opts)
	v, err := dec.Decode(string(data))
	if err != nil {
		return err
	}

	indent := ""
	if decodePretty {
		indent = "  "
	}
	out, err := neon.ToJSON(v, indent)
	if err != nil {
		return err
	}

	if err := writeOutput(decodeOutput, out); err != nil {
		return err
	}
	logStats(dec.Stats())
	return nil
}
