package cmd

import (
	"fmt"

	"github.com/alecthomas/repr"
	"github.com/neonfmt/neon"
	"github.com/spf13/cobra"
)

var (
	infoInput    string
	infoDetailed bool

	infoCmd = &cobra.Command{
		Use:   "info",
		Short: "report Stats for a NEON or JSON document",
		RunE:  runInfo,
	}
)

func init() {
	infoCmd.Flags().StringVarP(&infoInput, "input", "i", "-", "input file (default stdin); NEON unless --json")
	infoCmd.Flags().Bool("json", false, "treat input as JSON instead of NEON")
	infoCmd.Flags().BoolVarP(&infoDetailed, "detailed", "d", false, "also pretty-print the decoded value tree")
}

func runInfo(c *cobra.Command, args []string) error {
	asJSON, _ := c.Flags().GetBool("json")

	data, err := readInput(infoInput)
	if err != nil {
		return err
	}

	var v neon.Value
	if asJSON {
		v, err = neon.FromJSON(data)
		if err != nil {
			return err
		}
		enc := neon.NewEncoder(neon.CompactEncodeOptions())
		if _, err := enc.Encode(v); err != nil {
			return err
		}
		printStatsTable(enc.Stats())
	} else {
		_, opts, lerr := LoadConfig()
		if lerr != nil {
			return lerr
		}
		dec := neon.NewDecoder(opts)
		v, err = dec.Decode(string(data))
		if err != nil {
			return err
		}
		printStatsTable(dec.Stats())
	}

	if infoDetailed {
		fmt.Println(repr.String(v, repr.Indent("  ")))
	}
	return nil
}

func printStatsTable(s neon.Stats) {
	fmt.Printf("input_size:        %d\n", s.InputSize)
	fmt.Printf("output_size:       %d\n", s.OutputSize)
	fmt.Printf("compression_ratio: %.3f\n", s.CompressionRatio)
	fmt.Printf("savings_percent:   %.1f%%\n", s.SavingsPercent)
	fmt.Printf("input_tokens:      %d\n", s.InputTokens)
	fmt.Printf("output_tokens:     %d\n", s.OutputTokens)
}
