package cmd

import "github.com/neonfmt/neon"

func logStats(s neon.Stats) {
	if !showStats {
		return
	}
	log.WithFields(logFieldsFor(s)).Info("stats")
}

func logFieldsFor(s neon.Stats) map[string]interface{} {
	return map[string]interface{}{
		"input_size":        s.InputSize,
		"output_size":       s.OutputSize,
		"compression_ratio": s.CompressionRatio,
		"savings_percent":   s.SavingsPercent,
		"input_tokens":      s.InputTokens,
		"output_tokens":     s.OutputTokens,
		"encode_time_ms":    s.EncodeTimeMs,
		"decode_time_ms":    s.DecodeTimeMs,
	}
}
