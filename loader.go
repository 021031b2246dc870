package fundoverlap

import (
	"os"

	"github.com/rs/zerolog"
)

// LoadFunds loads the dataset file at path.
//
// It never fails: a missing or malformed file is logged, and an empty store
// is returned, where every lookup simply finds nothing. Use Funds.Loaded to
// tell the difference.
//
// The format is inferred from the file extension unless set in opts.
func LoadFunds(path string, opts DecodeOptions, log zerolog.Logger) *Funds {
	log = log.With().Str("component", "funds_loader").Str("path", path).Logger()

	f, err := os.Open(path)
	if err != nil {
		log.Error().Err(err).Msg("cannot open funds file")
		return NewFunds()
	}
	defer f.Close()

	if opts.Format == "" {
		opts.Format = FormatOf(path)
	}
	funds, err := DecodeFunds(f, opts, log)
	if err != nil {
		log.Error().Err(err).Msg("cannot load funds file")
		return NewFunds()
	}
	return funds
}
