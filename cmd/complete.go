package cmd

import (
	"github.com/etnz/fundoverlap"
	"github.com/etnz/fundoverlap/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/rs/zerolog"
)

// Complete answers a shell completion request and exits, if the program
// was invoked for completion. It returns otherwise.
//
// Install the completion with:
//
//	COMP_INSTALL=1 mfo
func Complete(name string) {
	funds := complete.PredictFunc(predictFunds)
	topics := complete.PredictFunc(predictTopics)

	cmd := &complete.Command{
		Flags: map[string]complete.Predictor{
			"config":       predict.Files("*.toml"),
			"funds-file":   predict.Files("*"),
			"funds-path":   predict.Something,
			"funds-format": predict.Set{string(fundoverlap.FormatJSON), string(fundoverlap.FormatYAML)},
			"v":            predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"run": {
				Flags: map[string]complete.Predictor{
					"json":    predict.Nothing,
					"summary": predict.Nothing,
				},
				Args: predict.Files("*"),
			},
			"funds": {
				Flags: map[string]complete.Predictor{
					"f": funds,
				},
			},
			"matrix":   {Args: funds},
			"topic":    {Args: topics},
			"help":     {},
			"flags":    {},
			"commands": {},
		},
	}
	cmd.Complete(name)
}

// predictFunds predicts the fund names of the configured dataset.
// Flags are not parsed yet, so only the configuration file and the
// environment are taken into account.
func predictFunds(prefix string) []string {
	cfg, err := LoadConfig(*configFile)
	if err != nil {
		return nil
	}
	return fundNames(fundoverlap.LoadFunds(cfg.FundsFile, cfg.DecodeOptions(), zerolog.Nop()))
}

// fundNames returns the names of all funds in store.
func fundNames(store fundoverlap.FundStore) []string {
	var names []string
	for _, f := range store.All() {
		names = append(names, f.Name())
	}
	return names
}

func predictTopics(prefix string) []string {
	topics, err := docs.GetAllTopics()
	if err != nil {
		return nil
	}
	return append(topics, "readme")
}
