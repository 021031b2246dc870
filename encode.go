package fundoverlap

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// DefaultFundsPath is the JSONPath expression selecting the fund records in
// a dataset document.
const DefaultFundsPath = "$.funds"

// Format is a dataset document format.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat parses a format name. The empty string is a valid value
// meaning "infer from the file name".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "":
		return "", nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown dataset format: %q", s)
	}
}

// FormatOf returns the format of a file based on its extension.
// Anything but .yaml and .yml is JSON.
func FormatOf(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// DecodeOptions configures DecodeFunds.
type DecodeOptions struct {
	Format Format // defaults to JSON
	Path   string // JSONPath to the fund records, defaults to DefaultFundsPath
}

// DecodeFunds reads a dataset document and returns its funds.
//
// The document holds an array of fund records, selected with opts.Path:
//
//	{"funds": [ {"name": "ICICI_PRU_NIFTY_NEXT_50_INDEX", "stocks": ["INDRAPRASTHA GAS LIMITED", ...]}, ...]}
//
// Records without a name, or not being objects, are skipped with a warning.
// A missing or invalid fund array results in an empty, not loaded, store.
// Only a document that cannot be decoded at all is an error.
func DecodeFunds(r io.Reader, opts DecodeOptions, log zerolog.Logger) (*Funds, error) {
	log = log.With().Str("component", "funds_decoder").Logger()

	// Decode the document into generic values, as expected by jsonpath.
	var doc any
	switch opts.Format {
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("cannot decode yaml dataset: %w", err)
		}
	case FormatJSON, "":
		dec := json.NewDecoder(r)
		dec.UseNumber() // keep numeric stock identifiers verbatim
		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("cannot decode json dataset: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown dataset format: %q", opts.Format)
	}

	path := opts.Path
	if path == "" {
		path = DefaultFundsPath
	}

	s := NewFunds()
	jval, err := jsonpath.Get(path, doc)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("invalid dataset structure: missing funds array")
		return s, nil
	}
	records, ok := jval.([]any)
	if !ok {
		log.Warn().Str("path", path).Msg("invalid dataset structure: funds is not an array")
		return s, nil
	}

	for i, rec := range records {
		f, err := decodeFund(rec)
		if err != nil {
			log.Warn().Err(err).Int("index", i).Msg("skipping fund record")
			continue
		}
		if s.add(f) {
			log.Warn().Str("fund", f.Name()).Int("index", i).Msg("replacing duplicated fund record")
		}
	}
	s.loaded = true
	log.Info().Int("funds", s.Len()).Msg("funds loaded")
	return s, nil
}

// decodeFund builds a Fund from a generic fund record.
func decodeFund(rec any) (*Fund, error) {
	obj, ok := rec.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("fund record must be an object, got %T", rec)
	}
	name, _ := scalarText(obj["name"])

	var stocks []string
	if list, ok := obj["stocks"].([]any); ok {
		for _, v := range list {
			if s, ok := scalarText(v); ok && s != "" {
				stocks = append(stocks, s)
			}
		}
	}
	f, err := NewFund(name, stocks...)
	if err != nil {
		return nil, fmt.Errorf("invalid fund record: %w", err)
	}
	return f, nil
}

// scalarText returns the textual value of a scalar decoded from json or yaml.
func scalarText(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case json.Number:
		return t.String(), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case int:
		return strconv.Itoa(t), true
	case bool:
		return strconv.FormatBool(t), true
	default:
		return "", false
	}
}

// WriteResults prints results as plain text: the message of each failure,
// or the output lines of each success.
func WriteResults(w io.Writer, results []Result) error {
	for _, r := range results {
		lines := r.Outputs()
		if !r.OK() {
			lines = []string{r.Err()}
		}
		for _, l := range lines {
			if _, err := fmt.Fprintln(w, l); err != nil {
				return err
			}
		}
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface for Result.
func (r Result) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("ok", r.OK())
	w.Optional("outputs", r.outputs)
	w.Optional("error", r.err)
	return w.MarshalJSON()
}

// EncodeResults writes one JSON object per command line, in JSONL format.
// lines and results must have the same length.
func EncodeResults(w io.Writer, lines []string, results []Result) error {
	if len(lines) != len(results) {
		return fmt.Errorf("cannot encode %d results for %d lines", len(results), len(lines))
	}
	for i, r := range results {
		var obj jsonObjectWriter
		obj.Append("line", i+1)
		obj.Append("input", lines[i])
		obj.EmbedFrom(r)
		data, err := obj.MarshalJSON()
		if err != nil {
			return fmt.Errorf("failed to marshal result of line %d: %w", i+1, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
	}
	return nil
}
