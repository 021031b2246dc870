// Package fundoverlap provides the types and functions to compare mutual
// funds by the stocks they hold. It is designed to be driven by a stream of
// text commands, one per line, against a dataset of funds loaded once.
//
// The core functionalities include:
//   - Fund Store: an immutable set of funds, decoded from a JSON or YAML
//     document.
//   - Overlay: stock additions recorded at runtime and merged on lookup,
//     leaving the base dataset untouched.
//   - Overlap Engine: a symmetric percentage of shared stocks between two
//     funds.
//   - Portfolio: the ordered list of fund names currently held.
//   - Command Pipeline: parsing, dispatching and executing command lines,
//     one Result per line, a failing line never stopping the batch.
//
// This package serves as the foundational logic for the `mfo` command-line
// tool.
package fundoverlap
