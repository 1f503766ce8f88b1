// Package textio is the text boundary of the engine: it turns user-entered
// tokens and matrix literals into scalars and matrices, and renders results
// back as fixed-width text.
//
// Parsing:
//   - Tokens are NFKC-normalized first, so full-width digits, the Unicode
//     minus sign and vulgar fractions such as "½" are accepted.
//   - Exact mode accepts "n", "n/d" and finite decimals; floating mode
//     accepts a single decimal token and rejects fractions.
//   - Matrix literals separate rows with ';' or newlines and cells with
//     whitespace or ','. Square brackets are ignored.
//
// Display:
//   - Each row renders as "  [ c1  c2 ]", cells right-aligned in 8 columns
//     (exact text) or 10 columns with 4 decimals (floating).
//
// Sessions:
//   - LoadSession reads a YAML file naming matrices and a vector so that a
//     sequence of commands can share inputs.
package textio
