// Package finlens provides the data model and computations for analysing
// small financial CSV files: profit-and-loss statements, personal-finance
// ledgers and investment portfolios.
//
// The core functionalities include:
//   - Ingestion: parsing a CSV file into an in-memory row-set and detecting
//     which kind of financial data it contains.
//   - Metrics Engine: pure functions folding a row-set into named amounts
//     and deriving a fixed set of ratios and percentages from them.
//   - Aggregators: income/expense and holding-level summaries for
//     personal-finance and investment-portfolio data.
//
// All computations are deterministic and side-effect free; file reads and
// the narrative-generation call live at the edges (the cmd and report
// packages). This package serves as the foundational logic for the `flens`
// command-line tool.
package finlens
