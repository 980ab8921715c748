// Package output renders command results.
//
// Every command produces a Report: a titled table plus an optional payload
// for machine consumers. A Renderer turns reports into one of the output
// formats:
//
//   - term: styled title and rounded table, for interactive terminals
//   - text: plain aligned columns, for pipes and NO_COLOR
//   - table: bordered table without colors
//   - json: the report payload, indented
//
// FormatAuto picks term or text from the terminal capabilities.
package output
