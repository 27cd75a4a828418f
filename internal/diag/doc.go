// Package diag defines the diagnostic model shared by every compiler phase.
//
// Diagnostic is the central record: a Severity, a Code, a human message, a
// primary source.Span, optional Notes for secondary context, and optional
// Fixes describing how to repair the problem.
//
// Severity ranks Note < Remark < Warning < Error < Fatal. Producers emit
// diagnostics through a Reporter rather than constructing a Diagnostic
// directly, so they stay decoupled from how diagnostics are collected and
// rendered. The lexer and parser build a ReportBuilder (via NewReportBuilder
// or the ReportError/ReportWarning/ReportRemark/ReportNote/ReportFatal
// shortcuts, returned as the InFlightDiagnostic alias when obtained from
// DiagnosticEngine.Diagnose), chain WithNote/WithFixSuggestion as needed,
// and finish with Emit or Cancel. BagReporter collects diagnostics into a
// Bag, which supports sorting, deduplication, filtering and bulk
// transformation for downstream consumers.
//
// Fix is intentionally data-only: Edits holds concrete TextEdits, or Thunk
// defers construction until MaterializeFixes is called with a
// FixBuildContext, for fixes that are too expensive to build eagerly for
// every diagnostic.
//
// A Consumer receives every diagnostic an engine reports, alongside the
// FileSet needed to resolve its Span; State tracks per-code ignore rules
// and the sticky "any error seen" flag. internal/diagfmt's ConsoleConsumer
// renders each Diagnostic as text through diagfmt.Pretty and is a Consumer
// itself.
// internal/fix materializes and applies Fix edits to source files.
// internal/driver wires a Bag and a consumer list per run and passes
// diagnostics up to the caller.
package diag
