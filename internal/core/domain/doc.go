// Package domain defines the core business entities for the brief client.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Turn/Transcript: The conversational exchange with the backend
//   - Citation: A source reference attached to an answer
//   - GraphElement/GraphModel: Raw and assembled semantic graph forms
//   - ConsolidationResult: The outcome of a memory consolidation job
//   - TimelineEvent: A dated event extracted from a document
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
