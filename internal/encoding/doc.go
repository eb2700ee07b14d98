// Package encoding holds the reference string table encoder.
//
// Writing the format is not part of the public API. The encoder exists so tests,
// benchmarks and the demo program can produce valid and deliberately broken input.
package encoding
