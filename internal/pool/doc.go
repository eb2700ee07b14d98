// Package pool provides pooled scratch buffers for string table decoding.
package pool
