// Package subsystems owns the four mine stages driven by the mine facade.
//
// Ownership boundary:
// - stage metadata and operation catalog
// - print-only stage operations
// - single-operation dispatch and a local registry
package subsystems
