// Package backend groups the concrete implementations of the gpu handle
// interfaces that frames record against.
//
// Two backends ship with sketch:
//
//   - headless: in-memory handles that record named markers instead of GPU
//     commands. Used by the test suites and useful for applications that
//     want to exercise their frame logic without a GPU.
//   - wgpu: adapters over the gogpu/wgpu hardware abstraction layer, for
//     real GPU submission.
//
// Backends are plain constructors, not a registry: the application builds
// the device and queue for the backend it wants and hands them to
// sketch.NewRawFrame or display.New. Any other implementation of the gpu
// interfaces works the same way.
package backend
