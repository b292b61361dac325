// Package component runs startup and shutdown of lifecycle-managed pieces in
// a fixed order.
//
// Components are started in registration order and stopped in reverse.
// Binding is the component that performs the single Set of a deferred
// global during startup, so globals are installed before any component
// registered after it starts using them.
//
// # Interfaces
//
//   - Component: Core lifecycle interface (Start/Stop/Health)
//   - Binding: installs a global.Var value on Start
package component
