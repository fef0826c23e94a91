// Package sim provides the attribute framework at the core of the netsim
// discrete-event network simulator.
//
// # Reading Guide
//
// Start with these three files to understand the framework:
//   - value.go: the Value / Checker / Accessor capability interfaces
//   - pair.go: the composite PairValue and PairChecker built from two components
//   - attribute.go: attribute descriptors and by-name get/set on host objects
//
// # Architecture
//
// The sim package defines the capability interfaces, the component value
// library (integer, double, string, boolean, time) and the composite pair
// machinery; subsystems that declare attributes live in sub-packages:
//   - sim/mobility/: mobility models composed hierarchically
//   - sim/cid/: connection-identifier allocation
//   - sim/apps/: UDP client/server application shells and helpers
//
// # Key Interfaces
//
// The extension points are small interfaces:
//   - Value: type-erased holder of one attribute's content, copyable and
//     text-serializable
//   - Checker: validates candidate text and materializes a new Value from
//     accepted text
//   - Accessor: binds an attribute's get/set semantics to a host object
//   - Component[S]: constraint a concrete value type satisfies to take part
//     in a PairValue
//
// Checkers are built once at registration time, then shared read-only across
// every value and attribute descriptor of the same type; values are owned
// exclusively by their attribute. The whole framework is single-threaded and
// synchronous: every operation returns in bounded time and failures surface
// as boolean or error returns, never panics across the package boundary.
package sim
