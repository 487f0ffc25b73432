/*
Package domain contains the core data model of the FSM code generator.

It defines the rows the user edits (transitions and parameters), the encoding
schemes a generation pass can use and the persisted Project snapshot. This
package is kept pure and free of I/O; derivation (state registry, conflicts,
encoding, code generation) lives in the consuming packages.

# Key Entities

  - Transition: one row of the transition table (source, target, guard, actions).
  - Parameter: a named constant emitted verbatim as a declaration.
  - Encoding: the state encoding scheme (Binary, One-hot or Gray).
  - Project: the full editable design (tables, reset selection and scheme).
*/
package domain
