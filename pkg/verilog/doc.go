/*
Package verilog renders a transition table into register-transfer-level Verilog.

The generated text has three blocks, always in this order:

 1. Declarations: one parameter per user constant, one parameter per state
    carrying its encoded literal, then the state register.
 2. The state transition process: a clocked case statement with an
    if / else if chain per state in table order (first match wins).
 3. One clocked output process per distinct output signal, in order of first
    appearance in the table.

Guards and action values are opaque text and are substituted verbatim.
*/
package verilog
