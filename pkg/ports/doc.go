/*
Package ports defines the driven ports (interfaces) of fsmgen.

The generation pipeline itself is pure and needs no ports. These interfaces
decouple the outer surfaces (CLI, HTTP, MCP) from the places projects are kept
and from the external graph layout engine.

# Key Interfaces

  - ProjectStore: persists named projects (memory, file or Redis).
  - GraphRenderer: turns DOT text into an image (Graphviz).
*/
package ports
