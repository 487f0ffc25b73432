package fsmgen

// Version is the release of the generator, reported by the CLI and servers.
const Version = "1.0.1"
