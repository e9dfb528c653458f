// Package cli provides the command-line interface of polyglot. It parses
// flags, merges them over the environment configuration and wires the
// dictionary storage, translators and console into cobra commands.
package cli
