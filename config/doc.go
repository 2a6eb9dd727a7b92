// Package config loads seqkit settings from an optional seqkit.yml file,
// an optional .env file, and SEQKIT_-prefixed environment variables, in
// that order of increasing precedence.
//
// The library works without any of these; settings only gate the optional
// logging and trace layers, never iteration semantics.
package config
