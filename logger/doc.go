// Package logger provides structured logging for launchkit built on
// rs/zerolog. The bootstrap supervisor writes its progress lines to
// stdout by default; console format keeps them human-readable while
// json format is available for log shippers.
package logger
