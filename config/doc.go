// Package config resolves launchkit configuration from an optional
// config.yml, an optional .env file, and the process environment.
//
// The bind port is deliberately different from everything else: it has no
// default, because the hosting environment is authoritative for network
// binding. Every other knob carries a sensible default and exists to make
// the supervisor deployable across images without rebuilds.
package config
