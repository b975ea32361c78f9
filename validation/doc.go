// Package validation wraps go-playground/validator for struct-tag based
// configuration validation with readable error messages.
package validation
