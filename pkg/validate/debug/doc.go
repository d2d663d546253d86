// Package debug mirrors package validate one-to-one as assertions.
//
// Built with the "debug" tag (go test -tags debug ./...) each function runs
// the matching validate check and panics with its error. Without the tag the
// functions have empty bodies and are inlined away, so assertions cost
// nothing in release builds. Enabled reports which variant was compiled.
package debug
