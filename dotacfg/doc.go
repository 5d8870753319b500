// Package dotacfg binds learner.Config to a goflags.FlagSet, the way
// projectdiscovery-alterx's runner package binds its Options. It is not
// part of the core learning algorithm (spec §1 scopes command-line front
// ends out); it exists so a caller wiring this module into a CLI doesn't
// have to hand-roll flag parsing for the loop's tunables.
package dotacfg
