// Package emitter assembles the ordered key/value pairs for a sequence of
// recorded configuration calls.
//
// Calls are processed in order. Before the first call of a module outside the
// core, a single "using:<module>" pair naming that module is emitted; later
// calls of the same module reuse it. Each call then contributes:
//
//   - one pair under a fixed key for bare minimum levels, MinimumLevel.Is,
//     MinimumLevel.Override and Enrich.WithProperty;
//   - one "<prefix>.<parameter>" pair per bound argument, in declared
//     parameter order, for every other call;
//   - a single "<prefix>" pair with an empty value when nothing is bound.
//
// Emission is all or nothing: the first failure is returned and no pairs are.
package emitter
