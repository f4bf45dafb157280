// Package inspect classifies recorded configuration calls: it decides the key
// prefix a call's pairs are emitted under and whether the call needs a module
// reference so a generic loader can resolve its method.
//
//	| Call                      | Prefix                          |
//	|---------------------------|---------------------------------|
//	| MinimumLevel.<Level>()    | minimum-level                   |
//	| MinimumLevel.Is(l)        | minimum-level                   |
//	| MinimumLevel.Override(s)  | minimum-level:override:<s>      |
//	| Enrich.WithProperty(n)    | enrich:with-property:<n>        |
//	| Enrich.<M>                | enrich:<M>                      |
//	| WriteTo.<M>               | write-to:<M>                    |
//	| AuditTo.<M>               | audit-to:<M>                    |
//	| Filter.<M>                | filter:<M>                      |
//
// A module reference is required for every method declared outside the core
// module. The built-in vocabulary of catalog.CoreModule never needs one, even
// when another module is configured as core.
package inspect
