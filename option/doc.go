// Package option models presence or absence of a value without letting nil
// leak through a chain of operations.
//
// # Overview
//
// An [Option] is either Some (holding exactly one non-absent value) or
// [None]. There is a single shared None value:
//
//	user := option.Of(lookup(id))
//	name := user.Map(func(u any) any { return u.(User).Name }).GetOrElse("guest")
//
// # Absence
//
// [Of] treats the untyped nil and nil pointers, interfaces, funcs and
// channels as absent. Zero values such as 0, false and "" are present:
//
//	option.Of(nil).IsDefined()   // false
//	option.Of(0).IsDefined()     // true
//
// # Identity
//
// Every None compares equal to [None] with ==, so callers may test
// opt == option.None directly.
package option
