// Package valo is your in-memory toolkit for building immutable value
// objects — instances identified purely by their field values, validated
// against declared invariants at construction time, and never mutable
// afterwards.
//
// 🚀 What is valo?
//
//	A small, strict library that brings together:
//		• Declared types: ordered fields with optional defaults, explicit data — no reflection over constructors
//		• A single construction pipeline: bind → freeze → validate → ready
//		• Immutability enforcement: frozen mappings & tuples, no setters, no thaw
//		• Invariants: Go predicates or expr-language expressions, all must hold
//		• Structural identity: Equal, deterministic String, equal-instances-hash-equally
//
// ✨ Why choose valo?
//
//   - Fail-fast guarantees – no partially built object ever escapes a constructor
//   - Deterministic output – frozen containers render and hash in stable order
//   - Concurrency for free – a Ready instance needs no synchronization to read
//   - Declarative option – declare whole type catalogs in YAML via the schema package
//
// Everything is organized under four subpackages:
//
//	vo/     — fundamental Type, Instance, Invariant and the construction pipeline
//	freeze/ — frozen Map and immutable Tuple container variants
//	voexpr/ — invariants written in the expr expression language
//	schema/ — YAML documents → declared value-object types
//
// Quick taste:
//
//	money := vo.MustType("Money",
//	    vo.WithField("amount"),
//	    vo.WithDefault("currency", "USD"),
//	    vo.WithInvariant(voexpr.MustInvariant("amount >= 0")),
//	)
//	m, err := money.New(vo.Args{10}, vo.KW{"currency": "EUR"})
//	// m.String() == "Money(amount=10, currency=EUR)"
//
// Dive into the per-package docs for contracts, error sentinels and
// complexity notes.
//
//	go get github.com/katalvlaran/valo
package valo
