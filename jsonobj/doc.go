package jsonobj

// Package jsonobj provides:
//
// - Immutable field tables (Object/Field) with per-field encode/decode hooks,
//   defaults, required-ness, and an omit-if-default policy for partial output
// - A stable error model via Issues (JSON Pointer, code, message) wrapped in
//   DecodeError/EncodeError
// - Constant registries interning whitelisted wire tokens to canonical values
// - Canonical serialization, fingerprinting, and structural equality over
//   full serializations
// - JSON and YAML byte sources producing the map[string]any form the message
//   decoders consume
//
// Design policy:
// - Field tables and registries are built once at package init and never
//   mutated afterwards; everything here is pure computation safe for
//   concurrent use.
// - Unknown keys are ignored by default for forward compatibility; strict
//   rejection is available per call via DecodeOpt.
//
// Typical usage:
//
//	vals, err := table.Decode(m)
//	wire, err := table.Encode(vals)
//	partial, err := table.EncodePartial(vals)
