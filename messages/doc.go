package messages

// Package messages defines the typed, immutable, JSON-serializable objects a
// certificate-management client exchanges with an issuing authority:
// registration, authorization, challenge, revocation, and structured error
// documents.
//
// Every message type exposes ToJSON (full serialization: every declared key,
// used for hashing and round-trip), ToPartialJSON (outbound form omitting
// fields at their default), and a XxxFromJSON constructor that validates a
// JSON-compatible mapping field by field before assembling a value. Equality
// and hashing go through jsonobj.Equal and jsonobj.Fingerprint over the full
// serialization.
//
// All values here are immutable in use: construction fixes every field, and
// the With* helpers return modified copies.
