// Package cryptoalg defines the contracts, algorithm tables and error kinds shared by the
// cryptographic processors: AES (CBC, GCM), RSA (OAEP, PSS), HMAC and SHA digests.
//
// The tables are closed enumerations carrying their fixed parameters (IV length, salt length,
// key sizes). They are the single source of truth for parameter selection and are never
// mutated after initialization.
package cryptoalg
