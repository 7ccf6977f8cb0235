package cryptoalg

import "fmt"

// Algorithm names a provider algorithm a key can be imported under.
type Algorithm string

// Provider algorithms
const (
	AlgorithmAES     Algorithm = "AES"
	AlgorithmHMAC    Algorithm = "HMAC"
	AlgorithmRSAOAEP Algorithm = "RSA-OAEP"
	AlgorithmRSAPSS  Algorithm = "RSA-PSS"
)

// Usage is the single operation a key handle is imported for.
type Usage int

// Key usages
const (
	UsageEncrypt Usage = iota + 1
	UsageDecrypt
	UsageSign
	UsageVerify
)

var usageNames = map[Usage]string{
	UsageEncrypt: "encrypt",
	UsageDecrypt: "decrypt",
	UsageSign:    "sign",
	UsageVerify:  "verify",
}

// String returns the lower-case usage name.
func (u Usage) String() string {
	if n, ok := usageNames[u]; ok {
		return n
	}
	return fmt.Sprintf("Usage(%d)", int(u))
}

// RequiresPrivateKey reports whether the usage needs PKCS8 private key material.
func (u Usage) RequiresPrivateKey() bool {
	return u == UsageDecrypt || u == UsageSign
}

// Allows reports whether a key imported under alg may be scoped to usage u.
func (a Algorithm) Allows(u Usage) bool {
	switch a {
	case AlgorithmRSAOAEP, AlgorithmAES:
		return u == UsageEncrypt || u == UsageDecrypt
	case AlgorithmRSAPSS, AlgorithmHMAC:
		return u == UsageSign || u == UsageVerify
	default:
		return false
	}
}
