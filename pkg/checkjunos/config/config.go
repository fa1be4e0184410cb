// Package config provides the invocation configuration for check_junos: the
// target device parameters handed to the SNMP transport and the optional
// YAML threshold-override file.
package config

// ProbeConfig is the fully-resolved configuration for the single target
// device of a check invocation. It is built once by the CLI layer, resolved
// with fallbacks, and passed read-only into every check routine. There is no
// process-wide mutable state.
type ProbeConfig struct {
	// Target is the management hostname or IP address of the device.
	Target string

	// Port is the UDP port for SNMP requests (default 161).
	Port int

	// Version is the SNMP version: "1", "2c", or "3".
	Version string

	// Community is the community string (v1/v2c only).
	Community string

	// V3 holds the SNMPv3 security parameters (v3 only).
	V3 *V3Credentials

	// Timeout is the per-request timeout in milliseconds (default 3000).
	// Expiry is treated identically to any other transport failure.
	Timeout int

	// Retries is the number of transport-level retry attempts on timeout
	// (default 2). The check logic itself never retries a failed poll.
	Retries int
}

// V3Credentials holds a single set of SNMPv3 security parameters.
type V3Credentials struct {
	// Username is the SNMPv3 security name.
	Username string `yaml:"username"`

	// AuthenticationProtocol is one of: noauth, md5, sha, sha224, sha256, sha384, sha512.
	AuthenticationProtocol string `yaml:"authentication_protocol"`

	// AuthenticationPassphrase is the passphrase for the chosen auth protocol.
	AuthenticationPassphrase string `yaml:"authentication_passphrase"`

	// PrivacyProtocol is one of: nopriv, des, aes, aes192, aes256, aes192c, aes256c.
	PrivacyProtocol string `yaml:"privacy_protocol"`

	// PrivacyPassphrase is the passphrase for the chosen privacy protocol.
	PrivacyPassphrase string `yaml:"privacy_passphrase"`
}

// Resolve fills zero-valued optional fields with hard-coded fallbacks and
// returns the resulting config. The receiver is not modified.
func (c ProbeConfig) Resolve() ProbeConfig {
	if c.Port == 0 {
		c.Port = 161
	}
	if c.Timeout == 0 {
		c.Timeout = 3000
	}
	if c.Retries == 0 {
		c.Retries = 2
	}
	if c.Version == "" {
		c.Version = "2c"
	}
	return c
}
