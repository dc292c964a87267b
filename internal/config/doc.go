// Package config provides configuration loading for the ldapdn tool.
//
// # Configuration File
//
// Configuration is YAML:
//
//	directory:
//	  baseDN: "ou=users,dc=example,dc=com"
//
//	logging:
//	  level: info          # debug, info, warn, error
//	  format: text         # text, json
//	  output: stderr       # stdout, stderr, or a file path
//
//	output:
//	  format: table        # text, json, yaml, table
//
// The base DN is stored already escaped and is validated when loaded.
//
// # Environment Variables
//
// ${VAR} and ${VAR:-default} are substituted before parsing:
//
//	directory:
//	  baseDN: "${LDAP_BASE_DN:-dc=example,dc=com}"
//
// ApplyEnvOverrides then applies these variables on top of the file:
//
//	LDAPDN_BASE_DN         directory.baseDN
//	LDAPDN_LOG_LEVEL       logging.level
//	LDAPDN_LOG_FORMAT      logging.format
//	LDAPDN_OUTPUT_FORMAT   output.format
package config
