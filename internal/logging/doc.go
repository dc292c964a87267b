// Package logging provides structured logging for the ldapdn tool.
//
// # Creating a Logger
//
//	logger, err := logging.New(logging.Config{
//	    Level:  "debug",
//	    Format: "json",
//	    Output: "stderr",
//	})
//
// Tests and library callers that do not want output use:
//
//	logger := logging.NewNop()
//
// # Structured Logging
//
// Messages take alternating key-value pairs:
//
//	logger.Info("decomposed DN",
//	    "dn", `cn=Smith\, John,ou=users`,
//	    "pairs", 2,
//	)
//
// Text format, fields sorted by key:
//
//	2026-10-19T10:30:00Z [info] decomposed DN dn=cn=Smith\, John,ou=users pairs=2
//
// JSON format:
//
//	{"dn":"cn=Smith\\, John,ou=users","level":"info","msg":"decomposed DN","pairs":2,"ts":"2026-10-19T10:30:00Z"}
//
// WithFields returns a child logger that adds its fields to every entry.
// Errors and fmt.Stringer values, including dn.DN, are logged by their
// string form.
package logging
