package dn

import "testing"

// BenchmarkEscapePlain benchmarks escaping a value with no special characters.
func BenchmarkEscapePlain(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Escape("Example Corporation")
	}
}

// BenchmarkEscapeSpecial benchmarks escaping a value with special characters.
func BenchmarkEscapeSpecial(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Escape(`Smith, John <jsmith@example.com>; "ops"`)
	}
}

// BenchmarkNew benchmarks building a four component DN.
func BenchmarkNew(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = New("cn", "Smith, John", "ou", "users", "dc=example,dc=com")
	}
}

// BenchmarkPairs benchmarks decomposing a DN with literal and hex escapes.
func BenchmarkPairs(b *testing.B) {
	d := Wrap(`cn=Smith\, John,ou=R\26D,o=Jam\3cm\3ey,dc=example,dc=com`)
	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, _ = d.Pairs()
	}
}

// BenchmarkRDN benchmarks reading only the leading pair of a long DN.
func BenchmarkRDN(b *testing.B) {
	d := Wrap("uid=alice,ou=people,ou=engineering,ou=emea,o=example,dc=example,dc=com")
	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, _ = d.RDN()
	}
}
