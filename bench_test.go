package girkit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func BenchmarkParse(b *testing.B) {
	data, err := os.ReadFile(filepath.Join("testdata", "Demo-1.0.gir"))
	require.NoError(b, err)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Parse(data); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRelationshipQueries(b *testing.B) {
	data, err := os.ReadFile(filepath.Join("testdata", "Demo-1.0.gir"))
	require.NoError(b, err)
	repo, err := ParseRepository(data)
	require.NoError(b, err)
	button := repo.ResolveClass("Demo.Button")
	require.NotNil(b, button)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		button.IsSubclassOf("Demo.Widget")
		button.ImplementsInterface("Demo.Actionable")
		button.InheritanceChain()
		button.AllMethods()
	}
}
