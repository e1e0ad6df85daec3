package girkit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Golden test format: one .golden.json summary per .gir fixture.
type goldenNamespace struct {
	Name          string        `json:"name"`
	Version       string        `json:"version"`
	SharedLibrary string        `json:"sharedLibrary"`
	Includes      []string      `json:"includes,omitempty"`
	Classes       []goldenClass `json:"classes,omitempty"`
	Interfaces    []goldenIface `json:"interfaces,omitempty"`
	Records       []string      `json:"records,omitempty"`
	Enums         []string      `json:"enums,omitempty"`
	Flags         []string      `json:"flags,omitempty"`
	Callbacks     []string      `json:"callbacks,omitempty"`
	Functions     []string      `json:"functions,omitempty"`
	Constants     []string      `json:"constants,omitempty"`
}

type goldenClass struct {
	Name       string   `json:"name"`
	Parent     string   `json:"parent,omitempty"`
	Abstract   bool     `json:"abstract,omitempty"`
	Implements []string `json:"implements,omitempty"`
	Methods    []string `json:"methods,omitempty"`
	Properties []string `json:"properties,omitempty"`
	Signals    []string `json:"signals,omitempty"`
}

type goldenIface struct {
	Name          string   `json:"name"`
	Prerequisites []string `json:"prerequisites,omitempty"`
	Methods       []string `json:"methods,omitempty"`
}

func summarize(ns *Namespace) goldenNamespace {
	out := goldenNamespace{
		Name:          ns.Name,
		Version:       ns.Version,
		SharedLibrary: ns.SharedLibrary,
	}
	for _, inc := range ns.Includes {
		out.Includes = append(out.Includes, inc.Name+"-"+inc.Version)
	}
	for _, c := range ns.Classes {
		gc := goldenClass{
			Name:       c.QualifiedName,
			Parent:     c.Parent,
			Abstract:   c.Abstract,
			Implements: c.Interfaces,
		}
		for _, m := range c.Methods {
			gc.Methods = append(gc.Methods, m.Name)
		}
		for _, p := range c.Properties {
			gc.Properties = append(gc.Properties, p.Name)
		}
		for _, s := range c.Signals {
			gc.Signals = append(gc.Signals, s.Name)
		}
		out.Classes = append(out.Classes, gc)
	}
	for _, i := range ns.Interfaces {
		gi := goldenIface{Name: i.QualifiedName, Prerequisites: i.Prerequisites}
		for _, m := range i.Methods {
			gi.Methods = append(gi.Methods, m.Name)
		}
		out.Interfaces = append(out.Interfaces, gi)
	}
	for _, r := range ns.Records {
		out.Records = append(out.Records, r.QualifiedName)
	}
	for _, e := range ns.Enums {
		out.Enums = append(out.Enums, e.QualifiedName)
	}
	for _, f := range ns.Flags {
		out.Flags = append(out.Flags, f.QualifiedName)
	}
	for _, cb := range ns.Callbacks {
		out.Callbacks = append(out.Callbacks, cb.QualifiedName)
	}
	for _, fn := range ns.Functions {
		out.Functions = append(out.Functions, fn.QualifiedName)
	}
	for _, c := range ns.Constants {
		out.Constants = append(out.Constants, c.QualifiedName)
	}
	return out
}

// TestGolden parses every .gir fixture under testdata/ and compares its
// normalized summary with the sibling .golden.json file.
func TestGolden(t *testing.T) {
	entries, err := os.ReadDir("testdata")
	require.NoError(t, err)

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".gir") {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ".gir")
		t.Run(name, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join("testdata", name+".gir"))
			require.NoError(t, err)
			goldenData, err := os.ReadFile(filepath.Join("testdata", name+".golden.json"))
			require.NoError(t, err, "missing golden file for %s", name)

			var want goldenNamespace
			require.NoError(t, json.Unmarshal(goldenData, &want))

			ns, err := Parse(data)
			require.NoError(t, err)
			assert.Equal(t, want, summarize(ns))
		})
	}
}

// TestFixture_DeepShape spot-checks details the summary omits: container
// shapes, accessor overrides, and the vtable back-reference.
func TestFixture_DeepShape(t *testing.T) {
	t.Parallel()
	data, err := os.ReadFile(filepath.Join("testdata", "Demo-1.0.gir"))
	require.NoError(t, err)

	repo, err := ParseRepository(data)
	require.NoError(t, err)

	widget := repo.ResolveClass("Demo.Widget")
	require.NotNil(t, widget)
	var style *Function
	for i := range widget.Methods {
		if widget.Methods[i].Name == "get_style_properties" {
			style = &widget.Methods[i]
		}
	}
	require.NotNil(t, style)
	assert.Equal(t, ContainerTable, style.ReturnType.Container)
	require.Len(t, style.ReturnType.TypeParams, 2)
	assert.Equal(t, "GObject.Value", style.ReturnType.Elem.Name)

	button := repo.ResolveClass("Demo.Button")
	require.NotNil(t, button)
	label := button.Properties[0]
	assert.Equal(t, "get_label", label.Getter)
	assert.Equal(t, "set_label_v2", label.Setter, "annotation overrides direct attribute")

	vtable := repo.ResolveRecord("Demo.WidgetClass")
	require.NotNil(t, vtable)
	assert.Equal(t, "Demo.Widget", vtable.GTypeStructFor)
	assert.True(t, vtable.Disguised)

	orientable := repo.ResolveInterface("Demo.Orientable")
	require.NotNil(t, orientable)
	assert.True(t, orientable.Requires("Demo.Actionable"))
	assert.True(t, button.ImplementsInterface("Demo.Actionable"))
}
