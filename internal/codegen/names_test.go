package codegen

import "testing"

func TestDartName(t *testing.T) {
	tests := []struct {
		qualified string
		want      string
	}{
		{"foo", "foo"},
		{"Foo", "Foo"},
		{"$special", "$special"},
		{"ns.point", "NsPoint"},
		{"ns.httpClient", "NsHttpClient"},
		{"a.b.c", "ABC"},
		{"weird-name", "weird_name"},
		{"", "_"},
	}
	for _, tt := range tests {
		if got := DartName(tt.qualified); got != tt.want {
			t.Errorf("DartName(%q) = %q, want %q", tt.qualified, got, tt.want)
		}
	}
}

func TestLibraryName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"dom.d.ts", "dom"},
		{"/some/dir/jquery.d.ts", "jquery"},
		{"lib/types.ts", "types"},
		{"3d-math.d.ts", "_3d_math"},
		{"weird name.d.ts", "weird_name"},
		{".d.ts", "bindings"},
	}
	for _, tt := range tests {
		if got := LibraryName(tt.path); got != tt.want {
			t.Errorf("LibraryName(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestWireName(t *testing.T) {
	tests := []struct {
		qualified string
		want      string
	}{
		{"a", "a"},
		{"ns.point", "ns.point"},
		{`jquery."fn"`, "jquery.fn"},
		{"'quoted'", "quoted"},
	}
	for _, tt := range tests {
		if got := WireName(tt.qualified); got != tt.want {
			t.Errorf("WireName(%q) = %q, want %q", tt.qualified, got, tt.want)
		}
	}
}
