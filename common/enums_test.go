package common

import "testing"

func TestParseMapFmt(t *testing.T) {
	tests := []struct {
		input   string
		want    MapFmt
		wantErr bool
	}{
		{"yaml", MapFmtYaml, false},
		{"json", MapFmtJson, false},
		{"xml", 0, true},
		{"", 0, true},
	}
	for _, tc := range tests {
		got, err := ParseMapFmt(tc.input)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseMapFmt(%q) expected error", tc.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseMapFmt(%q) error = %v", tc.input, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseMapFmt(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestMapFmtExt(t *testing.T) {
	if got := MapFmtYaml.Ext(); got != ".classmap.yaml" {
		t.Errorf("MapFmtYaml.Ext() = %q", got)
	}
	if got := MapFmtJson.Ext(); got != ".classmap.json" {
		t.Errorf("MapFmtJson.Ext() = %q", got)
	}
}
