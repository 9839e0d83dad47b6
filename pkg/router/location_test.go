package router

import (
	"reflect"
	"testing"
)

func TestParseLocation(t *testing.T) {
	tests := []struct {
		name      string
		location  string
		wantPath  string
		wantExtra []string
		wantQuery map[string][]string
	}{
		{"empty", "", "/", nil, nil},
		{"root", "#/", "/", nil, nil},
		{"plain", "#/dashboard", "/dashboard", nil, nil},
		{"no hash", "/dashboard", "/dashboard", nil, nil},
		{"trailing slash", "#/patients/", "/patients", nil, nil},
		{"extra segment", "#/patients/7", "/patients", []string{"7"}, nil},
		{"deep extra", "#/patients/7/vitals", "/patients", []string{"7", "vitals"}, nil},
		{"query", "#/patients?patientId=7", "/patients", nil, map[string][]string{"patientId": {"7"}}},
		{"extra and query", "#/patients/7?tab=vitals&page=2", "/patients", []string{"7"},
			map[string][]string{"tab": {"vitals"}, "page": {"2"}}},
		{"double slash", "#//patients//7", "/patients", []string{"7"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := parseLocation(tt.location)
			if m.Path != tt.wantPath {
				t.Errorf("Path = %q, want %q", m.Path, tt.wantPath)
			}
			if len(m.Extra) != len(tt.wantExtra) || (len(tt.wantExtra) > 0 && !reflect.DeepEqual(m.Extra, tt.wantExtra)) {
				t.Errorf("Extra = %v, want %v", m.Extra, tt.wantExtra)
			}
			for key, want := range tt.wantQuery {
				if got := m.Query[key]; !reflect.DeepEqual(got, want) {
					t.Errorf("Query[%q] = %v, want %v", key, got, want)
				}
			}
		})
	}
}

func TestParseLocationBadQuery(t *testing.T) {
	m := parseLocation("#/patients?bad=%zz")
	if m.Path != "/patients" {
		t.Errorf("Path = %q", m.Path)
	}
	if len(m.Query) != 0 {
		t.Errorf("unparseable query should yield empty values, got %v", m.Query)
	}
}
