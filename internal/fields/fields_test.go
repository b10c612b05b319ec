package fields

import (
	"reflect"
	"testing"
)

func TestParseBool_Truthy(t *testing.T) {
	for _, value := range []string{"true", "True", "TRUE", "yes", "YES", "Yes", "1"} {
		if !ParseBool(value) {
			t.Errorf("ParseBool(%q) = false, want true", value)
		}
	}
}

func TestParseBool_Falsy(t *testing.T) {
	for _, value := range []string{"false", "no", "0", "", "garbage", "y", "t", "on"} {
		if ParseBool(value) {
			t.Errorf("ParseBool(%q) = true, want false", value)
		}
	}
}

func TestParseList(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  []string
	}{
		{"empty", "", []string{}},
		{"whitespace only", "   ", []string{}},
		{"single", "a", []string{"a"}},
		{"multiple trimmed", "a, b , c", []string{"a", "b", "c"}},
		{"trailing comma keeps empty token", "a,b,", []string{"a", "b", ""}},
		{"inner empty token kept", "a,,b", []string{"a", "", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseList(tt.value)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseList(%q) = %#v, want %#v", tt.value, got, tt.want)
			}
		})
	}
}
