package service

import (
	"regexp"
	"strings"
	"testing"

	"ijuruhub/pkg/model"
)

var referencePattern = regexp.MustCompile(`^[A-Z]{2}-\d{13}-[A-Z0-9]{5}$`)

func TestNewBookingReference_Prefixes(t *testing.T) {
	tests := []struct {
		spaceType string
		prefix    string
	}{
		{model.SpaceTypeHotDesk, "HD"},
		{model.SpaceTypeDedicatedDesk, "DD"},
		{model.SpaceTypePrivateOffice, "PO"},
		{model.SpaceTypeMeetingRoom, "MR"},
		{"Something Else", "BK"},
		{"", "BK"},
	}

	for _, tt := range tests {
		ref := NewBookingReference(tt.spaceType)
		if !strings.HasPrefix(ref, tt.prefix+"-") {
			t.Errorf("NewBookingReference(%q) = %s, want prefix %s", tt.spaceType, ref, tt.prefix)
		}
		if !referencePattern.MatchString(ref) {
			t.Errorf("reference %s does not match expected shape", ref)
		}
	}
}

func TestNewManualReference(t *testing.T) {
	ref := NewManualReference()
	if !strings.HasPrefix(ref, "MN-") {
		t.Errorf("expected MN- prefix, got %s", ref)
	}
	if !referencePattern.MatchString(ref) {
		t.Errorf("reference %s does not match expected shape", ref)
	}
}

func TestNewBookingReference_RandomSuffixVaries(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		seen[NewBookingReference(model.SpaceTypeHotDesk)] = true
	}
	if len(seen) < 45 {
		t.Errorf("expected mostly distinct references, got %d of 50", len(seen))
	}
}
