package core

import (
	"encoding/json"
	"testing"
)

func TestStatusString(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusPending, "pending"},
		{StatusProcessing, "processing"},
		{StatusReady, "ready"},
		{StatusFailed, "failed"},
		{Status(999), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("Status(%d).String() = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestStatusTerminal(t *testing.T) {
	if StatusPending.Terminal() {
		t.Error("StatusPending should not be terminal")
	}
	if StatusProcessing.Terminal() {
		t.Error("StatusProcessing should not be terminal")
	}
	if !StatusReady.Terminal() {
		t.Error("StatusReady should be terminal")
	}
	if !StatusFailed.Terminal() {
		t.Error("StatusFailed should be terminal")
	}
}

func TestStatusMarshalJSON(t *testing.T) {
	data, err := json.Marshal(StatusReady)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `"ready"` {
		t.Errorf("Marshal(StatusReady) = %s, want %q", data, `"ready"`)
	}
}

func TestFingerprintFromContent(t *testing.T) {
	content := []byte("the same content")

	fp1 := FingerprintFromContent(content)
	fp2 := FingerprintFromContent(content)
	if fp1 != fp2 {
		t.Errorf("identical content produced different fingerprints: %d vs %d", fp1, fp2)
	}

	other := FingerprintFromContent([]byte("different content"))
	if fp1 == other {
		t.Error("different content produced identical fingerprints")
	}

	if FingerprintFromContent(nil) != FingerprintFromContent([]byte{}) {
		t.Error("nil and empty content should fingerprint identically")
	}
}
