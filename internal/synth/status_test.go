package synth

import (
	"testing"

	"github.com/ppiankov/clearview/internal/model"
)

func TestInferStatus(t *testing.T) {
	tests := []struct {
		name string
		text string
		want model.Status
	}{
		{
			name: "plain support verdict",
			text: "Supports. US GDP grew 2.8% in 2024, matching the claimed figure.",
			want: model.StatusSupported,
		},
		{
			name: "contradiction",
			text: "Contradicts the claim. Brent averaged $82, not the $120 stated.",
			want: model.StatusContradicted,
		},
		{
			name: "partial support",
			text: "Partially supports. The trend is right but the magnitude is overstated.",
			want: model.StatusPartiallySupported,
		},
		{
			name: "contradiction beats support when both present",
			text: "The data contradicts the headline figure even though it supports the broader trend.",
			want: model.StatusContradicted,
		},
		{
			name: "hedge beats support",
			text: "The data somewhat supports the claim but the picture is mixed.",
			want: model.StatusPartiallySupported,
		},
		{
			name: "does not support phrasing",
			text: "The retrieved series does not support the stated decline.",
			want: model.StatusContradicted,
		},
		{
			name: "consistent with phrasing",
			text: "The figures are consistent with the article's description.",
			want: model.StatusSupported,
		},
		{
			name: "no verdict keywords",
			text: "The series covers 2021-2024 at monthly frequency.",
			want: model.StatusInsufficientData,
		},
		{
			name: "case insensitive",
			text: "CONTRADICTS: the value moved the other way.",
			want: model.StatusContradicted,
		},
		{
			name: "empty text",
			text: "",
			want: model.StatusInsufficientData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InferStatus(tt.text); got != tt.want {
				t.Errorf("InferStatus(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
