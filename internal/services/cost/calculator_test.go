package cost

import (
	"strings"
	"testing"
)

func TestNewCalculator(t *testing.T) {
	calc := NewCalculator()

	if calc == nil {
		t.Fatal("NewCalculator() returned nil")
	}
}

func TestCalculator_EstimateCost(t *testing.T) {
	tests := []struct {
		name         string
		provider     string
		model        string
		inputTokens  int
		outputTokens int
		want         float64
	}{
		{
			name:         "Gemini 2.5 Flash - exact match",
			provider:     "gemini",
			model:        "gemini-2.5-flash",
			inputTokens:  1_000_000,
			outputTokens: 1_000_000,
			want:         0.10 + 0.40,
		},
		{
			name:         "Gemini 2.5 Flash - case insensitive",
			provider:     "GEMINI",
			model:        "GEMINI-2.5-FLASH",
			inputTokens:  1_000_000,
			outputTokens: 1_000_000,
			want:         0.10 + 0.40,
		},
		{
			name:         "Gemini - partial model match (pro suffix)",
			provider:     "gemini",
			model:        "gemini-2.5-pro-001",
			inputTokens:  1_000_000,
			outputTokens: 1_000_000,
			want:         1.25 + 10.00,
		},
		{
			name:         "Half a million tokens each way",
			provider:     "gemini",
			model:        "gemini-2.5-flash",
			inputTokens:  500_000,
			outputTokens: 500_000,
			want:         0.05 + 0.20,
		},
		{
			name:         "Unknown provider",
			provider:     "acme",
			model:        "acme-1",
			inputTokens:  1_000_000,
			outputTokens: 1_000_000,
			want:         0,
		},
		{
			name:         "Unknown model",
			provider:     "gemini",
			model:        "palm-2",
			inputTokens:  1_000_000,
			outputTokens: 1_000_000,
			want:         0,
		},
		{
			name:         "Zero tokens",
			provider:     "gemini",
			model:        "gemini-2.5-flash",
			inputTokens:  0,
			outputTokens: 0,
			want:         0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calc := NewCalculator()

			got := calc.EstimateCost(tt.provider, tt.model, tt.inputTokens, tt.outputTokens)

			if got != tt.want {
				t.Errorf("EstimateCost() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCalculator_GetPricing(t *testing.T) {
	calc := NewCalculator()

	t.Run("known model", func(t *testing.T) {
		table, err := calc.GetPricing("gemini", "gemini-2.5-flash")
		if err != nil {
			t.Fatalf("GetPricing() error = %v", err)
		}
		if table.InputPricePerMillion != 0.10 {
			t.Errorf("InputPricePerMillion = %v, want 0.10", table.InputPricePerMillion)
		}
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := calc.GetPricing("acme", "acme-1")
		if err == nil || !strings.Contains(err.Error(), "provider acme not found") {
			t.Errorf("GetPricing() error = %v, want provider not found", err)
		}
	})

	t.Run("unknown model", func(t *testing.T) {
		_, err := calc.GetPricing("gemini", "palm-2")
		if err == nil || !strings.Contains(err.Error(), "model palm-2 not found") {
			t.Errorf("GetPricing() error = %v, want model not found", err)
		}
	})
}

func TestCalculator_AddPricing(t *testing.T) {
	calc := NewCalculator()

	calc.AddPricing("gemini", "gemini-test-model", PricingTable{
		InputPricePerMillion:  1.00,
		OutputPricePerMillion: 2.00,
	})

	got := calc.EstimateCost("gemini", "gemini-test-model", 1_000_000, 1_000_000)
	if got != 3.00 {
		t.Errorf("EstimateCost() after AddPricing = %v, want 3.00", got)
	}
}
