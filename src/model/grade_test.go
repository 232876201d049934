package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseGradeTier(t *testing.T) {
	tests := []struct {
		grade string
		want  GradeTier
	}{
		{grade: "FACTORY", want: TierFactory},
		{grade: "factory", want: TierFactory},
		{grade: "limited_run", want: TierLimited},
		{grade: "LIMITED", want: TierLimited},
		{grade: "Limited-Edition", want: TierLimited},
		{grade: "NISMO", want: TierNismo},
		{grade: "nismo_special", want: TierNismo},
		{grade: "UNKNOWN", want: TierUnrecognized},
		{grade: "", want: TierUnrecognized},
		// first rule wins when more than one substring is present
		{grade: "factory limited", want: TierFactory},
	}

	for _, tt := range tests {
		t.Run(tt.grade, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseGradeTier(tt.grade))
		})
	}
}

func TestTradeViewType(t *testing.T) {
	want := "Any Nissan GT-R"

	assert.Equal(t, TradeForPrice, OpenTradeView{}.Type())
	assert.Equal(t, TradeForCard, OpenTradeView{WantVehicle: &want}.Type())
	assert.Equal(t, TradeForPrice, CompletedTradeView{}.Type())
	assert.Equal(t, TradeForCard, CompletedTradeView{BuyerVehicle: &want}.Type())
}
