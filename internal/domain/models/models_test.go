package models

import (
	"testing"
	"time"
)

func TestParseTradeKind(t *testing.T) {
	cases := []struct {
		tag     string
		want    TradeKind
		wantErr bool
	}{
		{"Fra", KindFra, false},
		{"FRA", KindFra, false},
		{"fra", KindFra, false},
		{"Swap", KindSwap, false},
		{"Security", KindSecurity, false},
		{"TermDeposit", KindTermDeposit, false},
		{"TERM DEPOSIT", KindTermDeposit, false},
		{" Fra ", KindFra, false},
		{"Bond", "", true},
		{"", "", true},
	}
	for _, tc := range cases {
		got, err := ParseTradeKind(tc.tag)
		if tc.wantErr {
			if err == nil {
				t.Errorf("%q: want error", tc.tag)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Errorf("%q: got %q err %v", tc.tag, got, err)
		}
	}
}

func TestParseBuySell(t *testing.T) {
	for _, s := range []string{"Buy", "BUY", "b"} {
		if got, err := ParseBuySell(s); err != nil || got != Buy {
			t.Errorf("%q: got %q err %v", s, got, err)
		}
	}
	for _, s := range []string{"Sell", "s"} {
		if got, err := ParseBuySell(s); err != nil || got != Sell {
			t.Errorf("%q: got %q err %v", s, got, err)
		}
	}
	if _, err := ParseBuySell("hold"); err == nil {
		t.Error("want error for unknown direction")
	}
}

func TestStandardID(t *testing.T) {
	id, err := NewStandardID("TF-Trade", "FRA1")
	if err != nil {
		t.Fatal(err)
	}
	if id.String() != "TF-Trade~FRA1" {
		t.Errorf("got %q", id.String())
	}
	if id.IsEmpty() {
		t.Error("should not be empty")
	}
	if _, err := NewStandardID("", "FRA1"); err == nil {
		t.Error("want error for empty scheme")
	}
	var zero StandardID
	if !zero.IsEmpty() || zero.String() != "" {
		t.Error("zero id should be empty")
	}
}

func TestTradeInfoBuilder(t *testing.T) {
	zone, _ := time.LoadLocation("Europe/London")
	date := time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)

	info := NewTradeInfoBuilder().
		ID(StandardID{Scheme: "TF-Trade", Value: "X1"}).
		TradeDate(date).
		TradeZone(zone).
		Attribute("desk", "rates").
		Build()

	if info.ID.Value != "X1" || !info.TradeDate.Equal(date) {
		t.Errorf("got %+v", info)
	}
	if info.TradeZone != zone || info.Attributes["desk"] != "rates" {
		t.Errorf("got %+v", info)
	}
}

func TestTradeKinds(t *testing.T) {
	var trades = []Trade{
		FraTrade{},
		SwapTrade{},
		TermDepositTrade{},
		SecurityTrade{},
	}
	want := []TradeKind{KindFra, KindSwap, KindTermDeposit, KindSecurity}
	for i, trade := range trades {
		if trade.Kind() != want[i] {
			t.Errorf("trade %d: kind %q", i, trade.Kind())
		}
	}
	if len(Kinds()) != 4 {
		t.Errorf("kinds: %v", Kinds())
	}
}
