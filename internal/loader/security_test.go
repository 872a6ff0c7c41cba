package loader

import (
	"testing"

	"github.com/guttosm/tradeflow/internal/domain/models"
)

func TestParseSecurityTrade_Quantity(t *testing.T) {
	cases := []struct {
		name     string
		header   string
		row      string
		wantQty  string
		wantFail bool
	}{
		{
			name:    "quantity column",
			header:  "Trade Type,Security Id,Quantity,Price\n",
			row:     "Security,AAPL,12,14.5\n",
			wantQty: "12",
		},
		{
			name:    "long minus short",
			header:  "Trade Type,Security Id,Long Quantity,Short Quantity\n",
			row:     "Security,AAPL,30,12\n",
			wantQty: "18",
		},
		{
			name:    "short only",
			header:  "Trade Type,Security Id,Short Quantity\n",
			row:     "Security,AAPL,7\n",
			wantQty: "-7",
		},
		{
			name:     "no quantity at all",
			header:   "Trade Type,Security Id\n",
			row:      "Security,AAPL\n",
			wantFail: true,
		},
		{
			name:     "missing security id",
			header:   "Trade Type,Security Id,Quantity\n",
			row:      "Security,,12\n",
			wantFail: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := Standard().Parse([]Source{srcOf(tc.header + tc.row)})
			if tc.wantFail {
				if len(res.Failures) != 1 || len(res.Values) != 0 {
					t.Fatalf("want 1 failure, got %+v", res)
				}
				return
			}
			if len(res.Values) != 1 {
				t.Fatalf("failures: %v", res.Failures)
			}
			sec := res.Values[0].(models.SecurityTrade)
			if got := sec.Quantity.String(); got != tc.wantQty {
				t.Errorf("quantity: want %s, got %s", tc.wantQty, got)
			}
		})
	}
}

func TestParseSecurityTrade_DefaultScheme(t *testing.T) {
	res := Standard().Parse([]Source{srcOf("Trade Type,Security Id,Quantity\nSecurity,AAPL,1\n")})
	if len(res.Values) != 1 {
		t.Fatalf("failures: %v", res.Failures)
	}
	sec := res.Values[0].(models.SecurityTrade)
	if sec.SecurityID.Scheme != models.DefaultSecurityScheme {
		t.Errorf("scheme: got %q", sec.SecurityID.Scheme)
	}
}

func TestParseSwapTrade_EndDateOrTenor(t *testing.T) {
	header := "Trade Type,Buy Sell,Notional,Fixed Rate,Start Date,End Date,Tenor,Currency\n"
	cases := []struct {
		name    string
		row     string
		wantEnd string
		wantErr bool
	}{
		{"end date", "Swap,Buy,1000,1,2024-09-01,2029-09-01,,USD\n", "2029-09-01", false},
		{"tenor", "Swap,Buy,1000,1,2024-09-01,,5Y,USD\n", "2029-09-01", false},
		{"both", "Swap,Buy,1000,1,2024-09-01,2029-09-01,5Y,USD\n", "", true},
		{"neither", "Swap,Buy,1000,1,2024-09-01,,,USD\n", "", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := Standard().Parse([]Source{srcOf(header + tc.row)})
			if tc.wantErr {
				if len(res.Failures) != 1 {
					t.Fatalf("want failure, got %+v", res)
				}
				return
			}
			if len(res.Values) != 1 {
				t.Fatalf("failures: %v", res.Failures)
			}
			swap := res.Values[0].(models.SwapTrade)
			if got := swap.EndDate.Format("2006-01-02"); got != tc.wantEnd {
				t.Errorf("end date: want %s, got %s", tc.wantEnd, got)
			}
		})
	}
}
