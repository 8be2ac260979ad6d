package debank

import (
	"net/url"
	"reflect"
	"testing"
	"time"
)

func TestParamsQuerySuffix(t *testing.T) {
	tests := []struct {
		name   string
		params Params
		want   string
	}{
		{
			name:   "sequence is comma joined then escaped",
			params: Params{{Key: "chain_id", Value: "eth"}, {Key: "ids", Value: []string{"a", "b", "c"}}},
			want:   "?chain_id=eth&ids=a%2Cb%2Cc",
		},
		{
			name:   "keys keep caller order",
			params: Params{{Key: "z", Value: "1"}, {Key: "a", Value: "2"}},
			want:   "?z=1&a=2",
		},
		{name: "nil params", params: nil, want: ""},
		{name: "empty params", params: Params{}, want: ""},
		{
			name:   "scalars",
			params: Params{{Key: "n", Value: 10}, {Key: "b", Value: true}, {Key: "f", Value: 0.5}, {Key: "u", Value: uint64(7)}},
			want:   "?n=10&b=true&f=0.5&u=7",
		},
		{
			name:   "reserved characters are escaped",
			params: Params{{Key: "q", Value: "a b&c=d"}},
			want:   "?q=a+b%26c%3Dd",
		},
		{
			name:   "generic sequences",
			params: Params{{Key: "ids", Value: []any{"x", 1}}, {Key: "arr", Value: [2]int{3, 4}}},
			want:   "?ids=x%2C1&arr=3%2C4",
		},
		{
			name:   "stringer and nil",
			params: Params{{Key: "d", Value: 90 * time.Second}, {Key: "empty", Value: nil}},
			want:   "?d=1m30s&empty=",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.params.querySuffix(); got != tt.want {
				t.Errorf("querySuffix() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParamsEncodeDoesNotMutateInput(t *testing.T) {
	ids := []string{"a", "b"}
	params := Params{{Key: "ids", Value: ids}}

	_ = params.Encode()

	got, ok := params.Get("ids")
	if !ok {
		t.Fatal("ids missing after Encode")
	}
	if !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("ids value changed to %#v", got)
	}
	if !reflect.DeepEqual(ids, []string{"a", "b"}) {
		t.Errorf("caller slice changed to %#v", ids)
	}
}

func TestParamsSet(t *testing.T) {
	base := make(Params, 0, 4)
	base = append(base, Param{Key: "id", Value: "0x1"}, Param{Key: "chain_id", Value: "eth"})

	replaced := base.Set("id", "0x2")
	if got := replaced.Encode(); got != "id=0x2&chain_id=eth" {
		t.Errorf("replace: %q", got)
	}
	if v, _ := base.Get("id"); v != "0x1" {
		t.Errorf("Set mutated receiver: id = %v", v)
	}

	appended := base.Set("page_count", 20)
	other := base.Set("start_time", 1)
	if got := appended.Encode(); got != "id=0x1&chain_id=eth&page_count=20" {
		t.Errorf("append: %q", got)
	}
	if got := other.Encode(); got != "id=0x1&chain_id=eth&start_time=1" {
		t.Errorf("second append shares storage: %q", got)
	}
}

func TestParamsFromValues(t *testing.T) {
	values := url.Values{
		"id":       {"0xabc"},
		"chain_id": {"eth"},
		"ids":      {"a", "b"},
	}
	params := ParamsFromValues(values)
	if got := params.Encode(); got != "chain_id=eth&id=0xabc&ids=a%2Cb" {
		t.Errorf("Encode() = %q", got)
	}
	if ParamsFromValues(nil) != nil {
		t.Error("expected nil params for empty values")
	}
}
