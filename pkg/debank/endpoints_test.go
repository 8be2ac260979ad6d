package debank

import (
	"strings"
	"testing"

	"github.com/valyala/fasthttp"
)

func TestEndpointTable(t *testing.T) {
	seen := make(map[string]bool)
	perGroup := make(map[string]int)
	for _, ep := range Endpoints() {
		if seen[ep.ID()] {
			t.Errorf("duplicate endpoint %s", ep.ID())
		}
		seen[ep.ID()] = true

		if ep.Placeholder {
			if ep.Name != "" || ep.Path != "" {
				t.Errorf("placeholder %s must be a bare group root", ep.ID())
			}
			continue
		}
		perGroup[ep.Group]++
		if !strings.HasPrefix(ep.Path, "/"+ep.Group) {
			t.Errorf("%s path %q outside its group", ep.ID(), ep.Path)
		}
		switch ep.Style {
		case JSONBody:
			if ep.Method != fasthttp.MethodPost {
				t.Errorf("%s body endpoint uses %s", ep.ID(), ep.Method)
			}
		case QueryParams:
			if ep.Method != fasthttp.MethodGet {
				t.Errorf("%s query endpoint uses %s", ep.ID(), ep.Method)
			}
		}
	}

	want := map[string]int{"chain": 2, "protocol": 3, "token": 3, "user": 19, "collection": 1, "wallet": 3}
	for group, n := range want {
		if perGroup[group] != n {
			t.Errorf("group %s has %d operations, want %d", group, perGroup[group], n)
		}
	}
}

func TestLookupEndpoint(t *testing.T) {
	tests := []struct {
		group, name string
		path        string
		placeholder bool
		ok          bool
	}{
		{"chain", "", "/chain", false, true},
		{"chain", "list", "/chain/list", false, true},
		{"user", "total_net_curve", "/user/total_net_curve", false, true},
		{"user", "", "", true, true},
		{"collection", "", "", true, true},
		{"wallet", "", "", true, true},
		{"wallet", "explain_tx", "/wallet/explain_tx", false, true},
		{"user", "missing", "", false, false},
		{"nft", "", "", false, false},
	}
	for _, tt := range tests {
		ep, ok := LookupEndpoint(tt.group, tt.name)
		if ok != tt.ok {
			t.Errorf("LookupEndpoint(%q, %q) ok = %v", tt.group, tt.name, ok)
			continue
		}
		if ep.Path != tt.path || ep.Placeholder != tt.placeholder {
			t.Errorf("LookupEndpoint(%q, %q) = %+v", tt.group, tt.name, ep)
		}
	}
}
