package debank

import "github.com/valyala/fasthttp"

// Endpoint describes one API operation. An Endpoint with an empty Name is
// its group's root.
type Endpoint struct {
	Group  string
	Name   string
	Method string
	Path   string
	Style  ParamStyle
	// Placeholder marks a group root with no upstream operation.
	Placeholder bool
}

// ID returns "group" for a group root and "group.name" otherwise.
func (e Endpoint) ID() string {
	if e.Name == "" {
		return e.Group
	}
	return e.Group + "." + e.Name
}

func get(group, name string) Endpoint {
	path := "/" + group
	if name != "" {
		path += "/" + name
	}
	return Endpoint{Group: group, Name: name, Method: fasthttp.MethodGet, Path: path, Style: QueryParams}
}

func post(group, name string) Endpoint {
	return Endpoint{Group: group, Name: name, Method: fasthttp.MethodPost, Path: "/" + group + "/" + name, Style: JSONBody}
}

func placeholder(group string) Endpoint {
	return Endpoint{Group: group, Placeholder: true}
}

var (
	chainGet  = get("chain", "")
	chainList = get("chain", "list")

	protocolGet     = get("protocol", "")
	protocolList    = get("protocol", "list")
	protocolAllList = get("protocol", "all_list")

	tokenGet        = get("token", "")
	tokenListByIDs  = get("token", "list_by_ids")
	tokenTopHolders = get("token", "top_holders")

	userRoot                   = placeholder("user")
	userUsedChainList          = get("user", "used_chain_list")
	userChainBalance           = get("user", "chain_balance")
	userProtocol               = get("user", "protocol")
	userComplexProtocolList    = get("user", "complex_protocol_list")
	userAllComplexProtocolList = get("user", "all_complex_protocol_list")
	userSimpleProtocolList     = get("user", "simple_protocol_list")
	userAllSimpleProtocolList  = get("user", "all_simple_protocol_list")
	userToken                  = get("user", "token")
	userTokenList              = get("user", "token_list")
	userAllTokenList           = get("user", "all_token_list")
	userNFTList                = get("user", "nft_list")
	userAllNFTList             = get("user", "all_nft_list")
	userHistoryList            = get("user", "history_list")
	userAllHistoryList         = get("user", "all_history_list")
	userTokenAuthorizedList    = get("user", "token_authorized_list")
	userNFTAuthorizedList      = get("user", "nft_authorized_list")
	userTotalBalance           = get("user", "total_balance")
	userChainNetCurve          = get("user", "chain_net_curve")
	userTotalNetCurve          = get("user", "total_net_curve")

	collectionRoot    = placeholder("collection")
	collectionNFTList = get("collection", "nft_list")

	walletRoot      = placeholder("wallet")
	walletGasMarket = get("wallet", "gas_market")
	walletPreExecTx = post("wallet", "pre_exec_tx")
	walletExplainTx = post("wallet", "explain_tx")
)

var endpoints = []Endpoint{
	chainGet, chainList,
	protocolGet, protocolList, protocolAllList,
	tokenGet, tokenListByIDs, tokenTopHolders,
	userRoot, userUsedChainList, userChainBalance, userProtocol,
	userComplexProtocolList, userAllComplexProtocolList,
	userSimpleProtocolList, userAllSimpleProtocolList,
	userToken, userTokenList, userAllTokenList,
	userNFTList, userAllNFTList, userHistoryList, userAllHistoryList,
	userTokenAuthorizedList, userNFTAuthorizedList,
	userTotalBalance, userChainNetCurve, userTotalNetCurve,
	collectionRoot, collectionNFTList,
	walletRoot, walletGasMarket, walletPreExecTx, walletExplainTx,
}

var endpointsByID = func() map[string]Endpoint {
	m := make(map[string]Endpoint, len(endpoints))
	for _, ep := range endpoints {
		m[ep.ID()] = ep
	}
	return m
}()

// Endpoints returns every known operation, group roots included.
func Endpoints() []Endpoint {
	return append([]Endpoint(nil), endpoints...)
}

// LookupEndpoint finds an operation by group and name. An empty name selects
// the group root.
func LookupEndpoint(group, name string) (Endpoint, bool) {
	id := group
	if name != "" {
		id += "." + name
	}
	ep, ok := endpointsByID[id]
	return ep, ok
}
