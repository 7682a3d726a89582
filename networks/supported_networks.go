package networks

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Insert more Network implementation here to track more chains
var supportedNetworks = []Network{
	BaseMainnet,
	BaseSepolia,
}

var globalSupportedNetworks = newSupportedNetworks(supportedNetworks)
var ErrNetworkNotFound = fmt.Errorf("network not found")

type networks struct {
	ordered      []Network
	networks     map[string]Network
	networksByID map[uint64]Network
}

func (n *networks) getSupportedNetworkNames() []string {
	res := []string{}
	for _, n := range n.ordered {
		res = append(res, n.GetName())
		res = append(res, n.GetAlternativeNames()...)
	}
	return res
}

func (n *networks) getNetworkByID(id uint64) (Network, error) {
	res, found := n.networksByID[id]
	if !found {
		return nil, fmt.Errorf("network id %d: %w", id, ErrNetworkNotFound)
	}
	return res, nil
}

func (n *networks) getNetwork(name string) (Network, error) {
	res, found := n.networks[strings.ToLower(strings.TrimSpace(name))]
	if !found {
		return nil, fmt.Errorf("network name '%s': %w", name, ErrNetworkNotFound)
	}
	return res, nil
}

func newSupportedNetworks(list []Network) *networks {
	result := networks{
		ordered:      []Network{},
		networks:     map[string]Network{},
		networksByID: map[uint64]Network{},
	}
	for _, n := range list {
		if _, found := result.networks[n.GetName()]; found {
			panic(
				fmt.Errorf(
					"network with name or alternative name of '%s' already exists",
					n.GetName(),
				),
			)
		}
		result.ordered = append(result.ordered, n)
		result.networks[n.GetName()] = n
		result.networksByID[n.GetChainID()] = n
		for _, an := range n.GetAlternativeNames() {
			if _, found := result.networks[an]; found {
				panic(
					fmt.Errorf("network with name or alternative name of '%s' already exists", an),
				)
			}
			result.networks[an] = n
		}
	}
	return &result
}

// GetSupportedNetworks returns every network once, in registration order.
func GetSupportedNetworks() []Network {
	return append([]Network{}, globalSupportedNetworks.ordered...)
}

func GetNetwork(name string) (Network, error) {
	return globalSupportedNetworks.getNetwork(name)
}

func GetNetworkByID(id uint64) (Network, error) {
	return globalSupportedNetworks.getNetworkByID(id)
}

func GetSupportedNetworkNames() []string {
	return globalSupportedNetworks.getSupportedNetworkNames()
}

// Suggest returns the supported network name closest to the given one, or an
// empty string when nothing is similar enough.
func Suggest(name string) string {
	names := GetSupportedNetworkNames()
	matches := fuzzy.Find(strings.ToLower(name), names)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Str
}

// GetNodes returns the default nodes of n plus the node set in its node
// environment variable, if any.
func GetNodes(n Network) map[string]string {
	nodes := map[string]string{}
	for name, url := range n.GetDefaultNodes() {
		nodes[name] = url
	}
	customNode := strings.Trim(os.Getenv(n.GetNodeVariableName()), " ")
	if customNode != "" {
		nodes["custom-node"] = customNode
	}
	return nodes
}

// SortedNodeNames returns the node names of nodes in a stable order.
func SortedNodeNames(nodes map[string]string) []string {
	names := make([]string, 0, len(nodes))
	for name := range nodes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
