package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/netsim-go/netsim/sim"
	"github.com/netsim-go/netsim/sim/apps"
	"github.com/netsim-go/netsim/sim/mobility"
)

// Scenario is the YAML shape of a simulation scenario: named nodes with
// attribute assignments and optional children riding them, plus the
// applications installed on top.
type Scenario struct {
	Nodes   []NodeConfig `yaml:"nodes"`
	Servers []AppConfig  `yaml:"servers"`
	Clients []AppConfig  `yaml:"clients"`
}

type NodeConfig struct {
	Name       string            `yaml:"name"`
	Attributes map[string]string `yaml:"attributes"`
	Children   []NodeConfig      `yaml:"children"`
}

type AppConfig struct {
	Name       string            `yaml:"name"`
	Attributes map[string]string `yaml:"attributes"`
}

// LoadScenario reads and parses a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	return &s, nil
}

// BuiltNode is one configured mobility model, flattened from the hierarchy.
type BuiltNode struct {
	Name  string
	Model mobility.Model
}

// Build constructs mobility models and applications from the scenario and
// applies every attribute assignment. A rejected assignment aborts the build
// with an error naming the node and attribute.
func (s *Scenario) Build() ([]BuiltNode, []*apps.UdpServer, []*apps.UdpClient, error) {
	var nodes []BuiltNode
	for _, nc := range s.Nodes {
		built, err := buildNode(nc, nil)
		if err != nil {
			return nil, nil, nil, err
		}
		nodes = append(nodes, built...)
	}

	var servers []*apps.UdpServer
	for _, ac := range s.Servers {
		h := apps.NewUdpServerHelper(100)
		for name, text := range ac.Attributes {
			h.SetAttribute(name, text)
		}
		srv, err := h.Install()
		if err != nil {
			return nil, nil, nil, fmt.Errorf("server %q: %w", ac.Name, err)
		}
		servers = append(servers, srv)
	}

	var clients []*apps.UdpClient
	for _, ac := range s.Clients {
		h := &apps.UdpClientHelper{}
		for name, text := range ac.Attributes {
			h.SetAttribute(name, text)
		}
		cl, err := h.Install()
		if err != nil {
			return nil, nil, nil, fmt.Errorf("client %q: %w", ac.Name, err)
		}
		clients = append(clients, cl)
	}

	return nodes, servers, clients, nil
}

// buildNode builds one node and, recursively, the children riding it.
// Children are hierarchical models with this node's model as parent.
func buildNode(nc NodeConfig, parent mobility.Model) ([]BuiltNode, error) {
	var model mobility.Model = mobility.NewConstantPositionModel()
	if parent != nil {
		h := mobility.NewHierarchicalModel()
		h.SetChild(mobility.NewConstantPositionModel())
		h.SetParent(parent)
		model = h
	}
	for name, text := range nc.Attributes {
		if err := sim.SetAttribute(model, name, text); err != nil {
			return nil, fmt.Errorf("node %q: %w", nc.Name, err)
		}
	}

	nodes := []BuiltNode{{Name: nc.Name, Model: model}}
	for _, child := range nc.Children {
		built, err := buildNode(child, model)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, built...)
	}
	return nodes, nil
}
